package solver

import (
	"slices"

	"crosswarped.com/wordle_solver/pkg/primitives"
)

// positionBits masks a forbidden-position byte down to the bits that name a
// real position.
const positionBits = 1<<primitives.WordLen - 1

// Constraints is the caller-facing form of one query.
type Constraints struct {
	// Excluded letters are confirmed absent from the entire word (gray),
	// unless the same letter is green somewhere.
	Excluded []rune

	// Green maps a position to the letter confirmed there.
	Green map[int]rune

	// Yellow maps a letter confirmed present in the word to a bitmask of
	// positions it is confirmed not to occupy (bit n set means "not at
	// position n"). A zero mask means "present, position unknown".
	Yellow map[rune]uint8
}

// RequiredOnly builds Constraints for letters known present with no position
// information.
func RequiredOnly(letters ...rune) Constraints {
	yellow := make(map[rune]uint8, len(letters))
	for _, r := range letters {
		yellow[r] = 0
	}
	return Constraints{Yellow: yellow}
}

type greenPin struct {
	pos    int
	letter byte
}

type yellowPin struct {
	letter    byte
	forbidden uint8
}

// Compiled is the compact machine-checkable form of Constraints, valid for a
// single query (or as a cache key via Key).
type Compiled struct {
	excludedMask uint32
	requiredMask uint32
	greens       []greenPin  // sorted by position
	yellows      []yellowPin // sorted by letter
}

// Compile translates Constraints into Compiled.
//
// A letter that is green is never simultaneously treated as excluded: green
// always overrides gray. Entries with an out-of-range position or a
// non-alphabetic letter are silently dropped rather than reported, matching
// expected interactive usage.
func Compile(c Constraints) Compiled {
	var out Compiled
	var greenLetters uint32

	for pos, r := range c.Green {
		letter, ok := primitives.LetterIndex(r)
		if !ok || pos < 0 || pos >= primitives.WordLen {
			continue
		}
		greenLetters |= 1 << letter
		out.greens = append(out.greens, greenPin{pos: pos, letter: letter})
	}
	slices.SortFunc(out.greens, func(a, b greenPin) int {
		return a.pos - b.pos
	})

	for _, r := range c.Excluded {
		letter, ok := primitives.LetterIndex(r)
		if !ok {
			continue
		}
		out.excludedMask |= 1 << letter
	}
	out.excludedMask &^= greenLetters

	out.requiredMask = greenLetters
	for r, forbidden := range c.Yellow {
		letter, ok := primitives.LetterIndex(r)
		if !ok {
			continue
		}
		out.requiredMask |= 1 << letter
		out.yellows = append(out.yellows, yellowPin{letter: letter, forbidden: forbidden & positionBits})
	}
	slices.SortFunc(out.yellows, func(a, b yellowPin) int {
		return int(a.letter) - int(b.letter)
	})

	return out
}

// ExcludedMask returns the compiled gray-letter mask, green overrides applied.
func (c Compiled) ExcludedMask() uint32 {
	return c.excludedMask
}

// RequiredMask returns the union of green and yellow letter bits.
func (c Compiled) RequiredMask() uint32 {
	return c.requiredMask
}

// Key is the canonical encoding of a compiled constraint. It is a pure
// function of the four compiled fields, so semantically identical constraints
// compare equal regardless of the iteration order of the inputs.
type Key struct {
	Excluded uint32
	Required uint32
	Green    [primitives.WordLen]byte // letter code + 1, 0 when unconstrained
	Yellow   [primitives.AlphabetSize]uint8
}

// Key returns the canonical cache key for the compiled constraint.
func (c Compiled) Key() Key {
	k := Key{
		Excluded: c.excludedMask,
		Required: c.requiredMask,
	}
	for _, g := range c.greens {
		k.Green[g.pos] = g.letter + 1
	}
	for _, y := range c.yellows {
		k.Yellow[y.letter] = y.forbidden
	}
	return k
}
