package solver

import (
	"math/bits"

	"golang.org/x/sync/errgroup"

	"crosswarped.com/wordle_solver/pkg/primitives"
)

// Algorithm selects which query strategy executes a compiled constraint. All
// algorithms return the same set of words for the same dictionary and
// constraint; only their cost profiles differ.
type Algorithm int

const (
	// AlgorithmAuto lets the solver pick based on the constraint shape.
	AlgorithmAuto Algorithm = iota
	// AlgorithmBitset intersects the precomputed per-letter and per-position
	// bitsets. Its cost does not depend on the result size, which makes it
	// the general-purpose path.
	AlgorithmBitset
	// AlgorithmScan walks the first-letter (or bigram) bucket ranges with
	// per-word mask checks. It wins when green fixes the first position and
	// degrades toward a full scan when it does not.
	AlgorithmScan
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmBitset:
		return "bitset"
	case AlgorithmScan:
		return "scan"
	default:
		return "auto"
	}
}

// chunkStrategy evaluates the candidates inside a contiguous block-aligned
// range, clearing the bits of non-matching words in out. Chunks touch
// disjoint blocks, so strategies need no synchronization.
type chunkStrategy interface {
	evalChunk(out primitives.BitSet, loBlock, hiBlock int)
}

// bitsetStrategy ANDs the accumulator against the dictionary's precomputed
// bitsets: the "does not contain" set per excluded letter, the (position,
// letter) set per green pin, and the "contains" set minus each forbidden
// (position, letter) set per yellow pin.
type bitsetStrategy struct {
	d *primitives.Dictionary
	c Compiled
}

func (s bitsetStrategy) evalChunk(out primitives.BitSet, loBlock, hiBlock int) {
	sub := out[loBlock:hiBlock]

	excl := s.c.excludedMask
	for excl != 0 {
		letter := byte(bits.TrailingZeros32(excl))
		excl &= excl - 1
		sub.And(s.d.AbsentSet(letter)[loBlock:hiBlock])
	}

	for _, g := range s.c.greens {
		sub.And(s.d.PositionSet(g.pos, g.letter)[loBlock:hiBlock])
	}

	for _, y := range s.c.yellows {
		sub.And(s.d.ContainsSet(y.letter)[loBlock:hiBlock])
		forb := y.forbidden
		for forb != 0 {
			pos := bits.TrailingZeros8(forb)
			forb &= forb - 1
			sub.AndNot(s.d.PositionSet(pos, y.letter)[loBlock:hiBlock])
		}
	}
}

// scanStrategy checks each word in the range directly against the compiled
// masks and packed bytes.
type scanStrategy struct {
	d *primitives.Dictionary
	c Compiled
}

func (s scanStrategy) evalChunk(out primitives.BitSet, loBlock, hiBlock int) {
	lo := loBlock * 64
	hi := min(hiBlock*64, s.d.Len())
	for i := lo; i < hi; i++ {
		if !matchesCompiled(s.d.Word(i), s.c) {
			out.Clear(i)
		}
	}
}

// matchesCompiled rejects via presence-mask comparisons first, then packed
// byte comparisons for the positional pins.
func matchesCompiled(w primitives.Word, c Compiled) bool {
	m := w.Mask()
	if m&c.excludedMask != 0 {
		return false
	}
	if m&c.requiredMask != c.requiredMask {
		return false
	}
	for _, g := range c.greens {
		if w.LetterAt(g.pos) != g.letter {
			return false
		}
	}
	for _, y := range c.yellows {
		forb := y.forbidden
		for forb != 0 {
			pos := bits.TrailingZeros8(forb)
			forb &= forb - 1
			if w.LetterAt(pos) == y.letter {
				return false
			}
		}
	}
	return true
}

// minBlocksPerChunk keeps tiny dictionaries on the single-threaded path.
const minBlocksPerChunk = 4

// runChunks evaluates strategy over the whole index range, splitting into
// block-aligned chunks when workers allows. Chunk results land in disjoint
// regions of out and can complete in any order; result order is not a
// contract of the engine.
func runChunks(s chunkStrategy, out primitives.BitSet, workers int) {
	nBlocks := len(out)
	if workers <= 1 || nBlocks < 2*minBlocksPerChunk {
		s.evalChunk(out, 0, nBlocks)
		return
	}
	if workers > nBlocks/minBlocksPerChunk {
		workers = nBlocks / minBlocksPerChunk
	}
	per := (nBlocks + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < nBlocks; lo += per {
		hi := min(lo+per, nBlocks)
		g.Go(func() error {
			s.evalChunk(out, lo, hi)
			return nil
		})
	}
	// Chunk evaluation cannot fail; the group is only the join point.
	_ = g.Wait()
}

// solveBucketScan narrows the walk using the first-letter buckets. When green
// fixes position 0 (and optionally position 1) only the matching bucket range
// is visited; otherwise every bucket is scanned except those whose first
// letter is excluded.
func solveBucketScan(d *primitives.Dictionary, c Compiled) primitives.BitSet {
	out := primitives.NewBitSet(d.Len())

	const unset = 0xff
	first, second := byte(unset), byte(unset)
	for _, g := range c.greens {
		switch g.pos {
		case 0:
			first = g.letter
		case 1:
			second = g.letter
		}
	}

	scan := func(lo, hi int) {
		for i := lo; i < hi; i++ {
			wi := d.BucketWord(i)
			if matchesCompiled(d.Word(wi), c) {
				out.Set(wi)
			}
		}
	}

	switch {
	case first != unset && second != unset:
		scan(d.BigramBucket(first, second))
	case first != unset:
		scan(d.Bucket(first))
	default:
		for l := byte(0); l < primitives.AlphabetSize; l++ {
			if c.excludedMask&(1<<l) != 0 {
				continue
			}
			scan(d.Bucket(l))
		}
	}
	return out
}

// wordView is the capability set the reference solver needs from a word:
// a presence check and a positional check.
type wordView interface {
	Contains(letter byte) bool
	LetterAt(pos int) byte
}

// matchesNaive re-checks every raw constraint with no precomputation,
// including the green-over-gray override and the silent dropping of invalid
// entries. It exists as a correctness oracle for the production algorithms
// and stays off the hot path.
func matchesNaive(w wordView, c Constraints) bool {
	var greenLetters [primitives.AlphabetSize]bool
	for pos, r := range c.Green {
		letter, ok := primitives.LetterIndex(r)
		if !ok || pos < 0 || pos >= primitives.WordLen {
			continue
		}
		greenLetters[letter] = true
		if w.LetterAt(pos) != letter {
			return false
		}
	}

	for _, r := range c.Excluded {
		letter, ok := primitives.LetterIndex(r)
		if !ok || greenLetters[letter] {
			continue
		}
		if w.Contains(letter) {
			return false
		}
	}

	for r, forbidden := range c.Yellow {
		letter, ok := primitives.LetterIndex(r)
		if !ok {
			continue
		}
		if !w.Contains(letter) {
			return false
		}
		for pos := 0; pos < primitives.WordLen; pos++ {
			if forbidden&(1<<pos) != 0 && w.LetterAt(pos) == letter {
				return false
			}
		}
	}
	return true
}

func solveNaive(d *primitives.Dictionary, c Constraints) []primitives.Word {
	var out []primitives.Word
	for i := 0; i < d.Len(); i++ {
		w := d.Word(i)
		if matchesNaive(w, c) {
			out = append(out, w)
		}
	}
	return out
}

// collectWords maps the set bits of the final bitset back to Words in
// dictionary order.
func collectWords(d *primitives.Dictionary, set primitives.BitSet) []primitives.Word {
	out := make([]primitives.Word, 0, set.Count())
	for i := range set.Iterate() {
		out = append(out, d.Word(i))
	}
	return out
}
