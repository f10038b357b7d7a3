package primitives

import (
	"fmt"
	"math/bits"
)

const fullLetterMask = 1<<AlphabetSize - 1

// LetterSet efficiently represents a set of letters a-z as a 26-bit mask.
//
// The zero value is an empty set.
type LetterSet struct {
	bits uint32
}

// MakeLetterSet builds a set from letters, dropping anything outside a-z
// after case folding.
func MakeLetterSet(letters ...rune) LetterSet {
	var s LetterSet
	for _, r := range letters {
		_ = s.Add(r)
	}
	return s
}

// Add adds a letter to the set.
func (s *LetterSet) Add(r rune) error {
	idx, ok := LetterIndex(r)
	if !ok {
		return fmt.Errorf("letter %c is out of range", r)
	}
	s.bits |= 1 << idx
	return nil
}

// AddAll adds all letters from another set to this set.
func (s *LetterSet) AddAll(other LetterSet) {
	s.bits |= other.bits
}

// Contains checks if a letter is in the set.
func (s LetterSet) Contains(r rune) bool {
	idx, ok := LetterIndex(r)
	if !ok {
		return false
	}
	return s.bits&(1<<idx) != 0
}

// Mask returns the 26-bit mask form of the set.
func (s LetterSet) Mask() uint32 {
	return s.bits
}

// IsFull checks if the set holds the entire alphabet.
func (s LetterSet) IsFull() bool {
	return s.bits == fullLetterMask
}

// Capacity returns the number of letters the set can hold.
func (s LetterSet) Capacity() int {
	return AlphabetSize
}

// Count returns the number of letters in the set.
func (s LetterSet) Count() int {
	return bits.OnesCount32(s.bits)
}

// Letters returns the set's members in alphabetical order.
func (s LetterSet) Letters() []rune {
	out := make([]rune, 0, s.Count())
	b := s.bits
	for b != 0 {
		tz := bits.TrailingZeros32(b)
		out = append(out, rune('a'+tz))
		b &= b - 1
	}
	return out
}
