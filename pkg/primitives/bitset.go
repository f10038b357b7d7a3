package primitives

import (
	"iter"
	"math/bits"
)

// BitSet is a set of word indices packed into 64-bit blocks.
//
// Bits in the final block past the word count are kept clear by every
// constructor and operation here, so padding can never be mistaken for a
// match.
type BitSet []uint64

// NewBitSet returns an empty set with room for n indices.
func NewBitSet(n int) BitSet {
	return make(BitSet, (n+63)/64)
}

// FullBitSet returns a set holding all n indices, with the padding bits of
// the last block cleared.
func FullBitSet(n int) BitSet {
	s := NewBitSet(n)
	for i := range s {
		s[i] = ^uint64(0)
	}
	if rem := n % 64; rem != 0 {
		s[len(s)-1] = (uint64(1) << uint(rem)) - 1
	}
	return s
}

// Clone returns an independent copy of the set.
func (s BitSet) Clone() BitSet {
	out := make(BitSet, len(s))
	copy(out, s)
	return out
}

// Test reports whether idx is in the set.
func (s BitSet) Test(idx int) bool {
	return (s[idx/64] & (uint64(1) << uint(idx%64))) != 0
}

// Set inserts idx into the set.
func (s BitSet) Set(idx int) {
	s[idx/64] |= uint64(1) << uint(idx%64)
}

// Clear removes idx and returns true if it was previously set.
func (s BitSet) Clear(idx int) bool {
	bi := idx / 64
	mask := uint64(1) << uint(idx%64)
	had := (s[bi] & mask) != 0
	s[bi] &^= mask
	return had
}

// And intersects the set with other in place.
func (s BitSet) And(other BitSet) {
	for i := range s {
		s[i] &= other[i]
	}
}

// AndNot removes every index of other from the set in place.
func (s BitSet) AndNot(other BitSet) {
	for i := range s {
		s[i] &^= other[i]
	}
}

// Intersects reports whether the two sets share any index.
func (s BitSet) Intersects(other BitSet) bool {
	for i := range s {
		if s[i]&other[i] != 0 {
			return true
		}
	}
	return false
}

// Count returns the number of indices in the set.
func (s BitSet) Count() int {
	total := 0
	for _, block := range s {
		total += bits.OnesCount64(block)
	}
	return total
}

// FirstSet returns the smallest index in the set, or -1 if it is empty.
func (s BitSet) FirstSet() int {
	for bi, block := range s {
		if block == 0 {
			continue
		}
		return bi*64 + bits.TrailingZeros64(block)
	}
	return -1
}

// Iterate yields the set's indices in ascending order using a
// trailing-zeros-and-clear-lowest loop.
func (s BitSet) Iterate() iter.Seq[int] {
	return func(yield func(int) bool) {
		for bi, block := range s {
			b := block
			for b != 0 {
				tz := bits.TrailingZeros64(b)
				if !yield(bi*64 + tz) {
					return
				}
				b &= b - 1
			}
		}
	}
}
