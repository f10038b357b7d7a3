package primitives

import (
	"errors"
	"math/bits"
)

const (
	// WordLen is the fixed length of every dictionary word.
	WordLen = 5

	// AlphabetSize is the number of distinct letters a word can draw from.
	AlphabetSize = 26
)

var (
	ErrWordLength = errors.New("word is not exactly five letters")
	ErrWordChar   = errors.New("word contains a character outside a-z")
)

// Word is a single validated dictionary word.
//
// It keeps the normalized raw string for output, one letter code per position
// (0 for 'a' through 25 for 'z') for packed positional comparisons, and a
// 26-bit presence mask where bit i is set iff 'a'+i occurs anywhere in the
// word. Duplicate letters set the same bit once, so the mask cannot express
// "at least two of letter X". A Word is immutable once built.
type Word struct {
	raw     string
	letters [WordLen]byte
	mask    uint32
}

// ParseWord validates raw and encodes it into a Word.
//
// Uppercase input is folded to lowercase. A length other than WordLen, or any
// character outside a-z after folding, is rejected.
func ParseWord(raw string) (Word, error) {
	if len(raw) != WordLen {
		return Word{}, ErrWordLength
	}

	var w Word
	buf := make([]byte, WordLen)
	for i := 0; i < WordLen; i++ {
		c := raw[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c < 'a' || c > 'z' {
			return Word{}, ErrWordChar
		}
		buf[i] = c
		w.letters[i] = c - 'a'
		w.mask |= 1 << (c - 'a')
	}
	w.raw = string(buf)
	return w, nil
}

// String returns the normalized (lowercase) word.
func (w Word) String() string {
	return w.raw
}

// LetterAt returns the letter code at position pos.
func (w Word) LetterAt(pos int) byte {
	return w.letters[pos]
}

// Letters returns the packed per-position letter codes.
func (w Word) Letters() [WordLen]byte {
	return w.letters
}

// Mask returns the 26-bit letter-presence mask.
func (w Word) Mask() uint32 {
	return w.mask
}

// Contains reports whether the letter code occurs anywhere in the word.
func (w Word) Contains(letter byte) bool {
	return w.mask&(1<<letter) != 0
}

// DistinctLetters counts the distinct letters in the word.
func (w Word) DistinctLetters() int {
	return bits.OnesCount32(w.mask)
}

// LetterIndex folds uppercase and maps a rune in a-z to its letter code.
func LetterIndex(r rune) (byte, bool) {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return 0, false
	}
	return byte(r - 'a'), true
}
