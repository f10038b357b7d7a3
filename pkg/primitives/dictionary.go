package primitives

import (
	"errors"
	"slices"
	"strings"

	"github.com/derekparker/trie"
)

// ErrNoWords is returned when a Dictionary is built from an empty word list.
var ErrNoWords = errors.New("dictionary has no words")

// Dictionary is the read-only index built once over the full word list and
// shared by every query for the lifetime of the process. Rebuilding is the
// only way to change the word set.
type Dictionary struct {
	words  []Word
	blocks int

	// masks is a flattened tensor of word-membership bitsets.
	//
	// Conceptually it is:
	//   masks[pos][letter] = BitSet(words that have letter at position pos)
	//
	// Each BitSet is stored as `blocks` uint64s so a query bitset can be
	// ANDed against it without allocating or scanning the word list.
	//
	// Layout:
	//   base := (pos*AlphabetSize + letter) * blocks
	//   masks[base + block] is the uint64 for that block.
	masks []uint64

	// contains[letter] marks the words containing letter anywhere; absent is
	// its complement over the word list. Both agree with each Word's
	// presence mask by construction.
	contains [AlphabetSize]BitSet
	absent   [AlphabetSize]BitSet

	// perm reorders word indices by (first letter, second letter), stable in
	// the original order, so that bucketStart and bigramStart delimit
	// contiguous ranges of perm sharing a common prefix. The concatenation
	// of all buckets is a permutation of the original index range.
	perm        []int
	bucketStart [AlphabetSize + 1]int
	bigramStart [AlphabetSize*AlphabetSize + 1]int

	byRaw *trie.Trie
}

// BuildDictionary indexes words in a single pass. It fails only on an empty
// list; the input must already be validated Words.
func BuildDictionary(words []Word) (*Dictionary, error) {
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	n := len(words)
	d := &Dictionary{
		words:  words,
		blocks: (n + 63) / 64,
		masks:  make([]uint64, WordLen*AlphabetSize*((n+63)/64)),
		byRaw:  trie.New(),
	}
	for l := range d.contains {
		d.contains[l] = NewBitSet(n)
		d.absent[l] = NewBitSet(n)
	}

	for wi, w := range words {
		block := wi / 64
		bit := uint(wi % 64)
		for pos := 0; pos < WordLen; pos++ {
			base := d.maskBase(pos, w.LetterAt(pos))
			d.masks[base+block] |= 1 << bit
		}
		for l := byte(0); l < AlphabetSize; l++ {
			if w.Contains(l) {
				d.contains[l][block] |= 1 << bit
			} else {
				d.absent[l][block] |= 1 << bit
			}
		}
		d.byRaw.Add(w.String(), wi)
	}

	d.buildBuckets()
	return d, nil
}

// maskBase returns the base index into d.masks for (pos, letter).
//
// The caller can then index d.masks[base+i] for i in [0, blocks).
func (d *Dictionary) maskBase(pos int, letter byte) int {
	return (pos*AlphabetSize + int(letter)) * d.blocks
}

func (d *Dictionary) buildBuckets() {
	d.perm = make([]int, len(d.words))
	for i := range d.perm {
		d.perm[i] = i
	}
	slices.SortStableFunc(d.perm, func(a, b int) int {
		wa, wb := d.words[a], d.words[b]
		if c := int(wa.LetterAt(0)) - int(wb.LetterAt(0)); c != 0 {
			return c
		}
		return int(wa.LetterAt(1)) - int(wb.LetterAt(1))
	})

	var counts [AlphabetSize * AlphabetSize]int
	for _, w := range d.words {
		counts[int(w.LetterAt(0))*AlphabetSize+int(w.LetterAt(1))]++
	}
	start := 0
	for g := 0; g < AlphabetSize*AlphabetSize; g++ {
		d.bigramStart[g] = start
		start += counts[g]
	}
	d.bigramStart[AlphabetSize*AlphabetSize] = start
	for l := 0; l <= AlphabetSize; l++ {
		d.bucketStart[l] = d.bigramStart[l*AlphabetSize]
	}
}

// Len returns the number of indexed words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Word returns the word at the original list index i.
func (d *Dictionary) Word(i int) Word {
	return d.words[i]
}

// FullSet returns a fresh bitset holding every word index.
func (d *Dictionary) FullSet() BitSet {
	return FullBitSet(len(d.words))
}

// PositionSet returns the bitset of words with letter at position pos. The
// returned slice aliases the index and must not be modified.
func (d *Dictionary) PositionSet(pos int, letter byte) BitSet {
	base := d.maskBase(pos, letter)
	return BitSet(d.masks[base : base+d.blocks])
}

// ContainsSet returns the bitset of words containing letter anywhere.
func (d *Dictionary) ContainsSet(letter byte) BitSet {
	return d.contains[letter]
}

// AbsentSet returns the bitset of words that do not contain letter.
func (d *Dictionary) AbsentSet(letter byte) BitSet {
	return d.absent[letter]
}

// Bucket returns the half-open range of bucket positions whose words start
// with letter.
func (d *Dictionary) Bucket(letter byte) (lo, hi int) {
	return d.bucketStart[letter], d.bucketStart[letter+1]
}

// BigramBucket returns the half-open range of bucket positions whose words
// start with the two letters.
func (d *Dictionary) BigramBucket(first, second byte) (lo, hi int) {
	g := int(first)*AlphabetSize + int(second)
	return d.bigramStart[g], d.bigramStart[g+1]
}

// BucketWord maps a bucket position back to the original word index.
func (d *Dictionary) BucketWord(i int) int {
	return d.perm[i]
}

// Lookup finds a word by its raw string, folding case the same way the codec
// does.
func (d *Dictionary) Lookup(raw string) (Word, bool) {
	w, err := ParseWord(raw)
	if err != nil {
		return Word{}, false
	}
	node, ok := d.byRaw.Find(w.String())
	if !ok {
		return Word{}, false
	}
	return d.words[node.Meta().(int)], true
}

// Completions returns the raw words starting with prefix, sorted.
func (d *Dictionary) Completions(prefix string) []string {
	out := d.byRaw.PrefixSearch(strings.ToLower(prefix))
	slices.Sort(out)
	return out
}
