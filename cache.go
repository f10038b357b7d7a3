package solver

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/sirupsen/logrus"

	"crosswarped.com/wordle_solver/pkg/logflags"
	"crosswarped.com/wordle_solver/pkg/primitives"
)

// resultCache memoizes canonical constraint keys to matching word-index
// lists. Entries are valid only for the dictionary they were computed
// against; a Solver owns exactly one immutable dictionary for its lifetime,
// so no generation tagging is needed. The underlying LRU carries its own
// lock, making lookup/store safe across concurrent queries.
type resultCache struct {
	lru *lru.Cache
	log *logrus.Entry
}

func newResultCache(size int) (*resultCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &resultCache{
		lru: c,
		log: logflags.CacheLogger(),
	}, nil
}

// lookup returns the cached result mapped back to Words, O(result size).
func (rc *resultCache) lookup(d *primitives.Dictionary, key Key) ([]primitives.Word, bool) {
	v, ok := rc.lru.Get(key)
	if !ok {
		return nil, false
	}
	idxs := v.([]int)
	words := make([]primitives.Word, len(idxs))
	for i, wi := range idxs {
		words[i] = d.Word(wi)
	}
	return words, true
}

// store records the result bitset as an index list under key.
func (rc *resultCache) store(key Key, set primitives.BitSet) {
	idxs := make([]int, 0, set.Count())
	for i := range set.Iterate() {
		idxs = append(idxs, i)
	}
	if evicted := rc.lru.Add(key, idxs); evicted {
		rc.log.Debug("evicted least recently used result")
	}
}

func (rc *resultCache) len() int {
	return rc.lru.Len()
}
