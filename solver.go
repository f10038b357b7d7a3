// Package solver filters a fixed dictionary of five-letter words against
// Wordle-style positional and presence constraints.
//
// The dictionary index is built once, synchronously, and is immutable
// afterwards, so a single Solver is safe for any number of concurrent
// queries.
package solver

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"crosswarped.com/wordle_solver/internal"
	"crosswarped.com/wordle_solver/pkg/logflags"
	"crosswarped.com/wordle_solver/pkg/primitives"
)

// Params configures CreateSolver.
type Params struct {
	// CacheSize bounds the result cache; zero disables caching.
	CacheSize int
	// Workers caps the number of concurrent chunks per query; values below 2
	// keep queries single-threaded.
	Workers int
}

// Solver owns one dictionary index and answers constraint queries against it.
type Solver struct {
	dict    *primitives.Dictionary
	cache   *resultCache
	workers int
	log     *logrus.Entry
}

// CreateSolver parses rawWords leniently (malformed entries and duplicates
// are dropped) and builds the dictionary index. It fails only when no valid
// words remain; retrying with a different word list is the only recovery.
func CreateSolver(rawWords []string, params Params) (*Solver, error) {
	words := internal.ParseWords(rawWords)
	dict, err := primitives.BuildDictionary(words)
	if err != nil {
		return nil, fmt.Errorf("building dictionary: %w", err)
	}
	logflags.IndexLogger().Debugf("indexed %d words, dropped %d raw entries", dict.Len(), len(rawWords)-dict.Len())

	s := &Solver{
		dict:    dict,
		workers: params.Workers,
		log:     logflags.QueryLogger(),
	}
	if params.CacheSize > 0 {
		s.cache, err = newResultCache(params.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating result cache: %w", err)
		}
	}
	return s, nil
}

// Dictionary returns the solver's index.
func (s *Solver) Dictionary() *primitives.Dictionary {
	return s.dict
}

// Solve runs one query, picking the algorithm from the constraint shape.
func (s *Solver) Solve(c Constraints) []primitives.Word {
	return s.SolveWith(c, AlgorithmAuto)
}

// SolveLetters is Solve with the yellow letters given as a plain set of
// required letters carrying no position information.
func (s *Solver) SolveLetters(excluded []rune, green map[int]rune, required []rune) []primitives.Word {
	yellow := make(map[rune]uint8, len(required))
	for _, r := range required {
		yellow[r] = 0
	}
	return s.Solve(Constraints{Excluded: excluded, Green: green, Yellow: yellow})
}

// SolveWith runs one query with an explicit algorithm choice.
func (s *Solver) SolveWith(c Constraints, algo Algorithm) []primitives.Word {
	compiled := Compile(c)

	if s.cache != nil {
		if words, ok := s.cache.lookup(s.dict, compiled.Key()); ok {
			return words
		}
	}

	set := s.run(compiled, algo)
	words := collectWords(s.dict, set)

	if s.cache != nil {
		s.cache.store(compiled.Key(), set)
	}
	return words
}

func (s *Solver) run(c Compiled, algo Algorithm) primitives.BitSet {
	if algo == AlgorithmAuto {
		algo = chooseAlgorithm(c)
		s.log.Debugf("dispatching to %s", algo)
	}

	switch algo {
	case AlgorithmScan:
		return solveBucketScan(s.dict, c)
	default:
		out := s.dict.FullSet()
		runChunks(bitsetStrategy{d: s.dict, c: c}, out, s.workers)
		return out
	}
}

// chooseAlgorithm prefers the bucket scan when green fixes the first
// position, since that restricts the walk to a single letter's range. The
// bitset path wins otherwise because its cost does not depend on how
// selective the constraints are.
func chooseAlgorithm(c Compiled) Algorithm {
	for _, g := range c.greens {
		if g.pos == 0 {
			return AlgorithmScan
		}
	}
	return AlgorithmBitset
}
