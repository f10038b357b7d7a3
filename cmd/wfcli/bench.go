package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/constraints"

	solver "crosswarped.com/wordle_solver"
)

// benchScenarios covers the constraint shapes the two algorithms trade wins
// on: broad queries favor the bitset path, first-letter-pinned queries favor
// the bucket scan.
var benchScenarios = []struct {
	name string
	c    solver.Constraints
}{
	{"unconstrained", solver.Constraints{}},
	{"excluded-heavy", solver.Constraints{Excluded: []rune("qxzjvkw")}},
	{"green-first", solver.Constraints{Green: map[int]rune{0: 's'}}},
	{"green-bigram", solver.Constraints{Green: map[int]rune{0: 's', 1: 'l'}}},
	{"yellow-mixed", solver.Constraints{
		Excluded: []rune("qxz"),
		Yellow:   map[rune]uint8{'a': 0b00011, 'e': 0},
	}},
}

func runBench(cmd *cobra.Command, args []string) error {
	s, err := buildSolver()
	if err != nil {
		return err
	}

	if profile {
		f, err := os.Create(profileFile)
		if err != nil {
			return fmt.Errorf("creating profile file: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("starting CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	algorithms := []solver.Algorithm{solver.AlgorithmBitset, solver.AlgorithmScan}
	for _, sc := range benchScenarios {
		for _, algo := range algorithms {
			timings := make([]time.Duration, 0, benchRounds)
			matches := 0
			for range benchRounds {
				start := time.Now()
				words := s.SolveWith(sc.c, algo)
				timings = append(timings, time.Since(start))
				matches = len(words)
			}
			fmt.Printf("%-16s %-7s %4d matches  best %-10v worst %-10v avg %v\n",
				sc.name, algo, matches, minOf(timings), maxOf(timings), avgDuration(timings))
		}
	}
	return nil
}

func minOf[T constraints.Ordered](vals []T) T {
	best := vals[0]
	for _, v := range vals[1:] {
		if v < best {
			best = v
		}
	}
	return best
}

func maxOf[T constraints.Ordered](vals []T) T {
	worst := vals[0]
	for _, v := range vals[1:] {
		if v > worst {
			worst = v
		}
	}
	return worst
}

func avgDuration(vals []time.Duration) time.Duration {
	var sum time.Duration
	for _, v := range vals {
		sum += v
	}
	return sum / time.Duration(len(vals))
}
