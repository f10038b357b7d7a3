package solver

import (
	"slices"
	"testing"
)

func TestSolveLettersMatchesZeroMaskYellow(t *testing.T) {
	s := newTestSolver(t, Params{})

	want := wordStrings(s.Solve(Constraints{
		Excluded: []rune{'q'},
		Green:    map[int]rune{4: 'e'},
		Yellow:   map[rune]uint8{'a': 0, 'n': 0},
	}))
	got := wordStrings(s.SolveLetters([]rune{'q'}, map[int]rune{4: 'e'}, []rune{'a', 'n'}))
	if !slices.Equal(got, want) {
		t.Errorf("SolveLetters = %v, want %v", got, want)
	}
}

func TestChooseAlgorithm(t *testing.T) {
	tests := []struct {
		name string
		c    Constraints
		want Algorithm
	}{
		{"green fixes position zero", Constraints{Green: map[int]rune{0: 's'}}, AlgorithmScan},
		{"green elsewhere", Constraints{Green: map[int]rune{3: 's'}}, AlgorithmBitset},
		{"no green", Constraints{Excluded: []rune{'q'}}, AlgorithmBitset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chooseAlgorithm(Compile(tt.c)); got != tt.want {
				t.Errorf("chooseAlgorithm = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSolveLenientIngestion(t *testing.T) {
	raws := []string{"slate", "not-a-word", "slate", "CRANE", "x", "adieu"}
	s, err := CreateSolver(raws, Params{})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Dictionary().Len(); got != 3 {
		t.Errorf("dictionary holds %d words, want 3 (malformed and duplicate entries dropped)", got)
	}
}

func TestSolveResultsAreDictionaryWords(t *testing.T) {
	s := newTestSolver(t, Params{})

	for _, w := range s.Solve(Constraints{Yellow: map[rune]uint8{'e': 0}}) {
		if _, ok := s.Dictionary().Lookup(w.String()); !ok {
			t.Errorf("result word %q is not in the dictionary", w)
		}
	}
}

func TestAlgorithmString(t *testing.T) {
	if AlgorithmBitset.String() != "bitset" || AlgorithmScan.String() != "scan" || AlgorithmAuto.String() != "auto" {
		t.Error("Algorithm.String mismatch")
	}
}
