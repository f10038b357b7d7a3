package primitives

import (
	"errors"
	"testing"
)

func TestParseWord(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{"lowercase", "slate", "slate", nil},
		{"uppercase folded", "CRANE", "crane", nil},
		{"mixed case folded", "AdIeU", "adieu", nil},
		{"too short", "cat", "", ErrWordLength},
		{"too long", "planet", "", ErrWordLength},
		{"empty", "", "", ErrWordLength},
		{"digit", "sl4te", "", ErrWordChar},
		{"punctuation", "sla-e", "", ErrWordChar},
		{"space", "sla e", "", ErrWordChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ParseWord(tt.raw)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseWord(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if w.String() != tt.want {
				t.Errorf("String() = %q, want %q", w.String(), tt.want)
			}
		})
	}
}

func TestWordEncoding(t *testing.T) {
	w, err := ParseWord("crane")
	if err != nil {
		t.Fatal(err)
	}

	wantLetters := [WordLen]byte{'c' - 'a', 'r' - 'a', 'a' - 'a', 'n' - 'a', 'e' - 'a'}
	if w.Letters() != wantLetters {
		t.Errorf("Letters() = %v, want %v", w.Letters(), wantLetters)
	}
	for pos, want := range wantLetters {
		if got := w.LetterAt(pos); got != want {
			t.Errorf("LetterAt(%d) = %d, want %d", pos, got, want)
		}
	}
}

func TestWordPresenceMask(t *testing.T) {
	tests := []struct {
		raw          string
		wantDistinct int
	}{
		{"slate", 5},
		{"crane", 5},
		{"abbey", 4},
		{"sassy", 3},
		{"queen", 4},
		{"mamma", 2},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			w, err := ParseWord(tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			if got := w.DistinctLetters(); got != tt.wantDistinct {
				t.Errorf("DistinctLetters() = %d, want %d", got, tt.wantDistinct)
			}
			for _, r := range tt.raw {
				if !w.Contains(byte(r - 'a')) {
					t.Errorf("Contains(%c) = false, want true", r)
				}
			}
			// Exactly the word's own letters are flagged.
			for l := byte(0); l < AlphabetSize; l++ {
				inRaw := false
				for _, r := range tt.raw {
					if byte(r-'a') == l {
						inRaw = true
					}
				}
				if w.Contains(l) != inRaw {
					t.Errorf("Contains(%c) = %v, want %v", 'a'+l, w.Contains(l), inRaw)
				}
			}
		})
	}
}

func TestLetterIndex(t *testing.T) {
	tests := []struct {
		r      rune
		want   byte
		wantOK bool
	}{
		{'a', 0, true},
		{'z', 25, true},
		{'A', 0, true},
		{'Z', 25, true},
		{'0', 0, false},
		{'-', 0, false},
		{'~', 0, false},
	}

	for _, tt := range tests {
		got, ok := LetterIndex(tt.r)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("LetterIndex(%q) = (%d, %v), want (%d, %v)", tt.r, got, ok, tt.want, tt.wantOK)
		}
	}
}
