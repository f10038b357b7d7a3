package main

import (
	"strings"
	"testing"

	"crosswarped.com/wordle_solver/pkg/primitives"
)

func exportWords(t *testing.T, raws ...string) []primitives.Word {
	t.Helper()
	out := make([]primitives.Word, 0, len(raws))
	for _, raw := range raws {
		w, err := primitives.ParseWord(raw)
		if err != nil {
			t.Fatalf("ParseWord(%q): %v", raw, err)
		}
		out = append(out, w)
	}
	return out
}

func TestWriteWordsPlain(t *testing.T) {
	var sb strings.Builder
	if err := writeWords(&sb, exportWords(t, "slate", "crane"), "plain"); err != nil {
		t.Fatalf("writeWords: %v", err)
	}
	if got, want := sb.String(), "slate\ncrane\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWriteWordsJSON(t *testing.T) {
	var sb strings.Builder
	if err := writeWords(&sb, exportWords(t, "slate"), "json"); err != nil {
		t.Fatalf("writeWords: %v", err)
	}
	if !strings.Contains(sb.String(), `"slate"`) {
		t.Errorf("json output %q does not contain the word", sb.String())
	}
}

func TestWriteWordsCSV(t *testing.T) {
	var sb strings.Builder
	if err := writeWords(&sb, exportWords(t, "crane"), "csv"); err != nil {
		t.Fatalf("writeWords: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d csv lines, want header plus one row: %q", len(lines), sb.String())
	}
	if lines[0] != "word,presence_mask" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "crane,") {
		t.Errorf("row = %q, want crane row", lines[1])
	}
	if got := len(strings.TrimPrefix(lines[1], "crane,")); got != primitives.AlphabetSize {
		t.Errorf("mask field has %d bits, want %d", got, primitives.AlphabetSize)
	}
}

func TestWriteWordsUnknownFormat(t *testing.T) {
	var sb strings.Builder
	if err := writeWords(&sb, nil, "xml"); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
