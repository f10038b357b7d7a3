package internal

import (
	"bufio"
	"io"
	"strings"

	"crosswarped.com/wordle_solver/pkg/primitives"
)

// ParseWords encodes raw strings leniently: a malformed entry simply does not
// become a candidate, and duplicates after case folding are dropped.
func ParseWords(raws []string) []primitives.Word {
	words := make([]primitives.Word, 0, len(raws))
	seen := make(map[string]bool, len(raws))
	for _, raw := range raws {
		w, err := primitives.ParseWord(raw)
		if err != nil {
			continue
		}
		if seen[w.String()] {
			continue
		}
		seen[w.String()] = true
		words = append(words, w)
	}
	return words
}

// ReadWordList reads one word per line, skipping blank lines and '#' comment
// lines. Lines are not validated here; ParseWords handles that.
func ReadWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}
