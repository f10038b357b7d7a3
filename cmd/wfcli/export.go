package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"crosswarped.com/wordle_solver/pkg/primitives"
)

// writeWords renders the result list in the requested format. The engine has
// no wire format of its own; this is the caller's concern.
func writeWords(w io.Writer, words []primitives.Word, format string) error {
	switch format {
	case "", "plain":
		for _, word := range words {
			fmt.Fprintln(w, word)
		}
		return nil
	case "json":
		out := make([]string, len(words))
		for i, word := range words {
			out[i] = word.String()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"word", "presence_mask"}); err != nil {
			return err
		}
		for _, word := range words {
			if err := cw.Write([]string{word.String(), fmt.Sprintf("%026b", word.Mask())}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
