package main

import (
	"fmt"
	"strconv"
	"strings"

	solver "crosswarped.com/wordle_solver"
	"crosswarped.com/wordle_solver/pkg/primitives"
)

// parseConstraints turns the flag grammar into solver Constraints. Unlike
// the compiler, flag parsing is strict: a typo in a flag is an error rather
// than a silently weaker query.
func parseConstraints(exclude, green, yellow string) (solver.Constraints, error) {
	var c solver.Constraints

	for _, r := range exclude {
		if _, ok := primitives.LetterIndex(r); !ok {
			return c, fmt.Errorf("excluded letter %q is not in a-z", r)
		}
		c.Excluded = append(c.Excluded, r)
	}

	greens, err := parseGreen(green)
	if err != nil {
		return c, err
	}
	c.Green = greens

	yellows, err := parseYellow(yellow)
	if err != nil {
		return c, err
	}
	c.Yellow = yellows

	return c, nil
}

// parseGreen parses "0:s,4:e" into a position-to-letter map.
func parseGreen(s string) (map[int]rune, error) {
	if s == "" {
		return nil, nil
	}

	out := make(map[int]rune)
	for _, pair := range strings.Split(s, ",") {
		pos, letter, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("green entry %q is not position:letter", pair)
		}
		p, err := strconv.Atoi(pos)
		if err != nil || p < 0 || p >= primitives.WordLen {
			return nil, fmt.Errorf("green position %q is not in [0, %d)", pos, primitives.WordLen)
		}
		runes := []rune(letter)
		if len(runes) != 1 {
			return nil, fmt.Errorf("green letter %q must be a single letter", letter)
		}
		if _, ok := primitives.LetterIndex(runes[0]); !ok {
			return nil, fmt.Errorf("green letter %q is not in a-z", letter)
		}
		out[p] = runes[0]
	}
	return out, nil
}

// parseYellow parses "a:01,n:" into a letter-to-forbidden-positions map. The
// digits after the colon are the positions the letter cannot occupy; no
// digits means "present, position unknown".
func parseYellow(s string) (map[rune]uint8, error) {
	if s == "" {
		return nil, nil
	}

	out := make(map[rune]uint8)
	for _, pair := range strings.Split(s, ",") {
		letter, digits, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("yellow entry %q is not letter:positions", pair)
		}
		runes := []rune(letter)
		if len(runes) != 1 {
			return nil, fmt.Errorf("yellow letter %q must be a single letter", letter)
		}
		if _, ok := primitives.LetterIndex(runes[0]); !ok {
			return nil, fmt.Errorf("yellow letter %q is not in a-z", letter)
		}

		var forbidden uint8
		for _, d := range digits {
			if d < '0' || d >= '0'+primitives.WordLen {
				return nil, fmt.Errorf("yellow position %q is not in [0, %d)", d, primitives.WordLen)
			}
			forbidden |= 1 << uint(d-'0')
		}
		out[runes[0]] = forbidden
	}
	return out, nil
}

func parseAlgorithm(s string) (solver.Algorithm, error) {
	switch s {
	case "", "auto":
		return solver.AlgorithmAuto, nil
	case "bitset":
		return solver.AlgorithmBitset, nil
	case "scan":
		return solver.AlgorithmScan, nil
	default:
		return solver.AlgorithmAuto, fmt.Errorf("unknown algorithm %q", s)
	}
}
