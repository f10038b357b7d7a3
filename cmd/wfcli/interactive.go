package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	solver "crosswarped.com/wordle_solver"
	"crosswarped.com/wordle_solver/pkg/primitives"
)

const maxPrinted = 40

// session accumulates per-letter knowledge across guesses, the way a player
// tracks a board: wrong letters, present-but-misplaced letters, and solved
// positions.
type session struct {
	excluded primitives.LetterSet
	green    map[int]rune
	yellow   map[rune]uint8
}

func newSession() *session {
	return &session{
		green:  make(map[int]rune),
		yellow: make(map[rune]uint8),
	}
}

func (s *session) constraints() solver.Constraints {
	return solver.Constraints{
		Excluded: s.excluded.Letters(),
		Green:    s.green,
		Yellow:   s.yellow,
	}
}

// applyGuess folds one guess and its g/y/b feedback into the session.
func (s *session) applyGuess(word string, feedback string) error {
	if len(word) != primitives.WordLen || len(feedback) != primitives.WordLen {
		return fmt.Errorf("guess and feedback must both be %d characters", primitives.WordLen)
	}
	word = strings.ToLower(word)

	// Greens and yellows first so a letter that is both hit and missed in
	// one guess (duplicates) is not wrongly excluded.
	for i, fb := range feedback {
		r := rune(word[i])
		if _, ok := primitives.LetterIndex(r); !ok {
			return fmt.Errorf("guess letter %q is not in a-z", r)
		}
		switch fb {
		case 'g', 'G':
			s.green[i] = r
		case 'y', 'Y':
			s.yellow[r] |= 1 << uint(i)
		case 'b', 'B':
			// handled below
		default:
			return fmt.Errorf("feedback %q must use only g, y, and b", feedback)
		}
	}
	for i, fb := range feedback {
		if fb != 'b' && fb != 'B' {
			continue
		}
		r := rune(word[i])
		if _, isYellow := s.yellow[r]; isYellow {
			continue
		}
		isGreen := false
		for _, g := range s.green {
			if g == r {
				isGreen = true
			}
		}
		if !isGreen {
			if err := s.excluded.Add(r); err != nil {
				return err
			}
		}
	}
	return nil
}

// runInteractive reads commands from stdin until EOF or quit:
//
//	guess <word> <feedback>   fold in g/y/b feedback for a guess
//	p                         print the remaining candidates
//	complete <prefix>         list dictionary words with the prefix
//	reset                     forget all accumulated constraints
//	q                         quit
func runInteractive(s *solver.Solver) error {
	sess := newSession()
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return nil
		case "reset":
			sess = newSession()
			fmt.Println("constraints cleared")
		case "p":
			printCandidates(s.Solve(sess.constraints()))
		case "complete":
			if len(fields) != 2 {
				fmt.Println("usage: complete <prefix>")
				continue
			}
			for _, w := range s.Dictionary().Completions(fields[1]) {
				fmt.Println(w)
			}
		case "guess":
			if len(fields) != 3 {
				fmt.Println("usage: guess <word> <feedback>  (feedback uses g/y/b per position)")
				continue
			}
			if err := sess.applyGuess(fields[1], fields[2]); err != nil {
				fmt.Println(err)
				continue
			}
			printCandidates(s.Solve(sess.constraints()))
		default:
			fmt.Println("commands: guess, p, complete, reset, q")
		}
	}
}

func printCandidates(words []primitives.Word) {
	fmt.Printf("%d candidates\n", len(words))
	for i, w := range words {
		if i >= maxPrinted {
			fmt.Printf("... and %d more\n", len(words)-maxPrinted)
			break
		}
		fmt.Println(w)
	}
}
