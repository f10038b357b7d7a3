package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	solver "crosswarped.com/wordle_solver"
	"crosswarped.com/wordle_solver/internal"
	"crosswarped.com/wordle_solver/pkg/logflags"
)

const version = "0.2.1"

// defaultWordList is the fallback dictionary used when no word list file is
// given.
//
//go:embed words.txt
var defaultWordList []byte

var (
	configPath string
	logEnabled bool
	logOutput  string

	wordListPath string
	cacheSize    int
	workers      int

	excludeStr   string
	greenStr     string
	yellowStr    string
	algorithmStr string
	formatStr    string

	benchRounds int
	profile     bool
	profileFile string
)

func main() {
	rootCommand := &cobra.Command{
		Use:   "wfcli",
		Short: "wfcli filters a five-letter dictionary against Wordle-style constraints.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logflags.Setup(logEnabled, logOutput)
		},
	}
	rootCommand.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file.")
	rootCommand.PersistentFlags().BoolVar(&logEnabled, "log", false, "Enable logging.")
	rootCommand.PersistentFlags().StringVar(&logOutput, "log-output", "", "Comma separated layers to log: index,query,cache.")
	rootCommand.PersistentFlags().StringVar(&wordListPath, "wordlist", "", "Word list file, one word per line. Uses the embedded list when empty.")
	rootCommand.PersistentFlags().IntVar(&cacheSize, "cache-size", 0, "Result cache capacity; 0 disables caching.")
	rootCommand.PersistentFlags().IntVar(&workers, "workers", 0, "Concurrent chunks per query; below 2 stays single-threaded.")

	versionCommand := &cobra.Command{
		Use:   "version",
		Short: "Prints version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("wfcli version: " + version)
		},
	}
	rootCommand.AddCommand(versionCommand)

	queryCommand := &cobra.Command{
		Use:   "query",
		Short: "Run a single constraint query and print the matching words.",
		RunE:  runQuery,
	}
	queryCommand.Flags().StringVar(&excludeStr, "exclude", "", `Excluded (gray) letters, e.g. "qxz".`)
	queryCommand.Flags().StringVar(&greenStr, "green", "", `Green constraints as position:letter pairs, e.g. "0:s,4:e".`)
	queryCommand.Flags().StringVar(&yellowStr, "yellow", "", `Yellow constraints as letter:positions pairs, e.g. "a:01,n:".`)
	queryCommand.Flags().StringVar(&algorithmStr, "algorithm", "", "Query algorithm: auto, bitset, or scan.")
	queryCommand.Flags().StringVar(&formatStr, "format", "", "Output format: plain, json, or csv.")
	rootCommand.AddCommand(queryCommand)

	interactiveCommand := &cobra.Command{
		Use:   "interactive",
		Short: "Accumulate guess feedback interactively and narrow the candidates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := buildSolver()
			if err != nil {
				return err
			}
			return runInteractive(s)
		},
	}
	rootCommand.AddCommand(interactiveCommand)

	benchCommand := &cobra.Command{
		Use:   "bench",
		Short: "Time the query algorithms over a fixed scenario matrix.",
		RunE:  runBench,
	}
	benchCommand.Flags().IntVar(&benchRounds, "rounds", 200, "Rounds per scenario.")
	benchCommand.Flags().BoolVar(&profile, "profile", false, "Write a CPU profile while benchmarking.")
	benchCommand.Flags().StringVar(&profileFile, "profile-file", "cpu.pprof", "The file to write the CPU profile to.")
	rootCommand.AddCommand(benchCommand)

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildSolver assembles a Solver from flags, falling back to config file
// values and then the embedded word list.
func buildSolver() (*solver.Solver, error) {
	conf, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}

	path := wordListPath
	if path == "" {
		path = conf.WordList
	}

	var raws []string
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening word list: %w", err)
		}
		defer f.Close()
		if raws, err = internal.ReadWordList(f); err != nil {
			return nil, fmt.Errorf("reading word list: %w", err)
		}
	} else {
		if raws, err = internal.ReadWordList(bytes.NewReader(defaultWordList)); err != nil {
			return nil, fmt.Errorf("reading embedded word list: %w", err)
		}
	}

	size := cacheSize
	if size == 0 {
		size = conf.CacheSize
	}
	w := workers
	if w == 0 {
		w = conf.Workers
	}

	return solver.CreateSolver(raws, solver.Params{CacheSize: size, Workers: w})
}

func runQuery(cmd *cobra.Command, args []string) error {
	conf, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	constraints, err := parseConstraints(excludeStr, greenStr, yellowStr)
	if err != nil {
		return err
	}

	algoName := algorithmStr
	if algoName == "" {
		algoName = conf.Algorithm
	}
	algo, err := parseAlgorithm(algoName)
	if err != nil {
		return err
	}

	format := formatStr
	if format == "" {
		format = conf.Format
	}

	s, err := buildSolver()
	if err != nil {
		return err
	}

	words := s.SolveWith(constraints, algo)
	return writeWords(os.Stdout, words, format)
}
