// Package config parses cmd/gusf's command line the way xtract.go
// parses its own: a manual switch over os.Args[1:], one flag consumed
// per iteration, rather than the stdlib flag package, so error
// messages can name the exact flag and value that failed.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rafalcode/gusf/gerr"
)

// Algorithm names the matching/indexing algorithm cmd/gusf should run.
type Algorithm string

const (
	AlgoNaive        Algorithm = "naive"
	AlgoKMP          Algorithm = "kmp"
	AlgoBoyerMoore   Algorithm = "boyermoore"
	AlgoAhoCorasick  Algorithm = "ahocorasick"
	AlgoBMSet        Algorithm = "bmset"
	AlgoSuffixArray  Algorithm = "suffixarray"
	AlgoLZ           Algorithm = "lz"
	AlgoRepeats      Algorithm = "repeats"
)

// Config is the resolved, validated set of run options for cmd/gusf.
type Config struct {
	Algorithm  Algorithm
	CorpusPath string
	Text       string
	Patterns   []string
	Stem       bool
	Color      bool
	Workers    int
	MinLength  int
	MinPercent int
}

// Parse consumes args (normally os.Args[1:]) the way xtract's main loop
// consumes its own: a switch per recognized flag, advancing the slice
// by however many tokens that flag took.
func Parse(args []string) (*Config, error) {
	cfg := &Config{
		Color:      true,
		Workers:    0,
		MinLength:  1,
		MinPercent: 100,
	}
	if len(args) < 1 {
		return nil, gerr.New(gerr.InvalidArgument, "no command-line arguments supplied to gusf")
	}

	for len(args) > 0 {
		switch args[0] {
		case "-algorithm":
			v, rest, err := stringArg(args, "-algorithm")
			if err != nil {
				return nil, err
			}
			cfg.Algorithm = Algorithm(v)
			args = rest
		case "-file":
			v, rest, err := stringArg(args, "-file")
			if err != nil {
				return nil, err
			}
			cfg.CorpusPath = v
			args = rest
		case "-text":
			v, rest, err := stringArg(args, "-text")
			if err != nil {
				return nil, err
			}
			cfg.Text = v
			args = rest
		case "-pattern":
			v, rest, err := stringArg(args, "-pattern")
			if err != nil {
				return nil, err
			}
			cfg.Patterns = append(cfg.Patterns, v)
			args = rest
		case "-stem":
			cfg.Stem = true
			args = args[1:]
		case "-color":
			cfg.Color = true
			args = args[1:]
		case "-plain":
			cfg.Color = false
			args = args[1:]
		case "-workers":
			v, rest, err := intArg(args, "-workers", 0, 1024)
			if err != nil {
				return nil, err
			}
			cfg.Workers = v
			args = rest
		case "-minlength":
			v, rest, err := intArg(args, "-minlength", 1, 1<<30)
			if err != nil {
				return nil, err
			}
			cfg.MinLength = v
			args = rest
		case "-minpercent":
			v, rest, err := intArg(args, "-minpercent", 0, 100)
			if err != nil {
				return nil, err
			}
			cfg.MinPercent = v
			args = rest
		default:
			return nil, gerr.New(gerr.InvalidArgument, "unrecognized flag: "+args[0])
		}
	}

	if cfg.Algorithm == "" {
		return nil, gerr.New(gerr.InvalidArgument, "-algorithm is required")
	}
	if cfg.CorpusPath == "" && cfg.Text == "" {
		return nil, gerr.New(gerr.InvalidArgument, "one of -file or -text is required")
	}
	return cfg, nil
}

// ParseOrExit is the entry point cmd/gusf's main calls: on a parse
// error it prints the message to stderr and exits 1, the same
// ERROR/os.Exit(1) pattern xtract.go uses throughout its own flag loop.
func ParseOrExit(args []string) *Config {
	cfg, err := Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\nERROR: %s\n", err)
		os.Exit(1)
	}
	return cfg
}

func stringArg(args []string, flag string) (string, []string, error) {
	if len(args) < 2 {
		return "", nil, gerr.New(gerr.InvalidArgument, flag+" requires a value")
	}
	return args[1], args[2:], nil
}

func intArg(args []string, flag string, min, max int) (int, []string, error) {
	v, rest, err := stringArg(args, flag)
	if err != nil {
		return 0, nil, err
	}
	n, convErr := strconv.Atoi(v)
	if convErr != nil {
		return 0, nil, gerr.New(gerr.InvalidArgument, flag+" expects an integer, got "+v)
	}
	if n < min || n > max {
		return 0, nil, gerr.New(gerr.InvalidArgument, fmt.Sprintf("%s must be between %d and %d", flag, min, max))
	}
	return n, rest, nil
}
