package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/vadim-ktnkv/wpop/crosscheck"
)

var (
	ErrUsage       = errors.New("usage")
	ErrUnknownImpl = fmt.Errorf("unknown implementation: %w", ErrUsage)
	ErrBadNumber   = fmt.Errorf("value must be a number: %w", ErrUsage)
	ErrBadBool     = fmt.Errorf("value must be a boolean: %w", ErrUsage)
)

type config struct {
	impl      string
	lines     bool
	all       bool
	check     bool
	workers   int
	maxErrors int
	verbose   bool
	file      string
}

// envInt reads an integer environment variable, fallback is used when the variable is unset.
func envInt(lookupEnv func(string) (string, bool), name string, fallback int) (int, error) {
	v, ok := lookupEnv(name)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s=%q: %w", name, v, ErrBadNumber)
	}
	return n, nil
}

// envBool reads a boolean environment variable, fallback is used when the variable is unset.
func envBool(lookupEnv func(string) (string, bool), name string, fallback bool) (bool, error) {
	v, ok := lookupEnv(name)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s=%q: %w", name, v, ErrBadBool)
	}
	return b, nil
}

// parseConfig takes defaults from the environment, flags override them.
func parseConfig(args []string, lookupEnv func(string) (string, bool), output io.Writer) (config, error) {
	cfg := config{impl: "radix"}
	if v, ok := lookupEnv("WPOP_IMPL"); ok && v != "" {
		cfg.impl = v
	}
	workers, err := envInt(lookupEnv, "WPOP_WORKERS", runtime.NumCPU())
	if err != nil {
		return cfg, err
	}
	maxErrors, err := envInt(lookupEnv, "WPOP_MAX_ERRORS", 0)
	if err != nil {
		return cfg, err
	}
	all, err := envBool(lookupEnv, "WPOP_ALL", false)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("wpop", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: wpop [options] [file]\nmost frequent word of a text\n\noptions:\n")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.impl, "impl", cfg.impl, "counter implementation: radix, hash or compact")
	fs.BoolVar(&cfg.lines, "lines", false, "treat every input line as a separate text")
	fs.BoolVar(&cfg.all, "all", all, "print every word with its count, sorted by word")
	fs.BoolVar(&cfg.check, "check", false, "cross-check all implementations instead of printing results")
	fs.IntVar(&cfg.workers, "workers", workers, "goroutines used by -check")
	fs.IntVar(&cfg.maxErrors, "max-errors", maxErrors, "stop -check after this many failures, 0 for no limit")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.file = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("expected at most one file, got %d: %w", fs.NArg(), ErrUsage)
	}

	if _, ok := crosscheck.Lookup(cfg.impl); !ok {
		return cfg, fmt.Errorf("%q: %w", cfg.impl, ErrUnknownImpl)
	}
	return cfg, nil
}
