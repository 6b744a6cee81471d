package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/vadim-ktnkv/wpop/crosscheck"
)

const (
	exitOK = iota
	exitFailed
	exitUsage
)

func readTexts(cfg config, stdin io.Reader) ([]string, error) {
	in := stdin
	if cfg.file != "" {
		f, err := os.Open(cfg.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	if !cfg.lines {
		return []string{text}, nil
	}
	if text == "" {
		return nil, nil
	}

	texts := strings.Split(text, "\n")
	for i := range texts {
		texts[i] = strings.TrimSuffix(texts[i], "\r")
	}
	return texts, nil
}

func printError(cfg config, line int, err error, stderr io.Writer) {
	if cfg.lines {
		fmt.Fprintf(stderr, "wpop: line %d: %v\n", line, err)
		return
	}
	fmt.Fprintln(stderr, "wpop:", err)
}

// printAll prints "word count" for every distinct word, sorted by word.
// Texts are separated by an empty line.
func printAll(cfg config, texts []string, stdout, stderr io.Writer) int {
	tally, _ := crosscheck.LookupTally(cfg.impl)
	code := exitOK
	printed := false
	for i, text := range texts {
		counts, err := tally(text)
		if err != nil {
			printError(cfg, i+1, err, stderr)
			code = exitFailed
			continue
		}
		if printed {
			fmt.Fprintln(stdout)
		}
		printed = true

		words := make([]string, 0, len(counts))
		for w := range counts {
			words = append(words, w)
		}
		slices.Sort(words)
		for _, w := range words {
			fmt.Fprintf(stdout, "%s %d\n", w, counts[w])
		}
	}
	return code
}

func run(args []string, lookupEnv func(string) (string, bool), stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, lookupEnv, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "wpop:", err)
		return exitUsage
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	crosscheck.SetLogHandler(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	texts, err := readTexts(cfg, stdin)
	if err != nil {
		fmt.Fprintln(stderr, "wpop:", err)
		return exitFailed
	}

	if cfg.check {
		report, err := crosscheck.Run(texts, cfg.workers, cfg.maxErrors)
		fmt.Fprintf(stdout, "checked %d, failed %d\n", report.Checked, report.Failed)
		if err != nil {
			fmt.Fprintln(stderr, "wpop:", err)
		}
		if err != nil || report.Failed > 0 {
			return exitFailed
		}
		return exitOK
	}

	if cfg.all {
		return printAll(cfg, texts, stdout, stderr)
	}

	count, _ := crosscheck.Lookup(cfg.impl)
	code := exitOK
	for i, text := range texts {
		w, err := count(text)
		if err != nil {
			printError(cfg, i+1, err, stderr)
			code = exitFailed
			continue
		}
		if !w.Found() {
			fmt.Fprintln(stdout, "- 0")
			continue
		}
		fmt.Fprintf(stdout, "%s %d\n", w.Text, w.Count)
	}
	return code
}

func main() {
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdin, os.Stdout, os.Stderr))
}
