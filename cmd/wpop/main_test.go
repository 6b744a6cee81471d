package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) {
	return "", false
}

func envOf(vars map[string]string) func(string) (string, bool) {
	return func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}
}

func runWith(t *testing.T, args []string, env func(string) (string, bool), input string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, env, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := parseConfig(nil, noEnv, &bytes.Buffer{})
		require.NoError(t, err)
		require.Equal(t, config{impl: "radix", workers: runtime.NumCPU()}, cfg)
	})

	t.Run("env then flags", func(t *testing.T) {
		env := envOf(map[string]string{"WPOP_IMPL": "hash", "WPOP_WORKERS": "3", "WPOP_MAX_ERRORS": "5"})
		cfg, err := parseConfig(nil, env, &bytes.Buffer{})
		require.NoError(t, err)
		require.Equal(t, "hash", cfg.impl)
		require.Equal(t, 3, cfg.workers)
		require.Equal(t, 5, cfg.maxErrors)

		cfg, err = parseConfig([]string{"-impl", "compact", "-workers", "8", "-lines", "in.txt"}, env, &bytes.Buffer{})
		require.NoError(t, err)
		require.Equal(t, "compact", cfg.impl)
		require.Equal(t, 8, cfg.workers)
		require.True(t, cfg.lines)
		require.Equal(t, "in.txt", cfg.file)

		cfg, err = parseConfig(nil, envOf(map[string]string{"WPOP_ALL": "true"}), &bytes.Buffer{})
		require.NoError(t, err)
		require.True(t, cfg.all)

		cfg, err = parseConfig([]string{"-all=false"}, envOf(map[string]string{"WPOP_ALL": "1"}), &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, cfg.all)
	})

	t.Run("errors", func(t *testing.T) {
		s := []struct {
			args []string
			env  map[string]string
			err  error
		}{
			{args: []string{"-impl", "trie"}, err: ErrUnknownImpl},
			{env: map[string]string{"WPOP_IMPL": "btree"}, err: ErrUnknownImpl},
			{env: map[string]string{"WPOP_WORKERS": "many"}, err: ErrBadNumber},
			{env: map[string]string{"WPOP_MAX_ERRORS": "-x"}, err: ErrBadNumber},
			{env: map[string]string{"WPOP_ALL": "sure"}, err: ErrBadBool},
			{args: []string{"a.txt", "b.txt"}, err: ErrUsage},
			{args: []string{"-nope"}, err: ErrUsage},
		}
		for _, c := range s {
			_, err := parseConfig(c.args, envOf(c.env), &bytes.Buffer{})
			require.Truef(t, errors.Is(err, c.err), "args %v env %v, actual err - %v", c.args, c.env, err)
			require.ErrorIs(t, err, ErrUsage)
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		for _, impl := range []string{"radix", "hash", "compact"} {
			code, out, _ := runWith(t, []string{"-impl", impl}, noEnv, "apples bananas oranges peaches bananas\n")
			require.Equal(t, exitOK, code)
			require.Equal(t, "bananas 2\n", out)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		code, out, _ := runWith(t, nil, noEnv, "")
		require.Equal(t, exitOK, code)
		require.Equal(t, "- 0\n", out)
	})

	t.Run("invalid input", func(t *testing.T) {
		code, out, errOut := runWith(t, nil, noEnv, "Hello world\n")
		require.Equal(t, exitFailed, code)
		require.Empty(t, out)
		require.Contains(t, errOut, "only lowercase ascii letters")
	})

	t.Run("lines", func(t *testing.T) {
		code, out, errOut := runWith(t, []string{"-lines"}, noEnv, "x x x x\r\nhello\nbad  line\nb a a b\n")
		require.Equal(t, exitFailed, code)
		require.Equal(t, "x 4\nhello 1\na 2\n", out)
		require.Contains(t, errOut, "line 3")
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input.txt")
		require.NoError(t, os.WriteFile(path, []byte("to be or not to be"), 0o644))

		code, out, _ := runWith(t, []string{path}, noEnv, "")
		require.Equal(t, exitOK, code)
		require.Equal(t, "to 2\n", out)

		code, _, errOut := runWith(t, []string{filepath.Join(t.TempDir(), "missing")}, noEnv, "")
		require.Equal(t, exitFailed, code)
		require.NotEmpty(t, errOut)
	})

	t.Run("all", func(t *testing.T) {
		for _, impl := range []string{"radix", "hash", "compact"} {
			code, out, _ := runWith(t, []string{"-all", "-impl", impl}, noEnv, "to be or not to be\n")
			require.Equal(t, exitOK, code)
			require.Equal(t, "be 2\nnot 1\nor 1\nto 2\n", out)
		}

		env := envOf(map[string]string{"WPOP_ALL": "true"})
		code, out, errOut := runWith(t, []string{"-lines"}, env, "b a b\nBad\nzz\n")
		require.Equal(t, exitFailed, code)
		require.Equal(t, "a 1\nb 2\n\nzz 1\n", out)
		require.Contains(t, errOut, "line 2")

		code, out, _ = runWith(t, []string{"-all", "-lines"}, noEnv, "Bad\nzz\n")
		require.Equal(t, exitFailed, code)
		require.Equal(t, "zz 1\n", out)

		code, out, _ = runWith(t, []string{"-all"}, noEnv, "")
		require.Equal(t, exitOK, code)
		require.Empty(t, out)
	})

	t.Run("check", func(t *testing.T) {
		code, out, _ := runWith(t, []string{"-check", "-lines", "-workers", "2"}, noEnv, "a b a\nz\nx y z y\n")
		require.Equal(t, exitOK, code)
		require.Equal(t, "checked 3, failed 0\n", out)

		code, out, errOut := runWith(t, []string{"-check", "-lines"}, noEnv, "a b\nA B\n")
		require.Equal(t, exitFailed, code)
		require.Equal(t, "checked 2, failed 1\n", out)
		require.Contains(t, errOut, "check failed")
	})

	t.Run("usage", func(t *testing.T) {
		code, _, errOut := runWith(t, []string{"-impl", "nope"}, noEnv, "")
		require.Equal(t, exitUsage, code)
		require.Contains(t, errOut, "unknown implementation")

		code, _, errOut = runWith(t, []string{"-h"}, noEnv, "")
		require.Equal(t, exitOK, code)
		require.Contains(t, errOut, "usage: wpop")
	})
}
