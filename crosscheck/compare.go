package crosscheck

import (
	"errors"
	"fmt"

	"github.com/vadim-ktnkv/wpop/compact"
	"github.com/vadim-ktnkv/wpop/hash"
	"github.com/vadim-ktnkv/wpop/popular"
	"github.com/vadim-ktnkv/wpop/radix"
)

var ErrMismatch = errors.New("counters disagree")

// Counter finds the most frequent word of a text.
type Counter func(text string) (popular.Word, error)

// Tally counts every distinct word of a text.
type Tally func(text string) (map[string]uint, error)

type namedCounter struct {
	name  string
	count Counter
	tally Tally
}

// counters lists every implementation by name. radix goes first and is the reference.
var counters = []namedCounter{
	{"radix", radix.Wpop, radix.Counts},
	{"hash", hash.Wpop, hash.Counts},
	{"compact", compact.Wpop, compact.Counts},
}

// Lookup returns the counter registered under name.
func Lookup(name string) (Counter, bool) {
	for _, c := range counters {
		if c.name == name {
			return c.count, true
		}
	}
	return nil, false
}

// LookupTally returns the word counting function of the implementation registered under name.
func LookupTally(name string) (Tally, bool) {
	for _, c := range counters {
		if c.name == name {
			return c.tally, true
		}
	}
	return nil, false
}

// Names returns the names of all counters, reference first.
func Names() []string {
	names := make([]string, 0, len(counters))
	for _, c := range counters {
		names = append(names, c.name)
	}
	return names
}

// Compare runs every counter over text.
// It returns the reference error when all counters reject text
// and an error wrapping ErrMismatch when any two of them differ.
func Compare(text string) error {
	ref := counters[0]
	refWord, refErr := ref.count(text)

	for _, c := range counters[1:] {
		w, err := c.count(text)
		switch {
		case (refErr == nil) != (err == nil):
			return fmt.Errorf("%s error %v, %s error %v: %w", ref.name, refErr, c.name, err, ErrMismatch)
		case refErr != nil:
			if errors.Is(refErr, popular.ErrBadChar) != errors.Is(err, popular.ErrBadChar) {
				return fmt.Errorf("%s error %v, %s error %v: %w", ref.name, refErr, c.name, err, ErrMismatch)
			}
		case w != refWord:
			return fmt.Errorf("%s got %q x%d, %s got %q x%d: %w",
				ref.name, refWord.Text, refWord.Count, c.name, w.Text, w.Count, ErrMismatch)
		}
	}
	return refErr
}
