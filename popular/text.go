package popular

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidText = errors.New("invalid text")
	ErrBadChar     = fmt.Errorf("only lowercase ascii letters and single spaces are allowed: %w", ErrInvalidText)
	ErrEmptyWord   = fmt.Errorf("empty word, text has leading, trailing or doubled space: %w", ErrInvalidText)
)

func IsLetter(c byte) bool {
	return c >= 'a' && c <= 'z'
}

// CharError wraps ErrBadChar with the offending byte and its offset.
func CharError(c byte, offset int) error {
	return fmt.Errorf("byte %q at offset %d: %w", c, offset, ErrBadChar)
}

// SpaceError wraps ErrEmptyWord with the offset of the empty word.
func SpaceError(offset int) error {
	return fmt.Errorf("offset %d: %w", offset, ErrEmptyWord)
}

// Validate checks that text is made of lowercase words separated by exactly one space.
// Empty text is valid.
func Validate(text string) error {
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' {
			if i == start {
				return SpaceError(i)
			}
			start = i + 1
			continue
		}
		if !IsLetter(c) {
			return CharError(c, i)
		}
	}
	if len(text) > 0 && start == len(text) {
		return SpaceError(start)
	}
	return nil
}

// Words calls yield for every space separated word of text until yield returns false.
// Words are substrings of text, nothing is copied.
func Words(text string, yield func(word string) bool) {
	if text == "" {
		return
	}
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != ' ' {
			continue
		}
		if !yield(text[start:i]) {
			return
		}
		start = i + 1
	}
	yield(text[start:])
}
