package hash

import (
	"github.com/vadim-ktnkv/wpop/popular"
)

// Wpop counts words of text in a map and returns the most frequent one.
// Results match radix.Wpop for every input.
func Wpop(text string) (popular.Word, error) {
	var state popular.State
	if err := popular.Validate(text); err != nil {
		return popular.Word{}, err
	}

	wordsLookup := map[string]uint{}
	popular.Words(text, func(word string) bool {
		wordsLookup[word]++
		state.Update(popular.Word{Text: word, Count: wordsLookup[word]})
		return true
	})

	return state.First(), nil
}

// Counts returns the count of every distinct word of text.
func Counts(text string) (map[string]uint, error) {
	if err := popular.Validate(text); err != nil {
		return nil, err
	}

	wordsLookup := map[string]uint{}
	popular.Words(text, func(word string) bool {
		wordsLookup[word]++
		return true
	})
	return wordsLookup, nil
}
