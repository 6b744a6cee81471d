// Package compact counts words in a path-compressed radix tree.
// It's a third implementation kept to cross-check radix and hash.
package compact

import (
	"github.com/armon/go-radix"
	"github.com/vadim-ktnkv/wpop/popular"
)

func count(tree *radix.Tree, word string) uint {
	var n uint
	if v, found := tree.Get(word); found {
		n = v.(uint)
	}
	n++
	tree.Insert(word, n)
	return n
}

func build(text string, update func(popular.Word)) (*radix.Tree, error) {
	if err := popular.Validate(text); err != nil {
		return nil, err
	}

	tree := radix.New()
	popular.Words(text, func(word string) bool {
		update(popular.Word{Text: word, Count: count(tree, word)})
		return true
	})
	return tree, nil
}

// Wpop returns the most frequent word of text and its count.
func Wpop(text string) (popular.Word, error) {
	var state popular.State
	if _, err := build(text, state.Update); err != nil {
		return popular.Word{}, err
	}
	return state.First(), nil
}

// Counts returns the count of every distinct word of text.
func Counts(text string) (map[string]uint, error) {
	tree, err := build(text, func(popular.Word) {})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]uint, tree.Len())
	tree.Walk(func(k string, v interface{}) bool {
		counts[k] = v.(uint)
		return false
	})
	return counts, nil
}
