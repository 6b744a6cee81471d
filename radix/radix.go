package radix

import (
	"github.com/vadim-ktnkv/wpop/popular"
)

const alphabet = 26

// node is one letter position of the trie. Children hold arena indexes,
// 0 marks an absent child since the root is never a child.
// int32 indexes limit the trie to 2^31-1 nodes, that is a text of at least 2 GiB.
type node struct {
	count    uint
	children [alphabet]int32
}

// trie keeps all nodes in one slice, nodes[0] is the root.
type trie struct {
	nodes []node
}

func newTrie(textLen int) *trie {
	// a text of n bytes can't create more than n nodes
	return &trie{nodes: make([]node, 1, min(textLen, 1024)+1)}
}

// child returns the index of the child of n for letter c, creating it when absent.
func (t *trie) child(n int32, c byte) int32 {
	i := c - 'a'
	next := t.nodes[n].children[i]
	if next == 0 {
		t.nodes = append(t.nodes, node{})
		next = int32(len(t.nodes) - 1)
		t.nodes[n].children[i] = next
	}
	return next
}

// complete counts one more occurrence of the word ending at n.
func (t *trie) complete(n int32, word string) popular.Word {
	t.nodes[n].count++
	return popular.Word{Text: word, Count: t.nodes[n].count}
}

// scan walks text once, feeding every completed word to emit.
// The same offset drives both the descent and the word slicing.
func (t *trie) scan(text string, emit func(popular.Word)) error {
	var cur int32
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' {
			if i == start {
				return popular.SpaceError(i)
			}
			emit(t.complete(cur, text[start:i]))
			cur = 0
			start = i + 1
			continue
		}
		if !popular.IsLetter(c) {
			return popular.CharError(c, i)
		}
		cur = t.child(cur, c)
	}
	if start == len(text) {
		return popular.SpaceError(start)
	}
	emit(t.complete(cur, text[start:]))
	return nil
}

// Wpop returns the most frequent word of text and its count.
// On a tie the word that reached the count first wins.
// Empty text gives the zero Word, invalid text gives an error wrapping popular.ErrInvalidText
// and never a partial result.
func Wpop(text string) (popular.Word, error) {
	var state popular.State
	if text == "" {
		return state.First(), nil
	}

	t := newTrie(len(text))
	if err := t.scan(text, state.Update); err != nil {
		return popular.Word{}, err
	}
	return state.First(), nil
}

// Counts returns the count of every distinct word of text.
func Counts(text string) (map[string]uint, error) {
	counts := map[string]uint{}
	if text == "" {
		return counts, nil
	}

	t := newTrie(len(text))
	if err := t.scan(text, func(popular.Word) {}); err != nil {
		return nil, err
	}
	prefix := make([]byte, 0, 16)
	t.walk(0, prefix, func(word []byte, count uint) {
		counts[string(word)] = count
	})
	return counts, nil
}

// walk visits every counted node under n depth-first in alphabetical order.
func (t *trie) walk(n int32, prefix []byte, visit func(word []byte, count uint)) {
	if t.nodes[n].count > 0 {
		visit(prefix, t.nodes[n].count)
	}
	for i, next := range t.nodes[n].children {
		if next == 0 {
			continue
		}
		t.walk(next, append(prefix, byte('a'+i)), visit)
	}
}
