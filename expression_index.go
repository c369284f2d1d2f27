package furigana

import (
	"slices"

	"github.com/derekparker/trie"
)

type expressionIndexStats struct {
	Backend string
	Keys    int
	Longest int // in characters
}

// expressionIndex is the internal backend abstraction for special-expression
// storage. Besides exact lookups it answers which expressions start at a
// given position of a written form.
type expressionIndex interface {
	Insert(x *SpecialExpression)
	Lookup(text string) (*SpecialExpression, bool)
	PrefixesAt(form []rune, pos int) []*SpecialExpression
	Stats() expressionIndexStats
}

// trieIndex is an expressionIndex on top of a rune trie. Lookups do not
// modify the trie and may run concurrently once loading has finished.
type trieIndex struct {
	trie    *trie.Trie
	keys    int
	longest int
}

var _ expressionIndex = (*trieIndex)(nil)

func newTrieIndex() *trieIndex {
	return &trieIndex{trie: trie.New()}
}

func (ix *trieIndex) Insert(x *SpecialExpression) {
	if _, found := ix.trie.Find(x.Text); !found {
		ix.keys++
	}
	ix.trie.Add(x.Text, x)
	ix.longest = max(ix.longest, len([]rune(x.Text)))
}

func (ix *trieIndex) Lookup(text string) (*SpecialExpression, bool) {
	node, found := ix.trie.Find(text)
	if !found {
		return nil, false
	}
	x, ok := node.Meta().(*SpecialExpression)
	return x, ok
}

// PrefixesAt returns all expressions x with form[pos:] starting with x.Text,
// longest first.
func (ix *trieIndex) PrefixesAt(form []rune, pos int) []*SpecialExpression {
	var found []*SpecialExpression
	for end := pos + 1; end <= len(form) && end-pos <= ix.longest; end++ {
		key := string(form[pos:end])
		if !ix.trie.HasKeysWithPrefix(key) {
			break
		}
		if x, ok := ix.Lookup(key); ok {
			found = append(found, x)
		}
	}
	slices.Reverse(found)
	return found
}

func (ix *trieIndex) Stats() expressionIndexStats {
	return expressionIndexStats{Backend: "trie", Keys: ix.keys, Longest: ix.longest}
}
