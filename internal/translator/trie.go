package translator

import "unicode"

// prefixTrie indexes known words rune by rune for longest-match lookups.
type prefixTrie struct {
	root *trieNode
	size int
}

type trieNode struct {
	terminal bool
	children map[rune]*trieNode
}

func newPrefixTrie(words []string) *prefixTrie {
	t := &prefixTrie{root: &trieNode{children: map[rune]*trieNode{}}}
	for _, w := range words {
		t.add(w)
	}
	return t
}

func (t *prefixTrie) add(word string) {
	if word == "" {
		return
	}
	cur := t.root
	for _, r := range word {
		r = unicode.ToLower(r)
		next, ok := cur.children[r]
		if !ok {
			next = &trieNode{children: map[rune]*trieNode{}}
			cur.children[r] = next
		}
		cur = next
	}
	if !cur.terminal {
		cur.terminal = true
		t.size++
	}
}

func (t *prefixTrie) empty() bool { return t.size == 0 }

// matchEnds returns, in ascending order, every j such that runes[start:j]
// is a known word.
func (t *prefixTrie) matchEnds(runes []rune, start int) []int {
	var ends []int
	cur := t.root
	for j := start; j < len(runes); j++ {
		next, ok := cur.children[unicode.ToLower(runes[j])]
		if !ok {
			break
		}
		cur = next
		if cur.terminal {
			ends = append(ends, j+1)
		}
	}
	return ends
}

// longestMatch returns the end of the longest known word starting at
// start that ends on a valid boundary, or start when none does.
func (t *prefixTrie) longestMatch(runes []rune, start int) int {
	ends := t.matchEnds(runes, start)
	for i := len(ends) - 1; i >= 0; i-- {
		if isBoundary(runes, ends[i]) {
			return ends[i]
		}
	}
	return start
}
