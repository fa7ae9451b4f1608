package translator

import (
	"math"
	"slices"
)

// SegmentingTokenizer splits scripts written without spaces between words
// (Thai, Kham Mueang) by maximal matching over a known-word corpus. Within
// each word run it picks the segmentation with the fewest runes left
// unexplained by the corpus, then the fewest words. Adjacent unexplained
// runes are merged into one unknown word.
type SegmentingTokenizer struct {
	trie *prefixTrie
}

func NewSegmentingTokenizer(words []string) *SegmentingTokenizer {
	return &SegmentingTokenizer{trie: newPrefixTrie(words)}
}

func (t *SegmentingTokenizer) Tokenize(text string) []Token {
	if t.trie.empty() {
		return WhitespaceTokenizer{}.Tokenize(text)
	}

	var tokens []Token
	for _, r := range splitRuns(text) {
		if r.sep {
			tokens = append(tokens, runToken(text, r))
			continue
		}
		tokens = append(tokens, t.segment(text[r.start:r.end])...)
	}
	return tokens
}

type segCost struct {
	unknown int
	words   int
}

func (c segCost) less(o segCost) bool {
	if c.unknown != o.unknown {
		return c.unknown < o.unknown
	}
	return c.words < o.words
}

func (t *SegmentingTokenizer) segment(word string) []Token {
	runes, offs := runeOffsets(word)
	n := len(runes)

	inf := segCost{unknown: math.MaxInt32, words: math.MaxInt32}
	cost := make([]segCost, n+1)
	parent := make([]int, n+1)
	known := make([]bool, n+1)
	for i := 1; i <= n; i++ {
		cost[i] = inf
		parent[i] = -1
	}

	relax := func(from, to int, c segCost, isKnown bool) {
		if c.less(cost[to]) {
			cost[to] = c
			parent[to] = from
			known[to] = isKnown
		}
	}

	for i := 0; i < n; i++ {
		if cost[i] == inf {
			continue
		}
		cur := cost[i]

		if i == 0 || isBoundary(runes, i) {
			for _, end := range t.trie.matchEnds(runes, i) {
				if isBoundary(runes, end) {
					relax(i, end, segCost{unknown: cur.unknown, words: cur.words + 1}, true)
				}
			}
		}
		relax(i, i+1, segCost{unknown: cur.unknown + 1, words: cur.words + 1}, false)
	}

	type cut struct {
		start, end int
		known      bool
	}
	var cuts []cut
	for end := n; end > 0; end = parent[end] {
		cuts = append(cuts, cut{start: parent[end], end: end, known: known[end]})
	}
	slices.Reverse(cuts)

	tokens := make([]Token, 0, len(cuts))
	mergeFrom := -1
	for i, c := range cuts {
		if !c.known && i+1 < len(cuts) && !cuts[i+1].known {
			if mergeFrom < 0 {
				mergeFrom = c.start
			}
			continue
		}
		start := c.start
		if mergeFrom >= 0 {
			start, mergeFrom = mergeFrom, -1
		}
		tokens = append(tokens, Token{Text: word[offs[start]:offs[c.end]], Kind: KindWord})
	}
	return tokens
}
