package translator

import (
	"strings"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/lexicon"
)

// PhraseTable matches multi-word expressions as whole units.
type PhraseTable struct {
	entries  lexicon.Dictionary
	maxWords int
}

// Match is a phrase found in a token stream.
type Match struct {
	Key         string
	Translation string
	Consumed    int
}

// NewPhraseTable indexes a phrase dictionary by word count.
func NewPhraseTable(phrases lexicon.Dictionary) *PhraseTable {
	p := &PhraseTable{entries: phrases}
	for key := range phrases {
		if n := len(strings.Fields(key)); n > p.maxWords {
			p.maxWords = n
		}
	}
	return p
}

// MaxWords returns the word count of the longest phrase.
func (p *PhraseTable) MaxWords() int { return p.maxWords }

// MatchLongest finds the phrase with the most words whose word sequence
// starts at tokens[start]. Keys are normalized on load, so each word
// count has at most one candidate and the result is deterministic.
func (p *PhraseTable) MatchLongest(tokens []Token, start int) (Match, bool) {
	if p == nil || p.maxWords == 0 {
		return Match{}, false
	}

	ws := windows(tokens, start, p.maxWords)
	for k := len(ws) - 1; k >= 0; k-- {
		if tr, ok := p.entries.Lookup(ws[k].key); ok {
			return Match{Key: ws[k].key, Translation: tr, Consumed: ws[k].consumed}, true
		}
	}
	return Match{}, false
}
