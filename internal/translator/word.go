package translator

import (
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/lexicon"
)

// DefaultMaxWindow is the largest multi-word dictionary key probed.
const DefaultMaxWindow = 5

// Recorder receives words that have no translation.
type Recorder interface {
	Record(word string)
}

// WordTranslator translates the word at a position using the word
// dictionary, preferring the longest multi-word key.
type WordTranslator struct {
	dict      lexicon.Dictionary
	maxWindow int
}

func NewWordTranslator(dict lexicon.Dictionary, maxWindow int) *WordTranslator {
	if maxWindow <= 0 {
		maxWindow = DefaultMaxWindow
	}
	return &WordTranslator{dict: dict, maxWindow: maxWindow}
}

// TranslateAt returns the translation of the words starting at
// tokens[index] and the number of tokens it covers. Windows from maxWindow
// words down to one are probed; on a miss the word is reported to rec and
// returned unchanged, original case included.
func (w *WordTranslator) TranslateAt(tokens []Token, index int, rec Recorder) (string, int) {
	tok := tokens[index]
	if !tok.IsWord() {
		return tok.Text, 1
	}

	ws := windows(tokens, index, w.maxWindow)
	for k := len(ws) - 1; k >= 0; k-- {
		if tr, ok := w.dict.Lookup(ws[k].key); ok {
			return tr, ws[k].consumed
		}
	}

	if rec != nil {
		rec.Record(tok.Text)
	}
	return tok.Text, 1
}
