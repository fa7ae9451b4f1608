// Package translator implements the rule-based translation pipeline:
// tokenization, longest phrase matching, windowed dictionary lookup,
// unknown-word tracking and sentence caching.
package translator

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/lexicon"
)

// ErrNotServing is returned by administrative operations on a translator
// that has not started serving.
var ErrNotServing = errors.New("translator is not serving")

// State is the lifecycle stage of a Translator.
type State int32

const (
	StateUninitialized State = iota
	StateLoaded
	StateServing
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateServing:
		return "serving"
	default:
		return "uninitialized"
	}
}

// Options tunes a Translator.
type Options struct {
	MaxWindow int
	CacheSize int
	CacheTTL  time.Duration
}

// Stats is a snapshot of a translator's mutable state.
type Stats struct {
	Direction    domain.Direction `json:"direction"`
	State        string           `json:"state"`
	CachedItems  int              `json:"cached_items"`
	UnknownWords int              `json:"unknown_words"`
}

type sentenceResult struct {
	text    string
	unknown []string
}

type wordList []string

func (l *wordList) Record(word string) { *l = append(*l, word) }

// Translator translates one direction. Its dictionaries are read-only and
// shared by all callers; the cache and the unknown-word counter are safe
// for concurrent use.
//
// A zero Translator is uninitialized and returns its input unchanged.
type Translator struct {
	direction domain.Direction
	tokenizer Tokenizer
	phrases   *PhraseTable
	words     *WordTranslator
	unknown   *UnknownWords
	cache     *Cache[sentenceResult]
	state     atomic.Int32
}

// New builds a loaded translator from a lexicon.
func New(dir domain.Direction, lex *lexicon.Lexicon, tok Tokenizer, opts Options) *Translator {
	if lex == nil {
		lex = lexicon.Empty()
	}
	if tok == nil {
		tok = NewWhitespaceTokenizer()
	}
	t := &Translator{
		direction: dir,
		tokenizer: tok,
		phrases:   NewPhraseTable(lex.Phrases),
		words:     NewWordTranslator(lex.Words, opts.MaxWindow),
		unknown:   NewUnknownWords(),
		cache:     NewCache[sentenceResult](opts.CacheSize, opts.CacheTTL),
	}
	t.state.Store(int32(StateLoaded))
	return t
}

// Direction returns the language pair served.
func (t *Translator) Direction() domain.Direction { return t.direction }

// State returns the current lifecycle stage.
func (t *Translator) State() State { return State(t.state.Load()) }

// Start moves a loaded translator to serving. It is a no-op otherwise.
func (t *Translator) Start() {
	t.state.CompareAndSwap(int32(StateLoaded), int32(StateServing))
}

// UnknownWords exposes the unknown-word counter for reporting.
func (t *Translator) UnknownWords() *UnknownWords { return t.unknown }

// TranslateSentence translates one sentence. Separators are copied
// verbatim, so spacing and punctuation survive translation.
func (t *Translator) TranslateSentence(sentence string) string {
	if t.State() == StateUninitialized {
		return sentence
	}
	t.Start()

	// Unknown words are replayed from the cached result so the counter
	// does not depend on cache hits.
	res, _ := t.cache.GetOrCompute(sentence, func() sentenceResult {
		return t.translate(sentence)
	})
	for _, w := range res.unknown {
		t.unknown.Record(w)
	}
	return res.text
}

func (t *Translator) translate(sentence string) sentenceResult {
	tokens := t.tokenizer.Tokenize(sentence)

	var (
		out     strings.Builder
		unknown wordList
	)
	out.Grow(len(sentence))

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if !tok.IsWord() {
			out.WriteString(tok.Text)
			i++
			continue
		}
		if m, ok := t.phrases.MatchLongest(tokens, i); ok {
			out.WriteString(m.Translation)
			i += m.Consumed
			continue
		}
		tr, n := t.words.TranslateAt(tokens, i, &unknown)
		out.WriteString(tr)
		i += n
	}
	return sentenceResult{text: out.String(), unknown: unknown}
}

// TranslateText splits text into sentences and translates each one. ctx
// is checked between sentences.
func (t *Translator) TranslateText(ctx context.Context, text string) (string, error) {
	var out strings.Builder
	out.Grow(len(text))

	for _, s := range SplitSentences(text) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if strings.TrimSpace(s) == "" {
			out.WriteString(s)
			continue
		}
		out.WriteString(t.TranslateSentence(s))
	}
	return out.String(), nil
}

// UnknownWordReport returns the n most frequent unknown words; n <= 0
// returns all of them.
func (t *Translator) UnknownWordReport(n int) []domain.WordCount {
	return t.unknown.TopN(n)
}

// WriteUnknownWords writes the full report to w as "word,count" lines.
func (t *Translator) WriteUnknownWords(w io.Writer) (int64, error) {
	return t.unknown.WriteTo(w)
}

// ExportUnknownWords writes the full report to the file at path.
func (t *Translator) ExportUnknownWords(path string) error {
	return t.unknown.Export(path)
}

// ResetUnknownWords clears the unknown-word counter.
func (t *Translator) ResetUnknownWords() error {
	if t.State() != StateServing {
		return ErrNotServing
	}
	t.unknown.Reset()
	return nil
}

// ClearCache drops every cached sentence.
func (t *Translator) ClearCache() error {
	if t.State() != StateServing {
		return ErrNotServing
	}
	t.cache.Clear()
	return nil
}

// Stats reports cache and counter sizes.
func (t *Translator) Stats() Stats {
	s := Stats{Direction: t.direction, State: t.State().String()}
	if t.State() != StateUninitialized {
		s.CachedItems = t.cache.Len()
		s.UnknownWords = t.unknown.Len()
	}
	return s
}
