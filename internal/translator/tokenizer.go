package translator

import (
	"fmt"
	"strings"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/lexicon"
)

// Tokenizer splits text into word and separator tokens.
type Tokenizer interface {
	Tokenize(text string) []Token
}

// Segmentation names a tokenizer strategy in configuration.
type Segmentation string

const (
	SegmentationWhitespace Segmentation = "whitespace"
	SegmentationVocabulary Segmentation = "vocabulary"
	SegmentationDictionary Segmentation = "dictionary"
)

// NewTokenizer selects the tokenizer for a direction once, at construction.
func NewTokenizer(s Segmentation, lex *lexicon.Lexicon) (Tokenizer, error) {
	switch Segmentation(strings.ToLower(string(s))) {
	case SegmentationWhitespace:
		return NewWhitespaceTokenizer(), nil
	case SegmentationVocabulary:
		return NewVocabularyTokenizer(lex.Vocabulary.Words()), nil
	case SegmentationDictionary, "":
		return NewSegmentingTokenizer(lex.KnownWords()), nil
	default:
		return nil, fmt.Errorf("unknown segmentation %q", s)
	}
}

// WhitespaceTokenizer emits every maximal run of non-separator runes as a
// word.
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() *WhitespaceTokenizer { return &WhitespaceTokenizer{} }

func (WhitespaceTokenizer) Tokenize(text string) []Token {
	runs := splitRuns(text)
	tokens := make([]Token, 0, len(runs))
	for _, r := range runs {
		tokens = append(tokens, runToken(text, r))
	}
	return tokens
}

func runToken(text string, r span) Token {
	kind := KindWord
	if r.sep {
		kind = KindSeparator
	}
	return Token{Text: text[r.start:r.end], Kind: kind}
}

// VocabularyTokenizer cuts each word run greedily into the longest
// vocabulary words it contains. Runes where no vocabulary word starts are
// grouped into a single unknown word. Without a vocabulary it behaves like
// WhitespaceTokenizer.
type VocabularyTokenizer struct {
	trie *prefixTrie
}

func NewVocabularyTokenizer(vocabulary []string) *VocabularyTokenizer {
	return &VocabularyTokenizer{trie: newPrefixTrie(vocabulary)}
}

func (t *VocabularyTokenizer) Tokenize(text string) []Token {
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

func (t *VocabularyTokenizer) segment(word string) []Token {
	runes, offs := runeOffsets(word)
	var tokens []Token

	unknownStart := -1
	flush := func(end int) {
		if unknownStart >= 0 {
			tokens = append(tokens, Token{Text: word[offs[unknownStart]:offs[end]], Kind: KindWord})
			unknownStart = -1
		}
	}

	for i := 0; i < len(runes); {
		end := i
		if isBoundary(runes, i) || i == 0 {
			end = t.trie.longestMatch(runes, i)
		}
		if end > i {
			flush(i)
			tokens = append(tokens, Token{Text: word[offs[i]:offs[end]], Kind: KindWord})
			i = end
			continue
		}
		if unknownStart < 0 {
			unknownStart = i
		}
		i++
	}
	flush(len(runes))
	return tokens
}
