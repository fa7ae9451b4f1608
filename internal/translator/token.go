package translator

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind distinguishes translatable words from the text between them.
type Kind uint8

const (
	KindWord Kind = iota
	KindSeparator
)

func (k Kind) String() string {
	if k == KindSeparator {
		return "separator"
	}
	return "word"
}

// Token is a slice of the input text. Concatenating the Text of every token
// a Tokenizer emits reproduces its input byte for byte.
type Token struct {
	Text string
	Kind Kind
}

// IsWord reports whether the token can be translated.
func (t Token) IsWord() bool { return t.Kind == KindWord }

// Join concatenates token texts.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

func isSeparatorRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// isJoiner reports whether r may join two letters into one word, as in
// "don't" or "e-mail".
func isJoiner(r rune) bool {
	switch r {
	case '\'', '\u2019', '-', '\u2010':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}

// span is a half-open byte range of the input.
type span struct {
	start, end int
	sep        bool
}

// splitRuns cuts text into maximal runs of separator and non-separator
// runes. Invalid UTF-8 bytes belong to word runs. A joiner between two
// letters stays inside the word run.
func splitRuns(text string) []span {
	var runs []span
	prev := utf8.RuneError
	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		sep := r != utf8.RuneError && isSeparatorRune(r)
		if sep && isJoiner(r) && isWordRune(prev) {
			next, _ := utf8.DecodeRuneInString(text[i+w:])
			sep = !isWordRune(next)
		}
		prev = r
		if n := len(runs); n > 0 && runs[n-1].sep == sep {
			runs[n-1].end = i + w
		} else {
			runs = append(runs, span{start: i, end: i + w, sep: sep})
		}
		i += w
	}
	return runs
}

// runeOffsets decodes s and returns its runes with the byte offset of each
// rune plus a trailing len(s) entry, so runes[i:j] maps to s[offs[i]:offs[j]].
func runeOffsets(s string) ([]rune, []int) {
	runes := make([]rune, 0, len(s))
	offs := make([]int, 0, len(s)+1)
	for i, r := range s {
		runes = append(runes, r)
		offs = append(offs, i)
	}
	offs = append(offs, len(s))
	return runes, offs
}

// isBoundary reports whether a word may end before runes[j]. Combining
// marks (Thai vowels and tone marks) always attach to the preceding rune.
func isBoundary(runes []rune, j int) bool {
	return j >= len(runes) || !unicode.Is(unicode.Mn, runes[j])
}
