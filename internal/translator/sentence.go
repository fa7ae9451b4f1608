package translator

import (
	"unicode"
	"unicode/utf8"
)

func isTerminal(r rune) bool {
	switch r {
	case '.', '!', '?', '…', '。', '！', '？':
		return true
	}
	return false
}

// SplitSentences cuts text after a run of terminal punctuation that is
// followed by whitespace, and after every line break run. The whitespace
// stays with the preceding sentence, so joining the result reproduces the
// input exactly.
func SplitSentences(text string) []string {
	var out []string
	start := 0
	afterTerminal := false

	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		switch {
		case isTerminal(r):
			afterTerminal = true
			i += w
		case r == '\n' || (afterTerminal && unicode.IsSpace(r)):
			for i < len(text) {
				r, w = utf8.DecodeRuneInString(text[i:])
				if !unicode.IsSpace(r) {
					break
				}
				i += w
			}
			out = append(out, text[start:i])
			start = i
			afterTerminal = false
		default:
			afterTerminal = false
			i += w
		}
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}
