package translator

import (
	"strings"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
)

// window is a run of consecutive words starting at a token index.
type window struct {
	key      string // normalized words joined by single spaces
	consumed int    // tokens covered, including inner separators
}

// windows returns up to max windows starting at tokens[start]; windows[k]
// covers k+1 words. Separators between words are skipped and absorbed
// into the window.
func windows(tokens []Token, start, max int) []window {
	if start >= len(tokens) || !tokens[start].IsWord() || max <= 0 {
		return nil
	}

	out := make([]window, 0, max)
	var key strings.Builder
	i := start
	for len(out) < max && i < len(tokens) {
		if len(out) > 0 {
			key.WriteByte(' ')
		}
		key.WriteString(domain.NormalizeKey(tokens[i].Text))
		out = append(out, window{key: key.String(), consumed: i - start + 1})

		j := i + 1
		for j < len(tokens) && !tokens[j].IsWord() {
			j++
		}
		i = j
	}
	return out
}
