package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeKey prepares a dictionary key or lookup probe for comparison:
//   - composes to Unicode NFC so Thai tone marks and vowels compare equal
//     regardless of input ordering
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - collapses every whitespace run (tabs, NBSP included) into one space
//
// Translation output is never normalized; only keys are.
func NormalizeKey(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	text = strings.ToLower(norm.NFC.String(text))

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
