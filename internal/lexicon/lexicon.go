// Package lexicon loads the flat-file word lists a translator is built from:
// a vocabulary used to bias segmentation, a word dictionary and a phrase
// dictionary. Containers are immutable once returned and safe to share
// between goroutines.
package lexicon

import (
	"sort"
	"strings"
)

// Vocabulary is a set of known word forms, keyed by normalized form.
type Vocabulary map[string]struct{}

// Has reports whether word (already normalized) is in the vocabulary.
func (v Vocabulary) Has(word string) bool {
	_, ok := v[word]
	return ok
}

// Words returns the vocabulary sorted lexicographically.
func (v Vocabulary) Words() []string {
	out := make([]string, 0, len(v))
	for w := range v {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Dictionary maps a normalized source key (words joined by single spaces)
// to its target-language text.
type Dictionary map[string]string

// Lookup returns the translation for a normalized key.
func (d Dictionary) Lookup(key string) (string, bool) {
	s, ok := d[key]
	return s, ok
}

// Paths names the three resource files of one translation direction.
// An empty path means the resource is absent by configuration.
type Paths struct {
	Vocabulary string
	Dictionary string
	Phrases    string
}

// Lexicon aggregates the resources of one direction.
type Lexicon struct {
	Vocabulary Vocabulary
	Words      Dictionary
	Phrases    Dictionary
}

// Empty returns a usable lexicon with no entries.
func Empty() *Lexicon {
	return &Lexicon{
		Vocabulary: Vocabulary{},
		Words:      Dictionary{},
		Phrases:    Dictionary{},
	}
}

// KnownWords returns every single word the lexicon knows: vocabulary
// entries plus each word of every dictionary and phrase key. It is the
// corpus used by dictionary-driven segmentation.
func (l *Lexicon) KnownWords() []string {
	seen := make(map[string]struct{}, len(l.Vocabulary)+len(l.Words))
	add := func(key string) {
		for _, w := range strings.Fields(key) {
			seen[w] = struct{}{}
		}
	}
	for w := range l.Vocabulary {
		add(w)
	}
	for k := range l.Words {
		add(k)
	}
	for k := range l.Phrases {
		add(k)
	}

	out := make([]string, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
