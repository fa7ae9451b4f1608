package domain

import (
	"fmt"
	"strings"
)

// Language is a lowercase language code served by the translator.
type Language string

const (
	LanguageThai       Language = "th"
	LanguageKhamMueang Language = "km"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageThai, LanguageKhamMueang:
		return true
	}
	return false
}

// Other returns the opposite language of the pair, or "" for an invalid
// language.
func (l Language) Other() Language {
	switch l {
	case LanguageThai:
		return LanguageKhamMueang
	case LanguageKhamMueang:
		return LanguageThai
	}
	return ""
}

// ParseLanguage accepts codes case-insensitively ("TH", "th", " km ").
func ParseLanguage(s string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.IsValid() {
		return "", fmt.Errorf("language %q: %w", s, ErrUnsupportedLanguagePair)
	}
	return l, nil
}

// Direction is an ordered source/target language pair.
type Direction struct {
	Source Language `json:"source_lang"`
	Target Language `json:"target_lang"`
}

func (d Direction) String() string {
	return string(d.Source) + "-" + string(d.Target)
}

// ParseDirection resolves a pair of language codes, applying the service
// defaults (th to km) when a side is empty.
func ParseDirection(source, target string) (Direction, error) {
	if strings.TrimSpace(source) == "" {
		source = string(LanguageThai)
	}
	if strings.TrimSpace(target) == "" {
		target = string(LanguageKhamMueang)
	}

	src, err := ParseLanguage(source)
	if err != nil {
		return Direction{}, err
	}
	dst, err := ParseLanguage(target)
	if err != nil {
		return Direction{}, err
	}
	if src == dst {
		return Direction{}, fmt.Errorf("%s to %s: %w", src, dst, ErrUnsupportedLanguagePair)
	}
	return Direction{Source: src, Target: dst}, nil
}
