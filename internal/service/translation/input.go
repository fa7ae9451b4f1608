package translation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
)

// TranslateInput holds the parameters of a translation request. Empty
// languages default to Thai to Kham Mueang.
type TranslateInput struct {
	Text       string
	SourceLang string
	TargetLang string
}

// Validate checks the text. maxLen <= 0 disables the length check.
func (i TranslateInput) Validate(maxLen int) error {
	if strings.TrimSpace(i.Text) == "" {
		return domain.NewValidationError("text", "required")
	}
	if maxLen > 0 && utf8.RuneCountInString(i.Text) > maxLen {
		return domain.NewValidationError("text", fmt.Sprintf("max %d characters", maxLen))
	}
	return nil
}

// HistoryInput filters the translation history.
type HistoryInput struct {
	SourceLang string
	TargetLang string
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i HistoryInput) Validate() error {
	var errs []domain.FieldError
	if i.SourceLang != "" {
		if _, err := domain.ParseLanguage(i.SourceLang); err != nil {
			errs = append(errs, domain.FieldError{Field: "source_lang", Message: "unsupported language"})
		}
	}
	if i.TargetLang != "" {
		if _, err := domain.ParseLanguage(i.TargetLang); err != nil {
			errs = append(errs, domain.FieldError{Field: "target_lang", Message: "unsupported language"})
		}
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Limit > 500 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "max 500"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
