package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranslationLog is a persisted record of one served translation.
type TranslationLog struct {
	ID             uuid.UUID
	OriginalText   string
	TranslatedText string
	SourceLanguage Language
	TargetLanguage Language
	RequestID      string
	CreatedAt      time.Time
}

// TranslationLogFilter narrows a translation log listing. Zero values mean
// "no constraint".
type TranslationLogFilter struct {
	SourceLanguage Language
	TargetLanguage Language
	Since          *time.Time
	Limit          int
	Offset         int
}

// WordCount is one row of an unknown-word report.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
