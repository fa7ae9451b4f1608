package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
)

// SeedTranslationLog inserts a translation log row created at createdAt and
// returns it.
func SeedTranslationLog(t *testing.T, pool *pgxpool.Pool, dir domain.Direction, createdAt time.Time) domain.TranslationLog {
	t.Helper()

	log := domain.TranslationLog{
		ID:             uuid.New(),
		OriginalText:   "ป้อ " + uuid.NewString()[:8],
		TranslatedText: "พ่อ",
		SourceLanguage: dir.Source,
		TargetLanguage: dir.Target,
		RequestID:      uuid.NewString(),
		CreatedAt:      createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO translation_logs (id, original_text, translated_text, source_language, target_language, request_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		log.ID, log.OriginalText, log.TranslatedText,
		string(log.SourceLanguage), string(log.TargetLanguage),
		log.RequestID, log.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed translation_log: %v", err)
	}

	return log
}
