// Package translationlog implements the translation log repository using
// PostgreSQL. Rows are append-only; the retention job is the only deleter.
package translationlog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/BlackHand133/WebApp-Khummuang-Translate/internal/adapter/postgres"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
)

const (
	table = "translation_logs"

	// DefaultLimit applies when a filter carries no limit.
	DefaultLimit = 50
	// MaxLimit caps a single page.
	MaxLimit = 500
)

var columns = []string{
	"id",
	"original_text",
	"translated_text",
	"source_language",
	"target_language",
	"request_id",
	"created_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides translation log persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new translation log repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a log record and returns it as stored. A zero ID or
// CreatedAt is filled in before the insert.
func (r *Repo) Create(ctx context.Context, log domain.TranslationLog) (domain.TranslationLog, error) {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	query := psql.Insert(table).
		Columns(columns...).
		Values(
			log.ID,
			log.OriginalText,
			log.TranslatedText,
			string(log.SourceLanguage),
			string(log.TargetLanguage),
			log.RequestID,
			log.CreatedAt,
		).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return domain.TranslationLog{}, fmt.Errorf("build insert translation_log: %w", err)
	}

	saved, err := scanLog(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.TranslationLog{}, postgres.MapError(err, "translation_log", log.ID.String())
	}
	return saved, nil
}

// DeleteOlderThan removes records created before cutoff and returns the
// number of deleted rows.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	sql, args, err := psql.Delete(table).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete translation_logs: %w", err)
	}

	tag, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "translation_logs", "")
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns records matching filter, newest first.
func (r *Repo) List(ctx context.Context, filter domain.TranslationLogFilter) ([]domain.TranslationLog, error) {
	query := psql.Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(clampLimit(filter.Limit)))

	if filter.SourceLanguage != "" {
		query = query.Where(squirrel.Eq{"source_language": string(filter.SourceLanguage)})
	}
	if filter.TargetLanguage != "" {
		query = query.Where(squirrel.Eq{"target_language": string(filter.TargetLanguage)})
	}
	if filter.Since != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *filter.Since})
	}
	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select translation_logs: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "translation_logs", "")
	}
	defer rows.Close()

	logs := make([]domain.TranslationLog, 0)
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan translation_log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "translation_logs", "")
	}

	return logs, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanLog(row pgx.Row) (domain.TranslationLog, error) {
	var (
		l              domain.TranslationLog
		source, target string
	)
	if err := row.Scan(
		&l.ID,
		&l.OriginalText,
		&l.TranslatedText,
		&source,
		&target,
		&l.RequestID,
		&l.CreatedAt,
	); err != nil {
		return domain.TranslationLog{}, err
	}
	l.SourceLanguage = domain.Language(source)
	l.TargetLanguage = domain.Language(target)
	return l, nil
}

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultLimit
	case n > MaxLimit:
		return MaxLimit
	default:
		return n
	}
}
