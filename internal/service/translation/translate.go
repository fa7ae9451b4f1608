package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/pkg/ctxutil"
)

// Translate translates input.Text in the requested direction. The text is
// passed through untrimmed so its spacing survives.
func (s *Service) Translate(ctx context.Context, input TranslateInput) (*TranslateResult, error) {
	if err := input.Validate(s.opts.MaxTextLength); err != nil {
		return nil, err
	}

	dir, err := domain.ParseDirection(input.SourceLang, input.TargetLang)
	if err != nil {
		return nil, err
	}

	eng, ok := s.engines[dir]
	if !ok {
		return nil, fmt.Errorf("%s: %w", dir, domain.ErrUnsupportedLanguagePair)
	}

	start := time.Now()
	out, err := eng.TranslateText(ctx, input.Text)
	if err != nil {
		return nil, fmt.Errorf("translate %s: %w", dir, err)
	}

	s.log.DebugContext(ctx, "text translated",
		slog.String("direction", dir.String()),
		slog.Int("length", len(input.Text)),
		slog.Duration("duration", time.Since(start)),
	)

	s.record(ctx, domain.TranslationLog{
		ID:             uuid.New(),
		OriginalText:   input.Text,
		TranslatedText: out,
		SourceLanguage: dir.Source,
		TargetLanguage: dir.Target,
		RequestID:      ctxutil.RequestIDFromCtx(ctx),
		CreatedAt:      time.Now().UTC(),
	})

	return &TranslateResult{Translation: out, Direction: dir}, nil
}

// record stores entry in the translation log. Failures are logged and never
// reach the caller; an open breaker skips the write entirely.
func (s *Service) record(ctx context.Context, entry domain.TranslationLog) {
	if s.logs == nil {
		return
	}

	_, err := s.breaker.Execute(func() (interface{}, error) {
		wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.LogTimeout)
		defer cancel()
		return s.logs.Create(wctx, entry)
	})
	if err == nil {
		return
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		s.log.DebugContext(ctx, "translation log skipped", slog.String("breaker", s.breaker.State().String()))
		return
	}
	s.log.WarnContext(ctx, "translation log write failed",
		slog.String("log_id", entry.ID.String()),
		slog.String("error", err.Error()),
	)
}
