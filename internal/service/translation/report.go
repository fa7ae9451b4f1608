package translation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/translator"
)

// UnknownWords returns the n most frequent unknown words of the translator
// reading sourceLang. n <= 0 returns every word.
func (s *Service) UnknownWords(ctx context.Context, sourceLang string, n int) ([]domain.WordCount, error) {
	eng, err := s.engineForSource(sourceLang)
	if err != nil {
		return nil, err
	}
	return eng.UnknownWordReport(n), nil
}

// ExportUnknownWords writes the full report of sourceLang to w as
// "word,count" lines.
func (s *Service) ExportUnknownWords(ctx context.Context, sourceLang string, w io.Writer) error {
	eng, err := s.engineForSource(sourceLang)
	if err != nil {
		return err
	}
	if _, err := eng.WriteUnknownWords(w); err != nil {
		return fmt.Errorf("write unknown words: %w", err)
	}
	return nil
}

// SaveUnknownWordReport writes the report of sourceLang into the report
// directory and returns the written path. Only the base name of fileName is
// used; an empty name becomes unknown_words_<lang>.csv.
func (s *Service) SaveUnknownWordReport(ctx context.Context, sourceLang, fileName string) (string, error) {
	eng, err := s.engineForSource(sourceLang)
	if err != nil {
		return "", err
	}

	name := reportFileName(fileName, eng.Direction().Source)

	if err := os.MkdirAll(s.opts.ReportDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}
	path := filepath.Join(s.opts.ReportDir, name)

	if err := eng.ExportUnknownWords(path); err != nil {
		return "", fmt.Errorf("save unknown word report: %w", err)
	}

	s.log.InfoContext(ctx, "unknown word report saved",
		slog.String("direction", eng.Direction().String()),
		slog.String("path", path),
	)
	return path, nil
}

func reportFileName(fileName string, lang domain.Language) string {
	base := filepath.Base(filepath.Clean("/" + fileName))
	if base == "/" || base == "." {
		return fmt.Sprintf("unknown_words_%s.csv", lang)
	}
	return base
}

// ResetUnknownWords clears the counter of sourceLang, or of every direction
// when sourceLang is empty.
func (s *Service) ResetUnknownWords(ctx context.Context, sourceLang string) error {
	engines, err := s.enginesForSource(sourceLang)
	if err != nil {
		return err
	}
	for _, e := range engines {
		if err := e.ResetUnknownWords(); err != nil {
			return adminError(e, "reset unknown words", err)
		}
		s.log.InfoContext(ctx, "unknown words reset", slog.String("direction", e.Direction().String()))
	}
	return nil
}

// ClearCache drops the sentence cache of sourceLang, or of every direction
// when sourceLang is empty.
func (s *Service) ClearCache(ctx context.Context, sourceLang string) error {
	engines, err := s.enginesForSource(sourceLang)
	if err != nil {
		return err
	}
	for _, e := range engines {
		if err := e.ClearCache(); err != nil {
			return adminError(e, "clear cache", err)
		}
		s.log.InfoContext(ctx, "translation cache cleared", slog.String("direction", e.Direction().String()))
	}
	return nil
}

func adminError(e Engine, op string, err error) error {
	if errors.Is(err, translator.ErrNotServing) {
		return fmt.Errorf("%s %s: %w: %w", op, e.Direction(), domain.ErrConflict, err)
	}
	return fmt.Errorf("%s %s: %w", op, e.Direction(), err)
}
