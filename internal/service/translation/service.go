// Package translation serves translation requests over the configured
// directions and exposes the unknown-word reports and translation history.
package translation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/translator"
)

// ErrLogDisabled is returned by history queries when no translation log
// store is configured.
var ErrLogDisabled = errors.New("translation log is not configured")

const (
	defaultLogTimeout      = 2 * time.Second
	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
)

// Engine is one translation direction, typically a *translator.Translator.
type Engine interface {
	Direction() domain.Direction
	TranslateText(ctx context.Context, text string) (string, error)
	UnknownWordReport(n int) []domain.WordCount
	WriteUnknownWords(w io.Writer) (int64, error)
	ExportUnknownWords(path string) error
	ResetUnknownWords() error
	ClearCache() error
	Stats() translator.Stats
}

type logRepo interface {
	Create(ctx context.Context, log domain.TranslationLog) (domain.TranslationLog, error)
	List(ctx context.Context, filter domain.TranslationLogFilter) ([]domain.TranslationLog, error)
}

// Options tunes the service.
type Options struct {
	MaxTextLength   int
	ReportDir       string
	LogTimeout      time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Service routes requests to the translator of the requested direction.
type Service struct {
	engines map[domain.Direction]Engine
	order   []domain.Direction
	logs    logRepo
	breaker *gobreaker.CircuitBreaker
	opts    Options
	log     *slog.Logger
}

// NewService creates a translation service. logs may be nil, in which case
// translations are not recorded and history queries return ErrLogDisabled.
func NewService(
	log *slog.Logger,
	logs logRepo,
	opts Options,
	engines ...Engine,
) *Service {
	if opts.LogTimeout <= 0 {
		opts.LogTimeout = defaultLogTimeout
	}
	if opts.BreakerFailures == 0 {
		opts.BreakerFailures = defaultBreakerFailures
	}
	if opts.BreakerTimeout <= 0 {
		opts.BreakerTimeout = defaultBreakerTimeout
	}

	s := &Service{
		engines: make(map[domain.Direction]Engine, len(engines)),
		logs:    logs,
		opts:    opts,
		log:     log.With("service", "translation"),
	}
	for _, e := range engines {
		dir := e.Direction()
		if _, dup := s.engines[dir]; !dup {
			s.order = append(s.order, dir)
		}
		s.engines[dir] = e
	}

	failures := opts.BreakerFailures
	s.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "translation-log",
		MaxRequests: 1,
		Timeout:     opts.BreakerTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			s.log.Warn("circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return s
}

// Directions returns the served language pairs in registration order.
func (s *Service) Directions() []domain.Direction {
	out := make([]domain.Direction, len(s.order))
	copy(out, s.order)
	return out
}

// Stats returns a snapshot per direction.
func (s *Service) Stats() []translator.Stats {
	out := make([]translator.Stats, 0, len(s.order))
	for _, d := range s.order {
		out = append(out, s.engines[d].Stats())
	}
	return out
}

// engineForSource finds the translator reading the given source language.
func (s *Service) engineForSource(lang string) (Engine, error) {
	if strings.TrimSpace(lang) == "" {
		return nil, domain.NewValidationError("source_lang", "required")
	}
	l, err := domain.ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	for _, d := range s.order {
		if d.Source == l {
			return s.engines[d], nil
		}
	}
	return nil, fmt.Errorf("source %s: %w", l, domain.ErrUnsupportedLanguagePair)
}

// enginesForSource resolves lang to a single translator, or to every
// translator when lang is empty.
func (s *Service) enginesForSource(lang string) ([]Engine, error) {
	if strings.TrimSpace(lang) == "" {
		out := make([]Engine, 0, len(s.order))
		for _, d := range s.order {
			out = append(out, s.engines[d])
		}
		return out, nil
	}
	e, err := s.engineForSource(lang)
	if err != nil {
		return nil, err
	}
	return []Engine{e}, nil
}
