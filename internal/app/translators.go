package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/config"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/lexicon"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/translator"
)

// direction pairs a language pair with its configured resources.
type direction struct {
	dir domain.Direction
	cfg config.DirectionConfig
}

func configuredDirections(cfg config.TranslatorConfig) []direction {
	all := []direction{
		{dir: domain.Direction{Source: domain.LanguageThai, Target: domain.LanguageKhamMueang}, cfg: cfg.ThKm},
		{dir: domain.Direction{Source: domain.LanguageKhamMueang, Target: domain.LanguageThai}, cfg: cfg.KmTh},
	}
	out := all[:0]
	for _, d := range all {
		if d.cfg.Enabled() {
			out = append(out, d)
		}
	}
	return out
}

// LoadTranslators loads the lexicons of every enabled direction in parallel
// and returns translators in the Serving state. Missing or unreadable
// resource files are logged and leave that resource empty; only a bad
// segmentation setting or a cancelled context is fatal.
func LoadTranslators(ctx context.Context, cfg config.TranslatorConfig, logger *slog.Logger) ([]*translator.Translator, error) {
	dirs := configuredDirections(cfg)
	out := make([]*translator.Translator, len(dirs))
	loader := lexicon.NewLoader(logger)
	opts := translator.Options{
		MaxWindow: cfg.MaxWindow,
		CacheSize: cfg.EffectiveCacheSize(),
		CacheTTL:  cfg.CacheTTL,
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, d := range dirs {
		g.Go(func() error {
			start := time.Now()
			lex, err := loader.Load(gctx, lexicon.Paths{
				Vocabulary: cfg.Resolve(d.cfg.Vocabulary),
				Dictionary: cfg.Resolve(d.cfg.Dictionary),
				Phrases:    cfg.Resolve(d.cfg.Phrases),
			})
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if err != nil {
				logger.Warn("lexicon loaded with errors",
					slog.String("direction", d.dir.String()),
					slog.String("error", err.Error()),
				)
			}

			tok, err := translator.NewTokenizer(translator.Segmentation(d.cfg.Segmentation), lex)
			if err != nil {
				return fmt.Errorf("direction %s: %w", d.dir, err)
			}

			t := translator.New(d.dir, lex, tok, opts)
			t.Start()
			out[i] = t

			logger.Info("translator ready",
				slog.String("direction", d.dir.String()),
				slog.String("segmentation", d.cfg.Segmentation),
				slog.Int("words", len(lex.Words)),
				slog.Int("phrases", len(lex.Phrases)),
				slog.Int("vocabulary", len(lex.Vocabulary)),
				slog.Duration("duration", time.Since(start)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
