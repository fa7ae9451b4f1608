package lexicon

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
)

// Loader reads lexicon resources from disk. Failures never abort loading:
// every method returns a usable (possibly empty) container together with a
// *LoadError, so callers can tell "empty by configuration" (nil error) from
// "failed to load".
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{log: logger.With("component", "lexicon")}
}

// LoadVocabulary reads a vocabulary file.
func (l *Loader) LoadVocabulary(path string) (Vocabulary, error) {
	var vocab Vocabulary
	err := l.load(path, "vocabulary", func(r io.Reader) (Report, error) {
		var (
			rep Report
			err error
		)
		vocab, rep, err = ParseVocabulary(r)
		return rep, err
	})
	if vocab == nil {
		vocab = Vocabulary{}
	}
	return vocab, err
}

// LoadDictionary reads a comma-separated word dictionary.
func (l *Loader) LoadDictionary(path string) (Dictionary, error) {
	return l.loadPairs(path, "dictionary", ParseDictionary)
}

// LoadPhrases reads a tab-separated phrase dictionary.
func (l *Loader) LoadPhrases(path string) (Dictionary, error) {
	return l.loadPairs(path, "phrases", ParsePhrases)
}

func (l *Loader) loadPairs(path, kind string, parse func(io.Reader) (Dictionary, Report, error)) (Dictionary, error) {
	var dict Dictionary
	err := l.load(path, kind, func(r io.Reader) (Report, error) {
		var (
			rep Report
			err error
		)
		dict, rep, err = parse(r)
		return rep, err
	})
	if dict == nil {
		dict = Dictionary{}
	}
	return dict, err
}

func (l *Loader) load(path, kind string, parse func(io.Reader) (Report, error)) error {
	if path == "" {
		l.log.Debug("resource not configured", slog.String("kind", kind))
		return nil
	}

	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		l.log.Error("open lexicon resource",
			slog.String("kind", kind),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	rep, err := parse(f)
	for _, m := range rep.Skipped {
		l.log.Warn("skip malformed line",
			slog.String("kind", kind),
			slog.String("path", path),
			slog.Int("line", m.Line),
			slog.String("reason", m.Reason),
		)
	}
	if err != nil {
		l.log.Error("read lexicon resource",
			slog.String("kind", kind),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return &LoadError{Path: path, Err: err}
	}

	l.log.Info("lexicon resource loaded",
		slog.String("kind", kind),
		slog.String("path", path),
		slog.Int("entries", rep.Entries),
		slog.Int("duplicates", rep.Duplicates),
		slog.Int("skipped", len(rep.Skipped)),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// Load reads the three resources of one direction concurrently. The
// returned lexicon is always usable; the error joins every *LoadError
// encountered, or carries ctx.Err() if the context ended first.
func (l *Loader) Load(ctx context.Context, paths Paths) (*Lexicon, error) {
	lex := Empty()
	var vocabErr, wordsErr, phrasesErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		lex.Vocabulary, vocabErr = l.LoadVocabulary(paths.Vocabulary)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		lex.Words, wordsErr = l.LoadDictionary(paths.Dictionary)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		lex.Phrases, phrasesErr = l.LoadPhrases(paths.Phrases)
		return nil
	})

	if err := g.Wait(); err != nil {
		return lex, err
	}
	return lex, errors.Join(vocabErr, wordsErr, phrasesErr)
}
