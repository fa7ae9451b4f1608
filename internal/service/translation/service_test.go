package translation

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/lexicon"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/translator"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/pkg/ctxutil"
)

//go:generate moq -out engine_mock_test.go -pkg translation . Engine:engineMock
//go:generate moq -out log_repo_mock_test.go -pkg translation . logRepo

var (
	thKm = domain.Direction{Source: domain.LanguageThai, Target: domain.LanguageKhamMueang}
	kmTh = domain.Direction{Source: domain.LanguageKhamMueang, Target: domain.LanguageThai}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, logs logRepo, opts Options, engines ...Engine) *Service {
	t.Helper()
	return NewService(discardLogger(), logs, opts, engines...)
}

// newEngine returns a mock that echoes its input behind a direction prefix.
func newEngine(dir domain.Direction) *engineMock {
	return &engineMock{
		DirectionFunc: func() domain.Direction { return dir },
		TranslateTextFunc: func(ctx context.Context, text string) (string, error) {
			return dir.String() + ":" + text, nil
		},
		ClearCacheFunc:        func() error { return nil },
		ResetUnknownWordsFunc: func() error { return nil },
		StatsFunc: func() translator.Stats {
			return translator.Stats{Direction: dir, State: "serving"}
		},
		UnknownWordReportFunc: func(n int) []domain.WordCount {
			return []domain.WordCount{{Word: "xyz", Count: 2}}
		},
		WriteUnknownWordsFunc: func(w io.Writer) (int64, error) {
			n, err := io.WriteString(w, "xyz,2\n")
			return int64(n), err
		},
		ExportUnknownWordsFunc: func(path string) error {
			return os.WriteFile(path, []byte("xyz,2\n"), 0o644)
		},
	}
}

func okLogRepo() *logRepoMock {
	return &logRepoMock{
		CreateFunc: func(ctx context.Context, log domain.TranslationLog) (domain.TranslationLog, error) {
			return log, nil
		},
		ListFunc: func(ctx context.Context, filter domain.TranslationLogFilter) ([]domain.TranslationLog, error) {
			return []domain.TranslationLog{{ID: uuid.New()}}, nil
		},
	}
}

// ---------------------------------------------------------------------------
// Translate
// ---------------------------------------------------------------------------

func TestTranslate_DefaultsToThaiToKhamMueang(t *testing.T) {
	t.Parallel()

	logs := okLogRepo()
	svc := newTestService(t, logs, Options{}, newEngine(thKm), newEngine(kmTh))
	ctx := ctxutil.WithRequestID(context.Background(), "req-1")

	result, err := svc.Translate(ctx, TranslateInput{Text: " สวัสดี "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Direction != thKm {
		t.Errorf("direction: got %s, want %s", result.Direction, thKm)
	}
	if result.Translation != "th-km: สวัสดี " {
		t.Errorf("translation: got %q", result.Translation)
	}

	calls := logs.CreateCalls()
	if len(calls) != 1 {
		t.Fatalf("Create calls: got %d, want 1", len(calls))
	}
	entry := calls[0].Log
	if entry.RequestID != "req-1" {
		t.Errorf("request id: got %q, want req-1", entry.RequestID)
	}
	if entry.OriginalText != " สวัสดี " {
		t.Errorf("original text should be untrimmed, got %q", entry.OriginalText)
	}
	if entry.SourceLanguage != domain.LanguageThai || entry.TargetLanguage != domain.LanguageKhamMueang {
		t.Errorf("log direction: got %s-%s", entry.SourceLanguage, entry.TargetLanguage)
	}
	if entry.ID == uuid.Nil {
		t.Error("log id should be set")
	}
}

func TestTranslate_RoutesByDirection(t *testing.T) {
	t.Parallel()

	th, km := newEngine(thKm), newEngine(kmTh)
	svc := newTestService(t, nil, Options{}, th, km)

	result, err := svc.Translate(context.Background(), TranslateInput{Text: "ป้อ", SourceLang: "KM", TargetLang: "th"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Translation != "km-th:ป้อ" {
		t.Errorf("translation: got %q", result.Translation)
	}
	if len(th.TranslateTextCalls()) != 0 {
		t.Error("th-km translator should not be called")
	}
	if len(km.TranslateTextCalls()) != 1 {
		t.Errorf("km-th calls: got %d, want 1", len(km.TranslateTextCalls()))
	}
}

func TestTranslate_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input TranslateInput
		field string
	}{
		{"empty text", TranslateInput{Text: ""}, "text"},
		{"whitespace only", TranslateInput{Text: " \n\t "}, "text"},
		{"too long", TranslateInput{Text: strings.Repeat("ก", 11)}, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng := newEngine(thKm)
			svc := newTestService(t, nil, Options{MaxTextLength: 10}, eng)

			_, err := svc.Translate(context.Background(), tt.input)

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Errors[0].Field != tt.field {
				t.Errorf("field: got %q, want %q", verr.Errors[0].Field, tt.field)
			}
			if len(eng.TranslateTextCalls()) != 0 {
				t.Error("translator should not be called")
			}
		})
	}
}

func TestTranslate_MaxLengthCountsRunes(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, Options{MaxTextLength: 10}, newEngine(thKm))

	// Ten Thai runes are thirty bytes.
	if _, err := svc.Translate(context.Background(), TranslateInput{Text: strings.Repeat("ก", 10)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTranslate_UnsupportedPair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		target string
	}{
		{"same language", "th", "th"},
		{"unknown source", "en", "th"},
		{"unknown target", "th", "fr"},
		{"direction not configured", "km", "th"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestService(t, nil, Options{}, newEngine(thKm))

			_, err := svc.Translate(context.Background(), TranslateInput{
				Text:       "ไป",
				SourceLang: tt.source,
				TargetLang: tt.target,
			})
			if !errors.Is(err, domain.ErrUnsupportedLanguagePair) {
				t.Fatalf("expected ErrUnsupportedLanguagePair, got %v", err)
			}
		})
	}
}

func TestTranslate_EngineError(t *testing.T) {
	t.Parallel()

	eng := newEngine(thKm)
	eng.TranslateTextFunc = func(ctx context.Context, text string) (string, error) {
		return "", context.Canceled
	}
	logs := okLogRepo()
	svc := newTestService(t, logs, Options{}, eng)

	_, err := svc.Translate(context.Background(), TranslateInput{Text: "ไป"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(logs.CreateCalls()) != 0 {
		t.Error("failed translations should not be logged")
	}
}

func TestTranslate_LogFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	logs := &logRepoMock{
		CreateFunc: func(ctx context.Context, log domain.TranslationLog) (domain.TranslationLog, error) {
			return domain.TranslationLog{}, errors.New("connection refused")
		},
	}
	svc := newTestService(t, logs, Options{BreakerFailures: 2, BreakerTimeout: time.Minute}, newEngine(thKm))

	for i := 0; i < 4; i++ {
		if _, err := svc.Translate(context.Background(), TranslateInput{Text: "ไป"}); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
	}

	if got := len(logs.CreateCalls()); got != 2 {
		t.Errorf("Create calls: got %d, want 2 (breaker should open)", got)
	}
}

func TestTranslate_LogWriteHasDeadline(t *testing.T) {
	t.Parallel()

	logs := &logRepoMock{
		CreateFunc: func(ctx context.Context, log domain.TranslationLog) (domain.TranslationLog, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("log write context has no deadline")
			}
			return log, nil
		},
	}
	svc := newTestService(t, logs, Options{LogTimeout: time.Second}, newEngine(thKm))

	ctx, cancel := context.WithCancel(context.Background())
	result, err := svc.Translate(ctx, TranslateInput{Text: "ไป"})
	cancel()
	if err != nil || result == nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Unknown words
// ---------------------------------------------------------------------------

func TestUnknownWords(t *testing.T) {
	t.Parallel()

	th, km := newEngine(thKm), newEngine(kmTh)
	svc := newTestService(t, nil, Options{}, th, km)

	words, err := svc.UnknownWords(context.Background(), "km", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 || words[0].Word != "xyz" {
		t.Errorf("words: got %v", words)
	}
	if calls := km.UnknownWordReportCalls(); len(calls) != 1 || calls[0].N != 5 {
		t.Errorf("UnknownWordReport calls: got %v", calls)
	}
	if len(th.UnknownWordReportCalls()) != 0 {
		t.Error("th-km report should not be read")
	}
}

func TestUnknownWords_SourceLangErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, Options{}, newEngine(thKm))

	_, err := svc.UnknownWords(context.Background(), "", 10)
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("empty source: expected ErrValidation, got %v", err)
	}

	_, err = svc.UnknownWords(context.Background(), "km", 10)
	if !errors.Is(err, domain.ErrUnsupportedLanguagePair) {
		t.Errorf("unconfigured source: expected ErrUnsupportedLanguagePair, got %v", err)
	}

	_, err = svc.UnknownWords(context.Background(), "jp", 10)
	if !errors.Is(err, domain.ErrUnsupportedLanguagePair) {
		t.Errorf("unknown source: expected ErrUnsupportedLanguagePair, got %v", err)
	}
}

func TestExportUnknownWords(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, Options{}, newEngine(kmTh))

	var buf bytes.Buffer
	if err := svc.ExportUnknownWords(context.Background(), "km", &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "xyz,2\n" {
		t.Errorf("export: got %q", buf.String())
	}
}

func TestSaveUnknownWordReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileName string
		want     string
	}{
		{"default name", "", "unknown_words_km.csv"},
		{"plain name", "report.csv", "report.csv"},
		{"path is reduced to its base", "../../etc/report.csv", "report.csv"},
		{"absolute path", "/tmp/other/report.csv", "report.csv"},
		{"dot", ".", "unknown_words_km.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := filepath.Join(t.TempDir(), "reports")
			eng := newEngine(kmTh)
			svc := newTestService(t, nil, Options{ReportDir: dir}, eng)

			path, err := svc.SaveUnknownWordReport(context.Background(), "km", tt.fileName)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want := filepath.Join(dir, tt.want)
			if path != want {
				t.Errorf("path: got %q, want %q", path, want)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read report: %v", err)
			}
			if string(data) != "xyz,2\n" {
				t.Errorf("report content: got %q", data)
			}
		})
	}
}

func TestResetUnknownWords(t *testing.T) {
	t.Parallel()

	th, km := newEngine(thKm), newEngine(kmTh)
	svc := newTestService(t, nil, Options{}, th, km)

	if err := svc.ResetUnknownWords(context.Background(), "th"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(th.ResetUnknownWordsCalls()) != 1 || len(km.ResetUnknownWordsCalls()) != 0 {
		t.Error("only th-km should be reset")
	}

	if err := svc.ResetUnknownWords(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(th.ResetUnknownWordsCalls()) != 2 || len(km.ResetUnknownWordsCalls()) != 1 {
		t.Error("empty source should reset every direction")
	}
}

func TestClearCache_NotServing(t *testing.T) {
	t.Parallel()

	eng := newEngine(thKm)
	eng.ClearCacheFunc = func() error { return translator.ErrNotServing }
	svc := newTestService(t, nil, Options{}, eng)

	err := svc.ClearCache(context.Background(), "th")
	if !errors.Is(err, domain.ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
	if !errors.Is(err, translator.ErrNotServing) {
		t.Errorf("expected ErrNotServing in chain, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// History and introspection
// ---------------------------------------------------------------------------

func TestRecentTranslations_Disabled(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, Options{}, newEngine(thKm))

	_, err := svc.RecentTranslations(context.Background(), HistoryInput{})
	if !errors.Is(err, ErrLogDisabled) {
		t.Fatalf("expected ErrLogDisabled, got %v", err)
	}
}

func TestRecentTranslations_Filter(t *testing.T) {
	t.Parallel()

	logs := okLogRepo()
	svc := newTestService(t, logs, Options{}, newEngine(thKm))

	got, err := svc.RecentTranslations(context.Background(), HistoryInput{
		SourceLang: "KM",
		TargetLang: "th",
		Limit:      20,
		Offset:     40,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len: got %d, want 1", len(got))
	}

	filter := logs.ListCalls()[0].Filter
	if filter.SourceLanguage != domain.LanguageKhamMueang || filter.TargetLanguage != domain.LanguageThai {
		t.Errorf("filter direction: got %s-%s", filter.SourceLanguage, filter.TargetLanguage)
	}
	if filter.Limit != 20 || filter.Offset != 40 {
		t.Errorf("filter paging: got %d/%d", filter.Limit, filter.Offset)
	}
}

func TestRecentTranslations_Validation(t *testing.T) {
	t.Parallel()

	logs := okLogRepo()
	svc := newTestService(t, logs, Options{}, newEngine(thKm))

	_, err := svc.RecentTranslations(context.Background(), HistoryInput{SourceLang: "en", Limit: 1000, Offset: -1})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Errors) != 3 {
		t.Errorf("errors: got %d, want 3", len(verr.Errors))
	}
	if len(logs.ListCalls()) != 0 {
		t.Error("repo should not be queried")
	}
}

func TestDirectionsAndStats(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil, Options{}, newEngine(kmTh), newEngine(thKm))

	dirs := svc.Directions()
	if len(dirs) != 2 || dirs[0] != kmTh || dirs[1] != thKm {
		t.Errorf("directions: got %v", dirs)
	}

	stats := svc.Stats()
	if len(stats) != 2 || stats[0].Direction != kmTh {
		t.Errorf("stats: got %v", stats)
	}
}

// ---------------------------------------------------------------------------
// End to end with a real translator
// ---------------------------------------------------------------------------

func TestTranslate_WithTranslator(t *testing.T) {
	t.Parallel()

	lex := lexicon.Empty()
	lex.Words = lexicon.Dictionary{"ป้อ": "พ่อ", "ไป": "ไป", "ไหน": "ไหน", "มา": "มา"}
	tr := translator.New(kmTh, lex, translator.NewWhitespaceTokenizer(), translator.Options{CacheSize: 16})
	tr.Start()

	svc := newTestService(t, nil, Options{}, tr)

	result, err := svc.Translate(context.Background(), TranslateInput{
		Text:       "ป้อ   ไป  ไหน  มา xyz",
		SourceLang: "km",
		TargetLang: "th",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Translation != "พ่อ   ไป  ไหน  มา xyz" {
		t.Errorf("translation: got %q", result.Translation)
	}

	words, err := svc.UnknownWords(context.Background(), "km", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 || words[0] != (domain.WordCount{Word: "xyz", Count: 1}) {
		t.Errorf("unknown words: got %v", words)
	}
}
