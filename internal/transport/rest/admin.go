package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/service/translation"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/translator"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/pkg/ctxutil"
)

const defaultUnknownWordsLimit = 100

type adminService interface {
	UnknownWords(ctx context.Context, sourceLang string, n int) ([]domain.WordCount, error)
	ExportUnknownWords(ctx context.Context, sourceLang string, w io.Writer) error
	SaveUnknownWordReport(ctx context.Context, sourceLang, fileName string) (string, error)
	ResetUnknownWords(ctx context.Context, sourceLang string) error
	ClearCache(ctx context.Context, sourceLang string) error
	RecentTranslations(ctx context.Context, input translation.HistoryInput) ([]domain.TranslationLog, error)
	Stats() []translator.Stats
}

// AdminHandler serves the admin REST endpoints. Requests reach it only
// through the admin auth middleware.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type unknownWordsResponse struct {
	SourceLang string             `json:"source_lang"`
	Words      []domain.WordCount `json:"words"`
}

type reportRequest struct {
	SourceLang string `json:"source_lang"`
	FilePath   string `json:"file_path"`
}

type reportResponse struct {
	Path string `json:"path"`
}

type translationLogResponse struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"original_text"`
	TranslatedText string    `json:"translated_text"`
	SourceLang     string    `json:"source_lang"`
	TargetLang     string    `json:"target_lang"`
	RequestID      string    `json:"request_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// UnknownWords returns the most frequent unknown words.
// GET /api/admin/unknown-words?source_lang=km&limit=100
func (h *AdminHandler) UnknownWords(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", defaultUnknownWordsLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	lang := r.URL.Query().Get("source_lang")
	words, err := h.svc.UnknownWords(r.Context(), lang, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, unknownWordsResponse{SourceLang: strings.ToLower(lang), Words: words})
}

// ExportUnknownWords streams the full report as CSV.
// GET /api/admin/unknown-words/export?source_lang=km
func (h *AdminHandler) ExportUnknownWords(w http.ResponseWriter, r *http.Request) {
	lang := strings.ToLower(r.URL.Query().Get("source_lang"))

	// Buffered so a failure can still produce an error status.
	var buf bytes.Buffer
	if err := h.svc.ExportUnknownWords(r.Context(), lang, &buf); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="unknown_words_%s.csv"`, lang))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// SaveReport writes the report into the server's report directory.
// POST /api/admin/unknown-words/report
func (h *AdminHandler) SaveReport(w http.ResponseWriter, r *http.Request) {
	var req reportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	path, err := h.svc.SaveUnknownWordReport(r.Context(), req.SourceLang, req.FilePath)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "report saved by admin",
		slog.String("admin", adminSubject(r)),
		slog.String("path", path),
	)
	writeJSON(w, http.StatusOK, reportResponse{Path: path})
}

// ResetUnknownWords clears the unknown-word counters.
// POST /api/admin/unknown-words/reset?source_lang=km (all directions without source_lang)
func (h *AdminHandler) ResetUnknownWords(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResetUnknownWords(r.Context(), r.URL.Query().Get("source_lang")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.log.InfoContext(r.Context(), "unknown words reset by admin", slog.String("admin", adminSubject(r)))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ClearCache drops the sentence caches.
// POST /api/admin/cache/clear?source_lang=th (all directions without source_lang)
func (h *AdminHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearCache(r.Context(), r.URL.Query().Get("source_lang")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.log.InfoContext(r.Context(), "cache cleared by admin", slog.String("admin", adminSubject(r)))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Translations lists logged translations.
// GET /api/admin/translations?source_lang=km&target_lang=th&limit=50&offset=0
func (h *AdminHandler) Translations(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	q := r.URL.Query()
	logs, err := h.svc.RecentTranslations(r.Context(), translation.HistoryInput{
		SourceLang: q.Get("source_lang"),
		TargetLang: q.Get("target_lang"),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]translationLogResponse, len(logs))
	for i, l := range logs {
		out[i] = translationLogResponse{
			ID:             l.ID.String(),
			OriginalText:   l.OriginalText,
			TranslatedText: l.TranslatedText,
			SourceLang:     l.SourceLanguage.String(),
			TargetLang:     l.TargetLanguage.String(),
			RequestID:      l.RequestID,
			CreatedAt:      l.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// Stats reports cache and counter sizes per direction.
// GET /api/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Stats())
}

func adminSubject(r *http.Request) string {
	subject, _ := ctxutil.AdminFromCtx(r.Context())
	return subject
}
