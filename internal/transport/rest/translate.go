package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/domain"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/service/translation"
)

type translateService interface {
	Translate(ctx context.Context, input translation.TranslateInput) (*translation.TranslateResult, error)
	Directions() []domain.Direction
}

// TranslateHandler serves the public translation endpoints.
type TranslateHandler struct {
	svc translateService
	log *slog.Logger
}

// NewTranslateHandler creates a TranslateHandler.
func NewTranslateHandler(svc translateService, logger *slog.Logger) *TranslateHandler {
	return &TranslateHandler{svc: svc, log: logger.With("handler", "translate")}
}

type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Translation string `json:"translation"`
	SourceLang  string `json:"source_lang"`
	TargetLang  string `json:"target_lang"`
}

type languagesResponse struct {
	Directions []domain.Direction `json:"directions"`
}

// Translate handles POST /api/translate.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.svc.Translate(r.Context(), translation.TranslateInput{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		Translation: result.Translation,
		SourceLang:  result.Direction.Source.String(),
		TargetLang:  result.Direction.Target.String(),
	})
}

// Languages handles GET /api/languages.
func (h *TranslateHandler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, languagesResponse{Directions: h.svc.Directions()})
}
