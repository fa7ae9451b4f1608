package rest

import (
	"log/slog"
	"net/http"

	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/config"
	"github.com/BlackHand133/WebApp-Khummuang-Translate/internal/transport/middleware"
)

type adminTokenValidator interface {
	ValidateAdminToken(token string) (string, error)
}

// RouterDeps collects everything NewRouter mounts. Admin and Validator may
// both be nil, in which case no admin routes are registered. Limiter may be
// nil to serve translations without rate limiting.
type RouterDeps struct {
	Logger    *slog.Logger
	CORS      config.CORSConfig
	MaxBody   int64
	PerMinute int

	Health    *HealthHandler
	Translate *TranslateHandler
	Admin     *AdminHandler
	Validator adminTokenValidator
	Limiter   *middleware.RateLimiter
}

// NewRouter builds the HTTP handler tree.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	var limit middleware.Middleware
	if d.Limiter != nil && d.PerMinute > 0 {
		limit = d.Limiter.Limit(d.PerMinute)
	}
	mux.Handle("POST /api/translate", middleware.Chain(limit)(http.HandlerFunc(d.Translate.Translate)))
	mux.HandleFunc("GET /api/languages", d.Translate.Languages)

	if d.Admin != nil && d.Validator != nil {
		admin := middleware.AdminAuth(d.Validator)
		handle := func(pattern string, fn http.HandlerFunc) {
			mux.Handle(pattern, admin(fn))
		}
		handle("GET /api/admin/unknown-words", d.Admin.UnknownWords)
		handle("GET /api/admin/unknown-words/export", d.Admin.ExportUnknownWords)
		handle("POST /api/admin/unknown-words/report", d.Admin.SaveReport)
		handle("POST /api/admin/unknown-words/reset", d.Admin.ResetUnknownWords)
		handle("POST /api/admin/cache/clear", d.Admin.ClearCache)
		handle("GET /api/admin/translations", d.Admin.Translations)
		handle("GET /api/admin/stats", d.Admin.Stats)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
		middleware.BodyLimit(d.MaxBody),
	)(mux)
}
