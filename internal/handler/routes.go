package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vaultpass/passgen-go/internal/middleware"
)

// RouterOptions tunes the middleware stack in front of the API routes.
type RouterOptions struct {
	// AuthSecret enables bearer-token auth on /api/v1 when non-empty.
	AuthSecret     string
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter mounts the health check and the /api/v1 routes:
//
//	POST /api/v1/generate → GeneratorHandler.HandleGenerate
//	POST /api/v1/strength → StrengthHandler.HandleCheck
//	POST /api/v1/export   → ExportHandler.HandleExport
//
// Background work started for the router, such as rate limiter cleanup,
// stops when ctx is done.
func NewRouter(ctx context.Context, gen *GeneratorHandler, str *StrengthHandler, exp *ExportHandler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chimw.AllowContentType("application/json"))
		if opts.RateLimitRPS > 0 {
			r.Use(middleware.RateLimit(ctx, opts.RateLimitRPS, opts.RateLimitBurst))
		}
		if opts.AuthSecret != "" {
			r.Use(middleware.JWTAuth(opts.AuthSecret))
		}

		r.Post("/generate", gen.HandleGenerate)
		r.Post("/strength", str.HandleCheck)
		r.Post("/export", exp.HandleExport)
	})

	return r
}
