package app

import (
	"net/http"

	"github.com/avc-dev/shortlink/internal/config"
	"github.com/avc-dev/shortlink/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// newRouter создает и настраивает роутер приложения
func newRouter(deps *dependencies, logger *zap.Logger, cfg *config.Config) *chi.Mux {
	h := deps.handler
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Encoding"},
		ExposedHeaders: []string{"Location", "RateLimit-Limit", "RateLimit-Remaining", "RateLimit-Reset"},
		MaxAge:         300,
	}))
	r.Use(middleware.GzipMiddleware(logger))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{}))

	r.With(middleware.RateLimiter(deps.limiter, deps.metrics, logger)).Post("/shorten", h.Shorten)

	r.Route("/urls/{shortCode}", func(r chi.Router) {
		r.Get("/", h.GetURLStats)
		r.Delete("/", h.DeleteURL)
	})

	r.Get("/{shortCode}", h.GetURL)

	return r
}
