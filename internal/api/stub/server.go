// Package stub provides functionality for initializing a local stand-in of the shortening API.
package stub

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/middleware"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/stub/handlers"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/config"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/service/shortener"
)

// ShortenPath is the route of the shortening endpoint.
const ShortenPath = "/api/short"

// NewRouter wires the stub API handlers and middleware into a chi router.
func NewRouter(cfg *config.StubConfig, processor shortener.Processor, logger zerolog.Logger) (*chi.Mux, error) {
	urlHandler, err := handlers.InitURLHandler(processor, cfg.BaseURL, logger)
	if err != nil {
		return nil, err
	}
	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(limiter.LimitHandle)
	r.Use(middleware.CompressHandle)
	r.Use(middleware.DecompressHandle)
	r.Post(ShortenPath, urlHandler.HandlePostShorten())
	r.Get("/{slug}", urlHandler.HandleGetURL())
	return r, nil
}

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(cfg *config.StubConfig, processor shortener.Processor, logger zerolog.Logger) (*http.Server, error) {
	r, err := NewRouter(cfg, processor, logger)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           r,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, nil
}
