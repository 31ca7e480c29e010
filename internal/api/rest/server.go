// Package rest provides functionality for initializing the local web server of the widget.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/middleware"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/rest/handlers"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/config"
	secretary "github.com/danilovkiri/dk_go_shortener_widget/internal/service/secretary/v1"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/widget"
)

// NewRouter wires the widget handlers and middleware into a chi router.
func NewRouter(cfg *config.Config, w *widget.Widget, logger zerolog.Logger) (*chi.Mux, error) {
	widgetHandler, err := handlers.InitWidgetHandler(w, logger)
	if err != nil {
		return nil, err
	}
	secretaryService, err := secretary.NewSecretaryService(cfg.CSRFKey)
	if err != nil {
		return nil, err
	}
	csrfHandler, err := middleware.NewCSRFHandler(secretaryService)
	if err != nil {
		return nil, err
	}
	trustedNetHandler := middleware.NewTrustedNetHandler(cfg.TrustedSubnet, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(logger))
	r.Use(trustedNetHandler.TrustedNetworkHandler)
	r.Use(middleware.CompressHandle)
	r.Use(csrfHandler.CSRFHandle)
	r.Get("/", widgetHandler.HandlePage())
	r.Post("/shorten", widgetHandler.HandleShorten())
	r.Post("/copy", widgetHandler.HandleCopy())
	r.Get("/state", widgetHandler.HandleState())
	r.Get("/qrcode", widgetHandler.HandleQRCode())
	return r, nil
}

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(cfg *config.Config, w *widget.Widget, logger zerolog.Logger) (*http.Server, error) {
	r, err := NewRouter(cfg, w, logger)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{
		Addr:              cfg.WidgetAddress,
		Handler:           r,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, nil
}
