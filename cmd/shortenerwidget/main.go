package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/client"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/rest"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/clipboard"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/config"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/console"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/logger"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/status"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/widget"
)

func main() {
	// get configuration
	cfg, err := config.NewDefaultConfiguration()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration failed")
	}
	if err = cfg.Parse(os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("flag parsing failed")
	}
	lg, err := logger.InitLogger(cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("logger initialization failed")
	}
	// assemble the widget
	apiClient, err := client.InitClient(cfg.APIEndpoint, cfg.RequestTimeout, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("client initialization failed")
	}
	board := status.NewBoard(cfg.MessageTTL)
	defer board.Stop()
	w, err := widget.InitWidget(apiClient, clipboard.NewSystem(), board, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("widget initialization failed")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	switch {
	case len(cfg.Args) > 0:
		err = runOnce(ctx, cfg, w)
	case cfg.Mode == config.ModeWeb:
		err = runWeb(ctx, cfg, w, lg)
	default:
		err = console.NewConsole(w, os.Stdin, os.Stdout, lg).Run(ctx)
	}
	if err != nil {
		cancel()
		board.Stop()
		lg.Fatal().Err(err).Msg("widget stopped")
	}
}

// runOnce shortens every positional argument and prints the short links one per line.
func runOnce(ctx context.Context, cfg *config.Config, w *widget.Widget) error {
	var failed bool
	for _, URL := range cfg.Args {
		sURL, err := w.Submit(ctx, URL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", URL, err)
			failed = true
			continue
		}
		fmt.Println(sURL)
		if cfg.Copy {
			if err := w.Copy(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %s\n", sURL, err)
				failed = true
			}
		}
	}
	if failed {
		return errors.New("some URLs were not shortened")
	}
	return nil
}

// runWeb serves the widget page until ctx is canceled.
func runWeb(ctx context.Context, cfg *config.Config, w *widget.Widget, lg zerolog.Logger) error {
	if cfg.CSRFKey == "" {
		cfg.CSRFKey = uuid.New().String()
	}
	server, err := rest.InitServer(cfg, w, lg)
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		lg.Info().Msg("server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelTO()
		if err := server.Shutdown(ctxTO); err != nil {
			lg.Error().Err(err).Msg("server shutdown failed")
		}
	}()
	lg.Info().Str("address", cfg.WidgetAddress).Msg("server start attempted")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	lg.Info().Msg("server shutdown succeeded")
	return nil
}
