package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/stub"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/config"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/logger"
	shortener "github.com/danilovkiri/dk_go_shortener_widget/internal/service/shortener/v1"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/storage"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/storage/infile"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/storage/inmemory"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// add a waiting group for the file storage closer
	wg := &sync.WaitGroup{}
	// get configuration
	cfg, err := config.NewStubConfiguration()
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
	// initialize storage, switch between "inmemory" and "infile" modules
	var storageInit storage.URLStorage
	switch cfg.FileStoragePath {
	case "":
		storageInit = inmemory.InitStorage(lg)
	default:
		storageInit, err = infile.InitStorage(ctx, wg, cfg.FileStoragePath, lg)
		if err != nil {
			lg.Fatal().Err(err).Msg("storage initialization failed")
		}
	}
	processor, err := shortener.InitShortener(storageInit)
	if err != nil {
		lg.Fatal().Err(err).Msg("service initialization failed")
	}
	// initialize server
	server, err := stub.InitServer(cfg, processor, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("server initialization failed")
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		lg.Info().Msg("server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelTO()
		if err := server.Shutdown(ctxTO); err != nil {
			lg.Fatal().Err(err).Msg("server shutdown failed")
		}
		cancel()
	}()
	// start up the server
	lg.Info().Str("address", cfg.ServerAddress).Str("endpoint", cfg.BaseURL+stub.ShortenPath).Msg("server start attempted")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Fatal().Err(err).Msg("server failed")
	}
	// wait for the file storage to close before exiting
	cancel()
	wg.Wait()
	lg.Info().Msg("server shutdown succeeded")
}
