package main

import (
	"context"
	"errors"
	"flag"
	"math/rand"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/client"
	clientErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/api/client/errors"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/logger"
)

func randStringBytes(n int) string {
	const letterBytes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[rand.Intn(len(letterBytes))]
	}
	return string(b)
}

func main() {
	e := flag.String("e", "http://localhost:8080/api/short", "Shortening API endpoint")
	n := flag.Int("n", 20, "Number of requests")
	c := flag.Int("c", 4, "Concurrent workers")
	flag.Parse()

	lg, err := logger.InitLogger("info", os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("logger initialization failed")
	}
	apiClient, err := client.InitClient(*e, 5*time.Second, lg.Level(zerolog.WarnLevel))
	if err != nil {
		lg.Fatal().Err(err).Msg("client initialization failed")
	}
	redirector := resty.New()
	redirector.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}))

	// Performing shortening loading
	lg.Info().Int("requests", *n).Int("workers", *c).Msg("performing shortening loading")
	jobs := make(chan string)
	var (
		mu       sync.Mutex
		sURLs    []string
		limited  int
		failures int
	)
	wg := &sync.WaitGroup{}
	for i := 0; i < *c; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for URL := range jobs {
				sURL, err := apiClient.Shorten(context.Background(), URL)
				mu.Lock()
				var reqErr *clientErrors.RequestFailedError
				switch {
				case err == nil:
					sURLs = append(sURLs, sURL)
				case errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusTooManyRequests:
					limited++
				default:
					failures++
					lg.Warn().Err(err).Str("url", URL).Msg("shortening failed")
				}
				mu.Unlock()
			}
		}()
	}
	start := time.Now()
	for i := 0; i < *n; i++ {
		jobs <- "https://www." + randStringBytes(10) + ".com"
	}
	close(jobs)
	wg.Wait()
	lg.Info().
		Int("shortened", len(sURLs)).
		Int("rate_limited", limited).
		Int("failed", failures).
		Dur("elapsed", time.Since(start)).
		Msg("shortening loading finished")

	// Performing redirect loading
	lg.Info().Msg("performing redirect loading")
	var redirected int
	for _, sURL := range sURLs {
		res, err := redirector.R().Get(sURL)
		if err != nil {
			lg.Warn().Err(err).Str("shortened_url", sURL).Msg("redirect failed")
			continue
		}
		if res.StatusCode() == http.StatusTemporaryRedirect {
			redirected++
		}
	}
	lg.Info().Int("redirected", redirected).Int("total", len(sURLs)).Msg("redirect loading finished")
}
