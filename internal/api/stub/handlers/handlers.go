// Package handlers provides http.HandlerFunc handler functions of the stub shortening API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/modeldto"
	serviceErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/service/errors"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/service/shortener"
	storageErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/storage/errors"
)

const (
	storageTimeout = 500 * time.Millisecond
	maxBodySize    = 1 << 16
)

// URLHandler defines data structure handling and provides support for adding new implementations.
type URLHandler struct {
	processor shortener.Processor
	baseURL   string
	log       zerolog.Logger
}

// InitURLHandler initializes a URLHandler object and sets its attributes.
func InitURLHandler(processor shortener.Processor, baseURL string, logger zerolog.Logger) (*URLHandler, error) {
	if processor == nil {
		return nil, fmt.Errorf("nil Shortener Service was passed to service URL Handler initializer")
	}
	return &URLHandler{
		processor: processor,
		baseURL:   strings.TrimRight(baseURL, "/"),
		log:       logger,
	}, nil
}

// HandlePostShorten accepts JSON as {"url":"<some_url>"} and provides client with JSON as
// {"shortened_url":"<short_url>"}.
func (h *URLHandler) HandlePostShorten() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), storageTimeout)
		defer cancel()
		b, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		var post modeldto.RequestURL
		if err = json.Unmarshal(b, &post); err != nil {
			h.log.Debug().Err(err).Msg("HandlePostShorten: undecodable body")
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		id, err := h.processor.Encode(ctx, post.URL)
		if err != nil {
			var inputErr *serviceErrors.ServiceIncorrectInputURL
			var timeoutErr storageErrors.ContextTimeoutExceededError
			switch {
			case errors.As(err, &inputErr):
				h.log.Debug().Err(err).Str("url", post.URL).Msg("HandlePostShorten: rejected")
				writeError(w, http.StatusBadRequest, inputErr.Msg)
			case errors.As(err, &timeoutErr):
				h.log.Warn().Err(err).Msg("HandlePostShorten: storage timeout")
				writeError(w, http.StatusGatewayTimeout, "storage timeout")
			default:
				h.log.Error().Err(err).Msg("HandlePostShorten: encoding failed")
				writeError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}
		h.log.Info().Str("url", post.URL).Str("slug", id).Msg("HandlePostShorten: stored")
		writeJSON(w, http.StatusCreated, modeldto.ResponseURL{ShortenedURL: h.baseURL + "/" + id})
	}
}

// HandleGetURL provides client with a redirect to the original URL accessed by its slug.
func (h *URLHandler) HandleGetURL() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), storageTimeout)
		defer cancel()
		sURL := chi.URLParam(r, "slug")
		URL, err := h.processor.Decode(ctx, sURL)
		if err != nil {
			var notFoundErr storageErrors.StorageNotFoundError
			if errors.As(err, &notFoundErr) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			h.log.Warn().Err(err).Str("slug", sURL).Msg("HandleGetURL: retrieval failed")
			w.WriteHeader(http.StatusGatewayTimeout)
			return
		}
		w.Header().Set("Location", URL)
		w.WriteHeader(http.StatusTemporaryRedirect)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, modeldto.ResponseError{Message: msg})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	resBody, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(resBody)
}
