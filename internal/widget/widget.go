// Package widget provides the shortener widget: the state behind the URL field, the result
// region and the status area, plus one handler per user trigger.
package widget

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/client"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/clipboard"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/status"
	widgetErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/widget/errors"
)

const (
	// KeyEnter is the key that submits the URL field.
	KeyEnter = "Enter"
	// ShortenedMessage is shown after a successful shorten.
	ShortenedMessage = "URL shortened"
	// CopiedMessage is shown after a successful copy.
	CopiedMessage = "URL copied"
)

// State is a snapshot of everything a front-end renders.
type State struct {
	Input         string         `json:"input"`
	ShortenedURL  string         `json:"shortened_url"`
	ResultVisible bool           `json:"result_visible"`
	Message       status.Message `json:"message"`
}

// Widget struct defines data structure handling and provides support for adding new implementations.
type Widget struct {
	shortener client.Shortener
	clipboard clipboard.Clipboard
	board     *status.Board
	log       zerolog.Logger

	mu            sync.Mutex
	input         string
	shortenedURL  string
	resultVisible bool
	seq           uint64
}

// InitWidget initializes a Widget object once all of its collaborators are present.
func InitWidget(s client.Shortener, c clipboard.Clipboard, b *status.Board, logger zerolog.Logger) (*Widget, error) {
	if s == nil {
		return nil, &widgetErrors.WidgetInitError{Msg: "nil shortener was passed to widget initializer"}
	}
	if c == nil {
		return nil, &widgetErrors.WidgetInitError{Msg: "nil clipboard was passed to widget initializer"}
	}
	if b == nil {
		return nil, &widgetErrors.WidgetInitError{Msg: "nil status board was passed to widget initializer"}
	}
	return &Widget{
		shortener: s,
		clipboard: c,
		board:     b,
		log:       logger,
	}, nil
}

// Board returns the status board the widget reports to.
func (w *Widget) Board() *status.Board {
	return w.board
}

// Submit shortens the URL field contents and shows the outcome on the status board.
// Only the most recently issued submit may update the widget; older ones get ErrSuperseded.
func (w *Widget) Submit(ctx context.Context, input string) (string, error) {
	URL := strings.TrimSpace(input)
	w.mu.Lock()
	w.input = input
	if URL == "" {
		w.mu.Unlock()
		err := &widgetErrors.EmptyInputError{}
		w.board.Show(err.Error(), status.KindError)
		return "", err
	}
	w.seq++
	seq := w.seq
	w.mu.Unlock()

	sURL, err := w.shortener.Shorten(ctx, URL)

	w.mu.Lock()
	if seq != w.seq {
		w.mu.Unlock()
		w.log.Debug().Str("url", URL).Uint64("seq", seq).Msg("dropping superseded response")
		return "", widgetErrors.ErrSuperseded
	}
	if err != nil {
		w.mu.Unlock()
		ev := w.log.Warn().Err(err).Str("url", URL)
		if cause := errors.Unwrap(err); cause != nil {
			ev = ev.AnErr("cause", cause)
		}
		ev.Msg("shortening failed")
		w.board.Show(err.Error(), status.KindError)
		return "", err
	}
	w.shortenedURL = sURL
	w.resultVisible = true
	w.mu.Unlock()

	w.log.Info().Str("url", URL).Str("shortened_url", sURL).Msg("URL shortened")
	w.board.Show(ShortenedMessage, status.KindSuccess)
	return sURL, nil
}

// KeyPress submits input when key is Enter and ignores every other key.
func (w *Widget) KeyPress(ctx context.Context, key string, input string) (string, error) {
	if key != KeyEnter {
		return "", nil
	}
	return w.Submit(ctx, input)
}

// Copy writes the shortened URL field contents to the clipboard.
func (w *Widget) Copy(ctx context.Context) error {
	w.mu.Lock()
	text := w.shortenedURL
	w.mu.Unlock()

	if err := w.clipboard.WriteText(ctx, text); err != nil {
		w.log.Warn().Err(err).Msg("clipboard write failed")
		copyErr := &widgetErrors.ClipboardError{Err: err}
		w.board.Show(copyErr.Error(), status.KindError)
		return copyErr
	}
	w.board.Show(CopiedMessage, status.KindSuccess)
	return nil
}

// State returns a snapshot of the widget.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		Input:         w.input,
		ShortenedURL:  w.shortenedURL,
		ResultVisible: w.resultVisible,
		Message:       w.board.Current(),
	}
}
