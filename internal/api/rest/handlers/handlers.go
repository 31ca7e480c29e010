// Package handlers provides http.HandlerFunc handler functions serving the widget page.
package handlers

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/middleware"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/qr"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/widget"
)

//go:embed templates/widget.html
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/widget.html"))

// page is the data rendered by the widget template.
type page struct {
	State     widget.State
	CSRFToken string
}

// WidgetHandler defines data structure handling and provides support for adding new implementations.
type WidgetHandler struct {
	widget *widget.Widget
	log    zerolog.Logger
}

// InitWidgetHandler initializes a WidgetHandler object and sets its attributes.
func InitWidgetHandler(w *widget.Widget, logger zerolog.Logger) (*WidgetHandler, error) {
	if w == nil {
		return nil, errors.New("nil widget was passed to widget handler initializer")
	}
	return &WidgetHandler{widget: w, log: logger}, nil
}

// HandlePage renders the widget page.
func (h *WidgetHandler) HandlePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := page{
			State:     h.widget.State(),
			CSRFToken: middleware.CSRFToken(r.Context()),
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := pageTemplate.Execute(w, data); err != nil {
			h.log.Error().Err(err).Msg("HandlePage: template execution failed")
		}
	}
}

// HandleShorten submits the url form field. Failures already reach the status area, so the
// response is the same whatever the outcome. A client hanging up does not cancel the request.
func (h *WidgetHandler) HandleShorten() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		sURL, err := h.widget.Submit(context.WithoutCancel(r.Context()), r.PostFormValue("url"))
		if err != nil {
			h.log.Debug().Err(err).Msg("HandleShorten: submit failed")
		} else {
			h.log.Debug().Str("shortened_url", sURL).Msg("HandleShorten: submit succeeded")
		}
		h.respond(w, r)
	}
}

// HandleCopy copies the shortened URL to the clipboard of the host running the widget.
func (h *WidgetHandler) HandleCopy() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.widget.Copy(context.WithoutCancel(r.Context())); err != nil {
			h.log.Debug().Err(err).Msg("HandleCopy: copy failed")
		}
		h.respond(w, r)
	}
}

// HandleState provides client with the widget state as JSON.
func (h *WidgetHandler) HandleState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.writeState(w)
	}
}

// HandleQRCode provides client with a PNG QR code of the shortened URL.
func (h *WidgetHandler) HandleQRCode() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.widget.State()
		if !state.ResultVisible {
			http.Error(w, "nothing shortened yet", http.StatusNotFound)
			return
		}
		png, err := qr.PNG(state.ShortenedURL, qr.DefaultPNGSize)
		if err != nil {
			h.log.Error().Err(err).Msg("HandleQRCode: encoding failed")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(png)
	}
}

// respond answers JSON clients with the state and redirects browsers back to the page.
func (h *WidgetHandler) respond(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Accept") == "application/json" {
		h.writeState(w)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *WidgetHandler) writeState(w http.ResponseWriter) {
	resBody, err := json.Marshal(h.widget.State())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(resBody)
}
