package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/service/secretary"
)

const (
	// CSRFCookieName names the cookie holding the sealed token.
	CSRFCookieName = "widget_csrf"
	// CSRFFormField names the form field echoing the token.
	CSRFFormField = "csrf_token"
	// CSRFHeader names the header echoing the token for non-form clients.
	CSRFHeader = "X-CSRF-Token"
)

type csrfContextKey struct{}

// CSRFHandler sets object structure.
type CSRFHandler struct {
	sec secretary.Secretary
}

// NewCSRFHandler initializes a new CSRF handler.
func NewCSRFHandler(sec secretary.Secretary) (*CSRFHandler, error) {
	if sec == nil {
		return nil, errors.New("nil secretary was passed to CSRF handler initializer")
	}
	return &CSRFHandler{sec: sec}, nil
}

// CSRFHandle issues a sealed token cookie on safe requests and requires unsafe requests to
// echo it back in the form field or header.
func (c *CSRFHandler) CSRFHandle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if cookie, err := r.Cookie(CSRFCookieName); err == nil {
			if _, err := c.sec.Decode(cookie.Value); err == nil {
				token = cookie.Value
			}
		}
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if token == "" {
				token = c.sec.Encode(uuid.New().String())
				http.SetCookie(w, &http.Cookie{
					Name:     CSRFCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteStrictMode,
				})
			}
		default:
			echoed := r.Header.Get(CSRFHeader)
			if echoed == "" {
				echoed = r.PostFormValue(CSRFFormField)
			}
			if token == "" || echoed != token {
				http.Error(w, "CSRF token mismatch", http.StatusForbidden)
				return
			}
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), csrfContextKey{}, token)))
	})
}

// CSRFToken returns the token bound to the request by CSRFHandle.
func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(csrfContextKey{}).(string)
	return token
}
