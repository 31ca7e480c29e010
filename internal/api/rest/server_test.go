package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/middleware"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/config"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/mocks"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/status"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/widget"
)

func newTestServer(t *testing.T, subnet string) (*httptest.Server, *mocks.MockShortener) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockShortener(ctrl)
	w, err := widget.InitWidget(s, mocks.NewMockClipboard(ctrl), status.NewBoard(time.Minute), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(w.Board().Stop)
	cfg := &config.Config{
		TrustedSubnet: subnet,
		CSRFKey:       "some-csrf-key",
	}
	r, err := NewRouter(cfg, w, zerolog.Nop())
	require.NoError(t, err)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts, s
}

func csrfCookie(cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == middleware.CSRFCookieName {
			return cookie
		}
	}
	return nil
}

func TestRouter_ShortenFlow(t *testing.T) {
	ts, s := newTestServer(t, "127.0.0.0/8")
	s.EXPECT().Shorten(gomock.Any(), "example.com").Return("https://moyashi.xyz/abc123", nil)
	client := resty.New()

	res, err := client.R().Get(ts.URL + "/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())
	cookie := csrfCookie(res.Cookies())
	require.NotNil(t, cookie)
	assert.Contains(t, string(res.Body()), cookie.Value)

	res, err = client.R().
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{"url": "example.com"}).
		Post(ts.URL + "/shorten")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode())

	res, err = client.R().
		SetHeader("Accept", "application/json").
		SetHeader(middleware.CSRFHeader, cookie.Value).
		SetFormData(map[string]string{"url": "example.com"}).
		Post(ts.URL + "/shorten")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())
	var state widget.State
	require.NoError(t, json.Unmarshal(res.Body(), &state))
	assert.Equal(t, "https://moyashi.xyz/abc123", state.ShortenedURL)
	assert.True(t, state.ResultVisible)

	res, err = client.R().Get(ts.URL + "/qrcode")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode())
	assert.Equal(t, "image/png", res.Header().Get("Content-Type"))
}

func TestRouter_UntrustedPeer(t *testing.T) {
	ts, _ := newTestServer(t, "10.0.0.0/8")

	res, err := resty.New().R().Get(ts.URL + "/state")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode())
}

func TestInitServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := widget.InitWidget(mocks.NewMockShortener(ctrl), mocks.NewMockClipboard(ctrl), status.NewBoard(0), zerolog.Nop())
	require.NoError(t, err)
	cfg := &config.Config{WidgetAddress: "127.0.0.1:0", TrustedSubnet: "127.0.0.0/8", CSRFKey: "k"}

	srv, err := InitServer(cfg, w, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", srv.Addr)
	assert.NotNil(t, srv.Handler)

	_, err = InitServer(cfg, nil, zerolog.Nop())
	assert.Error(t, err)
}
