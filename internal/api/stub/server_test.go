package stub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/client"
	clientErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/api/client/errors"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/config"
	shortener "github.com/danilovkiri/dk_go_shortener_widget/internal/service/shortener/v1"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/storage/inmemory"
)

func newStubServer(t *testing.T, rps float64, burst int) *httptest.Server {
	processor, err := shortener.InitShortener(inmemory.InitStorage(zerolog.Nop()))
	require.NoError(t, err)
	cfg := &config.StubConfig{
		BaseURL:        "http://localhost:8080",
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}
	r, err := NewRouter(cfg, processor, zerolog.Nop())
	require.NoError(t, err)
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestStub_ClientRoundTrip(t *testing.T) {
	ts := newStubServer(t, 100, 100)
	c, err := client.InitClient(ts.URL+ShortenPath, 0, zerolog.Nop())
	require.NoError(t, err)

	sURL, err := c.Shorten(context.Background(), "example.com")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(sURL, "http://localhost:8080/"))

	slug := strings.TrimPrefix(sURL, "http://localhost:8080/")
	redirector := resty.New()
	redirector.SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	res, err := redirector.R().Get(ts.URL + "/" + slug)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, res.StatusCode())
	assert.Equal(t, "https://example.com", res.Header().Get("Location"))

	_, err = c.Shorten(context.Background(), "ftp://example.com")
	var reqErr *clientErrors.RequestFailedError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusBadRequest, reqErr.StatusCode)
	assert.Equal(t, "invalid URL", err.Error())
}

func TestStub_RateLimited(t *testing.T) {
	ts := newStubServer(t, 0.001, 1)
	c, err := client.InitClient(ts.URL+ShortenPath, 0, zerolog.Nop())
	require.NoError(t, err)

	_, err = c.Shorten(context.Background(), "example.com")
	require.NoError(t, err)
	_, err = c.Shorten(context.Background(), "example.com")
	var reqErr *clientErrors.RequestFailedError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusTooManyRequests, reqErr.StatusCode)
	assert.Equal(t, "too many requests", err.Error())
}

func TestInitServer(t *testing.T) {
	processor, err := shortener.InitShortener(inmemory.InitStorage(zerolog.Nop()))
	require.NoError(t, err)
	srv, err := InitServer(&config.StubConfig{ServerAddress: ":0", RateLimitRPS: 1, RateLimitBurst: 1}, processor, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, ":0", srv.Addr)

	_, err = InitServer(&config.StubConfig{}, nil, zerolog.Nop())
	assert.Error(t, err)
}
