package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	clientErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/api/client/errors"
)

type ClientTestSuite struct {
	suite.Suite
	mux    *http.ServeMux
	ts     *httptest.Server
	client *Client
}

func (suite *ClientTestSuite) SetupTest() {
	suite.mux = http.NewServeMux()
	suite.ts = httptest.NewServer(suite.mux)
	var err error
	suite.client, err = InitClient(suite.ts.URL+"/api/short", 2*time.Second, zerolog.Nop())
	suite.Require().NoError(err)
}

func (suite *ClientTestSuite) TearDownTest() {
	suite.ts.Close()
}

// TestClientTestSuite initializes test suite for being accessible
func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

// newFixedServer starts a shortening API answering every request with status and body.
func newFixedServer(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
}

func (suite *ClientTestSuite) TestShorten_Request() {
	var (
		method, contentType, accept, requestID string
		body                                   map[string]interface{}
	)
	suite.mux.HandleFunc("/api/short", func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		accept = r.Header.Get("Accept")
		requestID = r.Header.Get(RequestIDHeader)
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"shortened_url":"https://moyashi.xyz/abc123"}`)
	})

	sURL, err := suite.client.Shorten(context.Background(), "example.com")
	suite.Require().NoError(err)
	suite.Equal("https://moyashi.xyz/abc123", sURL)
	suite.Equal(http.MethodPost, method)
	suite.Contains(contentType, "application/json")
	suite.Equal("application/json", accept)
	suite.NotEmpty(requestID)
	suite.Equal(map[string]interface{}{"url": "example.com"}, body)
}

func (suite *ClientTestSuite) TestShorten_Responses() {
	tests := []struct {
		name    string
		status  int
		body    string
		want    string
		wantErr string
		check   func(t *testing.T, err error)
	}{
		{
			name:   "success",
			status: http.StatusCreated,
			body:   `{"shortened_url":"https://moyashi.xyz/abc123","extra":1}`,
			want:   "https://moyashi.xyz/abc123",
		},
		{
			name:    "success without shortened_url",
			status:  http.StatusOK,
			body:    `{"result":"https://moyashi.xyz/abc123"}`,
			wantErr: "invalid response format",
			check: func(t *testing.T, err error) {
				var malformed *clientErrors.MalformedResponseError
				assert.ErrorAs(t, err, &malformed)
			},
		},
		{
			name:    "success with empty shortened_url",
			status:  http.StatusOK,
			body:    `{"shortened_url":""}`,
			wantErr: "invalid response format",
		},
		{
			name:    "success with null shortened_url",
			status:  http.StatusOK,
			body:    `{"shortened_url":null}`,
			wantErr: "invalid response format",
		},
		{
			name:    "success with non-string shortened_url",
			status:  http.StatusOK,
			body:    `{"shortened_url":42}`,
			wantErr: "invalid response format",
		},
		{
			name:    "success with null body",
			status:  http.StatusOK,
			body:    `null`,
			wantErr: "invalid response format",
		},
		{
			name:    "failure with message",
			status:  http.StatusBadRequest,
			body:    `{"message":"X"}`,
			wantErr: "X",
			check: func(t *testing.T, err error) {
				var failed *clientErrors.RequestFailedError
				require.ErrorAs(t, err, &failed)
				assert.Equal(t, http.StatusBadRequest, failed.StatusCode)
			},
		},
		{
			name:    "failure without message",
			status:  http.StatusInternalServerError,
			body:    `{}`,
			wantErr: "failed to shorten URL",
		},
		{
			name:    "failure with empty message",
			status:  http.StatusTooManyRequests,
			body:    `{"message":""}`,
			wantErr: "failed to shorten URL",
		},
		{
			name:    "failure with non-string message",
			status:  http.StatusBadRequest,
			body:    `{"message":{"code":1}}`,
			wantErr: "failed to shorten URL",
		},
		{
			name:    "failure with numeric message",
			status:  http.StatusBadRequest,
			body:    `{"message":5}`,
			wantErr: "failed to shorten URL",
			check: func(t *testing.T, err error) {
				var failed *clientErrors.RequestFailedError
				require.ErrorAs(t, err, &failed)
				assert.Equal(t, http.StatusBadRequest, failed.StatusCode)
			},
		},
		{
			name:   "failure with invalid JSON",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
			check: func(t *testing.T, err error) {
				var parseErr *clientErrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				var syntaxErr *json.SyntaxError
				assert.ErrorAs(t, err, &syntaxErr)
				assert.Equal(t, syntaxErr.Error(), err.Error())
			},
		},
		{
			name:   "success with empty body",
			status: http.StatusOK,
			body:   ``,
			check: func(t *testing.T, err error) {
				var parseErr *clientErrors.ParseError
				assert.ErrorAs(t, err, &parseErr)
			},
		},
	}

	// perform each test
	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			ts := newFixedServer(tt.status, tt.body)
			defer ts.Close()
			c, err := InitClient(ts.URL+"/api/short", time.Second, zerolog.Nop())
			require.NoError(t, err)
			sURL, err := c.Shorten(context.Background(), "example.com")
			if tt.want != "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, sURL)
				return
			}
			require.Error(t, err)
			assert.Empty(t, sURL)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, err.Error())
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func (suite *ClientTestSuite) TestShorten_NetworkError() {
	suite.ts.Close()
	_, err := suite.client.Shorten(context.Background(), "example.com")
	suite.Require().Error(err)
	suite.Equal("a network error occurred", err.Error())
	var networkErr *clientErrors.NetworkError
	suite.Require().ErrorAs(err, &networkErr)
	suite.NotNil(errors.Unwrap(err))
	suite.NotEqual(errors.Unwrap(err).Error(), err.Error())
}

func (suite *ClientTestSuite) TestShorten_ContextCanceled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := suite.client.Shorten(ctx, "example.com")
	suite.ErrorIs(err, context.Canceled)
	var networkErr *clientErrors.NetworkError
	suite.False(errors.As(err, &networkErr))
}

func TestInitClient(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		wantErr  bool
	}{
		{name: "default endpoint", endpoint: "https://moyashi.xyz/api/short"},
		{name: "plain http", endpoint: "http://localhost:8080/api/short"},
		{name: "empty", endpoint: "", wantErr: true},
		{name: "relative", endpoint: "/api/short", wantErr: true},
		{name: "unsupported scheme", endpoint: "ftp://moyashi.xyz/api/short", wantErr: true},
		{name: "broken", endpoint: "http://[::1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := InitClient(tt.endpoint, 0, zerolog.Nop())
			if tt.wantErr {
				var initErr *clientErrors.ClientInitError
				assert.ErrorAs(t, err, &initErr)
				assert.Nil(t, c)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}
