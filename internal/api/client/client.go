// Package client provides functionality for requesting shortened URLs from the remote shortening API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	clientErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/api/client/errors"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/api/modeldto"
)

const (
	// UserAgent identifies the widget to the shortening API.
	UserAgent = "dk-go-shortener-widget/1.0"
	// RequestIDHeader carries a per-request correlation ID.
	RequestIDHeader = "X-Request-ID"
)

// Shortener defines a set of methods for types implementing Shortener.
type Shortener interface {
	Shorten(ctx context.Context, URL string) (sURL string, err error)
}

// Check interface implementation explicitly
var (
	_ Shortener = (*Client)(nil)
)

// Client struct defines data structure handling and provides support for adding new implementations.
type Client struct {
	endpoint string
	http     *resty.Client
	log      zerolog.Logger
}

// InitClient initializes a Client object for the given shortening endpoint.
// A zero timeout leaves the transport default in place.
func InitClient(endpoint string, timeout time.Duration, logger zerolog.Logger) (*Client, error) {
	if endpoint == "" {
		return nil, &clientErrors.ClientInitError{Msg: "empty API endpoint was passed to client initializer"}
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, &clientErrors.ClientInitError{Msg: err.Error()}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, &clientErrors.ClientInitError{Msg: "API endpoint must be an absolute http(s) URL"}
	}
	httpClient := resty.New().SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
		log:      logger.With().Str("endpoint", endpoint).Logger(),
	}, nil
}

// Shorten sends URL to the shortening API and returns the shortened URL.
func (c *Client) Shorten(ctx context.Context, URL string) (sURL string, err error) {
	requestID := uuid.New().String()
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader(RequestIDHeader, requestID).
		SetBody(modeldto.RequestURL{URL: URL}).
		Post(c.endpoint)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		c.log.Warn().Err(err).Str("request_id", requestID).Msg("shortening request did not complete")
		return "", &clientErrors.NetworkError{Err: err}
	}
	c.log.Debug().
		Str("request_id", requestID).
		Int("status", res.StatusCode()).
		Dur("duration", res.Time()).
		Msg("shortening response received")
	if !res.IsSuccess() {
		return "", decodeFailure(res.StatusCode(), res.Body())
	}
	return decodeShortened(res.Body())
}

// decodeShortened extracts shortened_url from a successful response body.
func decodeShortened(body []byte) (string, error) {
	var payload modeldto.ResponseURL
	if err := json.Unmarshal(body, &payload); err != nil {
		if isTypeError(err) {
			return "", &clientErrors.MalformedResponseError{}
		}
		return "", &clientErrors.ParseError{Err: err}
	}
	if payload.ShortenedURL == "" {
		return "", &clientErrors.MalformedResponseError{}
	}
	return payload.ShortenedURL, nil
}

// decodeFailure builds a RequestFailedError from a failure response body.
func decodeFailure(status int, body []byte) error {
	var payload modeldto.ResponseError
	if err := json.Unmarshal(body, &payload); err != nil && !isTypeError(err) {
		return &clientErrors.ParseError{Err: err}
	}
	msg := payload.Message
	if msg == "" {
		msg = clientErrors.RequestFailedFallbackMessage
	}
	return &clientErrors.RequestFailedError{StatusCode: status, Msg: msg}
}

// isTypeError reports whether err is a well-formed JSON document of an unexpected shape.
func isTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
