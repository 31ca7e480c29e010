// Package errors provides custom errors for types implementing the Shortener interface.
package errors

const (
	// RequestFailedFallbackMessage is shown when the server does not explain a failure.
	RequestFailedFallbackMessage = "failed to shorten URL"
	// MalformedResponseMessage is shown when a successful response lacks the shortened URL.
	MalformedResponseMessage = "invalid response format"
	// NetworkErrorMessage is shown when no response could be obtained.
	NetworkErrorMessage = "a network error occurred"
)

type (
	ClientInitError struct {
		Msg string
	}
	RequestFailedError struct {
		StatusCode int
		Msg        string
	}
	MalformedResponseError struct {
	}
	NetworkError struct {
		Err error
	}
	ParseError struct {
		Err error
	}
)

func (e *ClientInitError) Error() string {
	return e.Msg
}

func (e *RequestFailedError) Error() string {
	if e.Msg == "" {
		return RequestFailedFallbackMessage
	}
	return e.Msg
}

func (e *MalformedResponseError) Error() string {
	return MalformedResponseMessage
}

// Error never exposes the transport error text; Unwrap returns it.
func (e *NetworkError) Error() string {
	return NetworkErrorMessage
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
