// Package errors provides custom errors for the widget handlers.
package errors

import "errors"

const (
	// EmptyInputMessage is shown when submit is activated with a blank URL field.
	EmptyInputMessage = "please enter a URL"
	// ClipboardFailureMessage is shown when the clipboard rejects a write.
	ClipboardFailureMessage = "copy failed"
)

// ErrSuperseded is returned to a submit whose response arrived after a newer submit was issued.
var ErrSuperseded = errors.New("superseded by a newer request")

type (
	WidgetInitError struct {
		Msg string
	}
	EmptyInputError struct {
	}
	ClipboardError struct {
		Err error
	}
)

func (e *WidgetInitError) Error() string {
	return e.Msg
}

func (e *EmptyInputError) Error() string {
	return EmptyInputMessage
}

func (e *ClipboardError) Error() string {
	return ClipboardFailureMessage
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}
