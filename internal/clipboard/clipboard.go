// Package clipboard provides write access to the system clipboard.
package clipboard

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when the platform offers no clipboard utility.
var ErrUnsupported = errors.New("clipboard is not supported on this platform")

// Clipboard defines a set of methods for types implementing Clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Check interface implementation explicitly
var (
	_ Clipboard = (*System)(nil)
)

// System writes to the operating system clipboard.
type System struct{}

// NewSystem initializes a System clipboard.
func NewSystem() *System {
	return &System{}
}

// WriteText replaces the clipboard contents with text.
func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
