// Package console provides an interactive terminal front-end for the shortener widget.
//
// Every input line is the URL field contents followed by Enter. Lines starting with ':' are
// commands standing in for the other controls of the widget.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/qr"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/status"
	"github.com/danilovkiri/dk_go_shortener_widget/internal/widget"
	widgetErrors "github.com/danilovkiri/dk_go_shortener_widget/internal/widget/errors"
)

const (
	cmdCopy  = ":copy"
	cmdQR    = ":qr"
	cmdState = ":state"
	cmdHelp  = ":help"
	cmdQuit  = ":quit"
)

const helpText = `Type a URL and press Enter to shorten it.
  :copy   copy the shortened URL to the clipboard
  :qr     print the shortened URL as a QR code
  :state  print the widget state
  :quit   exit
`

// Console dispatches terminal input to widget handlers.
type Console struct {
	widget *widget.Widget
	in     io.Reader
	log    zerolog.Logger

	outMu sync.Mutex
	out   io.Writer
	wg    sync.WaitGroup
}

// NewConsole binds a console to the widget and starts echoing its status messages to out.
func NewConsole(w *widget.Widget, in io.Reader, out io.Writer, logger zerolog.Logger) *Console {
	c := &Console{
		widget: w,
		in:     in,
		out:    out,
		log:    logger,
	}
	w.Board().Subscribe(c.printMessage)
	return c
}

// Run reads lines until EOF, :quit or ctx cancellation, then waits for in-flight handlers.
// Handlers run concurrently so a slow request never blocks the input loop.
func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.println(strings.TrimRight(helpText, "\n"))
	defer c.wg.Wait()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if strings.TrimSpace(line) == cmdQuit {
				return nil
			}
			c.dispatch(ctx, line)
		}
	}
}

// dispatch maps one input line to its widget trigger.
func (c *Console) dispatch(ctx context.Context, line string) {
	switch strings.TrimSpace(line) {
	case cmdHelp:
		c.print(helpText)
		return
	case cmdState:
		state := c.widget.State()
		c.printf("input=%q shortened=%q visible=%t message=%q\n", state.Input, state.ShortenedURL, state.ResultVisible, state.Message.Text)
		return
	case cmdQR:
		c.printQR()
		return
	}
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if strings.TrimSpace(line) == cmdCopy {
			_ = c.widget.Copy(ctx)
			return
		}
		sURL, err := c.widget.KeyPress(ctx, widget.KeyEnter, line)
		switch {
		case err == nil:
			c.printf("shortened: %s\n", sURL)
		case errors.Is(err, widgetErrors.ErrSuperseded):
			c.log.Debug().Str("input", line).Msg("response superseded")
		}
	}()
}

func (c *Console) printQR() {
	state := c.widget.State()
	if !state.ResultVisible {
		c.println("nothing to encode yet")
		return
	}
	code, err := qr.Terminal(state.ShortenedURL)
	if err != nil {
		c.log.Error().Err(err).Msg("QR code rendering failed")
		return
	}
	c.print(code)
}

// printMessage renders shown messages; clears are not echoed.
func (c *Console) printMessage(m status.Message) {
	if m.Empty() {
		return
	}
	c.printf("[%s] %s\n", m.Kind, m.Text)
}

func (c *Console) printf(format string, args ...interface{}) {
	c.print(fmt.Sprintf(format, args...))
}

func (c *Console) println(s string) {
	c.print(s + "\n")
}

func (c *Console) print(s string) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	if _, err := io.WriteString(c.out, s); err != nil {
		c.log.Error().Err(err).Msg("console write failed")
	}
}
