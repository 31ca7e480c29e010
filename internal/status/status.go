// Package status provides a board holding one transient status message at a time.
package status

import (
	"sync"
	"time"
)

// DefaultTTL is how long a message stays visible.
const DefaultTTL = 3000 * time.Millisecond

// Kind selects the styling of a message.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Message is the visible status text and its kind; the zero value is the cleared state.
type Message struct {
	Text string `json:"text"`
	Kind Kind   `json:"kind"`
}

// Empty reports whether m is the cleared state.
func (m Message) Empty() bool {
	return m.Text == "" && m.Kind == ""
}

// Timer is the part of *time.Timer the board needs.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler func(d time.Duration, f func()) Timer

// AfterFunc is the Scheduler backed by time.AfterFunc.
func AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Option configures a Board.
type Option func(*Board)

// WithScheduler replaces the timer source.
func WithScheduler(s Scheduler) Option {
	return func(b *Board) {
		b.schedule = s
	}
}

// Board displays the most recent message and clears it once its TTL elapses.
type Board struct {
	mu        sync.Mutex
	ttl       time.Duration
	schedule  Scheduler
	current   Message
	timer     Timer
	gen       uint64
	listeners []func(Message)
}

// NewBoard initializes a Board. A non-positive ttl falls back to DefaultTTL.
func NewBoard(ttl time.Duration, opts ...Option) *Board {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	b := &Board{
		ttl:      ttl,
		schedule: AfterFunc,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// TTL returns the message lifetime.
func (b *Board) TTL() time.Duration {
	return b.ttl
}

// Subscribe registers fn to be called on every show and clear.
func (b *Board) Subscribe(fn func(Message)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, fn)
}

// Show replaces the visible message and restarts the clear timer.
func (b *Board) Show(text string, kind Kind) {
	msg := Message{Text: text, Kind: kind}
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.current = msg
	b.timer = b.schedule(b.ttl, func() { b.clear(gen) })
	listeners := b.listeners
	b.mu.Unlock()
	notify(listeners, msg)
}

// Current returns the visible message.
func (b *Board) Current() Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// Stop cancels a pending clear, leaving the current message in place.
func (b *Board) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// clear empties the board unless a newer message replaced the one that scheduled it.
func (b *Board) clear(gen uint64) {
	b.mu.Lock()
	if gen != b.gen {
		b.mu.Unlock()
		return
	}
	b.current = Message{}
	b.timer = nil
	listeners := b.listeners
	b.mu.Unlock()
	notify(listeners, Message{})
}

func notify(listeners []func(Message), msg Message) {
	for _, fn := range listeners {
		fn(msg)
	}
}
