// Package status renders transient user feedback: a single status line that
// auto-clears after a fixed delay.
package status

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Kind selects the styling of a status message.
type Kind string

const (
	KindError   Kind = "error"
	KindSuccess Kind = "success"
)

// DefaultTTL is how long a message stays visible unless superseded.
const DefaultTTL = 5 * time.Second

// Bar is a single-line status display. At most one message is visible at a
// time; showing a new message cancels the pending clear of the previous one.
//
// A Bar constructed with a nil writer is a no-op: every call silently does
// nothing. The mutex guards the clear timer, the only shared mutable state.
type Bar struct {
	out io.Writer
	ttl time.Duration

	mu      sync.Mutex
	hide    *time.Timer
	current string
	kind    Kind
}

// NewBar builds a Bar writing to out. A non-positive ttl falls back to
// DefaultTTL.
func NewBar(out io.Writer, ttl time.Duration) *Bar {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Bar{out: out, ttl: ttl}
}

// Show displays text with the given kind and schedules it to clear after the
// TTL. An empty kind defaults to error styling.
func (b *Bar) Show(text string, kind Kind) {
	if b == nil || b.out == nil {
		return
	}
	if kind == "" {
		kind = KindError
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.hide != nil {
		b.hide.Stop()
	}
	b.current = text
	b.kind = kind

	label := "!!"
	if kind == KindSuccess {
		label = "ok"
	}
	fmt.Fprintf(b.out, "[%s] %s\n", label, text)

	b.hide = time.AfterFunc(b.ttl, b.clear)
}

// Error shows text with error styling.
func (b *Bar) Error(text string) { b.Show(text, KindError) }

// Success shows text with success styling.
func (b *Bar) Success(text string) { b.Show(text, KindSuccess) }

// Current returns the message still considered visible, if any.
func (b *Bar) Current() (string, Kind, bool) {
	if b == nil || b.out == nil {
		return "", "", false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == "" {
		return "", "", false
	}
	return b.current, b.kind, true
}

func (b *Bar) clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = ""
	b.kind = ""
	b.hide = nil
}
