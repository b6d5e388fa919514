package logging

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// StatusSink receives user-facing feedback text. The status bar satisfies it.
type StatusSink interface {
	Error(text string)
	Success(text string)
}

// MirrorHook routes every logged message to a StatusSink in addition to the
// normal log output: info events as success feedback, warn and error events
// as error feedback. Debug and below are not mirrored.
//
// A re-entrancy guard drops nested mirrored calls, so a sink that itself
// logs cannot recurse: at most one mirrored call is in flight at a time.
type MirrorHook struct {
	sink StatusSink
	busy atomic.Bool
}

// NewMirrorHook builds a hook forwarding log messages to sink.
func NewMirrorHook(sink StatusSink) *MirrorHook {
	return &MirrorHook{sink: sink}
}

// Run implements zerolog.Hook.
func (h *MirrorHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	if h.sink == nil || msg == "" || level < zerolog.InfoLevel {
		return
	}
	if !h.busy.CompareAndSwap(false, true) {
		return
	}
	defer h.busy.Store(false)

	if level >= zerolog.WarnLevel {
		h.sink.Error(msg)
		return
	}
	h.sink.Success(msg)
}
