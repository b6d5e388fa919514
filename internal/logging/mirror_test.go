package logging

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	errors    []string
	successes []string
}

func (s *recordingSink) Error(text string)   { s.errors = append(s.errors, text) }
func (s *recordingSink) Success(text string) { s.successes = append(s.successes, text) }

// loggingSink logs from inside the sink, which without the guard would
// recurse through the hook forever.
type loggingSink struct {
	log   Logger
	calls int
}

func (s *loggingSink) Error(text string) {
	s.calls++
	s.log.Error(context.Background(), "sink internal failure")
}

func (s *loggingSink) Success(text string) { s.calls++ }

func TestMirrorHook_RoutesByLevel(t *testing.T) {
	sink := &recordingSink{}
	log := NewConsole(io.Discard, zerolog.InfoLevel, NewMirrorHook(sink))
	ctx := context.Background()

	log.Info(ctx, "saved")
	log.Warn(ctx, "slow response")
	log.Error(ctx, "request failed")

	require.Equal(t, []string{"saved"}, sink.successes)
	require.Equal(t, []string{"slow response", "request failed"}, sink.errors)
}

func TestMirrorHook_DebugNotMirrored(t *testing.T) {
	sink := &recordingSink{}
	l := zerolog.New(io.Discard).Level(zerolog.DebugLevel).Hook(NewMirrorHook(sink))

	l.Debug().Msg("noise")

	require.Empty(t, sink.successes)
	require.Empty(t, sink.errors)
}

func TestMirrorHook_NilSinkIsNoop(t *testing.T) {
	log := NewConsole(io.Discard, zerolog.InfoLevel, NewMirrorHook(nil))
	log.Error(context.Background(), "boom")
}

func TestMirrorHook_ReentrantCallsDropped(t *testing.T) {
	sink := &loggingSink{}
	log := NewConsole(io.Discard, zerolog.InfoLevel, NewMirrorHook(sink))
	sink.log = log

	log.Error(context.Background(), "outer failure")

	// The nested Error from inside the sink must be dropped, not mirrored.
	require.Equal(t, 1, sink.calls)
}

func TestMirrorHook_EmptyMessageIgnored(t *testing.T) {
	sink := &recordingSink{}
	log := NewConsole(io.Discard, zerolog.InfoLevel, NewMirrorHook(sink))

	log.Info(context.Background(), "")

	require.Empty(t, sink.successes)
}
