package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestSequencer(t *testing.T) *RequestSequencer {
	t.Helper()
	s := NewRequestSequencer(testLogger())
	t.Cleanup(s.Stop)
	return s
}

func TestRequestSequencer_MonotonicPerKey(t *testing.T) {
	s := newTestSequencer(t)
	ctx := context.Background()

	first := s.Begin(ctx, "sess:admin-doctors")
	second := s.Begin(ctx, "sess:admin-doctors")
	other := s.Begin(ctx, "sess:patient-doctors")

	assert.Equal(t, uint64(1), first.Seq)
	assert.Equal(t, uint64(2), second.Seq)
	assert.Equal(t, uint64(1), other.Seq)
	assert.False(t, first.Current())
	assert.True(t, second.Current())
}

func TestRequestSequencer_NewerTicketSupersedesOlder(t *testing.T) {
	s := newTestSequencer(t)

	older := s.Begin(context.Background(), "k")
	newer := s.Begin(context.Background(), "k")
	defer newer.Finish()

	assert.False(t, older.Current())
	assert.True(t, newer.Current())
	assert.ErrorIs(t, older.Context().Err(), context.Canceled)
	assert.NoError(t, newer.Context().Err())
	older.Finish()
	assert.NoError(t, newer.Context().Err(), "finishing an older ticket must not cancel the newer one")
}

func TestRequestSequencer_OutOfOrderCompletion(t *testing.T) {
	s := newTestSequencer(t)

	// Request A is issued, then B; B's response arrives first, A's later.
	a := s.Begin(context.Background(), "k")
	b := s.Begin(context.Background(), "k")

	assert.True(t, b.Current())
	b.Finish()
	assert.False(t, a.Current(), "the late response of A must be discarded")
	a.Finish()
}

func TestRequestSequencer_ParentCancellation(t *testing.T) {
	s := newTestSequencer(t)
	parent, cancel := context.WithCancel(context.Background())

	ticket := s.Begin(parent, "k")
	defer ticket.Finish()
	cancel()

	assert.ErrorIs(t, ticket.Context().Err(), context.Canceled)
	assert.True(t, ticket.Current())
}

func TestRequestSequencer_CleanupSkipsBusySlots(t *testing.T) {
	s := newTestSequencer(t)

	busy := s.Begin(context.Background(), "busy")
	idle := s.Begin(context.Background(), "idle")
	idle.Finish()

	cleaned := s.cleanupStaleSlots(time.Now().Add(time.Hour))
	assert.Equal(t, 1, cleaned)
	_, idleKept := s.slots.Load("idle")
	_, busyKept := s.slots.Load("busy")
	assert.False(t, idleKept)
	assert.True(t, busyKept)
	busy.Finish()
}

func TestRequestSequencer_StopIsIdempotent(t *testing.T) {
	s := NewRequestSequencer(testLogger())
	require.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})
}
