package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// Interval for cleaning up idle sequence slots
	slotCleanupInterval = 10 * time.Minute

	// How long a slot must be idle before cleanup
	slotStaleThreshold = 10 * time.Minute
)

// =============================================================================
// Types
// =============================================================================

// RequestSequencer guards filter views against stale responses.
//
// Every filter action for a key (session id + view name) takes a ticket with a
// monotonically increasing sequence number. Taking a new ticket cancels the
// context of the previous in-flight request for the same key, and a response
// whose ticket is no longer current must be discarded by the caller.
type RequestSequencer struct {
	log *logrus.Logger

	// Per-key slot
	slots sync.Map // map[string]*sequenceSlot

	// Graceful shutdown
	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// sequenceSlot tracks the newest request of one key
type sequenceSlot struct {
	mu       sync.Mutex
	seq      uint64
	cancel   context.CancelFunc
	lastUsed atomic.Int64 // Unix timestamp
}

// Ticket identifies one issued request.
type Ticket struct {
	Seq  uint64
	key  string
	slot *sequenceSlot
	ctx  context.Context
	done context.CancelFunc
}

// =============================================================================
// Constructor
// =============================================================================

// NewRequestSequencer creates a new RequestSequencer.
// Starts background goroutine for slot cleanup.
// Call Stop() during graceful shutdown.
func NewRequestSequencer(log *logrus.Logger) *RequestSequencer {
	s := &RequestSequencer{
		log:      log,
		stopChan: make(chan struct{}),
	}

	s.wg.Add(1)
	go s.cleanupLoop()

	return s
}

// =============================================================================
// Lifecycle Methods
// =============================================================================

// Stop gracefully shuts down the sequencer.
// Safe to call multiple times.
func (s *RequestSequencer) Stop() {
	if s.stopped.CompareAndSwap(false, true) {
		close(s.stopChan)
		s.wg.Wait()
		s.log.Info("RequestSequencer stopped")
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Begin issues the next ticket for key and cancels the previous in-flight
// request of that key. The ticket's context must be used for the backend call.
func (s *RequestSequencer) Begin(parent context.Context, key string) *Ticket {
	slot := s.getSlot(key)

	ctx, cancel := context.WithCancel(parent)

	slot.mu.Lock()
	if slot.cancel != nil {
		slot.cancel()
	}
	slot.seq++
	slot.cancel = cancel
	seq := slot.seq
	slot.mu.Unlock()

	return &Ticket{
		Seq:  seq,
		key:  key,
		slot: slot,
		ctx:  ctx,
		done: cancel,
	}
}

// Context is cancelled as soon as a newer ticket is issued for the same key.
func (t *Ticket) Context() context.Context {
	return t.ctx
}

// Current reports whether no newer ticket has been issued since this one.
func (t *Ticket) Current() bool {
	t.slot.mu.Lock()
	defer t.slot.mu.Unlock()
	return t.slot.seq == t.Seq
}

// Finish releases the ticket's context. It does not affect newer tickets.
func (t *Ticket) Finish() {
	t.slot.mu.Lock()
	if t.slot.seq == t.Seq {
		t.slot.cancel = nil
	}
	t.slot.mu.Unlock()
	t.done()
}

// =============================================================================
// Private Helper Methods
// =============================================================================

func (s *RequestSequencer) getSlot(key string) *sequenceSlot {
	value, _ := s.slots.LoadOrStore(key, &sequenceSlot{})
	slot := value.(*sequenceSlot)
	slot.lastUsed.Store(time.Now().Unix())
	return slot
}

// cleanupLoop runs in background to drop idle slots
func (s *RequestSequencer) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(slotCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			s.log.Debug("Sequencer cleanup goroutine stopping")
			return
		case <-ticker.C:
			s.cleanupStaleSlots(time.Now().Add(-slotStaleThreshold))
		}
	}
}

// cleanupStaleSlots removes idle slots that have no request in flight.
// lastUsed is checked under the slot lock so a concurrent Begin is never lost.
func (s *RequestSequencer) cleanupStaleSlots(cutoff time.Time) int {
	cutoffUnix := cutoff.Unix()
	var cleaned int

	s.slots.Range(func(key, value any) bool {
		slot, ok := value.(*sequenceSlot)
		if !ok {
			return true
		}

		if slot.mu.TryLock() {
			if slot.cancel == nil && slot.lastUsed.Load() < cutoffUnix {
				s.slots.Delete(key)
				cleaned++
			}
			slot.mu.Unlock()
		}
		return true
	})

	if cleaned > 0 {
		s.log.Debugf("Cleaned up %d idle sequence slots", cleaned)
	}
	return cleaned
}
