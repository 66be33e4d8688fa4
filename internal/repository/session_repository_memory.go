package repository

import (
	"context"
	"sync"
	"time"

	"hospital-portal/internal/domain/entity"
)

const sessionCleanupInterval = time.Minute

type memoryEntry struct {
	session   entity.Session
	expiresAt time.Time
}

// MemorySessionRepository keeps sessions in process memory. Sessions are lost
// on restart, which only logs everybody out. Expired entries are swept every
// minute until Stop is called.
type MemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewMemorySessionRepository(ttl time.Duration) *MemorySessionRepository {
	r := &MemorySessionRepository{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
		stopChan: make(chan struct{}),
	}
	if ttl > 0 {
		go r.cleanupLoop()
	}
	return r
}

func (r *MemorySessionRepository) Stop() {
	r.stopOnce.Do(func() { close(r.stopChan) })
}

func (r *MemorySessionRepository) cleanupLoop() {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopChan:
			return
		case <-ticker.C:
			r.evictExpired()
		}
	}
}

func (r *MemorySessionRepository) evictExpired() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	evicted := 0
	for id, entry := range r.sessions {
		if now.After(entry.expiresAt) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (r *MemorySessionRepository) Find(ctx context.Context, id string) (*entity.Session, error) {
	r.mu.RLock()
	entry, ok := r.sessions[id]
	r.mu.RUnlock()

	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	if r.ttl > 0 && r.now().After(entry.expiresAt) {
		r.mu.Lock()
		// A concurrent Save may have refreshed the entry.
		if current, ok := r.sessions[id]; ok && r.now().After(current.expiresAt) {
			delete(r.sessions, id)
		}
		r.mu.Unlock()
		return nil, entity.ErrSessionNotFound
	}

	session := entry.session
	return &session, nil
}

func (r *MemorySessionRepository) Save(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = memoryEntry{
		session:   *session,
		expiresAt: r.now().Add(r.ttl),
	}
	return nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}

func (r *MemorySessionRepository) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
