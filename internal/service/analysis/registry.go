package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordlens/internal/config"
)

// Registry keeps the live sessions of the HTTP API in memory. Sessions idle
// for longer than the TTL are dropped by Sweep.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	max      int
	now      func() time.Time
}

// NewRegistry creates a Registry from the session settings.
func NewRegistry(cfg config.SessionConfig) *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      cfg.IdleTTL,
		max:      cfg.MaxSessions,
		now:      time.Now,
	}
}

// Create registers a new session. It returns ErrTooManySessions when the
// registry is full even after dropping idle sessions.
func (r *Registry) Create() (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sessions) >= r.max {
		r.sweepLocked()
		if len(r.sessions) >= r.max {
			return nil, ErrTooManySessions
		}
	}

	s := NewSession()
	s.lastUsed = r.now()
	r.sessions[s.ID] = s
	return s, nil
}

// Get returns the session with the given id and marks it as used.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.lastUsed = r.now()
	return s, nil
}

// Delete removes a session. It reports whether the session existed.
func (r *Registry) Delete(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.sessions[id]
	delete(r.sessions, id)
	return ok
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops idle sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked()
}

func (r *Registry) sweepLocked() int {
	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, s := range r.sessions {
		if s.lastUsed.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
