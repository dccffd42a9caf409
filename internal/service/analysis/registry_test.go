package analysis

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordlens/internal/config"
	"github.com/heartmarshall/wordlens/internal/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestRegistry(ttl time.Duration, max int) (*Registry, *fakeClock) {
	clock := &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	r := NewRegistry(config.SessionConfig{IdleTTL: ttl, MaxSessions: max})
	r.now = clock.Now
	return r, clock
}

func TestRegistry_CreateGetDelete(t *testing.T) {
	t.Parallel()

	r, _ := newTestRegistry(time.Minute, 10)

	s, err := r.Create()
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, 1, r.Len())

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	assert.True(t, r.Delete(s.ID))
	assert.False(t, r.Delete(s.ID))
	assert.Equal(t, 0, r.Len())

	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistry_SweepDropsIdleSessions(t *testing.T) {
	t.Parallel()

	r, clock := newTestRegistry(10*time.Minute, 10)

	idle, err := r.Create()
	require.NoError(t, err)
	active, err := r.Create()
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)
	_, err = r.Get(active.ID)
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)
	assert.Equal(t, 1, r.Sweep())

	_, err = r.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = r.Get(active.ID)
	assert.NoError(t, err)
}

func TestRegistry_CreateWhenFull(t *testing.T) {
	t.Parallel()

	r, clock := newTestRegistry(time.Minute, 2)

	_, err := r.Create()
	require.NoError(t, err)
	_, err = r.Create()
	require.NoError(t, err)

	_, err = r.Create()
	assert.ErrorIs(t, err, ErrTooManySessions)

	// Once the old sessions are idle, Create makes room by sweeping.
	clock.Advance(2 * time.Minute)
	_, err = r.Create()
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	r, _ := newTestRegistry(time.Minute, 10)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	r, _ := newTestRegistry(time.Minute, 1000)

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := r.Create()
			if err != nil {
				t.Error(err)
				return
			}
			if _, err := r.Get(s.ID); err != nil {
				t.Error(err)
			}
			r.Sweep()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, r.Len())
}
