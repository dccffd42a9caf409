package analysis

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Session is the state one user keeps between an analysis and the clicks on
// its output: the position index of the last analyzed sentence.
//
// Analyze builds a new index off to the side and publishes it in one store,
// so concurrent clicks see either the previous complete index or the new
// one, never a partial or stale mix.
type Session struct {
	ID uuid.UUID

	analyzeMu sync.Mutex // serializes Analyze calls on this session
	index     atomic.Pointer[PositionIndex]
	last      atomic.Pointer[Result]

	lastUsed time.Time // guarded by Registry.mu
}

// NewSession returns a session with a fresh id and an empty index.
func NewSession() *Session {
	s := &Session{ID: uuid.New()}
	s.index.Store(NewPositionIndex())
	return s
}

// Index returns the index published by the last analysis.
func (s *Session) Index() *PositionIndex {
	return s.index.Load()
}

// LastResult returns the last successful analysis, or nil.
func (s *Session) LastResult() *Result {
	return s.last.Load()
}

func (s *Session) publish(idx *PositionIndex, result *Result) {
	s.index.Store(idx)
	s.last.Store(result)
}
