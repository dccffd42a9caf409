package analysis

import (
	"errors"
	"fmt"

	"github.com/heartmarshall/wordlens/internal/domain"
)

var (
	// ErrSessionNotFound indicates an unknown or expired session id.
	ErrSessionNotFound = fmt.Errorf("session %w", domain.ErrNotFound)
	// ErrNoWordAtOffset indicates a click that hit no medium or hard word.
	ErrNoWordAtOffset = fmt.Errorf("marked word at offset %w", domain.ErrNotFound)
	// ErrTooManySessions indicates the session registry is full.
	ErrTooManySessions = errors.New("too many sessions")
)
