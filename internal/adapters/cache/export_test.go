package cache

import (
	"time"

	"go.trai.ch/bdroads/internal/core/domain"
)

// Encode exposes encode for tests.
func Encode(kind domain.ArtifactKind, v any, createdAt time.Time) ([]byte, error) {
	return encode(kind, v, createdAt)
}

// SetClock replaces the store clock for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}
