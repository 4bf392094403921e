package ports

import "go.trai.ch/bdroads/internal/core/domain"

// CacheStore persists the three pipeline artifacts under fixed names in one directory.
//
// Load methods return domain.ErrCacheMiss when the artifact is absent and
// domain.ErrCacheCorrupt when it cannot be decoded. Save methods replace the
// artifact atomically and return domain.ErrPersist on failure. Timestamps are
// stored in UTC, so loaded artifacts carry UTC times whatever zone they were
// saved with.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Has reports whether the artifact file exists. It does not validate contents.
	Has(kind domain.ArtifactKind) bool

	LoadGraph() (*domain.NetworkGraph, error)
	LoadBoundaries() (*domain.BoundarySet, error)
	LoadStats() (*domain.StatsSnapshot, error)

	SaveGraph(g *domain.NetworkGraph) error
	SaveBoundaries(b *domain.BoundarySet) error
	SaveStats(s *domain.StatsSnapshot) error

	// Clear removes the given artifacts, or all of them when none are given.
	// Absent artifacts are not an error.
	Clear(kinds ...domain.ArtifactKind) error

	// Describe reports presence, size and modification time of every artifact.
	Describe() ([]domain.CacheEntryInfo, error)
}

// CacheOpener opens a CacheStore rooted at a directory.
type CacheOpener interface {
	// Open creates dir if needed and returns a store rooted there.
	Open(dir string) (CacheStore, error)
}
