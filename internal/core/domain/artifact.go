// Package domain contains the core types of bdroads.
package domain

import "time"

// ArtifactKind identifies one of the three cacheable results.
type ArtifactKind string

const (
	// ArtifactGraph is the road network graph.
	ArtifactGraph ArtifactKind = "graph"
	// ArtifactBoundaries is the set of administrative boundaries.
	ArtifactBoundaries ArtifactKind = "boundaries"
	// ArtifactStats is the connectivity statistics snapshot.
	ArtifactStats ArtifactKind = "stats"
)

// AllArtifactKinds returns every artifact kind in resolution order.
func AllArtifactKinds() []ArtifactKind {
	return []ArtifactKind{ArtifactGraph, ArtifactBoundaries, ArtifactStats}
}

// Valid reports whether k is a known artifact kind.
func (k ArtifactKind) Valid() bool {
	switch k {
	case ArtifactGraph, ArtifactBoundaries, ArtifactStats:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name used in cache listings.
func (k ArtifactKind) Label() string {
	switch k {
	case ArtifactGraph:
		return "Road Network"
	case ArtifactBoundaries:
		return "District Boundaries"
	case ArtifactStats:
		return "Connectivity Stats"
	default:
		return string(k)
	}
}

// FileName returns the fixed cache file name of the artifact kind.
func (k ArtifactKind) FileName() string {
	switch k {
	case ArtifactGraph:
		return GraphFileName
	case ArtifactBoundaries:
		return BoundariesFileName
	case ArtifactStats:
		return StatsFileName
	default:
		return ""
	}
}

// ArtifactSource records where a resolved artifact came from.
type ArtifactSource string

const (
	// SourceCache means the artifact was loaded from the cache.
	SourceCache ArtifactSource = "cache"
	// SourceRegenerated means the artifact was produced by its collaborator and saved.
	SourceRegenerated ArtifactSource = "regenerated"
	// SourceSkipped means the artifact is optional and could not be produced.
	SourceSkipped ArtifactSource = "skipped"
)

// CacheEntryInfo describes a cache slot without reading its contents.
type CacheEntryInfo struct {
	Kind         ArtifactKind
	Path         string
	Present      bool
	SizeBytes    int64
	LastModified time.Time
}

// ForceFlags requests regeneration of artifacts regardless of cache presence.
type ForceFlags struct {
	Graph      bool
	Boundaries bool
	Stats      bool
}

// Effective returns the flags with derived rules applied.
// Statistics are computed from the graph, so forcing the graph forces the statistics.
func (f ForceFlags) Effective() ForceFlags {
	if f.Graph {
		f.Stats = true
	}
	return f
}

// For reports whether the given artifact kind is forced.
func (f ForceFlags) For(kind ArtifactKind) bool {
	switch kind {
	case ArtifactGraph:
		return f.Graph
	case ArtifactBoundaries:
		return f.Boundaries
	case ArtifactStats:
		return f.Stats
	default:
		return false
	}
}
