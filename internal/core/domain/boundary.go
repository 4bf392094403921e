package domain

import (
	"time"

	"github.com/paulmach/orb"
)

// Boundary is a single administrative polygon.
type Boundary struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Kind     string           `json:"kind,omitempty"`
	Geometry orb.MultiPolygon `json:"geometry"`
}

// BoundarySource describes where a boundary set was obtained from.
type BoundarySource struct {
	Provider  string    `json:"provider"`
	Query     string    `json:"query"`
	License   string    `json:"license,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// BoundarySet is the set of administrative polygons of a region.
type BoundarySet struct {
	Region     string         `json:"region"`
	Boundaries []Boundary     `json:"boundaries"`
	Source     BoundarySource `json:"source"`
}
