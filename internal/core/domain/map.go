package domain

// MapData is everything a renderer needs to draw one map document.
type MapData struct {
	Title      string
	Region     Region
	Graph      *NetworkGraph
	Boundaries *BoundarySet
	Cities     []City
	RoadStyles map[string]RoadStyle
	// GeocodeConcurrency limits parallel lookups for cities without a location.
	GeocodeConcurrency int
	// Simple selects the reduced layout without plugins.
	Simple     bool
	OutputPath string
}
