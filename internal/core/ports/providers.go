package ports

import (
	"context"

	"go.trai.ch/bdroads/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=providers.go -destination=mocks/mock_providers.go -package=mocks

// NetworkProvider downloads road networks.
// Failures are reported as domain.ErrDownload.
type NetworkProvider interface {
	// DownloadNetwork fetches the road network of a named region.
	DownloadNetwork(ctx context.Context, region string, networkType domain.NetworkType) (*domain.NetworkGraph, error)
	// DownloadAround fetches the road network within radius meters of center.
	DownloadAround(
		ctx context.Context,
		center domain.Coordinate,
		radiusMeters float64,
		networkType domain.NetworkType,
	) (*domain.NetworkGraph, error)
}

// BoundaryProvider fetches administrative boundaries.
type BoundaryProvider interface {
	FetchBoundaries(ctx context.Context, region string) (*domain.BoundarySet, error)
}

// Geocoder resolves place names to coordinates.
type Geocoder interface {
	// Geocode returns domain.ErrGeocodeNotFound when the query has no result.
	Geocode(ctx context.Context, query string) (domain.Coordinate, error)
}

// GraphAnalyzer derives connectivity statistics from a road graph.
type GraphAnalyzer interface {
	ComputeStats(ctx context.Context, g *domain.NetworkGraph, cfg domain.AnalysisConfig) (*domain.StatsSnapshot, error)
}

// MapRenderer writes an interactive map document.
type MapRenderer interface {
	// Render writes the map described by data to data.OutputPath.
	Render(ctx context.Context, data domain.MapData) error
}
