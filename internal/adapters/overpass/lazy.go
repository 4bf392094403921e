package overpass

import (
	"context"
	"sync"

	"go.trai.ch/bdroads/internal/core/domain"
)

// Lazy is a ports.NetworkProvider that builds its Client on the first download.
// Settings errors surface from that download instead of at startup.
type Lazy struct {
	client func() (*Client, error)
}

// NewLazy creates a Lazy provider resolving its settings with settings.
func NewLazy(settings func() (domain.ProviderSettings, error)) *Lazy {
	return &Lazy{
		client: sync.OnceValues(func() (*Client, error) {
			s, err := settings()
			if err != nil {
				return nil, err
			}
			return NewClient(s), nil
		}),
	}
}

// DownloadNetwork implements ports.NetworkProvider.
func (l *Lazy) DownloadNetwork(
	ctx context.Context,
	region string,
	networkType domain.NetworkType,
) (*domain.NetworkGraph, error) {
	c, err := l.client()
	if err != nil {
		return nil, err
	}
	return c.DownloadNetwork(ctx, region, networkType)
}

// DownloadAround implements ports.NetworkProvider.
func (l *Lazy) DownloadAround(
	ctx context.Context,
	center domain.Coordinate,
	radiusMeters float64,
	networkType domain.NetworkType,
) (*domain.NetworkGraph, error) {
	c, err := l.client()
	if err != nil {
		return nil, err
	}
	return c.DownloadAround(ctx, center, radiusMeters, networkType)
}
