package nominatim

import (
	"context"
	"sync"

	"go.trai.ch/bdroads/internal/core/domain"
)

// Lazy builds its Client on the first request, so settings errors surface
// from that request instead of at startup.
type Lazy struct {
	client func() (*Client, error)
}

// NewLazy creates a Lazy client resolving its settings with settings.
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

// FetchBoundaries implements ports.BoundaryProvider.
func (l *Lazy) FetchBoundaries(ctx context.Context, region string) (*domain.BoundarySet, error) {
	c, err := l.client()
	if err != nil {
		return nil, err
	}
	return c.FetchBoundaries(ctx, region)
}

// Geocode implements ports.Geocoder.
func (l *Lazy) Geocode(ctx context.Context, query string) (domain.Coordinate, error) {
	c, err := l.client()
	if err != nil {
		return domain.Coordinate{}, err
	}
	return c.Geocode(ctx, query)
}
