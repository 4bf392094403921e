package nominatim

import (
	"net/http"
	"time"

	"go.trai.ch/bdroads/internal/core/domain"
)

// NewClientWithHTTP exports newClientWithHTTP with a fixed clock for testing.
func NewClientWithHTTP(settings domain.ProviderSettings, client *http.Client, now time.Time) *Client {
	c := newClientWithHTTP(settings, client)
	c.now = func() time.Time { return now }
	return c
}
