package overpass

import (
	"net/http"
	"time"

	"go.trai.ch/bdroads/internal/core/domain"
)

// NewClientWithHTTP exports newClientWithHTTP with a fixed clock and ID for testing.
func NewClientWithHTTP(settings domain.ProviderSettings, client *http.Client, now time.Time, id string) *Client {
	c := newClientWithHTTP(settings, client)
	c.now = func() time.Time { return now }
	c.newID = func() string { return id }
	return c
}

// AreaQuery exports areaQuery for testing.
var AreaQuery = areaQuery

// AroundQuery exports aroundQuery for testing.
var AroundQuery = aroundQuery
