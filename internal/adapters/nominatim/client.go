// Package nominatim implements the BoundaryProvider and Geocoder ports on top of
// the Nominatim search API.
package nominatim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tidwall/gjson"
	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ProviderName identifies boundaries fetched by this package.
	ProviderName = "nominatim"
	// License is the license of OpenStreetMap derived data.
	License = "ODbL"

	maxResponseBytes = 64 << 20
)

// Client implements ports.BoundaryProvider and ports.Geocoder.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient creates a Client from the provider settings.
func NewClient(settings domain.ProviderSettings) *Client {
	return newClientWithHTTP(settings, &http.Client{Timeout: settings.Timeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(settings domain.ProviderSettings, client *http.Client) *Client {
	return &Client{
		baseURL:    settings.NominatimURL,
		userAgent:  settings.UserAgent,
		httpClient: client,
		now:        time.Now,
	}
}

// FetchBoundaries returns the outline of the administrative area named region.
func (c *Client) FetchBoundaries(ctx context.Context, region string) (*domain.BoundarySet, error) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelInfo, fmt.Sprintf("querying nominatim for the outline of %s", region))
	}

	body, err := c.search(ctx, region, true)
	if err != nil {
		return nil, errors.Join(domain.ErrDownload, zerr.With(err, "region", region))
	}

	first := gjson.GetBytes(body, "0")
	if !first.Exists() {
		return nil, errors.Join(domain.ErrDownload, zerr.With(zerr.New("no boundary found"), "region", region))
	}

	geometry, err := toMultiPolygon(first.Get("geojson").Raw)
	if err != nil {
		return nil, errors.Join(domain.ErrDownload, zerr.With(err, "region", region))
	}

	return &domain.BoundarySet{
		Region: region,
		Boundaries: []domain.Boundary{{
			ID:       first.Get("osm_type").String() + "/" + first.Get("osm_id").String(),
			Name:     first.Get("display_name").String(),
			Kind:     first.Get("type").String(),
			Geometry: geometry,
		}},
		Source: domain.BoundarySource{
			Provider:  ProviderName,
			Query:     region,
			License:   License,
			FetchedAt: c.now().UTC(),
		},
	}, nil
}

// Geocode returns the location of the best match for query.
func (c *Client) Geocode(ctx context.Context, query string) (domain.Coordinate, error) {
	body, err := c.search(ctx, query, false)
	if err != nil {
		return domain.Coordinate{}, errors.Join(domain.ErrDownload, zerr.With(err, "query", query))
	}

	first := gjson.GetBytes(body, "0")
	if !first.Exists() {
		return domain.Coordinate{}, errors.Join(domain.ErrGeocodeNotFound, zerr.With(zerr.New("nominatim returned no results"), "query", query))
	}

	lat, lon := first.Get("lat"), first.Get("lon")
	if !lat.Exists() || !lon.Exists() {
		return domain.Coordinate{}, errors.Join(domain.ErrGeocodeNotFound, zerr.With(zerr.New("result has no location"), "query", query))
	}

	return domain.Coordinate{Lat: lat.Float(), Lon: lon.Float()}, nil
}

func (c *Client) search(ctx context.Context, query string, withPolygon bool) ([]byte, error) {
	params := url.Values{
		"q":      {query},
		"format": {"jsonv2"},
		"limit":  {"1"},
	}
	if withPolygon {
		params.Set("polygon_geojson", "1")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build nominatim request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, "nominatim request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.New("nominatim returned an unexpected status"), "status_code", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read nominatim response")
	}

	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsArray() {
		return nil, zerr.New("nominatim response is not a JSON array")
	}

	return body, nil
}

func toMultiPolygon(raw string) (orb.MultiPolygon, error) {
	if raw == "" {
		return nil, zerr.New("result has no polygon")
	}

	g, err := geojson.UnmarshalGeometry([]byte(raw))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decode boundary geometry")
	}

	switch geom := g.Coordinates.(type) {
	case orb.Polygon:
		return orb.MultiPolygon{geom}, nil
	case orb.MultiPolygon:
		return geom, nil
	default:
		return nil, zerr.With(zerr.New("boundary is not a polygon"), "type", g.Type)
	}
}
