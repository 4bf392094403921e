// Package overpass implements the NetworkProvider port on top of the Overpass API.
package overpass

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/bdroads/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxResponseBytes bounds the size of a single Overpass response.
const maxResponseBytes = 2 << 30

// Client implements ports.NetworkProvider.
type Client struct {
	endpoint   string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	now        func() time.Time
	newID      func() string
}

// NewClient creates a Client from the provider settings.
func NewClient(settings domain.ProviderSettings) *Client {
	return newClientWithHTTP(settings, &http.Client{Timeout: settings.Timeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(settings domain.ProviderSettings, client *http.Client) *Client {
	return &Client{
		endpoint:   settings.OverpassURL,
		userAgent:  settings.UserAgent,
		timeout:    settings.Timeout,
		httpClient: client,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// DownloadNetwork fetches the road network inside the administrative area named region.
func (c *Client) DownloadNetwork(
	ctx context.Context,
	region string,
	networkType domain.NetworkType,
) (*domain.NetworkGraph, error) {
	if _, err := domain.ParseNetworkType(string(networkType)); err != nil {
		return nil, errors.Join(domain.ErrConfig, err)
	}

	logf(ctx, "querying overpass for %s network of %s", networkType, region)
	g, err := c.download(ctx, areaQuery(region, networkType, c.timeout))
	if err != nil {
		return nil, errors.Join(domain.ErrDownload, zerr.With(err, "region", region))
	}

	g.Region = region
	g.NetworkType = networkType
	return g, nil
}

// DownloadAround fetches the road network within radiusMeters of center.
func (c *Client) DownloadAround(
	ctx context.Context,
	center domain.Coordinate,
	radiusMeters float64,
	networkType domain.NetworkType,
) (*domain.NetworkGraph, error) {
	if _, err := domain.ParseNetworkType(string(networkType)); err != nil {
		return nil, errors.Join(domain.ErrConfig, err)
	}
	if radiusMeters <= 0 {
		return nil, errors.Join(domain.ErrConfig, zerr.With(zerr.New("radius must be positive"), "radius_m", radiusMeters))
	}

	logf(ctx, "querying overpass for %s network within %.0f m of %.4f,%.4f",
		networkType, radiusMeters, center.Lat, center.Lon)
	g, err := c.download(ctx, aroundQuery(center, radiusMeters, networkType, c.timeout))
	if err != nil {
		return nil, errors.Join(domain.ErrDownload, zerr.With(err, "center", fmt.Sprintf("%g,%g", center.Lat, center.Lon)))
	}

	g.Region = fmt.Sprintf("%g,%g+%gm", center.Lat, center.Lon, radiusMeters)
	g.NetworkType = networkType
	return g, nil
}

func (c *Client) download(ctx context.Context, query string) (*domain.NetworkGraph, error) {
	body, err := c.post(ctx, query)
	if err != nil {
		return nil, err
	}
	logf(ctx, "received %d bytes", len(body))

	nodes, ways, err := parseElements(body)
	if err != nil {
		return nil, err
	}

	roadNodes, edges := buildSegments(nodes, ways)
	if len(edges) == 0 {
		return nil, zerr.With(domain.ErrEmptyNetwork, "ways", len(ways))
	}
	logf(ctx, "simplified %d ways into %d nodes and %d edges", len(ways), len(roadNodes), len(edges))

	return &domain.NetworkGraph{
		ID:           c.newID(),
		Nodes:        roadNodes,
		Edges:        edges,
		DownloadedAt: c.now().UTC(),
	}, nil
}

func (c *Client) post(ctx context.Context, query string) ([]byte, error) {
	form := url.Values{"data": {query}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build overpass request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, "overpass request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.New("overpass returned an unexpected status"), "status_code", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read overpass response")
	}

	return body, nil
}

// logf writes progress to the telemetry vertex carried by ctx, if any.
func logf(ctx context.Context, format string, args ...any) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelInfo, fmt.Sprintf(format, args...))
	}
}
