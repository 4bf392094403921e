package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

var (
	// ErrCacheMiss is returned when a requested artifact is not present in the cache.
	ErrCacheMiss = zerr.New("cache miss")

	// ErrCacheCorrupt is returned when a persisted artifact cannot be decoded into its expected shape.
	ErrCacheCorrupt = zerr.New("cache entry is corrupt")

	// ErrPersist is returned when an artifact cannot be written to the cache.
	ErrPersist = zerr.New("failed to persist artifact")

	// ErrDownload is returned when a provider fails to deliver data (connectivity, timeout, bad response).
	ErrDownload = zerr.New("download failed")

	// ErrConfig is returned for invalid flags or configuration, before any I/O happens.
	ErrConfig = zerr.New("invalid configuration")

	// ErrInvalidNetworkType is returned when a network type is not one of drive, walk, bike or all.
	ErrInvalidNetworkType = zerr.New("invalid network type, expected one of: drive, walk, bike, all")

	// ErrInvalidArtifactKind is returned when an artifact kind is not graph, boundaries or stats.
	ErrInvalidArtifactKind = zerr.New("invalid artifact kind")

	// ErrConflictingFlags is returned when mutually exclusive flags are combined.
	ErrConflictingFlags = zerr.New("conflicting flags")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrCacheCreateFailed is returned when the cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheClearFailed is returned when a cache entry cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to clear cache entry")

	// ErrCacheStatFailed is returned when a cache entry cannot be inspected.
	ErrCacheStatFailed = zerr.New("failed to inspect cache entry")

	// ErrEmptyNetwork is returned when a provider response contains no usable road segments.
	ErrEmptyNetwork = zerr.New("road network is empty")

	// ErrGeocodeNotFound is returned when a geocoding query yields no result.
	ErrGeocodeNotFound = zerr.New("no geocoding result")

	// ErrAnalysisFailed is returned when connectivity statistics cannot be computed.
	ErrAnalysisFailed = zerr.New("connectivity analysis failed")

	// ErrRenderFailed is returned when the map document cannot be produced.
	ErrRenderFailed = zerr.New("failed to render map")
)

// ErrorLine renders err on a single line, joining the lines of joined errors with ": ".
func ErrorLine(err error) string {
	if err == nil {
		return ""
	}
	var parts []string
	for _, line := range strings.Split(err.Error(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, ": ")
}
