package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/bdroads/internal/build"
	"go.trai.ch/bdroads/internal/core/domain"
	"go.trai.ch/zerr"
)

// Environment variables read by LoadSettings.
const (
	EnvOverpassURL  = "BDROADS_OVERPASS_URL"
	EnvNominatimURL = "BDROADS_NOMINATIM_URL"
	EnvUserAgent    = "BDROADS_USER_AGENT"
	EnvHTTPTimeout  = "BDROADS_HTTP_TIMEOUT"
)

// Provider defaults.
const (
	DefaultOverpassURL  = "https://overpass-api.de/api/interpreter"
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	DefaultHTTPTimeout  = 180 * time.Second
)

// SettingsFunc returns the provider settings.
type SettingsFunc func() (domain.ProviderSettings, error)

// LazySettings returns a SettingsFunc that calls LoadSettings on first use
// and returns the same result afterwards. Commands that never reach a
// provider never read the environment.
func LazySettings(envFiles ...string) SettingsFunc {
	return sync.OnceValues(func() (domain.ProviderSettings, error) {
		return LoadSettings(envFiles...)
	})
}

// LoadSettings resolves the provider settings from the environment.
// Variables from envFiles (".env" when none are given) are loaded first
// without overriding variables that are already set.
func LoadSettings(envFiles ...string) (domain.ProviderSettings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return domain.ProviderSettings{}, errors.Join(domain.ErrConfig, zerr.With(zerr.Wrap(err, "failed to load env file"), "path", f))
		}
	}

	settings := domain.ProviderSettings{
		OverpassURL:  getEnv(EnvOverpassURL, DefaultOverpassURL),
		NominatimURL: strings.TrimRight(getEnv(EnvNominatimURL, DefaultNominatimURL), "/"),
		UserAgent:    getEnv(EnvUserAgent, "bdroads/"+build.Version),
		Timeout:      DefaultHTTPTimeout,
	}

	if raw := os.Getenv(EnvHTTPTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return domain.ProviderSettings{}, errors.Join(domain.ErrConfig, zerr.With(zerr.New("invalid http timeout"), EnvHTTPTimeout, raw))
		}
		settings.Timeout = d
	}

	return settings, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
