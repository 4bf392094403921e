package overpass_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/bdroads/internal/adapters/overpass"
	"go.trai.ch/bdroads/internal/core/domain"
)

func TestAreaQuery(t *testing.T) {
	q := overpass.AreaQuery("Bangladesh", domain.NetworkDrive, 180*time.Second)

	assert.Equal(t, `[out:json][timeout:180];`, q[:len(`[out:json][timeout:180];`)])
	assert.Contains(t, q, `area["name:en"="Bangladesh"]["boundary"="administrative"]->.searchArea;`)
	assert.Contains(t, q, `(area.searchArea)`)
	assert.Contains(t, q, `["motorcar"!~"no"]`)
	assert.Contains(t, q, `(._;>;);out body qt;`)
}

func TestAreaQuery_EscapesRegion(t *testing.T) {
	q := overpass.AreaQuery(`Cox's "Bazar"`, domain.NetworkAll, time.Minute)
	assert.Contains(t, q, `["name:en"="Cox's \"Bazar\""]`)
}

func TestQueries_NetworkTypes(t *testing.T) {
	tests := []struct {
		nt       domain.NetworkType
		contains string
	}{
		{domain.NetworkDrive, `["motor_vehicle"!~"no"]`},
		{domain.NetworkWalk, `["foot"!~"no"]`},
		{domain.NetworkBike, `["bicycle"!~"no"]`},
		{domain.NetworkAll, `["highway"!~"abandoned|construction|no|planned|platform|proposed|raceway|razed"]`},
	}

	for _, tt := range tests {
		t.Run(string(tt.nt), func(t *testing.T) {
			q := overpass.AroundQuery(domain.Coordinate{Lat: 23.8, Lon: 90.4}, 1500, tt.nt, time.Minute)
			assert.Contains(t, q, tt.contains)
			assert.Contains(t, q, "(around:1500,23.8,90.4)")
		})
	}
}
