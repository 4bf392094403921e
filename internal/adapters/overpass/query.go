package overpass

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/bdroads/internal/core/domain"
)

// wayFilters holds the tag filters selecting the ways of each network type.
var wayFilters = map[domain.NetworkType]string{
	domain.NetworkDrive: `["highway"]["area"!~"yes"]` +
		`["highway"!~"abandoned|bridleway|bus_guideway|construction|corridor|cycleway|elevator|escalator|` +
		`footway|no|path|pedestrian|planned|platform|proposed|raceway|razed|service|steps|track"]` +
		`["motor_vehicle"!~"no"]["motorcar"!~"no"]["access"!~"private"]` +
		`["service"!~"alley|driveway|emergency_access|parking|parking_aisle|private"]`,
	domain.NetworkWalk: `["highway"]["area"!~"yes"]` +
		`["highway"!~"abandoned|bus_guideway|construction|cycleway|motor|no|planned|platform|proposed|raceway|razed"]` +
		`["foot"!~"no"]["access"!~"private"]["service"!~"private"]`,
	domain.NetworkBike: `["highway"]["area"!~"yes"]` +
		`["highway"!~"abandoned|bus_guideway|construction|corridor|elevator|escalator|footway|motor|no|` +
		`planned|platform|proposed|raceway|razed|steps"]` +
		`["bicycle"!~"no"]["access"!~"private"]["service"!~"private"]`,
	domain.NetworkAll: `["highway"]["area"!~"yes"]` +
		`["highway"!~"abandoned|construction|no|planned|platform|proposed|raceway|razed"]`,
}

func header(timeout time.Duration) string {
	secs := int(timeout.Seconds())
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("[out:json][timeout:%d];", secs)
}

// quote escapes s for use inside a double-quoted Overpass QL string.
func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

// areaQuery selects all matching ways inside the administrative area named region.
func areaQuery(region string, nt domain.NetworkType, timeout time.Duration) string {
	var b strings.Builder
	b.WriteString(header(timeout))
	b.WriteString(`area["name:en"=` + quote(region) + `]["boundary"="administrative"]->.searchArea;`)
	b.WriteString(`(way` + wayFilters[nt] + `(area.searchArea););`)
	b.WriteString(`(._;>;);out body qt;`)
	return b.String()
}

// aroundQuery selects all matching ways within radius meters of center.
func aroundQuery(center domain.Coordinate, radiusMeters float64, nt domain.NetworkType, timeout time.Duration) string {
	around := fmt.Sprintf("(around:%s,%s,%s)",
		strconv.FormatFloat(radiusMeters, 'f', -1, 64),
		strconv.FormatFloat(center.Lat, 'f', -1, 64),
		strconv.FormatFloat(center.Lon, 'f', -1, 64),
	)

	var b strings.Builder
	b.WriteString(header(timeout))
	b.WriteString(`(way` + wayFilters[nt] + around + `;);`)
	b.WriteString(`(._;>;);out body qt;`)
	return b.String()
}
