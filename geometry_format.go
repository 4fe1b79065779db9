package roadgraph

import (
	"strings"

	"github.com/pkg/errors"
)

// GeometryFormat Representation of geometry in exported files
type GeometryFormat uint16

const (
	GEOM_WKT = GeometryFormat(iota + 1)
	GEOM_GEOJSON
)

func (iotaIdx GeometryFormat) String() string {
	return [...]string{"wkt", "geojson"}[iotaIdx-1]
}

// ParseGeometryFormat Accepts 'wkt' or 'geojson' in any case
func ParseGeometryFormat(s string) (GeometryFormat, error) {
	switch strings.ToLower(s) {
	case "wkt":
		return GEOM_WKT, nil
	case "geojson":
		return GEOM_GEOJSON, nil
	default:
		return 0, errors.Errorf("Unknown geometry format '%s'. Expected values: wkt / geojson", s)
	}
}
