package roadgraph

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	wktPrefix3D  = "LINESTRING Z ("
	wktPrefix2D  = "LINESTRING ("
	wktEmpty     = "LINESTRING EMPTY"
	wktSuffix    = ")"
	wktPointsSep = ", "
	wktValuesSep = " "
)

// ParseLineString Parses WKT line string (2D or 3D) into ordered coordinates
/*
	Accepted forms:
		LINESTRING (E N, E N, ...)
		LINESTRING Z (E N H, E N H, ...)
	Numeric components are kept as text.
*/
func ParseLineString(wkt string) ([]Coordinate, error) {
	if wkt == wktEmpty {
		return []Coordinate{}, nil
	}
	var body string
	switch {
	case strings.HasPrefix(wkt, wktPrefix3D):
		body = wkt[len(wktPrefix3D):]
	case strings.HasPrefix(wkt, wktPrefix2D):
		body = wkt[len(wktPrefix2D):]
	default:
		return nil, errors.Wrapf(ErrMalformedGeometry, "Unexpected prefix in '%s'", shorten(wkt))
	}
	if !strings.HasSuffix(body, wktSuffix) {
		return nil, errors.Wrapf(ErrMalformedGeometry, "No closing parenthesis in '%s'", shorten(wkt))
	}
	body = body[:len(body)-len(wktSuffix)]
	if strings.TrimSpace(body) == "" {
		return []Coordinate{}, nil
	}

	tokens := strings.Split(body, wktPointsSep)
	coordinates := make([]Coordinate, 0, len(tokens))
	for i, token := range tokens {
		values := strings.Split(token, wktValuesSep)
		switch len(values) {
		case 2:
			coordinates = append(coordinates, NewCoordinate(values[0], values[1], HeightUnknown))
		case 3:
			coordinates = append(coordinates, NewCoordinate(values[0], values[1], values[2]))
		default:
			return nil, errors.Wrapf(ErrMalformedGeometry, "Point #%d '%s' has %d components", i, token, len(values))
		}
	}
	return coordinates, nil
}

// FirstCoordinate Returns first point of geometry
func FirstCoordinate(coordinates []Coordinate) (Coordinate, error) {
	if len(coordinates) == 0 {
		return Coordinate{}, errors.Wrap(ErrEmptyGeometry, "Can't get start coordinate")
	}
	return coordinates[0], nil
}

// LastCoordinate Returns last point of geometry
func LastCoordinate(coordinates []Coordinate) (Coordinate, error) {
	if len(coordinates) == 0 {
		return Coordinate{}, errors.Wrap(ErrEmptyGeometry, "Can't get end coordinate")
	}
	return coordinates[len(coordinates)-1], nil
}

func shorten(s string) string {
	const limit = 48
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
