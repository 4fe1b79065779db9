package roadgraph

import (
	"fmt"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

const (
	// HeightUnknown Placeholder for height of 2D geometry points
	HeightUnknown = "N/A"
)

// Coordinate Point of road geometry.
// Components are kept as source text so output matches input formatting exactly.
type Coordinate struct {
	Easting  string
	Northing string
	Height   string
}

// NewCoordinate returns coordinate. Empty height is replaced by HeightUnknown
func NewCoordinate(easting, northing, height string) Coordinate {
	if height == "" {
		height = HeightUnknown
	}
	return Coordinate{
		Easting:  easting,
		Northing: northing,
		Height:   height,
	}
}

// Is3D Returns true if height is known
func (c Coordinate) Is3D() bool {
	return c.Height != HeightUnknown
}

// String Pretty printing for Coordinate
func (c Coordinate) String() string {
	return fmt.Sprintf("%-16s\t%-16s\t%s", c.Easting, c.Northing, c.Height)
}

// Point Converts coordinate to planar point (easting, northing)
func (c Coordinate) Point() (orb.Point, error) {
	x, err := strconv.ParseFloat(c.Easting, 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "Can't parse easting '%s'", c.Easting)
	}
	y, err := strconv.ParseFloat(c.Northing, 64)
	if err != nil {
		return orb.Point{}, errors.Wrapf(err, "Can't parse northing '%s'", c.Northing)
	}
	return orb.Point{x, y}, nil
}
