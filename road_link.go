package roadgraph

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// RoadLink Directed road segment between two nodes
type RoadLink struct {
	Reference string
	Start     string
	End       string
	// First point is the start node position, last point is the end node position
	Coordinates []Coordinate
}

func newRoadLink(reference, start, end string, coordinates []Coordinate) *RoadLink {
	link := RoadLink{
		Reference:   reference,
		Start:       start,
		End:         end,
		Coordinates: make([]Coordinate, len(coordinates)),
	}
	copy(link.Coordinates, coordinates)
	return &link
}

// FarEnd Returns identifier of the opposite endpoint
func (link *RoadLink) FarEnd(nodeID string) string {
	if nodeID == link.Start {
		return link.End
	}
	return link.Start
}

// LineString Returns planar geometry of the link
func (link *RoadLink) LineString() (orb.LineString, error) {
	line := make(orb.LineString, 0, len(link.Coordinates))
	for i, c := range link.Coordinates {
		pt, err := c.Point()
		if err != nil {
			return nil, errors.Wrapf(err, "Link '%s', point #%d", link.Reference, i)
		}
		line = append(line, pt)
	}
	return line, nil
}

// LengthMeters Returns planar length of the link.
// NVDB geometry is projected (UTM), so units are meters.
func (link *RoadLink) LengthMeters() (float64, error) {
	line, err := link.LineString()
	if err != nil {
		return 0, err
	}
	return planar.Length(line), nil
}
