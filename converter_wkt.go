package roadgraph

import (
	"github.com/paulmach/orb/encoding/wkt"
)

// PrepareWKTLinestring returns 2D WKT representation of link geometry
func PrepareWKTLinestring(link *RoadLink) (string, error) {
	line, err := link.LineString()
	if err != nil {
		return "", err
	}
	return wkt.MarshalString(line), nil
}

// PrepareWKTPoint returns 2D WKT representation of node position
func PrepareWKTPoint(node *Node) (string, error) {
	pt, err := node.Coordinate.Point()
	if err != nil {
		return "", err
	}
	return wkt.MarshalString(pt), nil
}
