package roadgraph

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// ExportLinksCSV Writes links as ';'-separated values
//
// 		reference - link reference
// 		source_node - start node identifier
// 		target_node - end node identifier
// 		incoming_count - number of links ending at source node
// 		outgoing_count - number of links starting at target node
// 		length_meters - planar length
// 		geom - geometry (WKT or GeoJSON representation)
func ExportLinksCSV(w io.Writer, graph *Graph, format GeometryFormat) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	err := writer.Write([]string{"reference", "source_node", "target_node", "incoming_count", "outgoing_count", "length_meters", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for _, ref := range graph.LinkReferences() {
		link, _ := graph.Link(ref)
		source, ok := graph.Node(link.Start)
		if !ok {
			return errors.Wrapf(ErrInconsistentGraph, "Link '%s' starts at unknown node '%s'", ref, link.Start)
		}
		target, ok := graph.Node(link.End)
		if !ok {
			return errors.Wrapf(ErrInconsistentGraph, "Link '%s' ends at unknown node '%s'", ref, link.End)
		}
		length, err := link.LengthMeters()
		if err != nil {
			return errors.Wrap(err, "Can't evaluate length")
		}
		geomStr, err := linkGeometryString(link, format)
		if err != nil {
			return errors.Wrap(err, "Can't prepare geometry")
		}
		err = writer.Write([]string{
			link.Reference,
			link.Start,
			link.End,
			fmt.Sprintf("%d", len(source.Incoming)),
			fmt.Sprintf("%d", len(target.Outgoing)),
			fmt.Sprintf("%f", length),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write link")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "Can't flush links")
}

// ExportNodesCSV Writes nodes as ';'-separated values
//
// 		id - node identifier
// 		incoming - references of incoming links (separated by commas)
// 		outgoing - references of outgoing links (separated by commas)
// 		easting, northing, height - position as given in source data
func ExportNodesCSV(w io.Writer, graph *Graph) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'

	err := writer.Write([]string{"id", "incoming", "outgoing", "easting", "northing", "height"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}
	for _, id := range graph.NodeIDs() {
		node, _ := graph.Node(id)
		err = writer.Write([]string{
			node.ID,
			strings.Join(node.Incoming, ","),
			strings.Join(node.Outgoing, ","),
			node.Coordinate.Easting,
			node.Coordinate.Northing,
			node.Coordinate.Height,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write node")
		}
	}
	writer.Flush()
	return errors.Wrap(writer.Error(), "Can't flush nodes")
}

func linkGeometryString(link *RoadLink, format GeometryFormat) (string, error) {
	switch format {
	case GEOM_GEOJSON:
		feature, err := PrepareGeoJSONLinestring(link)
		if err != nil {
			return "", err
		}
		b, err := feature.Geometry.MarshalJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	case GEOM_WKT:
		return PrepareWKTLinestring(link)
	default:
		return "", errors.Errorf("Unknown geometry format %d", format)
	}
}
