package roadgraph

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// PrepareGeoJSONLinestring returns GeoJSON feature for link with its endpoints and length as properties
func PrepareGeoJSONLinestring(link *RoadLink) (*geojson.Feature, error) {
	line, err := link.LineString()
	if err != nil {
		return nil, err
	}
	pts2d := make([][]float64, len(line))
	for i := range line {
		pts2d[i] = []float64{line[i].X(), line[i].Y()}
	}
	length, err := link.LengthMeters()
	if err != nil {
		return nil, err
	}
	feature := geojson.NewLineStringFeature(pts2d)
	feature.SetProperty("reference", link.Reference)
	feature.SetProperty("startnode", link.Start)
	feature.SetProperty("endnode", link.End)
	feature.SetProperty("length_m", length)
	return feature, nil
}

// ExportGeoJSON returns FeatureCollection with every link in ascending reference order
func ExportGeoJSON(graph *Graph) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, ref := range graph.LinkReferences() {
		link, _ := graph.Link(ref)
		feature, err := PrepareGeoJSONLinestring(link)
		if err != nil {
			return nil, errors.Wrap(err, "Can't convert link to GeoJSON")
		}
		fc.AddFeature(feature)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "Can't marshal GeoJSON")
	}
	return b, nil
}
