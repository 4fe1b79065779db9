package roadgraph

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func nvdbRecord(reference, start, end, wkt string) map[string]interface{} {
	return map[string]interface{}{
		"startnode": start,
		"sluttnode": end,
		"geometri": map[string]interface{}{
			"wkt": wkt,
		},
		"vegreferanse": map[string]interface{}{
			"kortform": reference,
		},
	}
}

// chainGraph A -> B (L1), B -> C (L2)
func chainGraph(t *testing.T) *Graph {
	t.Helper()
	builder := NewBuilder()
	assert.NoError(t, builder.AddRecord(nvdbRecord("L1", "A", "B", "LINESTRING Z (0 0 1, 3 4 1)")))
	assert.NoError(t, builder.AddRecord(nvdbRecord("L2", "B", "C", "LINESTRING (3 4, 3 10)")))
	return builder.Graph()
}

func TestBuilderCreatesNodesAndLinks(t *testing.T) {
	graph := chainGraph(t)
	assert.Equal(t, 3, graph.NodesCount())
	assert.Equal(t, 2, graph.LinksCount())
	assert.Equal(t, []string{"A", "B", "C"}, graph.NodeIDs())
	assert.Equal(t, []string{"L1", "L2"}, graph.LinkReferences())

	b, ok := graph.Node("B")
	assert.True(t, ok)
	assert.Equal(t, []string{"L2"}, b.Outgoing)
	assert.Equal(t, []string{"L1"}, b.Incoming)
	assert.Equal(t, 2, b.Degree())
	// B is first seen as end of L1, so its coordinate is the last point of L1
	assert.Equal(t, NewCoordinate("3", "4", "1"), b.Coordinate)

	a, _ := graph.Node("A")
	assert.Equal(t, NewCoordinate("0", "0", "1"), a.Coordinate)
	assert.Equal(t, 0, len(a.Incoming))

	l2, ok := graph.Link("L2")
	assert.True(t, ok)
	assert.Equal(t, "B", l2.Start)
	assert.Equal(t, "C", l2.End)
	assert.Equal(t, 2, len(l2.Coordinates))
	l1, _ := graph.Link("L1")
	assert.Equal(t, "A", l1.FarEnd("B"))
	assert.Equal(t, "B", l1.FarEnd("A"))
	assert.NoError(t, graph.Validate())
}

func TestBuilderIdempotentReinsertion(t *testing.T) {
	builder := NewBuilder()
	rec := nvdbRecord("L1", "A", "B", "LINESTRING (0 0, 1 1)")
	assert.NoError(t, builder.AddRecord(rec))
	graph := builder.Graph()
	a, _ := graph.Node("A")
	b, _ := graph.Node("B")
	outBefore := append([]string{}, a.Outgoing...)
	inBefore := append([]string{}, b.Incoming...)

	assert.NoError(t, builder.AddRecord(rec))
	assert.Equal(t, 1, graph.LinksCount())
	assert.Equal(t, 2, graph.NodesCount())
	assert.Equal(t, outBefore, a.Outgoing)
	assert.Equal(t, inBefore, b.Incoming)
	assert.Equal(t, []string{"L1"}, graph.Duplicates())
	assert.NoError(t, graph.Validate())
}

func TestBuilderDuplicateReferenceKeepsFirstGeometry(t *testing.T) {
	builder := NewBuilder()
	assert.NoError(t, builder.AddRecord(nvdbRecord("ref-1", "A", "B", "LINESTRING (0 0, 1 1)")))
	assert.NoError(t, builder.AddRecord(nvdbRecord("ref-1", "C", "D", "LINESTRING Z (5 5 5, 6 6 6, 7 7 7)")))
	graph := builder.Graph()
	assert.Equal(t, 1, graph.LinksCount())
	link, _ := graph.Link("ref-1")
	assert.Equal(t, []Coordinate{NewCoordinate("0", "0", ""), NewCoordinate("1", "1", "")}, link.Coordinates)
	assert.Equal(t, "A", link.Start)
	// The ignored record must not leave nodes referring to a link which does not touch them
	_, ok := graph.Node("C")
	assert.False(t, ok)
	assert.NoError(t, graph.Validate())
}

func TestBuilderNodeCoordinateFirstOccurrenceWins(t *testing.T) {
	builder := NewBuilder()
	assert.NoError(t, builder.AddRecord(nvdbRecord("L1", "A", "B", "LINESTRING (0 0, 1 1)")))
	assert.NoError(t, builder.AddRecord(nvdbRecord("L2", "A", "C", "LINESTRING (9 9, 2 2)")))
	a, _ := builder.Graph().Node("A")
	assert.Equal(t, NewCoordinate("0", "0", ""), a.Coordinate)
	assert.Equal(t, []string{"L1", "L2"}, a.Outgoing)
}

func TestBuilderMissingField(t *testing.T) {
	cases := []map[string]interface{}{
		{"sluttnode": "B", "geometri": map[string]interface{}{"wkt": "LINESTRING (0 0, 1 1)"}, "vegreferanse": map[string]interface{}{"kortform": "L1"}},
		{"startnode": "A", "geometri": map[string]interface{}{"wkt": "LINESTRING (0 0, 1 1)"}, "vegreferanse": map[string]interface{}{"kortform": "L1"}},
		{"startnode": "A", "sluttnode": "B", "vegreferanse": map[string]interface{}{"kortform": "L1"}},
		{"startnode": "A", "sluttnode": "B", "geometri": "LINESTRING (0 0, 1 1)", "vegreferanse": map[string]interface{}{"kortform": "L1"}},
		{"startnode": "A", "sluttnode": "B", "geometri": map[string]interface{}{"wkt": "LINESTRING (0 0, 1 1)"}, "vegreferanse": map[string]interface{}{"kortform": 17.0}},
		{"startnode": 12.0, "sluttnode": "B", "geometri": map[string]interface{}{"wkt": "LINESTRING (0 0, 1 1)"}, "vegreferanse": map[string]interface{}{"kortform": "L1"}},
	}
	for i, rec := range cases {
		builder := NewBuilder()
		err := builder.AddRecord(rec)
		assert.IsError(t, err, ErrMissingField, "case #%d", i)
	}
}

func TestBuilderBadGeometryAborts(t *testing.T) {
	builder := NewBuilder()
	err := builder.AddRecords([]interface{}{
		nvdbRecord("L1", "A", "B", "LINESTRING (0 0, 1 1)"),
		nvdbRecord("L2", "B", "C", "LINESTRING (0 0 0 0, 1 1)"),
		nvdbRecord("L3", "C", "D", "LINESTRING (0 0, 1 1)"),
	})
	assert.IsError(t, err, ErrMalformedGeometry)
	assert.Equal(t, 1, builder.Graph().LinksCount())

	err = NewBuilder().AddRecord(nvdbRecord("L1", "A", "B", "LINESTRING EMPTY"))
	assert.IsError(t, err, ErrEmptyGeometry)
}

func TestBuilderDocument(t *testing.T) {
	builder := NewBuilder()
	err := builder.AddDocument(map[string]interface{}{
		"objekter": []interface{}{
			nvdbRecord("L1", "A", "B", "LINESTRING (0 0, 1 1)"),
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, builder.Graph().LinksCount())

	err = NewBuilder().AddDocument(map[string]interface{}{"objects": []interface{}{}})
	assert.IsError(t, err, ErrMissingField)
	err = NewBuilder().AddDocument(map[string]interface{}{"objekter": "nope"})
	assert.IsError(t, err, ErrMissingField)
	err = NewBuilder().AddDocument(map[string]interface{}{"objekter": []interface{}{"nope"}})
	assert.Error(t, err)
}

func TestBuilderCustomFieldMapping(t *testing.T) {
	builder := NewBuilder(WithFieldMapping(FieldMapping{
		Objects:   "objects",
		StartNode: "from",
		EndNode:   "to",
		Geometry:  "geometry",
		Reference: "meta.ref",
	}))
	err := builder.AddDocument(map[string]interface{}{
		"objects": []interface{}{
			map[string]interface{}{
				"from":     "A",
				"to":       "B",
				"geometry": "LINESTRING (0 0, 1 1)",
				"meta":     map[string]interface{}{"ref": "L1"},
			},
		},
	})
	assert.NoError(t, err)
	link, ok := builder.Graph().Link("L1")
	assert.True(t, ok)
	assert.Equal(t, "B", link.End)
}

func TestGraphAdjacencyInvariants(t *testing.T) {
	graph, err := ImportFromFile("testdata/sample.json")
	assert.NoError(t, err)
	for _, ref := range graph.LinkReferences() {
		link, _ := graph.Link(ref)
		_, ok := graph.Node(link.Start)
		assert.True(t, ok)
		_, ok = graph.Node(link.End)
		assert.True(t, ok)
	}
	for _, id := range graph.NodeIDs() {
		node, _ := graph.Node(id)
		for _, ref := range node.Outgoing {
			link, ok := graph.Link(ref)
			assert.True(t, ok)
			assert.Equal(t, id, link.Start)
		}
		for _, ref := range node.Incoming {
			link, ok := graph.Link(ref)
			assert.True(t, ok)
			assert.Equal(t, id, link.End)
		}
	}
	assert.NoError(t, graph.Validate())
}

func TestGraphValidateDetectsDanglingLink(t *testing.T) {
	graph := chainGraph(t)
	graph.links["L3"] = newRoadLink("L3", "C", "Z", []Coordinate{NewCoordinate("0", "0", "")})
	assert.IsError(t, graph.Validate(), ErrInconsistentGraph)

	graph = chainGraph(t)
	b, _ := graph.Node("B")
	b.addOutgoing("L1")
	assert.IsError(t, graph.Validate(), ErrInconsistentGraph)
}
