package roadgraph

import (
	"sort"

	"github.com/pkg/errors"
)

// Graph Directed multigraph of road links.
// Graph owns every Node and RoadLink; all mutation goes through its methods.
type Graph struct {
	nodes map[string]*Node
	links map[string]*RoadLink
	// References of records ignored because the link already existed, in input order
	duplicates []string
}

// NewGraph returns empty graph
func NewGraph() *Graph {
	return &Graph{
		nodes:      make(map[string]*Node),
		links:      make(map[string]*RoadLink),
		duplicates: make([]string, 0),
	}
}

// getOrCreateNode Returns node by identifier. Creates it with given coordinate if absent.
// Coordinate of existing node is never overwritten.
func (graph *Graph) getOrCreateNode(id string, coordinate Coordinate) *Node {
	if node, ok := graph.nodes[id]; ok {
		return node
	}
	node := newNode(id, coordinate)
	graph.nodes[id] = node
	return node
}

// addRoadLink Registers link with its endpoint nodes.
// Returns false and changes nothing if a link with the same reference exists.
func (graph *Graph) addRoadLink(reference, startID, endID string, coordinates []Coordinate) (bool, error) {
	if _, ok := graph.links[reference]; ok {
		graph.duplicates = append(graph.duplicates, reference)
		return false, nil
	}
	startCoordinate, err := FirstCoordinate(coordinates)
	if err != nil {
		return false, errors.Wrapf(err, "Link '%s'", reference)
	}
	endCoordinate, err := LastCoordinate(coordinates)
	if err != nil {
		return false, errors.Wrapf(err, "Link '%s'", reference)
	}
	// Nodes first: link endpoints must always resolve
	graph.getOrCreateNode(startID, startCoordinate).addOutgoing(reference)
	graph.getOrCreateNode(endID, endCoordinate).addIncoming(reference)
	graph.links[reference] = newRoadLink(reference, startID, endID, coordinates)
	return true, nil
}

// Node Returns node by identifier
func (graph *Graph) Node(id string) (*Node, bool) {
	node, ok := graph.nodes[id]
	return node, ok
}

// Link Returns link by reference
func (graph *Graph) Link(reference string) (*RoadLink, bool) {
	link, ok := graph.links[reference]
	return link, ok
}

// NodesCount Number of nodes
func (graph *Graph) NodesCount() int {
	return len(graph.nodes)
}

// LinksCount Number of links
func (graph *Graph) LinksCount() int {
	return len(graph.links)
}

// NodeIDs Returns node identifiers in ascending order
func (graph *Graph) NodeIDs() []string {
	ids := make([]string, 0, len(graph.nodes))
	for id := range graph.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// LinkReferences Returns link references in ascending order
func (graph *Graph) LinkReferences() []string {
	refs := make([]string, 0, len(graph.links))
	for ref := range graph.links {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

// Duplicates Returns references of records which were ignored as duplicates
func (graph *Graph) Duplicates() []string {
	ans := make([]string, len(graph.duplicates))
	copy(ans, graph.duplicates)
	return ans
}

// Validate Checks that links and nodes reference each other consistently
func (graph *Graph) Validate() error {
	for _, ref := range graph.LinkReferences() {
		link := graph.links[ref]
		if _, ok := graph.nodes[link.Start]; !ok {
			return errors.Wrapf(ErrInconsistentGraph, "Link '%s' starts at unknown node '%s'", ref, link.Start)
		}
		if _, ok := graph.nodes[link.End]; !ok {
			return errors.Wrapf(ErrInconsistentGraph, "Link '%s' ends at unknown node '%s'", ref, link.End)
		}
	}
	for _, id := range graph.NodeIDs() {
		node := graph.nodes[id]
		for _, ref := range node.Outgoing {
			link, ok := graph.links[ref]
			if !ok {
				return errors.Wrapf(ErrInconsistentGraph, "Node '%s' has unknown outgoing link '%s'", id, ref)
			}
			if link.Start != id {
				return errors.Wrapf(ErrInconsistentGraph, "Outgoing link '%s' of node '%s' starts at '%s'", ref, id, link.Start)
			}
		}
		for _, ref := range node.Incoming {
			link, ok := graph.links[ref]
			if !ok {
				return errors.Wrapf(ErrInconsistentGraph, "Node '%s' has unknown incoming link '%s'", id, ref)
			}
			if link.End != id {
				return errors.Wrapf(ErrInconsistentGraph, "Incoming link '%s' of node '%s' ends at '%s'", ref, id, link.End)
			}
		}
	}
	return nil
}
