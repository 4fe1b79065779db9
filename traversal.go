package roadgraph

import (
	"math/rand"

	"github.com/pkg/errors"
)

// TraversalStep Link passed during breadth-first walk
type TraversalStep struct {
	// Node the walk came from
	From string
	// Link reference
	Reference string
	// Node the walk reached
	To string
	// True if the link was walked against its direction (from its end to its start)
	Backward bool
}

// Start Returns start node of the link as given in the source record
func (step TraversalStep) Start() string {
	if step.Backward {
		return step.To
	}
	return step.From
}

// End Returns end node of the link as given in the source record
func (step TraversalStep) End() string {
	if step.Backward {
		return step.From
	}
	return step.To
}

type queueItem struct {
	reference string
	side      ExploreSide
}

// walker Breadth-first state: queue of links to pass and nodes already discovered
type walker struct {
	graph   *Graph
	visited map[string]struct{}
	queue   []queueItem
}

// BreadthFirst Walks graph breadth-first starting from random node.
// Node is picked from identifiers in ascending order, so fixed seed gives the same walk.
func BreadthFirst(graph *Graph, rng *rand.Rand) ([]TraversalStep, error) {
	ids := graph.NodeIDs()
	if len(ids) < 2 {
		return nil, errors.Wrapf(ErrTraversalPrecondition, "Need at least 2 nodes to pick start, got %d", len(ids))
	}
	return BreadthFirstFrom(graph, ids[rng.Intn(len(ids))])
}

// BreadthFirstFrom Walks graph breadth-first starting from given node.
/*
	Outgoing and incoming links are both treated as edges. Nodes are marked visited when
	they are discovered, so each node is reached by exactly one step.
	Nodes not connected to the start node are not visited.
*/
func BreadthFirstFrom(graph *Graph, startID string) ([]TraversalStep, error) {
	start, ok := graph.Node(startID)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownNode, "Start node '%s'", startID)
	}
	w := &walker{
		graph:   graph,
		visited: make(map[string]struct{}, graph.NodesCount()),
		queue:   make([]queueItem, 0),
	}
	w.visit(start.ID)
	err := w.explore(start)
	if err != nil {
		return nil, err
	}

	steps := make([]TraversalStep, 0, graph.NodesCount())
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		link, ok := graph.Link(item.reference)
		if !ok {
			return nil, errors.Wrapf(ErrInconsistentGraph, "Queued link '%s' is not in graph", item.reference)
		}
		var step TraversalStep
		switch item.side {
		case EXPLORE_FROM_START:
			step = TraversalStep{From: link.End, Reference: link.Reference, To: link.Start, Backward: true}
		case EXPLORE_FROM_END:
			step = TraversalStep{From: link.Start, Reference: link.Reference, To: link.End, Backward: false}
		default:
			panic("Should not happen!")
		}
		steps = append(steps, step)

		next, ok := graph.Node(step.To)
		if !ok {
			return nil, errors.Wrapf(ErrInconsistentGraph, "Link '%s' points to unknown node '%s'", link.Reference, step.To)
		}
		err := w.explore(next)
		if err != nil {
			return nil, err
		}
	}
	return steps, nil
}

func (w *walker) visit(id string) {
	w.visited[id] = struct{}{}
}

func (w *walker) isVisited(id string) bool {
	_, ok := w.visited[id]
	return ok
}

// explore Queues links of the node whose far endpoint has not been discovered yet
func (w *walker) explore(node *Node) error {
	for _, ref := range node.Outgoing {
		link, ok := w.graph.Link(ref)
		if !ok {
			return errors.Wrapf(ErrInconsistentGraph, "Node '%s' has unknown outgoing link '%s'", node.ID, ref)
		}
		if !w.isVisited(link.End) {
			w.visit(link.End)
			w.queue = append(w.queue, queueItem{reference: ref, side: EXPLORE_FROM_END})
		}
	}
	for _, ref := range node.Incoming {
		link, ok := w.graph.Link(ref)
		if !ok {
			return errors.Wrapf(ErrInconsistentGraph, "Node '%s' has unknown incoming link '%s'", node.ID, ref)
		}
		if !w.isVisited(link.Start) {
			w.visit(link.Start)
			w.queue = append(w.queue, queueItem{reference: ref, side: EXPLORE_FROM_START})
		}
	}
	return nil
}
