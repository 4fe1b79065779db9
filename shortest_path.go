package roadgraph

import (
	"time"

	"github.com/LdDl/ch"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// Router Answers shortest path queries on contraction hierarchies built from graph
type Router struct {
	engine ch.Graph
	labels map[string]int64
	ids    []string
}

type vertexPair struct {
	from int64
	to   int64
}

// NewRouter Prepares contraction hierarchies. Links are directed and weighted by planar length in meters.
func NewRouter(graph *Graph, logger logr.Logger) (*Router, error) {
	router := &Router{
		engine: ch.Graph{},
		ids:    graph.NodeIDs(),
	}
	router.labels = make(map[string]int64, len(router.ids))
	for i, id := range router.ids {
		label := int64(i)
		router.labels[id] = label
		err := router.engine.CreateVertex(label)
		if err != nil {
			return nil, errors.Wrapf(err, "Can't create vertex for node '%s'", id)
		}
	}

	// Parallel links collapse into the cheapest one
	weights := make(map[vertexPair]float64, graph.LinksCount())
	order := make([]vertexPair, 0, graph.LinksCount())
	for _, ref := range graph.LinkReferences() {
		link, _ := graph.Link(ref)
		from, ok := router.labels[link.Start]
		if !ok {
			return nil, errors.Wrapf(ErrInconsistentGraph, "Link '%s' starts at unknown node '%s'", ref, link.Start)
		}
		to, ok := router.labels[link.End]
		if !ok {
			return nil, errors.Wrapf(ErrInconsistentGraph, "Link '%s' ends at unknown node '%s'", ref, link.End)
		}
		cost, err := link.LengthMeters()
		if err != nil {
			return nil, errors.Wrap(err, "Can't evaluate link cost")
		}
		pair := vertexPair{from: from, to: to}
		if prev, ok := weights[pair]; ok {
			if cost < prev {
				weights[pair] = cost
			}
			continue
		}
		weights[pair] = cost
		order = append(order, pair)
	}
	for _, pair := range order {
		err := router.engine.AddEdge(pair.from, pair.to, weights[pair])
		if err != nil {
			return nil, errors.Wrap(err, "Can't wrap Source and Target vertices as Edge")
		}
	}

	st := time.Now()
	router.engine.PrepareContractionHierarchies()
	logger.Info("Prepared contraction hierarchies", "vertices", len(router.ids), "edges", len(order), "elapsed", time.Since(st))
	return router, nil
}

// ShortestPath Returns cost in meters and node identifiers along the cheapest directed path
func (router *Router) ShortestPath(fromID, toID string) (float64, []string, error) {
	from, ok := router.labels[fromID]
	if !ok {
		return 0, nil, errors.Wrapf(ErrUnknownNode, "'%s'", fromID)
	}
	to, ok := router.labels[toID]
	if !ok {
		return 0, nil, errors.Wrapf(ErrUnknownNode, "'%s'", toID)
	}
	if from == to {
		return 0, []string{fromID}, nil
	}
	cost, path := router.engine.ShortestPath(from, to)
	if cost < 0 || len(path) == 0 {
		return 0, nil, errors.Wrapf(ErrNoPath, "'%s' -> '%s'", fromID, toID)
	}
	ids := make([]string, len(path))
	for i, label := range path {
		ids[i] = router.ids[label]
	}
	return cost, ids, nil
}
