package roadgraph

import (
	"github.com/pkg/errors"
)

var (
	// ErrMissingField Record lacks a required field or the field is not a string
	ErrMissingField = errors.New("missing field")
	// ErrMalformedGeometry Line string can't be split into coordinates
	ErrMalformedGeometry = errors.New("malformed geometry")
	// ErrEmptyGeometry Line string has no points
	ErrEmptyGeometry = errors.New("empty geometry")
	// ErrTraversalPrecondition Graph is too small to pick a random start node
	ErrTraversalPrecondition = errors.New("traversal precondition failed")
	// ErrInconsistentGraph Node or link lookup failed where the graph guarantees presence
	ErrInconsistentGraph = errors.New("inconsistent graph")
	// ErrUnknownNode Requested node identifier is not in the graph
	ErrUnknownNode = errors.New("unknown node")
	// ErrNoPath There is no route between requested nodes
	ErrNoPath = errors.New("no path")
)
