package roadgraph

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// Builder Populates graph from road object records
type Builder struct {
	fields  FieldMapping
	logger  logr.Logger
	graph   *Graph
	records int
}

func (builder *Builder) String() string {
	return fmt.Sprintf(`
Graph builder parameters:
	objects: '%s'
	startnode: '%s'
	endnode: '%s'
	geometry: '%s'
	reference: '%s'
	`,
		builder.fields.Objects,
		builder.fields.StartNode,
		builder.fields.EndNode,
		builder.fields.Geometry,
		builder.fields.Reference,
	)
}

// NewBuilder returns builder with NVDB field names and discarding logger
func NewBuilder(options ...func(*Builder)) *Builder {
	builder := &Builder{
		fields: DefaultFieldMapping(),
		logger: logr.Discard(),
		graph:  NewGraph(),
	}
	for _, option := range options {
		option(builder)
	}
	return builder
}

func WithFieldMapping(fields FieldMapping) func(*Builder) {
	return func(builder *Builder) {
		builder.fields = fields
	}
}

func WithLogger(logger logr.Logger) func(*Builder) {
	return func(builder *Builder) {
		builder.logger = logger
	}
}

// Graph Returns graph built so far.
// If any Add* call failed the graph must be discarded.
func (builder *Builder) Graph() *Graph {
	return builder.graph
}

// AddDocument Adds every record of the top-level objects array
func (builder *Builder) AddDocument(document map[string]interface{}) error {
	raw, ok := document[builder.fields.Objects]
	if !ok {
		return errors.Wrapf(ErrMissingField, "'%s'", builder.fields.Objects)
	}
	records, ok := raw.([]interface{})
	if !ok {
		return errors.Wrapf(ErrMissingField, "'%s' is %T, not array", builder.fields.Objects, raw)
	}
	return builder.AddRecords(records)
}

// AddRecords Adds records in order. Stops at the first malformed one
func (builder *Builder) AddRecords(records []interface{}) error {
	for _, raw := range records {
		record, ok := raw.(map[string]interface{})
		if !ok {
			return errors.Errorf("Record #%d is %T, not object", builder.records, raw)
		}
		err := builder.AddRecord(record)
		if err != nil {
			return err
		}
	}
	return nil
}

// AddRecord Adds single record: start node, end node and link between them.
// Record with already known link reference is a no-op.
func (builder *Builder) AddRecord(raw map[string]interface{}) error {
	idx := builder.records
	builder.records++

	rec, err := builder.fields.extract(raw)
	if err != nil {
		return errors.Wrapf(err, "Record #%d", idx)
	}
	coordinates, err := ParseLineString(rec.geometry)
	if err != nil {
		return errors.Wrapf(err, "Record #%d, link '%s'", idx, rec.reference)
	}
	added, err := builder.graph.addRoadLink(rec.reference, rec.startNode, rec.endNode, coordinates)
	if err != nil {
		return errors.Wrapf(err, "Record #%d", idx)
	}
	if !added {
		builder.logger.V(1).Info("Duplicate link reference ignored", "record", idx, "reference", rec.reference)
	}
	return nil
}
