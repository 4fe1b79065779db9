package roadgraph

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ReadDocument Decodes JSON document
func ReadDocument(r io.Reader) (map[string]interface{}, error) {
	document := make(map[string]interface{})
	err := json.NewDecoder(r).Decode(&document)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse as JSON")
	}
	return document, nil
}

// ImportFromFile Builds graph from JSON file of road objects
func ImportFromFile(fileName string, options ...func(*Builder)) (*Graph, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer f.Close()

	builder := NewBuilder(options...)
	st := time.Now()
	document, err := ReadDocument(f)
	if err != nil {
		return nil, errors.Wrapf(err, "File '%s'", fileName)
	}
	builder.logger.Info("Read document", "file", fileName, "elapsed", time.Since(st))

	st = time.Now()
	err = builder.AddDocument(document)
	if err != nil {
		return nil, errors.Wrap(err, "Can't build graph")
	}
	graph := builder.Graph()
	builder.logger.Info("Built graph",
		"nodes", graph.NodesCount(),
		"links", graph.LinksCount(),
		"duplicates", len(graph.duplicates),
		"elapsed", time.Since(st),
	)
	return graph, nil
}
