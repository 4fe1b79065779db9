package roadgraph

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	fieldPathSep = "."
)

// FieldMapping Dotted paths of record fields in the source document
type FieldMapping struct {
	Objects   string
	StartNode string
	EndNode   string
	Geometry  string
	Reference string
}

// DefaultFieldMapping Field names used by NVDB road network exports
func DefaultFieldMapping() FieldMapping {
	return FieldMapping{
		Objects:   "objekter",
		StartNode: "startnode",
		EndNode:   "sluttnode",
		Geometry:  "geometri.wkt",
		Reference: "vegreferanse.kortform",
	}
}

// Validate Checks that every path is set
func (mapping FieldMapping) Validate() error {
	paths := map[string]string{
		"objects":   mapping.Objects,
		"startnode": mapping.StartNode,
		"endnode":   mapping.EndNode,
		"geometry":  mapping.Geometry,
		"reference": mapping.Reference,
	}
	for name, path := range paths {
		if strings.TrimSpace(path) == "" {
			return errors.Errorf("Field path for '%s' is empty", name)
		}
	}
	return nil
}

// roadRecord Required values of single source record
type roadRecord struct {
	startNode string
	endNode   string
	geometry  string
	reference string
}

func (mapping FieldMapping) extract(raw map[string]interface{}) (roadRecord, error) {
	var (
		rec roadRecord
		err error
	)
	if rec.startNode, err = lookupString(raw, mapping.StartNode); err != nil {
		return rec, err
	}
	if rec.endNode, err = lookupString(raw, mapping.EndNode); err != nil {
		return rec, err
	}
	if rec.geometry, err = lookupString(raw, mapping.Geometry); err != nil {
		return rec, err
	}
	if rec.reference, err = lookupString(raw, mapping.Reference); err != nil {
		return rec, err
	}
	return rec, nil
}

// lookupString Walks nested objects by dotted path and returns string value at the end of it
func lookupString(raw map[string]interface{}, path string) (string, error) {
	parts := strings.Split(path, fieldPathSep)
	current := raw
	for i, part := range parts {
		value, ok := current[part]
		if !ok || value == nil {
			return "", errors.Wrapf(ErrMissingField, "'%s'", path)
		}
		if i == len(parts)-1 {
			str, ok := value.(string)
			if !ok {
				return "", errors.Wrapf(ErrMissingField, "'%s' is %T, not string", path, value)
			}
			return str, nil
		}
		nested, ok := value.(map[string]interface{})
		if !ok {
			return "", errors.Wrapf(ErrMissingField, "'%s' is %T, not object", strings.Join(parts[:i+1], fieldPathSep), value)
		}
		current = nested
	}
	return "", errors.Wrapf(ErrMissingField, "'%s'", path)
}
