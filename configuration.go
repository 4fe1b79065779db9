package roadgraph

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
)

// Configuration Run parameters which could be stored in HCL file
/*
	input = "testfile.json"
	seed  = 42
	fields {
		objects   = "objekter"
		startnode = "startnode"
		endnode   = "sluttnode"
		geometry  = "geometri.wkt"
		reference = "vegreferanse.kortform"
	}
*/
type Configuration struct {
	Input  string         `hcl:"input,optional"`
	Seed   *int64         `hcl:"seed,optional"`
	Fields *fieldsSection `hcl:"fields,block"`
}

type fieldsSection struct {
	Objects   string `hcl:"objects,optional"`
	StartNode string `hcl:"startnode,optional"`
	EndNode   string `hcl:"endnode,optional"`
	Geometry  string `hcl:"geometry,optional"`
	Reference string `hcl:"reference,optional"`
}

// DefaultConfiguration Configuration with NVDB field names and no input
func DefaultConfiguration() *Configuration {
	return &Configuration{}
}

// LoadConfiguration Reads configuration from HCL file
func LoadConfiguration(fileName string) (*Configuration, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(fileName)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, "Can't parse configuration file")
	}
	return decodeConfiguration(f)
}

// ParseConfiguration Reads configuration from HCL source
func ParseConfiguration(src []byte, fileName string) (*Configuration, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, fileName)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, "Can't parse configuration")
	}
	return decodeConfiguration(f)
}

func decodeConfiguration(f *hcl.File) (*Configuration, error) {
	cfg := DefaultConfiguration()
	diags := gohcl.DecodeBody(f.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, "Can't decode configuration")
	}
	if _, err := cfg.FieldMapping(); err != nil {
		return nil, errors.Wrap(err, "Bad fields section")
	}
	return cfg, nil
}

// FieldMapping Returns mapping of record fields. Unset entries fall back to NVDB defaults
func (cfg *Configuration) FieldMapping() (FieldMapping, error) {
	mapping := DefaultFieldMapping()
	if cfg.Fields != nil {
		override(&mapping.Objects, cfg.Fields.Objects)
		override(&mapping.StartNode, cfg.Fields.StartNode)
		override(&mapping.EndNode, cfg.Fields.EndNode)
		override(&mapping.Geometry, cfg.Fields.Geometry)
		override(&mapping.Reference, cfg.Fields.Reference)
	}
	return mapping, mapping.Validate()
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
