package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flowscii/flowscii/pkg/errors"
	"github.com/flowscii/flowscii/pkg/workflow"
)

// Format selects the document encoding.
type Format string

const (
	FormatAuto Format = "auto" // pick by file extension
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document is the on-disk schema, shared by the YAML and JSON decoders.
type document struct {
	Title       string          `json:"title,omitempty" yaml:"title,omitempty"`
	Nodes       []docNode       `json:"nodes" yaml:"nodes"`
	Connections []docConnection `json:"connections,omitempty" yaml:"connections,omitempty"`
}

type docNode struct {
	ID          string `json:"id" yaml:"id"`
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Icon        string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type docConnection struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Label  string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Option adjusts decoding behavior.
type Option func(*decodeOptions)

type decodeOptions struct {
	defaultType workflow.NodeType
}

// WithDefaultNodeType sets the type given to nodes whose document entry has
// none. The built-in default is [workflow.TypeProcess].
func WithDefaultNodeType(t workflow.NodeType) Option {
	return func(o *decodeOptions) {
		if t != "" {
			o.defaultType = t
		}
	}
}

func newDecodeOptions(opts []Option) decodeOptions {
	o := decodeOptions{defaultType: workflow.TypeProcess}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ReadYAML decodes a YAML workflow document from r.
//
// The document is validated through [workflow.Build]; decoding succeeds only
// for structurally sound workflows. ReadYAML does not close r.
func ReadYAML(r io.Reader, opts ...Option) (*workflow.Workflow, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode yaml document")
	}
	return buildWorkflow(doc, newDecodeOptions(opts))
}

// ReadJSON decodes a JSON workflow document from r.
//
// Validation matches [ReadYAML]; only the encoding differs. ReadJSON does
// not close r.
func ReadJSON(r io.Reader, opts ...Option) (*workflow.Workflow, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecode, err, "decode json document")
	}
	return buildWorkflow(doc, newDecodeOptions(opts))
}

// Import reads the workflow document at path.
//
// With FormatAuto the decoder is picked from the file extension: .json is
// JSON, .yaml and .yml are YAML. Any other extension is an INVALID_FORMAT
// error, so a typoed path fails loudly instead of half-parsing.
func Import(path string, format Format, opts ...Option) (*workflow.Workflow, error) {
	if format == FormatAuto || format == "" {
		var err error
		if format, err = detectFormat(path); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()

	switch format {
	case FormatYAML:
		return ReadYAML(f, opts...)
	case FormatJSON:
		return ReadJSON(f, opts...)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"cannot detect format of %s: expected a .yaml, .yml or .json file", path)
	}
}

// buildWorkflow maps the document onto the domain model. A node without a
// label displays its id; a node without a type gets the configured default.
func buildWorkflow(doc document, o decodeOptions) (*workflow.Workflow, error) {
	nodes := make([]workflow.Node, 0, len(doc.Nodes))
	for _, n := range doc.Nodes {
		label := n.Label
		if label == "" {
			label = n.ID
		}
		typ := o.defaultType
		if n.Type != "" {
			typ = workflow.ParseNodeType(n.Type)
		}
		nodes = append(nodes, workflow.Node{
			ID:          n.ID,
			Label:       label,
			Type:        typ,
			Icon:        n.Icon,
			Description: n.Description,
		})
	}

	conns := make([]workflow.Connection, 0, len(doc.Connections))
	for _, c := range doc.Connections {
		conns = append(conns, workflow.Connection{
			Source: c.Source,
			Target: c.Target,
			Style:  workflow.ParseLineStyle(c.Type),
			Label:  c.Label,
		})
	}

	return workflow.Build(doc.Title, nodes, conns)
}
