// Package schemadoc loads schema trees from kind-tagged JSON or YAML
// documents and encodes them back.
//
// A document is a schema node with an optional root "$defs" mapping. Nodes
// carry "kind" and, depending on it, "properties"/"required"/"readonly",
// "items", "anyOf", "allOf", "patternProperties", "parameters"/"returns",
// "item", "const" or "$ref". Property order is preserved and duplicate keys
// are rejected in both formats.
package schemadoc

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/structural/schema"
)

// Format selects the document syntax.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Document is one loaded schema with the definitions declared next to it.
type Document struct {
	Root        schema.Schema
	Definitions []schema.Schema
}

// Schemas returns the definitions followed by the root when it carries an id,
// ready to be used as comparator definitions.
func (d *Document) Schemas() []schema.Schema {
	out := append([]schema.Schema(nil), d.Definitions...)
	if d.Root != nil && d.Root.SchemaID() != "" {
		out = append(out, d.Root)
	}
	return out
}

// Definitions collects the id-bearing schemas of several documents.
func Definitions(docs ...*Document) []schema.Schema {
	var out []schema.Schema
	for _, d := range docs {
		out = append(out, d.Schemas()...)
	}
	return out
}

// Load decodes the first document of data.
func Load(data []byte, format Format, opts Options) (*Document, Diag, error) {
	return LoadReader(bytes.NewReader(data), format, opts)
}

// LoadReader decodes the first document read from r.
func LoadReader(r io.Reader, format Format, opts Options) (*Document, Diag, error) {
	docs, d, err := LoadAllReader(r, format, opts)
	if err != nil {
		return nil, d, err
	}
	if len(docs) == 0 {
		return nil, d, invalidf("", "empty input")
	}
	return docs[0], d, nil
}

// LoadAll decodes every document of a stream: a YAML bundle separated by
// "---" or concatenated JSON values.
func LoadAll(data []byte, format Format, opts Options) ([]*Document, Diag, error) {
	return LoadAllReader(bytes.NewReader(data), format, opts)
}

// LoadAllReader is LoadAll over an io.Reader.
func LoadAllReader(r io.Reader, format Format, opts Options) ([]*Document, Diag, error) {
	d := &simpleDiag{}
	var (
		trees []any
		err   error
	)
	if format == FormatYAML {
		trees, err = NewStrictYAMLReader(r).ReadAll()
	} else {
		trees, err = readJSON(r)
	}
	if err != nil {
		return nil, d, err
	}
	docs := make([]*Document, 0, len(trees))
	for _, t := range trees {
		doc, err := newDecoder(opts, d).document(t)
		if err != nil {
			return nil, d, err
		}
		docs = append(docs, doc)
	}
	return docs, d, nil
}

// LoadFile reads path and decodes its first document, choosing the format
// from the file extension.
func LoadFile(path string, opts Options) (*Document, Diag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &simpleDiag{}, err
	}
	return Load(data, FormatFromPath(path), opts)
}

// LoadAllFile reads every document of path.
func LoadAllFile(path string, opts Options) ([]*Document, Diag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &simpleDiag{}, err
	}
	return LoadAll(data, FormatFromPath(path), opts)
}
