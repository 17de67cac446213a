package schemadoc

import (
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/structural/schema"
)

// Marshal encodes a document in the given format. Definitions are written
// under "$defs", keyed by their ids.
func Marshal(doc *Document, format Format) ([]byte, error) {
	tree, err := documentTree(doc)
	if err != nil {
		return nil, err
	}
	if format == FormatYAML {
		return yaml.Marshal(yamlNode(tree))
	}
	return json.MarshalIndent(tree, "", "  ")
}

// MarshalSchema encodes a single schema without definitions.
func MarshalSchema(s schema.Schema, format Format) ([]byte, error) {
	return Marshal(&Document{Root: s}, format)
}

func documentTree(doc *Document) (mapping, error) {
	root, err := encodeNode(doc.Root)
	if err != nil {
		return nil, err
	}
	if len(doc.Definitions) == 0 {
		return root, nil
	}
	defs := mapping{}
	for i, d := range doc.Definitions {
		key := d.SchemaID()
		if key == "" {
			key = "def" + strconv.Itoa(i)
		}
		n, err := encodeNode(d)
		if err != nil {
			return nil, err
		}
		defs.set(key, n)
	}
	root.set("$defs", defs)
	return root, nil
}

func encodeNode(s schema.Schema) (mapping, error) {
	if s == nil {
		return nil, fmt.Errorf("schemadoc: cannot encode a nil schema")
	}
	kind := schema.ClassifyKind(s)
	m := mapping{}
	m.set("kind", kind.String())
	if u, ok := s.(*schema.UserDefined); ok {
		m.set("tag", u.Tag)
	}
	if id := s.SchemaID(); id != "" {
		m.set("$id", id)
	}
	var err error
	switch t := s.(type) {
	case *schema.Literal:
		m.set("const", schema.NormalizeLiteral(t.Value))
	case *schema.Array:
		err = m.setNode("items", t.Items)
	case *schema.Tuple:
		err = m.setList("items", t.Items)
		m.set("minItems", float64(t.MinItems))
		m.set("maxItems", float64(t.MaxItems))
	case *schema.Object:
		err = encodeObject(&m, t)
	case *schema.Record:
		v, verr := encodeNode(t.Value)
		if verr != nil {
			return nil, verr
		}
		m.set("patternProperties", mapping{{Key: t.Pattern, Value: v}})
	case *schema.Union:
		err = m.setList("anyOf", t.Members)
	case *schema.Intersect:
		err = m.setList("allOf", t.Members)
	case *schema.Function:
		if err = m.setList("parameters", t.Parameters); err == nil {
			err = m.setNode("returns", t.Returns)
		}
	case *schema.Constructor:
		if err = m.setList("parameters", t.Parameters); err == nil {
			err = m.setNode("returns", t.Returns)
		}
	case *schema.Promise:
		err = m.setNode("item", t.Item)
	case *schema.Ref:
		m.set("$ref", t.Target)
	case *schema.Self:
		m.set("$ref", t.Target)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func encodeObject(m *mapping, o *schema.Object) error {
	props := mapping{}
	var required, readonly []any
	for _, p := range o.Properties {
		n, err := encodeNode(p.Schema)
		if err != nil {
			return err
		}
		props.set(p.Name, n)
		if !p.Optional {
			required = append(required, p.Name)
		}
		if p.Readonly {
			readonly = append(readonly, p.Name)
		}
	}
	m.set("properties", props)
	if len(required) > 0 {
		m.set("required", required)
	}
	if len(readonly) > 0 {
		m.set("readonly", readonly)
	}
	switch {
	case o.Additional.Forbidden:
		m.set("additionalProperties", false)
	case o.Additional.Schema != nil:
		n, err := encodeNode(o.Additional.Schema)
		if err != nil {
			return err
		}
		m.set("additionalProperties", n)
	}
	if o.Hint != "" {
		m.set("hint", o.Hint)
	}
	return nil
}

// setNode encodes s under key; nil children are omitted.
func (m *mapping) setNode(key string, s schema.Schema) error {
	if s == nil {
		return nil
	}
	n, err := encodeNode(s)
	if err != nil {
		return err
	}
	m.set(key, n)
	return nil
}

func (m *mapping) setList(key string, list []schema.Schema) error {
	out := make([]any, 0, len(list))
	for _, s := range list {
		n, err := encodeNode(s)
		if err != nil {
			return err
		}
		out = append(out, n)
	}
	m.set(key, out)
	return nil
}

// yamlNode converts a document tree into a yaml.Node keeping key order.
func yamlNode(v any) *yaml.Node {
	switch t := v.(type) {
	case mapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, kv := range t {
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Key}, yamlNode(kv.Value))
		}
		return n
	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, it := range t {
			n.Content = append(n.Content, yamlNode(it))
		}
		return n
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}
	case float64:
		if t == float64(int64(t)) {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(int64(t), 10)}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(t, 'g', -1, 64)}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
