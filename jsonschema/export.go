package jsonschema

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/reoring/structural/schema"
)

// Export projects s into JSON Schema. Definitions are emitted under "$defs"
// keyed by id.
func Export(s schema.Schema, defs ...schema.Schema) (*Schema, error) {
	out, err := export(s)
	if err != nil {
		return nil, err
	}
	for _, d := range defs {
		id := d.SchemaID()
		if id == "" {
			return nil, fmt.Errorf("jsonschema: definition without id")
		}
		js, err := export(d)
		if err != nil {
			return nil, err
		}
		if out.Defs == nil {
			out.Defs = map[string]*Schema{}
		}
		out.Defs[id] = js
	}
	return out, nil
}

// Marshal encodes js as indented JSON.
func Marshal(js *Schema) ([]byte, error) {
	return json.MarshalIndent(js, "", "  ")
}

func export(s schema.Schema) (*Schema, error) {
	if s == nil {
		return &Schema{}, nil
	}
	out := &Schema{ID: s.SchemaID()}
	switch t := s.(type) {
	case *schema.Any, *schema.Unknown:
	case *schema.Never:
		out.Not = &Schema{}
	case *schema.Null:
		out.Type = "null"
	case *schema.Undefined, *schema.Void:
		out.Kind = schema.ClassifyKind(s).String()
		out.Not = &Schema{}
	case *schema.Boolean:
		out.Type = "boolean"
	case *schema.Number:
		out.Type = "number"
	case *schema.Integer:
		out.Type = "integer"
	case *schema.String:
		out.Type = "string"
	case *schema.Date, *schema.Uint8Array:
		out.Kind = schema.ClassifyKind(s).String()
		out.Type = "object"
	case *schema.Promise:
		item, err := export(t.Item)
		if err != nil {
			return nil, err
		}
		out.Kind = "Promise"
		out.Type = "object"
		out.Item = item
	case *schema.Literal:
		v := schema.NormalizeLiteral(t.Value)
		out.Const = v
		switch v.(type) {
		case string:
			out.Type = "string"
		case float64:
			out.Type = "number"
		case bool:
			out.Type = "boolean"
		}
	case *schema.Array:
		items, err := export(t.Items)
		if err != nil {
			return nil, err
		}
		out.Type = "array"
		out.Items = items
	case *schema.Tuple:
		out.Type = "array"
		for _, it := range t.Items {
			js, err := export(it)
			if err != nil {
				return nil, err
			}
			out.PrefixItems = append(out.PrefixItems, js)
		}
		out.Items = false
		minItems, maxItems := t.MinItems, t.MaxItems
		out.MinItems, out.MaxItems = &minItems, &maxItems
	case *schema.Object:
		out.Type = "object"
		out.Properties = make(map[string]*Schema, len(t.Properties))
		for _, p := range t.Properties {
			js, err := export(p.Schema)
			if err != nil {
				return nil, err
			}
			js.ReadOnly = p.Readonly
			out.Properties[p.Name] = js
			if !p.Optional {
				out.Required = append(out.Required, p.Name)
			}
		}
		switch {
		case t.Additional.Forbidden:
			out.AdditionalProperties = false
		case t.Additional.Schema != nil:
			js, err := export(t.Additional.Schema)
			if err != nil {
				return nil, err
			}
			out.AdditionalProperties = js
		}
	case *schema.Record:
		js, err := export(t.Value)
		if err != nil {
			return nil, err
		}
		out.Type = "object"
		out.PatternProperties = map[string]*Schema{t.Pattern: js}
	case *schema.Union:
		list, err := exportList(t.Members)
		if err != nil {
			return nil, err
		}
		out.AnyOf = list
	case *schema.Intersect:
		list, err := exportList(t.Members)
		if err != nil {
			return nil, err
		}
		out.AllOf = list
	case *schema.Function, *schema.Constructor:
		var params []schema.Schema
		var returns schema.Schema
		if f, ok := t.(*schema.Function); ok {
			params, returns = f.Parameters, f.Returns
		} else {
			c := t.(*schema.Constructor)
			params, returns = c.Parameters, c.Returns
		}
		list, err := exportList(params)
		if err != nil {
			return nil, err
		}
		ret, err := export(returns)
		if err != nil {
			return nil, err
		}
		out.Kind = schema.ClassifyKind(s).String()
		out.Type = "object"
		out.Parameters, out.Returns = list, ret
	case *schema.Ref:
		out.Ref = t.Target
	case *schema.Self:
		out.Ref = t.Target
	case *schema.UserDefined:
		out.Kind = t.Tag
	default:
		return nil, fmt.Errorf("jsonschema: cannot export %T", s)
	}
	return out, nil
}

func exportList(list []schema.Schema) ([]*Schema, error) {
	out := make([]*Schema, 0, len(list))
	for _, s := range list {
		js, err := export(s)
		if err != nil {
			return nil, err
		}
		out = append(out, js)
	}
	return out, nil
}
