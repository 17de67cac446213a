package schemadoc

import (
	"strconv"
	"strings"

	"github.com/reoring/structural"
	"github.com/reoring/structural/schema"
)

// defsPrefix is the local reference form accepted in "$ref".
const defsPrefix = "#/$defs/"

// keysByKind lists the keys each kind accepts besides "kind" and "$id".
var keysByKind = map[schema.Kind][]string{
	schema.KindLiteral:     {"const"},
	schema.KindArray:       {"items"},
	schema.KindTuple:       {"items", "minItems", "maxItems"},
	schema.KindObject:      {"properties", "required", "readonly", "additionalProperties", "hint"},
	schema.KindRecord:      {"patternProperties"},
	schema.KindUnion:       {"anyOf"},
	schema.KindIntersect:   {"allOf"},
	schema.KindFunction:    {"parameters", "returns"},
	schema.KindConstructor: {"parameters", "returns"},
	schema.KindPromise:     {"item"},
	schema.KindRef:         {"$ref"},
	schema.KindSelf:        {"$ref"},
	schema.KindUserDefined: {"tag"},
}

type decoder struct {
	opts Options
	d    *simpleDiag
	log  structural.Logger
	// defIDs maps $defs entry names to the id their node carries.
	defIDs map[string]string
}

func newDecoder(opts Options, d *simpleDiag) *decoder {
	log := opts.Logger
	if log == nil {
		log = structural.NopLogger()
	}
	return &decoder{opts: opts, d: d, log: log, defIDs: map[string]string{}}
}

// document decodes a root node together with its "$defs".
func (dc *decoder) document(v any) (*Document, error) {
	root, ok := v.(mapping)
	if !ok {
		return nil, invalidf("", "document root must be a mapping")
	}
	doc := &Document{}
	if raw, ok := root.get("$defs"); ok {
		defs, ok := raw.(mapping)
		if !ok {
			return nil, invalidf("/$defs", "$defs must be a mapping")
		}
		// ids are known before any node is decoded so "$ref" can be rewritten.
		for _, kv := range defs {
			id := kv.Key
			if m, ok := kv.Value.(mapping); ok {
				if s, ok := m.get("$id"); ok {
					if str, ok := s.(string); ok && str != "" {
						id = str
					}
				}
			}
			dc.defIDs[kv.Key] = id
		}
		for _, kv := range defs {
			path := pointer("/$defs", kv.Key)
			s, err := dc.node(kv.Value, path)
			if err != nil {
				return nil, err
			}
			if s.SchemaID() == "" {
				s = schema.WithID(s, kv.Key)
			}
			dc.log.Debugf("registered definition %s", s.SchemaID())
			doc.Definitions = append(doc.Definitions, s)
		}
	}
	s, err := dc.node(root, "")
	if err != nil {
		return nil, err
	}
	doc.Root = s
	return doc, nil
}

func (dc *decoder) node(v any, path string) (schema.Schema, error) {
	m, ok := v.(mapping)
	if !ok {
		return nil, invalidf(path, "schema node must be a mapping")
	}
	rawKind, ok := m.get("kind")
	if !ok {
		return nil, invalidf(path, "missing \"kind\"")
	}
	name, ok := rawKind.(string)
	if !ok {
		return nil, invalidf(path, "\"kind\" must be a string")
	}
	kind, known := schema.ParseKind(name)
	if !known {
		if !dc.opts.UnknownKindsAsUserDefined {
			return nil, invalidf(path, "unknown kind %q", name)
		}
		dc.d.warnf("%s: unknown kind %q loaded as UserDefined", pathOrRoot(path), name)
		kind = schema.KindUserDefined
	}
	if err := dc.checkKeys(m, kind, path); err != nil {
		return nil, err
	}
	id, err := optString(m, "$id", path)
	if err != nil {
		return nil, err
	}
	s, err := dc.build(m, kind, name, path)
	if err != nil {
		return nil, err
	}
	if id != "" {
		s = schema.WithID(s, id)
	}
	return s, nil
}

func (dc *decoder) checkKeys(m mapping, kind schema.Kind, path string) error {
	allowed := keysByKind[kind]
	for _, kv := range m {
		switch kv.Key {
		case "kind", "$id", "$defs":
			continue
		}
		ok := false
		for _, a := range allowed {
			if a == kv.Key {
				ok = true
				break
			}
		}
		if ok {
			continue
		}
		if dc.opts.StrictKeys {
			return invalidf(path, "key %q is not valid for kind %s", kv.Key, kind)
		}
		dc.d.warnf("%s: ignoring key %q for kind %s", pathOrRoot(path), kv.Key, kind)
	}
	return nil
}

func (dc *decoder) build(m mapping, kind schema.Kind, name, path string) (schema.Schema, error) {
	switch kind {
	case schema.KindAny:
		return &schema.Any{}, nil
	case schema.KindUnknown:
		return &schema.Unknown{}, nil
	case schema.KindNever:
		return &schema.Never{}, nil
	case schema.KindNull:
		return &schema.Null{}, nil
	case schema.KindUndefined:
		return &schema.Undefined{}, nil
	case schema.KindVoid:
		return &schema.Void{}, nil
	case schema.KindBoolean:
		return &schema.Boolean{}, nil
	case schema.KindNumber:
		return &schema.Number{}, nil
	case schema.KindInteger:
		return &schema.Integer{}, nil
	case schema.KindString:
		return &schema.String{}, nil
	case schema.KindDate:
		return &schema.Date{}, nil
	case schema.KindUint8Array:
		return &schema.Uint8Array{}, nil
	case schema.KindLiteral:
		v, ok := m.get("const")
		if !ok {
			return nil, invalidf(path, "Literal requires \"const\"")
		}
		switch v.(type) {
		case string, float64, bool:
			return &schema.Literal{Value: v}, nil
		}
		return nil, invalidf(path, "\"const\" must be a string, number or boolean")
	case schema.KindArray:
		items, err := dc.optNode(m, "items", path)
		if err != nil {
			return nil, err
		}
		return &schema.Array{Items: items}, nil
	case schema.KindTuple:
		items, err := dc.list(m, "items", path)
		if err != nil {
			return nil, err
		}
		t := &schema.Tuple{Items: items, MinItems: len(items), MaxItems: len(items)}
		if n, ok, err := optInt(m, "minItems", path); err != nil {
			return nil, err
		} else if ok {
			t.MinItems = n
		}
		if n, ok, err := optInt(m, "maxItems", path); err != nil {
			return nil, err
		} else if ok {
			t.MaxItems = n
		}
		return t, nil
	case schema.KindObject:
		return dc.object(m, path)
	case schema.KindRecord:
		return dc.record(m, path)
	case schema.KindUnion:
		members, err := dc.list(m, "anyOf", path)
		if err != nil {
			return nil, err
		}
		return &schema.Union{Members: members}, nil
	case schema.KindIntersect:
		members, err := dc.list(m, "allOf", path)
		if err != nil {
			return nil, err
		}
		return &schema.Intersect{Members: members}, nil
	case schema.KindFunction, schema.KindConstructor:
		params, err := dc.list(m, "parameters", path)
		if err != nil {
			return nil, err
		}
		returns, err := dc.optNode(m, "returns", path)
		if err != nil {
			return nil, err
		}
		if kind == schema.KindFunction {
			return &schema.Function{Parameters: params, Returns: returns}, nil
		}
		return &schema.Constructor{Parameters: params, Returns: returns}, nil
	case schema.KindPromise:
		item, err := dc.optNode(m, "item", path)
		if err != nil {
			return nil, err
		}
		return &schema.Promise{Item: item}, nil
	case schema.KindRef, schema.KindSelf:
		ref, err := optString(m, "$ref", path)
		if err != nil {
			return nil, err
		}
		if ref == "" {
			return nil, invalidf(path, "%s requires \"$ref\"", kind)
		}
		target := dc.target(ref, path)
		if kind == schema.KindRef {
			return &schema.Ref{Target: target}, nil
		}
		return &schema.Self{Target: target}, nil
	}
	tag, err := optString(m, "tag", path)
	if err != nil {
		return nil, err
	}
	if tag == "" {
		tag = name
	}
	return &schema.UserDefined{Tag: tag}, nil
}

// target maps a "$ref" value to the id it designates.
func (dc *decoder) target(ref, path string) string {
	if !strings.HasPrefix(ref, defsPrefix) {
		return ref
	}
	name := strings.TrimPrefix(ref, defsPrefix)
	if id, ok := dc.defIDs[name]; ok {
		return id
	}
	dc.d.warnf("%s: $ref to unknown $defs/%s", pathOrRoot(path), name)
	return name
}

func (dc *decoder) object(m mapping, path string) (schema.Schema, error) {
	o := &schema.Object{}
	required, err := stringSet(m, "required", path)
	if err != nil {
		return nil, err
	}
	readonly, err := stringSet(m, "readonly", path)
	if err != nil {
		return nil, err
	}
	if raw, ok := m.get("properties"); ok {
		props, ok := raw.(mapping)
		if !ok {
			return nil, invalidf(path, "\"properties\" must be a mapping")
		}
		for _, kv := range props {
			s, err := dc.node(kv.Value, pointer(pointer(path, "properties"), kv.Key))
			if err != nil {
				return nil, err
			}
			_, req := required[kv.Key]
			_, ro := readonly[kv.Key]
			o.Properties = append(o.Properties, schema.Property{Name: kv.Key, Schema: s, Optional: !req, Readonly: ro})
		}
	}
	for name := range required {
		if _, ok := o.Property(name); !ok {
			dc.d.warnf("%s: required property %q is not declared", pathOrRoot(path), name)
		}
	}
	if raw, ok := m.get("additionalProperties"); ok {
		switch t := raw.(type) {
		case bool:
			o.Additional.Forbidden = !t
		case mapping:
			s, err := dc.node(t, pointer(path, "additionalProperties"))
			if err != nil {
				return nil, err
			}
			o.Additional.Schema = s
		default:
			return nil, invalidf(path, "\"additionalProperties\" must be a boolean or a schema")
		}
	}
	hint, err := optString(m, "hint", path)
	if err != nil {
		return nil, err
	}
	o.Hint = hint
	return o, nil
}

func (dc *decoder) record(m mapping, path string) (schema.Schema, error) {
	raw, ok := m.get("patternProperties")
	if !ok {
		return nil, invalidf(path, "Record requires \"patternProperties\"")
	}
	pp, ok := raw.(mapping)
	if !ok || len(pp) != 1 {
		return nil, invalidf(path, "\"patternProperties\" must hold exactly one pattern")
	}
	value, err := dc.node(pp[0].Value, pointer(pointer(path, "patternProperties"), pp[0].Key))
	if err != nil {
		return nil, err
	}
	return &schema.Record{Pattern: pp[0].Key, Value: value}, nil
}

func (dc *decoder) optNode(m mapping, key, path string) (schema.Schema, error) {
	raw, ok := m.get(key)
	if !ok || raw == nil {
		return nil, nil
	}
	return dc.node(raw, pointer(path, key))
}

func (dc *decoder) list(m mapping, key, path string) ([]schema.Schema, error) {
	raw, ok := m.get(key)
	if !ok || raw == nil {
		return nil, nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, invalidf(path, "%q must be a list", key)
	}
	out := make([]schema.Schema, 0, len(arr))
	for i, it := range arr {
		s, err := dc.node(it, pointer(pointer(path, key), strconv.Itoa(i)))
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func optString(m mapping, key, path string) (string, error) {
	raw, ok := m.get(key)
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalidf(path, "%q must be a string", key)
	}
	return s, nil
}

func optInt(m mapping, key, path string) (int, bool, error) {
	raw, ok := m.get(key)
	if !ok || raw == nil {
		return 0, false, nil
	}
	f, ok := raw.(float64)
	if !ok || f != float64(int(f)) || f < 0 {
		return 0, false, invalidf(path, "%q must be a non-negative integer", key)
	}
	return int(f), true, nil
}

func stringSet(m mapping, key, path string) (map[string]struct{}, error) {
	out := map[string]struct{}{}
	raw, ok := m.get(key)
	if !ok || raw == nil {
		return out, nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, invalidf(path, "%q must be a list of strings", key)
	}
	for _, it := range arr {
		s, ok := it.(string)
		if !ok {
			return nil, invalidf(path, "%q must be a list of strings", key)
		}
		out[s] = struct{}{}
	}
	return out, nil
}
