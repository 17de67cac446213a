package schema

// Schema is the root node interface.
type Schema interface {
	Kind() Kind
	// SchemaID returns the identifier used by Ref/Self nodes, or "".
	SchemaID() string
}

// Meta carries the attributes shared by every built-in node.
type Meta struct {
	ID string
}

func (m *Meta) SchemaID() string { return m.ID }

func (m *Meta) meta() *Meta { return m }

type metaHolder interface {
	meta() *Meta
}

// Cloner may be implemented by user-defined schemas that want Clone to copy
// them instead of returning the same instance.
type Cloner interface {
	CloneSchema() Schema
}

type Any struct{ Meta }

type Unknown struct{ Meta }

type Never struct{ Meta }

type Null struct{ Meta }

type Undefined struct{ Meta }

type Void struct{ Meta }

type Boolean struct{ Meta }

type Number struct{ Meta }

type Integer struct{ Meta }

type String struct{ Meta }

type Date struct{ Meta }

type Uint8Array struct{ Meta }

// Literal is a single constant. Value holds a string, float64 or bool.
type Literal struct {
	Meta
	Value any
}

// Array is a homogeneous list of Items.
type Array struct {
	Meta
	Items Schema
}

// Tuple is a positional list. A nil Items slice denotes the empty tuple.
type Tuple struct {
	Meta
	Items    []Schema
	MinItems int
	MaxItems int
}

// Property is one declared member of an Object.
type Property struct {
	Name     string
	Schema   Schema
	Optional bool
	Readonly bool
}

// Additional describes what an Object accepts beyond its declared
// properties. The zero value places no constraint.
type Additional struct {
	Forbidden bool
	Schema    Schema
}

// HintRecord marks an Object produced from a record with literal keys.
const HintRecord = "Record"

// Object is a set of named properties. Order is kept for consumers but is
// not significant for comparison.
type Object struct {
	Meta
	Properties []Property
	Additional Additional
	Hint       string
}

// Property looks up a declared property by name.
func (o *Object) Property(name string) (Property, bool) {
	for _, p := range o.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// Record is a dictionary whose keys are constrained by one canonical pattern.
type Record struct {
	Meta
	Pattern string
	Value   Schema
}

type Union struct {
	Meta
	Members []Schema
}

type Intersect struct {
	Meta
	Members []Schema
}

type Function struct {
	Meta
	Parameters []Schema
	Returns    Schema
}

type Constructor struct {
	Meta
	Parameters []Schema
	Returns    Schema
}

type Promise struct {
	Meta
	Item Schema
}

// Ref points at the node declaring ID == Target.
type Ref struct {
	Meta
	Target string
}

// Self is the back-reference used inside recursive definitions.
type Self struct {
	Meta
	Target string
}

// UserDefined is an opaque kind with no known structural shape.
type UserDefined struct {
	Meta
	Tag string
}

func (*Any) Kind() Kind         { return KindAny }
func (*Unknown) Kind() Kind     { return KindUnknown }
func (*Never) Kind() Kind       { return KindNever }
func (*Null) Kind() Kind        { return KindNull }
func (*Undefined) Kind() Kind   { return KindUndefined }
func (*Void) Kind() Kind        { return KindVoid }
func (*Boolean) Kind() Kind     { return KindBoolean }
func (*Number) Kind() Kind      { return KindNumber }
func (*Integer) Kind() Kind     { return KindInteger }
func (*String) Kind() Kind      { return KindString }
func (*Date) Kind() Kind        { return KindDate }
func (*Uint8Array) Kind() Kind  { return KindUint8Array }
func (*Literal) Kind() Kind     { return KindLiteral }
func (*Array) Kind() Kind       { return KindArray }
func (*Tuple) Kind() Kind       { return KindTuple }
func (*Object) Kind() Kind      { return KindObject }
func (*Record) Kind() Kind      { return KindRecord }
func (*Union) Kind() Kind       { return KindUnion }
func (*Intersect) Kind() Kind   { return KindIntersect }
func (*Function) Kind() Kind    { return KindFunction }
func (*Constructor) Kind() Kind { return KindConstructor }
func (*Promise) Kind() Kind     { return KindPromise }
func (*Ref) Kind() Kind         { return KindRef }
func (*Self) Kind() Kind        { return KindSelf }
func (*UserDefined) Kind() Kind { return KindUserDefined }

// Target returns the referenced id of a Ref or Self node.
func Target(s Schema) (string, bool) {
	switch t := s.(type) {
	case *Ref:
		return t.Target, true
	case *Self:
		return t.Target, true
	}
	return "", false
}

// Members returns the members of a Union, nothing for Never, and s itself for
// any other schema.
func Members(s Schema) []Schema {
	switch t := s.(type) {
	case *Union:
		return t.Members
	case *Never:
		return nil
	case nil:
		return nil
	}
	return []Schema{s}
}

// LiteralEqual reports whether two literal values are the same constant.
func LiteralEqual(a, b any) bool {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	}
	return false
}

// NormalizeLiteral converts Go numeric types to float64 so that literal values
// compare by their runtime type (string, number, boolean).
func NormalizeLiteral(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int8:
		return float64(t)
	case int16:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case uint:
		return float64(t)
	case uint8:
		return float64(t)
	case uint16:
		return float64(t)
	case uint32:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	}
	return v
}
