package structural

import "github.com/reoring/structural/schema"

// emptyObject reports whether o declares no properties; such an object
// accepts any non-nullish value.
func emptyObject(o *schema.Object) bool { return len(o.Properties) == 0 }

// lengthShaped reports whether o is empty or declares only a numeric length.
func (v *visitor) lengthShaped(o *schema.Object) (bool, error) {
	return v.soleProperty(o, "length", &schema.Number{})
}

// soleProperty reports whether o is empty or declares only name, with a
// schema that accepts want.
func (v *visitor) soleProperty(o *schema.Object, name string, want schema.Schema) (bool, error) {
	if emptyObject(o) {
		return true, nil
	}
	if len(o.Properties) != 1 || o.Properties[0].Name != name {
		return false, nil
	}
	return v.compatible(want, o.Properties[0].Schema)
}

// keyAccepted reports whether left may be used as a key of r.
func (v *visitor) keyAccepted(left schema.Schema, r *schema.Record) (Result, error) {
	ok, err := v.compatible(left, r.KeySchema())
	return boolResult(ok), err
}

// indexed compares an indexable left operand, whose elements are elem,
// against a string or number keyed record.
func (v *visitor) indexed(elem schema.Schema, r *schema.Record) (Result, error) {
	if r.KeyKind() == schema.KeyLiteral {
		return False, nil
	}
	ok, err := v.compatible(elem, r.Value)
	return boolResult(ok), err
}

func (v *visitor) stringRule(left *schema.String, right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.String:
		return True, nil
	case *schema.Object:
		ok, err := v.lengthShaped(r)
		return boolResult(ok), err
	case *schema.Record:
		return v.keyAccepted(left, r)
	}
	return False, nil
}

func (v *visitor) numberRule(left, right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Number, *schema.Integer:
		return True, nil
	case *schema.Object:
		return boolResult(emptyObject(r)), nil
	case *schema.Record:
		return v.keyAccepted(left, r)
	}
	return False, nil
}

func (v *visitor) booleanRule(left *schema.Boolean, right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Boolean:
		return True, nil
	case *schema.Object:
		return boolResult(emptyObject(r)), nil
	case *schema.Record:
		return v.keyAccepted(left, r)
	}
	return False, nil
}

func (v *visitor) dateRule(right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Date:
		return True, nil
	case *schema.Object:
		return boolResult(emptyObject(r)), nil
	}
	return False, nil
}

func (v *visitor) uint8ArrayRule(right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Uint8Array:
		return True, nil
	case *schema.Object:
		ok, err := v.lengthShaped(r)
		return boolResult(ok), err
	case *schema.Record:
		return v.indexed(&schema.Number{}, r)
	}
	return False, nil
}

func (v *visitor) literalRule(left *schema.Literal, right schema.Schema) (Result, error) {
	value := schema.NormalizeLiteral(left.Value)
	switch r := right.(type) {
	case *schema.Literal:
		return boolResult(schema.LiteralEqual(value, schema.NormalizeLiteral(r.Value))), nil
	case *schema.String:
		_, ok := value.(string)
		return boolResult(ok), nil
	case *schema.Number, *schema.Integer:
		_, ok := value.(float64)
		return boolResult(ok), nil
	case *schema.Boolean:
		_, ok := value.(bool)
		return boolResult(ok), nil
	case *schema.Object:
		if emptyObject(r) {
			return True, nil
		}
		if _, ok := value.(string); ok {
			ok, err := v.lengthShaped(r)
			return boolResult(ok), err
		}
		return False, nil
	case *schema.Record:
		return v.keyAccepted(left, r)
	}
	return False, nil
}
