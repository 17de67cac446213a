package structural

import "github.com/reoring/structural/schema"

func (v *visitor) arrayRule(left *schema.Array, right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Array:
		ok, err := v.compatible(left.Items, r.Items)
		return boolResult(ok), err
	case *schema.Object:
		ok, err := v.lengthShaped(r)
		return boolResult(ok), err
	case *schema.Record:
		return v.indexed(orUnknown(left.Items), r)
	}
	return False, nil
}

func (v *visitor) tupleRule(left *schema.Tuple, right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Array:
		return v.allCompatible(left.Items, r.Items)
	case *schema.Tuple:
		if len(left.Items) != len(r.Items) {
			return False, nil
		}
		for i := range left.Items {
			ok, err := v.compatible(left.Items[i], r.Items[i])
			if err != nil || !ok {
				return False, err
			}
		}
		return True, nil
	case *schema.Object:
		ok, err := v.lengthShaped(r)
		return boolResult(ok), err
	case *schema.Record:
		if r.KeyKind() == schema.KeyLiteral {
			return False, nil
		}
		return v.allCompatible(left.Items, r.Value)
	}
	return False, nil
}

// allCompatible reports whether every item is compatible with target.
func (v *visitor) allCompatible(items []schema.Schema, target schema.Schema) (Result, error) {
	for _, it := range items {
		ok, err := v.compatible(it, target)
		if err != nil || !ok {
			return False, err
		}
	}
	return True, nil
}

func (v *visitor) promiseRule(left *schema.Promise, right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Promise:
		ok, err := v.compatible(left.Item, r.Item)
		return boolResult(ok), err
	case *schema.Object:
		ok, err := v.soleProperty(r, "then", &schema.Function{Returns: &schema.Any{}})
		return boolResult(ok), err
	}
	return False, nil
}
