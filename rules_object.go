package structural

import "github.com/reoring/structural/schema"

func (v *visitor) objectRule(left *schema.Object, right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Object:
		// A closed object without properties admits only {}.
		if left.Additional.Forbidden && len(left.Properties) == 0 && len(r.Properties) > 0 {
			return False, nil
		}
		return v.properties(left, r)
	case *schema.Record:
		return v.objectToRecord(left, r)
	}
	return False, nil
}

// properties checks the surface declared by right. Properties only present
// on left are ignored.
func (v *visitor) properties(left, right *schema.Object) (Result, error) {
	for _, rp := range right.Properties {
		lp, ok := left.Property(rp.Name)
		if !ok {
			if rp.Optional {
				continue
			}
			return False, nil
		}
		if lp.Optional && !rp.Optional {
			return False, nil
		}
		ok, err := v.compatible(lp.Schema, rp.Schema)
		if err != nil || !ok {
			return False, err
		}
	}
	return True, nil
}

func (v *visitor) objectToRecord(left *schema.Object, right *schema.Record) (Result, error) {
	if right.KeyKind() == schema.KeyLiteral {
		for _, key := range right.LiteralKeys() {
			lp, ok := left.Property(key)
			if !ok || lp.Optional {
				return False, nil
			}
			ok, err := v.compatible(lp.Schema, right.Value)
			if err != nil || !ok {
				return False, err
			}
		}
		return True, nil
	}
	for _, lp := range left.Properties {
		if !right.AcceptsKey(lp.Name) {
			continue
		}
		ok, err := v.compatible(lp.Schema, right.Value)
		if err != nil || !ok {
			return False, err
		}
	}
	if left.Additional.Schema != nil {
		ok, err := v.compatible(left.Additional.Schema, right.Value)
		if err != nil || !ok {
			return False, err
		}
	}
	return True, nil
}

func (v *visitor) recordRule(left *schema.Record, right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Object:
		return v.recordToObject(left, r)
	case *schema.Record:
		if !recordKeysCover(left, r) {
			return False, nil
		}
		ok, err := v.compatible(left.Value, r.Value)
		return boolResult(ok), err
	}
	return False, nil
}

func (v *visitor) recordToObject(left *schema.Record, right *schema.Object) (Result, error) {
	if left.KeyKind() == schema.KeyString && right.Hint == schema.HintRecord {
		return True, nil
	}
	for _, rp := range right.Properties {
		if !left.AcceptsKey(rp.Name) {
			if rp.Optional {
				continue
			}
			return False, nil
		}
		ok, err := v.compatible(left.Value, rp.Schema)
		if err != nil || !ok {
			return False, err
		}
	}
	return True, nil
}

// recordKeysCover reports whether the keys of left satisfy the key type of
// right. A string key type on the right admits any left key type.
func recordKeysCover(left, right *schema.Record) bool {
	switch right.KeyKind() {
	case schema.KeyString:
		return true
	case schema.KeyNumber:
		switch left.KeyKind() {
		case schema.KeyNumber:
			return true
		case schema.KeyLiteral:
			keys := left.LiteralKeys()
			for _, k := range keys {
				if !schema.IsNumericKey(k) {
					return false
				}
			}
			return len(keys) > 0
		}
		return false
	}
	for _, k := range right.LiteralKeys() {
		if !left.AcceptsKey(k) {
			return false
		}
	}
	return true
}
