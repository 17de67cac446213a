package structural

import "github.com/reoring/structural/schema"

func (v *visitor) functionRule(left *schema.Function, right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Function:
		return v.signature(left.Parameters, left.Returns, r.Parameters, r.Returns)
	case *schema.Object:
		ok, err := v.lengthShaped(r)
		return boolResult(ok), err
	}
	return False, nil
}

func (v *visitor) constructorRule(left *schema.Constructor, right schema.Schema) (Result, error) {
	switch r := right.(type) {
	case *schema.Constructor:
		return v.signature(left.Parameters, left.Returns, r.Parameters, r.Returns)
	case *schema.Object:
		return boolResult(emptyObject(r)), nil
	}
	return False, nil
}

// signature compares callables: the right side must accept at least as many
// parameters, returns are covariant and parameters contravariant.
func (v *visitor) signature(lp []schema.Schema, lr schema.Schema, rp []schema.Schema, rr schema.Schema) (Result, error) {
	if len(rp) < len(lp) {
		return False, nil
	}
	ok, err := v.compatible(lr, rr)
	if err != nil || !ok {
		return False, err
	}
	for i := range lp {
		ok, err := v.compatible(rp[i], lp[i])
		if err != nil || !ok {
			return False, err
		}
	}
	return True, nil
}
