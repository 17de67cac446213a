package structural

import (
	"fmt"

	"github.com/reoring/structural/schema"
)

// dispatch applies the distribution rules and then the rule for the left
// kind. Both operands are already resolved.
func (v *visitor) dispatch(left, right schema.Schema) (Result, error) {
	lk, rk := schema.ClassifyKind(left), schema.ClassifyKind(right)
	switch lk {
	case schema.KindUserDefined:
		return False, &UnsupportedComparisonError{Tag: userTag(left)}
	case schema.KindNever:
		return True, nil
	case schema.KindAny:
		return v.anyLeft(left, right, rk)
	case schema.KindUnion:
		return v.every(left.(*schema.Union).Members, func(m schema.Schema) (Result, error) { return v.visit(m, right) })
	}

	switch rk {
	case schema.KindIntersect:
		return v.every(right.(*schema.Intersect).Members, func(m schema.Schema) (Result, error) { return v.visit(left, m) })
	case schema.KindUnion:
		return v.some(right.(*schema.Union).Members, func(m schema.Schema) (Result, error) { return v.visit(left, m) })
	}

	if lk == schema.KindIntersect {
		return v.some(left.(*schema.Intersect).Members, func(m schema.Schema) (Result, error) { return v.visit(m, right) })
	}

	switch rk {
	case schema.KindUnknown, schema.KindAny:
		return True, nil
	case schema.KindNever:
		// Never on the right places no constraint.
		return True, nil
	}

	switch l := left.(type) {
	case *schema.Unknown:
		return False, nil
	case *schema.String:
		return v.stringRule(l, right)
	case *schema.Number, *schema.Integer:
		return v.numberRule(left, right)
	case *schema.Boolean:
		return v.booleanRule(l, right)
	case *schema.Null:
		return boolResult(rk == schema.KindNull), nil
	case *schema.Undefined, *schema.Void:
		return boolResult(rk == schema.KindUndefined || rk == schema.KindVoid), nil
	case *schema.Date:
		return v.dateRule(right)
	case *schema.Uint8Array:
		return v.uint8ArrayRule(right)
	case *schema.Literal:
		return v.literalRule(l, right)
	case *schema.Array:
		return v.arrayRule(l, right)
	case *schema.Tuple:
		return v.tupleRule(l, right)
	case *schema.Object:
		return v.objectRule(l, right)
	case *schema.Record:
		return v.recordRule(l, right)
	case *schema.Function:
		return v.functionRule(l, right)
	case *schema.Constructor:
		return v.constructorRule(l, right)
	case *schema.Promise:
		return v.promiseRule(l, right)
	}
	return False, nil
}

// anyLeft decides where Any may stand for a parameter that is not bound yet.
func (v *visitor) anyLeft(left, right schema.Schema, rk schema.Kind) (Result, error) {
	switch rk {
	case schema.KindUnknown, schema.KindAny:
		return True, nil
	case schema.KindUnion:
		members := right.(*schema.Union).Members
		for _, m := range members {
			if k := schema.ClassifyKind(m); k == schema.KindAny || k == schema.KindUnknown {
				return True, nil
			}
		}
		return v.some(members, func(m schema.Schema) (Result, error) { return v.visit(left, m) })
	case schema.KindIntersect:
		return v.every(right.(*schema.Intersect).Members, func(m schema.Schema) (Result, error) { return v.visit(left, m) })
	case schema.KindObject, schema.KindArray, schema.KindTuple, schema.KindUint8Array,
		schema.KindDate, schema.KindFunction, schema.KindConstructor, schema.KindNever:
		v.log.Debugf("any extends %s is ambiguous", rk)
		return Union, nil
	}
	return True, nil
}

// every combines results where all members must hold: False dominates, then
// Union. No members yields True.
func (v *visitor) every(members []schema.Schema, step func(schema.Schema) (Result, error)) (Result, error) {
	out := True
	for _, m := range members {
		r, err := step(m)
		if err != nil {
			return False, err
		}
		switch r {
		case False:
			return False, nil
		case Union:
			out = Union
		}
	}
	return out, nil
}

// some combines results where one member suffices: True dominates, then
// Union. No members yields False.
func (v *visitor) some(members []schema.Schema, step func(schema.Schema) (Result, error)) (Result, error) {
	out := False
	for _, m := range members {
		r, err := step(m)
		if err != nil {
			return False, err
		}
		switch r {
		case True:
			return True, nil
		case Union:
			out = Union
		}
	}
	return out, nil
}

// compatible is the nested check used by structural rules: an ambiguous
// result counts as assignable.
func (v *visitor) compatible(left, right schema.Schema) (bool, error) {
	r, err := v.visit(orUnknown(left), orUnknown(right))
	if err != nil {
		return false, err
	}
	return r != False, nil
}

func orUnknown(s schema.Schema) schema.Schema {
	if s == nil {
		return &schema.Unknown{}
	}
	return s
}

func boolResult(ok bool) Result {
	if ok {
		return True
	}
	return False
}

func userTag(s schema.Schema) string {
	switch t := s.(type) {
	case nil:
		return "<nil>"
	case *schema.UserDefined:
		return t.Tag
	}
	return fmt.Sprintf("%T", s)
}
