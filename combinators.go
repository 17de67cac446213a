package structural

import (
	"github.com/reoring/structural/schema"
)

// Conditional evaluates "left extends right ? ifTrue : ifFalse". The chosen
// branch is always a clone; an ambiguous comparison yields the union of both
// branches in that order.
func (c *Comparator) Conditional(left, right, ifTrue, ifFalse schema.Schema) (schema.Schema, error) {
	r, err := c.Extends(left, right)
	if err != nil {
		return nil, err
	}
	switch r {
	case True:
		return schema.Clone(ifTrue), nil
	case False:
		return schema.Clone(ifFalse), nil
	default:
		return &schema.Union{Members: []schema.Schema{schema.Clone(ifTrue), schema.Clone(ifFalse)}}, nil
	}
}

// SelectBranch is an alias of Conditional.
func (c *Comparator) SelectBranch(left, right, ifTrue, ifFalse schema.Schema) (schema.Schema, error) {
	return c.Conditional(left, right, ifTrue, ifFalse)
}

// Exclude keeps the members of union that are definitely not assignable to
// excluded. Members that might overlap (True or Union) are removed.
func (c *Comparator) Exclude(union, excluded schema.Schema) (schema.Schema, error) {
	return c.filter(schema.Members(union), func(m schema.Schema) (bool, error) {
		r, err := c.Extends(m, excluded)
		return r == False, err
	})
}

// Extract keeps definitely assignable members. When s is a union its members
// are tested against union; otherwise the members of union are tested as
// targets of s.
func (c *Comparator) Extract(s, union schema.Schema) (schema.Schema, error) {
	if u, ok := s.(*schema.Union); ok {
		return c.filter(u.Members, func(m schema.Schema) (bool, error) {
			r, err := c.Extends(m, union)
			return r == True, err
		})
	}
	return c.filter(schema.Members(union), func(m schema.Schema) (bool, error) {
		r, err := c.Extends(s, m)
		return r == True, err
	})
}

// filter clones the members accepted by keep, preserving order. No survivors
// yields Never.
func (c *Comparator) filter(members []schema.Schema, keep func(schema.Schema) (bool, error)) (schema.Schema, error) {
	var out []schema.Schema
	for _, m := range members {
		ok, err := keep(m)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, schema.Clone(m))
		}
	}
	if len(out) == 0 {
		return &schema.Never{}, nil
	}
	return &schema.Union{Members: out}, nil
}
