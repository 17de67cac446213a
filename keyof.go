package structural

import (
	"github.com/reoring/structural/schema"
)

// KeyOf returns a union of string literals naming the properties of s.
//
// Objects contribute their declared names in order and literal-keyed records
// their keys. A string or number keyed record passed directly yields its key
// type. Intersections contribute the names of every member; unions only the
// names that every member structurally declares. No names yields Never.
func (c *Comparator) KeyOf(s schema.Schema) (schema.Schema, error) {
	v := c.newVisitor()
	v.registerTree(s)
	resolved, err := v.resolveAll(s)
	if err != nil {
		return nil, err
	}
	if r, ok := resolved.(*schema.Record); ok && r.KeyKind() != schema.KeyLiteral {
		return r.KeySchema(), nil
	}
	names, err := v.keys(resolved)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return &schema.Never{}, nil
	}
	members := make([]schema.Schema, len(names))
	for i, n := range names {
		members[i] = &schema.Literal{Value: n}
	}
	return &schema.Union{Members: members}, nil
}

// resolveAll follows references until a concrete node is reached.
func (v *visitor) resolveAll(s schema.Schema) (schema.Schema, error) {
	for hops := 0; schema.IsReference(s); hops++ {
		if hops >= v.maxDepth {
			return &schema.Never{}, nil
		}
		next, err := v.resolve(s)
		if err != nil {
			return nil, err
		}
		v.registerTree(next)
		s = next
	}
	return s, nil
}

func (v *visitor) keys(s schema.Schema) ([]string, error) {
	s, err := v.resolveAll(s)
	if err != nil {
		return nil, err
	}
	switch t := s.(type) {
	case *schema.Object:
		names := make([]string, len(t.Properties))
		for i, p := range t.Properties {
			names[i] = p.Name
		}
		return names, nil
	case *schema.Record:
		return t.LiteralKeys(), nil
	case *schema.Intersect:
		var names []string
		for _, m := range t.Members {
			mk, err := v.keys(m)
			if err != nil {
				return nil, err
			}
			names = appendUnique(names, mk...)
		}
		return names, nil
	case *schema.Union:
		var candidates []string
		for _, m := range t.Members {
			mk, err := v.keys(m)
			if err != nil {
				return nil, err
			}
			candidates = appendUnique(candidates, mk...)
		}
		var names []string
		for _, name := range candidates {
			probe := &schema.Object{Properties: []schema.Property{{Name: name, Schema: &schema.Unknown{}}}}
			present := true
			for _, m := range t.Members {
				m, err := v.resolveAll(m)
				if err != nil {
					return nil, err
				}
				r, err := v.visit(schema.Required(m), probe)
				if err != nil {
					return nil, err
				}
				if r != True {
					present = false
					break
				}
			}
			if present {
				names = append(names, name)
			}
		}
		return names, nil
	}
	return nil, nil
}

func appendUnique(dst []string, names ...string) []string {
	for _, n := range names {
		dup := false
		for _, d := range dst {
			if d == n {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, n)
		}
	}
	return dst
}
