package schema

// Partial returns a clone of s where every object property is optional.
// Unions and intersections are rewritten member-wise; other kinds are cloned
// unchanged.
func Partial(s Schema) Schema {
	return mapObjects(s, func(p Property) Property {
		p.Optional = true
		return p
	})
}

// Required returns a clone of s where every object property is required.
func Required(s Schema) Schema {
	return mapObjects(s, func(p Property) Property {
		p.Optional = false
		return p
	})
}

func mapObjects(s Schema, fn func(Property) Property) Schema {
	switch t := s.(type) {
	case *Union:
		out := &Union{Meta: t.Meta, Members: make([]Schema, len(t.Members))}
		for i, m := range t.Members {
			out.Members[i] = mapObjects(m, fn)
		}
		return out
	case *Intersect:
		out := &Intersect{Meta: t.Meta, Members: make([]Schema, len(t.Members))}
		for i, m := range t.Members {
			out.Members[i] = mapObjects(m, fn)
		}
		return out
	case *Object:
		out := cloneObject(t)
		for i, p := range out.Properties {
			out.Properties[i] = fn(p)
		}
		return out
	default:
		return Clone(s)
	}
}
