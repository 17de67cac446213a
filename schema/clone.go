package schema

// Clone returns a deep copy of s. Built-in nodes are copied recursively;
// user-defined schemas are copied through Cloner when implemented and
// returned as-is otherwise.
func Clone(s Schema) Schema {
	switch t := s.(type) {
	case nil:
		return nil
	case *Any:
		c := *t
		return &c
	case *Unknown:
		c := *t
		return &c
	case *Never:
		c := *t
		return &c
	case *Null:
		c := *t
		return &c
	case *Undefined:
		c := *t
		return &c
	case *Void:
		c := *t
		return &c
	case *Boolean:
		c := *t
		return &c
	case *Number:
		c := *t
		return &c
	case *Integer:
		c := *t
		return &c
	case *String:
		c := *t
		return &c
	case *Date:
		c := *t
		return &c
	case *Uint8Array:
		c := *t
		return &c
	case *Literal:
		c := *t
		return &c
	case *Ref:
		c := *t
		return &c
	case *Self:
		c := *t
		return &c
	case *UserDefined:
		c := *t
		return &c
	case *Array:
		return &Array{Meta: t.Meta, Items: Clone(t.Items)}
	case *Tuple:
		return &Tuple{Meta: t.Meta, Items: cloneList(t.Items), MinItems: t.MinItems, MaxItems: t.MaxItems}
	case *Object:
		return cloneObject(t)
	case *Record:
		return &Record{Meta: t.Meta, Pattern: t.Pattern, Value: Clone(t.Value)}
	case *Union:
		return &Union{Meta: t.Meta, Members: cloneList(t.Members)}
	case *Intersect:
		return &Intersect{Meta: t.Meta, Members: cloneList(t.Members)}
	case *Function:
		return &Function{Meta: t.Meta, Parameters: cloneList(t.Parameters), Returns: Clone(t.Returns)}
	case *Constructor:
		return &Constructor{Meta: t.Meta, Parameters: cloneList(t.Parameters), Returns: Clone(t.Returns)}
	case *Promise:
		return &Promise{Meta: t.Meta, Item: Clone(t.Item)}
	case Cloner:
		return t.CloneSchema()
	default:
		return s
	}
}

func cloneObject(o *Object) *Object {
	out := &Object{Meta: o.Meta, Hint: o.Hint}
	if o.Properties != nil {
		out.Properties = make([]Property, len(o.Properties))
		for i, p := range o.Properties {
			p.Schema = Clone(p.Schema)
			out.Properties[i] = p
		}
	}
	out.Additional = Additional{Forbidden: o.Additional.Forbidden, Schema: Clone(o.Additional.Schema)}
	return out
}

func cloneList(in []Schema) []Schema {
	if in == nil {
		return nil
	}
	out := make([]Schema, len(in))
	for i, s := range in {
		out[i] = Clone(s)
	}
	return out
}

// WithID returns a clone of s carrying id. Schemas without Meta are returned
// unchanged.
func WithID(s Schema, id string) Schema {
	c := Clone(s)
	if mh, ok := c.(metaHolder); ok {
		mh.meta().ID = id
	}
	return c
}
