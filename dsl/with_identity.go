package dsl

import (
	"errors"

	"github.com/reoring/structural/schema"
)

// ErrMissingID reports that a referenced schema declares no identifier.
var ErrMissingID = errors.New("dsl: referenced schema must specify an id")

// Ref returns a reference to the schema declaring id.
func Ref(id string) *schema.Ref { return &schema.Ref{Target: id} }

// RefTo returns a reference to s, which must carry an id.
func RefTo(s schema.Schema) (*schema.Ref, error) {
	if s == nil || s.SchemaID() == "" {
		return nil, ErrMissingID
	}
	return &schema.Ref{Target: s.SchemaID()}, nil
}

// WithID returns a copy of s carrying id.
func WithID(s schema.Schema, id string) schema.Schema { return schema.WithID(s, id) }

// Recursive builds a self-referential schema. fn receives the Self node that
// stands for the schema being defined; the returned schema is tagged with id.
func Recursive(id string, fn func(self schema.Schema) schema.Schema) schema.Schema {
	return schema.WithID(fn(&schema.Self{Target: id}), id)
}
