package dsl

import (
	"fmt"

	"github.com/reoring/structural/schema"
)

type objectBuilder struct {
	props      []schema.Property
	additional schema.Additional
	hint       string
	id         string
}

type fieldStep struct {
	b   *objectBuilder
	idx int
}

// Object creates a new object builder. Properties are required unless marked
// Optional.
func Object() *objectBuilder {
	return &objectBuilder{}
}

// Field registers a property.
func (b *objectBuilder) Field(name string, s schema.Schema) *fieldStep {
	b.props = append(b.props, schema.Property{Name: name, Schema: s})
	return &fieldStep{b: b, idx: len(b.props) - 1}
}

// Optional marks the current property as optional.
func (f *fieldStep) Optional() *fieldStep {
	f.b.props[f.idx].Optional = true
	return f
}

// Readonly marks the current property as readonly.
func (f *fieldStep) Readonly() *fieldStep {
	f.b.props[f.idx].Readonly = true
	return f
}

func (f *fieldStep) Field(name string, s schema.Schema) *fieldStep { return f.b.Field(name, s) }
func (f *fieldStep) Closed() *objectBuilder                        { return f.b.Closed() }
func (f *fieldStep) Additional(s schema.Schema) *objectBuilder     { return f.b.Additional(s) }
func (f *fieldStep) ID(id string) *objectBuilder                   { return f.b.ID(id) }
func (f *fieldStep) Build() (*schema.Object, error)                { return f.b.Build() }
func (f *fieldStep) MustBuild() *schema.Object                     { return f.b.MustBuild() }

// Closed forbids properties beyond the declared ones (additionalProperties: false).
func (b *objectBuilder) Closed() *objectBuilder {
	b.additional = schema.Additional{Forbidden: true}
	return b
}

// Additional constrains undeclared properties with s.
func (b *objectBuilder) Additional(s schema.Schema) *objectBuilder {
	b.additional = schema.Additional{Schema: s}
	return b
}

// Hint records the construction origin (for example schema.HintRecord).
func (b *objectBuilder) Hint(h string) *objectBuilder {
	b.hint = h
	return b
}

// ID sets the identifier referenced by Ref/Self nodes.
func (b *objectBuilder) ID(id string) *objectBuilder {
	b.id = id
	return b
}

// Build validates the builder and returns the object schema.
func (b *objectBuilder) Build() (*schema.Object, error) {
	seen := make(map[string]struct{}, len(b.props))
	for _, p := range b.props {
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("dsl: duplicate property %q", p.Name)
		}
		if p.Schema == nil {
			return nil, fmt.Errorf("dsl: property %q has no schema", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	props := make([]schema.Property, len(b.props))
	copy(props, b.props)
	return &schema.Object{Meta: schema.Meta{ID: b.id}, Properties: props, Additional: b.additional, Hint: b.hint}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() *schema.Object {
	o, err := b.Build()
	if err != nil {
		panic(err)
	}
	return o
}

// Empty returns an object with no declared properties.
func Empty() *schema.Object { return &schema.Object{} }

// Partial returns a copy of s with every object property optional.
func Partial(s schema.Schema) schema.Schema { return schema.Partial(s) }

// Required returns a copy of s with every object property required.
func Required(s schema.Schema) schema.Schema { return schema.Required(s) }

// Pick returns a copy of o keeping only the named properties.
func Pick(o *schema.Object, names ...string) *schema.Object {
	keep := make(map[string]struct{}, len(names))
	for _, n := range names {
		keep[n] = struct{}{}
	}
	return filterProps(o, func(name string) bool { _, ok := keep[name]; return ok })
}

// Omit returns a copy of o without the named properties.
func Omit(o *schema.Object, names ...string) *schema.Object {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	return filterProps(o, func(name string) bool { _, ok := drop[name]; return !ok })
}

func filterProps(o *schema.Object, keep func(string) bool) *schema.Object {
	c := schema.Clone(o).(*schema.Object)
	out := c.Properties[:0]
	for _, p := range c.Properties {
		if keep(p.Name) {
			out = append(out, p)
		}
	}
	c.Properties = out
	return c
}
