package structural

import (
	"github.com/reoring/structural/schema"
)

// Comparator evaluates assignability between schemas. Its options are fixed
// at construction; every call uses fresh resolver state, so a Comparator is
// safe for concurrent use.
type Comparator struct {
	opts Options
}

// New returns a Comparator configured by opts.
func New(opts Options) *Comparator {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.Logger == nil {
		opts.Logger = NopLogger()
	}
	opts.Definitions = append([]schema.Schema(nil), opts.Definitions...)
	return &Comparator{opts: opts}
}

// Options returns a copy of the configuration.
func (c *Comparator) Options() Options {
	o := c.opts
	o.Definitions = append([]schema.Schema(nil), c.opts.Definitions...)
	return o
}

var defaultComparator = New(DefaultOptions())

// Extends reports whether left is assignable to right.
//
// The result is Union when left contains an Any that may or may not satisfy
// a concrete shape on the right. A user-defined left operand fails with
// *UnsupportedComparisonError and a dangling Ref/Self with
// *UnresolvedReferenceError.
func (c *Comparator) Extends(left, right schema.Schema) (Result, error) {
	v := c.newVisitor()
	v.registerTree(left)
	v.registerTree(right)
	r, err := v.visit(left, right)
	if err != nil {
		return False, err
	}
	return r, nil
}

// Extends reports whether left is assignable to right using the default
// options.
func Extends(left, right schema.Schema) (Result, error) {
	return defaultComparator.Extends(left, right)
}

// Conditional evaluates "left extends right ? ifTrue : ifFalse". See
// (*Comparator).Conditional.
func Conditional(left, right, ifTrue, ifFalse schema.Schema) (schema.Schema, error) {
	return defaultComparator.Conditional(left, right, ifTrue, ifFalse)
}

// SelectBranch is an alias of Conditional.
func SelectBranch(left, right, ifTrue, ifFalse schema.Schema) (schema.Schema, error) {
	return defaultComparator.Conditional(left, right, ifTrue, ifFalse)
}

// Exclude removes from union the members assignable to excluded.
func Exclude(union, excluded schema.Schema) (schema.Schema, error) {
	return defaultComparator.Exclude(union, excluded)
}

// Extract keeps the members assignable to union.
func Extract(s, union schema.Schema) (schema.Schema, error) {
	return defaultComparator.Extract(s, union)
}

// KeyOf returns the union of property name literals of s.
func KeyOf(s schema.Schema) (schema.Schema, error) {
	return defaultComparator.KeyOf(s)
}
