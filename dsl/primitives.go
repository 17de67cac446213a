package dsl

import "github.com/reoring/structural/schema"

// Any returns the top type that may stand for an unresolved parameter.
func Any() *schema.Any { return &schema.Any{} }

// Unknown returns the top type.
func Unknown() *schema.Unknown { return &schema.Unknown{} }

// Never returns the bottom type.
func Never() *schema.Never { return &schema.Never{} }

func Null() *schema.Null { return &schema.Null{} }

func Undefined() *schema.Undefined { return &schema.Undefined{} }

func Void() *schema.Void { return &schema.Void{} }

func Boolean() *schema.Boolean { return &schema.Boolean{} }

func Number() *schema.Number { return &schema.Number{} }

func Integer() *schema.Integer { return &schema.Integer{} }

func String() *schema.String { return &schema.String{} }

func Date() *schema.Date { return &schema.Date{} }

// Uint8Array returns the byte buffer type.
func Uint8Array() *schema.Uint8Array { return &schema.Uint8Array{} }

// Literal returns a constant type. Integer and float Go values are stored as
// float64 so that 1 and 1.0 denote the same literal.
func Literal(v any) *schema.Literal {
	return &schema.Literal{Value: schema.NormalizeLiteral(v)}
}

// Enum returns a union of literals, one per value, in order.
func Enum(values ...any) schema.Schema {
	members := make([]schema.Schema, 0, len(values))
	for _, v := range values {
		members = append(members, Literal(v))
	}
	return Union(members...)
}

// UserDefined returns an opaque node carrying tag.
func UserDefined(tag string) *schema.UserDefined { return &schema.UserDefined{Tag: tag} }
