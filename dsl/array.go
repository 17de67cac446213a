package dsl

import "github.com/reoring/structural/schema"

// Array returns a homogeneous array of items.
func Array(items schema.Schema) *schema.Array { return &schema.Array{Items: items} }

// Tuple returns a fixed-length positional array. MinItems and MaxItems both
// equal the number of items.
func Tuple(items ...schema.Schema) *schema.Tuple {
	if len(items) == 0 {
		return &schema.Tuple{}
	}
	return &schema.Tuple{Items: append([]schema.Schema(nil), items...), MinItems: len(items), MaxItems: len(items)}
}
