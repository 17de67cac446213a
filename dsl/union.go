package dsl

import "github.com/reoring/structural/schema"

// Union returns a union of members. An empty member list yields Never.
func Union(members ...schema.Schema) schema.Schema {
	if len(members) == 0 {
		return Never()
	}
	return &schema.Union{Members: append([]schema.Schema(nil), members...)}
}

// Intersect returns an intersection of members.
func Intersect(members ...schema.Schema) *schema.Intersect {
	return &schema.Intersect{Members: append([]schema.Schema(nil), members...)}
}
