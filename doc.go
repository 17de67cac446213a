// Package structural decides whether one schema is assignable to another.
//
// - Extends compares two schema trees and returns a tri-state Result (True, False, Union)
// - Conditional/SelectBranch picks a branch from that result
// - Exclude/Extract filter union members by assignability
// - KeyOf derives the property names of an object, record, union or intersection
//
// Design policy:
// - Schema nodes live in schema/ and are immutable; derived schemas are clones.
// - Builders live in dsl/, document loading in schemadoc/, JSON Schema export in jsonschema/, and the CLI under cmd/structural.
// - References (Ref/Self) are resolved through a per-call id map, so a Comparator is safe for concurrent use.
//
// Typical usage:
//
//	user := dsl.Object().Field("name", dsl.String()).Field("age", dsl.Number()).Optional().MustBuild()
//	named := dsl.Object().Field("name", dsl.String()).MustBuild()
//	r, err := structural.Extends(user, named) // True
//
//	c := structural.New(structural.Options{MaxDepth: 64, Logger: structural.NewLogger(structural.LevelDebug, os.Stderr)})
//	s, err := c.Conditional(dsl.String(), dsl.Number(), dsl.Literal(true), dsl.Literal(false))
package structural
