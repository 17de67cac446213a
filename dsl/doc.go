// Package dsl provides short constructors for schema trees.
//
// Overview
//   - Primitives: Any()/Unknown()/Never()/String()/Number()/Literal(v)/Enum(...) and friends.
//   - Containers: Array(items), Tuple(items...), Record(pattern, value), RecordOf(key, value).
//   - Objects: Object().Field(name, s).Optional().Readonly().Closed().MustBuild().
//   - Composition: Union(...), Intersect(...), Partial/Required/Pick/Omit.
//   - Callables: Function(params, returns), Constructor(params, returns), Promise(item),
//     with the Parameters/ReturnType/InstanceType accessors.
//   - Identity: WithID(s, id), Ref(id), RefTo(s), Recursive(id, fn).
//
// Every constructor returns a fresh node from the schema package; inputs are
// copied so later mutation of a caller's slice does not leak into the tree.
//
// Quickstart
//
//	user := g.Object().
//		Field("id", g.String()).Readonly().
//		Field("email", g.String()).Optional().
//		ID("User").
//		MustBuild()
//	res, err := structural.Extends(user, g.Object().Field("id", g.String()).MustBuild())
package dsl
