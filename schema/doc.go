// Package schema defines the immutable schema tree compared by the structural
// package. Nodes are built once (see the dsl package or schemadoc) and never
// mutated afterwards; derived schemas are produced with Clone.
package schema
