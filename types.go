package structural

import "github.com/reoring/structural/schema"

// Result is the tri-state outcome of an extends check.
type Result int

const (
	False Result = iota // Left is not assignable to right.
	True                // Left is assignable to right.
	Union               // Assignability depends on what an unconstrained parameter is bound to.
)

func (r Result) String() string {
	switch r {
	case True:
		return "true"
	case False:
		return "false"
	case Union:
		return "union"
	default:
		return "unknown"
	}
}

// DefaultMaxDepth bounds nested comparison steps within one call.
const DefaultMaxDepth = 1000

// Options configures a Comparator.
type Options struct {
	// MaxDepth bounds recursion; a step nested deeper than this returns True.
	// Zero or negative selects DefaultMaxDepth.
	MaxDepth int
	// Definitions are id-bearing schemas registered before every comparison,
	// so references to them resolve regardless of traversal order.
	Definitions []schema.Schema
	// Logger receives debug traces. Nil discards them.
	Logger Logger
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}
