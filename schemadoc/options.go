package schemadoc

import (
	"fmt"

	"github.com/reoring/structural"
)

// Options controls how documents are loaded.
type Options struct {
	// StrictKeys turns keys that are not part of a node's kind into errors
	// instead of warnings.
	StrictKeys bool
	// UnknownKindsAsUserDefined loads unrecognized kind names as UserDefined
	// nodes. When false they are rejected.
	UnknownKindsAsUserDefined bool
	// Logger receives debug traces. Nil discards them.
	Logger structural.Logger
}

// DefaultOptions returns the loader defaults: unknown keys are warnings and
// unknown kinds load as UserDefined.
func DefaultOptions() Options {
	return Options{UnknownKindsAsUserDefined: true}
}

// Diag carries non-fatal warnings produced during loading.
type Diag interface {
	HasWarnings() bool
	Warnings() []string
}

type simpleDiag struct{ ws []string }

func (d *simpleDiag) HasWarnings() bool        { return len(d.ws) > 0 }
func (d *simpleDiag) Warnings() []string       { return append([]string(nil), d.ws...) }
func (d *simpleDiag) warnf(f string, a ...any) { d.ws = append(d.ws, fmt.Sprintf(f, a...)) }
