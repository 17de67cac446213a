package structural

import (
	"errors"

	"github.com/reoring/structural/i18n"
)

// Error codes (stable identifiers, also used as i18n keys).
const (
	CodeUnsupportedComparison = "unsupported_comparison"
	CodeUnresolvedReference   = "unresolved_reference"
)

var (
	// ErrUnsupportedComparison matches every UnsupportedComparisonError.
	ErrUnsupportedComparison = errors.New("structural: unsupported comparison")
	// ErrUnresolvedReference matches every UnresolvedReferenceError.
	ErrUnresolvedReference = errors.New("structural: unresolved reference")
)

// UnsupportedComparisonError is returned when the left operand has a
// user-defined kind, whose structure is unknown.
type UnsupportedComparisonError struct {
	Tag string
}

func (e *UnsupportedComparisonError) Error() string {
	return "structural: " + i18n.T(CodeUnsupportedComparison, map[string]string{"tag": e.Tag})
}

func (e *UnsupportedComparisonError) Is(target error) bool { return target == ErrUnsupportedComparison }

// Code returns CodeUnsupportedComparison.
func (e *UnsupportedComparisonError) Code() string { return CodeUnsupportedComparison }

// UnresolvedReferenceError is returned when a Ref or Self target id has not
// been registered when it is dereferenced.
type UnresolvedReferenceError struct {
	Target string
	Self   bool
}

func (e *UnresolvedReferenceError) Error() string {
	return "structural: " + i18n.T(CodeUnresolvedReference, map[string]string{"target": e.Target})
}

func (e *UnresolvedReferenceError) Is(target error) bool { return target == ErrUnresolvedReference }

// Code returns CodeUnresolvedReference.
func (e *UnresolvedReferenceError) Code() string { return CodeUnresolvedReference }

// ErrorCode extracts the stable code from an error returned by this package.
func ErrorCode(err error) (string, bool) {
	var coded interface{ Code() string }
	if errors.As(err, &coded) {
		return coded.Code(), true
	}
	return "", false
}
