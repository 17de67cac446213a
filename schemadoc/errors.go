package schemadoc

import (
	"fmt"

	"github.com/reoring/structural/i18n"
)

// Error codes (stable identifiers, also used as i18n keys).
const (
	CodeDuplicateKey    = "duplicate_key"
	CodeInvalidDocument = "invalid_document"
)

// DuplicateKeyError reports a key repeated within one mapping. Path is the
// JSON Pointer of the mapping. Line and column positions are set for YAML
// input only.
type DuplicateKeyError struct {
	Key       string
	Path      string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	msg := "schemadoc: " + i18n.T(CodeDuplicateKey, map[string]string{"key": e.Key})
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d (first at %d:%d)", msg, e.Line, e.Col, e.FirstLine, e.FirstCol)
	}
	return msg + " at " + pathOrRoot(e.Path)
}

func (e *DuplicateKeyError) Code() string { return CodeDuplicateKey }

// InvalidDocumentError reports a node that cannot be turned into a schema.
type InvalidDocumentError struct {
	Path   string
	Reason string
}

func (e *InvalidDocumentError) Error() string {
	return "schemadoc: " + i18n.T(CodeInvalidDocument, map[string]string{"reason": e.Reason}) + " at " + pathOrRoot(e.Path)
}

func (e *InvalidDocumentError) Code() string { return CodeInvalidDocument }

func invalidf(path, format string, args ...any) error {
	return &InvalidDocumentError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func pathOrRoot(p string) string {
	if p == "" {
		return "/"
	}
	return p
}
