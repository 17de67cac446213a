package schema

import (
	"math"
	"strconv"
	"strings"
)

// Canonical record key patterns.
const (
	PatternStringKey = "^.*$"
	PatternNumberKey = "^(0|[1-9][0-9]*)$"
)

// KeyKind classifies a record key pattern.
type KeyKind int

const (
	KeyString KeyKind = iota
	KeyNumber
	KeyLiteral
)

func (k KeyKind) String() string {
	switch k {
	case KeyString:
		return "string"
	case KeyNumber:
		return "number"
	default:
		return "literal"
	}
}

// LiteralPattern builds the canonical alternation pattern for a finite key set.
func LiteralPattern(keys ...string) string {
	return "^(" + strings.Join(keys, "|") + ")$"
}

// KeyKind reports which of the three canonical forms the pattern uses.
func (r *Record) KeyKind() KeyKind {
	switch r.Pattern {
	case PatternStringKey:
		return KeyString
	case PatternNumberKey:
		return KeyNumber
	default:
		return KeyLiteral
	}
}

// LiteralKeys splits a literal alternation pattern into its keys. Both the
// "^a|b$" and "^(a|b)$" spellings are accepted. It returns nil for string and
// number patterns.
func (r *Record) LiteralKeys() []string {
	if r.KeyKind() != KeyLiteral {
		return nil
	}
	p := strings.TrimSuffix(strings.TrimPrefix(r.Pattern, "^"), "$")
	if strings.HasPrefix(p, "(") && strings.HasSuffix(p, ")") {
		p = p[1 : len(p)-1]
	}
	if p == "" {
		return nil
	}
	return strings.Split(p, "|")
}

// KeySchema derives the key type of the record: String, Number, or a Union of
// literals where numeric keys become number literals.
func (r *Record) KeySchema() Schema {
	switch r.KeyKind() {
	case KeyString:
		return &String{}
	case KeyNumber:
		return &Number{}
	}
	keys := r.LiteralKeys()
	members := make([]Schema, 0, len(keys))
	for _, k := range keys {
		if f, ok := numericKey(k); ok {
			members = append(members, &Literal{Value: f})
			continue
		}
		members = append(members, &Literal{Value: k})
	}
	if len(members) == 0 {
		return &Never{}
	}
	return &Union{Members: members}
}

// numericKey parses a literal key that denotes a number. Spellings such as
// "nan" or "inf" stay string keys; only "Infinity" with an optional sign
// names an infinite key.
func numericKey(k string) (float64, bool) {
	f, err := strconv.ParseFloat(k, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	if math.IsInf(f, 0) && strings.TrimLeft(k, "+-") != "Infinity" {
		return 0, false
	}
	return f, true
}

// IsNumericKey reports whether a property name would be accepted by the
// non-negative integer key pattern.
func IsNumericKey(name string) bool {
	if name == "" {
		return false
	}
	if name == "0" {
		return true
	}
	if name[0] < '1' || name[0] > '9' {
		return false
	}
	for i := 1; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// AcceptsKey reports whether the record's key pattern covers name.
func (r *Record) AcceptsKey(name string) bool {
	switch r.KeyKind() {
	case KeyString:
		return true
	case KeyNumber:
		return IsNumericKey(name)
	}
	for _, k := range r.LiteralKeys() {
		if k == name {
			return true
		}
	}
	return false
}
