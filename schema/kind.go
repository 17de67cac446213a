package schema

// Kind identifies the structural variant of a schema node.
type Kind int

const (
	KindUserDefined Kind = iota
	KindAny
	KindUnknown
	KindNever
	KindNull
	KindUndefined
	KindVoid
	KindBoolean
	KindNumber
	KindInteger
	KindString
	KindLiteral
	KindArray
	KindTuple
	KindObject
	KindRecord
	KindUnion
	KindIntersect
	KindFunction
	KindConstructor
	KindPromise
	KindDate
	KindUint8Array
	KindRef
	KindSelf
)

var kindNames = [...]string{
	KindUserDefined: "UserDefined",
	KindAny:         "Any",
	KindUnknown:     "Unknown",
	KindNever:       "Never",
	KindNull:        "Null",
	KindUndefined:   "Undefined",
	KindVoid:        "Void",
	KindBoolean:     "Boolean",
	KindNumber:      "Number",
	KindInteger:     "Integer",
	KindString:      "String",
	KindLiteral:     "Literal",
	KindArray:       "Array",
	KindTuple:       "Tuple",
	KindObject:      "Object",
	KindRecord:      "Record",
	KindUnion:       "Union",
	KindIntersect:   "Intersect",
	KindFunction:    "Function",
	KindConstructor: "Constructor",
	KindPromise:     "Promise",
	KindDate:        "Date",
	KindUint8Array:  "Uint8Array",
	KindRef:         "Ref",
	KindSelf:        "Self",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UserDefined"
	}
	return kindNames[k]
}

// ParseKind maps a kind name (as produced by Kind.String) back to a Kind.
// Unrecognized names report false.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return KindUserDefined, false
}

// ClassifyKind reports the structural variant of s. It is total: a nil schema
// and any Schema implementation defined outside this package classify as
// KindUserDefined, whatever their own Kind method reports.
func ClassifyKind(s Schema) Kind {
	switch s.(type) {
	case *Any:
		return KindAny
	case *Unknown:
		return KindUnknown
	case *Never:
		return KindNever
	case *Null:
		return KindNull
	case *Undefined:
		return KindUndefined
	case *Void:
		return KindVoid
	case *Boolean:
		return KindBoolean
	case *Number:
		return KindNumber
	case *Integer:
		return KindInteger
	case *String:
		return KindString
	case *Literal:
		return KindLiteral
	case *Array:
		return KindArray
	case *Tuple:
		return KindTuple
	case *Object:
		return KindObject
	case *Record:
		return KindRecord
	case *Union:
		return KindUnion
	case *Intersect:
		return KindIntersect
	case *Function:
		return KindFunction
	case *Constructor:
		return KindConstructor
	case *Promise:
		return KindPromise
	case *Date:
		return KindDate
	case *Uint8Array:
		return KindUint8Array
	case *Ref:
		return KindRef
	case *Self:
		return KindSelf
	default:
		return KindUserDefined
	}
}

// IsReference reports whether s is a Ref or Self node.
func IsReference(s Schema) bool {
	k := ClassifyKind(s)
	return k == KindRef || k == KindSelf
}
