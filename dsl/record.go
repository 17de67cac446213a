package dsl

import (
	"fmt"
	"strconv"

	"github.com/reoring/structural/schema"
)

// Record returns a record with an explicit key pattern. The pattern should be
// one of schema.PatternStringKey, schema.PatternNumberKey or a
// schema.LiteralPattern alternation.
func Record(pattern string, value schema.Schema) *schema.Record {
	return &schema.Record{Pattern: pattern, Value: value}
}

// RecordOf derives a record from a key type. String keys map to the string
// pattern, Number and Integer keys to the non-negative integer pattern. A
// literal or union of literals produces an Object with one property per key,
// hinted as a record.
func RecordOf(key, value schema.Schema) (schema.Schema, error) {
	switch k := key.(type) {
	case *schema.String:
		return Record(schema.PatternStringKey, value), nil
	case *schema.Number, *schema.Integer:
		return Record(schema.PatternNumberKey, value), nil
	case *schema.Literal:
		return recordObject([]schema.Schema{k}, value)
	case *schema.Union:
		return recordObject(k.Members, value)
	}
	return nil, fmt.Errorf("dsl: unsupported record key kind %s", schema.ClassifyKind(key))
}

// MustRecordOf is like RecordOf but panics on error.
func MustRecordOf(key, value schema.Schema) schema.Schema {
	s, err := RecordOf(key, value)
	if err != nil {
		panic(err)
	}
	return s
}

func recordObject(keys []schema.Schema, value schema.Schema) (schema.Schema, error) {
	b := Object().Hint(schema.HintRecord)
	for _, k := range keys {
		lit, ok := k.(*schema.Literal)
		if !ok {
			return nil, fmt.Errorf("dsl: record key union member must be a literal, got %s", schema.ClassifyKind(k))
		}
		name, err := literalKey(lit.Value)
		if err != nil {
			return nil, err
		}
		b.Field(name, schema.Clone(value))
	}
	return b.Build()
}

func literalKey(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("dsl: record key literal must be a string or number, got %T", v)
}
