package dsl_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	g "github.com/reoring/structural/dsl"
	"github.com/reoring/structural/schema"
)

func TestRecordOf(t *testing.T) {
	s, err := g.RecordOf(g.String(), g.Number())
	if err != nil {
		t.Fatalf("RecordOf(String): %v", err)
	}
	if r := s.(*schema.Record); r.Pattern != schema.PatternStringKey {
		t.Fatalf("pattern = %q", r.Pattern)
	}
	s, err = g.RecordOf(g.Integer(), g.Number())
	if err != nil {
		t.Fatalf("RecordOf(Integer): %v", err)
	}
	if r := s.(*schema.Record); r.Pattern != schema.PatternNumberKey {
		t.Fatalf("pattern = %q", r.Pattern)
	}

	s, err = g.RecordOf(g.Enum("a", 1), g.Boolean())
	if err != nil {
		t.Fatalf("RecordOf(literals): %v", err)
	}
	want := &schema.Object{
		Properties: []schema.Property{
			{Name: "a", Schema: &schema.Boolean{}},
			{Name: "1", Schema: &schema.Boolean{}},
		},
		Hint: schema.HintRecord,
	}
	if diff := cmp.Diff(schema.Schema(want), s); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordOf_RejectsOtherKeys(t *testing.T) {
	if _, err := g.RecordOf(g.Boolean(), g.Number()); err == nil {
		t.Fatalf("expected error for boolean keys")
	}
	if _, err := g.RecordOf(g.Union(g.Literal("a"), g.String()), g.Number()); err == nil {
		t.Fatalf("expected error for a non-literal union member")
	}
	if _, err := g.RecordOf(g.Literal(true), g.Number()); err == nil {
		t.Fatalf("expected error for a boolean literal key")
	}
}
