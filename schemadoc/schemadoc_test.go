package schemadoc_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/reoring/structural"
	"github.com/reoring/structural/dsl"
	"github.com/reoring/structural/schema"
	"github.com/reoring/structural/schemadoc"
)

const nodeJSON = `{
  "kind": "Object",
  "$id": "Node",
  "properties": {
    "value": {"kind": "Number"},
    "label": {"kind": "Union", "anyOf": [{"kind": "Literal", "const": "a"}, {"kind": "Literal", "const": 2}]},
    "next": {"kind": "Self", "$ref": "Node"}
  },
  "required": ["value", "label"]
}`

func TestLoad_JSON(t *testing.T) {
	doc, d, err := schemadoc.Load([]byte(nodeJSON), schemadoc.FormatJSON, schemadoc.DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", d.Warnings())
	}
	want := &schema.Object{
		Meta: schema.Meta{ID: "Node"},
		Properties: []schema.Property{
			{Name: "value", Schema: &schema.Number{}},
			{Name: "label", Schema: &schema.Union{Members: []schema.Schema{&schema.Literal{Value: "a"}, &schema.Literal{Value: 2.0}}}},
			{Name: "next", Schema: &schema.Self{Target: "Node"}, Optional: true},
		},
	}
	if diff := cmp.Diff(schema.Schema(want), doc.Root); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	got, err := structural.Extends(doc.Root, doc.Root)
	if err != nil || got != structural.True {
		t.Fatalf("loaded recursive schema should extend itself: %s %v", got, err)
	}
}

func TestLoad_JSONDuplicateKey(t *testing.T) {
	_, _, err := schemadoc.Load([]byte(`{"kind":"Object","properties":{"a":{"kind":"String"},"a":{"kind":"Number"}}}`), schemadoc.FormatJSON, schemadoc.DefaultOptions())
	var de *schemadoc.DuplicateKeyError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateKeyError, got %T %v", err, err)
	}
	if de.Key != "a" || de.Path != "/properties" {
		t.Fatalf("unexpected duplicate %#v", de)
	}
}

func TestLoad_Truncated(t *testing.T) {
	if _, _, err := schemadoc.Load([]byte(`{"kind":"Object","properties":{`), schemadoc.FormatJSON, schemadoc.DefaultOptions()); err == nil {
		t.Fatalf("expected an error for truncated input")
	}
}

func TestLoadAllFile_YAMLBundle(t *testing.T) {
	docs, d, err := schemadoc.LoadAllFile("testdata/user.yaml", schemadoc.DefaultOptions())
	if err != nil {
		t.Fatalf("LoadAllFile: %v", err)
	}
	if d.HasWarnings() {
		t.Fatalf("unexpected warnings: %v", d.Warnings())
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	user := docs[0]
	if len(user.Definitions) != 1 || user.Definitions[0].SchemaID() != "UserRef" {
		t.Fatalf("unexpected definitions %#v", user.Definitions)
	}
	id, _ := user.Root.(*schema.Object).Property("id")
	if !id.Readonly || id.Optional {
		t.Fatalf("id should be readonly and required: %#v", id)
	}

	c := structural.New(structural.Options{Definitions: schemadoc.Definitions(docs...)})
	got, err := c.Extends(user.Root, docs[1].Root)
	if err != nil {
		t.Fatalf("Extends: %v", err)
	}
	if got != structural.True {
		t.Fatalf("user should extend {id}: %s", got)
	}
}

func TestLoad_YAMLDuplicateKey(t *testing.T) {
	_, _, err := schemadoc.Load([]byte("kind: Object\nproperties:\n  a:\n    kind: String\n  a:\n    kind: Number\n"), schemadoc.FormatYAML, schemadoc.DefaultOptions())
	var de *schemadoc.DuplicateKeyError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateKeyError, got %T %v", err, err)
	}
	if de.Key != "a" || de.FirstLine != 3 || de.Line != 5 {
		t.Fatalf("unexpected positions %#v", de)
	}
	if !strings.Contains(de.Error(), "5:") {
		t.Fatalf("message should carry the position: %q", de.Error())
	}
}

func TestLoad_UnknownKindAndKeys(t *testing.T) {
	in := []byte(`{"kind":"Money","currency":"EUR"}`)
	doc, d, err := schemadoc.Load(in, schemadoc.FormatJSON, schemadoc.DefaultOptions())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if u, ok := doc.Root.(*schema.UserDefined); !ok || u.Tag != "Money" {
		t.Fatalf("expected UserDefined Money, got %#v", doc.Root)
	}
	if len(d.Warnings()) != 2 {
		t.Fatalf("expected kind and key warnings, got %v", d.Warnings())
	}

	strict := schemadoc.Options{StrictKeys: true}
	_, _, err = schemadoc.Load(in, schemadoc.FormatJSON, strict)
	var ie *schemadoc.InvalidDocumentError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidDocumentError, got %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing kind":      `{"properties":{}}`,
		"literal object":    `{"kind":"Literal","const":{}}`,
		"two patterns":      `{"kind":"Record","patternProperties":{"^.*$":{"kind":"String"},"^a$":{"kind":"String"}}}`,
		"ref without $ref":  `{"kind":"Ref"}`,
		"scalar root":       `"String"`,
		"bad minItems":      `{"kind":"Tuple","items":[],"minItems":-1}`,
		"bad required list": `{"kind":"Object","required":"a"}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := schemadoc.Load([]byte(in), schemadoc.FormatJSON, schemadoc.DefaultOptions())
			var ie *schemadoc.InvalidDocumentError
			if !errors.As(err, &ie) {
				t.Fatalf("expected InvalidDocumentError, got %v", err)
			}
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	node := dsl.Recursive("Node", func(self schema.Schema) schema.Schema {
		return dsl.Object().
			Field("value", dsl.Union(dsl.Literal("a"), dsl.Literal(1), dsl.Literal(true))).
			Field("tags", dsl.Record(schema.PatternStringKey, dsl.Array(dsl.String()))).Readonly().
			Field("call", dsl.Function([]schema.Schema{dsl.Tuple(dsl.Date(), dsl.Uint8Array())}, dsl.Promise(dsl.Void()))).Optional().
			Field("next", self).Optional().
			Closed().
			MustBuild()
	})
	defs := []schema.Schema{dsl.WithID(dsl.Intersect(dsl.Null(), dsl.UserDefined("Money")), "Extra")}
	doc := &schemadoc.Document{Root: node, Definitions: defs}
	for _, format := range []schemadoc.Format{schemadoc.FormatJSON, schemadoc.FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := schemadoc.Marshal(doc, format)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			back, d, err := schemadoc.Load(data, format, schemadoc.DefaultOptions())
			if err != nil {
				t.Fatalf("Load: %v\n%s", err, data)
			}
			if d.HasWarnings() {
				t.Fatalf("unexpected warnings: %v", d.Warnings())
			}
			if diff := cmp.Diff(doc, back); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s\n%s", diff, data)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]schemadoc.Format{"a.yaml": schemadoc.FormatYAML, "b.YML": schemadoc.FormatYAML, "c.json": schemadoc.FormatJSON, "d": schemadoc.FormatJSON} {
		if got := schemadoc.FormatFromPath(path); got != want {
			t.Fatalf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}
