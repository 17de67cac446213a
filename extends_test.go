package structural_test

import (
	"testing"

	"github.com/reoring/structural"
	"github.com/reoring/structural/dsl"
	"github.com/reoring/structural/schema"
)

func extends(t *testing.T, l, r schema.Schema) structural.Result {
	t.Helper()
	res, err := structural.Extends(l, r)
	if err != nil {
		t.Fatalf("Extends(%s, %s): unexpected error: %v", schema.Summary(l, 3), schema.Summary(r, 3), err)
	}
	return res
}

func obj(fields ...any) *schema.Object {
	b := dsl.Object()
	for i := 0; i+1 < len(fields); i += 2 {
		b.Field(fields[i].(string), fields[i+1].(schema.Schema))
	}
	return b.MustBuild()
}

func TestExtends_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		left  schema.Schema
		right schema.Schema
		want  structural.Result
	}{
		{
			name:  "optional right property may be missing on left",
			left:  obj("a", dsl.Number()),
			right: dsl.Object().Field("a", dsl.Number()).Field("b", dsl.String()).Optional().MustBuild(),
			want:  structural.True,
		},
		{
			name:  "optional left cannot satisfy required right",
			left:  dsl.Object().Field("a", dsl.Number()).Optional().MustBuild(),
			right: obj("a", dsl.Number()),
			want:  structural.False,
		},
		{
			name:  "literal union into primitive union",
			left:  dsl.Union(dsl.Literal("x"), dsl.Literal(1)),
			right: dsl.Union(dsl.String(), dsl.Number()),
			want:  structural.True,
		},
		{
			name:  "any against closed object is ambiguous",
			left:  dsl.Any(),
			right: obj("a", dsl.Number()),
			want:  structural.Union,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extends(t, tc.left, tc.right); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestExtends_KindRules(t *testing.T) {
	lengthShape := obj("length", dsl.Number())
	stringKeyed := dsl.Record(schema.PatternStringKey, dsl.Number())
	numberKeyed := dsl.Record(schema.PatternNumberKey, dsl.Number())
	abKeyed := dsl.Record(schema.LiteralPattern("a", "b"), dsl.Number())

	cases := []struct {
		name  string
		left  schema.Schema
		right schema.Schema
		want  structural.Result
	}{
		// primitives
		{"string/string", dsl.String(), dsl.String(), structural.True},
		{"string/number", dsl.String(), dsl.Number(), structural.False},
		{"number/integer", dsl.Number(), dsl.Integer(), structural.True},
		{"integer/number", dsl.Integer(), dsl.Number(), structural.True},
		{"undefined/void", dsl.Undefined(), dsl.Void(), structural.True},
		{"void/undefined", dsl.Void(), dsl.Undefined(), structural.True},
		{"null/null", dsl.Null(), dsl.Null(), structural.True},
		{"null/undefined", dsl.Null(), dsl.Undefined(), structural.False},
		{"null/empty object", dsl.Null(), dsl.Empty(), structural.False},
		{"boolean/empty object", dsl.Boolean(), dsl.Empty(), structural.True},
		{"string/empty object", dsl.String(), dsl.Empty(), structural.True},
		{"string/length shape", dsl.String(), lengthShape, structural.True},
		{"string/string length", dsl.String(), obj("length", dsl.String()), structural.False},
		{"number/length shape", dsl.Number(), lengthShape, structural.False},
		{"string/string keyed record", dsl.String(), stringKeyed, structural.True},
		{"number/string keyed record", dsl.Number(), stringKeyed, structural.False},
		{"number/number keyed record", dsl.Number(), numberKeyed, structural.True},
		{"unknown/string", dsl.Unknown(), dsl.String(), structural.False},
		{"string/unknown", dsl.String(), dsl.Unknown(), structural.True},
		{"string/any", dsl.String(), dsl.Any(), structural.True},
		{"date/date", dsl.Date(), dsl.Date(), structural.True},
		{"date/empty object", dsl.Date(), dsl.Empty(), structural.True},
		{"date/string", dsl.Date(), dsl.String(), structural.False},
		{"uint8array/length shape", dsl.Uint8Array(), lengthShape, structural.True},
		{"uint8array/number record", dsl.Uint8Array(), numberKeyed, structural.True},
		{"uint8array/string values", dsl.Uint8Array(), dsl.Record(schema.PatternNumberKey, dsl.String()), structural.False},

		// literals
		{"literal/equal", dsl.Literal("a"), dsl.Literal("a"), structural.True},
		{"literal/different", dsl.Literal("a"), dsl.Literal("b"), structural.False},
		{"literal number/literal string", dsl.Literal(1), dsl.Literal("1"), structural.False},
		{"literal int/literal float", dsl.Literal(1), dsl.Literal(1.0), structural.True},
		{"literal bool/boolean", dsl.Literal(true), dsl.Boolean(), structural.True},
		{"literal number/integer", dsl.Literal(1), dsl.Integer(), structural.True},
		{"literal string/number", dsl.Literal("1"), dsl.Number(), structural.False},
		{"literal string/length shape", dsl.Literal("abc"), lengthShape, structural.True},
		{"literal number/length shape", dsl.Literal(3), lengthShape, structural.False},
		{"literal key/literal record", dsl.Literal("a"), abKeyed, structural.True},
		{"literal missing key/literal record", dsl.Literal("c"), abKeyed, structural.False},

		// sequences
		{"array/array", dsl.Array(dsl.String()), dsl.Array(dsl.String()), structural.True},
		{"array/array mismatch", dsl.Array(dsl.String()), dsl.Array(dsl.Number()), structural.False},
		{"array/length shape", dsl.Array(dsl.Number()), lengthShape, structural.True},
		{"array/number record", dsl.Array(dsl.Number()), numberKeyed, structural.True},
		{"array/literal record", dsl.Array(dsl.Number()), abKeyed, structural.False},
		{"tuple/array of union", dsl.Tuple(dsl.String(), dsl.Number()), dsl.Array(dsl.Union(dsl.String(), dsl.Number())), structural.True},
		{"tuple/array mismatch", dsl.Tuple(dsl.String(), dsl.Number()), dsl.Array(dsl.String()), structural.False},
		{"empty tuple/array", dsl.Tuple(), dsl.Array(dsl.String()), structural.True},
		{"tuple/tuple", dsl.Tuple(dsl.String()), dsl.Tuple(dsl.String()), structural.True},
		{"tuple/tuple arity", dsl.Tuple(dsl.String()), dsl.Tuple(dsl.String(), dsl.Number()), structural.False},
		{"tuple/length shape", dsl.Tuple(dsl.String()), lengthShape, structural.True},
		{"array/tuple", dsl.Array(dsl.String()), dsl.Tuple(dsl.String()), structural.False},

		// callables
		{"function/more right params", dsl.Function([]schema.Schema{dsl.String()}, dsl.Number()), dsl.Function([]schema.Schema{dsl.String(), dsl.Number()}, dsl.Number()), structural.True},
		{"function/fewer right params", dsl.Function([]schema.Schema{dsl.String(), dsl.Number()}, dsl.Number()), dsl.Function([]schema.Schema{dsl.String()}, dsl.Number()), structural.False},
		{"function/contravariant params", dsl.Function([]schema.Schema{dsl.String()}, dsl.Number()), dsl.Function([]schema.Schema{dsl.Literal("a")}, dsl.Number()), structural.True},
		{"function/narrower params", dsl.Function([]schema.Schema{dsl.Literal("a")}, dsl.Number()), dsl.Function([]schema.Schema{dsl.String()}, dsl.Number()), structural.False},
		{"function/covariant returns", dsl.Function(nil, dsl.Literal(1)), dsl.Function(nil, dsl.Number()), structural.True},
		{"function/wider returns", dsl.Function(nil, dsl.Number()), dsl.Function(nil, dsl.Literal(1)), structural.False},
		{"function/empty object", dsl.Function(nil, dsl.Number()), dsl.Empty(), structural.True},
		{"constructor/function", dsl.Constructor(nil, dsl.Number()), dsl.Function(nil, dsl.Number()), structural.False},
		{"constructor/constructor", dsl.Constructor([]schema.Schema{dsl.String()}, obj("a", dsl.Number())), dsl.Constructor([]schema.Schema{dsl.String()}, dsl.Empty()), structural.True},
		{"constructor/empty object", dsl.Constructor(nil, dsl.Number()), dsl.Empty(), structural.True},
		{"promise/promise", dsl.Promise(dsl.String()), dsl.Promise(dsl.String()), structural.True},
		{"promise/promise mismatch", dsl.Promise(dsl.String()), dsl.Promise(dsl.Number()), structural.False},
		{"promise/thenable", dsl.Promise(dsl.Number()), obj("then", dsl.Function(nil, dsl.Any())), structural.True},
		{"promise/then string", dsl.Promise(dsl.Number()), obj("then", dsl.String()), structural.False},

		// objects and records
		{"object/superset", obj("a", dsl.Number(), "b", dsl.String()), obj("a", dsl.Number()), structural.True},
		{"object/missing required", obj("a", dsl.Number()), obj("a", dsl.Number(), "b", dsl.String()), structural.False},
		{"object/property mismatch", obj("a", dsl.Number()), obj("a", dsl.String()), structural.False},
		{"object/string record", obj("a", dsl.Number(), "b", dsl.Number()), stringKeyed, structural.True},
		{"object/string record mismatch", obj("a", dsl.String()), stringKeyed, structural.False},
		{"object/literal record missing key", obj("a", dsl.Number()), abKeyed, structural.False},
		{"object/literal record", obj("a", dsl.Number(), "b", dsl.Number()), abKeyed, structural.True},
		{"object/number record ignores names", obj("a", dsl.String(), "0", dsl.Number()), numberKeyed, structural.True},
		{"object/array", obj("length", dsl.Number()), dsl.Array(dsl.Number()), structural.False},
		{"closed empty/optional property", dsl.Object().Closed().MustBuild(), dsl.Object().Field("a", dsl.Number()).Optional().MustBuild(), structural.False},
		{"closed empty/required property", dsl.Object().Closed().MustBuild(), obj("a", dsl.Number()), structural.False},
		{"closed empty/empty", dsl.Object().Closed().MustBuild(), dsl.Empty(), structural.True},
		{"closed empty/closed empty", dsl.Object().Closed().MustBuild(), dsl.Object().Closed().MustBuild(), structural.True},
		{"closed object/optional property", dsl.Object().Field("b", dsl.String()).Closed().MustBuild(), dsl.Object().Field("a", dsl.Number()).Optional().MustBuild(), structural.True},
		{"record/empty object", stringKeyed, dsl.Empty(), structural.True},
		{"record/object accepted key", stringKeyed, obj("a", dsl.Number()), structural.True},
		{"record/object rejected key", numberKeyed, obj("a", dsl.Number()), structural.False},
		{"record/object rejected optional key", numberKeyed, dsl.Object().Field("a", dsl.Number()).Optional().MustBuild(), structural.True},
		{"record/object value mismatch", dsl.Record(schema.PatternStringKey, dsl.String()), obj("a", dsl.Number()), structural.False},
		{"record/record-hinted object", dsl.Record(schema.PatternStringKey, dsl.String()), dsl.MustRecordOf(dsl.Literal("a"), dsl.Number()), structural.True},
		{"record/record", stringKeyed, stringKeyed, structural.True},
		{"number record/string record", numberKeyed, stringKeyed, structural.True},
		{"string record/number record", stringKeyed, numberKeyed, structural.False},
		{"literal record/narrower literal record", abKeyed, dsl.Record(schema.LiteralPattern("a"), dsl.Number()), structural.True},
		{"literal record/wider literal record", dsl.Record(schema.LiteralPattern("a"), dsl.Number()), abKeyed, structural.False},
		{"numeric literal record/number record", dsl.Record(schema.LiteralPattern("0", "1"), dsl.Number()), numberKeyed, structural.True},
		{"nan literal/literal record", dsl.Literal("nan"), dsl.Record(schema.LiteralPattern("nan", "b"), dsl.Number()), structural.True},
		{"inf literal/literal record", dsl.Literal("inf"), dsl.Record(schema.LiteralPattern("inf", "b"), dsl.Number()), structural.True},
		{"numeric literal/literal record", dsl.Literal(1), dsl.Record(schema.LiteralPattern("1", "b"), dsl.Number()), structural.True},
		{"record/record value mismatch", stringKeyed, dsl.Record(schema.PatternStringKey, dsl.String()), structural.False},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extends(t, tc.left, tc.right); got != tc.want {
				t.Fatalf("Extends(%s, %s) = %s, want %s", schema.Summary(tc.left, 3), schema.Summary(tc.right, 3), got, tc.want)
			}
		})
	}
}

func TestExtends_DistributionOrder(t *testing.T) {
	a := obj("a", dsl.Number())
	b := obj("b", dsl.String())
	ab := obj("a", dsl.Number(), "b", dsl.String())

	cases := []struct {
		name  string
		left  schema.Schema
		right schema.Schema
		want  structural.Result
	}{
		{"object/intersect of parts", ab, dsl.Intersect(a, b), structural.True},
		{"object/intersect missing part", a, dsl.Intersect(a, b), structural.False},
		{"intersect/member", dsl.Intersect(a, b), a, structural.True},
		{"intersect/union", dsl.Intersect(a, b), dsl.Union(dsl.String(), b), structural.True},
		{"union/union", dsl.Union(dsl.String(), dsl.Number()), dsl.Union(dsl.Number(), dsl.String(), dsl.Boolean()), structural.True},
		{"union/narrower union", dsl.Union(dsl.String(), dsl.Boolean()), dsl.Union(dsl.String(), dsl.Number()), structural.False},
		{"empty union/anything", &schema.Union{}, dsl.String(), structural.True},
		{"string/empty union", dsl.String(), &schema.Union{}, structural.False},
		{"string/empty intersect", dsl.String(), &schema.Intersect{}, structural.True},
		{"never/string", dsl.Never(), dsl.String(), structural.True},
		// Never as the right operand places no constraint.
		{"string/never", dsl.String(), dsl.Never(), structural.True},
		{"object/never", a, dsl.Never(), structural.True},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extends(t, tc.left, tc.right); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestExtends_AnyLeft(t *testing.T) {
	cases := []struct {
		name  string
		right schema.Schema
		want  structural.Result
	}{
		{"string", dsl.String(), structural.True},
		{"unknown", dsl.Unknown(), structural.True},
		{"any", dsl.Any(), structural.True},
		{"literal", dsl.Literal("x"), structural.True},
		{"union with unknown", dsl.Union(dsl.Array(dsl.String()), dsl.Unknown()), structural.True},
		{"union of primitives", dsl.Union(dsl.String(), dsl.Number()), structural.True},
		{"union of shapes", dsl.Union(dsl.Empty(), dsl.Array(dsl.String())), structural.Union},
		{"intersect with shape", dsl.Intersect(dsl.String(), obj("a", dsl.Number())), structural.Union},
		{"array", dsl.Array(dsl.String()), structural.Union},
		{"tuple", dsl.Tuple(dsl.String()), structural.Union},
		{"uint8array", dsl.Uint8Array(), structural.Union},
		{"date", dsl.Date(), structural.Union},
		{"function", dsl.Function(nil, dsl.Void()), structural.Union},
		{"constructor", dsl.Constructor(nil, dsl.Empty()), structural.Union},
		{"never", dsl.Never(), structural.Union},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extends(t, dsl.Any(), tc.right); got != tc.want {
				t.Fatalf("Extends(Any, %s) = %s, want %s", schema.Summary(tc.right, 3), got, tc.want)
			}
		})
	}
}

func TestExtends_UnionResultPropagation(t *testing.T) {
	target := obj("a", dsl.Number())
	if got := extends(t, dsl.Union(dsl.Any(), target), target); got != structural.Union {
		t.Fatalf("union containing any: got %s, want union", got)
	}
	if got := extends(t, dsl.Union(dsl.Any(), dsl.String()), target); got != structural.False {
		t.Fatalf("false member dominates: got %s, want false", got)
	}
	// nested ambiguity counts as compatible
	if got := extends(t, obj("a", dsl.Any()), obj("a", dsl.Empty())); got != structural.True {
		t.Fatalf("nested any: got %s, want true", got)
	}
}

func TestExtends_NilChildrenAreUnknown(t *testing.T) {
	if got := extends(t, dsl.Array(dsl.String()), &schema.Array{}); got != structural.True {
		t.Fatalf("array of nil items: got %s, want true", got)
	}
	if got := extends(t, &schema.Promise{}, dsl.Promise(dsl.String())); got != structural.False {
		t.Fatalf("promise of nil item: got %s, want false", got)
	}
}
