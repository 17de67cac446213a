package structural_test

import (
	"strconv"
	"testing"

	"github.com/reoring/structural"
	g "github.com/reoring/structural/dsl"
	"github.com/reoring/structural/schema"
)

// ---- Helpers ----

// wideObject returns an object with n required number properties.
func wideObject(tb testing.TB, n int) *schema.Object {
	tb.Helper()
	b := g.Object()
	for i := 0; i < n; i++ {
		b.Field("k"+strconv.Itoa(i), g.Number())
	}
	o, err := b.Build()
	if err != nil {
		tb.Fatalf("schema build failed: %v", err)
	}
	return o
}

// literalUnion returns a union of n string literals.
func literalUnion(n int) schema.Schema {
	values := make([]any, n)
	for i := range values {
		values[i] = "v" + strconv.Itoa(i)
	}
	return g.Enum(values...)
}

// linkedList builds a recursive list whose value type is value.
func linkedList(id string, value schema.Schema) schema.Schema {
	return g.Recursive(id, func(self schema.Schema) schema.Schema {
		return g.Object().Field("value", value).Field("next", self).Optional().MustBuild()
	})
}

func benchExtends(b *testing.B, left, right schema.Schema, want structural.Result) {
	b.Helper()
	c := structural.New(structural.Options{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := c.Extends(left, right)
		if err != nil {
			b.Fatal(err)
		}
		if res != want {
			b.Fatalf("result = %s, want %s", res, want)
		}
	}
}

// ---- Benchmarks ----

func Benchmark_Extends_Primitive(b *testing.B) {
	benchExtends(b, g.Literal("x"), g.String(), structural.True)
}

func Benchmark_Extends_WideObject_64(b *testing.B) {
	benchExtends(b, wideObject(b, 64), wideObject(b, 64), structural.True)
}

func Benchmark_Extends_WideObject_512(b *testing.B) {
	benchExtends(b, wideObject(b, 512), wideObject(b, 512), structural.True)
}

func Benchmark_Extends_UnionDistribution_64x64(b *testing.B) {
	u := literalUnion(64)
	benchExtends(b, u, u, structural.True)
}

func Benchmark_Extends_RecursiveList(b *testing.B) {
	benchExtends(b, linkedList("Narrow", g.Literal("a")), linkedList("Wide", g.String()), structural.True)
}

func Benchmark_Exclude_64(b *testing.B) {
	u := literalUnion(64)
	c := structural.New(structural.Options{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Exclude(u, g.Literal("v0")); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Extends_Parallel(b *testing.B) {
	left, right := linkedList("Narrow", g.Literal("a")), linkedList("Wide", g.String())
	c := structural.New(structural.Options{})
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := c.Extends(left, right); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
