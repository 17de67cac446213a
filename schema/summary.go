package schema

import (
	"fmt"
	"strings"
)

// Summary returns a compact one-line rendering of s for logs and CLI output.
// Nesting deeper than maxDepth is elided.
func Summary(s Schema, maxDepth int) string {
	var b strings.Builder
	writeSummary(&b, s, maxDepth)
	return b.String()
}

func writeSummary(b *strings.Builder, s Schema, depth int) {
	if s == nil {
		b.WriteString("<nil>")
		return
	}
	if depth < 0 {
		b.WriteString("...")
		return
	}
	switch t := s.(type) {
	case *Literal:
		if str, ok := t.Value.(string); ok {
			fmt.Fprintf(b, "%q", str)
			return
		}
		fmt.Fprint(b, t.Value)
	case *Array:
		writeSummary(b, t.Items, depth-1)
		b.WriteString("[]")
	case *Tuple:
		writeList(b, "[", t.Items, ", ", "]", depth)
	case *Object:
		b.WriteByte('{')
		for i, p := range t.Properties {
			if i > 0 {
				b.WriteString(", ")
			}
			if p.Readonly {
				b.WriteString("readonly ")
			}
			b.WriteString(p.Name)
			if p.Optional {
				b.WriteByte('?')
			}
			b.WriteString(": ")
			writeSummary(b, p.Schema, depth-1)
		}
		b.WriteByte('}')
	case *Record:
		b.WriteString("Record<")
		writeSummary(b, t.KeySchema(), depth-1)
		b.WriteString(", ")
		writeSummary(b, t.Value, depth-1)
		b.WriteByte('>')
	case *Union:
		writeList(b, "(", t.Members, " | ", ")", depth)
	case *Intersect:
		writeList(b, "(", t.Members, " & ", ")", depth)
	case *Function:
		writeList(b, "(", t.Parameters, ", ", ") => ", depth)
		writeSummary(b, t.Returns, depth-1)
	case *Constructor:
		writeList(b, "new (", t.Parameters, ", ", ") => ", depth)
		writeSummary(b, t.Returns, depth-1)
	case *Promise:
		b.WriteString("Promise<")
		writeSummary(b, t.Item, depth-1)
		b.WriteByte('>')
	case *Ref:
		b.WriteString("Ref<" + t.Target + ">")
	case *Self:
		b.WriteString("Self<" + t.Target + ">")
	case *UserDefined:
		b.WriteString("UserDefined<" + t.Tag + ">")
	default:
		b.WriteString(ClassifyKind(s).String())
	}
}

func writeList(b *strings.Builder, open string, items []Schema, sep, closing string, depth int) {
	b.WriteString(open)
	for i, it := range items {
		if i > 0 {
			b.WriteString(sep)
		}
		writeSummary(b, it, depth-1)
	}
	b.WriteString(closing)
}
