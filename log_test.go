package structural

import (
	"bytes"
	"testing"
	"time"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]LogLevel{"debug": LevelDebug, "INFO": LevelInfo, "warning": LevelWarn, "error": LevelError, "bogus": LevelWarn}
	for in, want := range cases {
		if got := ParseLogLevel(in); got != want {
			t.Fatalf("ParseLogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestTextLogger_FiltersAndFormats(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LevelInfo, &buf).(*textLogger)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	l.Debugf("hidden")
	l.With(map[string]any{"op": "extends", "left": "a b"}).Infof("compared %d", 3)

	got := buf.String()
	want := "[INFO] 2024-01-02T03:04:05Z compared 3 left=\"a b\" op=extends\n"
	if got != want {
		t.Fatalf("unexpected log output:\n got %q\nwant %q", got, want)
	}
}

func TestNopLogger(t *testing.T) {
	l := NopLogger()
	l.Errorf("ignored")
	if l.With(map[string]any{"k": 1}) == nil {
		t.Fatalf("With must return a logger")
	}
}

func TestResult_String(t *testing.T) {
	for r, want := range map[Result]string{True: "true", False: "false", Union: "union", Result(9): "unknown"} {
		if got := r.String(); got != want {
			t.Fatalf("Result(%d).String() = %q, want %q", r, got, want)
		}
	}
}

func TestNew_NormalizesOptions(t *testing.T) {
	c := New(Options{})
	o := c.Options()
	if o.MaxDepth != DefaultMaxDepth {
		t.Fatalf("MaxDepth = %d, want %d", o.MaxDepth, DefaultMaxDepth)
	}
	if o.Logger == nil {
		t.Fatalf("expected a default logger")
	}
}
