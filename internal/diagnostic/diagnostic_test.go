package diagnostic

import (
	"strings"
	"testing"

	"github.com/cwbudde/shard/internal/source"
)

func TestFormatIncludesSourceLineAndCaret(t *testing.T) {
	rng := source.Span(source.Location{Line: 2, Column: 5}, source.Location{Line: 2, Column: 5})
	d := New(rng, "unresolved identifier: x", "int a = 1;\nreturn x;\n", "main.shard")

	out := d.Format(false)
	if !strings.Contains(out, "main.shard") {
		t.Errorf("Format() = %q, want file name present", out)
	}
	if !strings.Contains(out, "return x;") {
		t.Errorf("Format() = %q, want offending source line present", out)
	}
	if !strings.Contains(out, "unresolved identifier: x") {
		t.Errorf("Format() = %q, want message present", out)
	}
}

func TestFormatWithoutSourceOmitsSourceLine(t *testing.T) {
	d := New(source.Range{}, "truncated input", "", "")
	out := d.Format(false)
	if strings.Contains(out, "|") {
		t.Errorf("Format() = %q, want no source-line gutter when Source is empty", out)
	}
}

func TestFormatAllNumbersMultipleDiagnostics(t *testing.T) {
	d1 := New(source.Range{}, "first", "", "")
	d2 := New(source.Range{}, "second", "", "")
	out := FormatAll([]*Diagnostic{d1, d2}, false)
	if !strings.Contains(out, "[1 of 2]") || !strings.Contains(out, "[2 of 2]") {
		t.Errorf("FormatAll() = %q, want numbered entries", out)
	}
}

func TestFormatAllEmpty(t *testing.T) {
	if got := FormatAll(nil, false); got != "" {
		t.Errorf("FormatAll(nil) = %q, want empty string", got)
	}
}
