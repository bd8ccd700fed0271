// Package diagnostic formats analysis and codec errors with source
// context for terminal output: a position header, the offending source
// line, and a caret pointing at the column.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/cwbudde/shard/internal/source"
)

// Diagnostic pairs an error message with the source range it concerns.
// Source and File may be empty when no source text is available (a
// codec or runtime error has no script to quote).
type Diagnostic struct {
	Message string
	Source  string
	File    string
	Range   source.Range
}

// New returns a Diagnostic for message at rng, optionally quoting src
// (the full source text) and file (its name) for context.
func New(rng source.Range, message, src, file string) *Diagnostic {
	return &Diagnostic{Message: message, Source: src, File: file, Range: rng}
}

func (d *Diagnostic) Error() string { return d.Format(false) }

// Format renders the diagnostic: a header with file and position, the
// source line if available, a caret under the start column, then the
// message. color wraps the caret and message in ANSI bold/red codes.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	if d.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%s\n", d.File, d.Range.Start)
	} else {
		fmt.Fprintf(&sb, "Error at %s\n", d.Range.Start)
	}

	if line := d.sourceLine(int(d.Range.Start.Line)); line != "" {
		prefix := fmt.Sprintf("%4d | ", d.Range.Start.Line)
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+int(d.Range.Start.Column)-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}
	return sb.String()
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	if d.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(d.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatAll renders a batch of diagnostics, numbering them when there is
// more than one.
func FormatAll(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d error(s):\n\n", len(diags))
	for i, d := range diags {
		fmt.Fprintf(&sb, "[%d of %d]\n", i+1, len(diags))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
