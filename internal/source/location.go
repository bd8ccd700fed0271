// Package source provides the line/column position information that every
// AST node carries back to the original program text.
package source

import "fmt"

// Location is a single point in source text. Lines and columns are 1-based;
// the zero value (0,0) is the invalid sentinel used by synthetic nodes that
// have no corresponding text.
type Location struct {
	Line   uint32
	Column uint32
}

// Invalid is the (0,0) sentinel location.
var Invalid = Location{}

// IsValid reports whether the location is anything other than the sentinel.
func (l Location) IsValid() bool {
	return l != Invalid
}

func (l Location) String() string {
	if !l.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Range is an ordered pair of locations delimiting a node's extent in the
// source text.
type Range struct {
	Start Location
	End   Location
}

// IsValid reports whether both endpoints are valid.
func (r Range) IsValid() bool {
	return r.Start.IsValid() && r.End.IsValid()
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// Span builds a Range from two locations.
func Span(start, end Location) Range {
	return Range{Start: start, End: end}
}
