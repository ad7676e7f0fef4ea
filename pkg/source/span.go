// Package source provides locations within a commit message: byte spans
// carrying their literal text, and line/column positions resolved from a
// line index.
package source

import (
	"fmt"
	"unicode/utf8"
)

// Span references a contiguous byte range of the original text along with
// its literal content. Spans are created by the parser and never mutated.
//
// Invariant: 0 <= Start <= End <= len(original) and original[Start:End] == Text.
type Span struct {
	Text  string // literal content of the range
	Start int    // inclusive byte offset
	End   int    // exclusive byte offset
}

// NewSpan slices text[start:end] into a Span.
// It panics if the range is out of bounds, like a slice expression would.
func NewSpan(text string, start, end int) Span {
	return Span{Text: text[start:end], Start: start, End: end}
}

// Len returns the span length in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// RuneLen returns the span length in characters.
func (s Span) RuneLen() int {
	return utf8.RuneCountInString(s.Text)
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Overlaps reports whether two non-empty spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}
	return s.Start < other.End && other.Start < s.End
}

// String returns a compact debug representation, e.g. `4-9 "scope"`.
func (s Span) String() string {
	return fmt.Sprintf("%d-%d %q", s.Start, s.End, s.Text)
}
