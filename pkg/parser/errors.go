package parser

import (
	"fmt"

	"github.com/zauni/commitguard/pkg/source"
)

// Error represents a grammar violation with position information.
// A parse error is fatal: no Commit is produced.
type Error struct {
	Offset  int             // byte offset of the violation
	Pos     source.Position // resolved line and column
	Message string
	Source  string // the complete input
}

func (e *Error) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// Span returns a zero-width span at the violation.
func (e *Error) Span() source.Span {
	return source.NewSpan(e.Source, e.Offset, e.Offset)
}

// Common error messages
const (
	ErrEmptyMessage     = "commit message is empty"
	ErrMissingType      = "missing commit type"
	ErrUnclosedScope    = "scope is not closed, expected ')'"
	ErrEmptyScope       = "scope must not be empty"
	ErrMissingColon     = "expected ':' after type"
	ErrMissingSpace     = "expected a space after ':'"
	ErrEmptySubject     = "missing subject"
	ErrCarriageReturn   = "unexpected carriage return in header"
	ErrMissingBlankLine = "expected a blank line after the header"
	ErrMissingBody      = "expected body after blank line"
	ErrExtraBlankLine   = "expected exactly one blank line"
	ErrMissingFooter    = "expected footer after blank line"
)
