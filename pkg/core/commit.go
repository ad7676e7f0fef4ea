package core

import "github.com/zauni/commitguard/pkg/source"

// Commit is the structured decomposition of a commit message.
//
// Type and Subject are always present and non-empty. Header covers the whole
// first line without its terminator. Body and Footer are nil when absent;
// each is separated from what precedes it by exactly one blank line.
type Commit struct {
	Header  source.Span
	Type    source.Span
	Scope   *source.Span
	Subject source.Span
	Body    *source.Span
	Footer  *source.Span

	// Raw is the verbatim input the spans refer to.
	Raw string
}

// HasScope reports whether the header carried a scope.
func (c *Commit) HasScope() bool { return c.Scope != nil }

// HasBody reports whether the message has a body.
func (c *Commit) HasBody() bool { return c.Body != nil }

// HasFooter reports whether the message has a footer.
func (c *Commit) HasFooter() bool { return c.Footer != nil }

// Spans returns the field spans that are present, in source order.
// Header is omitted since it contains type, scope and subject.
func (c *Commit) Spans() []source.Span {
	spans := []source.Span{c.Type}
	if c.Scope != nil {
		spans = append(spans, *c.Scope)
	}
	spans = append(spans, c.Subject)
	if c.Body != nil {
		spans = append(spans, *c.Body)
	}
	if c.Footer != nil {
		spans = append(spans, *c.Footer)
	}
	return spans
}
