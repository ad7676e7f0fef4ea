// Package parser decomposes a raw commit message into a span-tracked
// core.Commit.
//
// # Usage
//
//	commit, err := parser.Parse("feat(api): add endpoint\n\nbody text")
//	if err != nil {
//	    var perr *parser.Error
//	    errors.As(err, &perr) // perr.Pos locates the violation
//	}
//
// # Grammar Overview
//
//	commit  → header [ EOL ] | header EOL EOL body [ EOL EOL footer ] [ EOL ]
//	header  → type [ "(" scope ")" ] [ "!" ] ":" " " subject
//	type    → one or more characters except whitespace and ( ) : !
//	scope   → one or more characters except ) and line breaks
//	subject → remainder of the first line, trailing whitespace trimmed
//	body    → non-empty line, then lines up to the next blank line
//	footer  → non-empty line, then everything up to end of input
//	EOL     → "\n" | "\r\n"
//
// The parser is a single forward scan; it never backtracks.
package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/source"
)

// Parser scans a single commit message.
type Parser struct {
	input string
	pos   int // current byte offset
	lines *source.LineIndex
}

// NewParser creates a parser for the given commit message.
func NewParser(input string) *Parser {
	return &Parser{
		input: input,
		lines: source.NewLineIndex(input),
	}
}

// Parse decomposes raw into a Commit. The returned error is a *Error.
func Parse(raw string) (*core.Commit, error) {
	return NewParser(raw).Parse()
}

// Parse runs the parser over its whole input.
func (p *Parser) Parse() (*core.Commit, error) {
	if p.input == "" {
		return nil, p.errorAt(0, ErrEmptyMessage)
	}

	commit := &core.Commit{Raw: p.input}
	if err := p.parseHeader(commit); err != nil {
		return nil, err
	}

	// header [EOL]
	if p.atEnd() {
		return commit, nil
	}
	p.skipLineBreak()
	if p.atEnd() {
		return commit, nil
	}

	// blank line separating header and body
	if !p.skipLineBreak() {
		return nil, p.errorAt(p.pos, ErrMissingBlankLine)
	}
	if p.atEnd() {
		return nil, p.errorAt(p.pos, ErrMissingBody)
	}
	if p.atLineBreak() {
		return nil, p.errorAt(p.pos, ErrExtraBlankLine)
	}

	body, more := p.parseBody()
	commit.Body = &body
	if !more {
		return commit, nil
	}

	if p.atEnd() {
		return nil, p.errorAt(p.pos, ErrMissingFooter)
	}
	if p.atLineBreak() {
		return nil, p.errorAt(p.pos, ErrExtraBlankLine)
	}

	footer := p.parseFooter()
	commit.Footer = &footer
	return commit, nil
}

// ---------- Header ----------

func (p *Parser) parseHeader(c *core.Commit) error {
	lineEnd := strings.IndexByte(p.input, '\n')
	if lineEnd < 0 {
		lineEnd = len(p.input)
	}
	headerEnd := lineEnd
	if headerEnd > 0 && p.input[headerEnd-1] == '\r' {
		headerEnd--
	}
	if i := strings.IndexByte(p.input[:headerEnd], '\r'); i >= 0 {
		return p.errorAt(i, ErrCarriageReturn)
	}
	c.Header = source.NewSpan(p.input, 0, headerEnd)

	// type
	start := p.pos
	for p.pos < headerEnd {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isTypeRune(r) {
			break
		}
		p.pos += size
	}
	if p.pos == start {
		return p.errorAt(p.pos, ErrMissingType)
	}
	c.Type = source.NewSpan(p.input, start, p.pos)

	// scope
	if p.peekByte() == '(' {
		open := p.pos
		p.pos++
		closeIdx := strings.IndexByte(p.input[p.pos:headerEnd], ')')
		if closeIdx < 0 {
			return p.errorAt(open, ErrUnclosedScope)
		}
		if closeIdx == 0 {
			return p.errorAt(p.pos, ErrEmptyScope)
		}
		scope := source.NewSpan(p.input, p.pos, p.pos+closeIdx)
		c.Scope = &scope
		p.pos += closeIdx + 1
	}

	// breaking change marker is accepted but not retained
	if p.peekByte() == '!' {
		p.pos++
	}

	if p.pos >= headerEnd || p.input[p.pos] != ':' {
		return p.errorAt(p.pos, ErrMissingColon)
	}
	p.pos++
	if p.pos >= headerEnd || p.input[p.pos] != ' ' {
		return p.errorAt(p.pos, ErrMissingSpace)
	}
	p.pos++

	subjectEnd := p.pos + len(strings.TrimRightFunc(p.input[p.pos:headerEnd], unicode.IsSpace))
	if subjectEnd == p.pos {
		return p.errorAt(p.pos, ErrEmptySubject)
	}
	c.Subject = source.NewSpan(p.input, p.pos, subjectEnd)

	p.pos = lineEnd
	return nil
}

// isTypeRune reports whether r may appear in a commit type.
func isTypeRune(r rune) bool {
	switch r {
	case '(', ')', ':', '!':
		return false
	}
	return !unicode.IsSpace(r) && r != utf8.RuneError
}

// ---------- Body / Footer ----------

// parseBody consumes lines until a blank line or end of input. It reports
// whether a blank line was consumed, in which case a footer must follow.
func (p *Parser) parseBody() (source.Span, bool) {
	start := p.pos
	end := p.pos
	for !p.atEnd() {
		if p.atLineBreak() {
			p.skipLineBreak()
			return source.NewSpan(p.input, start, end), true
		}
		end = p.lineContentEnd()
		p.pos = end
		p.skipLineBreak()
	}
	return source.NewSpan(p.input, start, end), false
}

// parseFooter takes the remainder of the input, minus one trailing line break.
func (p *Parser) parseFooter() source.Span {
	end := len(p.input)
	switch {
	case strings.HasSuffix(p.input, "\r\n"):
		end -= 2
	case strings.HasSuffix(p.input, "\n"):
		end--
	}
	span := source.NewSpan(p.input, p.pos, end)
	p.pos = len(p.input)
	return span
}

// ---------- Scanner Helpers ----------

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.input)
}

func (p *Parser) peekByte() byte {
	if p.atEnd() {
		return 0
	}
	return p.input[p.pos]
}

// atLineBreak reports whether the current position starts with "\n" or "\r\n".
func (p *Parser) atLineBreak() bool {
	rest := p.input[p.pos:]
	return strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\r\n")
}

// skipLineBreak consumes one line break if present.
func (p *Parser) skipLineBreak() bool {
	rest := p.input[p.pos:]
	switch {
	case strings.HasPrefix(rest, "\n"):
		p.pos++
	case strings.HasPrefix(rest, "\r\n"):
		p.pos += 2
	default:
		return false
	}
	return true
}

// lineContentEnd returns the offset where the current line's content ends,
// excluding its terminator.
func (p *Parser) lineContentEnd() int {
	i := strings.IndexByte(p.input[p.pos:], '\n')
	if i < 0 {
		return len(p.input)
	}
	end := p.pos + i
	if end > p.pos && p.input[end-1] == '\r' {
		end--
	}
	return end
}

func (p *Parser) errorAt(offset int, msg string) *Error {
	return &Error{
		Offset:  offset,
		Pos:     p.lines.Position(offset),
		Message: msg,
		Source:  p.input,
	}
}
