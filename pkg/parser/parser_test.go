package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/parser"
	"github.com/zauni/commitguard/pkg/source"
)

func text(s *source.Span) string {
	if s == nil {
		return "<nil>"
	}
	return s.Text
}

// assertSpansConsistent checks that every span slices back to its text and
// that header, body and footer do not overlap.
func assertSpansConsistent(t *testing.T, c *core.Commit) {
	t.Helper()

	all := append([]source.Span{c.Header}, c.Spans()...)
	for _, s := range all {
		require.True(t, 0 <= s.Start && s.Start <= s.End && s.End <= len(c.Raw), "span %s out of range", s)
		assert.Equal(t, c.Raw[s.Start:s.End], s.Text, "span %s", s)
		assert.NotEqual(t, byte('\r'), lastByte(s.Text), "span %s ends with carriage return", s)
	}

	blocks := []source.Span{c.Header}
	if c.Body != nil {
		blocks = append(blocks, *c.Body)
	}
	if c.Footer != nil {
		blocks = append(blocks, *c.Footer)
	}
	for i := range blocks {
		for j := i + 1; j < len(blocks); j++ {
			assert.False(t, blocks[i].Overlaps(blocks[j]), "%s overlaps %s", blocks[i], blocks[j])
		}
	}
}

func lastByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[len(s)-1]
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		typ     string
		scope   string
		subject string
		body    string
		footer  string
	}{
		{
			name:    "full message",
			input:   "feat(nice): add cool feature\n\nsome body\n\nsome footer",
			typ:     "feat",
			scope:   "nice",
			subject: "add cool feature",
			body:    "some body",
			footer:  "some footer",
		},
		{
			name:    "without scope",
			input:   "feat: add cool feature\n\nsome body\n\nsome footer",
			typ:     "feat",
			scope:   "<nil>",
			subject: "add cool feature",
			body:    "some body",
			footer:  "some footer",
		},
		{
			name:    "header only",
			input:   "feat(nice): add cool feature",
			typ:     "feat",
			scope:   "nice",
			subject: "add cool feature",
			body:    "<nil>",
			footer:  "<nil>",
		},
		{
			name:    "header and body",
			input:   "feat(nice): add cool feature\n\nsome body",
			typ:     "feat",
			scope:   "nice",
			subject: "add cool feature",
			body:    "some body",
			footer:  "<nil>",
		},
		{
			name:    "breaking marker",
			input:   "feat!: add cool feature\n\nsome body",
			typ:     "feat",
			scope:   "<nil>",
			subject: "add cool feature",
			body:    "some body",
			footer:  "<nil>",
		},
		{
			name:    "scope and breaking marker",
			input:   "feat(nice)!: add cool feature\n\nsome body",
			typ:     "feat",
			scope:   "nice",
			subject: "add cool feature",
			body:    "some body",
			footer:  "<nil>",
		},
		{
			name:    "trailing newline after header",
			input:   "fix: typo\n",
			typ:     "fix",
			scope:   "<nil>",
			subject: "typo",
			body:    "<nil>",
			footer:  "<nil>",
		},
		{
			name:    "trailing newline after footer",
			input:   "fix: typo\n\nbody\n\nRefs: #1\n",
			typ:     "fix",
			scope:   "<nil>",
			subject: "typo",
			body:    "body",
			footer:  "Refs: #1",
		},
		{
			name:    "multi-line body and footer",
			input:   "fix: typo\n\nb1\nb2\n\nf1\n\nf2\n",
			typ:     "fix",
			scope:   "<nil>",
			subject: "typo",
			body:    "b1\nb2",
			footer:  "f1\n\nf2",
		},
		{
			name:    "crlf line endings",
			input:   "feat: x\r\n\r\nline1\r\nline2\r\n\r\nfoot\r\n",
			typ:     "feat",
			scope:   "<nil>",
			subject: "x",
			body:    "line1\r\nline2",
			footer:  "foot",
		},
		{
			name:    "subject trailing whitespace trimmed",
			input:   "docs: update readme  \t\n",
			typ:     "docs",
			scope:   "<nil>",
			subject: "update readme",
			body:    "<nil>",
			footer:  "<nil>",
		},
		{
			name:    "scope with spaces and punctuation",
			input:   "chore(deps, ci): bump",
			typ:     "chore",
			scope:   "deps, ci",
			subject: "bump",
			body:    "<nil>",
			footer:  "<nil>",
		},
		{
			name:    "unicode",
			input:   "féat(ü): ä",
			typ:     "féat",
			scope:   "ü",
			subject: "ä",
			body:    "<nil>",
			footer:  "<nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parser.Parse(tt.input)
			require.NoError(t, err)
			require.NotNil(t, c)

			assert.Equal(t, tt.input, c.Raw)
			assert.Equal(t, tt.typ, c.Type.Text)
			assert.Equal(t, tt.scope, text(c.Scope))
			assert.Equal(t, tt.subject, c.Subject.Text)
			assert.Equal(t, tt.body, text(c.Body))
			assert.Equal(t, tt.footer, text(c.Footer))
			assertSpansConsistent(t, c)
		})
	}
}

func TestParse_Offsets(t *testing.T) {
	c, err := parser.Parse("feat(nice): add cool feature\n\nsome body\n\nsome footer")
	require.NoError(t, err)

	assert.Equal(t, source.Span{Text: "feat(nice): add cool feature", Start: 0, End: 28}, c.Header)
	assert.Equal(t, source.Span{Text: "feat", Start: 0, End: 4}, c.Type)
	assert.Equal(t, &source.Span{Text: "nice", Start: 5, End: 9}, c.Scope)
	assert.Equal(t, source.Span{Text: "add cool feature", Start: 12, End: 28}, c.Subject)
	assert.Equal(t, &source.Span{Text: "some body", Start: 30, End: 39}, c.Body)
	assert.Equal(t, &source.Span{Text: "some footer", Start: 41, End: 52}, c.Footer)
}

func TestParse_CRLFOffsets(t *testing.T) {
	c, err := parser.Parse("feat: x\r\n\r\nline1\r\nline2\r\n\r\nfoot\r\n")
	require.NoError(t, err)

	assert.Equal(t, 0, c.Header.Start)
	assert.Equal(t, 7, c.Header.End)
	assert.Equal(t, 11, c.Body.Start)
	assert.Equal(t, 23, c.Body.End)
	assert.Equal(t, 27, c.Footer.Start)
	assert.Equal(t, 31, c.Footer.End)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		msg    string
		offset int
		line   int
		column int
	}{
		{"no type", "add cool feature\n\nsome body\n\nsome footer", parser.ErrMissingColon, 3, 1, 4},
		{"body without blank line", "feat: add cool feature\nsome body", parser.ErrMissingBlankLine, 23, 2, 1},
		{"empty input", "", parser.ErrEmptyMessage, 0, 1, 1},
		{"scope without type", "(api): x", parser.ErrMissingType, 0, 1, 1},
		{"leading space", " feat: x", parser.ErrMissingType, 0, 1, 1},
		{"unclosed scope", "feat(api: x", parser.ErrUnclosedScope, 4, 1, 5},
		{"scope spans lines", "feat(api\n): x", parser.ErrUnclosedScope, 4, 1, 5},
		{"empty scope", "feat(): x", parser.ErrEmptyScope, 5, 1, 6},
		{"double scope", "feat(a)(b): x", parser.ErrMissingColon, 7, 1, 8},
		{"double bang", "feat!!: x", parser.ErrMissingColon, 5, 1, 6},
		{"type only", "feat", parser.ErrMissingColon, 4, 1, 5},
		{"no space", "feat:x", parser.ErrMissingSpace, 5, 1, 6},
		{"colon at end", "feat:", parser.ErrMissingSpace, 5, 1, 6},
		{"empty subject", "feat: ", parser.ErrEmptySubject, 6, 1, 7},
		{"blank subject", "feat:   \n", parser.ErrEmptySubject, 6, 1, 7},
		{"stray carriage return", "feat: a\rb", parser.ErrCarriageReturn, 7, 1, 8},
		{"blank line without body", "feat: x\n\n", parser.ErrMissingBody, 9, 3, 1},
		{"two blank lines before body", "feat: x\n\n\nbody", parser.ErrExtraBlankLine, 9, 3, 1},
		{"blank line without footer", "feat: x\n\nbody\n\n", parser.ErrMissingFooter, 15, 5, 1},
		{"two blank lines before footer", "feat: x\n\nbody\n\n\nfooter", parser.ErrExtraBlankLine, 15, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parser.Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, c)

			var perr *parser.Error
			require.True(t, errors.As(err, &perr), "error should be *parser.Error")
			assert.Equal(t, tt.msg, perr.Message)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Equal(t, tt.line, perr.Pos.Line)
			assert.Equal(t, tt.column, perr.Pos.Column)
			assert.Equal(t, tt.input, perr.Source)
		})
	}
}

func TestError_Format(t *testing.T) {
	_, err := parser.Parse("feat: add cool feature\nsome body")
	require.Error(t, err)
	assert.Equal(t, "parse error at line 2, column 1: expected a blank line after the header", err.Error())

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	span := perr.Span()
	assert.True(t, span.IsEmpty())
	assert.Equal(t, 23, span.Start)
}
