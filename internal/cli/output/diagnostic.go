package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/lint"
	"github.com/zauni/commitguard/pkg/source"
)

// Diagnostic writes d in the effective mode. JSON mode is handled by the
// caller, which collects every diagnostic into one document.
func (r *Renderer) Diagnostic(d lint.Diagnostic) {
	if r.EffectiveMode() == ModeMarkdown {
		r.markdownDiagnostic(d)
		return
	}
	r.textDiagnostic(d)
}

// SeverityStyle returns the style used for a severity.
func (r *Renderer) SeverityStyle(sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return r.styles.Error
	case core.SeverityWarning:
		return r.styles.Warning
	default:
		return r.styles.Muted
	}
}

// textDiagnostic renders a source-quoted diagnostic:
//
//	error[rule/scope-enum]: Scope not allowed
//	  --> 1:6
//	   |
//	 1 | feat(foo): add thing
//	   |      ^^^ not allowed scope
//	   |
//	   = help: scope must be one of api, ui
func (r *Renderer) textDiagnostic(d lint.Diagnostic) {
	s := r.styles
	r.Printf("%s%s\n",
		r.SeverityStyle(d.Severity).Render(fmt.Sprintf("%s[%s]", d.Severity, d.Code)),
		s.Bold.Render(": "+d.Message),
	)

	idx := source.NewLineIndex(d.Source)
	gutter := 1
	for _, l := range d.Labels {
		if n := len(strconv.Itoa(idx.Position(l.Span.Start).Line)); n > gutter {
			gutter = n
		}
	}
	blank := strings.Repeat(" ", gutter+1)
	bar := s.Gutter.Render("|")

	if span, ok := d.PrimarySpan(); ok {
		r.Printf("%s%s %s\n", strings.Repeat(" ", gutter), s.Gutter.Render("-->"), idx.Position(span.Start))
	}
	if len(d.Labels) > 0 {
		r.Printf("%s%s\n", blank, bar)
		for _, l := range d.Labels {
			r.writeLabel(r.out, idx, d.Source, l, gutter)
		}
		r.Printf("%s%s\n", blank, bar)
	}
	if d.Help != "" {
		r.Printf("%s%s %s\n", blank, s.Gutter.Render("="), s.Help.Render("help: "+d.Help))
	}
	if d.DocumentationURL != "" {
		r.Printf("%s%s %s %s\n", blank, s.Gutter.Render("="), s.Muted.Render("docs:"), s.Link.Render(d.DocumentationURL))
	}
	r.Println("")
}

// writeLabel prints the label's first line with a caret underline. Multi-line
// spans are underlined to the end of their first line.
func (r *Renderer) writeLabel(w io.Writer, idx *source.LineIndex, src string, l lint.Label, gutter int) {
	s := r.styles
	pos := idx.Position(l.Span.Start)
	line := idx.Line(pos.Line)
	lineStart := idx.LineStart(pos.Line)
	lineEnd := lineStart + len(line)

	start := min(max(l.Span.Start, lineStart), lineEnd)
	end := min(max(l.Span.End, start), lineEnd)

	pad := displayWidth(src[lineStart:start])
	width := max(displayWidth(src[start:end]), 1)

	num := fmt.Sprintf("%*d", gutter, pos.Line)
	_, _ = fmt.Fprintf(w, "%s %s %s\n", s.Gutter.Render(num), s.Gutter.Render("|"), untab(line))

	underline := strings.Repeat(" ", pad) + s.Caret.Render(strings.Repeat("^", width))
	if l.Text != "" {
		underline += " " + s.Caret.Render(l.Text)
	}
	_, _ = fmt.Fprintf(w, "%s %s %s\n", strings.Repeat(" ", gutter), s.Gutter.Render("|"), underline)
}

func (r *Renderer) markdownDiagnostic(d lint.Diagnostic) {
	loc := ""
	if span, ok := d.PrimarySpan(); ok {
		loc = " at " + source.PositionOf(d.Source, span.Start).String()
	}
	r.Printf("- **%s** `%s`%s: %s\n", d.Severity, d.Code, loc, d.Message)
	for _, l := range d.Labels {
		if l.Text == "" {
			continue
		}
		if l.Span.IsEmpty() {
			r.Printf("  - %s\n", l.Text)
			continue
		}
		r.Printf("  - %s: `%s`\n", l.Text, firstLine(l.Span.Text))
	}
	if d.Help != "" {
		r.Printf("  - help: %s\n", d.Help)
	}
	if d.DocumentationURL != "" {
		r.Printf("  - docs: <%s>\n", d.DocumentationURL)
	}
}

func untab(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}

func displayWidth(s string) int {
	return runewidth.StringWidth(untab(s))
}

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		return s[:i]
	}
	return s
}
