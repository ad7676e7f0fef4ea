package lint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zauni/commitguard/pkg/core"
	"github.com/zauni/commitguard/pkg/source"
)

// field names a commit part in diagnostic text.
type field struct {
	name  string // "scope"
	title string // "Scope"
}

var (
	fieldType    = field{"type", "Type"}
	fieldScope   = field{"scope", "Scope"}
	fieldSubject = field{"subject", "Subject"}
	fieldHeader  = field{"header", "Header"}
	fieldBody    = field{"body", "Body"}
	fieldFooter  = field{"footer", "Footer"}
)

// must returns "must" or "must not" for the rule's condition.
func (r Rule) must() string {
	if r.Options.Condition == core.ConditionNever {
		return "must not"
	}
	return "must"
}

// checkEmpty polices presence. Never: the field must be present.
// Always: the field must be absent.
func (r Rule) checkEmpty(c *core.Commit, f field, span *source.Span) *Diagnostic {
	switch r.Options.Condition {
	case core.ConditionNever:
		if span == nil {
			return r.newDiagnostic(c, f.title, f.name+" may not be empty")
		}
	case core.ConditionAlways:
		if span != nil {
			return r.newDiagnostic(c, f.title, f.name+" must be empty",
				label(*span, "not allowed "+f.name))
		}
	}
	return nil
}

// checkEnum polices membership. An absent field or an empty list is a no-op.
func (r Rule) checkEnum(c *core.Commit, f field, span *source.Span) *Diagnostic {
	if span == nil || len(r.Options.Values) == 0 {
		return nil
	}

	found := slices.Contains(r.Options.Values, span.Text)
	switch {
	case r.Options.Condition == core.ConditionNever && !found,
		r.Options.Condition == core.ConditionAlways && found:
		return nil
	}

	return r.newDiagnostic(c,
		f.title+" not allowed",
		fmt.Sprintf("%s %s be one of %s", f.name, r.must(), strings.Join(r.Options.Values, ", ")),
		label(*span, "not allowed "+f.name),
	)
}

// checkMaxLength polices the character length of a single-line field.
func (r Rule) checkMaxLength(c *core.Commit, f field, span *source.Span) *Diagnostic {
	if span == nil {
		return nil
	}
	n := span.RuneLen()
	if n <= r.Options.MaxLength {
		return nil
	}
	return r.newDiagnostic(c,
		f.title+" too long",
		fmt.Sprintf("%s must not be longer than %d characters (current length: %d)", f.name, r.Options.MaxLength, n),
		label(*span, "not allowed "+f.name),
	)
}

// checkMaxLineLength polices every line of a multi-line field and reports
// the first line that is too long.
func (r Rule) checkMaxLineLength(c *core.Commit, f field, span *source.Span) *Diagnostic {
	if span == nil {
		return nil
	}
	for _, line := range splitLines(*span) {
		n := line.RuneLen()
		if n <= r.Options.MaxLength {
			continue
		}
		return r.newDiagnostic(c,
			f.title+" line too long",
			fmt.Sprintf("%s lines must not be longer than %d characters (current length: %d)", f.name, r.Options.MaxLength, n),
			label(line, "line too long"),
		)
	}
	return nil
}

// checkCase polices letter case. An absent field is a no-op.
func (r Rule) checkCase(c *core.Commit, f field, span *source.Span) *Diagnostic {
	if span == nil {
		return nil
	}
	matches := MatchesCase(span.Text, r.Options.Case)
	if matches == (r.Options.Condition == core.ConditionAlways) {
		return nil
	}
	return r.newDiagnostic(c,
		f.title+" case",
		fmt.Sprintf("%s %s be %s", f.name, r.must(), r.Options.Case),
		label(*span, "not allowed "+f.name+" case"),
	)
}

// checkFullStop polices the subject's final characters.
func (r Rule) checkFullStop(c *core.Commit) *Diagnostic {
	stop := r.Options.Value
	if stop == "" {
		stop = DefaultFullStop
	}
	subject := c.Subject
	ends := strings.HasSuffix(subject.Text, stop)

	switch r.Options.Condition {
	case core.ConditionNever:
		if ends {
			tail := source.NewSpan(c.Raw, subject.End-len(stop), subject.End)
			return r.newDiagnostic(c, "Subject full stop",
				fmt.Sprintf("subject may not end with %q", stop),
				label(tail, "not allowed full stop"))
		}
	case core.ConditionAlways:
		if !ends {
			return r.newDiagnostic(c, "Subject full stop",
				fmt.Sprintf("subject must end with %q", stop),
				label(subject, "missing full stop"))
		}
	}
	return nil
}

// splitLines splits a span at line breaks. Returned spans exclude the
// terminator, including a "\r" preceding "\n".
func splitLines(span source.Span) []source.Span {
	var lines []source.Span
	start := 0
	text := span.Text
	for start <= len(text) {
		end := len(text)
		next := len(text) + 1
		if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
			end = start + i
			next = end + 1
		}
		contentEnd := end
		if next <= len(text) && contentEnd > start && text[contentEnd-1] == '\r' {
			contentEnd--
		}
		lines = append(lines, source.Span{
			Text:  text[start:contentEnd],
			Start: span.Start + start,
			End:   span.Start + contentEnd,
		})
		start = next
	}
	return lines
}
