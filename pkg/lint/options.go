package lint

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/zauni/commitguard/pkg/core"
)

// Option decoding errors. Errors returned by ParseRule wrap one of these.
var (
	ErrUnknownRule    = errors.New("unknown rule")
	ErrInvalidOptions = errors.New("invalid rule options")
)

// arity returns the accepted tuple lengths for a shape.
func (s Shape) arity() (lo, hi int) {
	switch s {
	case ShapeEnum, ShapeCase:
		return 3, 3
	case ShapeFullStop:
		return 2, 3
	default:
		return 2, 2
	}
}

// ParseRule decodes a config tuple such as ["error", "always", ["api"]]
// into a Rule. Values are coerced weakly, so numbers may arrive as int,
// int64 or float64 and severities as 0/1/2.
func ParseRule(id string, tuple []any) (Rule, error) {
	kind, ok := LookupKind(id)
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, id)
	}
	shape := kind.Shape()
	if len(tuple) == 0 {
		return Rule{}, invalidf(id, "expected %s, got an empty list", shape.Layout())
	}

	sev, err := decodeSeverity(tuple[0])
	if err != nil {
		return Rule{}, invalidf(id, "%v", err)
	}
	rule := Rule{Kind: kind, Options: Options{Severity: sev}}
	if sev == core.SeverityOff && len(tuple) == 1 {
		return rule, nil
	}

	lo, hi := shape.arity()
	if len(tuple) < lo || len(tuple) > hi {
		return Rule{}, invalidf(id, "expected %s, got %d values", shape.Layout(), len(tuple))
	}

	if shape == ShapeLength {
		n, err := decodeInt(tuple[1])
		if err != nil {
			return Rule{}, invalidf(id, "max length: %v", err)
		}
		if n < 0 {
			return Rule{}, invalidf(id, "max length must not be negative, got %d", n)
		}
		rule.Options.MaxLength = n
		return rule, nil
	}

	cond, err := decodeCondition(tuple[1])
	if err != nil {
		return Rule{}, invalidf(id, "%v", err)
	}
	rule.Options.Condition = cond

	switch shape {
	case ShapeEnum:
		values, err := decodeStrings(tuple[2])
		if err != nil {
			return Rule{}, invalidf(id, "values: %v", err)
		}
		rule.Options.Values = values
	case ShapeCase:
		s, err := decodeString(tuple[2])
		if err != nil {
			return Rule{}, invalidf(id, "case: %v", err)
		}
		tc, ok := core.ParseTargetCase(s)
		if !ok {
			return Rule{}, invalidf(id, "unknown case %q", s)
		}
		rule.Options.Case = tc
	case ShapeFullStop:
		rule.Options.Value = DefaultFullStop
		if len(tuple) == 3 {
			s, err := decodeString(tuple[2])
			if err != nil {
				return Rule{}, invalidf(id, "value: %v", err)
			}
			if s == "" {
				return Rule{}, invalidf(id, "value must not be empty")
			}
			rule.Options.Value = s
		}
	}
	return rule, nil
}

// NewRunnerFromTable decodes a whole rules table. Rules are ordered
// canonically regardless of map order, and every problem in the table is
// reported at once.
func NewRunnerFromTable(table map[string][]any) (*Runner, error) {
	var errs []error
	for _, id := range slices.Sorted(maps.Keys(table)) {
		if _, ok := LookupKind(id); !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownRule, id))
		}
	}

	var rules []Rule
	for _, k := range Kinds() {
		tuple, ok := table[k.ID()]
		if !ok {
			continue
		}
		rule, err := ParseRule(k.ID(), tuple)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rules = append(rules, rule)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return NewRunner(rules...), nil
}

func invalidf(id, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidOptions, id, fmt.Sprintf(format, args...))
}

func decodeString(v any) (string, error) {
	var s string
	if err := mapstructure.WeakDecode(v, &s); err != nil {
		return "", err
	}
	return s, nil
}

func decodeInt(v any) (int, error) {
	var n int
	if err := mapstructure.WeakDecode(v, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func decodeStrings(v any) ([]string, error) {
	var out []string
	if err := mapstructure.WeakDecode(v, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeSeverity accepts "off"/"warning"/"error" and the numeric levels 0/1/2.
func decodeSeverity(v any) (core.Severity, error) {
	s, err := decodeString(v)
	if err != nil {
		return core.SeverityOff, fmt.Errorf("severity: %w", err)
	}
	switch strings.TrimSpace(s) {
	case "0":
		return core.SeverityOff, nil
	case "1":
		return core.SeverityWarning, nil
	case "2":
		return core.SeverityError, nil
	}
	sev, ok := core.ParseSeverity(s)
	if !ok {
		return core.SeverityOff, fmt.Errorf("unknown severity %q (want off, warning or error)", s)
	}
	return sev, nil
}

func decodeCondition(v any) (core.Condition, error) {
	s, err := decodeString(v)
	if err != nil {
		return core.ConditionNever, fmt.Errorf("condition: %w", err)
	}
	cond, ok := core.ParseCondition(s)
	if !ok {
		return core.ConditionNever, fmt.Errorf("unknown condition %q (want never or always)", s)
	}
	return cond, nil
}
