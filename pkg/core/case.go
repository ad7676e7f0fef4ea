package core

import "strings"

// TargetCase names a letter-case convention a field can be checked against.
type TargetCase int

// Supported cases.
const (
	CaseLower TargetCase = iota
	CaseUpper
	CasePascal
	CaseCamel
	CaseKebab
	CaseSnake
	CaseStart
	CaseSentence
)

var caseNames = [...]string{
	CaseLower:    "lower-case",
	CaseUpper:    "upper-case",
	CasePascal:   "pascal-case",
	CaseCamel:    "camel-case",
	CaseKebab:    "kebab-case",
	CaseSnake:    "snake-case",
	CaseStart:    "start-case",
	CaseSentence: "sentence-case",
}

// AllCases returns every supported case in declaration order.
func AllCases() []TargetCase {
	out := make([]TargetCase, len(caseNames))
	for i := range caseNames {
		out[i] = TargetCase(i)
	}
	return out
}

func (c TargetCase) String() string {
	if c < 0 || int(c) >= len(caseNames) {
		return "unknown"
	}
	return caseNames[c]
}

// ParseTargetCase converts a case name such as "kebab-case" to a TargetCase.
func ParseTargetCase(s string) (TargetCase, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range caseNames {
		if name == s {
			return TargetCase(i), true
		}
	}
	return CaseLower, false
}

// MarshalText implements encoding.TextMarshaler.
func (c TargetCase) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
