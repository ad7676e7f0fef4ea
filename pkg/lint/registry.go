package lint

import "github.com/zauni/commitguard/pkg/core"

// Kind identifies one of the fixed set of rules.
type Kind int

// Rule kinds, in canonical evaluation order.
const (
	KindTypeEnum Kind = iota
	KindTypeCase
	KindTypeMaxLength
	KindScopeEmpty
	KindScopeEnum
	KindScopeCase
	KindScopeMaxLength
	KindSubjectCase
	KindSubjectMaxLength
	KindSubjectFullStop
	KindHeaderMaxLength
	KindBodyEmpty
	KindBodyMaxLineLength
	KindFooterEmpty
	KindFooterMaxLineLength

	kindCount
)

// Shape describes the option tuple layout a rule accepts.
type Shape int

// Option shapes.
const (
	ShapeCondition Shape = iota // [severity, condition]
	ShapeEnum                   // [severity, condition, [values]]
	ShapeLength                 // [severity, max]
	ShapeCase                   // [severity, condition, case]
	ShapeFullStop               // [severity, condition, value?]
)

func (s Shape) String() string {
	switch s {
	case ShapeCondition:
		return "condition"
	case ShapeEnum:
		return "enum"
	case ShapeLength:
		return "length"
	case ShapeCase:
		return "case"
	case ShapeFullStop:
		return "full-stop"
	default:
		return "unknown"
	}
}

// Layout returns the tuple layout in config notation.
func (s Shape) Layout() string {
	switch s {
	case ShapeCondition:
		return "[severity, condition]"
	case ShapeEnum:
		return "[severity, condition, [values]]"
	case ShapeLength:
		return "[severity, max]"
	case ShapeCase:
		return "[severity, condition, case]"
	case ShapeFullStop:
		return "[severity, condition, value?]"
	default:
		return ""
	}
}

// ruleMeta is the static catalog entry for a Kind.
type ruleMeta struct {
	ID          string
	Group       string
	Shape       Shape
	Default     core.Severity // severity in DefaultTable
	Description string
	Rationale   string
	BadExample  string
	GoodExample string
}

var catalog = [kindCount]ruleMeta{
	KindTypeEnum: {
		ID:          "type-enum",
		Group:       "type",
		Shape:       ShapeEnum,
		Default:     core.SeverityError,
		Description: "Type must (always) or must not (never) be one of the listed values.",
		Rationale:   "A fixed vocabulary of types keeps history searchable and drives changelog generation.",
		BadExample:  "feature: add login",
		GoodExample: "feat: add login",
	},
	KindTypeCase: {
		ID:          "type-case",
		Group:       "type",
		Shape:       ShapeCase,
		Default:     core.SeverityError,
		Description: "Type must (always) or must not (never) be in the given case.",
		Rationale:   "Consistent casing lets tooling match types without normalization.",
		BadExample:  "Feat: add login",
		GoodExample: "feat: add login",
	},
	KindTypeMaxLength: {
		ID:          "type-max-length",
		Group:       "type",
		Shape:       ShapeLength,
		Default:     core.SeverityOff,
		Description: "Type must not be longer than the given number of characters.",
		Rationale:   "Short types leave room in the header for the subject.",
		BadExample:  "infrastructure: bump node",
		GoodExample: "ci: bump node",
	},
	KindScopeEmpty: {
		ID:          "scope-empty",
		Group:       "scope",
		Shape:       ShapeCondition,
		Default:     core.SeverityOff,
		Description: "Scope must be present (never empty) or absent (always empty).",
		Rationale:   "Requiring a scope makes the affected area of every change explicit.",
		BadExample:  "fix: handle timeout",
		GoodExample: "fix(api): handle timeout",
	},
	KindScopeEnum: {
		ID:          "scope-enum",
		Group:       "scope",
		Shape:       ShapeEnum,
		Default:     core.SeverityOff,
		Description: "Scope must (always) or must not (never) be one of the listed values. An empty list disables the check.",
		Rationale:   "A known set of scopes maps commits onto the project's components.",
		BadExample:  "fix(misc): handle timeout",
		GoodExample: "fix(api): handle timeout",
	},
	KindScopeCase: {
		ID:          "scope-case",
		Group:       "scope",
		Shape:       ShapeCase,
		Default:     core.SeverityError,
		Description: "Scope must (always) or must not (never) be in the given case.",
		Rationale:   "Mixed-case scopes fragment what should be one component name.",
		BadExample:  "fix(UserService): handle timeout",
		GoodExample: "fix(user-service): handle timeout",
	},
	KindScopeMaxLength: {
		ID:          "scope-max-length",
		Group:       "scope",
		Shape:       ShapeLength,
		Default:     core.SeverityOff,
		Description: "Scope must not be longer than the given number of characters.",
		Rationale:   "Long scopes crowd out the subject in one-line log views.",
		BadExample:  "fix(authentication-service-backend): handle timeout",
		GoodExample: "fix(auth): handle timeout",
	},
	KindSubjectCase: {
		ID:          "subject-case",
		Group:       "subject",
		Shape:       ShapeCase,
		Default:     core.SeverityOff,
		Description: "Subject must (always) or must not (never) be in the given case.",
		Rationale:   "Uniform subjects read like a list in changelogs.",
		BadExample:  "feat: Add login",
		GoodExample: "feat: add login",
	},
	KindSubjectMaxLength: {
		ID:          "subject-max-length",
		Group:       "subject",
		Shape:       ShapeLength,
		Default:     core.SeverityOff,
		Description: "Subject must not be longer than the given number of characters.",
		Rationale:   "Details belong in the body; the subject is a summary.",
		BadExample:  "feat: add login page with remember-me checkbox and password reset link and captcha",
		GoodExample: "feat: add login page",
	},
	KindSubjectFullStop: {
		ID:          "subject-full-stop",
		Group:       "subject",
		Shape:       ShapeFullStop,
		Default:     core.SeverityError,
		Description: "Subject must not (never) or must (always) end with the given value, \".\" by default.",
		Rationale:   "The subject is a title, not a sentence.",
		BadExample:  "feat: add login.",
		GoodExample: "feat: add login",
	},
	KindHeaderMaxLength: {
		ID:          "header-max-length",
		Group:       "header",
		Shape:       ShapeLength,
		Default:     core.SeverityError,
		Description: "Header must not be longer than the given number of characters.",
		Rationale:   "Git tooling truncates long first lines.",
		BadExample:  "feat(auth): add login page with remember-me checkbox, password reset link, captcha and audit logging",
		GoodExample: "feat(auth): add login page",
	},
	KindBodyEmpty: {
		ID:          "body-empty",
		Group:       "body",
		Shape:       ShapeCondition,
		Default:     core.SeverityOff,
		Description: "Body must be present (never empty) or absent (always empty).",
		Rationale:   "A body explains the motivation behind a change.",
		BadExample:  "fix(api): handle timeout",
		GoodExample: "fix(api): handle timeout\n\nThe upstream service can take up to 30s under load.",
	},
	KindBodyMaxLineLength: {
		ID:          "body-max-line-length",
		Group:       "body",
		Shape:       ShapeLength,
		Default:     core.SeverityError,
		Description: "No body line may be longer than the given number of characters.",
		Rationale:   "Wrapped bodies stay readable in terminals and emails.",
		BadExample:  "fix: x\n\n" + "This single line goes on and on without ever wrapping, far beyond what a terminal shows at once.",
		GoodExample: "fix: x\n\nThis line wraps\nbefore it gets too long.",
	},
	KindFooterEmpty: {
		ID:          "footer-empty",
		Group:       "footer",
		Shape:       ShapeCondition,
		Default:     core.SeverityOff,
		Description: "Footer must be present (never empty) or absent (always empty).",
		Rationale:   "Footers carry issue references and breaking-change notes.",
		BadExample:  "fix(api): handle timeout\n\nbody",
		GoodExample: "fix(api): handle timeout\n\nbody\n\nRefs: #42",
	},
	KindFooterMaxLineLength: {
		ID:          "footer-max-line-length",
		Group:       "footer",
		Shape:       ShapeLength,
		Default:     core.SeverityError,
		Description: "No footer line may be longer than the given number of characters.",
		Rationale:   "Footers are parsed line by line by release tooling.",
		BadExample:  "fix: x\n\nbody\n\nRefs: " + "#1, #2, #3, #4, #5, #6, #7, #8, #9, #10, #11, #12, #13, #14, #15, #16, #17, #18, #19, #20, #21",
		GoodExample: "fix: x\n\nbody\n\nRefs: #1",
	},
}

// byID indexes the catalog by rule ID.
var byID = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		m[catalog[k].ID] = k
	}
	return m
}()

// Kinds returns every rule kind in canonical order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// LookupKind returns the Kind registered under id.
func LookupKind(id string) (Kind, bool) {
	k, ok := byID[id]
	return k, ok
}

// Valid reports whether k is a known rule kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

func (k Kind) meta() ruleMeta {
	if !k.Valid() {
		return ruleMeta{ID: "unknown"}
	}
	return catalog[k]
}

// ID returns the rule identifier, e.g. "scope-enum".
func (k Kind) ID() string { return k.meta().ID }

// String returns the rule identifier.
func (k Kind) String() string { return k.ID() }

// Code returns the diagnostic code, e.g. "rule/scope-enum".
func (k Kind) Code() string { return "rule/" + k.ID() }

// Group returns the commit field the rule targets.
func (k Kind) Group() string { return k.meta().Group }

// Shape returns the option tuple shape.
func (k Kind) Shape() Shape { return k.meta().Shape }

// GetRuleInfo extracts metadata for documentation/tooling.
func GetRuleInfo(k Kind) core.RuleInfo {
	m := k.meta()
	return core.RuleInfo{
		ID:          m.ID,
		Code:        k.Code(),
		Group:       m.Group,
		Shape:       m.Shape.String(),
		Description: m.Description,
		Default:     m.Default,
		Options:     m.Shape.Layout(),
		Rationale:   m.Rationale,
		BadExample:  m.BadExample,
		GoodExample: m.GoodExample,
		DocURL:      BuildDocURL(m.ID),
	}
}

// AllRules returns metadata for every rule in canonical order.
func AllRules() []core.RuleInfo {
	infos := make([]core.RuleInfo, 0, kindCount)
	for _, k := range Kinds() {
		infos = append(infos, GetRuleInfo(k))
	}
	return infos
}

// GetByGroup returns metadata for the rules targeting one commit field.
func GetByGroup(group string) []core.RuleInfo {
	var infos []core.RuleInfo
	for _, k := range Kinds() {
		if catalog[k].Group == group {
			infos = append(infos, GetRuleInfo(k))
		}
	}
	return infos
}
