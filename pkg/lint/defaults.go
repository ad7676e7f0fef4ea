package lint

// DefaultTypes is the conventional commit type vocabulary.
var DefaultTypes = []string{
	"build", "chore", "ci", "docs", "feat", "fix",
	"perf", "refactor", "revert", "style", "test",
}

// DefaultTable returns the rules applied when no rules table is configured.
// It is freshly allocated on every call.
func DefaultTable() map[string][]any {
	types := make([]any, len(DefaultTypes))
	for i, t := range DefaultTypes {
		types[i] = t
	}
	return map[string][]any{
		"type-enum":              {"error", "always", types},
		"type-case":              {"error", "always", "lower-case"},
		"scope-case":             {"error", "always", "lower-case"},
		"subject-full-stop":      {"error", "never", "."},
		"header-max-length":      {"error", 100},
		"body-max-line-length":   {"error", 100},
		"footer-max-line-length": {"error", 100},
	}
}

// DefaultRunner builds a Runner from DefaultTable.
func DefaultRunner() *Runner {
	r, err := NewRunnerFromTable(DefaultTable())
	if err != nil {
		panic("lint: invalid default table: " + err.Error())
	}
	return r
}
