package core

// RuleInfo provides metadata about a lint rule for documentation/tooling.
// This is a DTO (Data Transfer Object) - it carries data without behavior.
type RuleInfo struct {
	ID          string   `json:"id"`
	Code        string   `json:"code"`
	Group       string   `json:"group"`
	Shape       string   `json:"shape"`
	Description string   `json:"description"`
	Default     Severity `json:"default_severity"`
	Options     string   `json:"options"` // tuple layout, e.g. "[severity, condition, [values]]"

	// Documentation fields
	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	DocURL      string `json:"doc_url,omitempty"`
}
