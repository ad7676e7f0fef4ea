// Package core defines the shared vocabulary of commitguard.
//
// This package contains:
//   - The parsed commit model (Commit)
//   - Rule policy enums (Severity, Condition, TargetCase)
//   - Rule metadata for tooling (RuleInfo)
//
// The Golden Rule: pkg/core imports ONLY pkg/source and stdlib.
// All other packages depend on core, not the reverse.
package core
