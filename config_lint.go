package goBoard

import (
	"errors"
	"strings"
)

// LintSeverity orders configuration warnings from advisory to blocking.
type LintSeverity int

const (
	// LintLow is an exported constant or variable used by the board engine.
	LintLow LintSeverity = iota
	// LintMedium is an exported constant or variable used by the board engine.
	LintMedium
	// LintHigh is an exported constant or variable used by the board engine.
	LintHigh
)

// String describes the string operation and its observable behavior.
//
// String may return an error when input validation, dependency calls, or security checks fail.
// String does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s LintSeverity) String() string {
	switch s {
	case LintLow:
		return "low"
	case LintMedium:
		return "medium"
	case LintHigh:
		return "high"
	default:
		return "unknown"
	}
}

// ConfigWarning is a single advisory finding from [Config.Lint]. Code is a
// stable snake_case identifier for programmatic filtering; Message is for
// humans.
type ConfigWarning struct {
	Code     string
	Message  string
	Severity LintSeverity
}

// ConfigWarnings defines a public type used by goBoard APIs.
//
// ConfigWarnings instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ConfigWarnings []ConfigWarning

// Codes returns the warning codes in lint order.
func (w ConfigWarnings) Codes() []string {
	if len(w) == 0 {
		return nil
	}
	out := make([]string, 0, len(w))
	for _, warning := range w {
		out = append(out, warning.Code)
	}
	return out
}

// BySeverity returns the warnings at or above min, preserving lint order.
func (w ConfigWarnings) BySeverity(min LintSeverity) ConfigWarnings {
	var out ConfigWarnings
	for _, warning := range w {
		if warning.Severity >= min {
			out = append(out, warning)
		}
	}
	return out
}

// AsError folds the warnings at or above min into a single error, or nil
// when none reach the threshold. Useful for treating lint findings as fatal
// in deployment pipelines.
func (w ConfigWarnings) AsError(min LintSeverity) error {
	filtered := w.BySeverity(min)
	if len(filtered) == 0 {
		return nil
	}
	return errors.New("config lint: " + strings.Join(filtered.Codes(), ", "))
}

// Lint inspects the config for risky but valid settings. Unlike Validate it
// never blocks construction; findings are advisory until the caller promotes
// them with [ConfigWarnings.AsError].
//
//	Docs: docs/security.md
func (c *Config) Lint() ConfigWarnings {
	var warnings ConfigWarnings

	if c.Credentials.Password == DefaultPassword {
		warnings = append(warnings, ConfigWarning{
			Code:     "placeholder_credentials",
			Message:  "Credentials.Password is the shipped placeholder; set a real secret before deploying.",
			Severity: LintMedium,
		})
	}
	if c.Token.StaticToken == DefaultToken {
		warnings = append(warnings, ConfigWarning{
			Code:     "placeholder_token",
			Message:  "Token.StaticToken is the shipped placeholder; set a real secret before deploying.",
			Severity: LintMedium,
		})
	}
	if !c.Canvas.RequireLogin {
		warnings = append(warnings, ConfigWarning{
			Code:     "unguarded_writes",
			Message:  "Canvas.RequireLogin is disabled; any caller can mutate the board.",
			Severity: LintHigh,
		})
	}
	if !c.Audit.Enabled {
		warnings = append(warnings, ConfigWarning{
			Code:     "audit_disabled",
			Message:  "Audit.Enabled is false; session and board activity leaves no trail.",
			Severity: LintLow,
		})
	}

	return warnings
}
