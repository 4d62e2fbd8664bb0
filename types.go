package goBoard

import "context"

// AuthMethod identifies which guard admitted a request in [Engine.Authorize].
type AuthMethod string

const (
	// AuthMethodToken is an exported constant or variable used by the board engine.
	AuthMethodToken AuthMethod = "token"
	// AuthMethodSession is an exported constant or variable used by the board engine.
	AuthMethodSession AuthMethod = "session"
)

// AuthResult is returned by [Engine.Authorize]. It records the guard that
// admitted the request and, for session guards, the login ID of the current
// session.
//
//	Docs: docs/middleware.md
type AuthResult struct {
	Method  AuthMethod
	LoginID string
}

// CredentialVerifier is the seam that callers implement to replace the
// built-in static credential check. Verify reports whether the pair is
// acceptable; it must not mutate engine state.
//
//	Docs: docs/engine.md
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) bool
}

// TokenValidator is the seam that callers implement to replace the built-in
// static token check. Validate reports whether the token is acceptable; it
// must not mutate engine state.
//
//	Docs: docs/engine.md
type TokenValidator interface {
	Validate(ctx context.Context, token string) bool
}

// SecurityReport is a read-only snapshot of the engine’s security posture,
// returned by [Engine.SecurityReport].
//
//	Docs: docs/security.md
type SecurityReport struct {
	ProductionMode           bool
	PlaceholderCredentials   bool
	PlaceholderToken         bool
	CustomCredentialVerifier bool
	CustomTokenValidator     bool
	ConstantTimeComparison   bool
	GuardWritesRequireLogin  bool
	AuditEnabled             bool
	MetricsEnabled           bool
}
