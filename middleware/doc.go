// Package middleware exposes HTTP middleware adapters for token and session
// authorization enforcement modes built on top of goBoard.Engine.
//
// # Guards
//
//   - [Guard] — enforces the given route mode; ModeInherit defers to Engine config.
//   - [RequireToken] — bearer token check, session state ignored.
//   - [RequireSession] — current session check, no token needed.
//
// Each guard reads the Authorization header, calls Engine.Authorize, and
// injects the result into the request context. [ClientInfo] additionally
// forwards the caller's IP and User-Agent for audit events.
//
// # Architecture boundaries
//
// This package translates HTTP semantics into Engine calls. It does NOT
// implement authorization logic itself — all decisions are delegated to
// Engine.Authorize.
//
// # What this package must NOT do
//
//   - Compare tokens or credentials directly (delegates to Engine).
//   - Touch the canvas or session state.
//   - Make authorization decisions beyond pass/reject from Engine.Authorize.
package middleware
