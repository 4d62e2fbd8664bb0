// Package goBoard provides a session-gated collaborative drawing board engine
// with static credential checks, static token validation, audit event dispatch,
// and low-overhead metrics.
//
// Each [Engine] owns one session: the engine starts unauthenticated, a
// successful Login authenticates it, and Logout resets it. Session state is
// instance-scoped; two engines never share it.
//
// # Architecture boundaries
//
// goBoard is the public surface. It exposes [Engine], [Builder], [Config], and
// value types (MetricsSnapshot, SessionInfo, AuditEvent, etc.). The canvas data
// structure lives in the board sub-package; exporters and middleware build on
// the public surface only.
//
// # What this package must NOT do
//
//   - Persist sessions, tokens, or canvas contents anywhere.
//   - Issue tokens or verify credentials against an external system; the
//     static defaults are comparison-only and replaceable via Builder seams.
//   - Guard session or canvas state with locks. Session-mutating operations
//     are single-goroutine by contract; only the ambient subsystems (audit
//     dispatch, metrics) are concurrency-safe.
//   - Import any sub-package that re-imports goBoard (no import cycles).
//
// # Performance contract
//
// ValidateToken is the hot path. It reads no mutable engine state, performs a
// single constant-time comparison in the default configuration, and must not
// allocate unless latency histograms are enabled.
package goBoard
