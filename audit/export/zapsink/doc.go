// Package zapsink provides a zap-backed audit sink for goBoard engines.
//
// [New] wraps a caller-supplied *zap.Logger as a [goBoard.AuditSink]. Successful
// events log at Info level, failures at Warn. The event type becomes the log
// message and every populated event field becomes a structured zap field.
//
// # What this package must NOT do
//
//   - Own the zap logger lifecycle — callers construct, level, and flush it.
//   - Filter, rewrite, or buffer audit events.
//   - Mutate engine state.
package zapsink
