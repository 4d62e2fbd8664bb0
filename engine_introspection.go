package goBoard

import (
	"time"

	"github.com/MrEthical07/goBoard/board"
)

// SessionInfo is the safe introspection view for the engine's session.
// It intentionally excludes the configured credentials and token material.
type SessionInfo struct {
	EngineID      string
	Authenticated bool
	LoginID       string
	LoginAt       time.Time
}

// BoardInfo is the safe introspection view for the attached canvas.
type BoardInfo struct {
	Attached bool
	Size     board.Size
	Elements int
}

// HealthStatus is an on-demand view of the engine's ambient subsystems.
type HealthStatus struct {
	AuditQueueDepth int
	AuditDropped    uint64
	MetricsEnabled  bool
}

// SessionInfo describes the sessioninfo operation and its observable behavior.
//
// SessionInfo may return an error when input validation, dependency calls, or security checks fail.
// SessionInfo does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) SessionInfo() (SessionInfo, error) {
	if e == nil {
		return SessionInfo{}, ErrEngineNotReady
	}

	return SessionInfo{
		EngineID:      e.id,
		Authenticated: e.authenticated,
		LoginID:       e.loginID,
		LoginAt:       e.loginAt,
	}, nil
}

// BoardInfo describes the boardinfo operation and its observable behavior.
//
// BoardInfo may return an error when input validation, dependency calls, or security checks fail.
// BoardInfo does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) BoardInfo() (BoardInfo, error) {
	if e == nil {
		return BoardInfo{}, ErrEngineNotReady
	}
	if e.canvas == nil {
		return BoardInfo{}, nil
	}

	return BoardInfo{
		Attached: true,
		Size:     e.canvas.Size(),
		Elements: e.canvas.Len(),
	}, nil
}

// Health describes the health operation and its observable behavior.
//
// Health may return an error when input validation, dependency calls, or security checks fail.
// Health does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Health() HealthStatus {
	if e == nil {
		return HealthStatus{}
	}

	return HealthStatus{
		AuditQueueDepth: e.audit.QueueDepth(),
		AuditDropped:    e.AuditDropped(),
		MetricsEnabled:  e.metrics.Enabled(),
	}
}
