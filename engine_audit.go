package goBoard

import (
	"context"
	"errors"
	"time"
)

const (
	auditEventLoginSuccess = "login_success"
	auditEventLoginFailure = "login_failure"
	auditEventLogout       = "logout"
	auditEventTokenValid   = "token_valid"
	auditEventTokenInvalid = "token_invalid"
	auditEventElementAdded = "element_added"
	auditEventBoardCleared = "board_cleared"
	auditEventWriteDenied  = "write_denied"
)

// AuditErrorCode defines a public type used by goBoard APIs.
//
// AuditErrorCode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditErrorCode string

const (
	auditErrUnauthorized       AuditErrorCode = "unauthorized"
	auditErrInvalidCredentials AuditErrorCode = "invalid_credentials"
	auditErrInvalidToken       AuditErrorCode = "invalid_token"
	auditErrNotAuthenticated   AuditErrorCode = "not_authenticated"
	auditErrNoCanvas           AuditErrorCode = "no_canvas"
	auditErrInternal           AuditErrorCode = "internal_error"
)

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	loginID string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		EngineID:  e.id,
		LoginID:   loginID,
		IP:        clientIPFromContext(ctx),
		UserAgent: userAgentFromContext(ctx),
		Success:   success,
		Metadata:  metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

func auditErrorCode(err error) AuditErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrUnauthorized):
		return auditErrUnauthorized
	case errors.Is(err, ErrInvalidCredentials):
		return auditErrInvalidCredentials
	case errors.Is(err, ErrInvalidToken):
		return auditErrInvalidToken
	case errors.Is(err, ErrNotAuthenticated):
		return auditErrNotAuthenticated
	case errors.Is(err, ErrNoCanvas):
		return auditErrNoCanvas
	default:
		return auditErrInternal
	}
}
