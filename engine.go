package goBoard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/MrEthical07/goBoard/board"
)

// Engine defines a public type used by goBoard APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
//
// Session state (authenticated flag, login ID, login time) is instance-scoped
// and deliberately unsynchronized: Login, Logout, and the canvas write
// operations are single-goroutine by contract. ValidateToken reads no session
// state and is safe to call concurrently, as are Close, AuditDropped, and
// MetricsSnapshot.
type Engine struct {
	id     string
	config Config

	canvas *board.Canvas

	verifier  CredentialVerifier
	validator TokenValidator

	customVerifier  bool
	customValidator bool

	audit   *auditDispatcher
	metrics *Metrics

	authenticated bool
	loginID       string
	loginAt       time.Time
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// Login describes the login operation and its observable behavior.
//
// Login reports whether the pair was accepted. On success the session becomes
// authenticated under a freshly rotated login ID; a repeated success replaces
// the previous login ID. On failure the session is left exactly as it was,
// including a previously authenticated state.
func (e *Engine) Login(ctx context.Context, username, password string) bool {
	if e == nil || e.verifier == nil {
		return false
	}

	ok := e.verifier.Verify(ctx, username, password)
	password = ""

	if !ok {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, "", ErrInvalidCredentials, func() map[string]string {
			return map[string]string{
				"username": username,
				"reason":   "credential_mismatch",
			}
		})
		return false
	}

	e.authenticated = true
	e.loginID = uuid.NewString()
	e.loginAt = time.Now().UTC()

	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLoginSuccess, true, e.loginID, nil, func() map[string]string {
		return map[string]string{
			"username": username,
		}
	})

	return true
}

// Logout describes the logout operation and its observable behavior.
//
// Logout always resets the session and never fails. Logging out an already
// unauthenticated engine is counted and audited like any other logout.
func (e *Engine) Logout(ctx context.Context) {
	if e == nil {
		return
	}

	wasAuthenticated := e.authenticated
	priorLoginID := e.loginID

	e.authenticated = false
	e.loginID = ""
	e.loginAt = time.Time{}

	e.metricInc(MetricLogout)
	e.emitAudit(ctx, auditEventLogout, true, priorLoginID, nil, func() map[string]string {
		return map[string]string{
			"was_authenticated": boolString(wasAuthenticated),
		}
	})
}

// IsAuthenticated reports whether a successful Login is currently active.
func (e *Engine) IsAuthenticated() bool {
	if e == nil {
		return false
	}
	return e.authenticated
}

// ValidateToken describes the validatetoken operation and its observable behavior.
//
// ValidateToken reports whether token is acceptable to the configured
// validator. The check is disconnected from session state: it neither reads
// nor mutates it, and the emitted audit events carry no login ID.
func (e *Engine) ValidateToken(ctx context.Context, token string) bool {
	if e == nil || e.validator == nil {
		return false
	}

	if e.metrics != nil && e.metrics.LatencyEnabled() {
		start := time.Now()
		defer e.metrics.Observe(MetricTokenCheckLatency, time.Since(start))
	}

	ok := e.validator.Validate(ctx, token)
	if !ok {
		e.metricInc(MetricTokenInvalid)
		e.emitAudit(ctx, auditEventTokenInvalid, false, "", ErrInvalidToken, nil)
		return false
	}

	e.metricInc(MetricTokenValid)
	e.emitAudit(ctx, auditEventTokenValid, true, "", nil, nil)

	return true
}

// Authorize describes the authorize operation and its observable behavior.
//
// Authorize admits or rejects a request under the given route mode.
// ModeInherit resolves to the engine's configured GuardMode. ModeToken runs
// ValidateToken (with its usual metrics and audit); ModeSession checks the
// current session without emitting anything of its own.
func (e *Engine) Authorize(ctx context.Context, token string, routeMode RouteMode) (*AuthResult, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}

	effectiveMode, err := e.resolveGuardMode(routeMode)
	if err != nil {
		return nil, err
	}

	switch effectiveMode {
	case ModeToken:
		if !e.ValidateToken(ctx, token) {
			return nil, ErrUnauthorized
		}
		return &AuthResult{Method: AuthMethodToken}, nil
	case ModeSession:
		if !e.IsAuthenticated() {
			return nil, ErrUnauthorized
		}
		return &AuthResult{Method: AuthMethodSession, LoginID: e.loginID}, nil
	default:
		return nil, ErrInvalidGuardMode
	}
}

func (e *Engine) resolveGuardMode(routeMode RouteMode) (GuardMode, error) {
	switch routeMode {
	case ModeInherit:
		switch e.config.GuardMode {
		case ModeToken:
			return ModeToken, nil
		case ModeSession:
			return ModeSession, nil
		default:
			return 0, ErrInvalidGuardMode
		}
	case ModeToken:
		return ModeToken, nil
	case ModeSession:
		return ModeSession, nil
	default:
		return 0, ErrInvalidGuardMode
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
