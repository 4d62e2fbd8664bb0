package goBoard

import (
	"errors"

	"github.com/google/uuid"

	"github.com/MrEthical07/goBoard/board"
)

// Builder defines a public type used by goBoard APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	canvas *board.Canvas

	verifier  CredentialVerifier
	validator TokenValidator
	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithCredentials describes the withcredentials operation and its observable behavior.
//
// WithCredentials may return an error when input validation, dependency calls, or security checks fail.
// WithCredentials does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithCredentials(username, password string) *Builder {
	b.config.Credentials.Username = username
	b.config.Credentials.Password = password
	return b
}

// WithStaticToken describes the withstatictoken operation and its observable behavior.
//
// WithStaticToken may return an error when input validation, dependency calls, or security checks fail.
// WithStaticToken does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithStaticToken(token string) *Builder {
	b.config.Token.StaticToken = token
	return b
}

// WithCredentialVerifier describes the withcredentialverifier operation and its observable behavior.
//
// WithCredentialVerifier may return an error when input validation, dependency calls, or security checks fail.
// WithCredentialVerifier does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithCredentialVerifier(v CredentialVerifier) *Builder {
	b.verifier = v
	return b
}

// WithTokenValidator describes the withtokenvalidator operation and its observable behavior.
//
// WithTokenValidator may return an error when input validation, dependency calls, or security checks fail.
// WithTokenValidator does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithTokenValidator(v TokenValidator) *Builder {
	b.validator = v
	return b
}

// WithCanvas describes the withcanvas operation and its observable behavior.
//
// WithCanvas may return an error when input validation, dependency calls, or security checks fail.
// WithCanvas does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithCanvas(c *board.Canvas) *Builder {
	b.canvas = c
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Placeholder secrets only matter while the matching static seam is in
	// use; a custom verifier or validator ignores the config value entirely.
	if cfg.Security.ProductionMode {
		if b.verifier == nil && cfg.Credentials.Password == DefaultPassword {
			return nil, ErrPlaceholderCredentials
		}
		if b.validator == nil && cfg.Token.StaticToken == DefaultToken {
			return nil, ErrPlaceholderToken
		}
	}

	// -------- SEAMS --------
	verifier := b.verifier
	if verifier == nil {
		verifier = staticCredentialVerifier{
			username: cfg.Credentials.Username,
			password: cfg.Credentials.Password,
		}
	}

	validator := b.validator
	if validator == nil {
		validator = staticTokenValidator{token: cfg.Token.StaticToken}
	}

	engine := &Engine{
		id:        uuid.NewString(),
		config:    cloneConfig(cfg),
		canvas:    b.canvas,
		verifier:  verifier,
		validator: validator,

		customVerifier:  b.verifier != nil,
		customValidator: b.validator != nil,
	}

	// -------- AMBIENT SUBSYSTEMS --------
	engine.audit = newAuditDispatcher(cfg.Audit, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	b.built = true

	return engine, nil
}
