package goBoard

import "errors"

// Config defines a public type used by goBoard APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Credentials CredentialsConfig
	Token       TokenConfig
	Canvas      CanvasConfig
	Audit       AuditConfig
	Metrics     MetricsConfig
	Security    SecurityConfig
	GuardMode   GuardMode
}

/*
====================================
CREDENTIALS CONFIG
====================================
*/

// CredentialsConfig defines a public type used by goBoard APIs.
//
// CredentialsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CredentialsConfig struct {
	Username string
	Password string
}

// TokenConfig defines a public type used by goBoard APIs.
//
// TokenConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TokenConfig struct {
	StaticToken string
}

/*
====================================
CANVAS CONFIG
====================================
*/

// CanvasConfig defines a public type used by goBoard APIs.
//
// CanvasConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CanvasConfig struct {
	RequireLogin bool
}

// AuditConfig defines a public type used by goBoard APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by goBoard APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

/*
====================================
SECURITY CONFIG
====================================
*/

// SecurityConfig defines a public type used by goBoard APIs.
//
// SecurityConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SecurityConfig struct {
	ProductionMode bool
}

// GuardMode defines a public type used by goBoard APIs.
//
// GuardMode instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GuardMode int

const (
	// ModeInherit is an exported constant or variable used by the board engine.
	ModeInherit GuardMode = -1

	// ModeToken is an exported constant or variable used by the board engine.
	ModeToken GuardMode = iota
	// ModeSession is an exported constant or variable used by the board engine.
	ModeSession
)

// RouteMode is the per-route override mode for Engine.Authorize.
// It intentionally reuses the same constants (ModeInherit/ModeToken/ModeSession).
type RouteMode = GuardMode

/*
====================================
DEFAULT CONFIG
====================================
*/

func defaultConfig() Config {
	return Config{
		Credentials: CredentialsConfig{
			Username: DefaultUsername,
			Password: DefaultPassword,
		},
		Token: TokenConfig{
			StaticToken: DefaultToken,
		},
		Canvas: CanvasConfig{
			RequireLogin: true,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
		Security: SecurityConfig{
			ProductionMode: false,
		},
		GuardMode: ModeToken,
	}
}

// cloneConfig is a value copy today; it stays a function so reference fields
// added later get deep-copied in one place.
func cloneConfig(cfg Config) Config {
	out := cfg
	return out
}

/*
====================================
VALIDATION
====================================
*/

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	// Credentials
	if c.Credentials.Username == "" {
		return errors.New("Credentials Username must not be empty")
	}
	if c.Credentials.Password == "" {
		return errors.New("Credentials Password must not be empty")
	}

	// Token
	if c.Token.StaticToken == "" {
		return errors.New("Token StaticToken must not be empty")
	}

	// Audit
	if c.Audit.Enabled {
		if c.Audit.BufferSize <= 0 {
			return errors.New("Audit BufferSize must be > 0 when audit is enabled")
		}
	}

	switch c.GuardMode {
	case ModeToken, ModeSession:
		// valid
	default:
		// ModeInherit is a per-route value and is not a valid engine default.
		return errors.New("invalid GuardMode")
	}

	return nil
}
