package goBoard

import "github.com/MrEthical07/goBoard/internal"

// DefaultConfig returns the development baseline: placeholder credentials and
// token, guarded canvas writes, audit and metrics disabled. The placeholders
// are rejected by [Builder.Build] once [SecurityConfig.ProductionMode] is set.
func DefaultConfig() Config {
	return defaultConfig()
}

// HighSecurityConfig returns a production-leaning configuration: generated
// random password and token, production mode on, audit enabled on a blocking
// queue, metrics with latency histograms.
//
// The generated secrets are only reachable through the returned Config; read
// them before Build when clients need to authenticate. If secret generation
// fails the affected field is left empty and Build rejects the config.
func HighSecurityConfig() Config {
	cfg := defaultConfig()
	cfg.Security.ProductionMode = true
	cfg.Credentials.Password = generatedSecret()
	cfg.Token.StaticToken = generatedSecret()
	cfg.Canvas.RequireLogin = true
	cfg.Audit = AuditConfig{
		Enabled:    true,
		BufferSize: 4096,
		DropIfFull: false,
	}
	cfg.Metrics = MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: true,
	}
	return cfg
}

// HighThroughputConfig returns a production-leaning configuration tuned for
// hot-path cost: generated secrets, counters on, latency histograms off,
// audit off.
func HighThroughputConfig() Config {
	cfg := defaultConfig()
	cfg.Security.ProductionMode = true
	cfg.Credentials.Password = generatedSecret()
	cfg.Token.StaticToken = generatedSecret()
	cfg.Canvas.RequireLogin = true
	cfg.Audit = AuditConfig{
		Enabled:    false,
		BufferSize: 1024,
		DropIfFull: true,
	}
	cfg.Metrics = MetricsConfig{
		Enabled:                 true,
		EnableLatencyHistograms: false,
	}
	return cfg
}

func generatedSecret() string {
	s, err := internal.RandomSecret(32)
	if err != nil {
		// Empty fails Config.Validate at Build; never ship a guessable fallback.
		return ""
	}
	return s
}
