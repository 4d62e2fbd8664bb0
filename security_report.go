package goBoard

func (e *Engine) SecurityReport() SecurityReport {
	if e == nil {
		return SecurityReport{}
	}

	return SecurityReport{
		ProductionMode:           e.config.Security.ProductionMode,
		PlaceholderCredentials:   !e.customVerifier && e.config.Credentials.Password == DefaultPassword,
		PlaceholderToken:         !e.customValidator && e.config.Token.StaticToken == DefaultToken,
		CustomCredentialVerifier: e.customVerifier,
		CustomTokenValidator:     e.customValidator,
		ConstantTimeComparison:   !e.customVerifier || !e.customValidator,
		GuardWritesRequireLogin:  e.config.Canvas.RequireLogin,
		AuditEnabled:             e.audit != nil,
		MetricsEnabled:           e.metrics.Enabled(),
	}
}
