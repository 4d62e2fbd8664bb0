package goBoard

import (
	"context"
	"crypto/subtle"
)

const (
	// DefaultUsername is an exported constant or variable used by the board engine.
	DefaultUsername = "admin"
	// DefaultPassword is an exported constant or variable used by the board engine.
	DefaultPassword = "synapse"
	// DefaultToken is an exported constant or variable used by the board engine.
	DefaultToken = "valid_token"
)

// staticCredentialVerifier accepts exactly one username/password pair.
// Both comparisons are constant-time and both always run.
type staticCredentialVerifier struct {
	username string
	password string
}

func (v staticCredentialVerifier) Verify(_ context.Context, username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(v.password)) == 1
	return userOK && passOK
}

// staticTokenValidator accepts exactly one token string.
type staticTokenValidator struct {
	token string
}

func (v staticTokenValidator) Validate(_ context.Context, token string) bool {
	return subtle.ConstantTimeCompare([]byte(token), []byte(v.token)) == 1
}

// ValidateToken reports whether token matches [DefaultToken]. It is a
// convenience for callers that have no [Engine]; validation against a
// configured token, with metrics and audit, lives on [Engine.ValidateToken].
func ValidateToken(token string) bool {
	return staticTokenValidator{token: DefaultToken}.Validate(context.Background(), token)
}
