package goBoard

import "errors"

var (
	// ErrUnauthorized is an exported constant or variable used by the board engine.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is an exported constant or variable used by the board engine.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is an exported constant or variable used by the board engine.
	ErrInvalidToken = errors.New("invalid token")
	// ErrNotAuthenticated is an exported constant or variable used by the board engine.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNoCanvas is an exported constant or variable used by the board engine.
	ErrNoCanvas = errors.New("no canvas attached")
	// ErrInvalidGuardMode is an exported constant or variable used by the board engine.
	ErrInvalidGuardMode = errors.New("invalid guard mode")
	// ErrPlaceholderCredentials is an exported constant or variable used by the board engine.
	ErrPlaceholderCredentials = errors.New("placeholder credentials in production mode")
	// ErrPlaceholderToken is an exported constant or variable used by the board engine.
	ErrPlaceholderToken = errors.New("placeholder static token in production mode")
	// ErrEngineNotReady is an exported constant or variable used by the board engine.
	ErrEngineNotReady = errors.New("engine not initialized")
)
