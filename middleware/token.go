package middleware

import (
	"net/http"

	goBoard "github.com/MrEthical07/goBoard"
)

// RequireToken returns middleware that overrides the guard mode to
// [goBoard.ModeToken] for the wrapped handler, ignoring session state.
//
//	Docs: docs/middleware.md
func RequireToken(engine *goBoard.Engine) func(http.Handler) http.Handler {
	return Guard(engine, goBoard.ModeToken)
}
