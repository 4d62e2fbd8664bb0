package middleware

import (
	"net/http"

	goBoard "github.com/MrEthical07/goBoard"
)

func RequireSession(engine *goBoard.Engine) func(http.Handler) http.Handler {
	return Guard(engine, goBoard.ModeSession)
}
