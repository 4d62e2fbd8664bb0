package middleware

import (
	"context"
	"net/http"
	"strings"

	goBoard "github.com/MrEthical07/goBoard"
)

type authResultContextKey struct{}

func AuthResultFromContext(ctx context.Context) (*goBoard.AuthResult, bool) {
	res, ok := ctx.Value(authResultContextKey{}).(*goBoard.AuthResult)
	return res, ok
}

func Guard(engine *goBoard.Engine, routeMode goBoard.RouteMode) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			// Session-guarded routes carry no Authorization header; an empty
			// token is rejected by the engine when the mode requires one.
			token, _ := bearerToken(r.Header.Get("Authorization"))

			res, err := engine.Authorize(r.Context(), token, routeMode)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), authResultContextKey{}, res)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
