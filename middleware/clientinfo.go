package middleware

import (
	"net"
	"net/http"

	goBoard "github.com/MrEthical07/goBoard"
)

// ClientInfo copies the request's remote IP and User-Agent header into the
// request context so engine audit events carry them.
func ClientInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			ctx = goBoard.WithClientIP(ctx, host)
		} else if r.RemoteAddr != "" {
			ctx = goBoard.WithClientIP(ctx, r.RemoteAddr)
		}
		if ua := r.UserAgent(); ua != "" {
			ctx = goBoard.WithUserAgent(ctx, ua)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
