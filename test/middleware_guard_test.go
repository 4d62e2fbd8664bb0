package test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	goBoard "github.com/MrEthical07/goBoard"
	"github.com/MrEthical07/goBoard/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestGuardRejectsMalformedAuthorizationHeaders(t *testing.T) {
	engine := newHTTPTestEngine(t)
	handler := middleware.RequireToken(engine)(okHandler())

	cases := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Token " + goBoard.DefaultToken},
		{name: "lowercase scheme", header: "bearer " + goBoard.DefaultToken},
		{name: "scheme only", header: "Bearer"},
		{name: "empty token", header: "Bearer "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestGuardNilEngineAlwaysUnauthorized(t *testing.T) {
	handler := middleware.Guard(nil, goBoard.ModeToken)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+goBoard.DefaultToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 from a nil engine, got %d", rec.Code)
	}
}

func TestGuardInheritFollowsEngineConfig(t *testing.T) {
	cfg := goBoard.DefaultConfig()
	cfg.GuardMode = goBoard.ModeSession

	engine, err := goBoard.New().WithConfig(cfg).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	handler := middleware.Guard(engine, goBoard.ModeInherit)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 while logged out, got %d", rec.Code)
	}

	if !engine.Login(context.Background(), goBoard.DefaultUsername, goBoard.DefaultPassword) {
		t.Fatal("expected login to succeed")
	}

	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after login, got %d", rec.Code)
	}
}

func TestAuthResultAbsentOutsideGuard(t *testing.T) {
	var sawResult bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawResult = middleware.AuthResultFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if sawResult {
		t.Fatal("expected no auth result on an unguarded route")
	}
}

func TestClientInfoPropagatesIntoAuditEvents(t *testing.T) {
	cfg := goBoard.DefaultConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.BufferSize = 16

	sink := goBoard.NewChannelSink(8)
	engine, err := goBoard.New().WithConfig(cfg).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	login := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		engine.Login(r.Context(), goBoard.DefaultUsername, goBoard.DefaultPassword)
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.ClientInfo(login)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "203.0.113.7:51000"
	req.Header.Set("User-Agent", "guard-test/1.0")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	select {
	case ev := <-sink.Events():
		if ev.EventType != "login_success" {
			t.Fatalf("expected login_success event, got %q", ev.EventType)
		}
		if ev.IP != "203.0.113.7" {
			t.Fatalf("expected remote IP without port, got %q", ev.IP)
		}
		if ev.UserAgent != "guard-test/1.0" {
			t.Fatalf("expected request user agent, got %q", ev.UserAgent)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for login event")
	}
}
