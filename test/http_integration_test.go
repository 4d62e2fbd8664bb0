package test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goBoard "github.com/MrEthical07/goBoard"
	"github.com/MrEthical07/goBoard/board"
	promexport "github.com/MrEthical07/goBoard/metrics/export/prometheus"
	"github.com/MrEthical07/goBoard/middleware"
)

func newHTTPTestEngine(t *testing.T) *goBoard.Engine {
	t.Helper()

	cfg := goBoard.DefaultConfig()
	cfg.Metrics.Enabled = true

	engine, err := goBoard.New().
		WithConfig(cfg).
		WithCanvas(board.New(board.Size{Width: 64, Height: 64})).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	return engine
}

func TestTokenGuardedRouteEndToEnd(t *testing.T) {
	engine := newHTTPTestEngine(t)

	var captured *goBoard.AuthResult
	handler := middleware.RequireToken(engine)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if res, ok := middleware.AuthResultFromContext(r.Context()); ok {
			captured = res
		}
		w.WriteHeader(http.StatusOK)
	}))

	// No Authorization header: the empty token is rejected.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/board", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/board", nil)
	req.Header.Set("Authorization", "Bearer "+goBoard.DefaultToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
	if captured == nil || captured.Method != goBoard.AuthMethodToken {
		t.Fatalf("expected token auth result, got %+v", captured)
	}

	// Both outcomes are visible on the metrics surface.
	rec = httptest.NewRecorder()
	promexport.NewPrometheusExporter(engine).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, "goboard_token_valid_total 1") {
		t.Fatalf("expected accepted token in exposition, got:\n%s", body)
	}
	if !strings.Contains(body, "goboard_token_invalid_total 1") {
		t.Fatalf("expected rejected token in exposition, got:\n%s", body)
	}
}

func TestSessionGuardedRouteEndToEnd(t *testing.T) {
	engine := newHTTPTestEngine(t)
	ctx := context.Background()

	var captured *goBoard.AuthResult
	handler := middleware.RequireSession(engine)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if res, ok := middleware.AuthResultFromContext(r.Context()); ok {
			captured = res
		}
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/elements", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", rec.Code)
	}

	if !engine.Login(ctx, goBoard.DefaultUsername, goBoard.DefaultPassword) {
		t.Fatal("expected login success")
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/elements", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after login, got %d", rec.Code)
	}
	if captured == nil || captured.Method != goBoard.AuthMethodSession || captured.LoginID == "" {
		t.Fatalf("expected session auth result with login ID, got %+v", captured)
	}

	engine.Logout(ctx)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/elements", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}
