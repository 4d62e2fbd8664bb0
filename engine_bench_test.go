package goBoard

import (
	"context"
	"testing"

	"github.com/MrEthical07/goBoard/board"
)

func BenchmarkLogin(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b)
	defer cleanup()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !engine.Login(context.Background(), DefaultUsername, DefaultPassword) {
			b.Fatal("login rejected")
		}
		engine.Logout(context.Background())
	}
}

func BenchmarkValidateToken(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b)
	defer cleanup()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !engine.ValidateToken(context.Background(), DefaultToken) {
			b.Fatal("token rejected")
		}
	}
}

func BenchmarkValidateTokenLatencyObserved(b *testing.B) {
	engine, err := New().
		WithMetricsEnabled(true).
		WithLatencyHistograms(true).
		Build()
	if err != nil {
		b.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !engine.ValidateToken(context.Background(), DefaultToken) {
			b.Fatal("token rejected")
		}
	}
}

func BenchmarkEngineAddElement(b *testing.B) {
	engine, cleanup := newBenchmarkEngine(b)
	defer cleanup()

	if !engine.Login(context.Background(), DefaultUsername, DefaultPassword) {
		b.Fatal("login rejected")
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := engine.AddElement(context.Background(), i); err != nil {
			b.Fatalf("add element failed: %v", err)
		}
		// Drop the backlog periodically so append cost stays representative.
		if i&0xfff == 0xfff {
			if err := engine.ClearBoard(context.Background()); err != nil {
				b.Fatalf("clear failed: %v", err)
			}
		}
	}
}

func newBenchmarkEngine(tb testing.TB) (*Engine, func()) {
	tb.Helper()

	cfg := defaultConfig()
	cfg.Metrics.Enabled = false
	cfg.Audit.Enabled = false

	engine, err := New().
		WithConfig(cfg).
		WithCanvas(board.New(board.Size{Width: 1920, Height: 1080})).
		Build()
	if err != nil {
		tb.Fatalf("Build failed: %v", err)
	}

	return engine, engine.Close
}
