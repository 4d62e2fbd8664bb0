package goBoard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrEthical07/goBoard/board"
)

func newBoardTestEngine(t *testing.T, cfg Config) (*Engine, func()) {
	t.Helper()

	engine, err := New().
		WithConfig(cfg).
		WithCanvas(board.New(board.Size{Width: 48, Height: 48})).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return engine, engine.Close
}

func TestAddElementRequiresLoginWhenGated(t *testing.T) {
	engine, done := newBoardTestEngine(t, defaultConfig())
	defer done()

	if err := engine.AddElement(context.Background(), "stroke-1"); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if got := len(engine.BoardElements()); got != 0 {
		t.Fatalf("expected denied write to leave the board empty, got %d elements", got)
	}
}

func TestAddElementAppendsAfterLogin(t *testing.T) {
	engine, done := newBoardTestEngine(t, defaultConfig())
	defer done()

	if !engine.Login(context.Background(), DefaultUsername, DefaultPassword) {
		t.Fatal("expected login to succeed")
	}

	// Elements are opaque to the board; any JSON-ish value is accepted as is.
	elements := []board.Element{
		map[string]any{"type": "stroke", "x": 10, "y": 20},
		"annotation",
		42,
	}
	for _, el := range elements {
		if err := engine.AddElement(context.Background(), el); err != nil {
			t.Fatalf("AddElement failed: %v", err)
		}
	}

	got := engine.BoardElements()
	if len(got) != len(elements) {
		t.Fatalf("expected %d elements, got %d", len(elements), len(got))
	}
	if got[1] != "annotation" || got[2] != 42 {
		t.Fatalf("expected insertion order to be preserved, got %v", got)
	}

	info, err := engine.BoardInfo()
	if err != nil {
		t.Fatalf("BoardInfo failed: %v", err)
	}
	if !info.Attached {
		t.Fatal("expected board info to report an attached canvas")
	}
	if info.Elements != len(elements) {
		t.Fatalf("expected %d elements in board info, got %d", len(elements), info.Elements)
	}
	if info.Size != (board.Size{Width: 48, Height: 48}) {
		t.Fatalf("unexpected board size %+v", info.Size)
	}
}

func TestAddElementUngatedWhenRequireLoginDisabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Canvas.RequireLogin = false

	engine, done := newBoardTestEngine(t, cfg)
	defer done()

	if err := engine.AddElement(context.Background(), "open-stroke"); err != nil {
		t.Fatalf("expected ungated write to succeed, got %v", err)
	}
	if got := len(engine.BoardElements()); got != 1 {
		t.Fatalf("expected 1 element, got %d", got)
	}
}

func TestClearBoardResetsElementsKeepsSize(t *testing.T) {
	engine, done := newBoardTestEngine(t, defaultConfig())
	defer done()

	if !engine.Login(context.Background(), DefaultUsername, DefaultPassword) {
		t.Fatal("expected login to succeed")
	}
	for i := 0; i < 3; i++ {
		if err := engine.AddElement(context.Background(), i); err != nil {
			t.Fatalf("AddElement failed: %v", err)
		}
	}

	if err := engine.ClearBoard(context.Background()); err != nil {
		t.Fatalf("ClearBoard failed: %v", err)
	}

	info, err := engine.BoardInfo()
	if err != nil {
		t.Fatalf("BoardInfo failed: %v", err)
	}
	if info.Elements != 0 {
		t.Fatalf("expected cleared board, got %d elements", info.Elements)
	}
	if info.Size != (board.Size{Width: 48, Height: 48}) {
		t.Fatalf("expected clear to keep the size, got %+v", info.Size)
	}
	if got := len(engine.BoardElements()); got != 0 {
		t.Fatalf("expected no elements after clear, got %d", got)
	}
}

func TestClearBoardDeniedWhenLoggedOut(t *testing.T) {
	engine, done := newBoardTestEngine(t, defaultConfig())
	defer done()

	if !engine.Login(context.Background(), DefaultUsername, DefaultPassword) {
		t.Fatal("expected login to succeed")
	}
	if err := engine.AddElement(context.Background(), "stroke-1"); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}
	engine.Logout(context.Background())

	if err := engine.ClearBoard(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if got := len(engine.BoardElements()); got != 1 {
		t.Fatalf("expected denied clear to leave elements intact, got %d", got)
	}
}

func TestWriteOpsWithoutCanvas(t *testing.T) {
	engine, done := newTestEngine(t)
	defer done()

	if !engine.Login(context.Background(), DefaultUsername, DefaultPassword) {
		t.Fatal("expected login to succeed")
	}

	if err := engine.AddElement(context.Background(), "stroke-1"); !errors.Is(err, ErrNoCanvas) {
		t.Fatalf("expected ErrNoCanvas from AddElement, got %v", err)
	}
	if err := engine.ClearBoard(context.Background()); !errors.Is(err, ErrNoCanvas) {
		t.Fatalf("expected ErrNoCanvas from ClearBoard, got %v", err)
	}

	info, err := engine.BoardInfo()
	if err != nil {
		t.Fatalf("BoardInfo failed: %v", err)
	}
	if info.Attached {
		t.Fatal("expected detached board info")
	}
	if engine.BoardElements() != nil {
		t.Fatal("expected nil elements on a detached engine")
	}
}

func TestWriteDeniedEmitsAuditAndMetric(t *testing.T) {
	cfg := defaultConfig()
	cfg.Audit.Enabled = true
	cfg.Audit.BufferSize = 16
	cfg.Metrics.Enabled = true

	sink := newCaptureSink(8)
	engine, err := New().
		WithConfig(cfg).
		WithCanvas(board.New(board.Size{Width: 48, Height: 48})).
		WithAuditSink(sink).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	defer engine.Close()

	if err := engine.AddElement(context.Background(), "stroke-1"); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}

	snapshot := engine.MetricsSnapshot()
	if got := snapshot.Counters[MetricWriteDenied]; got != 1 {
		t.Fatalf("expected 1 denied write, got %d", got)
	}
	if got := snapshot.Counters[MetricElementAdded]; got != 0 {
		t.Fatalf("expected no added elements, got %d", got)
	}

	select {
	case ev := <-sink.events:
		if ev.EventType != auditEventWriteDenied {
			t.Fatalf("expected write_denied event, got %q", ev.EventType)
		}
		if ev.Success {
			t.Fatal("expected denied write event to report failure")
		}
		if ev.Error != string(auditErrNotAuthenticated) {
			t.Fatalf("expected not_authenticated error code, got %q", ev.Error)
		}
		if ev.LoginID != "" {
			t.Fatalf("expected no login ID on a denied write, got %q", ev.LoginID)
		}
		if ev.Metadata["operation"] != "add_element" {
			t.Fatalf("expected operation=add_element, got %q", ev.Metadata["operation"])
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for write_denied event")
	}
}

func TestBoardElementsReadIsUngated(t *testing.T) {
	engine, done := newBoardTestEngine(t, defaultConfig())
	defer done()

	if !engine.Login(context.Background(), DefaultUsername, DefaultPassword) {
		t.Fatal("expected login to succeed")
	}
	if err := engine.AddElement(context.Background(), "stroke-1"); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}
	if err := engine.AddElement(context.Background(), "stroke-2"); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}
	engine.Logout(context.Background())

	if got := len(engine.BoardElements()); got != 2 {
		t.Fatalf("expected reads to stay open after logout, got %d elements", got)
	}
}

func TestBoardElementsReturnsCopy(t *testing.T) {
	engine, done := newBoardTestEngine(t, defaultConfig())
	defer done()

	if !engine.Login(context.Background(), DefaultUsername, DefaultPassword) {
		t.Fatal("expected login to succeed")
	}
	if err := engine.AddElement(context.Background(), "original"); err != nil {
		t.Fatalf("AddElement failed: %v", err)
	}

	leaked := engine.BoardElements()
	leaked[0] = "mutated"

	if got := engine.BoardElements(); got[0] != "original" {
		t.Fatalf("expected board contents to be isolated from returned slices, got %v", got[0])
	}
}
