package goBoard

import (
	"context"
	"strconv"

	"github.com/MrEthical07/goBoard/board"
)

// AddElement describes the addelement operation and its observable behavior.
//
// AddElement may return an error when input validation, dependency calls, or security checks fail.
// AddElement does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AddElement(ctx context.Context, el board.Element) error {
	if e == nil {
		return ErrEngineNotReady
	}
	if e.canvas == nil {
		e.emitAudit(ctx, auditEventElementAdded, false, e.loginID, ErrNoCanvas, nil)
		return ErrNoCanvas
	}
	if e.config.Canvas.RequireLogin && !e.authenticated {
		e.metricInc(MetricWriteDenied)
		e.emitAudit(ctx, auditEventWriteDenied, false, "", ErrNotAuthenticated, func() map[string]string {
			return map[string]string{
				"operation": "add_element",
			}
		})
		return ErrNotAuthenticated
	}

	e.canvas.AddElement(el)

	e.metricInc(MetricElementAdded)
	e.emitAudit(ctx, auditEventElementAdded, true, e.loginID, nil, func() map[string]string {
		return map[string]string{
			"elements": strconv.Itoa(e.canvas.Len()),
		}
	})

	return nil
}

// ClearBoard describes the clearboard operation and its observable behavior.
//
// ClearBoard may return an error when input validation, dependency calls, or security checks fail.
// ClearBoard does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) ClearBoard(ctx context.Context) error {
	if e == nil {
		return ErrEngineNotReady
	}
	if e.canvas == nil {
		e.emitAudit(ctx, auditEventBoardCleared, false, e.loginID, ErrNoCanvas, nil)
		return ErrNoCanvas
	}
	if e.config.Canvas.RequireLogin && !e.authenticated {
		e.metricInc(MetricWriteDenied)
		e.emitAudit(ctx, auditEventWriteDenied, false, "", ErrNotAuthenticated, func() map[string]string {
			return map[string]string{
				"operation": "clear_board",
			}
		})
		return ErrNotAuthenticated
	}

	removed := e.canvas.Len()
	e.canvas.Clear()

	e.metricInc(MetricBoardCleared)
	e.emitAudit(ctx, auditEventBoardCleared, true, e.loginID, nil, func() map[string]string {
		return map[string]string{
			"elements_removed": strconv.Itoa(removed),
		}
	})

	return nil
}

// BoardElements returns a copy of the attached canvas contents in insertion
// order. Reads are never gated by RequireLogin. A detached engine returns nil.
func (e *Engine) BoardElements() []board.Element {
	if e == nil || e.canvas == nil {
		return nil
	}
	return e.canvas.Elements()
}
