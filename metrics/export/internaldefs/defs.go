package internaldefs

import (
	goBoard "github.com/MrEthical07/goBoard"
)

// CounterDef defines a public type used by goBoard APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goBoard.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goBoard APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goBoard.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the board engine.
var CounterDefs = []CounterDef{
	{ID: goBoard.MetricLoginSuccess, Name: "goboard_login_success_total", Help: "Successful login attempts."},
	{ID: goBoard.MetricLoginFailure, Name: "goboard_login_failure_total", Help: "Failed login attempts."},
	{ID: goBoard.MetricLogout, Name: "goboard_logout_total", Help: "Logout operations."},
	{ID: goBoard.MetricTokenValid, Name: "goboard_token_valid_total", Help: "Accepted token validations."},
	{ID: goBoard.MetricTokenInvalid, Name: "goboard_token_invalid_total", Help: "Rejected token validations."},
	{ID: goBoard.MetricElementAdded, Name: "goboard_element_added_total", Help: "Elements appended to the canvas."},
	{ID: goBoard.MetricBoardCleared, Name: "goboard_board_cleared_total", Help: "Canvas clear operations."},
	{ID: goBoard.MetricWriteDenied, Name: "goboard_write_denied_total", Help: "Canvas writes denied by the login gate."},
}

// HistogramDefs is an exported constant or variable used by the board engine.
var HistogramDefs = []HistogramDef{
	{ID: goBoard.MetricTokenCheckLatency, Name: "goboard_token_check_latency_seconds", Help: "Token check latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the board engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the board engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
