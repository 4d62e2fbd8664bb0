package goBoard

import (
	"sync/atomic"
	"time"
)

// MetricID defines a public type used by goBoard APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricLoginSuccess is an exported constant or variable used by the board engine.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure is an exported constant or variable used by the board engine.
	MetricLoginFailure
	// MetricLogout is an exported constant or variable used by the board engine.
	MetricLogout
	// MetricTokenValid is an exported constant or variable used by the board engine.
	MetricTokenValid
	// MetricTokenInvalid is an exported constant or variable used by the board engine.
	MetricTokenInvalid
	// MetricElementAdded is an exported constant or variable used by the board engine.
	MetricElementAdded
	// MetricBoardCleared is an exported constant or variable used by the board engine.
	MetricBoardCleared
	// MetricWriteDenied is an exported constant or variable used by the board engine.
	MetricWriteDenied
	// MetricTokenCheckLatency is an exported constant or variable used by the board engine.
	MetricTokenCheckLatency
	metricIDCount
)

const (
	histBucketCount = 8
	cacheLineSize   = 64
)

// latencyBucketBoundsMs are the inclusive upper bounds of the first seven
// histogram buckets; everything slower lands in the eighth. They match
// internaldefs.HistogramBounds.
var latencyBucketBoundsMs = [histBucketCount - 1]int64{5, 10, 25, 50, 100, 250, 500}

// paddedCounter keeps each counter on its own cache line so concurrent
// increments of different IDs do not contend.
type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics is the engine's lock-free counter set. Token check latency is the
// only histogram-tracked operation; every other ID is a plain counter.
// All methods are safe on a nil receiver and from concurrent goroutines.
type Metrics struct {
	enabled      bool
	trackLatency bool

	counters [metricIDCount]paddedCounter
	latency  [histBucketCount]uint64
}

// MetricsSnapshot defines a public type used by goBoard APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot struct {
	Counters   map[MetricID]uint64
	Histograms map[MetricID][]uint64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
//
// NewMetrics may return an error when input validation, dependency calls, or security checks fail.
// NewMetrics does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{
		enabled:      cfg.Enabled,
		trackLatency: cfg.Enabled && cfg.EnableLatencyHistograms,
	}
}

// Enabled reports whether counters are collected.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// LatencyEnabled reports whether token check latency is histogram-tracked.
func (m *Metrics) LatencyEnabled() bool {
	return m != nil && m.trackLatency
}

// Inc describes the inc operation and its observable behavior.
//
// Inc may return an error when input validation, dependency calls, or security checks fail.
// Inc does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Observe describes the observe operation and its observable behavior.
//
// Observe may return an error when input validation, dependency calls, or security checks fail.
// Observe does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Observe(id MetricID, d time.Duration) {
	if m == nil || !m.trackLatency || id != MetricTokenCheckLatency {
		return
	}
	atomic.AddUint64(&m.latency[latencyBucket(d)], 1)
}

// Value describes the value operation and its observable behavior.
//
// Value may return an error when input validation, dependency calls, or security checks fail.
// Value does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot describes the snapshot operation and its observable behavior.
//
// Snapshot may return an error when input validation, dependency calls, or security checks fail.
// Snapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}

	s := MetricsSnapshot{
		Counters:   make(map[MetricID]uint64, int(metricIDCount)),
		Histograms: make(map[MetricID][]uint64, 1),
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}

	if m.trackLatency {
		buckets := make([]uint64, histBucketCount)
		for i := range buckets {
			buckets[i] = atomic.LoadUint64(&m.latency[i])
		}
		s.Histograms[MetricTokenCheckLatency] = buckets
	}

	return s
}

func latencyBucket(d time.Duration) int {
	ms := d.Milliseconds()
	for i, bound := range latencyBucketBoundsMs {
		if ms <= bound {
			return i
		}
	}
	return histBucketCount - 1
}
