package otel

import (
	"context"
	"errors"
	"fmt"

	goBoard "github.com/MrEthical07/goBoard"
	"github.com/MrEthical07/goBoard/metrics/export/internaldefs"
	"go.opentelemetry.io/otel/metric"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil metrics source")
)

type metricsSource interface {
	MetricsSnapshot() goBoard.MetricsSnapshot
	AuditDropped() uint64
}

// counterBinding ties a core metric ID to its observable instrument.
type counterBinding struct {
	id      goBoard.MetricID
	counter metric.Int64ObservableCounter
}

// histogramBinding mirrors one core histogram as per-bucket cumulative
// gauges plus a sample-count gauge; the observable metric API has no
// pre-aggregated histogram instrument to feed directly.
type histogramBinding struct {
	id      goBoard.MetricID
	buckets [8]metric.Int64ObservableGauge
	count   metric.Int64ObservableGauge
}

// OTelExporter bridges engine metrics into an OpenTelemetry meter. All
// instruments are observable: values are pulled from MetricsSnapshot inside
// a single registered callback, never pushed.
type OTelExporter struct {
	source       metricsSource
	registration metric.Registration
	counters     []counterBinding
	histograms   []histogramBinding
	auditDropped metric.Int64ObservableCounter
}

// NewOTelExporter registers observable instruments for the engine's metrics
// on meter. Close unregisters them.
func NewOTelExporter(meter metric.Meter, engine *goBoard.Engine) (*OTelExporter, error) {
	return NewOTelExporterFromSource(meter, engine)
}

// NewOTelExporterFromSource is [NewOTelExporter] for a custom snapshot source.
func NewOTelExporterFromSource(meter metric.Meter, source metricsSource) (*OTelExporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	e := &OTelExporter{source: source}

	observables := make([]metric.Observable, 0, len(internaldefs.CounterDefs)+len(internaldefs.HistogramDefs)*9+1)
	observables, err := e.buildCounters(meter, observables)
	if err != nil {
		return nil, err
	}
	observables, err = e.buildHistograms(meter, observables)
	if err != nil {
		return nil, err
	}

	e.auditDropped, err = meter.Int64ObservableCounter(
		"goboard_audit_dropped_total",
		metric.WithDescription("Dropped audit events due to dispatcher backpressure."),
	)
	if err != nil {
		return nil, fmt.Errorf("create audit dropped counter: %w", err)
	}
	observables = append(observables, e.auditDropped)

	e.registration, err = meter.RegisterCallback(e.observe, observables...)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}
	return e, nil
}

func (e *OTelExporter) buildCounters(meter metric.Meter, observables []metric.Observable) ([]metric.Observable, error) {
	e.counters = make([]counterBinding, 0, len(internaldefs.CounterDefs))
	for _, def := range internaldefs.CounterDefs {
		counter, err := meter.Int64ObservableCounter(def.Name, metric.WithDescription(def.Help))
		if err != nil {
			return nil, fmt.Errorf("create observable counter %s: %w", def.Name, err)
		}
		e.counters = append(e.counters, counterBinding{id: def.ID, counter: counter})
		observables = append(observables, counter)
	}
	return observables, nil
}

func (e *OTelExporter) buildHistograms(meter metric.Meter, observables []metric.Observable) ([]metric.Observable, error) {
	e.histograms = make([]histogramBinding, 0, len(internaldefs.HistogramDefs))
	for _, def := range internaldefs.HistogramDefs {
		binding := histogramBinding{id: def.ID}
		for i, suffix := range internaldefs.HistogramBoundSuffix {
			name := def.Name + "_bucket_le_" + suffix
			gauge, err := meter.Int64ObservableGauge(name, metric.WithDescription("Cumulative histogram bucket count."))
			if err != nil {
				return nil, fmt.Errorf("create histogram bucket gauge %s: %w", name, err)
			}
			binding.buckets[i] = gauge
			observables = append(observables, gauge)
		}

		countName := def.Name + "_count"
		countGauge, err := meter.Int64ObservableGauge(countName, metric.WithDescription("Histogram total sample count."))
		if err != nil {
			return nil, fmt.Errorf("create histogram count gauge %s: %w", countName, err)
		}
		binding.count = countGauge
		observables = append(observables, countGauge)
		e.histograms = append(e.histograms, binding)
	}
	return observables, nil
}

// observe is the single registered callback; it reads one snapshot and feeds
// every instrument from it so a collection cycle is internally consistent.
func (e *OTelExporter) observe(_ context.Context, observer metric.Observer) error {
	snapshot := e.source.MetricsSnapshot()

	for _, binding := range e.counters {
		observer.ObserveInt64(binding.counter, int64(snapshot.Counters[binding.id]))
	}
	for _, binding := range e.histograms {
		cumulative := internaldefs.CumulativeBuckets(internaldefs.NormalizeBuckets(snapshot.Histograms[binding.id]))
		for i := range cumulative {
			observer.ObserveInt64(binding.buckets[i], int64(cumulative[i]))
		}
		observer.ObserveInt64(binding.count, int64(cumulative[len(cumulative)-1]))
	}
	observer.ObserveInt64(e.auditDropped, int64(e.source.AuditDropped()))
	return nil
}

// Close unregisters the collection callback. Safe on nil.
func (e *OTelExporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}
