package prometheus

import (
	"fmt"
	"net/http"
	"strings"

	goBoard "github.com/MrEthical07/goBoard"
	"github.com/MrEthical07/goBoard/metrics/export/internaldefs"
)

type metricsSource interface {
	MetricsSnapshot() goBoard.MetricsSnapshot
	AuditDropped() uint64
}

var helpEscaper = strings.NewReplacer("\\", "\\\\", "\n", "\\n")

// PrometheusExporter renders goBoard metrics in Prometheus text exposition format.
//
//	Docs: docs/metrics.md
type PrometheusExporter struct {
	source metricsSource
}

// NewPrometheusExporter creates a Prometheus exporter that reads from the given [goBoard.Engine].
//
//	Docs: docs/metrics.md
func NewPrometheusExporter(engine *goBoard.Engine) *PrometheusExporter {
	return &PrometheusExporter{source: engine}
}

// NewPrometheusExporterFromSource creates a Prometheus exporter from a
// custom [MetricsSource].
//
//	Docs: docs/metrics.md
func NewPrometheusExporterFromSource(source metricsSource) *PrometheusExporter {
	return &PrometheusExporter{source: source}
}

// Handler returns an http.Handler that serves Prometheus metrics.
//
//	Docs: docs/metrics.md
func (p *PrometheusExporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(p.Render()))
	})
}

// Render writes the current metrics in Prometheus text exposition format.
// Disabled metrics render as an empty document rather than a page of zeros.
//
//	Docs: docs/metrics.md
func (p *PrometheusExporter) Render() string {
	if p == nil || p.source == nil {
		return ""
	}

	snapshot := p.source.MetricsSnapshot()
	dropped := p.source.AuditDropped()
	if len(snapshot.Counters) == 0 && len(snapshot.Histograms) == 0 && dropped == 0 {
		return ""
	}

	var out strings.Builder
	out.Grow(8192)

	for _, def := range internaldefs.CounterDefs {
		renderCounter(&out, def.Name, def.Help, snapshot.Counters[def.ID])
	}
	for _, def := range internaldefs.HistogramDefs {
		observed := internaldefs.NormalizeBuckets(snapshot.Histograms[def.ID])
		renderHistogram(&out, def.Name, def.Help, internaldefs.CumulativeBuckets(observed))
	}
	renderCounter(&out, "goboard_audit_dropped_total", "Dropped audit events due to dispatcher backpressure.", dropped)

	return out.String()
}

func renderCounter(out *strings.Builder, name, help string, value uint64) {
	fmt.Fprintf(out, "# HELP %s %s\n", name, helpEscaper.Replace(help))
	fmt.Fprintf(out, "# TYPE %s counter\n", name)
	fmt.Fprintf(out, "%s %d\n", name, value)
}

func renderHistogram(out *strings.Builder, name, help string, cumulative [8]uint64) {
	fmt.Fprintf(out, "# HELP %s %s\n", name, helpEscaper.Replace(help))
	fmt.Fprintf(out, "# TYPE %s histogram\n", name)

	for i, le := range internaldefs.HistogramBounds {
		fmt.Fprintf(out, "%s_bucket{le=%q} %d\n", name, le, cumulative[i])
	}

	// Sum is not tracked in core snapshots; the field stays for scrapers that
	// expect the full histogram triple.
	fmt.Fprintf(out, "%s_count %d\n", name, cumulative[len(cumulative)-1])
	fmt.Fprintf(out, "%s_sum 0\n", name)
}
