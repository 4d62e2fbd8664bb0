// Package prometheus provides Prometheus collectors for goBoard metrics.
//
// [NewPrometheusExporter] accepts an [goBoard.Engine] and exposes an [http.Handler]
// that renders all goBoard counters and histograms in Prometheus text exposition format.
// Counter names are prefixed goboard_*_total; the single histogram is
// goboard_token_check_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
