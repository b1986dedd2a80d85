// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics records Prometheus metrics for a conversion run. A one-shot
// CLI has no scrape endpoint, so the registry is flushed to a file in the
// node_exporter textfile format when the run ends.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels the result of one conversion.
type Outcome string

const (
	OutcomeConverted     Outcome = "converted"
	OutcomeOutputMissing Outcome = "output_missing"
	OutcomeImportFailed  Outcome = "import_failed"
	OutcomeExportFailed  Outcome = "export_failed"
)

// Recorder holds the metrics of a run on a private registry. A nil *Recorder
// is valid and records nothing.
type Recorder struct {
	reg         *prometheus.Registry
	conversions *prometheus.CounterVec
	duration    prometheus.Histogram
	triangles   prometheus.Gauge
	outputBytes prometheus.Gauge
}

// NewRecorder creates a recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		reg: reg,
		conversions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meshconv_conversions_total",
				Help: "Conversions attempted, by outcome",
			},
			[]string{"outcome"},
		),
		duration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "meshconv_conversion_duration_seconds",
				Help:    "Wall time of a conversion from scene clear to size report",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		triangles: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "meshconv_imported_triangles",
				Help: "Triangles in the scene after the last import",
			},
		),
		outputBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "meshconv_output_bytes",
				Help: "Size of the last written container file in bytes",
			},
		),
	}
}

// ObserveConversion counts one conversion with the given outcome.
func (r *Recorder) ObserveConversion(outcome Outcome, d time.Duration) {
	if r == nil {
		return
	}
	r.conversions.WithLabelValues(string(outcome)).Inc()
	r.duration.Observe(d.Seconds())
}

// SetTriangles records the imported triangle count.
func (r *Recorder) SetTriangles(n int) {
	if r == nil {
		return
	}
	r.triangles.Set(float64(n))
}

// SetOutputBytes records the size of the written file.
func (r *Recorder) SetOutputBytes(n int64) {
	if r == nil {
		return
	}
	r.outputBytes.Set(float64(n))
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes every metric to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.reg)
}
