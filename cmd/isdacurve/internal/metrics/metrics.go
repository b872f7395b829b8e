// Package metrics records calibration counters and histograms for the
// isdacurve command and exports them in the Prometheus text format.
//
// Exported series:
//
//   - isdacurve_calibrations_total: counter by kind and outcome
//   - isdacurve_calibration_duration_seconds: histogram by kind
//   - isdacurve_node_iterations: histogram of root finder iterations by kind
//   - isdacurve_curve_nodes: gauge of nodes in the last curve by kind and name
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "isdacurve"

// Outcomes recorded on the calibrations counter.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Recorder owns a private registry. A nil *Recorder discards everything.
type Recorder struct {
	registry     *prometheus.Registry
	calibrations *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	iterations   *prometheus.HistogramVec
	nodes        *prometheus.GaugeVec
}

// New returns a recorder with every collector registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calibrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calibrations_total",
			Help:      "Curve calibrations by kind and outcome.",
		}, []string{"kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calibration_duration_seconds",
			Help:      "Wall time of one curve calibration.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 14),
		}, []string{"kind"}),
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "node_iterations",
			Help:      "Root finder iterations per calibrated node.",
			Buckets:   []float64{2, 4, 8, 16, 32, 64, 128},
		}, []string{"kind"}),
		nodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "curve_nodes",
			Help:      "Nodes in the last calibrated curve.",
		}, []string{"kind", "name"}),
	}
	r.registry.MustRegister(r.calibrations, r.duration, r.iterations, r.nodes)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Calibration records one successful calibration.
func (r *Recorder) Calibration(kind, name string, elapsed time.Duration, iterations []int) {
	if r == nil {
		return
	}
	r.calibrations.WithLabelValues(kind, OutcomeSuccess).Inc()
	r.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
	h := r.iterations.WithLabelValues(kind)
	for _, n := range iterations {
		h.Observe(float64(n))
	}
	r.nodes.WithLabelValues(kind, name).Set(float64(len(iterations)))
}

// Failure records one failed calibration.
func (r *Recorder) Failure(kind string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.calibrations.WithLabelValues(kind, OutcomeFailure).Inc()
	r.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// WriteFile writes every series to path in the node exporter textfile
// format. The file is replaced atomically.
func (r *Recorder) WriteFile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
