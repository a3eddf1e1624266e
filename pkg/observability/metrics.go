package observability

import (
	"time"

	"github.com/aretw0/calcli/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records what the REPL processed. A nil *Metrics is valid and records nothing.
type Metrics struct {
	lines     *prometheus.CounterVec
	errors    *prometheus.CounterVec
	duration  prometheus.Histogram
	variables prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		lines: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calcli_lines_total",
				Help: "Processed input lines by outcome kind",
			},
			[]string{"kind"},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calcli_errors_total",
				Help: "Rejected input lines by error class",
			},
			[]string{"class"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "calcli_line_duration_seconds",
				Help:    "Time spent processing one input line",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
		),
		variables: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "calcli_variables",
				Help: "Number of variables defined in the session",
			},
		),
	}
	reg.MustRegister(m.lines, m.errors, m.duration, m.variables)
	return m
}

// ObserveLine counts a successfully processed line of the given kind.
func (m *Metrics) ObserveLine(kind string, d time.Duration) {
	if m == nil {
		return
	}
	m.lines.WithLabelValues(kind).Inc()
	m.duration.Observe(d.Seconds())
}

// ObserveError counts a rejected line.
func (m *Metrics) ObserveError(err error, d time.Duration) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(string(domain.Classify(err))).Inc()
	m.duration.Observe(d.Seconds())
}

// SetVariables records the current number of session variables.
func (m *Metrics) SetVariables(n int) {
	if m == nil {
		return
	}
	m.variables.Set(float64(n))
}
