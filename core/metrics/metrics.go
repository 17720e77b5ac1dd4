package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "verifier"

// Metrics holds the run collectors.
type Metrics struct {
	registry *prometheus.Registry

	// runsTotal counts runs by result (passed, failed)
	runsTotal *prometheus.CounterVec
	// findingsTotal counts findings by type
	findingsTotal *prometheus.CounterVec
	// runDuration tracks run latency
	runDuration prometheus.Histogram
	// lastRunFailed is 1 when the latest run failed
	lastRunFailed prometheus.Gauge
	// lastRunTimestamp is the unix time the latest run finished
	lastRunTimestamp prometheus.Gauge
}

// New registers the run collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Total comparison runs by result",
		}, []string{"result"}),
		findingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "findings_total",
			Help:      "Total findings by type",
		}, []string{"type"}),
		runDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Comparison run duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		lastRunFailed: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_failed",
			Help:      "1 if the most recent run found differences",
		}),
		lastRunTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the most recent run finished",
		}),
	}
}

// ObserveRun records a finished run. findings maps finding type to count.
func (m *Metrics) ObserveRun(failed bool, finishedAt time.Time, duration time.Duration, findings map[string]int) {
	result := "passed"
	if failed {
		result = "failed"
		m.lastRunFailed.Set(1)
	} else {
		m.lastRunFailed.Set(0)
	}
	m.runsTotal.WithLabelValues(result).Inc()
	m.runDuration.Observe(duration.Seconds())
	m.lastRunTimestamp.Set(float64(finishedAt.Unix()))

	for typ, n := range findings {
		m.findingsTotal.WithLabelValues(typ).Add(float64(n))
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
