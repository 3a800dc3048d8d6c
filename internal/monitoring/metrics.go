package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation names used as the "op" label.
const (
	OpLoad = "load"
	OpDump = "dump"
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the Prometheus collectors for codec operations.
type Metrics struct {
	Operations *prometheus.CounterVec
	Duration   *prometheus.HistogramVec

	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds running totals for quick inspection without scraping.
type Snapshot struct {
	Loads         int64
	Dumps         int64
	Errors        int64
	TotalDuration time.Duration
}

// NewMetrics registers the collectors with reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pplio_operations_total",
				Help: "Total number of file loads and dumps",
			},
			[]string{"op", "suffix", "status"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pplio_operation_duration_seconds",
				Help:    "File load and dump duration in seconds",
				Buckets: []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"op", "suffix"},
		),
	}
}

// RecordOperation records one load or dump.
func (m *Metrics) RecordOperation(op, suffix string, duration time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.Operations.WithLabelValues(op, suffix, status).Inc()
	m.Duration.WithLabelValues(op, suffix).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()
	switch op {
	case OpLoad:
		m.snapshot.Loads++
	case OpDump:
		m.snapshot.Dumps++
	}
	if err != nil {
		m.snapshot.Errors++
	}
	m.snapshot.TotalDuration += duration
}

// Snapshot returns the running totals.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// Timer measures a single operation.
type Timer struct {
	metrics *Metrics
	op      string
	suffix  string
	start   time.Time
}

// NewTimer starts timing op on suffix. A nil metrics yields a timer whose
// Stop does nothing.
func NewTimer(metrics *Metrics, op, suffix string) *Timer {
	return &Timer{
		metrics: metrics,
		op:      op,
		suffix:  suffix,
		start:   time.Now(),
	}
}

// Stop records the operation and returns its duration.
func (t *Timer) Stop(err error) time.Duration {
	d := time.Since(t.start)
	if t.metrics != nil {
		t.metrics.RecordOperation(t.op, t.suffix, d, err)
	}
	return d
}
