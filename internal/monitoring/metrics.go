package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the calculator's Prometheus collectors
type Metrics struct {
	Operations         *prometheus.CounterVec
	EvaluationDuration *prometheus.HistogramVec
	HistoryRecords     prometheus.Gauge
	MemoryValue        prometheus.Gauge

	registry *prometheus.Registry
}

// NewMetrics creates collectors on a private registry, so several sessions
// in one process (or one test binary) never collide on registration.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calc_operations_total",
				Help: "Total number of calculator operations",
			},
			[]string{"operation", "status"},
		),
		EvaluationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calc_evaluation_duration_seconds",
				Help:    "Time spent evaluating an operation",
				Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
			},
			[]string{"operation"},
		),
		HistoryRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "calc_history_records",
				Help: "Number of records in the history ledger",
			},
		),
		MemoryValue: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "calc_memory_value",
				Help: "Current value of the memory cell",
			},
		),
	}
}

// RecordOperation counts one operation and observes its duration
func (m *Metrics) RecordOperation(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.Operations.WithLabelValues(operation, status).Inc()
	m.EvaluationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetHistorySize updates the history gauge
func (m *Metrics) SetHistorySize(n int) {
	if m == nil {
		return
	}
	m.HistoryRecords.Set(float64(n))
}

// SetMemory updates the memory gauge
func (m *Metrics) SetMemory(v float64) {
	if m == nil {
		return
	}
	m.MemoryValue.Set(v)
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Gather collects the current metric families
func (m *Metrics) Gather() ([]*dto.MetricFamily, error) {
	return m.registry.Gather()
}

// Counts flattens calc_operations_total into "operation/status" -> count
func (m *Metrics) Counts() (map[string]float64, error) {
	families, err := m.Gather()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "calc_operations_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			var op, status string
			for _, lp := range metric.GetLabel() {
				switch lp.GetName() {
				case "operation":
					op = lp.GetValue()
				case "status":
					status = lp.GetValue()
				}
			}
			counts[op+"/"+status] = metric.GetCounter().GetValue()
		}
	}
	return counts, nil
}
