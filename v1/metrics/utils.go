package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/reqlog/v1/logger"
)

// ObserveRecord implements logger.Observer.
func (m *Metrics) ObserveRecord(e logger.RecordEvent) {
	lvl := e.Level.String()
	m.recordsTotal.WithLabelValues(e.Component, lvl, string(e.Outcome)).Inc()

	switch e.Outcome {
	case logger.OutcomeWritten, logger.OutcomeFailed:
		m.writeDuration.WithLabelValues(e.Component, lvl).Observe(e.Duration.Seconds())
	}
}

// Registerer returns the registerer the logging metrics were added to,
// including the service label when configured.
func (m *Metrics) Registerer() prometheus.Registerer {
	return m.registerer
}

func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}
