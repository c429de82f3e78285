package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/reqlog/v1/logger"
)

// Collector is implemented by *Metrics.
type Collector interface {
	logger.Observer

	// Registerer is where application metrics can be registered next to
	// the logging ones.
	Registerer() prometheus.Registerer
}
