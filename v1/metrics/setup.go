package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics counts logging calls and serves them on /metrics.
type Metrics struct {
	// Server serves the registry on /metrics.
	Server *http.Server

	// Registry holds the logging metrics and, if enabled, the default
	// collectors. It is isolated from the global default registry.
	Registry *prometheus.Registry

	registerer prometheus.Registerer

	recordsTotal  *prometheus.CounterVec
	writeDuration *prometheus.HistogramVec
}

// NewMetrics initializes the Prometheus registry and the /metrics server.
//
// Parameters:
//   - cfg: Listen address, namespace, service label and whether the Go
//     runtime and process collectors are registered
//
// Returns:
//   - *Metrics: A logger.Observer with its own isolated registry
//
// The HTTP server is prepared but not started; FXModule starts it with the
// application, direct users call m.Server.ListenAndServe themselves.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "billing"})
//	go m.Server.ListenAndServe()
//	factory := logger.NewFactory(cfg, w).WithObserver(m)
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()

	var registerer prometheus.Registerer = registry
	if cfg.ServiceName != "" {
		registerer = prometheus.WrapRegistererWith(
			prometheus.Labels{"service": cfg.ServiceName},
			registry,
		)
	}

	m := &Metrics{
		Registry:   registry,
		registerer: registerer,
	}

	m.recordsTotal = createCounterVec(cfg.Namespace, "log_records_total",
		"Logging calls by component, severity and outcome.",
		[]string{"component", "level", "outcome"})
	m.writeDuration = createHistogramVec(cfg.Namespace, "log_write_duration_seconds",
		"Time spent in the writer per record.",
		[]string{"component", "level"}, prometheus.DefBuckets)

	registerer.MustRegister(m.recordsTotal, m.writeDuration)

	if cfg.EnableDefaultCollectors {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	m.Server = &http.Server{
		Addr:    address,
		Handler: mux,
	}
	return m
}
