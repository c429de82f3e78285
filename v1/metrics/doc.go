// Package metrics exposes Prometheus metrics about logging calls.
//
// Metrics implements logger.Observer. Attach it to a Logger or a Factory
// and every call is counted by component, severity and outcome; calls that
// reached the writer also record how long the writer took.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Collector interface: the operations the rest of the code depends on
//   - Metrics struct: Prometheus-backed implementation of Collector
//   - NewMetrics constructor: returns *Metrics
//   - FX module: provides *Metrics, Collector and logger.Observer
//
// Exported series (prefixed with Config.Namespace when set):
//
//	log_records_total{component, level, outcome}
//	log_write_duration_seconds{component, level}
//
// # Direct Usage (Without FX)
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		ServiceName: "billing",
//	})
//	go m.Server.ListenAndServe()
//
//	log := logger.New("billing", "", cfg, w).WithObserver(m)
//
// # FX Module Integration
//
//	app := fx.New(
//		metrics.FXModule, // provides logger.Observer picked up by logger.FXModule
//		logger.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{Address: ":9090", EnableDefaultCollectors: true}
//		}),
//		// writer and logger.Config...
//	)
//
// # Configuration
//
//	METRICS_ADDRESS=:9090                      # Port and address for /metrics endpoint
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true     # Enable runtime and process metrics
//	METRICS_NAMESPACE=reqlog                   # Optional prefix for all metric names
//	METRICS_SERVICE_NAME=billing               # Adds service label to all metrics
//
// # Thread Safety
//
// All methods on Metrics are safe for concurrent use.
package metrics
