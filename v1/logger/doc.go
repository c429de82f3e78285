// Package logger provides a request-scoped logging façade.
//
// A Logger is created once per logical unit of work, usually one request.
// It carries a component name, a request id and a severity filter, and
// hands every enabled record to a single writer.Writer.
//
// # Architecture
//
//   - Logger: filters by severity, enriches the context and delegates to
//     the writer
//   - Factory: builds one Logger per request sharing config and writer
//   - Observer: optional hook that sees the outcome of every call
//   - FXModule: provides *Factory for go.uber.org/fx applications
//
// # Severity filter
//
// Config.LogLevels decides what is written. It defaults to "off", so a
// Logger built without configuration writes nothing. "off" always wins,
// even when combined with named severities; "all" enables everything
// else:
//
//	log_levels: [error, critical]   # only those two
//	log_levels: [all]               # everything
//	log_levels: [off, debug]        # nothing
//
// # Context enrichment
//
// Before a record reaches the writer the Logger copies the caller's fields
// and then:
//
//   - sets "stack_trace" from the error stored under "exception" (errors
//     created with github.com/pkg/errors contribute their recorded stack)
//   - otherwise, for debug records, sets "stack_trace" to the current call
//     stack with the logger's own frames removed
//   - sets "reqid" to the Logger's request id, replacing any caller value
//   - with tracing enabled, sets "trace_id" and "span_id" from the
//     OpenTelemetry span in the context passed to LogContext
//
// The caller's map is never modified.
//
// # Basic usage
//
//	w := file.NewWriter(file.Config{Path: "/var/log/app"})
//	log := logger.New("billing", "", logger.Config{
//		LogLevels: level.NewSet(level.Error, level.Debug),
//	}, w)
//
//	log.Error("charge failed for {customer}", writer.Context{
//		"customer":  "c-42",
//		"exception": err,
//	})
//
// # FX
//
//	app := fx.New(
//		file.FXModule,
//		logger.FXModule,
//		fx.Provide(func() file.Config { return file.Config{Path: "/var/log/app"} }),
//		fx.Provide(func() logger.Config {
//			return logger.Config{Component: "billing", LogLevels: level.AllLevels()}
//		}),
//		fx.Invoke(func(f *logger.Factory) {
//			f.New("").Info("started", nil)
//		}),
//	)
//
// # Thread Safety
//
// A Logger may be used from several goroutines. Writers shared through a
// Factory guard their configuration internally.
package logger
