// Package kafka provides a reqlog writer that publishes every record to an
// Apache Kafka topic.
//
// Each record becomes one message:
//   - Key: the request id, so all records of one request land in the same
//     partition and keep their order
//   - Value: the JSON writer.Envelope (component, level, timestamp, reqid,
//     stack_trace, message, remaining fields)
//   - Headers: level, component and, when present, trace_id and span_id
//
// Writes are synchronous: Write returns once the broker acknowledged the
// message according to RequiredAcks, or false when the write failed or
// exceeded WriteTimeout.
//
// Basic Usage:
//
//	w, err := kafka.NewWriter(kafka.Config{
//		Brokers: []string{"localhost:9092"},
//		Topic:   "app-logs",
//	})
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//
//	log := logger.New("billing", "", logger.Config{LogLevels: level.AllLevels()}, w)
//	log.Error("payment {id} declined", writer.Context{"id": 42})
//
// TLS and SASL (PLAIN, SCRAM-SHA-256, SCRAM-SHA-512) are configured through
// Config.TLS and Config.SASL.
//
// FX Module Integration:
//
//	app := fx.New(
//		kafka.FXModule, // provides *kafka.Writer and writer.Writer, closes on stop
//		fx.Provide(func() kafka.Config { return cfg }),
//	)
package kafka
