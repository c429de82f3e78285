// Package rabbit provides a reqlog writer that publishes every record to a
// RabbitMQ exchange.
//
// Records are published as persistent application/json messages carrying
// the writer.Envelope. The routing key is "<component>.<level>", so a topic
// exchange can route e.g. "billing.error" or "*.critical" to dedicated
// queues. The request id is set as the correlation id and level, component
// and reqid are repeated in the message headers.
//
// Basic Usage:
//
//	w, err := rabbit.NewWriter(rabbit.Config{
//		Connection: rabbit.Connection{Host: "localhost", Port: 5672, User: "guest", Password: "guest"},
//		Exchange:   rabbit.Exchange{Name: "logs", Type: "topic", Declare: true},
//	})
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//
// The connection is opened by NewWriter and kept for the lifetime of the
// writer. Each Write is bounded by PublishTimeout.
//
// FX Module Integration:
//
//	app := fx.New(
//		rabbit.FXModule, // provides *rabbit.Writer and writer.Writer, closes on stop
//		fx.Provide(func() rabbit.Config { return cfg }),
//	)
package rabbit
