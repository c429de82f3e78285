package kafka

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"github.com/segmentio/kafka-go/sasl"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// messageWriter is the part of *kafka.Writer used by Writer.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Writer publishes records to Kafka. It implements writer.Writer.
type Writer struct {
	*writer.Base

	cfg      Config
	producer messageWriter
	now      func() time.Time
	log      *zap.Logger
}

// NewWriter creates a Kafka writer. The connection to the brokers is
// established lazily by the first Write.
func NewWriter(cfg Config) (*Writer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.Topic == "" {
		return nil, ErrNoTopic
	}
	cfg = cfg.withDefaults()

	acks, err := cfg.requiredAcks()
	if err != nil {
		return nil, err
	}

	var tlsConfig *tls.Config
	if cfg.TLS.Enabled {
		tlsConfig, err = createTLSConfig(cfg.TLS)
		if err != nil {
			return nil, fmt.Errorf("failed to create TLS config: %w", err)
		}
	}

	var mechanism sasl.Mechanism
	if cfg.SASL.Enabled {
		mechanism, err = createSASLMechanism(cfg.SASL)
		if err != nil {
			return nil, fmt.Errorf("failed to create SASL mechanism: %w", err)
		}
	}

	w := &Writer{
		Base: writer.NewBase(writer.Config{}),
		cfg:  cfg,
		now:  time.Now,
		log:  zap.NewNop(),
	}
	w.producer = createProducer(cfg, acks, tlsConfig, mechanism, w.errorLogger())
	return w, nil
}

// WithDiagnostics sets the logger that receives write failures and
// kafka-go internal errors.
func (w *Writer) WithDiagnostics(log *zap.Logger) *Writer {
	if log != nil {
		w.log = log
	}
	return w
}

// Write publishes one record and waits for the broker acknowledgement.
func (w *Writer) Write(component, message string, l level.Level, fields writer.Context) bool {
	if err := w.write(component, message, l, fields); err != nil {
		w.log.Debug("kafka writer: record dropped",
			zap.String("component", component),
			zap.String("level", l.String()),
			zap.String("topic", w.cfg.Topic),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (w *Writer) write(component, message string, l level.Level, fields writer.Context) error {
	msg, err := w.buildMessage(component, message, l, fields)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.WriteTimeout)
	defer cancel()

	if err := w.producer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", writer.ErrWriteFailed, err)
	}
	return nil
}

func (w *Writer) buildMessage(component, message string, l level.Level, fields writer.Context) (kafka.Message, error) {
	now := w.now()
	env := writer.NewEnvelope(component, message, l, fields, now)
	value, err := env.Marshal()
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode envelope: %w", err)
	}

	headers := []kafka.Header{
		{Key: "level", Value: []byte(l.String())},
		{Key: "component", Value: []byte(component)},
	}
	if env.TraceID != "" {
		headers = append(headers, kafka.Header{Key: writer.KeyTraceID, Value: []byte(env.TraceID)})
	}
	if env.SpanID != "" {
		headers = append(headers, kafka.Header{Key: writer.KeySpanID, Value: []byte(env.SpanID)})
	}

	msg := kafka.Message{
		Value:   value,
		Headers: headers,
		Time:    now,
	}
	if reqID, ok := fields.String(writer.KeyRequestID); ok {
		msg.Key = []byte(reqID)
	}
	return msg, nil
}

// Close flushes and closes the producer.
func (w *Writer) Close() error {
	return w.producer.Close()
}

func (w *Writer) errorLogger() kafka.LoggerFunc {
	return func(msg string, args ...interface{}) {
		w.log.Error("kafka internal error", zap.String("error", fmt.Sprintf(msg, args...)))
	}
}

// createProducer creates a synchronous kafka-go writer that flushes every
// message on its own.
func createProducer(cfg Config, acks kafka.RequiredAcks, tlsConfig *tls.Config, mechanism sasl.Mechanism, errorLogger kafka.Logger) *kafka.Writer {
	writerConfig := kafka.WriterConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		MaxAttempts:  cfg.MaxAttempts,
		WriteTimeout: cfg.WriteTimeout,
		RequiredAcks: int(acks),
		BatchSize:    1,
		ErrorLogger:  errorLogger,
	}

	switch cfg.CompressionCodec {
	case "gzip":
		writerConfig.CompressionCodec = &compress.GzipCodec
	case "snappy":
		writerConfig.CompressionCodec = &compress.SnappyCodec
	case "lz4":
		writerConfig.CompressionCodec = &compress.Lz4Codec
	case "zstd":
		writerConfig.CompressionCodec = &compress.ZstdCodec
	}

	writerConfig.Dialer = &kafka.Dialer{
		TLS:           tlsConfig,
		SASLMechanism: mechanism,
	}

	return kafka.NewWriter(writerConfig)
}
