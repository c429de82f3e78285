package rabbit

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

// publisher is the part of *amqp.Channel used by Writer.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Writer publishes records to a RabbitMQ exchange. It implements writer.Writer.
type Writer struct {
	*writer.Base

	cfg     Config
	channel publisher
	closers []func() error
	now     func() time.Time
	log     *zap.Logger
}

// NewWriter connects to RabbitMQ, opens a channel and, if requested,
// declares the exchange.
func NewWriter(cfg Config) (*Writer, error) {
	cfg = cfg.withDefaults()

	conn, err := newConnection(cfg.Connection)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	if cfg.Exchange.Declare {
		err = ch.ExchangeDeclare(
			cfg.Exchange.Name,
			cfg.Exchange.Type,
			true,  // Durable
			false, // AutoDelete
			false, // Internal
			false, // NoWait
			nil,   // Arguments
		)
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("failed to declare exchange: %w", err)
		}
	}

	return newWriter(cfg, ch, ch.Close, conn.Close), nil
}

func newWriter(cfg Config, ch publisher, closers ...func() error) *Writer {
	return &Writer{
		Base:    writer.NewBase(writer.Config{}),
		cfg:     cfg.withDefaults(),
		channel: ch,
		closers: closers,
		now:     time.Now,
		log:     zap.NewNop(),
	}
}

// WithDiagnostics sets the logger that receives write failures.
func (w *Writer) WithDiagnostics(log *zap.Logger) *Writer {
	if log != nil {
		w.log = log
	}
	return w
}

// Write publishes one record.
func (w *Writer) Write(component, message string, l level.Level, fields writer.Context) bool {
	if err := w.write(component, message, l, fields); err != nil {
		w.log.Debug("rabbit writer: record dropped",
			zap.String("component", component),
			zap.String("level", l.String()),
			zap.String("exchange", w.cfg.Exchange.Name),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (w *Writer) write(component, message string, l level.Level, fields writer.Context) error {
	now := w.now()
	env := writer.NewEnvelope(component, message, l, fields, now)
	body, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode envelope: %w", err)
	}

	headers := amqp.Table{
		"level":     l.String(),
		"component": component,
	}
	reqID, _ := fields.String(writer.KeyRequestID)
	if reqID != "" {
		headers[writer.KeyRequestID] = reqID
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.cfg.PublishTimeout)
	defer cancel()

	err = w.channel.PublishWithContext(ctx,
		w.cfg.Exchange.Name,
		RoutingKey(component, l),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			Headers:       headers,
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: reqID,
			Timestamp:     now,
			Body:          body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", writer.ErrWriteFailed, err)
	}
	return nil
}

// Close closes the channel and the connection.
func (w *Writer) Close() error {
	var errs []error
	for _, c := range w.closers {
		if err := c(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RoutingKey returns the routing key records of component at l use.
func RoutingKey(component string, l level.Level) string {
	return component + "." + l.String()
}

// newConnection dials the broker with the scheme and TLS settings selected
// by cfg.
func newConnection(cfg Connection) (*amqp.Connection, error) {
	scheme := "amqp"
	amqpConfig := amqp.Config{Heartbeat: DefaultHeartbeat}

	if cfg.IsSSLEnabled {
		scheme = "amqps"
		if cfg.UseCert {
			tlsConfig, err := createTLSConfig(cfg)
			if err != nil {
				return nil, err
			}
			amqpConfig.TLSClientConfig = tlsConfig
		}
	}

	hostURL := fmt.Sprintf("%s://%v:%v@%v:%v", scheme, cfg.User, cfg.Password, cfg.Host, cfg.Port)
	conn, err := amqp.DialConfig(hostURL, amqpConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: rabbit: %v", writer.ErrConnectionFailed, err)
	}
	return conn, nil
}

func createTLSConfig(cfg Connection) (*tls.Config, error) {
	caCert, err := os.ReadFile(cfg.CACertPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA cert: %w", err)
	}
	caCertPool := x509.NewCertPool()
	caCertPool.AppendCertsFromPEM(caCert)

	cert, err := tls.LoadX509KeyPair(cfg.ClientCertPath, cfg.ClientKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load client cert: %w", err)
	}

	return &tls.Config{
		RootCAs:      caCertPool,
		Certificates: []tls.Certificate{cert},
		ServerName:   cfg.ServerName,
	}, nil
}
