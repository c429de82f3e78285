package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/reqlog/v1/level"
	"github.com/Aleph-Alpha/reqlog/v1/writer"
)

type fakeProducer struct {
	msgs     []kafka.Message
	err      error
	deadline bool
	closed   bool
}

func (f *fakeProducer) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	_, f.deadline = ctx.Deadline()
	f.msgs = append(f.msgs, msgs...)
	return f.err
}

func (f *fakeProducer) Close() error {
	f.closed = true
	return nil
}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestWriter(t *testing.T) (*Writer, *fakeProducer) {
	t.Helper()
	w, err := NewWriter(Config{Brokers: []string{"localhost:9092"}, Topic: "logs"})
	require.NoError(t, err)
	require.NoError(t, w.producer.Close())

	p := &fakeProducer{}
	w.producer = p
	w.now = func() time.Time { return fixedNow }
	return w, p
}

func header(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestNewWriterValidation(t *testing.T) {
	_, err := NewWriter(Config{Topic: "logs"})
	assert.ErrorIs(t, err, ErrNoBrokers)
	assert.ErrorIs(t, err, writer.ErrNotConfigured)

	_, err = NewWriter(Config{Brokers: []string{"b:9092"}})
	assert.ErrorIs(t, err, ErrNoTopic)

	_, err = NewWriter(Config{
		Brokers: []string{"b:9092"},
		Topic:   "logs",
		SASL:    SASLConfig{Enabled: true, Mechanism: "KERBEROS"},
	})
	assert.Error(t, err)

	_, err = NewWriter(Config{
		Brokers: []string{"b:9092"},
		Topic:   "logs",
		TLS:     TLSConfig{Enabled: true, CACertPath: "/does/not/exist.pem"},
	})
	assert.Error(t, err)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Equal(t, DefaultWriteTimeout, cfg.WriteTimeout)
	assert.Equal(t, DefaultRequiredAcks, cfg.RequiredAcks)

	cfg = Config{RequiredAcks: AcksNone}.withDefaults()
	assert.Equal(t, AcksNone, cfg.RequiredAcks)
}

func TestRequiredAcksReachProducer(t *testing.T) {
	cases := map[string]kafka.RequiredAcks{
		"":         kafka.RequireOne,
		AcksNone:   kafka.RequireNone,
		"0":        kafka.RequireNone,
		AcksLeader: kafka.RequireOne,
		"ALL":      kafka.RequireAll,
		"-1":       kafka.RequireAll,
	}
	for mode, want := range cases {
		cfg := Config{Brokers: []string{"localhost:9092"}, Topic: "logs", RequiredAcks: mode}.withDefaults()
		acks, err := cfg.requiredAcks()
		require.NoError(t, err, mode)

		p := createProducer(cfg, acks, nil, nil, nil)
		assert.Equal(t, want, p.RequiredAcks, "mode %q", mode)
		require.NoError(t, p.Close())
	}

	_, err := NewWriter(Config{Brokers: []string{"b:9092"}, Topic: "logs", RequiredAcks: "some"})
	assert.ErrorIs(t, err, ErrInvalidAcks)
}

func TestWritePublishesEnvelope(t *testing.T) {
	w, p := newTestWriter(t)

	ok := w.Write("billing", "charged {amount}", level.Error, writer.Context{
		writer.KeyRequestID: "req-1",
		writer.KeyTraceID:   "trace-1",
		"amount":            42,
	})
	require.True(t, ok)
	require.Len(t, p.msgs, 1)
	assert.True(t, p.deadline, "write must be bounded by WriteTimeout")

	msg := p.msgs[0]
	assert.Equal(t, "req-1", string(msg.Key))
	assert.Equal(t, fixedNow, msg.Time)
	assert.Equal(t, "error", header(msg, "level"))
	assert.Equal(t, "billing", header(msg, "component"))
	assert.Equal(t, "trace-1", header(msg, writer.KeyTraceID))
	assert.Empty(t, header(msg, writer.KeySpanID))

	var env map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, "charged 42", env["message"])
	assert.Equal(t, "req-1", env["reqid"])
	assert.Equal(t, "billing", env["component"])
	assert.Equal(t, map[string]interface{}{"amount": float64(42)}, env["fields"])
}

func TestWriteWithoutRequestID(t *testing.T) {
	w, p := newTestWriter(t)
	require.True(t, w.Write("api", "m", level.Info, writer.Context{}))
	require.Len(t, p.msgs, 1)
	assert.Nil(t, p.msgs[0].Key)
}

func TestWriteFailure(t *testing.T) {
	w, p := newTestWriter(t)
	p.err = errors.New("leader not available")
	assert.False(t, w.Write("api", "m", level.Info, writer.Context{}))
}

func TestClose(t *testing.T) {
	w, p := newTestWriter(t)
	require.NoError(t, w.Close())
	assert.True(t, p.closed)
}

func TestFXModule(t *testing.T) {
	var w writer.Writer
	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config {
			return Config{Brokers: []string{"localhost:9092"}, Topic: "logs"}
		}),
		fx.Populate(&w),
	)
	app.RequireStart()
	app.RequireStop()

	_, ok := w.(*Writer)
	assert.True(t, ok)
}
