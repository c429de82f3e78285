package kafka

import (
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	// DefaultMaxAttempts is the number of delivery attempts per record.
	DefaultMaxAttempts = 3

	// DefaultWriteTimeout bounds a single Write.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultRequiredAcks waits for the partition leader.
	DefaultRequiredAcks = AcksLeader
)

// Acknowledgement modes accepted by Config.RequiredAcks.
const (
	AcksNone   = "none"
	AcksLeader = "leader"
	AcksAll    = "all"
)

// Config defines the Kafka writer settings.
type Config struct {
	// Brokers is the list of bootstrap brokers, e.g. ["localhost:9092"].
	Brokers []string `yaml:"brokers" envconfig:"KAFKA_BROKERS"`

	// Topic receives all records.
	Topic string `yaml:"topic" envconfig:"KAFKA_TOPIC"`

	// MaxAttempts is the number of delivery attempts per record.
	MaxAttempts int `yaml:"max_attempts" envconfig:"KAFKA_MAX_ATTEMPTS"`

	// WriteTimeout bounds a single Write, including retries.
	WriteTimeout time.Duration `yaml:"write_timeout" envconfig:"KAFKA_WRITE_TIMEOUT"`

	// RequiredAcks is "none" (fire and forget), "leader" or "all" in-sync
	// replicas. The numeric forms "0", "1" and "-1" are accepted too.
	// Empty means DefaultRequiredAcks.
	RequiredAcks string `yaml:"required_acks" envconfig:"KAFKA_REQUIRED_ACKS"`

	// CompressionCodec is one of "", "gzip", "snappy", "lz4", "zstd".
	CompressionCodec string `yaml:"compression_codec" envconfig:"KAFKA_COMPRESSION_CODEC"`

	TLS  TLSConfig  `yaml:"tls"`
	SASL SASLConfig `yaml:"sasl"`
}

// TLSConfig enables TLS towards the brokers.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled" envconfig:"KAFKA_TLS_ENABLED"`
	CACertPath         string `yaml:"ca_cert_path" envconfig:"KAFKA_TLS_CA_CERT_PATH"`
	ClientCertPath     string `yaml:"client_cert_path" envconfig:"KAFKA_TLS_CLIENT_CERT_PATH"`
	ClientKeyPath      string `yaml:"client_key_path" envconfig:"KAFKA_TLS_CLIENT_KEY_PATH"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify" envconfig:"KAFKA_TLS_INSECURE_SKIP_VERIFY"`
}

// SASLConfig enables SASL authentication.
type SASLConfig struct {
	Enabled bool `yaml:"enabled" envconfig:"KAFKA_SASL_ENABLED"`

	// Mechanism is "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512".
	Mechanism string `yaml:"mechanism" envconfig:"KAFKA_SASL_MECHANISM"`
	Username  string `yaml:"username" envconfig:"KAFKA_SASL_USERNAME"`
	Password  string `yaml:"password" envconfig:"KAFKA_SASL_PASSWORD"`
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.RequiredAcks == "" {
		c.RequiredAcks = DefaultRequiredAcks
	}
	return c
}

// requiredAcks resolves Config.RequiredAcks to the kafka-go setting.
func (c Config) requiredAcks() (kafka.RequiredAcks, error) {
	switch strings.ToLower(strings.TrimSpace(c.RequiredAcks)) {
	case AcksNone, "0":
		return kafka.RequireNone, nil
	case "", AcksLeader, "1":
		return kafka.RequireOne, nil
	case AcksAll, "-1":
		return kafka.RequireAll, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAcks, c.RequiredAcks)
	}
}
