package rabbit

import "time"

const (
	// DefaultPublishTimeout bounds a single Write.
	DefaultPublishTimeout = 5 * time.Second

	// DefaultExchangeType is used when the exchange is declared.
	DefaultExchangeType = "topic"

	// DefaultHeartbeat is the AMQP heartbeat interval.
	DefaultHeartbeat = 2 * time.Second
)

// Config defines the RabbitMQ writer settings.
type Config struct {
	// Connection contains the settings needed to reach the broker
	Connection Connection `yaml:"connection"`

	// Exchange is where records are published to
	Exchange Exchange `yaml:"exchange"`

	// PublishTimeout bounds a single Write.
	PublishTimeout time.Duration `yaml:"publish_timeout" envconfig:"RABBITMQ_PUBLISH_TIMEOUT"`
}

// Connection contains the configuration parameters needed to establish
// a connection to a RabbitMQ server, including authentication and TLS settings.
type Connection struct {
	Host     string `yaml:"host" envconfig:"RABBITMQ_HOST"`
	Port     uint   `yaml:"port" envconfig:"RABBITMQ_PORT"`
	User     string `yaml:"user" envconfig:"RABBITMQ_USER"`
	Password string `yaml:"password" envconfig:"RABBITMQ_PASSWORD"`

	// IsSSLEnabled switches to amqps
	IsSSLEnabled bool `yaml:"is_ssl_enabled" envconfig:"RABBITMQ_IS_SSL_ENABLED"`

	// UseCert enables mutual TLS with the client certificate below
	UseCert        bool   `yaml:"use_cert" envconfig:"RABBITMQ_USE_CERT"`
	CACertPath     string `yaml:"ca_cert_path" envconfig:"RABBITMQ_CA_CERT_PATH"`
	ClientCertPath string `yaml:"client_cert_path" envconfig:"RABBITMQ_CLIENT_CERT_PATH"`
	ClientKeyPath  string `yaml:"client_key_path" envconfig:"RABBITMQ_CLIENT_KEY_PATH"`
	ServerName     string `yaml:"server_name" envconfig:"RABBITMQ_SERVER_NAME"`
}

// Exchange selects the target exchange.
type Exchange struct {
	// Name of the exchange; empty publishes to the default exchange.
	Name string `yaml:"name" envconfig:"RABBITMQ_EXCHANGE_NAME"`

	// Type is used when Declare is set. Defaults to DefaultExchangeType.
	Type string `yaml:"type" envconfig:"RABBITMQ_EXCHANGE_TYPE"`

	// Declare makes NewWriter declare a durable exchange.
	Declare bool `yaml:"declare" envconfig:"RABBITMQ_EXCHANGE_DECLARE"`
}

func (c Config) withDefaults() Config {
	if c.PublishTimeout == 0 {
		c.PublishTimeout = DefaultPublishTimeout
	}
	if c.Exchange.Type == "" {
		c.Exchange.Type = DefaultExchangeType
	}
	return c
}
