package metrics

// DefaultAddress is the listen address of the /metrics server.
const DefaultAddress = ":9090"

// Config configures the metrics registry and its HTTP server.
type Config struct {
	// Address is the listen address of the /metrics endpoint.
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS" default:":9090"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace prefixes every metric name.
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is added as a constant "service" label when set.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}
