package zapwriter

// Config configures the *zap.Logger built by NewZap.
type Config struct {
	// Level is the minimum zap level that is emitted: debug, info, warn or
	// error. Severity filtering normally happens in the Logger, so the
	// default lets everything through.
	Level string `yaml:"level" envconfig:"ZAP_LEVEL" default:"debug"`

	// ServiceName is added to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`

	// OutputPaths are zap sink URLs. Defaults to stderr.
	OutputPaths []string `yaml:"output_paths" envconfig:"ZAP_OUTPUT_PATHS"`
}

// DefaultOutput is the sink used when Config.OutputPaths is empty.
const DefaultOutput = "stderr"
