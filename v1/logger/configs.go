package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Encodings accepted by Config.Encoding.
const (
	EncodingJSON    = "json"
	EncodingConsole = "console"
)

type Config struct {
	// Level is one of debug, info, warning or error. Anything else means info.
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as "service".
	ServiceName string `yaml:"service_name" env:"SERVICE_NAME"`

	// EnableTracing adds trace_id and span_id to entries written through the
	// *WithContext methods.
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`

	// Encoding is json (default) or console. The CLI uses console.
	Encoding string `yaml:"encoding" env:"ZAP_LOGGER_ENCODING"`
}
