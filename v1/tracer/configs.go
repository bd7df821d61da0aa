package tracer

// Config configures the OpenTelemetry tracer provider.
type Config struct {
	// ServiceName is reported as service.name on every span.
	ServiceName string `yaml:"service_name" env:"TRACER_SERVICE_NAME"`

	// AppEnv is reported as deployment.environment.
	AppEnv string `yaml:"app_env" env:"APP_ENV"`

	// EnableExport ships spans to an OTLP/HTTP collector. When false spans are
	// created and propagated but never exported.
	EnableExport bool `yaml:"enable_export" env:"TRACER_ENABLE_EXPORT"`

	// Endpoint is the collector host:port. Empty falls back to the
	// OTEL_EXPORTER_OTLP_ENDPOINT environment variable handled by the exporter.
	Endpoint string `yaml:"endpoint" env:"TRACER_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" env:"TRACER_INSECURE"`
}
