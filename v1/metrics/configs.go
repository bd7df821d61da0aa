package metrics

// DefaultMetricsAddress is used when Config.Address is empty.
const DefaultMetricsAddress = ":9090"

// Config controls the Prometheus registry and the /metrics HTTP server.
type Config struct {
	// Address the metrics server listens on, e.g. ":9090" or "127.0.0.1:9100".
	Address string `yaml:"address" env:"METRICS_ADDRESS"`

	// EnableDefaultCollectors registers the Go runtime, process and build info
	// collectors next to the schema registry metrics.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" env:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Namespace prefixes every metric name. With "pharia_data" the calls
	// counter becomes pharia_data_schema_registry_requests_total.
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE"`

	// ServiceName is attached to every metric as the "service" label.
	ServiceName string `yaml:"service_name" env:"METRICS_SERVICE_NAME"`
}
