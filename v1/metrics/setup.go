package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry, the HTTP server exposing it and
// the schema registry client metrics. It implements observability.Observer so it
// can be attached to a schema_registry.Client directly.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	endpointAttempts *prometheus.CounterVec
}

// NewMetrics creates the registry, registers the schema registry metrics and,
// when enabled, the Go runtime collectors.
//
// Registered metrics:
//   - schema_registry_requests_total{operation,outcome}
//   - schema_registry_request_duration_seconds{operation}
//   - schema_registry_endpoint_attempts_total{endpoint,outcome}
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "schema-sync"})
//	client.WithObserver(m)
func NewMetrics(cfg Config) *Metrics {
	// Create a new isolated Prometheus registry for this service.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service will automatically include the label:
	//   service="<cfg.ServiceName>"
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry: registry,
	}

	m.requestsTotal = createCounterVec(cfg.Namespace, "schema_registry_requests_total",
		"Total number of logical schema registry calls", []string{"operation", "outcome"})
	m.requestDuration = createHistogramVec(cfg.Namespace, "schema_registry_request_duration_seconds",
		"Duration of logical schema registry calls in seconds", []string{"operation"}, prometheus.DefBuckets)
	m.endpointAttempts = createCounterVec(cfg.Namespace, "schema_registry_endpoint_attempts_total",
		"Total number of requests sent to individual registry endpoints", []string{"endpoint", "outcome"})

	wrappedRegistry.MustRegister(
		m.requestsTotal,
		m.requestDuration,
		m.endpointAttempts,
	)

	// These provide essential runtime metrics for Go processes:
	//   - GoCollector: Memory usage, goroutines, GC stats
	//   - ProcessCollector: CPU, file descriptors, memory stats
	//   - BuildInfoCollector: Binary version/build info
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    address,
		Handler: mux,
	}
	return m
}
