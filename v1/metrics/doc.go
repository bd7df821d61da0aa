// Package metrics provides Prometheus-based monitoring for the schema registry client.
//
// Metrics implements observability.Observer. Attached to a schema_registry.Client
// it turns every reported operation into Prometheus samples:
//
//	schema_registry_requests_total{operation,outcome}
//	schema_registry_request_duration_seconds{operation}
//	schema_registry_endpoint_attempts_total{endpoint,outcome}
//
// outcome is one of success, not_found, upstream_error, transport_error,
// decode_error or error. Comparing endpoint attempts per endpoint shows which
// replicas are failing even while logical calls keep succeeding.
//
// # Direct Usage (Without FX)
//
//	import "github.com/Aleph-Alpha/schemaregistry/v1/metrics"
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:                 ":9090",
//		EnableDefaultCollectors: true,
//		ServiceName:             "schema-sync",
//	})
//	go m.Server.ListenAndServe()
//
//	client.WithObserver(m)
//
// # FX Module Integration
//
//	app := fx.New(
//		logger.FXModule,          // Optional: lifecycle logs
//		metrics.FXModule,         // Provides *Metrics and observability.Observer
//		schema_registry.FXModule, // Picks the observer up automatically
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{Address: ":9090", ServiceName: "schema-sync"}
//		}),
//	)
//
// # Configuration
//
//	METRICS_ADDRESS=:9090                      # Port and address for /metrics endpoint
//	METRICS_ENABLE_DEFAULT_COLLECTORS=true     # Enable runtime and process metrics
//	METRICS_NAMESPACE=pharia_data              # Optional prefix for all metric names
//	METRICS_SERVICE_NAME=schema-sync           # Adds service label to all metrics
//
// # Custom Metrics
//
// Applications can register additional Prometheus metrics using the exposed
// Registry:
//
//	m.Registry.MustRegister(myCollector)
//
// # Thread Safety
//
// All methods on the Metrics struct are safe for concurrent use by multiple
// goroutines.
package metrics
