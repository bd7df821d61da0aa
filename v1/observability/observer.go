// Package observability defines the hook that instrumented clients in this module
// report their operations through.
//
// Clients never import a metrics or tracing backend directly. They accept an
// optional Observer and call it once per completed operation; the metrics package
// ships a Prometheus-backed implementation.
package observability

import "time"

// Observer receives a notification for every completed operation of an
// instrumented client. Implementations must be safe for concurrent use because
// clients report from the goroutines that performed the work.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component is the reporting client, e.g. "schema_registry".
	Component string

	// Operation is the logical operation name, e.g. "GetSchemaByID".
	Operation string

	// Resource is the primary object the operation touched (subject, schema id, endpoint URL).
	Resource string

	// SubResource carries secondary context such as a version or exporter sub-path.
	SubResource string

	// Duration is the wall-clock time the operation took.
	Duration time.Duration

	// Error is nil on success.
	Error error

	// Size is the payload size in bytes when known, otherwise zero.
	Size int64

	// Metadata holds additional key/value pairs specific to the component.
	Metadata map[string]interface{}
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) {
	f(ctx)
}
