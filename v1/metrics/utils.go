package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/schemaregistry/v1/observability"
	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

// Outcome label values.
const (
	OutcomeSuccess        = "success"
	OutcomeNotFound       = "not_found"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
	OutcomeError          = "error"
)

// ObserveOperation records one schema registry operation. Endpoint attempts
// feed schema_registry_endpoint_attempts_total, logical calls feed the request
// counter and the duration histogram. Operations of other components are ignored.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	if op.Component != schema_registry.Component {
		return
	}

	outcome := Outcome(op.Error)
	if op.Operation == schema_registry.OperationEndpointAttempt {
		m.endpointAttempts.WithLabelValues(op.Resource, outcome).Inc()
		return
	}

	m.requestsTotal.WithLabelValues(op.Operation, outcome).Inc()
	m.requestDuration.WithLabelValues(op.Operation).Observe(op.Duration.Seconds())
}

// Outcome classifies a registry error into a bounded label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case schema_registry.IsNotFound(err):
		return OutcomeNotFound
	case schema_registry.IsUpstreamError(err):
		return OutcomeUpstreamError
	case schema_registry.IsTransportError(err):
		return OutcomeTransportError
	case schema_registry.IsDecodeError(err):
		return OutcomeDecodeError
	default:
		return OutcomeError
	}
}

// createCounterVec defines a new CounterVec with standard options.
func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

// createHistogramVec defines a new HistogramVec with configurable buckets.
func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}
