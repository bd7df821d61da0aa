package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/schemaregistry/v1/observability"
	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeNotFound, Outcome(&schema_registry.UpstreamError{StatusCode: http.StatusNotFound}))
	assert.Equal(t, OutcomeUpstreamError, Outcome(&schema_registry.UpstreamError{StatusCode: http.StatusConflict}))
	assert.Equal(t, OutcomeTransportError, Outcome(&schema_registry.TransportError{Err: context.Canceled}))
	assert.Equal(t, OutcomeDecodeError, Outcome(&schema_registry.DecodeError{Target: "int"}))
	assert.Equal(t, OutcomeError, Outcome(errors.New("other")))
}

func TestObserveOperation(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.ObserveOperation(observability.OperationContext{
		Component: schema_registry.Component,
		Operation: "GetSubjects",
		Duration:  10 * time.Millisecond,
	})
	m.ObserveOperation(observability.OperationContext{
		Component: schema_registry.Component,
		Operation: schema_registry.OperationEndpointAttempt,
		Resource:  "http://a:8081",
		Error:     &schema_registry.TransportError{Err: errors.New("refused")},
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "redis",
		Operation: "get",
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GetSubjects", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.endpointAttempts.WithLabelValues("http://a:8081", OutcomeTransportError)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(m.requestsTotal))
}

func TestMetricsObserveRegistryClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`["a"]`))
	}))
	defer server.Close()

	m := NewMetrics(Config{ServiceName: "test"})
	client, err := schema_registry.NewClientFromURL(server.URL)
	require.NoError(t, err)
	client.WithObserver(m)

	_, err = client.GetSubjects(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GetSubjects", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.endpointAttempts.WithLabelValues(server.URL, OutcomeSuccess)))
}

func TestMetricsEndpoint(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})
	m.ObserveOperation(observability.OperationContext{
		Component: schema_registry.Component,
		Operation: "GetMode",
	})

	rec := httptest.NewRecorder()
	m.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `schema_registry_requests_total{operation="GetMode",outcome="success",service="test"} 1`), body)
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)
}
