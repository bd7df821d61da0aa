package tracer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

func newRecordingTracer(t *testing.T) (*Tracer, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return NewWithProvider(tp, nil), recorder
}

func TestStartSpanAndRecordError(t *testing.T) {
	tr, recorder := newRecordingTracer(t)

	_, span := tr.StartSpan(context.Background(), "op")
	tr.SetAttributes(span, map[string]interface{}{"subject": "users-value", "version": 2, "ok": true})
	tr.RecordErrorOnSpan(span, errors.New("boom"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "op", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Attributes(), 3)
}

func TestCarrierRoundTrip(t *testing.T) {
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	tr, _ := newRecordingTracer(t)

	ctx, span := tr.StartSpan(context.Background(), "producer")
	defer span.End()

	carrier := tr.GetCarrier(ctx)
	require.Contains(t, carrier, "traceparent")

	extracted := tr.SetCarrierOnContext(context.Background(), carrier)
	_, child := tr.StartSpan(extracted, "consumer")
	defer child.End()
	assert.Equal(t, span.SpanContext().TraceID(), child.SpanContext().TraceID())
}

func TestTracerWithRegistryClient(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})
	tr, recorder := newRecordingTracer(t)

	var traceparent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceparent = r.Header.Get("traceparent")
		_, _ = w.Write([]byte(`{"mode":"READWRITE"}`))
	}))
	defer server.Close()

	client, err := schema_registry.NewClientFromURL(server.URL)
	require.NoError(t, err)
	client.WithTracer(tr)

	_, err = client.GetMode(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, traceparent)

	names := map[string]bool{}
	for _, s := range recorder.Ended() {
		names[s.Name()] = true
	}
	assert.True(t, names["schema_registry.GetMode"])
	assert.True(t, names["schema_registry.endpoint_attempt"])
}

func TestNewClientWithoutExport(t *testing.T) {
	tr, err := NewClient(Config{ServiceName: "test"}, nil)
	require.NoError(t, err)
	assert.NoError(t, tr.Shutdown(context.Background()))
}
