package schema_registry

import (
	"context"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/schemaregistry/v1/observability"
)

// Component is reported as OperationContext.Component by the client.
const Component = "schema_registry"

// OperationEndpointAttempt is the Operation reported for each single-endpoint attempt.
const OperationEndpointAttempt = "endpoint_attempt"

func (c *Client) observe(req request, duration time.Duration, size int64, err error) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component:   Component,
		Operation:   req.operation,
		Resource:    req.resource,
		SubResource: req.subResource,
		Duration:    duration,
		Error:       err,
		Size:        size,
		Metadata: map[string]interface{}{
			"endpoints": len(c.urls),
			"method":    req.method,
		},
	})
}

func (c *Client) observeAttempt(endpoint string, req request, duration time.Duration, err error) {
	if c.observer == nil {
		return
	}
	c.observer.ObserveOperation(observability.OperationContext{
		Component:   Component,
		Operation:   OperationEndpointAttempt,
		Resource:    baseURL(endpoint),
		SubResource: req.operation,
		Duration:    duration,
		Error:       err,
		Metadata: map[string]interface{}{
			"method": req.method,
		},
	})
}

// baseURL strips path and query so that metric labels stay bounded.
func baseURL(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return endpoint
	}
	return u.Scheme + "://" + u.Host
}

func (c *Client) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if c.tracer == nil {
		return ctx, nil
	}
	return c.tracer.StartSpan(ctx, name)
}

func (c *Client) recordSpan(span trace.Span, req request, err error) {
	if c.tracer == nil || span == nil {
		return
	}
	c.tracer.SetAttributes(span, map[string]interface{}{
		"schema_registry.operation": req.operation,
		"schema_registry.resource":  req.resource,
		"schema_registry.endpoints": len(c.urls),
	})
	if err != nil {
		c.tracer.RecordErrorOnSpan(span, err)
	}
}

func (c *Client) endSpan(span trace.Span) {
	if span != nil {
		span.End()
	}
}
