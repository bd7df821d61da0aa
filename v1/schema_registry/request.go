package schema_registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/oapi-codegen/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// request describes one logical registry call independently of the endpoint it
// is sent to.
type request struct {
	method string

	// path is already escaped and starts with "/".
	path  string
	query url.Values

	// body is marshalled to JSON once and reused for every endpoint. nil sends no body.
	body interface{}

	operation   string
	resource    string
	subResource string
}

// target returns the path and query appended to each base URL.
func (r request) target() string {
	if len(r.query) == 0 {
		return r.path
	}
	return r.path + "?" + r.query.Encode()
}

// pathParam escapes a single path segment.
func pathParam(name string, value interface{}) string {
	escaped, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
	if err != nil {
		return url.PathEscape(fmt.Sprint(value))
	}
	return escaped
}

func buildPath(segments ...string) string {
	return "/" + strings.Join(segments, "/")
}

func boolQuery(name string, value bool) url.Values {
	return url.Values{name: []string{strconv.FormatBool(value)}}
}

// execute sends req to every endpoint, races the attempts and decodes the
// winning response with decode.
func execute[T any](ctx context.Context, c *Client, req request, decode responseDecoder[T]) (T, error) {
	var zero T

	var body []byte
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return zero, fmt.Errorf("schema registry: failed to marshal %s request: %w", req.operation, err)
		}
		body = b
	}

	target := req.target()
	start := time.Now()

	ctx, span := c.startSpan(ctx, "schema_registry."+req.operation)
	defer c.endSpan(span)

	run := func(ctx context.Context) (T, error) {
		calls := make([]endpointCall[T], len(c.urls))
		for i, base := range c.urls {
			calls[i] = func(ctx context.Context) (T, error) {
				return attempt(ctx, c, base+target, req, body, decode)
			}
		}
		return race(ctx, calls)
	}

	var (
		value T
		err   error
	)
	if c.reads != nil && req.method == http.MethodGet {
		shared := c.reads.DoChan(req.operation+" "+target, func() (interface{}, error) {
			return run(context.WithoutCancel(ctx))
		})
		select {
		case res := <-shared:
			err = res.Err
			if err == nil {
				value = res.Val.(T)
			}
		case <-ctx.Done():
			err = &TransportError{Err: ctx.Err()}
		}
	} else {
		value, err = run(ctx)
	}

	c.recordSpan(span, req, err)
	c.observe(req, time.Since(start), int64(len(body)), err)

	if err != nil {
		return zero, err
	}
	return value, nil
}

// attempt performs req against a single endpoint.
func attempt[T any](ctx context.Context, c *Client, endpoint string, req request, body []byte, decode responseDecoder[T]) (T, error) {
	var zero T
	start := time.Now()

	ctx, span := c.startSpan(ctx, "schema_registry.endpoint_attempt")
	defer c.endSpan(span)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, reader)
	if err != nil {
		err = &TransportError{Err: err}
		c.observeAttempt(endpoint, req, time.Since(start), err)
		return zero, err
	}
	httpReq.Header.Set("Accept", MediaType)
	if body != nil {
		httpReq.Header.Set("Content-Type", MediaType)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	value, err := doAndDecode(c.httpClient, httpReq, decode)

	if c.tracer != nil {
		c.tracer.SetAttributes(span, map[string]interface{}{
			"http.method": req.method,
			"http.url":    endpoint,
		})
		if err != nil {
			c.tracer.RecordErrorOnSpan(span, err)
		}
	}
	c.observeAttempt(endpoint, req, time.Since(start), err)

	if err != nil {
		c.debug("schema registry endpoint attempt failed", err, map[string]interface{}{
			"operation": req.operation,
			"endpoint":  endpoint,
		})
		return zero, err
	}
	return value, nil
}

func doAndDecode[T any](httpClient *http.Client, req *http.Request, decode responseDecoder[T]) (T, error) {
	resp, err := httpClient.Do(req)
	if err != nil {
		var zero T
		return zero, &TransportError{Err: err}
	}
	return decode(resp)
}
