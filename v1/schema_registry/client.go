package schema_registry

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/Aleph-Alpha/schemaregistry/v1/observability"
)

// MediaType is sent as the Accept header of every request.
const MediaType = "application/vnd.schemaregistry.v1+json"

// Client is the default implementation of Registry that communicates with one or
// more Confluent Schema Registry instances over HTTP.
//
// Every operation is sent to all configured URLs at once. The first successful
// response is returned and the others are abandoned. When all of them fail, the
// error of the endpoint that answered last is returned and the other errors are
// dropped; enable debug logging to see them.
//
// A Client holds no per-call state and is safe for concurrent use.
type Client struct {
	// urls is the endpoint set. It is never modified after construction.
	urls []string

	// httpClient carries the proxy, timeout and static headers and is shared by
	// all concurrent requests.
	httpClient *http.Client

	logger   Logger
	observer observability.Observer
	tracer   Tracer

	// reads coalesces identical concurrent GETs when Config.CoalesceReads is set.
	reads *singleflight.Group
}

// NewClient creates a new schema registry client.
// Configuration problems (no URLs, malformed headers, bad proxy URL) are reported
// here as a *ConfigurationError and never during a call.
// Returns the concrete *Client type.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient, err := newHTTPClient(cfg)
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(cfg.URLs))
	for i, u := range cfg.URLs {
		urls[i] = strings.TrimRight(u, "/")
	}

	c := &Client{
		urls:       urls,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
	if cfg.CoalesceReads {
		c.reads = &singleflight.Group{}
	}

	for _, warning := range cfg.Warnings() {
		c.warn(warning)
	}
	c.info("Schema registry client configured", map[string]interface{}{
		"endpoints": len(urls),
		"auth":      cfg.AuthKind().String(),
		"proxy":     cfg.Proxy != "",
	})

	return c, nil
}

// NewClientFromURL creates a client for a single registry URL with no
// authentication.
func NewClientFromURL(u string) (*Client, error) {
	return NewClient(NewConfig().WithURL(u))
}

// WithObserver attaches an observer that is notified once per logical call and
// once per endpoint attempt. It returns the client for chaining and must be
// called before the client is shared between goroutines.
func (c *Client) WithObserver(observer observability.Observer) *Client {
	c.observer = observer
	return c
}

// WithTracer attaches a tracer used to create a span per logical call and a
// child span per endpoint attempt.
func (c *Client) WithTracer(tracer Tracer) *Client {
	c.tracer = tracer
	return c
}

// URLs returns a copy of the endpoint set.
func (c *Client) URLs() []string {
	return append([]string(nil), c.urls...)
}

// Close releases idle connections held by the underlying transport.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func newHTTPClient(cfg Config) (*http.Client, error) {
	headers, err := BuildHeaders(cfg)
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, &ConfigurationError{Field: "proxy", Err: err}
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &headerTransport{base: transport, headers: headers},
	}, nil
}

// headerTransport adds the static and authentication headers to each request.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.headers) == 0 {
		return t.base.RoundTrip(req)
	}
	req = req.Clone(req.Context())
	for name, values := range t.headers {
		req.Header[name] = append([]string(nil), values...)
	}
	return t.base.RoundTrip(req)
}

func (t *headerTransport) CloseIdleConnections() {
	if closer, ok := t.base.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}

func (c *Client) info(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Info(msg, nil, fields)
	}
}

func (c *Client) warn(msg string) {
	if c.logger != nil {
		c.logger.Warn(msg, nil)
		return
	}
	log.Println("WARN: schema registry: " + msg)
}

func (c *Client) debug(msg string, err error, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, err, fields)
	}
}
