package schema_registry

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Environment variables read by NewConfigFromEnv.
const (
	EnvURLs     = "SCHEMA_REGISTRY_URLS"
	EnvUsername = "SCHEMA_REGISTRY_USERNAME"
	EnvPassword = "SCHEMA_REGISTRY_PASSWORD"
	EnvToken    = "SCHEMA_REGISTRY_TOKEN"
	EnvProxy    = "SCHEMA_REGISTRY_PROXY"
	EnvTimeout  = "SCHEMA_REGISTRY_TIMEOUT"
	EnvHeaders  = "SCHEMA_REGISTRY_HEADERS"

	EnvCoalesceReads = "SCHEMA_REGISTRY_COALESCE_READS"
)

// Config holds configuration for the schema registry client.
// It is read once by NewClient; later changes have no effect on an existing client.
type Config struct {
	// URLs are the base URLs of the registry instances (e.g. "http://localhost:8081").
	// Every call is sent to all of them concurrently and the first success wins.
	URLs []string `yaml:"urls" env:"SCHEMA_REGISTRY_URLS" envSeparator:","`

	// Username for basic auth (optional)
	Username string `yaml:"username" env:"SCHEMA_REGISTRY_USERNAME"`

	// Password for basic auth (optional, only used with Username)
	Password string `yaml:"password" env:"SCHEMA_REGISTRY_PASSWORD"`

	// Token for bearer auth (optional). Takes precedence over Username when both are set.
	Token string `yaml:"token" env:"SCHEMA_REGISTRY_TOKEN"`

	// Proxy routes every request through the given proxy URL (optional).
	Proxy string `yaml:"proxy" env:"SCHEMA_REGISTRY_PROXY"`

	// Headers are static headers added to every request. In the environment
	// they are written as "Name=value" pairs separated by commas.
	Headers map[string]string `yaml:"headers" env:"SCHEMA_REGISTRY_HEADERS" envSeparator:"," envKeyValSeparator:"="`

	// Timeout for a single HTTP request. Zero disables the client timeout.
	Timeout time.Duration `yaml:"timeout" env:"SCHEMA_REGISTRY_TIMEOUT"`

	// CoalesceReads shares one in-flight GET between concurrent callers asking
	// for the same path. The shared request is detached from the cancellation
	// of the caller that started it, so it only ends with Timeout or a response.
	CoalesceReads bool `yaml:"coalesce_reads" env:"SCHEMA_REGISTRY_COALESCE_READS"`

	// Logger receives construction warnings and debug output about discarded
	// endpoint failures. Optional.
	Logger Logger `yaml:"-"`

	warnings []string
}

// NewConfig returns an empty Config to be filled with the With* builders.
func NewConfig() Config {
	return Config{}
}

// NewConfigFromEnv reads the client configuration from SCHEMA_REGISTRY_* variables.
// SCHEMA_REGISTRY_URLS is a comma separated list. Basic auth is applied before
// the bearer token, so a token overrides a username with a warning.
func NewConfigFromEnv() (Config, error) {
	var parsed Config
	if err := env.Parse(&parsed); err != nil {
		return Config{}, &ConfigurationError{Field: "env", Err: err}
	}

	cfg := NewConfig()
	for _, u := range parsed.URLs {
		if u = strings.TrimSpace(u); u != "" {
			cfg = cfg.WithURL(u)
		}
	}
	if parsed.Username != "" {
		cfg = cfg.WithBasicAuth(parsed.Username, parsed.Password)
	}
	if parsed.Token != "" {
		cfg = cfg.WithBearerAuth(parsed.Token)
	}
	if parsed.Proxy != "" {
		cfg = cfg.WithProxy(parsed.Proxy)
	}
	if len(parsed.Headers) > 0 {
		headers := make(map[string]string, len(parsed.Headers))
		for name, value := range parsed.Headers {
			headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
		}
		cfg = cfg.WithHeaders(headers)
	}
	cfg = cfg.WithTimeout(parsed.Timeout)
	cfg.CoalesceReads = parsed.CoalesceReads

	return cfg, nil
}

// WithURL appends a registry base URL.
func (c Config) WithURL(u string) Config {
	c.URLs = append(append([]string(nil), c.URLs...), u)
	return c
}

// WithBasicAuth configures basic authentication, replacing any bearer token.
// An empty username leaves the configuration unchanged.
func (c Config) WithBasicAuth(username, password string) Config {
	if username == "" {
		return c.warn("basic auth not applied, provided username is empty")
	}
	if c.AuthKind() != AuthNone {
		c = c.warn("overwriting existing authentication configuration")
	}
	c.Token = ""
	c.Username = username
	c.Password = password
	return c
}

// WithBearerAuth configures bearer authentication, replacing any basic auth.
// An empty token leaves the configuration unchanged.
func (c Config) WithBearerAuth(token string) Config {
	if token == "" {
		return c.warn("bearer auth not applied, provided token is empty")
	}
	if c.AuthKind() != AuthNone {
		c = c.warn("overwriting existing authentication configuration")
	}
	c.Username = ""
	c.Password = ""
	c.Token = token
	return c
}

// WithProxy routes requests through the given proxy URL.
func (c Config) WithProxy(proxy string) Config {
	c.Proxy = proxy
	return c
}

// WithHeaders replaces the static header map.
func (c Config) WithHeaders(headers map[string]string) Config {
	c.Headers = make(map[string]string, len(headers))
	for k, v := range headers {
		c.Headers[k] = v
	}
	return c
}

// WithTimeout sets the per-request HTTP timeout.
func (c Config) WithTimeout(timeout time.Duration) Config {
	c.Timeout = timeout
	return c
}

// WithLogger attaches a logger.
func (c Config) WithLogger(logger Logger) Config {
	c.Logger = logger
	return c
}

// AuthKind reports the authentication scheme the configuration resolves to.
func (c Config) AuthKind() AuthKind {
	switch {
	case c.Token != "":
		return AuthBearer
	case c.Username != "":
		return AuthBasic
	default:
		return AuthNone
	}
}

// Warnings returns the non-fatal problems recorded while building the configuration.
func (c Config) Warnings() []string {
	out := append([]string(nil), c.warnings...)
	if c.Token != "" && c.Username != "" {
		out = append(out, "both basic and bearer authentication configured, using bearer")
	}
	return out
}

// Validate checks that at least one well-formed endpoint is configured and that
// the proxy URL, if any, parses.
func (c Config) Validate() error {
	if len(c.URLs) == 0 {
		return &ConfigurationError{Field: "urls", Err: ErrNoEndpoints}
	}
	for _, u := range c.URLs {
		if err := validateHTTPURL(u); err != nil {
			return &ConfigurationError{Field: "urls", Err: err}
		}
	}
	if c.Proxy != "" {
		if err := validateHTTPURL(c.Proxy); err != nil {
			return &ConfigurationError{Field: "proxy", Err: err}
		}
	}
	return nil
}

func (c Config) warn(msg string) Config {
	c.warnings = append(append([]string(nil), c.warnings...), msg)
	return c
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q is not an absolute URL", raw)
	}
	return nil
}
