package schema_registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNoEndpoints is returned when a client is constructed, or a call is executed,
// without a single registry URL to send it to.
var ErrNoEndpoints = errors.New("schema registry: no endpoints configured")

// ConfigurationError is raised while building a client: malformed header names or
// values, an unparsable proxy or endpoint URL, or an empty endpoint set.
// It is never returned from a registry call.
type ConfigurationError struct {
	// Field names the configuration entry that was rejected, e.g. "headers" or "proxy".
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("schema registry: invalid configuration %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// TransportError wraps a failure that happened before any HTTP response was
// received: connection refused, TLS handshake, client timeout or a cancelled context.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("schema registry: unexpected http call error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// UpstreamError is a well-formed HTTP response with a non-2xx status.
// Body holds the raw response text; the registry's JSON error envelope is not
// parsed into the error, use ErrorCode for a best-effort look at it.
type UpstreamError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("schema registry: upstream error: %s returned %d: %s", e.URL, e.StatusCode, e.Body)
}

// ErrorCode returns the registry's numeric error_code (e.g. 40401 for an unknown
// subject) when Body is a JSON error envelope, and zero otherwise.
func (e *UpstreamError) ErrorCode() int {
	var envelope struct {
		ErrorCode int `json:"error_code"`
	}
	if err := json.Unmarshal([]byte(e.Body), &envelope); err != nil {
		return 0
	}
	return envelope.ErrorCode
}

// DecodeError is a 2xx response whose body did not parse into the expected type.
// It points at a mismatch between client and server schemas rather than a
// registry-reported failure.
type DecodeError struct {
	Body   string
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("schema registry: error parsing response '%s' into '%s': %v", e.Body, e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InvalidSchemaTypeError is returned when a schema type string is not one of AVRO, PROTOBUF or JSON.
type InvalidSchemaTypeError struct {
	Value string
}

func (e *InvalidSchemaTypeError) Error() string {
	return fmt.Sprintf("schema registry: invalid schema type: %s", e.Value)
}

// InvalidCompatibilityLevelError is returned for an unknown compatibility level string.
type InvalidCompatibilityLevelError struct {
	Value string
}

func (e *InvalidCompatibilityLevelError) Error() string {
	return fmt.Sprintf("schema registry: invalid compatibility level: %s", e.Value)
}

// InvalidModeError is returned for an unknown resource mode string.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("schema registry: invalid mode: %s", e.Value)
}

// IsConfigurationError reports whether err is, or wraps, a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsTransportError reports whether err is, or wraps, a *TransportError.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}

// IsUpstreamError reports whether err is, or wraps, an *UpstreamError.
func IsUpstreamError(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

// IsDecodeError reports whether err is, or wraps, a *DecodeError.
func IsDecodeError(err error) bool {
	var target *DecodeError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is an upstream 404, e.g. an unknown subject or schema id.
func IsNotFound(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target) && target.StatusCode == http.StatusNotFound
}
