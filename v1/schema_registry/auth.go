package schema_registry

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"golang.org/x/net/http/httpguts"
)

// AuthKind identifies which authentication scheme a Config carries.
type AuthKind int

const (
	// AuthNone sends no Authorization header.
	AuthNone AuthKind = iota
	// AuthBasic sends "Basic base64(username:password)".
	AuthBasic
	// AuthBearer sends "Bearer <token>".
	AuthBearer
)

func (k AuthKind) String() string {
	switch k {
	case AuthBasic:
		return "basic"
	case AuthBearer:
		return "bearer"
	default:
		return "none"
	}
}

// BasicAuthHeader returns the Authorization value for HTTP basic auth.
// An empty password encodes as "username:" which is what the registry expects
// when only a username is configured.
func BasicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

// BearerAuthHeader returns the Authorization value for a bearer token.
// Tokens containing characters that are not legal in a header value are rejected.
func BearerAuthHeader(token string) (string, error) {
	value := "Bearer " + token
	if !httpguts.ValidHeaderFieldValue(value) {
		return "", &ConfigurationError{Field: "token", Err: fmt.Errorf("token contains characters not allowed in a header value")}
	}
	return value, nil
}

// BuildHeaders turns the static header map and the authentication settings of cfg
// into the header set attached to every request. The Authorization header derived
// from the auth settings replaces a static "Authorization" entry.
//
// Building twice from the same Config yields identical values.
func BuildHeaders(cfg Config) (http.Header, error) {
	headers := make(http.Header, len(cfg.Headers)+1)

	for name, value := range cfg.Headers {
		if !httpguts.ValidHeaderFieldName(name) {
			return nil, &ConfigurationError{Field: "headers", Err: fmt.Errorf("error parsing header name %q", name)}
		}
		if !httpguts.ValidHeaderFieldValue(value) {
			return nil, &ConfigurationError{Field: "headers", Err: fmt.Errorf("error parsing header value for %q", name)}
		}
		headers.Set(name, value)
	}

	switch cfg.AuthKind() {
	case AuthBasic:
		headers.Set("Authorization", BasicAuthHeader(cfg.Username, cfg.Password))
	case AuthBearer:
		value, err := BearerAuthHeader(cfg.Token)
		if err != nil {
			return nil, err
		}
		headers.Set("Authorization", value)
	}

	return headers, nil
}
