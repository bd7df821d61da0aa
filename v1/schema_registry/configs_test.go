package schema_registry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilderDoesNotMutateReceiver(t *testing.T) {
	base := NewConfig().WithURL("http://a:8081")
	extended := base.WithURL("http://b:8081")

	assert.Equal(t, []string{"http://a:8081"}, base.URLs)
	assert.Equal(t, []string{"http://a:8081", "http://b:8081"}, extended.URLs)
}

func TestConfigAuthOverwriteWarns(t *testing.T) {
	cfg := NewConfig().WithBasicAuth("user", "pass").WithBearerAuth("tok")

	assert.Equal(t, AuthBearer, cfg.AuthKind())
	assert.Empty(t, cfg.Username)
	assert.Equal(t, []string{"overwriting existing authentication configuration"}, cfg.Warnings())

	cfg = cfg.WithBasicAuth("user", "pass")
	assert.Equal(t, AuthBasic, cfg.AuthKind())
	assert.Empty(t, cfg.Token)
	assert.Len(t, cfg.Warnings(), 2)
}

func TestConfigEmptyCredentialsIgnored(t *testing.T) {
	cfg := NewConfig().WithBasicAuth("", "pass")
	assert.Equal(t, AuthNone, cfg.AuthKind())
	assert.Len(t, cfg.Warnings(), 1)

	cfg = NewConfig().WithBasicAuth("user", "pass").WithBearerAuth("")
	assert.Equal(t, AuthBasic, cfg.AuthKind())
}

func TestConfigBearerWinsWhenBothSet(t *testing.T) {
	cfg := Config{URLs: []string{"http://a:8081"}, Username: "user", Token: "tok"}
	assert.Equal(t, AuthBearer, cfg.AuthKind())
	assert.Contains(t, cfg.Warnings(), "both basic and bearer authentication configured, using bearer")
}

func TestConfigValidate(t *testing.T) {
	err := NewConfig().Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoEndpoints))

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "urls", cfgErr.Field)

	err = NewConfig().WithURL("localhost:8081/path").Validate()
	assert.True(t, IsConfigurationError(err))

	err = NewConfig().WithURL("http://a:8081").WithProxy("::bad").Validate()
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "proxy", cfgErr.Field)

	assert.NoError(t, NewConfig().WithURL("http://a:8081").WithProxy("http://proxy:3128").Validate())
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv(EnvURLs, "http://a:8081, http://b:8081,")
	t.Setenv(EnvUsername, "user")
	t.Setenv(EnvPassword, "pass")
	t.Setenv(EnvTimeout, "3s")

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://a:8081", "http://b:8081"}, cfg.URLs)
	assert.Equal(t, AuthBasic, cfg.AuthKind())
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestNewConfigFromEnvHeadersAndCoalescing(t *testing.T) {
	t.Setenv(EnvURLs, "http://a:8081")
	t.Setenv(EnvHeaders, "X-Tenant=acme, X-Trace=on")
	t.Setenv(EnvCoalesceReads, "true")

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"X-Tenant": "acme", "X-Trace": "on"}, cfg.Headers)
	assert.True(t, cfg.CoalesceReads)
	assert.Equal(t, AuthNone, cfg.AuthKind())
	assert.NoError(t, cfg.Validate())
}

func TestNewConfigFromEnvTokenOverridesBasicAuth(t *testing.T) {
	t.Setenv(EnvURLs, "http://a:8081")
	t.Setenv(EnvUsername, "user")
	t.Setenv(EnvPassword, "pass")
	t.Setenv(EnvToken, "secret")

	cfg, err := NewConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, AuthBearer, cfg.AuthKind())
	assert.Empty(t, cfg.Username)
	assert.Equal(t, []string{"overwriting existing authentication configuration"}, cfg.Warnings())
}

func TestNewConfigFromEnvBadTimeout(t *testing.T) {
	t.Setenv(EnvURLs, "http://a:8081")
	t.Setenv(EnvTimeout, "soon")

	_, err := NewConfigFromEnv()
	assert.True(t, IsConfigurationError(err))
}
