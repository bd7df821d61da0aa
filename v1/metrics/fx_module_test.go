package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/schemaregistry/v1/logger"
	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

func TestFXModuleObservesSchemaRegistry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"compatibilityLevel":"FULL"}`))
	}))
	defer server.Close()

	var (
		m        *Metrics
		registry schema_registry.Registry
	)

	app := fxtest.New(t,
		FXModule,
		schema_registry.FXModule,
		fx.Provide(
			func() Config { return Config{Address: "127.0.0.1:0", ServiceName: "fx-test"} },
			func() *logger.Logger { return logger.NewNop() },
			func() schema_registry.Config { return schema_registry.NewConfig().WithURL(server.URL) },
		),
		fx.Populate(&m, &registry),
	)
	app.RequireStart()
	defer app.RequireStop()

	cfg, err := registry.GetConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, schema_registry.CompatibilityFull, cfg.CompatibilityLevel)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GetConfig", OutcomeSuccess)))
}
