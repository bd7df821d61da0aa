package schema_registry

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const userSchema = `{"type":"record","name":"User","fields":[{"name":"name","type":"string"}]}`

// TestSchemaRegistryIntegration runs the client against the schema registry
// built into Redpanda.
func TestSchemaRegistryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	registryURL, containerInstance := initializeRegistry(ctx, t)
	defer func() {
		if err := containerInstance.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}()

	var client *Client

	app := fx.New(
		FXModule,
		fx.Provide(
			// The second URL never answers; every call must still succeed.
			func() Config {
				return NewConfig().WithURL("http://127.0.0.1:1").WithURL(registryURL)
			},
		),
		fx.Populate(&client),
	)

	require.NoError(t, app.Start(ctx))
	defer app.Stop(ctx)

	subject := fmt.Sprintf("users-%d-value", time.Now().UnixNano())

	t.Run("Register and fetch", func(t *testing.T) {
		id, err := client.RegisterSchema(ctx, subject, NewSchema(userSchema), false)
		require.NoError(t, err)
		assert.Positive(t, id)

		schema, err := client.GetSchemaByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, SchemaTypeAvro, schema.SchemaType)
		assert.JSONEq(t, userSchema, schema.Schema)

		latest, err := client.GetSubjectVersion(ctx, subject, LatestVersion)
		require.NoError(t, err)
		assert.Equal(t, id, latest.ID)
		assert.Equal(t, 1, latest.Version)

		found, err := client.LookupSubjectSchema(ctx, subject, NewSchema(userSchema), false)
		require.NoError(t, err)
		assert.Equal(t, id, found.ID)
	})

	t.Run("Subjects and versions", func(t *testing.T) {
		subjects, err := client.GetSubjects(ctx, false)
		require.NoError(t, err)
		assert.Contains(t, subjects, subject)

		versions, err := client.GetSubjectVersions(ctx, subject)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, versions)
	})

	t.Run("Compatibility", func(t *testing.T) {
		evolved := `{"type":"record","name":"User","fields":[{"name":"name","type":"string"},{"name":"age","type":"int","default":0}]}`
		compatible, err := client.IsCompatible(ctx, subject, LatestVersion, NewSchema(evolved))
		require.NoError(t, err)
		assert.True(t, compatible)
	})

	t.Run("Unknown subject", func(t *testing.T) {
		_, err := client.GetSubjectVersion(ctx, "does-not-exist", LatestVersion)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	})

	t.Run("Delete subject", func(t *testing.T) {
		deleted, err := client.DeleteSubject(ctx, subject, false)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, deleted)
	})
}

func initializeRegistry(ctx context.Context, t *testing.T) (string, testcontainers.Container) {
	containerInstance, err := createRedpandaContainer(ctx)
	require.NoError(t, err)

	port, err := containerInstance.MappedPort(ctx, "8081")
	require.NoError(t, err)

	host, err := containerInstance.Host(ctx)
	require.NoError(t, err)

	registryURL := fmt.Sprintf("http://%s:%s", host, port.Port())

	require.Eventually(t, func() bool {
		resp, err := http.Get(registryURL + "/subjects")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 60*time.Second, 500*time.Millisecond, "schema registry not ready")

	return registryURL, containerInstance
}

func createRedpandaContainer(ctx context.Context) (testcontainers.Container, error) {
	req := testcontainers.ContainerRequest{
		Image:        "docker.redpanda.com/redpandadata/redpanda:v24.2.4",
		ExposedPorts: []string{"8081/tcp"},
		Cmd: []string{
			"redpanda", "start",
			"--mode", "dev-container",
			"--smp", "1",
			"--schema-registry-addr", "0.0.0.0:8081",
		},
		WaitingFor: wait.ForListeningPort("8081/tcp").WithStartupTimeout(60 * time.Second),
	}

	var containerInstance testcontainers.Container
	var lastErr error

	for attempt := 0; attempt < 3; attempt++ {
		containerInstance, lastErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
		if lastErr == nil {
			return containerInstance, nil
		}

		if strings.Contains(lastErr.Error(), "docker.sock") {
			time.Sleep(time.Duration(attempt+1) * time.Second)
			continue
		}
		break
	}

	return nil, lastErr
}
