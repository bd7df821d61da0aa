package schema_registry

import (
	"context"
	"net/http"
)

// GetExporters lists exporter names.
func (c *Client) GetExporters(ctx context.Context) ([]string, error) {
	return execute(ctx, c, request{
		method:    http.MethodGet,
		path:      buildPath("exporters"),
		operation: "GetExporters",
	}, decodeJSON[[]string])
}

// GetContexts lists the schema contexts known to the registry.
func (c *Client) GetContexts(ctx context.Context) ([]string, error) {
	return execute(ctx, c, request{
		method:    http.MethodGet,
		path:      buildPath("contexts"),
		operation: "GetContexts",
	}, decodeJSON[[]string])
}

// CreateExporter creates an exporter and returns its name.
func (c *Client) CreateExporter(ctx context.Context, config ExporterConfig) (string, error) {
	config = config.withConfig()
	return c.exporterName(ctx, request{
		method:    http.MethodPost,
		path:      buildPath("exporters"),
		body:      config,
		operation: "CreateExporter",
		resource:  config.Name,
	})
}

// UpdateExporter replaces the exporter definition and returns its name.
func (c *Client) UpdateExporter(ctx context.Context, name string, config ExporterConfig) (string, error) {
	config = config.withConfig()
	return c.exporterName(ctx, request{
		method:    http.MethodPut,
		path:      buildPath("exporters", pathParam("name", name)),
		body:      config,
		operation: "UpdateExporter",
		resource:  name,
	})
}

// UpdateExporterConfig replaces only the exporter's client configuration.
func (c *Client) UpdateExporterConfig(ctx context.Context, name string, config map[string]string) (string, error) {
	if config == nil {
		config = map[string]string{}
	}
	return c.exporterName(ctx, request{
		method:      http.MethodPut,
		path:        buildPath("exporters", pathParam("name", name), "config"),
		body:        config,
		operation:   "UpdateExporterConfig",
		resource:    name,
		subResource: "config",
	})
}

// GetExporter returns the exporter definition.
func (c *Client) GetExporter(ctx context.Context, name string) (*ExporterConfig, error) {
	config, err := execute(ctx, c, request{
		method:    http.MethodGet,
		path:      buildPath("exporters", pathParam("name", name)),
		operation: "GetExporter",
		resource:  name,
	}, decodeJSON[ExporterConfig])
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// GetExporterConfig returns the exporter's client configuration.
func (c *Client) GetExporterConfig(ctx context.Context, name string) (map[string]string, error) {
	return execute(ctx, c, request{
		method:      http.MethodGet,
		path:        buildPath("exporters", pathParam("name", name), "config"),
		operation:   "GetExporterConfig",
		resource:    name,
		subResource: "config",
	}, decodeJSON[map[string]string])
}

// GetExporterStatus returns the exporter's state and offset.
func (c *Client) GetExporterStatus(ctx context.Context, name string) (*ExporterStatus, error) {
	status, err := execute(ctx, c, request{
		method:      http.MethodGet,
		path:        buildPath("exporters", pathParam("name", name), "status"),
		operation:   "GetExporterStatus",
		resource:    name,
		subResource: "status",
	}, decodeJSON[ExporterStatus])
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// PauseExporter pauses a running exporter.
func (c *Client) PauseExporter(ctx context.Context, name string) error {
	return c.exporterAction(ctx, name, "pause", "PauseExporter")
}

// ResetExporter resets the exporter's offset.
func (c *Client) ResetExporter(ctx context.Context, name string) error {
	return c.exporterAction(ctx, name, "reset", "ResetExporter")
}

// ResumeExporter resumes a paused exporter.
func (c *Client) ResumeExporter(ctx context.Context, name string) error {
	return c.exporterAction(ctx, name, "resume", "ResumeExporter")
}

// DeleteExporter deletes the exporter. Any 2xx answer counts as success.
func (c *Client) DeleteExporter(ctx context.Context, name string) error {
	_, err := execute(ctx, c, request{
		method:    http.MethodDelete,
		path:      buildPath("exporters", pathParam("name", name)),
		operation: "DeleteExporter",
		resource:  name,
	}, decodeNoContent)
	return err
}

func (c *Client) exporterAction(ctx context.Context, name, action, operation string) error {
	_, err := execute(ctx, c, request{
		method:      http.MethodPut,
		path:        buildPath("exporters", pathParam("name", name), action),
		operation:   operation,
		resource:    name,
		subResource: action,
	}, decodeNoContent)
	return err
}

func (c *Client) exporterName(ctx context.Context, req request) (string, error) {
	name, err := execute(ctx, c, req, decodeJSON[exporterName])
	if err != nil {
		return "", err
	}
	return string(name), nil
}
