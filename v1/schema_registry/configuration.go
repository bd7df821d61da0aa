package schema_registry

import (
	"context"
	"net/http"
)

// GetConfig returns the global compatibility configuration.
func (c *Client) GetConfig(ctx context.Context) (*ClusterConfig, error) {
	return c.config(ctx, request{
		method:    http.MethodGet,
		path:      buildPath("config"),
		operation: "GetConfig",
	})
}

// UpdateConfig replaces the registry-wide configuration and returns what the
// registry stored.
func (c *Client) UpdateConfig(ctx context.Context, config ClusterConfig) (*ClusterConfig, error) {
	return c.config(ctx, request{
		method:    http.MethodPut,
		path:      buildPath("config"),
		body:      config,
		operation: "UpdateConfig",
	})
}

// GetSubjectConfig returns the configuration of subject. The registry answers 404
// when the subject has no override.
func (c *Client) GetSubjectConfig(ctx context.Context, subject string) (*SubjectConfig, error) {
	return c.config(ctx, request{
		method:    http.MethodGet,
		path:      buildPath("config", pathParam("subject", subject)),
		operation: "GetSubjectConfig",
		resource:  subject,
	})
}

// UpdateSubjectConfig sets the compatibility override of subject.
func (c *Client) UpdateSubjectConfig(ctx context.Context, subject string, config SubjectConfig) (*SubjectConfig, error) {
	return c.config(ctx, request{
		method:    http.MethodPut,
		path:      buildPath("config", pathParam("subject", subject)),
		body:      config,
		operation: "UpdateSubjectConfig",
		resource:  subject,
	})
}

func (c *Client) config(ctx context.Context, req request) (*CompatibilityConfig, error) {
	config, err := execute(ctx, c, req, decodeJSON[CompatibilityConfig])
	if err != nil {
		return nil, err
	}
	return &config, nil
}
