package schema_registry

import (
	"context"
	"net/http"
)

// GetMode returns the global registry mode.
func (c *Client) GetMode(ctx context.Context) (Mode, error) {
	return c.mode(ctx, request{
		method:    http.MethodGet,
		path:      buildPath("mode"),
		operation: "GetMode",
	})
}

// UpdateMode sets the registry-wide mode. force allows switching to IMPORT while
// schemas are registered.
func (c *Client) UpdateMode(ctx context.Context, mode Mode, force bool) (Mode, error) {
	return c.mode(ctx, request{
		method:    http.MethodPut,
		path:      buildPath("mode"),
		query:     boolQuery("force", force),
		body:      resourceMode{Mode: mode},
		operation: "UpdateMode",
	})
}

// GetSubjectMode returns the mode override of subject.
func (c *Client) GetSubjectMode(ctx context.Context, subject string) (Mode, error) {
	return c.mode(ctx, request{
		method:    http.MethodGet,
		path:      buildPath("mode", pathParam("subject", subject)),
		operation: "GetSubjectMode",
		resource:  subject,
	})
}

// UpdateSubjectMode sets the mode override of subject. force allows switching
// to IMPORT while the subject still has schemas.
func (c *Client) UpdateSubjectMode(ctx context.Context, subject string, mode Mode, force bool) (Mode, error) {
	return c.mode(ctx, request{
		method:    http.MethodPut,
		path:      buildPath("mode", pathParam("subject", subject)),
		query:     boolQuery("force", force),
		body:      resourceMode{Mode: mode},
		operation: "UpdateSubjectMode",
		resource:  subject,
	})
}

// DeleteSubjectMode removes the subject override and returns the mode it had.
func (c *Client) DeleteSubjectMode(ctx context.Context, subject string) (Mode, error) {
	return c.mode(ctx, request{
		method:    http.MethodDelete,
		path:      buildPath("mode", pathParam("subject", subject)),
		operation: "DeleteSubjectMode",
		resource:  subject,
	})
}

func (c *Client) mode(ctx context.Context, req request) (Mode, error) {
	m, err := execute(ctx, c, req, decodeJSON[resourceMode])
	if err != nil {
		return "", err
	}
	return m.Mode, nil
}
