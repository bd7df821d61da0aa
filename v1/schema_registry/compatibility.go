package schema_registry

import (
	"context"
	"net/http"
)

// IsCompatible tests schema against one version of subject.
func (c *Client) IsCompatible(ctx context.Context, subject string, version Version, schema UnregisteredSchema) (bool, error) {
	check, err := execute(ctx, c, request{
		method:      http.MethodPost,
		path:        buildPath("compatibility", "subjects", pathParam("subject", subject), "versions", pathParam("version", version.String())),
		body:        schema,
		operation:   "IsCompatible",
		resource:    subject,
		subResource: version.String(),
	}, decodeJSON[compatibilityCheck])
	if err != nil {
		return false, err
	}
	return check.IsCompatible, nil
}

// IsFullyCompatible tests schema against every version of subject.
func (c *Client) IsFullyCompatible(ctx context.Context, subject string, schema UnregisteredSchema) (bool, error) {
	check, err := execute(ctx, c, request{
		method:    http.MethodPost,
		path:      buildPath("compatibility", "subjects", pathParam("subject", subject), "versions"),
		body:      schema,
		operation: "IsFullyCompatible",
		resource:  subject,
	}, decodeJSON[compatibilityCheck])
	if err != nil {
		return false, err
	}
	return check.IsCompatible, nil
}
