package schema_registry

import (
	"context"
	"net/http"
)

// GetSubjects lists registered subjects. With deleted set, soft-deleted subjects
// are included.
func (c *Client) GetSubjects(ctx context.Context, deleted bool) ([]string, error) {
	return execute(ctx, c, request{
		method:    http.MethodGet,
		path:      buildPath("subjects"),
		query:     boolQuery("deleted", deleted),
		operation: "GetSubjects",
	}, decodeJSON[[]string])
}

// GetSubjectVersions lists the versions registered under subject.
func (c *Client) GetSubjectVersions(ctx context.Context, subject string) ([]int, error) {
	return execute(ctx, c, request{
		method:    http.MethodGet,
		path:      buildPath("subjects", pathParam("subject", subject), "versions"),
		operation: "GetSubjectVersions",
		resource:  subject,
	}, decodeJSON[[]int])
}

// DeleteSubject deletes subject and returns the versions that were removed.
// A permanent delete is only accepted by the registry after a soft delete.
func (c *Client) DeleteSubject(ctx context.Context, subject string, permanent bool) ([]int, error) {
	return execute(ctx, c, request{
		method:    http.MethodDelete,
		path:      buildPath("subjects", pathParam("subject", subject)),
		query:     boolQuery("permanent", permanent),
		operation: "DeleteSubject",
		resource:  subject,
	}, decodeJSON[[]int])
}

// GetSubjectVersion retrieves one version of subject. Use LatestVersion for the
// most recent one.
func (c *Client) GetSubjectVersion(ctx context.Context, subject string, version Version) (*Subject, error) {
	s, err := execute(ctx, c, request{
		method:      http.MethodGet,
		path:        buildPath("subjects", pathParam("subject", subject), "versions", pathParam("version", version.String())),
		operation:   "GetSubjectVersion",
		resource:    subject,
		subResource: version.String(),
	}, decodeJSON[Subject])
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetSubjectVersionRaw returns the schema document of one subject version as
// the registry stores it.
func (c *Client) GetSubjectVersionRaw(ctx context.Context, subject string, version Version) (string, error) {
	return execute(ctx, c, request{
		method:      http.MethodGet,
		path:        buildPath("subjects", pathParam("subject", subject), "versions", pathParam("version", version.String()), "schema"),
		operation:   "GetSubjectVersionRaw",
		resource:    subject,
		subResource: version.String(),
	}, decodeRaw)
}

// RegisterSchema registers schema under subject and returns its global id.
// Registering an identical schema again returns the existing id.
func (c *Client) RegisterSchema(ctx context.Context, subject string, schema UnregisteredSchema, normalize bool) (int, error) {
	registered, err := execute(ctx, c, request{
		method:    http.MethodPost,
		path:      buildPath("subjects", pathParam("subject", subject), "versions"),
		query:     boolQuery("normalize", normalize),
		body:      schema,
		operation: "RegisterSchema",
		resource:  subject,
	}, decodeJSON[registeredID])
	if err != nil {
		return 0, err
	}
	return registered.ID, nil
}

// LookupSubjectSchema returns the subject version matching schema. An unknown
// schema is reported by the registry as a 404 (see IsNotFound).
func (c *Client) LookupSubjectSchema(ctx context.Context, subject string, schema UnregisteredSchema, normalize bool) (*Subject, error) {
	s, err := execute(ctx, c, request{
		method:    http.MethodPost,
		path:      buildPath("subjects", pathParam("subject", subject)),
		query:     boolQuery("normalize", normalize),
		body:      schema,
		operation: "LookupSubjectSchema",
		resource:  subject,
	}, decodeJSON[Subject])
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// DeleteSubjectVersion deletes a single version of subject and returns its number.
func (c *Client) DeleteSubjectVersion(ctx context.Context, subject string, version Version, permanent bool) (int, error) {
	return execute(ctx, c, request{
		method:      http.MethodDelete,
		path:        buildPath("subjects", pathParam("subject", subject), "versions", pathParam("version", version.String())),
		query:       boolQuery("permanent", permanent),
		operation:   "DeleteSubjectVersion",
		resource:    subject,
		subResource: version.String(),
	}, decodeJSON[int])
}

// GetSubjectVersionReferencedBy lists the ids of schemas that reference the
// given subject version.
func (c *Client) GetSubjectVersionReferencedBy(ctx context.Context, subject string, version Version) ([]int, error) {
	return execute(ctx, c, request{
		method:      http.MethodGet,
		path:        buildPath("subjects", pathParam("subject", subject), "versions", pathParam("version", version.String()), "referencedBy"),
		operation:   "GetSubjectVersionReferencedBy",
		resource:    subject,
		subResource: version.String(),
	}, decodeJSON[[]int])
}
