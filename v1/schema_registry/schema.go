package schema_registry

import (
	"context"
	"net/http"
	"strconv"
)

// GetSchemaByID retrieves the schema registered under the global id.
func (c *Client) GetSchemaByID(ctx context.Context, id int) (*Schema, error) {
	schema, err := execute(ctx, c, request{
		method:    http.MethodGet,
		path:      buildPath("schemas", "ids", pathParam("id", id)),
		operation: "GetSchemaByID",
		resource:  strconv.Itoa(id),
	}, decodeJSON[Schema])
	if err != nil {
		return nil, err
	}
	return &schema, nil
}

// GetSchemaByIDRaw returns the schema document for id as the registry stores it.
func (c *Client) GetSchemaByIDRaw(ctx context.Context, id int) (string, error) {
	return execute(ctx, c, request{
		method:    http.MethodGet,
		path:      buildPath("schemas", "ids", pathParam("id", id), "schema"),
		operation: "GetSchemaByIDRaw",
		resource:  strconv.Itoa(id),
	}, decodeRaw)
}

// GetSchemaTypes lists the schema types supported by the registry.
func (c *Client) GetSchemaTypes(ctx context.Context) ([]SchemaType, error) {
	return execute(ctx, c, request{
		method:    http.MethodGet,
		path:      buildPath("schemas", "types"),
		operation: "GetSchemaTypes",
	}, decodeJSON[[]SchemaType])
}

// GetSchemaSubjectVersions lists every subject version that uses schema id.
func (c *Client) GetSchemaSubjectVersions(ctx context.Context, id int) ([]SubjectVersion, error) {
	return execute(ctx, c, request{
		method:    http.MethodGet,
		path:      buildPath("schemas", "ids", pathParam("id", id), "versions"),
		operation: "GetSchemaSubjectVersions",
		resource:  strconv.Itoa(id),
	}, decodeJSON[[]SubjectVersion])
}
