package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

func parseVersion(s string) (schema_registry.Version, error) {
	if s == "latest" {
		return schema_registry.LatestVersion, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid version %q: expected a positive number or latest", s)
	}
	return schema_registry.Version(n), nil
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid schema id %q", s)
	}
	return id, nil
}

// readSchema loads a schema document from path and tags it with schemaType.
func readSchema(path, schemaType string) (schema_registry.UnregisteredSchema, error) {
	if path == "" {
		return schema_registry.UnregisteredSchema{}, fmt.Errorf("--file is required")
	}
	t, err := schema_registry.ParseSchemaType(schemaType)
	if err != nil {
		return schema_registry.UnregisteredSchema{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return schema_registry.UnregisteredSchema{}, fmt.Errorf("failed to read schema file: %w", err)
	}
	return schema_registry.NewSchema(string(data)).WithType(t), nil
}

// optionalSubject returns the single optional subject argument.
func optionalSubject(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
