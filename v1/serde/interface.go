package serde

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

// Registry is the part of the schema registry client the serializers need.
// *schema_registry.Client and schema_registry.MockRegistry both satisfy it.
type Registry interface {
	RegisterSchema(ctx context.Context, subject string, schema schema_registry.UnregisteredSchema, normalize bool) (int, error)
	LookupSubjectSchema(ctx context.Context, subject string, schema schema_registry.UnregisteredSchema, normalize bool) (*schema_registry.Subject, error)
	GetSchemaByID(ctx context.Context, id int) (*schema_registry.Schema, error)
	GetSubjectVersion(ctx context.Context, subject string, version schema_registry.Version) (*schema_registry.Subject, error)
}

var _ Registry = (schema_registry.Registry)(nil)

// Serializer turns a value into a Confluent wire-format payload.
type Serializer interface {
	Serialize(ctx context.Context, value interface{}) ([]byte, error)
}

// Deserializer decodes a Confluent wire-format payload into target.
type Deserializer interface {
	Deserialize(ctx context.Context, data []byte, target interface{}) error
}

var (
	// ErrMissingRegistry is returned by constructors called without a Registry.
	ErrMissingRegistry = errors.New("serde: registry is required")

	// ErrMissingSubject is returned by serializer constructors called without a subject.
	ErrMissingSubject = errors.New("serde: subject is required")
)

// SchemaTypeMismatchError is returned when a payload references a schema of a
// different format than the deserializer handles.
type SchemaTypeMismatchError struct {
	ID       int
	Expected schema_registry.SchemaType
	Actual   schema_registry.SchemaType
}

func (e *SchemaTypeMismatchError) Error() string {
	return fmt.Sprintf("serde: schema %d is %s, expected %s", e.ID, e.Actual, e.Expected)
}
