package serde

import (
	"context"
	"errors"
	"fmt"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

// MarshalFunc encodes a value into the schema's binary or text form.
type MarshalFunc func(value interface{}) ([]byte, error)

// UnmarshalFunc decodes payload into target, given the writer's schema.
type UnmarshalFunc func(schema *schema_registry.Schema, payload []byte, target interface{}) error

// GenericSerializerConfig configures a serializer for any schema format whose
// encoding is supplied by the caller, typically Avro.
type GenericSerializerConfig struct {
	Registry Registry
	Subject  string
	Schema   schema_registry.UnregisteredSchema

	MarshalFunc MarshalFunc

	SkipRegistration bool
	Normalize        bool
}

// GenericSerializer frames the output of a MarshalFunc with the schema id.
type GenericSerializer struct {
	reg     *registration
	marshal MarshalFunc
}

// NewGenericSerializer creates a serializer around cfg.MarshalFunc.
func NewGenericSerializer(cfg GenericSerializerConfig) (*GenericSerializer, error) {
	if cfg.Registry == nil {
		return nil, ErrMissingRegistry
	}
	if cfg.Subject == "" {
		return nil, ErrMissingSubject
	}
	if cfg.Schema.Schema == "" {
		return nil, errors.New("serde: schema is required")
	}
	if cfg.MarshalFunc == nil {
		return nil, errors.New("serde: marshal func is required")
	}

	return &GenericSerializer{
		reg: &registration{
			registry:         cfg.Registry,
			subject:          cfg.Subject,
			skipRegistration: cfg.SkipRegistration,
			normalize:        cfg.Normalize,
			schema:           cfg.Schema,
		},
		marshal: cfg.MarshalFunc,
	}, nil
}

// Serialize encodes value with MarshalFunc and prefixes the wire header.
func (s *GenericSerializer) Serialize(ctx context.Context, value interface{}) ([]byte, error) {
	id, err := s.reg.schemaID(ctx, value)
	if err != nil {
		return nil, err
	}
	payload, err := s.marshal(value)
	if err != nil {
		return nil, fmt.Errorf("serde: marshal: %w", err)
	}
	return frame(id, payload), nil
}

// GenericDeserializerConfig configures a deserializer around UnmarshalFunc.
type GenericDeserializerConfig struct {
	Registry      Registry
	UnmarshalFunc UnmarshalFunc
}

// GenericDeserializer resolves the writer's schema and hands it to UnmarshalFunc.
type GenericDeserializer struct {
	schemas   *schemaCache[*schema_registry.Schema]
	unmarshal UnmarshalFunc
}

// NewGenericDeserializer creates a deserializer around cfg.UnmarshalFunc.
func NewGenericDeserializer(cfg GenericDeserializerConfig) (*GenericDeserializer, error) {
	if cfg.Registry == nil {
		return nil, ErrMissingRegistry
	}
	if cfg.UnmarshalFunc == nil {
		return nil, errors.New("serde: unmarshal func is required")
	}
	return &GenericDeserializer{
		schemas: newSchemaCache(cfg.Registry, func(_ context.Context, _ int, schema *schema_registry.Schema) (*schema_registry.Schema, error) {
			return schema, nil
		}),
		unmarshal: cfg.UnmarshalFunc,
	}, nil
}

// Deserialize resolves the writer's schema and hands it to UnmarshalFunc.
func (d *GenericDeserializer) Deserialize(ctx context.Context, data []byte, target interface{}) error {
	id, payload, err := schema_registry.DecodeSchemaID(data)
	if err != nil {
		return err
	}
	schema, err := d.schemas.get(ctx, id)
	if err != nil {
		return err
	}
	if err := d.unmarshal(schema, payload, target); err != nil {
		return fmt.Errorf("serde: unmarshal: %w", err)
	}
	return nil
}
