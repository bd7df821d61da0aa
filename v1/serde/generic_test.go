package serde

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

const stringAvro = `"string"`

func TestGenericSerde_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := schema_registry.NewMockRegistry(ctrl)
	ctx := context.Background()

	schema := schema_registry.NewSchema(stringAvro)
	registry.EXPECT().RegisterSchema(gomock.Any(), "names-value", schema, false).Return(21, nil)
	registry.EXPECT().GetSchemaByID(gomock.Any(), 21).
		Return(&schema_registry.Schema{SchemaType: schema_registry.SchemaTypeAvro, Schema: stringAvro}, nil)

	serializer, err := NewGenericSerializer(GenericSerializerConfig{
		Registry: registry,
		Subject:  "names-value",
		Schema:   schema,
		MarshalFunc: func(value interface{}) ([]byte, error) {
			return []byte(strings.ToUpper(value.(string))), nil
		},
	})
	require.NoError(t, err)

	data, err := serializer.Serialize(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, append(schema_registry.EncodeSchemaID(21), []byte("ADA")...), data)

	deserializer, err := NewGenericDeserializer(GenericDeserializerConfig{
		Registry: registry,
		UnmarshalFunc: func(schema *schema_registry.Schema, payload []byte, target interface{}) error {
			assert.Equal(t, stringAvro, schema.Schema)
			*(target.(*string)) = strings.ToLower(string(payload))
			return nil
		},
	})
	require.NoError(t, err)

	var name string
	require.NoError(t, deserializer.Deserialize(ctx, data, &name))
	assert.Equal(t, "ada", name)
}

func TestGenericSerde_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := schema_registry.NewMockRegistry(ctrl)
	ctx := context.Background()
	boom := errors.New("boom")

	registry.EXPECT().RegisterSchema(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(1, nil)

	serializer, err := NewGenericSerializer(GenericSerializerConfig{
		Registry:    registry,
		Subject:     "names-value",
		Schema:      schema_registry.NewSchema(stringAvro),
		MarshalFunc: func(interface{}) ([]byte, error) { return nil, boom },
	})
	require.NoError(t, err)

	_, err = serializer.Serialize(ctx, "ada")
	assert.ErrorIs(t, err, boom)

	registry.EXPECT().GetSchemaByID(gomock.Any(), 1).
		Return(&schema_registry.Schema{SchemaType: schema_registry.SchemaTypeAvro, Schema: stringAvro}, nil)

	deserializer, err := NewGenericDeserializer(GenericDeserializerConfig{
		Registry:      registry,
		UnmarshalFunc: func(*schema_registry.Schema, []byte, interface{}) error { return boom },
	})
	require.NoError(t, err)

	var name string
	assert.ErrorIs(t, deserializer.Deserialize(ctx, frame(1, []byte("x")), &name), boom)
	assert.Error(t, deserializer.Deserialize(ctx, []byte{1, 0, 0, 0, 1}, &name))
}

func TestNewGenericSerde_Validation(t *testing.T) {
	registry := schema_registry.NewMockRegistry(gomock.NewController(t))
	marshal := func(interface{}) ([]byte, error) { return nil, nil }

	tests := []struct {
		name string
		cfg  GenericSerializerConfig
	}{
		{name: "no registry", cfg: GenericSerializerConfig{Subject: "s", Schema: schema_registry.NewSchema(stringAvro), MarshalFunc: marshal}},
		{name: "no subject", cfg: GenericSerializerConfig{Registry: registry, Schema: schema_registry.NewSchema(stringAvro), MarshalFunc: marshal}},
		{name: "no schema", cfg: GenericSerializerConfig{Registry: registry, Subject: "s", MarshalFunc: marshal}},
		{name: "no marshal func", cfg: GenericSerializerConfig{Registry: registry, Subject: "s", Schema: schema_registry.NewSchema(stringAvro)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenericSerializer(tt.cfg)
			assert.Error(t, err)
		})
	}

	_, err := NewGenericDeserializer(GenericDeserializerConfig{Registry: registry})
	assert.Error(t, err)
}
