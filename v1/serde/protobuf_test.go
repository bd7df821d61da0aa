package serde

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

const structProto = `syntax = "proto3";
package google.protobuf;
message Struct { map<string, Value> fields = 1; }
`

func protobufSchema() *schema_registry.Schema {
	return &schema_registry.Schema{SchemaType: schema_registry.SchemaTypeProtobuf, Schema: structProto}
}

func TestProtobufSerializer_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := schema_registry.NewMockRegistry(ctrl)
	ctx := context.Background()

	registry.EXPECT().
		RegisterSchema(gomock.Any(), "events-value", gomock.Any(), false).
		DoAndReturn(func(_ context.Context, _ string, schema schema_registry.UnregisteredSchema, _ bool) (int, error) {
			assert.Equal(t, schema_registry.SchemaTypeProtobuf, schema.SchemaType)
			assert.Equal(t, structProto, schema.Schema)
			return 9, nil
		})
	registry.EXPECT().GetSchemaByID(gomock.Any(), 9).Return(protobufSchema(), nil).Times(1)

	serializer, err := NewProtobufSerializer(ProtobufSerializerConfig{
		Registry: registry,
		Subject:  "events-value",
		Schema:   structProto,
	})
	require.NoError(t, err)

	value, err := structpb.NewStruct(map[string]interface{}{"name": "ada", "age": 36})
	require.NoError(t, err)

	data, err := serializer.Serialize(ctx, value)
	require.NoError(t, err)

	// Struct is the first message in its file, so the index path is a single zero byte.
	assert.Equal(t, schema_registry.EncodeSchemaID(9), data[:schema_registry.WireHeaderSize])
	assert.Equal(t, byte(0), data[schema_registry.WireHeaderSize])

	deserializer, err := NewProtobufDeserializer(ProtobufDeserializerConfig{Registry: registry})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		var decoded structpb.Struct
		require.NoError(t, deserializer.Deserialize(ctx, data, &decoded))
		assert.True(t, proto.Equal(value, &decoded))
	}
}

func TestProtobufSerializer_NonZeroIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := schema_registry.NewMockRegistry(ctrl)
	ctx := context.Background()

	registry.EXPECT().RegisterSchema(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(4, nil)
	registry.EXPECT().GetSchemaByID(gomock.Any(), 4).Return(protobufSchema(), nil)

	serializer, err := NewProtobufSerializer(ProtobufSerializerConfig{Registry: registry, Subject: "lists-value", Schema: structProto})
	require.NoError(t, err)

	list, err := structpb.NewList([]interface{}{"a", 1.5})
	require.NoError(t, err)

	data, err := serializer.Serialize(ctx, list)
	require.NoError(t, err)

	// ListValue is the third message: count 1 and index 2, both zigzag encoded.
	assert.Equal(t, []byte{2, 4}, data[schema_registry.WireHeaderSize:schema_registry.WireHeaderSize+2])

	deserializer, err := NewProtobufDeserializer(ProtobufDeserializerConfig{Registry: registry})
	require.NoError(t, err)

	var wrongType structpb.Struct
	err = deserializer.Deserialize(ctx, data, &wrongType)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")

	var decoded structpb.ListValue
	require.NoError(t, deserializer.Deserialize(ctx, data, &decoded))
	assert.True(t, proto.Equal(list, &decoded))
}

func TestProtobufSerde_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := schema_registry.NewMockRegistry(ctrl)
	ctx := context.Background()

	serializer, err := NewProtobufSerializer(ProtobufSerializerConfig{Registry: registry, Subject: "s", Schema: structProto})
	require.NoError(t, err)

	_, err = serializer.Serialize(ctx, "not a message")
	assert.ErrorIs(t, err, ErrNotProtoMessage)

	deserializer, err := NewProtobufDeserializer(ProtobufDeserializerConfig{Registry: registry})
	require.NoError(t, err)

	var notMessage string
	assert.ErrorIs(t, deserializer.Deserialize(ctx, frame(1, []byte{0}), &notMessage), ErrNotProtoMessage)

	registry.EXPECT().GetSchemaByID(gomock.Any(), 2).Return(jsonSchema(), nil)
	var target structpb.Struct
	err = deserializer.Deserialize(ctx, frame(2, []byte{0}), &target)
	var mismatch *SchemaTypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, schema_registry.SchemaTypeProtobuf, mismatch.Expected)

	_, err = NewProtobufSerializer(ProtobufSerializerConfig{Registry: registry, Subject: "s"})
	assert.Error(t, err)
}

func TestMessageIndexes(t *testing.T) {
	assert.Equal(t, []int{0}, MessageIndexes((&structpb.Struct{}).ProtoReflect().Descriptor()))
	assert.Equal(t, []int{1}, MessageIndexes((&structpb.Value{}).ProtoReflect().Descriptor()))
	assert.Equal(t, []int{2}, MessageIndexes((&structpb.ListValue{}).ProtoReflect().Descriptor()))
}

func TestMessageIndexFraming(t *testing.T) {
	tests := []struct {
		name    string
		indexes []int
		encoded []byte
	}{
		{name: "first message", indexes: []int{0}, encoded: []byte{0}},
		{name: "top level", indexes: []int{3}, encoded: []byte{2, 6}},
		{name: "nested", indexes: []int{1, 0, 2}, encoded: []byte{6, 2, 0, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := appendMessageIndexes(nil, tt.indexes)
			assert.Equal(t, tt.encoded, encoded)

			indexes, rest, err := consumeMessageIndexes(append(encoded, 0xAA))
			require.NoError(t, err)
			assert.Equal(t, tt.indexes, indexes)
			assert.Equal(t, []byte{0xAA}, rest)
		})
	}

	t.Run("truncated", func(t *testing.T) {
		_, _, err := consumeMessageIndexes([]byte{6, 2})
		assert.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, _, err := consumeMessageIndexes(nil)
		assert.Error(t, err)
	})
}
