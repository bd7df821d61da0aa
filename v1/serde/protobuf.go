package serde

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

// ErrNotProtoMessage is returned when a Protobuf serde is handed a value that
// does not implement proto.Message.
var ErrNotProtoMessage = errors.New("serde: value is not a proto.Message")

// ProtobufSerializerConfig configures a Protobuf serializer.
type ProtobufSerializerConfig struct {
	Registry Registry
	Subject  string

	// Schema is the .proto source registered for Subject.
	Schema     string
	References []schema_registry.Reference

	SkipRegistration bool
	Normalize        bool
}

// ProtobufSerializer encodes proto messages framed with the schema id and the
// message index path of the message inside its .proto file.
type ProtobufSerializer struct {
	reg *registration
}

// NewProtobufSerializer creates a Protobuf serializer.
func NewProtobufSerializer(cfg ProtobufSerializerConfig) (*ProtobufSerializer, error) {
	if cfg.Registry == nil {
		return nil, ErrMissingRegistry
	}
	if cfg.Subject == "" {
		return nil, ErrMissingSubject
	}
	if cfg.Schema == "" {
		return nil, fmt.Errorf("serde: protobuf schema is required")
	}

	return &ProtobufSerializer{
		reg: &registration{
			registry:         cfg.Registry,
			subject:          cfg.Subject,
			skipRegistration: cfg.SkipRegistration,
			normalize:        cfg.Normalize,
			schema: schema_registry.NewSchema(cfg.Schema).
				WithType(schema_registry.SchemaTypeProtobuf).
				WithReferences(cfg.References...),
		},
	}, nil
}

// Serialize encodes a proto.Message.
func (s *ProtobufSerializer) Serialize(ctx context.Context, value interface{}) ([]byte, error) {
	msg, ok := value.(proto.Message)
	if !ok {
		return nil, ErrNotProtoMessage
	}

	id, err := s.reg.schemaID(ctx, value)
	if err != nil {
		return nil, err
	}

	payload, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("serde: marshal protobuf: %w", err)
	}

	header := appendMessageIndexes(schema_registry.EncodeSchemaID(id), MessageIndexes(msg.ProtoReflect().Descriptor()))
	return append(header, payload...), nil
}

// ProtobufDeserializerConfig configures a Protobuf deserializer.
type ProtobufDeserializerConfig struct {
	Registry Registry
}

// ProtobufDeserializer decodes payloads written by a ProtobufSerializer.
type ProtobufDeserializer struct {
	schemas *schemaCache[struct{}]
}

// NewProtobufDeserializer creates a Protobuf deserializer.
func NewProtobufDeserializer(cfg ProtobufDeserializerConfig) (*ProtobufDeserializer, error) {
	if cfg.Registry == nil {
		return nil, ErrMissingRegistry
	}
	return &ProtobufDeserializer{
		schemas: newSchemaCache(cfg.Registry, func(_ context.Context, id int, schema *schema_registry.Schema) (struct{}, error) {
			if schema.SchemaType != schema_registry.SchemaTypeProtobuf {
				return struct{}{}, &SchemaTypeMismatchError{ID: id, Expected: schema_registry.SchemaTypeProtobuf, Actual: schema.SchemaType}
			}
			return struct{}{}, nil
		}),
	}, nil
}

// Deserialize unmarshals data into target, which must be a proto.Message of
// the type the payload was written with.
func (d *ProtobufDeserializer) Deserialize(ctx context.Context, data []byte, target interface{}) error {
	msg, ok := target.(proto.Message)
	if !ok {
		return ErrNotProtoMessage
	}

	id, rest, err := schema_registry.DecodeSchemaID(data)
	if err != nil {
		return err
	}
	if _, err := d.schemas.get(ctx, id); err != nil {
		return err
	}

	indexes, payload, err := consumeMessageIndexes(rest)
	if err != nil {
		return err
	}
	desc := msg.ProtoReflect().Descriptor()
	if want := MessageIndexes(desc); !slices.Equal(indexes, want) {
		return fmt.Errorf("serde: payload message index %v does not match %s %v", indexes, desc.FullName(), want)
	}

	if err := proto.Unmarshal(payload, msg); err != nil {
		return fmt.Errorf("serde: unmarshal protobuf: %w", err)
	}
	return nil
}

// MessageIndexes returns the position of a message inside its file: the index
// among top-level messages followed by the index at each nesting level.
func MessageIndexes(md protoreflect.MessageDescriptor) []int {
	var indexes []int
	var d protoreflect.Descriptor = md
	for {
		m, ok := d.(protoreflect.MessageDescriptor)
		if !ok {
			break
		}
		indexes = append([]int{m.Index()}, indexes...)
		d = m.Parent()
	}
	return indexes
}

// appendMessageIndexes writes the zigzag varint array; the common [0] case is a single zero byte.
func appendMessageIndexes(b []byte, indexes []int) []byte {
	if len(indexes) == 1 && indexes[0] == 0 {
		return append(b, 0)
	}
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(len(indexes))))
	for _, i := range indexes {
		b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(i)))
	}
	return b
}

func consumeMessageIndexes(b []byte) ([]int, []byte, error) {
	next := func() (int64, error) {
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, fmt.Errorf("serde: read message index: %w", protowire.ParseError(n))
		}
		b = b[n:]
		return protowire.DecodeZigZag(v), nil
	}

	count, err := next()
	if err != nil {
		return nil, nil, err
	}
	if count == 0 {
		return []int{0}, b, nil
	}
	if count < 0 || count > int64(len(b)) {
		return nil, nil, fmt.Errorf("serde: invalid message index count %d", count)
	}

	indexes := make([]int, count)
	for i := range indexes {
		v, err := next()
		if err != nil {
			return nil, nil, err
		}
		indexes[i] = int(v)
	}
	return indexes, b, nil
}
