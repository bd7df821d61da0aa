package serde

import (
	"context"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/compress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
	"github.com/Aleph-Alpha/schemaregistry/v1/tracer"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

// staticSerializer frames every value with a fixed schema id.
type staticSerializer struct{ id int }

func (s staticSerializer) Serialize(_ context.Context, value interface{}) ([]byte, error) {
	return frame(s.id, []byte(value.(string))), nil
}

func TestTopicNameStrategy(t *testing.T) {
	assert.Equal(t, "orders-key", TopicNameStrategy("orders", true))
	assert.Equal(t, "orders-value", TopicNameStrategy("orders", false))
}

func TestMessageProducer(t *testing.T) {
	ctx := context.Background()
	writer := &recordingWriter{}

	producer, err := NewMessageProducer(ProducerConfig{
		Topic:           "orders",
		ValueSerializer: staticSerializer{id: 3},
		Writer:          writer,
	})
	require.NoError(t, err)

	require.NoError(t, producer.Produce(ctx, "order-1", "paid", map[string]string{"traceparent": "00-abc"}))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, "orders", msg.Topic)
	assert.Equal(t, []byte("order-1"), msg.Key)
	assert.Equal(t, frame(3, []byte("paid")), msg.Value)
	assert.Equal(t, []kafka.Header{{Key: "traceparent", Value: []byte("00-abc")}}, msg.Headers)

	t.Run("raw keys", func(t *testing.T) {
		msg, err := producer.Message(ctx, []byte{1, 2}, "v", nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2}, msg.Key)

		msg, err = producer.Message(ctx, nil, "v", nil)
		require.NoError(t, err)
		assert.Nil(t, msg.Key)

		_, err = producer.Message(ctx, 42, "v", nil)
		assert.Error(t, err)
	})

	t.Run("key serializer", func(t *testing.T) {
		keyed, err := NewMessageProducer(ProducerConfig{
			Topic:           "orders",
			KeySerializer:   staticSerializer{id: 1},
			ValueSerializer: staticSerializer{id: 3},
		})
		require.NoError(t, err)

		msg, err := keyed.Message(ctx, "order-1", "paid", nil)
		require.NoError(t, err)
		assert.Equal(t, frame(1, []byte("order-1")), msg.Key)

		assert.Error(t, keyed.Produce(ctx, "order-1", "paid", nil))
	})

	t.Run("writer error", func(t *testing.T) {
		boom := errors.New("broker down")
		failing, err := NewMessageProducer(ProducerConfig{ValueSerializer: staticSerializer{id: 3}, Writer: &recordingWriter{err: boom}})
		require.NoError(t, err)
		assert.ErrorIs(t, failing.Produce(ctx, nil, "paid", nil), boom)
	})

	_, err = NewMessageProducer(ProducerConfig{Topic: "orders"})
	assert.Error(t, err)
}

func TestProduceAndDecodeWithRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := schema_registry.NewMockRegistry(ctrl)
	ctx := context.Background()

	registry.EXPECT().RegisterSchema(gomock.Any(), "users-value", gomock.Any(), false).Return(5, nil)
	registry.EXPECT().GetSchemaByID(gomock.Any(), 5).Return(jsonSchema(), nil)

	serializer, err := NewJSONSerializer(JSONSerializerConfig{Registry: registry, Subject: TopicNameStrategy("users", false), Schema: userJSONSchema})
	require.NoError(t, err)
	deserializer, err := NewJSONDeserializer(JSONDeserializerConfig{Registry: registry, Validate: true})
	require.NoError(t, err)

	writer := &recordingWriter{}
	producer, err := NewMessageProducer(ProducerConfig{Topic: "users", ValueSerializer: serializer, Writer: writer})
	require.NoError(t, err)

	require.NoError(t, producer.Produce(ctx, "u1", User{Name: "ada"}, nil))
	require.Len(t, writer.messages, 1)

	var user User
	require.NoError(t, DecodeMessage(ctx, deserializer, writer.messages[0], &user))
	assert.Equal(t, "ada", user.Name)

	err = DecodeMessage(ctx, deserializer, kafka.Message{Topic: "users", Value: []byte{9}}, &user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "users/0@0")
}

func TestNewWriter(t *testing.T) {
	_, err := NewWriter(WriterConfig{})
	assert.Error(t, err)

	writer, err := NewWriter(WriterConfig{
		Brokers:          []string{"localhost:9092"},
		Topic:            "orders",
		CompressionCodec: "zstd",
		SASL:             SASLConfig{Enabled: true, Mechanism: "PLAIN", Username: "u", Password: "p"},
	})
	require.NoError(t, err)
	defer writer.Close()
	assert.Equal(t, "orders", writer.Topic)

	_, err = NewWriter(WriterConfig{Brokers: []string{"localhost:9092"}, CompressionCodec: "brotli"})
	assert.Error(t, err)

	_, err = NewWriter(WriterConfig{Brokers: []string{"localhost:9092"}, TLS: TLSConfig{Enabled: true, CACertPath: "/does/not/exist.pem"}})
	assert.Error(t, err)
}

func TestCompressionCodec(t *testing.T) {
	codec, err := compressionCodec("")
	require.NoError(t, err)
	assert.Nil(t, codec)

	codec, err = compressionCodec("gzip")
	require.NoError(t, err)
	assert.Equal(t, &compress.GzipCodec, codec)

	for _, name := range []string{"snappy", "lz4", "zstd"} {
		codec, err := compressionCodec(name)
		require.NoError(t, err)
		assert.Equal(t, name, codec.Name())
	}
}

func TestCreateSASLMechanism(t *testing.T) {
	for _, name := range []string{"PLAIN", "SCRAM-SHA-256", "SCRAM-SHA-512"} {
		mechanism, err := createSASLMechanism(SASLConfig{Mechanism: name, Username: "u", Password: "p"})
		require.NoError(t, err)
		assert.Equal(t, name, mechanism.Name())
	}

	_, err := createSASLMechanism(SASLConfig{Mechanism: "GSSAPI"})
	assert.Error(t, err)
}

var _ TracePropagator = (*tracer.Tracer)(nil)

func TestMessageProducer_PropagatesTraceContext(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	tr := tracer.NewWithProvider(tp, nil)

	writer := &recordingWriter{}
	producer, err := NewMessageProducer(ProducerConfig{
		Topic:           "orders",
		ValueSerializer: staticSerializer{id: 1},
		Writer:          writer,
		Tracer:          tr,
	})
	require.NoError(t, err)

	ctx, span := tr.StartSpan(context.Background(), "produce")
	require.NoError(t, producer.Produce(ctx, "k", "v", map[string]string{"source": "test"}))
	span.End()

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "test", headers["source"])
	assert.Contains(t, headers["traceparent"], span.SpanContext().TraceID().String())

	consumed := trace.SpanContextFromContext(MessageContext(context.Background(), tr, msg))
	assert.True(t, consumed.IsRemote())
	assert.Equal(t, span.SpanContext().TraceID(), consumed.TraceID())
	assert.Equal(t, span.SpanContext().SpanID(), consumed.SpanID())
}

func TestMessageContextWithoutPropagator(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, MessageContext(ctx, nil, kafka.Message{Headers: []kafka.Header{{Key: "traceparent", Value: []byte("x")}}}))
}
