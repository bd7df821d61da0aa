package serde

import (
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// TracePropagator moves trace context into and out of message headers.
// *tracer.Tracer satisfies it.
type TracePropagator interface {
	GetCarrier(ctx context.Context) map[string]string
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// ProducerConfig configures a MessageProducer.
type ProducerConfig struct {
	Topic string

	// KeySerializer is optional; without it keys must be nil, string or []byte.
	KeySerializer   Serializer
	ValueSerializer Serializer

	// Writer is optional; without it the producer only builds messages.
	Writer MessageWriter

	// Tracer, when set, adds the trace context of ctx to every message.
	// Headers passed to Message take precedence.
	Tracer TracePropagator
}

// MessageProducer builds kafka.Message values whose key and value carry the
// Confluent wire format.
type MessageProducer struct {
	topic  string
	key    Serializer
	value  Serializer
	writer MessageWriter
	tracer TracePropagator
}

// NewMessageProducer creates a MessageProducer.
func NewMessageProducer(cfg ProducerConfig) (*MessageProducer, error) {
	if cfg.ValueSerializer == nil {
		return nil, errors.New("serde: value serializer is required")
	}
	return &MessageProducer{
		topic:  cfg.Topic,
		key:    cfg.KeySerializer,
		value:  cfg.ValueSerializer,
		writer: cfg.Writer,
		tracer: cfg.Tracer,
	}, nil
}

// Message serializes key and value into a kafka.Message for the configured topic.
func (p *MessageProducer) Message(ctx context.Context, key, value interface{}, headers map[string]string) (kafka.Message, error) {
	keyBytes, err := p.serializeKey(ctx, key)
	if err != nil {
		return kafka.Message{}, err
	}

	valueBytes, err := p.value.Serialize(ctx, value)
	if err != nil {
		return kafka.Message{}, err
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   keyBytes,
		Value: valueBytes,
	}
	if p.tracer != nil {
		for k, v := range p.tracer.GetCarrier(ctx) {
			if _, ok := headers[k]; !ok {
				msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
			}
		}
	}
	for k, v := range headers {
		msg.Headers = append(msg.Headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	return msg, nil
}

// Produce builds a message and writes it with the configured writer.
func (p *MessageProducer) Produce(ctx context.Context, key, value interface{}, headers map[string]string) error {
	if p.writer == nil {
		return errors.New("serde: producer has no writer")
	}
	msg, err := p.Message(ctx, key, value, headers)
	if err != nil {
		return err
	}
	// A topic set on both the writer and the message is rejected by kafka-go.
	if w, ok := p.writer.(*kafka.Writer); ok && w.Topic != "" {
		msg.Topic = ""
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("serde: write message: %w", err)
	}
	return nil
}

func (p *MessageProducer) serializeKey(ctx context.Context, key interface{}) ([]byte, error) {
	if p.key != nil {
		return p.key.Serialize(ctx, key)
	}
	switch k := key.(type) {
	case nil:
		return nil, nil
	case []byte:
		return k, nil
	case string:
		return []byte(k), nil
	default:
		return nil, fmt.Errorf("serde: key of type %T needs a key serializer", key)
	}
}

// DecodeMessage decodes a consumed message's value into target.
func DecodeMessage(ctx context.Context, d Deserializer, msg kafka.Message, target interface{}) error {
	if err := d.Deserialize(ctx, msg.Value, target); err != nil {
		return fmt.Errorf("serde: decode message %s/%d@%d: %w", msg.Topic, msg.Partition, msg.Offset, err)
	}
	return nil
}

// MessageContext returns ctx carrying the trace context found in msg's headers,
// so spans started while handling msg join the producer's trace.
func MessageContext(ctx context.Context, p TracePropagator, msg kafka.Message) context.Context {
	if p == nil || len(msg.Headers) == 0 {
		return ctx
	}
	carrier := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		carrier[h.Key] = string(h.Value)
	}
	return p.SetCarrierOnContext(ctx, carrier)
}
