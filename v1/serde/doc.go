// Package serde encodes and decodes Confluent wire-format payloads using a
// schema registry.
//
// Every payload starts with the magic byte 0 and the 4-byte big-endian schema
// id. Serializers register (or look up) their schema once and reuse the id;
// deserializers fetch the writer's schema by id and keep it in memory for the
// ids they have seen.
//
// Core Features:
//   - JSON Schema serializer with optional validation and schema reflection
//   - Protobuf serializer with message-index framing
//   - Generic serializer for caller-provided codecs such as Avro
//   - kafka-go message helpers and writer construction
//
// Basic Usage:
//
//	client, err := schema_registry.NewClient(schema_registry.NewConfig().WithURL("http://registry:8081"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	serializer, err := serde.NewJSONSerializer(serde.JSONSerializerConfig{
//	    Registry: client,
//	    Subject:  serde.TopicNameStrategy("users", false),
//	    Validate: true,
//	})
//
//	data, err := serializer.Serialize(ctx, User{Name: "ada"})
//
//	deserializer, err := serde.NewJSONDeserializer(serde.JSONDeserializerConfig{Registry: client})
//	var user User
//	err = deserializer.Deserialize(ctx, data, &user)
//
// Producing to Kafka:
//
//	writer, err := serde.NewWriter(serde.WriterConfig{Brokers: []string{"localhost:9092"}, Topic: "users"})
//	producer, err := serde.NewMessageProducer(serde.ProducerConfig{
//	    Topic:           "users",
//	    ValueSerializer: serializer,
//	    Writer:          writer,
//	})
//	err = producer.Produce(ctx, "user-1", User{Name: "ada"}, nil)
//
// On the consumer side, DecodeMessage decodes a kafka.Message read from a
// kafka.Reader.
package serde
