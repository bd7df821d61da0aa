// Package schema_registry provides a multi-endpoint client for Confluent Schema Registry.
//
// A Client is configured with one or more registry URLs. Every call is sent to
// all of them concurrently; the first successful response wins and the
// remaining requests are cancelled. The call only fails when every endpoint
// failed, in which case the error of the endpoint that answered last is returned.
// There is no retry, backoff or per-call timeout on top of that; Config.Timeout
// bounds a single HTTP request.
//
// Core Features:
//   - Failover across registry replicas by racing every call
//   - Basic and bearer authentication, static headers and an optional proxy
//   - Schemas, subjects, compatibility, configuration, mode and exporter APIs
//   - Typed errors separating transport, upstream and decode failures
//   - Confluent wire format encoding/decoding
//   - Optional logger, observer and tracer hooks
//
// Basic Usage:
//
//	import "github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
//
//	cfg := schema_registry.NewConfig().
//	    WithURL("http://registry-a:8081").
//	    WithURL("http://registry-b:8081").
//	    WithBasicAuth("user", "password")
//
//	client, err := schema_registry.NewClient(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Register a schema
//	id, err := client.RegisterSchema(ctx, "users-value",
//	    schema_registry.NewSchema(`{"type":"record","name":"User","fields":[{"name":"name","type":"string"}]}`),
//	    false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Retrieve it again
//	schema, err := client.GetSchemaByID(ctx, id)
//
//	// Check compatibility against the latest version
//	compatible, err := client.IsCompatible(ctx, "users-value", schema_registry.LatestVersion, newSchema)
//
// Error Handling:
//
//	_, err := client.GetSubjectVersion(ctx, "missing", schema_registry.LatestVersion)
//	switch {
//	case schema_registry.IsNotFound(err):
//	    // the registry answered 404
//	case schema_registry.IsUpstreamError(err):
//	    var upstream *schema_registry.UpstreamError
//	    errors.As(err, &upstream)
//	    log.Println(upstream.StatusCode, upstream.ErrorCode())
//	case schema_registry.IsDecodeError(err):
//	    // 2xx with a body that did not match the expected shape
//	case schema_registry.IsTransportError(err):
//	    // connection refused, TLS, timeout, cancelled context
//	}
//
// Using with FX:
//
//	app := fx.New(
//	    logger.FXModule,
//	    schema_registry.FXModule,
//	    fx.Provide(func() (schema_registry.Config, error) {
//	        return schema_registry.NewConfigFromEnv()
//	    }),
//	)
//
// Wire Format:
//
//	[magic_byte (1 byte)] [schema_id (4 bytes, big-endian)] [payload]
//
// EncodeSchemaID and DecodeSchemaID handle the header; the serde package builds
// serializers on top of it.
//
// Testing:
//
// Application code should depend on Registry or one of the capability
// interfaces. MockRegistry is a gomock double generated with mockgen.
package schema_registry
