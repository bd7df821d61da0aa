// Package tracer provides distributed tracing using OpenTelemetry.
//
// A *Tracer satisfies schema_registry.Tracer. Attached to the registry client it
// produces one span per logical call ("schema_registry.<Operation>") with one
// child span per endpoint attempt, and NewClient installs the W3C propagator so
// every request carries a traceparent header.
//
// Basic Usage:
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//		ServiceName:  "schema-sync",
//		AppEnv:       "development",
//		EnableExport: true,
//		Endpoint:     "otel-collector:4318",
//		Insecure:     true,
//	}, log)
//	if err != nil {
//		return err
//	}
//	defer tracerClient.Shutdown(ctx)
//
//	client.WithTracer(tracerClient)
//
//	ctx, span := tracerClient.StartSpan(ctx, "sync-schemas")
//	defer span.End()
//
// Propagation across Kafka:
//
//	headers := tracerClient.GetCarrier(ctx)
//	// ... attach to the message, then on the consumer side:
//	ctx = tracerClient.SetCarrierOnContext(ctx, headers)
//
// Thread Safety:
//
// All methods on the Tracer type are safe for concurrent use.
package tracer
