// Package logger is the zap-backed structured logger used by the schema
// registry client, the metrics server and the srctl CLI.
//
// Client packages never import this package for their interfaces; they
// declare a small Logger interface with the Info/Debug/Warn/Error/Fatal(msg,
// err, fields...) method set, which *Logger satisfies.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:         logger.Info,
//	    ServiceName:   "schema-sync",
//	    EnableTracing: true,
//	})
//
//	log.Info("Subject registered", nil, map[string]interface{}{
//	    "subject": "users-value",
//	    "id":      42,
//	})
//	log.Error("Registry unreachable", err, nil)
//
//	// Adds trace_id and span_id when ctx carries a span and tracing is enabled.
//	log.WarnWithContext(ctx, "Endpoint slow", nil, nil)
//
// Handing it to the registry client:
//
//	cfg := schema_registry.NewConfig().WithURL(url).WithLogger(log)
//
// Using with FX:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() logger.Config { return logger.Config{Level: logger.Info} }),
//	)
//
// Environment:
//
//	ZAP_LOGGER_LEVEL=debug        # debug, info, warning or error
//	ZAP_LOGGER_ENCODING=console   # json (default) or console
//	LOGGER_ENABLE_TRACING=true
//
// All methods are safe for concurrent use.
package logger
