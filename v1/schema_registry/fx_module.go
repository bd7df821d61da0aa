package schema_registry

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/schemaregistry/v1/observability"
)

// FXModule is an fx.Module that provides and configures the Schema Registry client.
// This module registers the Schema Registry client with the Fx dependency injection framework,
// making it available to other components in the application.
//
// The module:
// 1. Provides the *Client and exposes it as Registry
// 2. Invokes the lifecycle registration to manage the client's lifecycle
//
// Usage:
//
//	app := fx.New(
//	    schema_registry.FXModule,
//	    fx.Provide(
//	        func() schema_registry.Config {
//	            return schema_registry.NewConfig().
//	                WithURL("http://registry-a:8081").
//	                WithURL("http://registry-b:8081").
//	                WithBasicAuth("user", "pass")
//	        },
//	    ),
//	)
//
// A Logger, an observability.Observer and a Tracer are picked up when present in
// the container.
var FXModule = fx.Module("schema_registry",
	fx.Provide(
		NewClientWithDI,
		func(c *Client) Registry { return c },
	),
	fx.Invoke(RegisterSchemaRegistryLifecycle),
)

// SchemaRegistryParams groups the dependencies needed to create a Schema Registry client
type SchemaRegistryParams struct {
	fx.In

	Config   Config
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
	Tracer   Tracer                 `optional:"true"`
}

// NewClientWithDI creates a new Schema Registry client using dependency injection.
// This function is designed to be used with Uber's fx dependency injection framework
// where dependencies are automatically provided via the SchemaRegistryParams struct.
//
// A Logger injected through fx replaces Config.Logger only when the config does
// not already carry one.
func NewClientWithDI(params SchemaRegistryParams) (*Client, error) {
	cfg := params.Config
	if cfg.Logger == nil && params.Logger != nil {
		cfg = cfg.WithLogger(params.Logger)
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if params.Observer != nil {
		client.WithObserver(params.Observer)
	}
	if params.Tracer != nil {
		client.WithTracer(params.Tracer)
	}
	return client, nil
}

// SchemaRegistryLifecycleParams groups the dependencies needed for Schema Registry lifecycle management
type SchemaRegistryLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
}

// RegisterSchemaRegistryLifecycle registers the Schema Registry client with the fx lifecycle system.
//
// The function:
//  1. On application start: Logs the configured endpoints
//  2. On application stop: Closes idle connections held by the transport
func RegisterSchemaRegistryLifecycle(params SchemaRegistryLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Client.info("Schema Registry client initialized", map[string]interface{}{
				"urls": params.Client.URLs(),
			})
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Client.info("Schema Registry client shutdown", nil)
			return params.Client.Close()
		},
	})
}
