package serde

import (
	"context"
	"fmt"
	"sync"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

// registration resolves the id of a serializer's schema once and remembers it.
type registration struct {
	registry         Registry
	subject          string
	skipRegistration bool
	normalize        bool

	// derive builds the schema from the first serialized value when none was configured.
	derive func(value interface{}) (schema_registry.UnregisteredSchema, error)

	mu     sync.Mutex
	schema schema_registry.UnregisteredSchema
	id     int
}

// schemaID registers the schema, or only looks it up when registration is
// skipped. Registry ids start at 1, so zero means unresolved.
func (r *registration) schemaID(ctx context.Context, value interface{}) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.id != 0 {
		return r.id, nil
	}

	if r.schema.Schema == "" && r.derive != nil {
		schema, err := r.derive(value)
		if err != nil {
			return 0, err
		}
		r.schema = schema
	}

	if r.skipRegistration {
		subject, err := r.registry.LookupSubjectSchema(ctx, r.subject, r.schema, r.normalize)
		if err != nil {
			return 0, fmt.Errorf("serde: look up schema under %q: %w", r.subject, err)
		}
		r.id = subject.ID
		return r.id, nil
	}

	id, err := r.registry.RegisterSchema(ctx, r.subject, r.schema, r.normalize)
	if err != nil {
		return 0, fmt.Errorf("serde: register schema under %q: %w", r.subject, err)
	}
	r.id = id
	return r.id, nil
}

// schemaCache memoizes per-id values derived from fetched schemas. It only
// grows with the ids a deserializer actually sees.
type schemaCache[T any] struct {
	registry Registry
	build    func(ctx context.Context, id int, schema *schema_registry.Schema) (T, error)

	mu      sync.RWMutex
	entries map[int]T
}

func newSchemaCache[T any](registry Registry, build func(context.Context, int, *schema_registry.Schema) (T, error)) *schemaCache[T] {
	return &schemaCache[T]{
		registry: registry,
		build:    build,
		entries:  make(map[int]T),
	}
}

func (c *schemaCache[T]) get(ctx context.Context, id int) (T, error) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()
	if ok {
		return entry, nil
	}

	var zero T
	schema, err := c.registry.GetSchemaByID(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("serde: fetch schema %d: %w", id, err)
	}
	entry, err = c.build(ctx, id, schema)
	if err != nil {
		return zero, err
	}

	c.mu.Lock()
	c.entries[id] = entry
	c.mu.Unlock()
	return entry, nil
}

func frame(id int, payload []byte) []byte {
	out := make([]byte, 0, schema_registry.WireHeaderSize+len(payload))
	out = append(out, schema_registry.EncodeSchemaID(id)...)
	return append(out, payload...)
}
