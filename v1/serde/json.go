package serde

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	reflectschema "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Aleph-Alpha/schemaregistry/v1/schema_registry"
)

// JSONSerializerConfig configures a JSON Schema serializer.
type JSONSerializerConfig struct {
	Registry Registry
	Subject  string

	// Schema is the JSON schema text. When empty it is reflected from the
	// first value passed to Serialize.
	Schema string

	// References are sent along with Schema.
	References []schema_registry.Reference

	// SkipRegistration looks the schema up instead of registering it.
	SkipRegistration bool
	Normalize        bool

	// Validate checks every value against the schema before encoding.
	Validate bool
}

// JSONSerializer encodes values as JSON framed with the schema id.
type JSONSerializer struct {
	reg      *registration
	validate bool

	compiled *schemaCache[*jsonschema.Schema]
}

// NewJSONSerializer creates a JSON Schema serializer.
func NewJSONSerializer(cfg JSONSerializerConfig) (*JSONSerializer, error) {
	if cfg.Registry == nil {
		return nil, ErrMissingRegistry
	}
	if cfg.Subject == "" {
		return nil, ErrMissingSubject
	}

	reg := &registration{
		registry:         cfg.Registry,
		subject:          cfg.Subject,
		skipRegistration: cfg.SkipRegistration,
		normalize:        cfg.Normalize,
	}
	if cfg.Schema != "" {
		reg.schema = jsonSchemaBody(cfg.Schema, cfg.References)
	} else {
		reg.derive = func(value interface{}) (schema_registry.UnregisteredSchema, error) {
			text, err := JSONSchemaFor(value)
			if err != nil {
				return schema_registry.UnregisteredSchema{}, err
			}
			return jsonSchemaBody(text, cfg.References), nil
		}
	}

	s := &JSONSerializer{reg: reg, validate: cfg.Validate}
	if cfg.Validate {
		s.compiled = newSchemaCache(cfg.Registry, jsonSchemaCompiler(cfg.Registry))
	}
	return s, nil
}

// Serialize encodes value with encoding/json and prefixes the wire header.
func (s *JSONSerializer) Serialize(ctx context.Context, value interface{}) ([]byte, error) {
	id, err := s.reg.schemaID(ctx, value)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("serde: marshal json: %w", err)
	}

	if s.validate {
		schema, err := s.compiled.get(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := validateJSON(schema, payload); err != nil {
			return nil, err
		}
	}

	return frame(id, payload), nil
}

// JSONDeserializerConfig configures a JSON Schema deserializer.
type JSONDeserializerConfig struct {
	Registry Registry

	// Validate checks every payload against the writer's schema before decoding.
	Validate bool
}

// JSONDeserializer decodes JSON payloads written by a JSONSerializer.
type JSONDeserializer struct {
	validate bool
	compiled *schemaCache[*jsonschema.Schema]
}

// NewJSONDeserializer creates a JSON Schema deserializer.
func NewJSONDeserializer(cfg JSONDeserializerConfig) (*JSONDeserializer, error) {
	if cfg.Registry == nil {
		return nil, ErrMissingRegistry
	}
	build := checkJSONSchemaType
	if cfg.Validate {
		build = jsonSchemaCompiler(cfg.Registry)
	}
	return &JSONDeserializer{
		validate: cfg.Validate,
		compiled: newSchemaCache(cfg.Registry, build),
	}, nil
}

// Deserialize resolves the writer's schema, optionally validates the payload
// and unmarshals it into target.
func (d *JSONDeserializer) Deserialize(ctx context.Context, data []byte, target interface{}) error {
	id, payload, err := schema_registry.DecodeSchemaID(data)
	if err != nil {
		return err
	}

	schema, err := d.compiled.get(ctx, id)
	if err != nil {
		return err
	}
	if d.validate {
		if err := validateJSON(schema, payload); err != nil {
			return err
		}
	}

	if err := json.Unmarshal(payload, target); err != nil {
		return fmt.Errorf("serde: unmarshal json: %w", err)
	}
	return nil
}

// JSONSchemaFor reflects a Go value's type into a JSON schema document.
func JSONSchemaFor(v interface{}) (string, error) {
	reflector := &reflectschema.Reflector{
		ExpandedStruct: true,
	}
	data, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		return "", fmt.Errorf("serde: reflect json schema: %w", err)
	}
	return string(data), nil
}

func jsonSchemaBody(text string, refs []schema_registry.Reference) schema_registry.UnregisteredSchema {
	return schema_registry.NewSchema(text).
		WithType(schema_registry.SchemaTypeJSON).
		WithReferences(refs...)
}

// checkJSONSchemaType accepts JSON schemas without compiling them. The
// returned schema is nil.
func checkJSONSchemaType(_ context.Context, id int, schema *schema_registry.Schema) (*jsonschema.Schema, error) {
	if schema.SchemaType != schema_registry.SchemaTypeJSON {
		return nil, &SchemaTypeMismatchError{ID: id, Expected: schema_registry.SchemaTypeJSON, Actual: schema.SchemaType}
	}
	return nil, nil
}

// jsonSchemaCompiler compiles a schema together with every schema it
// references. References are fetched by subject and version and registered
// under their name, resolved against the location of the referring schema.
func jsonSchemaCompiler(registry Registry) func(context.Context, int, *schema_registry.Schema) (*jsonschema.Schema, error) {
	return func(ctx context.Context, id int, schema *schema_registry.Schema) (*jsonschema.Schema, error) {
		if _, err := checkJSONSchemaType(ctx, id, schema); err != nil {
			return nil, err
		}

		location := fmt.Sprintf("https://schema-registry/schemas/ids/%d", id)
		base, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("serde: schema %d location: %w", id, err)
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(location, strings.NewReader(schema.Schema)); err != nil {
			return nil, fmt.Errorf("serde: add schema %d: %w", id, err)
		}
		seen := map[string]bool{location: true}
		if err := addJSONReferences(ctx, registry, compiler, base, schema.References, seen); err != nil {
			return nil, fmt.Errorf("serde: schema %d: %w", id, err)
		}

		compiled, err := compiler.Compile(location)
		if err != nil {
			return nil, fmt.Errorf("serde: compile schema %d: %w", id, err)
		}
		return compiled, nil
	}
}

func addJSONReferences(ctx context.Context, registry Registry, compiler *jsonschema.Compiler, base *url.URL, refs []schema_registry.Reference, seen map[string]bool) error {
	for _, ref := range refs {
		name, err := url.Parse(ref.Name)
		if err != nil {
			return fmt.Errorf("reference %q: %w", ref.Name, err)
		}
		location := base.ResolveReference(name)
		location.Fragment = ""
		key := location.String()
		if seen[key] {
			continue
		}
		seen[key] = true

		subject, err := registry.GetSubjectVersion(ctx, ref.Subject, schema_registry.Version(ref.Version))
		if err != nil {
			return fmt.Errorf("resolve reference %q (%s v%d): %w", ref.Name, ref.Subject, ref.Version, err)
		}
		if err := compiler.AddResource(key, strings.NewReader(subject.Schema)); err != nil {
			return fmt.Errorf("add reference %q: %w", ref.Name, err)
		}
		if err := addJSONReferences(ctx, registry, compiler, location, subject.References, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateJSON(schema *jsonschema.Schema, payload []byte) error {
	var doc interface{}
	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()
	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("serde: parse json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("serde: validate json: %w", err)
	}
	return nil
}
