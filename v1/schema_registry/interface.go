package schema_registry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Logger defines the logging methods the client uses. It matches the method set
// of the logger package, so a *logger.Logger can be passed directly.
//
//go:generate mockgen -destination=mock_registry.go -package=schema_registry . Registry,Logger
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Tracer creates spans around registry calls. It is satisfied by *tracer.Tracer.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, trace.Span)
	SetAttributes(span trace.Span, attrs map[string]interface{})
	RecordErrorOnSpan(span trace.Span, err error)
}

// SchemaAPI fetches schemas by their global id.
type SchemaAPI interface {
	// GetSchemaByID retrieves the schema registered under id.
	GetSchemaByID(ctx context.Context, id int) (*Schema, error)

	// GetSchemaByIDRaw retrieves the schema document for id exactly as stored.
	GetSchemaByIDRaw(ctx context.Context, id int) (string, error)

	// GetSchemaTypes lists the schema types the registry supports.
	GetSchemaTypes(ctx context.Context) ([]SchemaType, error)

	// GetSchemaSubjectVersions lists the subject versions that use schema id.
	GetSchemaSubjectVersions(ctx context.Context, id int) ([]SubjectVersion, error)
}

// SubjectAPI manages subjects and their versions.
type SubjectAPI interface {
	GetSubjects(ctx context.Context, deleted bool) ([]string, error)
	GetSubjectVersions(ctx context.Context, subject string) ([]int, error)
	DeleteSubject(ctx context.Context, subject string, permanent bool) ([]int, error)
	GetSubjectVersion(ctx context.Context, subject string, version Version) (*Subject, error)
	GetSubjectVersionRaw(ctx context.Context, subject string, version Version) (string, error)

	// RegisterSchema registers schema under subject and returns its global id.
	RegisterSchema(ctx context.Context, subject string, schema UnregisteredSchema, normalize bool) (int, error)

	// LookupSubjectSchema checks whether schema is already registered under subject.
	LookupSubjectSchema(ctx context.Context, subject string, schema UnregisteredSchema, normalize bool) (*Subject, error)

	DeleteSubjectVersion(ctx context.Context, subject string, version Version, permanent bool) (int, error)
	GetSubjectVersionReferencedBy(ctx context.Context, subject string, version Version) ([]int, error)
}

// CompatibilityAPI tests schemas against registered versions.
type CompatibilityAPI interface {
	// IsCompatible checks schema against one version of subject.
	IsCompatible(ctx context.Context, subject string, version Version, schema UnregisteredSchema) (bool, error)

	// IsFullyCompatible checks schema against all versions of subject.
	IsFullyCompatible(ctx context.Context, subject string, schema UnregisteredSchema) (bool, error)
}

// ConfigurationAPI reads and updates compatibility configuration.
type ConfigurationAPI interface {
	GetConfig(ctx context.Context) (*ClusterConfig, error)
	UpdateConfig(ctx context.Context, config ClusterConfig) (*ClusterConfig, error)
	GetSubjectConfig(ctx context.Context, subject string) (*SubjectConfig, error)
	UpdateSubjectConfig(ctx context.Context, subject string, config SubjectConfig) (*SubjectConfig, error)
}

// ModeAPI reads and updates the registry's resource mode.
type ModeAPI interface {
	GetMode(ctx context.Context) (Mode, error)
	UpdateMode(ctx context.Context, mode Mode, force bool) (Mode, error)
	GetSubjectMode(ctx context.Context, subject string) (Mode, error)
	UpdateSubjectMode(ctx context.Context, subject string, mode Mode, force bool) (Mode, error)
	DeleteSubjectMode(ctx context.Context, subject string) (Mode, error)
}

// ExporterAPI manages schema exporters.
type ExporterAPI interface {
	GetExporters(ctx context.Context) ([]string, error)
	GetContexts(ctx context.Context) ([]string, error)
	CreateExporter(ctx context.Context, config ExporterConfig) (string, error)
	UpdateExporter(ctx context.Context, name string, config ExporterConfig) (string, error)
	UpdateExporterConfig(ctx context.Context, name string, config map[string]string) (string, error)
	GetExporter(ctx context.Context, name string) (*ExporterConfig, error)
	GetExporterConfig(ctx context.Context, name string) (map[string]string, error)
	GetExporterStatus(ctx context.Context, name string) (*ExporterStatus, error)
	PauseExporter(ctx context.Context, name string) error
	ResetExporter(ctx context.Context, name string) error
	ResumeExporter(ctx context.Context, name string) error
	DeleteExporter(ctx context.Context, name string) error
}

// Registry provides an interface for interacting with a Confluent Schema Registry.
// Application code should depend on Registry (or one of the smaller capability
// interfaces) so it can substitute MockRegistry in tests.
//
// This interface is implemented by the concrete *Client type.
type Registry interface {
	SchemaAPI
	SubjectAPI
	CompatibilityAPI
	ConfigurationAPI
	ModeAPI
	ExporterAPI
}

var _ Registry = (*Client)(nil)
