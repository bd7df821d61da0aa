package schema_registry

import (
	"encoding/json"
	"strconv"
	"strings"
)

// SchemaType is the format of a registered schema.
type SchemaType string

const (
	SchemaTypeAvro     SchemaType = "AVRO"
	SchemaTypeProtobuf SchemaType = "PROTOBUF"
	SchemaTypeJSON     SchemaType = "JSON"
)

// ParseSchemaType parses a schema type case-insensitively.
func ParseSchemaType(s string) (SchemaType, error) {
	switch {
	case strings.EqualFold(s, string(SchemaTypeAvro)):
		return SchemaTypeAvro, nil
	case strings.EqualFold(s, string(SchemaTypeProtobuf)):
		return SchemaTypeProtobuf, nil
	case strings.EqualFold(s, string(SchemaTypeJSON)):
		return SchemaTypeJSON, nil
	default:
		return "", &InvalidSchemaTypeError{Value: s}
	}
}

func (t SchemaType) String() string { return string(t) }

// UnmarshalJSON accepts the registry's upper-case names and rejects unknown types.
func (t *SchemaType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseSchemaType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// CompatibilityLevel governs which schema changes a subject accepts.
type CompatibilityLevel string

const (
	CompatibilityBackward           CompatibilityLevel = "BACKWARD"
	CompatibilityBackwardTransitive CompatibilityLevel = "BACKWARD_TRANSITIVE"
	CompatibilityForward            CompatibilityLevel = "FORWARD"
	CompatibilityForwardTransitive  CompatibilityLevel = "FORWARD_TRANSITIVE"
	CompatibilityFull               CompatibilityLevel = "FULL"
	CompatibilityFullTransitive     CompatibilityLevel = "FULL_TRANSITIVE"
	CompatibilityNone               CompatibilityLevel = "NONE"
)

var compatibilityLevels = []CompatibilityLevel{
	CompatibilityBackward,
	CompatibilityBackwardTransitive,
	CompatibilityForward,
	CompatibilityForwardTransitive,
	CompatibilityFull,
	CompatibilityFullTransitive,
	CompatibilityNone,
}

// ParseCompatibilityLevel parses a compatibility level case-insensitively.
func ParseCompatibilityLevel(s string) (CompatibilityLevel, error) {
	for _, level := range compatibilityLevels {
		if strings.EqualFold(s, string(level)) {
			return level, nil
		}
	}
	return "", &InvalidCompatibilityLevelError{Value: s}
}

func (l CompatibilityLevel) String() string { return string(l) }

func (l *CompatibilityLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCompatibilityLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Mode is the registry-wide or per-subject operational mode.
type Mode string

const (
	ModeReadWrite Mode = "READWRITE"
	ModeReadOnly  Mode = "READONLY"
	ModeImport    Mode = "IMPORT"
)

// ParseMode parses a resource mode case-insensitively.
func ParseMode(s string) (Mode, error) {
	for _, mode := range []Mode{ModeReadWrite, ModeReadOnly, ModeImport} {
		if strings.EqualFold(s, string(mode)) {
			return mode, nil
		}
	}
	return "", &InvalidModeError{Value: s}
}

func (m Mode) String() string { return string(m) }

func (m *Mode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Version addresses a schema version of a subject. LatestVersion selects the
// most recent one; any positive value selects that exact version.
type Version int

// LatestVersion renders as "latest" in request paths.
const LatestVersion Version = -1

func (v Version) String() string {
	if v == LatestVersion {
		return "latest"
	}
	return strconv.Itoa(int(v))
}

// Reference points at another registered schema that a schema imports.
type Reference struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Version int    `json:"version"`
}

// NewReference returns a reference to version 1 of subject.
func NewReference(name, subject string) Reference {
	return Reference{Name: name, Subject: subject, Version: 1}
}

// WithVersion returns a copy of r pointing at version.
func (r Reference) WithVersion(version int) Reference {
	r.Version = version
	return r
}

// UnregisteredSchema is the request body for registering, looking up or
// compatibility-checking a schema. The schema text is passed through untouched.
type UnregisteredSchema struct {
	Schema     string      `json:"schema"`
	SchemaType SchemaType  `json:"schemaType,omitempty"`
	References []Reference `json:"references,omitempty"`
}

// NewSchema returns an AVRO schema body for the given schema text.
func NewSchema(schema string) UnregisteredSchema {
	return UnregisteredSchema{Schema: schema, SchemaType: SchemaTypeAvro}
}

// WithType returns a copy of s with the given schema type.
func (s UnregisteredSchema) WithType(schemaType SchemaType) UnregisteredSchema {
	s.SchemaType = schemaType
	return s
}

// WithReference returns a copy of s with ref appended.
func (s UnregisteredSchema) WithReference(ref Reference) UnregisteredSchema {
	return s.WithReferences(ref)
}

// WithReferences returns a copy of s with refs appended.
func (s UnregisteredSchema) WithReferences(refs ...Reference) UnregisteredSchema {
	s.References = append(append([]Reference(nil), s.References...), refs...)
	return s
}

// Schema is a schema fetched by id. SchemaType defaults to AVRO when the
// registry omits it.
type Schema struct {
	SchemaType SchemaType  `json:"schemaType"`
	Schema     string      `json:"schema"`
	References []Reference `json:"references,omitempty"`
}

func (s *Schema) UnmarshalJSON(data []byte) error {
	type plain Schema
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if out.SchemaType == "" {
		out.SchemaType = SchemaTypeAvro
	}
	*s = Schema(out)
	return nil
}

// Subject is one version of a schema under a subject.
type Subject struct {
	ID         int         `json:"id"`
	Subject    string      `json:"subject"`
	Version    int         `json:"version"`
	SchemaType SchemaType  `json:"schemaType"`
	Schema     string      `json:"schema"`
	References []Reference `json:"references,omitempty"`
}

func (s *Subject) UnmarshalJSON(data []byte) error {
	type plain Subject
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if out.SchemaType == "" {
		out.SchemaType = SchemaTypeAvro
	}
	*s = Subject(out)
	return nil
}

// SubjectVersion is a (subject, version) pair a schema id is registered under.
type SubjectVersion struct {
	Subject string `json:"subject"`
	Version int    `json:"version"`
}

// CompatibilityConfig is the global or per-subject registry configuration.
// The registry expects "compatibility" on writes and returns "compatibilityLevel"
// on reads; both are mapped onto CompatibilityLevel.
type CompatibilityConfig struct {
	Alias              string                 `json:"alias,omitempty"`
	Normalize          *bool                  `json:"normalize,omitempty"`
	CompatibilityLevel CompatibilityLevel     `json:"compatibility,omitempty"`
	CompatibilityGroup string                 `json:"compatibilityGroup,omitempty"`
	DefaultMetadata    map[string]interface{} `json:"defaultMetadata,omitempty"`
	OverrideMetadata   map[string]interface{} `json:"overrideMetadata,omitempty"`
	DefaultRuleSet     map[string]interface{} `json:"defaultRuleSet,omitempty"`
	OverrideRuleSet    map[string]interface{} `json:"overrideRuleSet,omitempty"`
}

// ClusterConfig is the registry-wide configuration at /config.
type ClusterConfig = CompatibilityConfig

// SubjectConfig is the configuration of one subject at /config/{subject}.
type SubjectConfig = CompatibilityConfig

func (c *CompatibilityConfig) UnmarshalJSON(data []byte) error {
	type plain CompatibilityConfig
	var out struct {
		plain
		CompatibilityLevel CompatibilityLevel `json:"compatibilityLevel,omitempty"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*c = CompatibilityConfig(out.plain)
	if out.CompatibilityLevel != "" {
		c.CompatibilityLevel = out.CompatibilityLevel
	}
	return nil
}

// WithCompatibilityLevel returns a copy of c with the given level.
func (c CompatibilityConfig) WithCompatibilityLevel(level CompatibilityLevel) CompatibilityConfig {
	c.CompatibilityLevel = level
	return c
}

// WithNormalize returns a copy of c with normalize set.
func (c CompatibilityConfig) WithNormalize(normalize bool) CompatibilityConfig {
	c.Normalize = &normalize
	return c
}

// ExporterConfig describes a schema exporter. Config is always sent.
type ExporterConfig struct {
	Name                string            `json:"name,omitempty"`
	ContextType         string            `json:"contextType,omitempty"`
	Context             string            `json:"context,omitempty"`
	Subjects            []string          `json:"subjects,omitempty"`
	SubjectRenameFormat string            `json:"subjectRenameFormat,omitempty"`
	Config              map[string]string `json:"config"`
}

// withConfig makes sure Config is encoded as an object rather than null.
func (e ExporterConfig) withConfig() ExporterConfig {
	if e.Config == nil {
		e.Config = map[string]string{}
	}
	return e
}

// ExporterStatus is the runtime state of an exporter.
type ExporterStatus struct {
	Name   string `json:"name"`
	State  string `json:"state"`
	Offset int64  `json:"offset"`
	Ts     int64  `json:"ts"`
	Trace  string `json:"trace,omitempty"`
}

// Wrapper objects the façade unwraps before returning.

type registeredID struct {
	ID int `json:"id"`
}

type compatibilityCheck struct {
	IsCompatible bool `json:"is_compatible"`
}

type resourceMode struct {
	Mode Mode `json:"mode"`
}

// exporterName accepts either a bare JSON string or an object with a "name" field.
type exporterName string

func (n *exporterName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = exporterName(s)
		return nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*n = exporterName(obj.Name)
	return nil
}
