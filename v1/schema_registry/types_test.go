package schema_registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchemaType(t *testing.T) {
	for in, want := range map[string]SchemaType{
		"avro":     SchemaTypeAvro,
		"Protobuf": SchemaTypeProtobuf,
		"JSON":     SchemaTypeJSON,
	} {
		got, err := ParseSchemaType(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSchemaType("thrift")
	var invalid *InvalidSchemaTypeError
	assert.ErrorAs(t, err, &invalid)
}

func TestParseCompatibilityLevelAndMode(t *testing.T) {
	level, err := ParseCompatibilityLevel("full_transitive")
	require.NoError(t, err)
	assert.Equal(t, CompatibilityFullTransitive, level)

	_, err = ParseCompatibilityLevel("sideways")
	assert.Error(t, err)

	mode, err := ParseMode("readonly")
	require.NoError(t, err)
	assert.Equal(t, ModeReadOnly, mode)

	_, err = ParseMode("write-only")
	assert.Error(t, err)
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "latest", LatestVersion.String())
	assert.Equal(t, "3", Version(3).String())
}

func TestUnregisteredSchemaBuilder(t *testing.T) {
	base := NewSchema(`{"type":"string"}`)
	withRef := base.WithType(SchemaTypeJSON).WithReference(NewReference("other", "other-value").WithVersion(2))

	assert.Empty(t, base.References)
	assert.Equal(t, SchemaTypeAvro, base.SchemaType)
	assert.Equal(t, SchemaTypeJSON, withRef.SchemaType)
	assert.Equal(t, []Reference{{Name: "other", Subject: "other-value", Version: 2}}, withRef.References)

	data, err := json.Marshal(NewSchema("s"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"schema":"s","schemaType":"AVRO"}`, string(data))
}

func TestSchemaDefaultsToAvro(t *testing.T) {
	var schema Schema
	require.NoError(t, json.Unmarshal([]byte(`{"schema":"\"string\""}`), &schema))
	assert.Equal(t, SchemaTypeAvro, schema.SchemaType)

	var subject Subject
	require.NoError(t, json.Unmarshal([]byte(`{"subject":"s","id":1,"version":2,"schema":"x","schemaType":"PROTOBUF"}`), &subject))
	assert.Equal(t, SchemaTypeProtobuf, subject.SchemaType)
}

func TestSchemaRejectsUnknownType(t *testing.T) {
	var schema Schema
	assert.Error(t, json.Unmarshal([]byte(`{"schema":"x","schemaType":"THRIFT"}`), &schema))
}

func TestCompatibilityConfigJSON(t *testing.T) {
	data, err := json.Marshal(ClusterConfig{}.WithCompatibilityLevel(CompatibilityBackward))
	require.NoError(t, err)
	assert.JSONEq(t, `{"compatibility":"BACKWARD"}`, string(data))

	var cfg SubjectConfig
	require.NoError(t, json.Unmarshal([]byte(`{"compatibilityLevel":"FULL","normalize":true}`), &cfg))
	assert.Equal(t, CompatibilityFull, cfg.CompatibilityLevel)
	require.NotNil(t, cfg.Normalize)
	assert.True(t, *cfg.Normalize)

	require.NoError(t, json.Unmarshal([]byte(`{"compatibility":"NONE"}`), &cfg))
	assert.Equal(t, CompatibilityNone, cfg.CompatibilityLevel)
}

func TestExporterNameAcceptsBothShapes(t *testing.T) {
	var name exporterName
	require.NoError(t, json.Unmarshal([]byte(`"exp"`), &name))
	assert.Equal(t, exporterName("exp"), name)

	require.NoError(t, json.Unmarshal([]byte(`{"name":"exp2"}`), &name))
	assert.Equal(t, exporterName("exp2"), name)
}

func TestExporterConfigAlwaysSendsConfig(t *testing.T) {
	data, err := json.Marshal(ExporterConfig{Name: "exp"}.withConfig())
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"exp","config":{}}`, string(data))
}
