package schema_registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSchemaID(t *testing.T) {
	assert.Equal(t, []byte{0x0, 0x0, 0x0, 0x1, 0x2c}, EncodeSchemaID(300))
}

func TestDecodeSchemaID(t *testing.T) {
	data := append(EncodeSchemaID(7), []byte("payload")...)

	id, payload, err := DecodeSchemaID(data)
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	assert.Equal(t, []byte("payload"), payload)
}

func TestDecodeSchemaIDErrors(t *testing.T) {
	_, _, err := DecodeSchemaID([]byte{0x0, 0x1})
	assert.ErrorContains(t, err, "data too short")

	_, _, err = DecodeSchemaID([]byte{0x1, 0x0, 0x0, 0x0, 0x1})
	assert.ErrorContains(t, err, "invalid magic byte")
}
