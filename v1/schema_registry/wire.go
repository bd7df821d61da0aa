package schema_registry

import (
	"encoding/binary"
	"fmt"
)

// MagicByte prefixes every payload in the Confluent wire format.
const MagicByte byte = 0x0

// WireHeaderSize is the length of the magic byte plus the schema id.
const WireHeaderSize = 5

// EncodeSchemaID encodes a schema ID in the Confluent wire format
// Format: [magic_byte][schema_id]
// - magic_byte: 0x0 (1 byte)
// - schema_id: 4 bytes (big-endian)
func EncodeSchemaID(schemaID int) []byte {
	buf := make([]byte, WireHeaderSize)
	buf[0] = MagicByte
	binary.BigEndian.PutUint32(buf[1:], uint32(schemaID))
	return buf
}

// DecodeSchemaID decodes a schema ID from the Confluent wire format
// Returns the schema ID and the remaining payload (after the 5-byte header)
func DecodeSchemaID(data []byte) (int, []byte, error) {
	if len(data) < WireHeaderSize {
		return 0, nil, fmt.Errorf("schema registry: data too short: expected at least %d bytes, got %d", WireHeaderSize, len(data))
	}

	if data[0] != MagicByte {
		return 0, nil, fmt.Errorf("schema registry: invalid magic byte: expected 0x0, got 0x%x", data[0])
	}

	schemaID := int(binary.BigEndian.Uint32(data[1:WireHeaderSize]))
	return schemaID, data[WireHeaderSize:], nil
}
