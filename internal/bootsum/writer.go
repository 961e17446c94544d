package bootsum

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes table to path in the given format. The write is not
// atomic: a failure part way through can leave a partial file behind.
func Save(table Table, path string, format Format) error {
	switch format {
	case FormatJSON:
		return SaveJSON(table, path)
	case FormatBinary:
		return SaveBinary(table, path)
	case FormatSQLite:
		return SaveSQLite(table, path)
	default:
		return fmt.Errorf("failed to save table %s: %w: %s", path, ErrUnknownFormat, format)
	}
}

// SaveJSON writes table as pretty-printed JSON.
func SaveJSON(table Table, path string) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return newTableError("encode", path, FormatJSON, ErrEncode, err)
	}
	data = append(data, '\n')

	return writeTableFile(path, FormatJSON, data)
}

// SaveBinary writes table as deterministic CBOR.
func SaveBinary(table Table, path string) error {
	data, err := encMode.Marshal(table)
	if err != nil {
		return newTableError("encode", path, FormatBinary, ErrEncode, err)
	}

	return writeTableFile(path, FormatBinary, data)
}

func writeTableFile(path string, format Format, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return newTableError("write", path, format, ErrIO, err)
	}
	return nil
}
