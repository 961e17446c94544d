package bootsum

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads a table previously written by Save with the same format.
func Load(path string, format Format) (Table, error) {
	switch format {
	case FormatJSON:
		return LoadJSON(path)
	case FormatBinary:
		return LoadBinary(path)
	case FormatSQLite:
		return LoadSQLite(path)
	default:
		return nil, fmt.Errorf("failed to load table %s: %w: %s", path, ErrUnknownFormat, format)
	}
}

// LoadJSON reads a table written by SaveJSON.
func LoadJSON(path string) (Table, error) {
	data, err := readTableFile(path, FormatJSON)
	if err != nil {
		return nil, err
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, newTableError("decode", path, FormatJSON, ErrDecode, err)
	}
	if table == nil {
		table = make(Table)
	}

	return table, nil
}

// LoadBinary reads a table written by SaveBinary.
func LoadBinary(path string) (Table, error) {
	data, err := readTableFile(path, FormatBinary)
	if err != nil {
		return nil, err
	}

	var table Table
	if err := decMode.Unmarshal(data, &table); err != nil {
		return nil, newTableError("decode", path, FormatBinary, ErrDecode, err)
	}
	if table == nil {
		table = make(Table)
	}

	return table, nil
}

func readTableFile(path string, format Format) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, newTableError("open", path, format, ErrNotFound, err)
		}
		return nil, newTableError("read", path, format, ErrIO, err)
	}
	return data, nil
}
