package bootsum

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the on-disk representation of a Table.
type Format int

const (
	// FormatJSON is pretty-printed JSON: sums as object keys, entries as
	// [month, day, minute, second] arrays.
	FormatJSON Format = iota + 1

	// FormatBinary is deterministic CBOR with no header or version.
	FormatBinary

	// FormatSQLite stores one row per entry in a SQLite database file.
	FormatSQLite
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatBinary:
		return "binary"
	case FormatSQLite:
		return "sqlite"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat returns the Format named by s ("json", "binary"/"cbor",
// "sqlite").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "binary", "cbor", "bin":
		return FormatBinary, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks a Format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".bin", ".cbor":
		return FormatBinary, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return 0, fmt.Errorf("%w: no format for file %s", ErrUnknownFormat, path)
	}
}
