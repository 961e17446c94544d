package bootsum

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

const (
	dropTableSQL = `DROP TABLE IF EXISTS boot_time_sums`

	createTableSQL = `
		CREATE TABLE boot_time_sums (
			sum INTEGER NOT NULL,
			position INTEGER NOT NULL,
			month INTEGER NOT NULL,
			day INTEGER NOT NULL,
			minute INTEGER NOT NULL,
			second INTEGER NOT NULL,
			PRIMARY KEY (sum, position)
		)`

	insertEntrySQL = `INSERT INTO boot_time_sums (sum, position, month, day, minute, second) VALUES (?, ?, ?, ?, ?, ?)`

	// Every SQLite 3 database file starts with this string.
	sqliteHeader = "SQLite format 3\x00"

	selectEntriesSQL = `SELECT sum, position, month, day, minute, second FROM boot_time_sums ORDER BY sum, position`
)

// SaveSQLite writes table to a fresh SQLite database at path, one row
// per entry keyed by (sum, position). Any existing file at path is
// replaced.
func SaveSQLite(table Table, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return newTableError("create", path, FormatSQLite, ErrIO, err)
	}

	db, err := openDB(path)
	if err != nil {
		return newTableError("create", path, FormatSQLite, ErrIO, err)
	}
	defer db.Close()

	if err := writeEntries(db, table); err != nil {
		return newTableError("write", path, FormatSQLite, ErrIO, err)
	}

	if err := db.Close(); err != nil {
		return newTableError("write", path, FormatSQLite, ErrIO, err)
	}

	return nil
}

// LoadSQLite reads a table written by SaveSQLite.
func LoadSQLite(path string) (Table, error) {
	// sqlite3 creates missing database files on open, so check the file
	// exists and carries a SQLite header before handing it over.
	if err := checkSQLiteHeader(path); err != nil {
		return nil, err
	}

	db, err := openDB(path)
	if err != nil {
		return nil, newTableError("open", path, FormatSQLite, ErrIO, err)
	}
	defer db.Close()

	table, err := readEntries(db)
	if err != nil {
		return nil, newTableError("decode", path, FormatSQLite, ErrDecode, err)
	}

	return table, nil
}

func checkSQLiteHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return newTableError("open", path, FormatSQLite, ErrNotFound, err)
		}
		return newTableError("open", path, FormatSQLite, ErrIO, err)
	}
	defer f.Close()

	header := make([]byte, len(sqliteHeader))
	if _, err := io.ReadFull(f, header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return newTableError("decode", path, FormatSQLite, ErrDecode, fmt.Errorf("file too short for a database: %w", err))
		}
		return newTableError("read", path, FormatSQLite, ErrIO, err)
	}
	if string(header) != sqliteHeader {
		return newTableError("decode", path, FormatSQLite, ErrDecode, errors.New("file is not a SQLite database"))
	}

	return nil
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func writeEntries(db *sql.DB, table Table) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(dropTableSQL); err != nil {
		return fmt.Errorf("failed to drop table: %w", err)
	}
	if _, err := tx.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	stmt, err := tx.Prepare(insertEntrySQL)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, sum := range table.Keys() {
		for position, e := range table[sum] {
			if _, err := stmt.Exec(sum, position, e.Month, e.Day, e.Minute, e.Second); err != nil {
				return fmt.Errorf("failed to insert entry %s under sum %d: %w", e, sum, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func readEntries(db *sql.DB) (Table, error) {
	rows, err := db.Query(selectEntriesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	table := make(Table)
	for rows.Next() {
		var sum, position int
		var fields [4]int

		if err := rows.Scan(&sum, &position, &fields[0], &fields[1], &fields[2], &fields[3]); err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		if sum < 0 || sum > 0xFFFF {
			return nil, fmt.Errorf("sum %d out of range", sum)
		}
		for _, f := range fields {
			if f < 0 || f > 0xFF {
				return nil, fmt.Errorf("entry field %d out of range under sum %d", f, sum)
			}
		}

		key := uint16(sum)
		if position != len(table[key]) {
			return nil, fmt.Errorf("sum %d: expected position %d, got %d", sum, len(table[key]), position)
		}

		table[key] = append(table[key], NewEntry(uint8(fields[0]), uint8(fields[1]), uint8(fields[2]), uint8(fields[3])))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return table, nil
}
