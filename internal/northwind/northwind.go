// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package northwind inspects the downloaded Northwind sample database and
// checks that it carries the tables the lab application queries.
package northwind

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// RequiredTables are the tables the lab queries join across.
var RequiredTables = []string{
	"Categories",
	"Customers",
	"Employees",
	"EmployeeTerritories",
	"Orders",
	"Products",
	"Regions",
	"Suppliers",
	"Territories",
}

// MissingTablesError lists required tables absent from the database.
type MissingTablesError struct {
	Tables []string
}

func (e *MissingTablesError) Error() string {
	return fmt.Sprintf("missing tables: %s", strings.Join(e.Tables, ", "))
}

// TableCount is the row count of one table.
type TableCount struct {
	Table string `json:"table" yaml:"table"`
	Rows  int64  `json:"rows" yaml:"rows"`
}

// DB is a read-only handle on a Northwind database file.
type DB struct {
	db   *sql.DB
	path string
}

// Open opens path read-only. A missing file is an error; Open never
// creates an empty database.
func Open(path string) (*DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	return &DB{db: db, path: path}, nil
}

// Close releases the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Tables returns the user tables in name order.
func (d *DB) Tables(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%' ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// Verify reports a *MissingTablesError if any of RequiredTables is absent.
// Table names compare case-insensitively, as SQLite does.
func (d *DB) Verify(ctx context.Context) error {
	tables, err := d.Tables(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(tables))
	for _, t := range tables {
		have[strings.ToLower(t)] = true
	}

	var missing []string
	for _, t := range RequiredTables {
		if !have[strings.ToLower(t)] {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		return &MissingTablesError{Tables: missing}
	}
	return nil
}

// Counts returns the row count of every required table. Call Verify first;
// a missing table is reported as a query error.
func (d *DB) Counts(ctx context.Context) ([]TableCount, error) {
	counts := make([]TableCount, 0, len(RequiredTables))
	for _, t := range RequiredTables {
		var n int64
		// Table names come from RequiredTables, never from input.
		q := fmt.Sprintf(`SELECT count(*) FROM "%s"`, t)
		if err := d.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
			return nil, fmt.Errorf("counting %s: %w", t, err)
		}
		counts = append(counts, TableCount{Table: t, Rows: n})
	}
	return counts, nil
}
