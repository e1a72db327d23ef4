// Package store persists typed-JSON value blobs to a SQL table, the way the
// teacher's domain stack centers on the same two drivers for its own
// generated-data import path (cmd/loadr emits DDL for exactly these
// engines).
package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"github.com/vaibhaw-/octypes-go/internal/octypes/ocjson"
	"github.com/vaibhaw-/octypes-go/internal/octypes/value"
)

// Store persists value.Value graphs as typed-JSON blobs keyed by id.
type Store struct {
	db     *sql.DB
	table  string
	driver string
}

// Open connects to the given driver ("postgres" or "mysql") and dsn, and
// ensures the backing table exists.
func Open(ctx context.Context, driver, dsn, table string) (*Store, error) {
	if table == "" {
		table = "values"
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("octypes/store: open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("octypes/store: ping %s: %w", driver, err)
	}
	s := &Store{db: db, table: table, driver: driver}
	if err := s.ensureTable(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) ensureTable(ctx context.Context) error {
	var ddl string
	switch s.driver {
	case "postgres":
		ddl = fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id TEXT PRIMARY KEY,
			type_name TEXT NOT NULL,
			typed_json JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, s.table)
	case "mysql":
		ddl = fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s ("+
			"id VARCHAR(255) PRIMARY KEY, "+
			"type_name VARCHAR(64) NOT NULL, "+
			"typed_json JSON NOT NULL, "+
			"updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)", s.table)
	default:
		return fmt.Errorf("octypes/store: unsupported driver %q", s.driver)
	}
	_, err := s.db.ExecContext(ctx, ddl)
	if err != nil {
		return fmt.Errorf("octypes/store: create table: %w", err)
	}
	return nil
}

// Put marshals v to typed JSON and upserts it under id.
func (s *Store) Put(ctx context.Context, id string, v value.Value) error {
	blob, err := ocjson.MarshalTyped(v)
	if err != nil {
		return fmt.Errorf("octypes/store: marshal: %w", err)
	}
	typeName := registryNameOf(v)

	var query string
	switch s.driver {
	case "postgres":
		query = fmt.Sprintf(`INSERT INTO %s (id, type_name, typed_json) VALUES ($1, $2, $3)
			ON CONFLICT (id) DO UPDATE SET type_name = EXCLUDED.type_name, typed_json = EXCLUDED.typed_json, updated_at = now()`, s.table)
	case "mysql":
		query = fmt.Sprintf(`INSERT INTO %s (id, type_name, typed_json) VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE type_name = VALUES(type_name), typed_json = VALUES(typed_json)`, s.table)
	default:
		return fmt.Errorf("octypes/store: unsupported driver %q", s.driver)
	}
	if _, err := s.db.ExecContext(ctx, query, id, typeName, string(blob)); err != nil {
		return fmt.Errorf("octypes/store: put %q: %w", id, err)
	}
	return nil
}

// Get reads back the value stored under id and round-trips it through
// ocjson.UnmarshalTyped.
func (s *Store) Get(ctx context.Context, id string) (value.Value, error) {
	placeholder := "$1"
	if s.driver == "mysql" {
		placeholder = "?"
	}
	query := fmt.Sprintf("SELECT typed_json FROM %s WHERE id = %s", s.table, placeholder)
	var blob string
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&blob); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %q", value.ErrKeyNotFound, id)
		}
		return nil, fmt.Errorf("octypes/store: get %q: %w", id, err)
	}
	v, err := ocjson.UnmarshalTyped([]byte(blob))
	if err != nil {
		return nil, fmt.Errorf("octypes/store: unmarshal %q: %w", id, err)
	}
	return v, nil
}

func registryNameOf(v value.Value) string {
	switch v.(type) {
	case *value.Number:
		return "OCNumber"
	case *value.String:
		return "OCString"
	case *value.Data:
		return "OCData"
	case *value.Array:
		return "OCArray"
	case *value.Dictionary:
		return "OCDictionary"
	case *value.Set:
		return "OCSet"
	case *value.IndexSet:
		return "OCIndexSet"
	case *value.IndexArray:
		return "OCIndexArray"
	case *value.IndexPairSet:
		return "OCIndexPairSet"
	case *value.Boolean:
		return "OCBoolean"
	case *value.Null:
		return "OCNull"
	default:
		return "unknown"
	}
}
