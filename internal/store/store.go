package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tablelab/sqltour/internal/relation"
)

// Session is an in-memory SQLite database holding the relations a
// tutorial run queries against.
type Session struct {
	db *sql.DB
}

// Open creates a fresh in-memory session.
//
// The connection pool is pinned to exactly one connection: SQLite
// :memory: databases exist per-connection, so a second pooled
// connection would silently see an empty database.
func Open() (*Session, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply pragmas: %w", err)
	}

	return &Session{db: db}, nil
}

// Close closes the database connection. The session is unusable
// afterwards.
func (s *Session) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Register creates a table for rel and bulk-inserts its rows inside a
// single transaction. Registering the same relation name twice is an
// error (relations are never mutated after creation).
func (s *Session) Register(ctx context.Context, rel *relation.Relation) error {
	createSQL, err := createTableSQL(rel)
	if err != nil {
		return fmt.Errorf("register %s: %w", rel.Name, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("register %s: begin: %w", rel.Name, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return fmt.Errorf("register %s: create table: %w", rel.Name, err)
	}

	if len(rel.Rows) > 0 {
		stmt, err := tx.PrepareContext(ctx, insertSQL(rel))
		if err != nil {
			return fmt.Errorf("register %s: prepare insert: %w", rel.Name, err)
		}
		defer stmt.Close()

		for i, row := range rel.Rows {
			if _, err := stmt.ExecContext(ctx, row...); err != nil {
				return fmt.Errorf("register %s: insert row %d: %w", rel.Name, i, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("register %s: commit: %w", rel.Name, err)
	}
	return nil
}

// Query evaluates a query string against the registered relations and
// materializes the result as a new Relation named "result".
func (s *Session) Query(ctx context.Context, query string) (*relation.Relation, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRelation(rows, "result")
}
