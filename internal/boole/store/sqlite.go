// ============================================================================
// boole - Propositional Logic Toolkit
// ============================================================================
//
// Package:     store
// Description: SQLite history store
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
	mdwerror "github.com/msto63/boole/foundation/core/error"
)

// schemaVersion is stored in PRAGMA user_version
const schemaVersion = 2

// SQLiteStore persists the history in a SQLite database
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// SQLiteConfig holds SQLite store configuration
type SQLiteConfig struct {
	Path string
}

// DefaultSQLiteConfig returns default SQLite configuration
func DefaultSQLiteConfig() SQLiteConfig {
	return SQLiteConfig{Path: "./data/history.db"}
}

// NewSQLiteStore opens or creates the database and migrates its schema
func NewSQLiteStore(cfg SQLiteConfig) (*SQLiteStore, error) {
	if cfg.Path == "" {
		cfg = DefaultSQLiteConfig()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, dbError(err, "failed to create data directory", "store.Open")
	}

	// WAL mode for concurrent readers
	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000")
	if err != nil {
		return nil, dbError(err, "failed to open database", "store.Open")
	}

	s := &SQLiteStore{db: db, path: cfg.Path}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, dbError(err, "failed to migrate schema", "store.Open")
	}
	return s, nil
}

// migrate brings the schema to schemaVersion
func (s *SQLiteStore) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return err
	}

	steps := []string{
		// 1: history table
		`CREATE TABLE IF NOT EXISTS history (
			id TEXT PRIMARY KEY,
			kind TEXT NOT NULL,
			expression TEXT NOT NULL,
			fingerprint TEXT NOT NULL,
			result TEXT NOT NULL DEFAULT '',
			error_code TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at);`,
		// 2: durations and fingerprint lookups
		`ALTER TABLE history ADD COLUMN duration_ns INTEGER NOT NULL DEFAULT 0;
		CREATE INDEX IF NOT EXISTS idx_history_fingerprint ON history(fingerprint);`,
	}

	for v := version; v < len(steps); v++ {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, steps[v]); err != nil {
			tx.Rollback()
			return err
		}
		// PRAGMA does not accept placeholders
		if _, err := tx.ExecContext(ctx, "PRAGMA user_version = "+strconv.Itoa(v+1)); err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
	}
	return nil
}

// Save adds a record
func (s *SQLiteStore) Save(ctx context.Context, rec *Record) error {
	if err := validate(rec); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history (id, kind, expression, fingerprint, result, error_code, duration_ns, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Kind), rec.Expression, rec.Fingerprint, rec.Result, rec.ErrorCode,
		rec.Duration.Nanoseconds(), rec.CreatedAt.UnixNano(),
	)
	if err != nil {
		return dbError(err, "failed to save history record", "store.Save").WithDetail("id", rec.ID)
	}
	return nil
}

const selectColumns = `SELECT id, kind, expression, fingerprint, result, error_code, duration_ns, created_at FROM history`

// Get retrieves a record by ID
func (s *SQLiteStore) Get(ctx context.Context, id string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, dbError(err, "failed to read history record", "store.Get")
	}
	return rec, nil
}

// List returns records newest first
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, dbError(err, "failed to list history", "store.List")
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, dbError(err, "failed to read history record", "store.List")
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to list history", "store.List")
	}
	return out, nil
}

// Count returns the number of stored records
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM history`).Scan(&n); err != nil {
		return 0, dbError(err, "failed to count history", "store.Count")
	}
	return n, nil
}

// Ping checks the database connection
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return dbError(err, "database unreachable", "store.Ping")
	}
	return nil
}

// Path returns the database file path
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(sc scanner) (*Record, error) {
	var (
		rec        Record
		kind       string
		durationNs int64
		createdNs  int64
	)
	if err := sc.Scan(&rec.ID, &kind, &rec.Expression, &rec.Fingerprint,
		&rec.Result, &rec.ErrorCode, &durationNs, &createdNs); err != nil {
		return nil, err
	}
	rec.Kind = Kind(kind)
	rec.Duration = time.Duration(durationNs)
	rec.CreatedAt = time.Unix(0, createdNs)
	return &rec, nil
}

func dbError(err error, message, operation string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(operation)
}
