package store

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned whenever a record does not exist or is not
// visible to the requesting user. The two cases are deliberately
// indistinguishable so the API never leaks existence of other users'
// records.
var ErrNotFound = errors.New("record not found")

// ErrEmailTaken is returned when registering an email that already has
// an account.
var ErrEmailTaken = errors.New("email already registered")

// Store provides all persistence for users, projects, tasks, and
// activity logs over a single SQLite database.
type Store struct {
	db *sqlx.DB
}

// NewStore opens (or creates) a SQLite database at dbPath, enables WAL
// mode and foreign keys, and runs any pending schema migrations.
func NewStore(dbPath string) (*Store, error) {
	// Pragmas are per-connection, so they go in the DSN: every
	// connection the pool opens gets WAL and foreign keys, not just
	// the first one. Foreign keys drive the cascade deletes.
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		dbPath,
	)
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	s := &Store{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *Store) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}
