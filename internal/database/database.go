package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/fernwood/spotistats/internal/config"
	pkgerrors "github.com/fernwood/spotistats/pkg/errors"
)

// Initialize opens the database file, creating it and its directory if absent,
// and applies the SQLite durability settings.
func Initialize(cfg config.DatabaseConfig) (*sql.DB, error) {
	dbDir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, &pkgerrors.StorageError{Op: "open", Path: cfg.Path, Err: fmt.Errorf("failed to create database directory: %w", err)}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, &pkgerrors.StorageError{Op: "open", Path: cfg.Path, Err: err}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &pkgerrors.StorageError{Op: "open", Path: cfg.Path, Err: fmt.Errorf("failed to ping database: %w", err)}
	}

	if err := applySQLiteSettings(db); err != nil {
		db.Close()
		return nil, &pkgerrors.StorageError{Op: "open", Path: cfg.Path, Err: err}
	}

	return db, nil
}

// applySQLiteSettings enables write-ahead logging and related pragmas. The
// tool assumes a single process accesses the file at a time, so there is no
// busy-retry handling.
func applySQLiteSettings(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

// Migrate applies all pending schema migrations in order. The applied version
// is tracked by golang-migrate, so re-runs are no-ops. Down-migrations exist
// only for the standalone rollback tool and are never invoked here.
func Migrate(db *sql.DB, migrationsPath string) error {
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return &pkgerrors.StorageError{Op: "migrate", Path: migrationsPath, Err: fmt.Errorf("failed to create migration driver: %w", err)}
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"sqlite",
		driver,
	)
	if err != nil {
		return &pkgerrors.StorageError{Op: "migrate", Path: migrationsPath, Err: fmt.Errorf("failed to create migration instance: %w", err)}
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return &pkgerrors.StorageError{Op: "migrate", Path: migrationsPath, Err: err}
	}

	return nil
}
