package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/riverphoenix/ai-pm-ide/internal/config"
)

var db *sql.DB

var dbInitialized bool

// GetDB returns the database connection, initializing if needed
func GetDB() (*sql.DB, error) {
	if db != nil {
		return db, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		return nil, err
	}

	// Ensure the data directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// Open database connection. Foreign keys ride on the DSN so every
	// pooled connection gets them, not just the first (sqlite defaults
	// them off per connection).
	db, err = sql.Open("sqlite3", DSN(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run schema init and catalog seeding on first connection (but avoid recursion)
	if !dbInitialized {
		dbInitialized = true
		if err := InitSchema(); err != nil {
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		if err := EnsureSeeded(db); err != nil {
			return nil, fmt.Errorf("failed to seed catalogs: %w", err)
		}
	}

	return db, nil
}

// DSN builds the sqlite connection string for a database file with
// foreign keys enabled on every connection.
func DSN(path string) string {
	return "file:" + path + "?_foreign_keys=on"
}

// Close closes the database connection
func Close() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

// GetDBPath returns the path to the database file
func GetDBPath() (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.DBPath()
}
