package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order. Only additive column
// migrations are supported; anything structural requires a fresh database.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "add_icon_to_framework_categories",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_favorite_and_usage_to_saved_prompts",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "add_color_to_folders",
		Up:      migrationV3,
	},
}

// InitSchema creates the schema for fresh installs and runs pending
// migrations for existing ones.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	// Detect fresh install by checking for the projects table
	var name string
	err = database.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'projects'",
	).Scan(&name)

	if err == sql.ErrNoRows {
		// Fresh install: apply the full modern schema
		if _, err := database.Exec(SchemaSQL); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
		if err := ensureVersionTable(database); err != nil {
			return err
		}
		// Mark all migrations as applied for fresh installs
		for _, m := range migrations {
			if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}

	return RunMigrations()
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	database, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	if err := ensureVersionTable(database); err != nil {
		return err
	}

	var currentVersion int
	err = database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		if err := migration.Up(database); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}
		if _, err := database.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

func ensureVersionTable(database *sql.DB) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	return nil
}

// addColumnIfMissing applies an additive ALTER TABLE, skipping columns that
// already exist (re-running migrations must be harmless).
func addColumnIfMissing(database *sql.DB, table, column, definition string) error {
	var count int
	err := database.QueryRow(
		"SELECT COUNT(*) FROM pragma_table_info(?) WHERE name = ?",
		table, column,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to inspect %s.%s: %w", table, column, err)
	}
	if count > 0 {
		return nil
	}

	_, err = database.Exec(fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
	if err != nil {
		return fmt.Errorf("failed to add %s.%s: %w", table, column, err)
	}
	return nil
}

func migrationV1(database *sql.DB) error {
	return addColumnIfMissing(database, "framework_categories", "icon", "TEXT")
}

func migrationV2(database *sql.DB) error {
	if err := addColumnIfMissing(database, "saved_prompts", "is_favorite", "INTEGER DEFAULT 0"); err != nil {
		return err
	}
	return addColumnIfMissing(database, "saved_prompts", "usage_count", "INTEGER DEFAULT 0")
}

func migrationV3(database *sql.DB) error {
	return addColumnIfMissing(database, "folders", "color", "TEXT")
}
