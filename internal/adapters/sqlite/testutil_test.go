// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/riverphoenix/ai-pm-ide/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
// Uses db.GetSchemaSQL() to prevent test schemas from drifting.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedProject inserts a test project and returns its ID.
func seedProject(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "proj-1"
	}
	if name == "" {
		name = "Test Project"
	}
	_, err := db.Exec("INSERT INTO projects (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	return id
}

// seedFolder inserts a test folder and returns its ID. An empty parentID
// files the folder at the root.
func seedFolder(t *testing.T, db *sql.DB, id, projectID, parentID, name string) string {
	t.Helper()
	if id == "" {
		id = "folder-1"
	}
	if projectID == "" {
		projectID = "proj-1"
	}
	if name == "" {
		name = "Test Folder"
	}
	var parent any
	if parentID != "" {
		parent = parentID
	}
	_, err := db.Exec("INSERT INTO folders (id, project_id, parent_id, name) VALUES (?, ?, ?, ?)",
		id, projectID, parent, name)
	if err != nil {
		t.Fatalf("failed to seed folder: %v", err)
	}
	return id
}

// seedCategory inserts a test framework category and returns its ID.
func seedCategory(t *testing.T, db *sql.DB, id, name string, builtin bool) string {
	t.Helper()
	if id == "" {
		id = "discovery"
	}
	if name == "" {
		name = "Discovery"
	}
	_, err := db.Exec("INSERT INTO framework_categories (id, name, is_builtin) VALUES (?, ?, ?)",
		id, name, builtin)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return id
}

// seedFrameworkDef inserts a test framework definition and returns its ID.
func seedFrameworkDef(t *testing.T, db *sql.DB, id, category, name string, builtin bool) string {
	t.Helper()
	if id == "" {
		id = "jobs-to-be-done"
	}
	if category == "" {
		category = "discovery"
	}
	if name == "" {
		name = "Jobs to be Done"
	}
	_, err := db.Exec("INSERT INTO framework_defs (id, category, name, is_builtin) VALUES (?, ?, ?, ?)",
		id, category, name, builtin)
	if err != nil {
		t.Fatalf("failed to seed framework def: %v", err)
	}
	return id
}

// strPtr, intPtr, and boolPtr build the pointer fields partial updates use.
func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

// seedConversation inserts a test conversation and returns its ID.
func seedConversation(t *testing.T, db *sql.DB, id, projectID, title string) string {
	t.Helper()
	if id == "" {
		id = "conv-1"
	}
	if projectID == "" {
		projectID = "proj-1"
	}
	if title == "" {
		title = "Test Conversation"
	}
	_, err := db.Exec("INSERT INTO conversations (id, project_id, title) VALUES (?, ?, ?)",
		id, projectID, title)
	if err != nil {
		t.Fatalf("failed to seed conversation: %v", err)
	}
	return id
}
