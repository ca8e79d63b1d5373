package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/riverphoenix/ai-pm-ide/internal/adapters/sqlite"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

func setupFrameworkTestDB(t *testing.T) *sql.DB {
	t.Helper()
	testDB := setupTestDB(t)
	seedCategory(t, testDB, "discovery", "Discovery", true)
	seedCategory(t, testDB, "metrics", "Metrics", true)
	return testDB
}

func TestFrameworkRepository_Create_RoundTrip(t *testing.T) {
	db := setupFrameworkTestDB(t)
	repo := sqlite.NewFrameworkRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.FrameworkRecord{
		ID:               "jobs-to-be-done",
		Category:         "discovery",
		Name:             "Jobs to be Done",
		Description:      "Understand the job customers hire your product for",
		SystemPrompt:     "You are a JTBD researcher.",
		GuidingQuestions: []string{"What progress is the customer trying to make?", "What are they switching from?"},
		IsBuiltin:        true,
		SortOrder:        0,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "jobs-to-be-done")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Category != "discovery" {
		t.Errorf("expected category 'discovery', got '%s'", retrieved.Category)
	}
	if len(retrieved.GuidingQuestions) != 2 {
		t.Fatalf("expected 2 guiding questions, got %d", len(retrieved.GuidingQuestions))
	}
	if retrieved.GuidingQuestions[0] != "What progress is the customer trying to make?" {
		t.Errorf("unexpected first question: '%s'", retrieved.GuidingQuestions[0])
	}
}

func TestFrameworkRepository_Create_EmptyQuestions(t *testing.T) {
	db := setupFrameworkTestDB(t)
	repo := sqlite.NewFrameworkRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.FrameworkRecord{
		ID:       "bare",
		Category: "discovery",
		Name:     "Bare",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, _ := repo.GetByID(ctx, "bare")
	if retrieved.GuidingQuestions == nil {
		t.Error("expected empty slice, not nil")
	}
	if len(retrieved.GuidingQuestions) != 0 {
		t.Errorf("expected no questions, got %d", len(retrieved.GuidingQuestions))
	}
}

func TestFrameworkRepository_List_FilterByCategory(t *testing.T) {
	db := setupFrameworkTestDB(t)
	repo := sqlite.NewFrameworkRepository(db)
	ctx := context.Background()

	seedFrameworkDef(t, db, "fw-1", "discovery", "Framework 1", true)
	seedFrameworkDef(t, db, "fw-2", "discovery", "Framework 2", true)
	seedFrameworkDef(t, db, "fw-3", "metrics", "Framework 3", true)

	all, err := repo.List(ctx, secondary.FrameworkFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 frameworks, got %d", len(all))
	}

	discovery, err := repo.List(ctx, secondary.FrameworkFilters{Category: "discovery"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(discovery) != 2 {
		t.Errorf("expected 2 discovery frameworks, got %d", len(discovery))
	}
}

func TestFrameworkRepository_Update_Partial(t *testing.T) {
	db := setupFrameworkTestDB(t)
	repo := sqlite.NewFrameworkRepository(db)
	ctx := context.Background()

	seedFrameworkDef(t, db, "fw-1", "discovery", "Original", true)

	questions := []string{"New question?"}
	err := repo.Update(ctx, "fw-1", secondary.FrameworkUpdate{
		SystemPrompt:     strPtr("Custom prompt"),
		GuidingQuestions: &questions,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	retrieved, _ := repo.GetByID(ctx, "fw-1")
	if retrieved.Name != "Original" {
		t.Errorf("expected name untouched, got '%s'", retrieved.Name)
	}
	if retrieved.SystemPrompt != "Custom prompt" {
		t.Errorf("expected updated prompt, got '%s'", retrieved.SystemPrompt)
	}
	if len(retrieved.GuidingQuestions) != 1 {
		t.Errorf("expected 1 question, got %d", len(retrieved.GuidingQuestions))
	}
}

func TestFrameworkRepository_Update_MoveCategory(t *testing.T) {
	db := setupFrameworkTestDB(t)
	repo := sqlite.NewFrameworkRepository(db)
	ctx := context.Background()

	seedFrameworkDef(t, db, "fw-1", "discovery", "Framework", true)

	err := repo.Update(ctx, "fw-1", secondary.FrameworkUpdate{
		Category: strPtr("metrics"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	retrieved, _ := repo.GetByID(ctx, "fw-1")
	if retrieved.Category != "metrics" {
		t.Errorf("expected category 'metrics', got '%s'", retrieved.Category)
	}
}

func TestFrameworkRepository_ResetContent(t *testing.T) {
	db := setupFrameworkTestDB(t)
	repo := sqlite.NewFrameworkRepository(db)
	ctx := context.Background()

	_, _ = db.Exec(`INSERT INTO framework_defs
		(id, category, name, icon, system_prompt, example_output, is_builtin, sort_order)
		VALUES ('fw-1', 'discovery', 'Renamed by User', 'custom-icon', 'user prompt', 'user example', 1, 9)`)

	err := repo.ResetContent(ctx, "fw-1", secondary.FrameworkSeedContent{
		SystemPrompt:     "seed prompt",
		GuidingQuestions: []string{"Seed question?"},
		ExampleOutput:    "seed example",
	})
	if err != nil {
		t.Fatalf("ResetContent failed: %v", err)
	}

	retrieved, _ := repo.GetByID(ctx, "fw-1")
	if retrieved.SystemPrompt != "seed prompt" {
		t.Errorf("expected seed prompt, got '%s'", retrieved.SystemPrompt)
	}
	if retrieved.ExampleOutput != "seed example" {
		t.Errorf("expected seed example, got '%s'", retrieved.ExampleOutput)
	}
	// User-owned fields survive reset
	if retrieved.Name != "Renamed by User" {
		t.Errorf("expected name untouched, got '%s'", retrieved.Name)
	}
	if retrieved.Icon != "custom-icon" {
		t.Errorf("expected icon untouched, got '%s'", retrieved.Icon)
	}
	if retrieved.SortOrder != 9 {
		t.Errorf("expected sort order untouched, got %d", retrieved.SortOrder)
	}
}

func TestFrameworkRepository_ResetContent_NotFound(t *testing.T) {
	db := setupFrameworkTestDB(t)
	repo := sqlite.NewFrameworkRepository(db)
	ctx := context.Background()

	err := repo.ResetContent(ctx, "missing", secondary.FrameworkSeedContent{})
	if err == nil {
		t.Error("expected error for non-existent framework")
	}
}

func TestFrameworkRepository_MaxSortOrder_PerCategory(t *testing.T) {
	db := setupFrameworkTestDB(t)
	repo := sqlite.NewFrameworkRepository(db)
	ctx := context.Background()

	_, _ = db.Exec("INSERT INTO framework_defs (id, category, name, sort_order) VALUES ('a', 'discovery', 'A', 5)")
	_, _ = db.Exec("INSERT INTO framework_defs (id, category, name, sort_order) VALUES ('b', 'metrics', 'B', 9)")

	max, err := repo.MaxSortOrder(ctx, "discovery")
	if err != nil {
		t.Fatalf("MaxSortOrder failed: %v", err)
	}
	if max != 5 {
		t.Errorf("expected 5 for discovery, got %d", max)
	}

	max, err = repo.MaxSortOrder(ctx, "prioritization")
	if err != nil {
		t.Fatalf("MaxSortOrder failed: %v", err)
	}
	if max != -1 {
		t.Errorf("expected -1 for empty category, got %d", max)
	}
}

func TestFrameworkRepository_Delete_CascadesFromCategory(t *testing.T) {
	db := setupFrameworkTestDB(t)
	repo := sqlite.NewFrameworkRepository(db)
	ctx := context.Background()

	seedFrameworkDef(t, db, "fw-1", "discovery", "Framework", false)

	_, err := db.Exec("DELETE FROM framework_categories WHERE id = 'discovery'")
	if err != nil {
		t.Fatalf("category delete failed: %v", err)
	}

	if _, err := repo.GetByID(ctx, "fw-1"); err == nil {
		t.Error("expected definition to cascade with its category")
	}
}
