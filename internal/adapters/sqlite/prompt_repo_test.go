package sqlite_test

import (
	"context"
	"testing"

	"github.com/riverphoenix/ai-pm-ide/internal/adapters/sqlite"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

func TestPromptRepository_Create_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPromptRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.PromptRecord{
		ID:         "prd-outline",
		Name:       "PRD Outline",
		Category:   "planning",
		PromptText: "Draft a PRD for {{feature}} targeting {{audience}}.",
		Variables:  []string{"feature", "audience"},
		IsBuiltin:  true,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "prd-outline")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if len(retrieved.Variables) != 2 || retrieved.Variables[1] != "audience" {
		t.Errorf("unexpected variables: %v", retrieved.Variables)
	}
	if retrieved.UsageCount != 0 {
		t.Errorf("expected zero usage, got %d", retrieved.UsageCount)
	}
}

func TestPromptRepository_List_OrderedByUsage(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPromptRepository(db)
	ctx := context.Background()

	_, _ = db.Exec("INSERT INTO saved_prompts (id, name, prompt_text, usage_count) VALUES ('rare', 'Rare', 'x', 1)")
	_, _ = db.Exec("INSERT INTO saved_prompts (id, name, prompt_text, usage_count) VALUES ('popular', 'Popular', 'x', 10)")

	prompts, err := repo.List(ctx, secondary.PromptFilters{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(prompts))
	}
	if prompts[0].ID != "popular" {
		t.Errorf("expected most used first, got '%s'", prompts[0].ID)
	}
}

func TestPromptRepository_List_FilterByFramework(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPromptRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "strategy", "Strategy", true)
	seedFrameworkDef(t, db, "swot-analysis", "strategy", "SWOT Analysis", true)
	_, _ = db.Exec("INSERT INTO saved_prompts (id, name, prompt_text, framework_id) VALUES ('teardown', 'Teardown', 'x', 'swot-analysis')")
	_, _ = db.Exec("INSERT INTO saved_prompts (id, name, prompt_text) VALUES ('standalone', 'Standalone', 'x')")

	prompts, err := repo.List(ctx, secondary.PromptFilters{FrameworkID: "swot-analysis"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(prompts) != 1 || prompts[0].ID != "teardown" {
		t.Errorf("expected only 'teardown', got %d results", len(prompts))
	}
}

func TestPromptRepository_IncrementUsage(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPromptRepository(db)
	ctx := context.Background()

	_, _ = db.Exec("INSERT INTO saved_prompts (id, name, prompt_text) VALUES ('p1', 'Prompt', 'x')")

	if err := repo.IncrementUsage(ctx, "p1"); err != nil {
		t.Fatalf("IncrementUsage failed: %v", err)
	}
	if err := repo.IncrementUsage(ctx, "p1"); err != nil {
		t.Fatalf("IncrementUsage failed: %v", err)
	}

	retrieved, _ := repo.GetByID(ctx, "p1")
	if retrieved.UsageCount != 2 {
		t.Errorf("expected usage 2, got %d", retrieved.UsageCount)
	}
}

func TestPromptRepository_IncrementUsage_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPromptRepository(db)
	ctx := context.Background()

	if err := repo.IncrementUsage(ctx, "missing"); err == nil {
		t.Error("expected error for non-existent prompt")
	}
}

func TestPromptRepository_FrameworkDelete_DetachesPrompt(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPromptRepository(db)
	ctx := context.Background()

	seedCategory(t, db, "strategy", "Strategy", true)
	seedFrameworkDef(t, db, "swot-analysis", "strategy", "SWOT Analysis", true)
	_, _ = db.Exec("INSERT INTO saved_prompts (id, name, prompt_text, framework_id) VALUES ('teardown', 'Teardown', 'x', 'swot-analysis')")

	if _, err := db.Exec("DELETE FROM framework_defs WHERE id = 'swot-analysis'"); err != nil {
		t.Fatalf("framework delete failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "teardown")
	if err != nil {
		t.Fatalf("expected prompt to survive framework delete: %v", err)
	}
	if retrieved.FrameworkID != "" {
		t.Errorf("expected detached prompt, got framework '%s'", retrieved.FrameworkID)
	}
}

func TestPromptRepository_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewPromptRepository(db)
	ctx := context.Background()

	_, _ = db.Exec("INSERT INTO saved_prompts (id, name, prompt_text) VALUES ('p1', 'Release Notes', 'summarize the changes')")
	_, _ = db.Exec("INSERT INTO saved_prompts (id, name, prompt_text) VALUES ('p2', 'Other', 'unrelated')")

	// Matches prompt text, not just name
	results, err := repo.Search(ctx, "changes")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != "p1" {
		t.Errorf("expected only p1, got %d results", len(results))
	}
}
