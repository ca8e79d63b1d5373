package sqlite_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/riverphoenix/ai-pm-ide/internal/adapters/sqlite"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

func setupDocumentTestDB(t *testing.T) *sql.DB {
	t.Helper()
	testDB := setupTestDB(t)
	seedProject(t, testDB, "proj-1", "Test Project")
	return testDB
}

func TestContextDocumentRepository_Create_RoundTrip(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := sqlite.NewContextDocumentRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.ContextDocumentRecord{
		ID:        "doc-1",
		ProjectID: "proj-1",
		Name:      "User Interview",
		DocType:   "transcript",
		Content:   "Q: What frustrates you most?",
		SizeBytes: 28,
		Tags:      []string{"research", "q3"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "doc-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.SizeBytes != 28 {
		t.Errorf("expected size 28, got %d", retrieved.SizeBytes)
	}
	if len(retrieved.Tags) != 2 || retrieved.Tags[0] != "research" {
		t.Errorf("unexpected tags: %v", retrieved.Tags)
	}
}

func TestContextDocumentRepository_List_Filters(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := sqlite.NewContextDocumentRepository(db)
	ctx := context.Background()

	_, _ = db.Exec(`INSERT INTO context_documents (id, project_id, name, doc_type, is_global)
		VALUES ('doc-1', 'proj-1', 'Global Brief', 'note', 1)`)
	_, _ = db.Exec(`INSERT INTO context_documents (id, project_id, name, doc_type)
		VALUES ('doc-2', 'proj-1', 'Local Note', 'note')`)
	_, _ = db.Exec(`INSERT INTO context_documents (id, project_id, name, doc_type)
		VALUES ('doc-3', 'proj-1', 'Spec', 'spec')`)

	byType, err := repo.List(ctx, secondary.DocumentFilters{ProjectID: "proj-1", DocType: "note"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(byType) != 2 {
		t.Errorf("expected 2 notes, got %d", len(byType))
	}

	global, err := repo.List(ctx, secondary.DocumentFilters{ProjectID: "proj-1", GlobalOnly: true})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(global) != 1 || global[0].ID != "doc-1" {
		t.Errorf("expected only the global doc, got %d results", len(global))
	}
}

func TestContextDocumentRepository_Update_SizeUntouched(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := sqlite.NewContextDocumentRepository(db)
	ctx := context.Background()

	_, _ = db.Exec(`INSERT INTO context_documents (id, project_id, name, doc_type, content, size_bytes)
		VALUES ('doc-1', 'proj-1', 'Doc', 'note', 'short', 5)`)

	err := repo.Update(ctx, "doc-1", secondary.DocumentUpdate{
		Content: strPtr("a much longer body of content than before"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	retrieved, _ := repo.GetByID(ctx, "doc-1")
	if retrieved.SizeBytes != 5 {
		t.Errorf("expected size fixed at creation, got %d", retrieved.SizeBytes)
	}
}

func TestContextDocumentRepository_Delete(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := sqlite.NewContextDocumentRepository(db)
	ctx := context.Background()

	_, _ = db.Exec(`INSERT INTO context_documents (id, project_id, name, doc_type)
		VALUES ('doc-1', 'proj-1', 'Doc', 'note')`)

	if err := repo.Delete(ctx, "doc-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, "doc-1"); err == nil {
		t.Error("expected error deleting twice")
	}
}

func TestFrameworkOutputRepository_Create_RoundTrip(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := sqlite.NewFrameworkOutputRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.FrameworkOutputRecord{
		ID:               "out-1",
		ProjectID:        "proj-1",
		Name:             "Q3 SWOT",
		FrameworkID:      "swot-analysis",
		Category:         "strategy",
		UserPrompt:       "Analyze our Q3 position",
		ContextDocIDs:    []string{"doc-1", "doc-2"},
		GeneratedContent: "## Strengths\n...",
		Format:           "markdown",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "out-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.FrameworkID != "swot-analysis" {
		t.Errorf("expected framework 'swot-analysis', got '%s'", retrieved.FrameworkID)
	}
	if len(retrieved.ContextDocIDs) != 2 {
		t.Errorf("expected 2 context doc ids, got %d", len(retrieved.ContextDocIDs))
	}
}

func TestFrameworkOutputRepository_List_FilterByFramework(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := sqlite.NewFrameworkOutputRepository(db)
	ctx := context.Background()

	_, _ = db.Exec(`INSERT INTO framework_outputs (id, project_id, name, framework_id)
		VALUES ('out-1', 'proj-1', 'SWOT A', 'swot-analysis')`)
	_, _ = db.Exec(`INSERT INTO framework_outputs (id, project_id, name, framework_id)
		VALUES ('out-2', 'proj-1', 'RICE A', 'rice-scoring')`)

	outputs, err := repo.List(ctx, secondary.OutputFilters{
		ProjectID:   "proj-1",
		FrameworkID: "swot-analysis",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(outputs) != 1 || outputs[0].ID != "out-1" {
		t.Errorf("expected only out-1, got %d results", len(outputs))
	}
}

func TestFrameworkOutputRepository_Update_Partial(t *testing.T) {
	db := setupDocumentTestDB(t)
	repo := sqlite.NewFrameworkOutputRepository(db)
	ctx := context.Background()

	_, _ = db.Exec(`INSERT INTO framework_outputs (id, project_id, name, framework_id, generated_content)
		VALUES ('out-1', 'proj-1', 'SWOT', 'swot-analysis', 'old body')`)

	err := repo.Update(ctx, "out-1", secondary.OutputUpdate{
		GeneratedContent: strPtr("revised body"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	retrieved, _ := repo.GetByID(ctx, "out-1")
	if retrieved.GeneratedContent != "revised body" {
		t.Errorf("expected revised content, got '%s'", retrieved.GeneratedContent)
	}
	if retrieved.Name != "SWOT" {
		t.Errorf("expected name untouched, got '%s'", retrieved.Name)
	}
}
