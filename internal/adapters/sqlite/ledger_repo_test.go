package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/riverphoenix/ai-pm-ide/internal/adapters/sqlite"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

func TestProjectRepository_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &secondary.ProjectRecord{
		ID:          "proj-1",
		Name:        "Mobile App",
		Description: "Companion app workstream",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "proj-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Name != "Mobile App" {
		t.Errorf("expected name 'Mobile App', got '%s'", retrieved.Name)
	}

	err = repo.Update(ctx, "proj-1", secondary.ProjectUpdate{Description: strPtr("")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	retrieved, _ = repo.GetByID(ctx, "proj-1")
	if retrieved.Description != "" {
		t.Errorf("expected cleared description, got '%s'", retrieved.Description)
	}
	if retrieved.Name != "Mobile App" {
		t.Error("expected name untouched")
	}

	if err := repo.Delete(ctx, "proj-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, "proj-1"); err == nil {
		t.Error("expected error after deletion")
	}
}

func TestProjectRepository_Delete_CascadesOwnedRows(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewProjectRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "Test Project")
	seedFolder(t, db, "folder-1", "proj-1", "", "Docs")
	seedConversation(t, db, "conv-1", "proj-1", "Chat")
	_, _ = db.Exec(`INSERT INTO context_documents (id, project_id, name, doc_type)
		VALUES ('doc-1', 'proj-1', 'Doc', 'note')`)

	if err := repo.Delete(ctx, "proj-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	for _, table := range []string{"folders", "conversations", "context_documents"} {
		var count int
		_ = db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		if count != 0 {
			t.Errorf("expected %s to cascade, found %d rows", table, count)
		}
	}
}

func TestConversationRepository_UpdateStats(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewConversationRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "Test Project")
	seedConversation(t, db, "conv-1", "proj-1", "Kickoff")

	if err := repo.UpdateStats(ctx, "conv-1", 4, 1200); err != nil {
		t.Fatalf("UpdateStats failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "conv-1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.MessageCount != 4 || retrieved.TokenCount != 1200 {
		t.Errorf("unexpected stats: %d messages, %d tokens",
			retrieved.MessageCount, retrieved.TokenCount)
	}
}

func TestConversationRepository_Delete_CascadesMessages(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewConversationRepository(db)
	msgRepo := sqlite.NewMessageRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "Test Project")
	seedConversation(t, db, "conv-1", "proj-1", "Kickoff")

	_ = msgRepo.Append(ctx, &secondary.MessageRecord{
		ID: "msg-1", ConversationID: "conv-1", Role: "user", Content: "hello",
	})

	if err := repo.Delete(ctx, "conv-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	var count int
	_ = db.QueryRow("SELECT COUNT(*) FROM messages").Scan(&count)
	if count != 0 {
		t.Errorf("expected messages to cascade, found %d", count)
	}
}

func TestMessageRepository_ListByConversation_InsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewMessageRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "Test Project")
	seedConversation(t, db, "conv-1", "proj-1", "Kickoff")

	for i, content := range []string{"first", "second", "third"} {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		err := repo.Append(ctx, &secondary.MessageRecord{
			ID:             content,
			ConversationID: "conv-1",
			Role:           role,
			Content:        content,
		})
		if err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	messages, err := repo.ListByConversation(ctx, "conv-1")
	if err != nil {
		t.Fatalf("ListByConversation failed: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	if messages[0].Content != "first" || messages[2].Content != "third" {
		t.Errorf("unexpected order: %s, %s, %s",
			messages[0].Content, messages[1].Content, messages[2].Content)
	}
}

func TestMessageRepository_Append_RejectsBadRole(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewMessageRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "Test Project")
	seedConversation(t, db, "conv-1", "proj-1", "Kickoff")

	err := repo.Append(ctx, &secondary.MessageRecord{
		ID: "msg-1", ConversationID: "conv-1", Role: "bot", Content: "hi",
	})
	if err == nil {
		t.Error("expected role check to reject 'bot'")
	}
}

func TestTokenUsageRepository_RecordAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTokenUsageRepository(db)
	ctx := context.Background()

	seedProject(t, db, "proj-1", "Test Project")

	err := repo.Record(ctx, &secondary.TokenUsageRecord{
		ID:           "usage-1",
		ProjectID:    "proj-1",
		Model:        "gpt-4o",
		InputTokens:  500,
		OutputTokens: 900,
		Cost:         0.021,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	// Unscoped entries store null project/conversation
	err = repo.Record(ctx, &secondary.TokenUsageRecord{
		ID:    "usage-2",
		Model: "gpt-4o-mini",
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestTokenUsageRepository_ListByDateRange(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewTokenUsageRepository(db)
	ctx := context.Background()

	_, _ = db.Exec(`INSERT INTO token_usage (id, model, created_at) VALUES ('old', 'gpt-4o', '2026-01-01 10:00:00')`)
	_, _ = db.Exec(`INSERT INTO token_usage (id, model, created_at) VALUES ('recent', 'gpt-4o', '2026-06-15 10:00:00')`)

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02 15:04:05")
	to := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02 15:04:05")

	entries, err := repo.ListByDateRange(ctx, from, to)
	if err != nil {
		t.Fatalf("ListByDateRange failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "recent" {
		t.Errorf("expected only 'recent', got %d entries", len(entries))
	}
}
