package app

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// mockFolderRepository implements secondary.FolderRepository for testing.
type mockFolderRepository struct {
	folders map[string]*secondary.FolderRecord
}

func newMockFolderRepository() *mockFolderRepository {
	return &mockFolderRepository{
		folders: make(map[string]*secondary.FolderRecord),
	}
}

func (m *mockFolderRepository) Create(ctx context.Context, folder *secondary.FolderRecord) error {
	m.folders[folder.ID] = folder
	return nil
}

func (m *mockFolderRepository) GetByID(ctx context.Context, id string) (*secondary.FolderRecord, error) {
	if folder, ok := m.folders[id]; ok {
		return folder, nil
	}
	return nil, fmt.Errorf("folder %s not found", id)
}

func (m *mockFolderRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.FolderRecord, error) {
	var result []*secondary.FolderRecord
	for _, f := range m.folders {
		if f.ProjectID == projectID {
			result = append(result, f)
		}
	}
	return result, nil
}

func (m *mockFolderRepository) Update(ctx context.Context, id string, upd secondary.FolderUpdate) error {
	existing, ok := m.folders[id]
	if !ok {
		return fmt.Errorf("folder %s not found", id)
	}
	if upd.Name != nil {
		existing.Name = *upd.Name
	}
	if upd.Color != nil {
		existing.Color = *upd.Color
	}
	if upd.SortOrder != nil {
		existing.SortOrder = *upd.SortOrder
	}
	if upd.ParentID != nil {
		existing.ParentID = *upd.ParentID
	}
	return nil
}

func (m *mockFolderRepository) Ancestors(ctx context.Context, id string) ([]string, error) {
	var chain []string
	current := id
	for current != "" {
		folder, ok := m.folders[current]
		if !ok {
			break
		}
		chain = append(chain, current)
		current = folder.ParentID
	}
	return chain, nil
}

func (m *mockFolderRepository) Delete(ctx context.Context, id string) error {
	if _, ok := m.folders[id]; !ok {
		return fmt.Errorf("folder %s not found", id)
	}
	delete(m.folders, id)
	return nil
}

var _ secondary.FolderRepository = (*mockFolderRepository)(nil)

// mockItemRepository implements secondary.ItemRepository for testing.
type mockItemRepository struct {
	items     map[string]*secondary.ItemSearchRecord
	moveCalls []string // "kind/id/folder" per call
}

func newMockItemRepository() *mockItemRepository {
	return &mockItemRepository{
		items: make(map[string]*secondary.ItemSearchRecord),
	}
}

func (m *mockItemRepository) Search(ctx context.Context, projectID, term string) ([]*secondary.ItemSearchRecord, error) {
	var result []*secondary.ItemSearchRecord
	for _, item := range m.items {
		if strings.Contains(strings.ToLower(item.Name), strings.ToLower(term)) {
			result = append(result, item)
		}
	}
	return result, nil
}

func (m *mockItemRepository) ToggleFavorite(ctx context.Context, kind, id string, value bool) error {
	item, ok := m.items[id]
	if !ok {
		return fmt.Errorf("item %s not found", id)
	}
	item.IsFavorite = value
	return nil
}

func (m *mockItemRepository) MoveToFolder(ctx context.Context, kind, id, folderID string) error {
	item, ok := m.items[id]
	if !ok {
		return fmt.Errorf("item %s not found", id)
	}
	item.FolderID = folderID
	m.moveCalls = append(m.moveCalls, kind+"/"+id+"/"+folderID)
	return nil
}

var _ secondary.ItemRepository = (*mockItemRepository)(nil)

func newFolderService() (*FolderServiceImpl, *mockFolderRepository, *mockItemRepository) {
	folderRepo := newMockFolderRepository()
	itemRepo := newMockItemRepository()
	return NewFolderService(folderRepo, itemRepo), folderRepo, itemRepo
}

func seedFolderChain(repo *mockFolderRepository) {
	// root -> mid -> leaf
	repo.folders["root"] = &secondary.FolderRecord{ID: "root", ProjectID: "proj-1", Name: "Root"}
	repo.folders["mid"] = &secondary.FolderRecord{ID: "mid", ProjectID: "proj-1", ParentID: "root", Name: "Mid"}
	repo.folders["leaf"] = &secondary.FolderRecord{ID: "leaf", ProjectID: "proj-1", ParentID: "mid", Name: "Leaf"}
}

func TestFolderService_CreateFolder(t *testing.T) {
	service, repo, _ := newFolderService()
	ctx := context.Background()

	folder, err := service.CreateFolder(ctx, primary.CreateFolderRequest{
		ProjectID: "proj-1",
		Name:      "Research",
	})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	if folder.ID == "" {
		t.Error("expected generated id")
	}
	if _, ok := repo.folders[folder.ID]; !ok {
		t.Error("expected folder persisted")
	}
}

func TestFolderService_CreateFolder_ParentMissing(t *testing.T) {
	service, _, _ := newFolderService()
	ctx := context.Background()

	_, err := service.CreateFolder(ctx, primary.CreateFolderRequest{
		ProjectID: "proj-1",
		Name:      "Child",
		ParentID:  "missing",
	})
	if err == nil {
		t.Error("expected error for missing parent")
	}
}

func TestFolderService_CreateFolder_CrossProjectParentRejected(t *testing.T) {
	service, repo, _ := newFolderService()
	ctx := context.Background()

	repo.folders["other-root"] = &secondary.FolderRecord{ID: "other-root", ProjectID: "proj-2", Name: "Other"}

	_, err := service.CreateFolder(ctx, primary.CreateFolderRequest{
		ProjectID: "proj-1",
		Name:      "Child",
		ParentID:  "other-root",
	})
	if err == nil {
		t.Fatal("expected error for cross-project parent")
	}
	if !strings.Contains(err.Error(), "different project") {
		t.Errorf("expected cross-project message, got: %v", err)
	}
}

func TestFolderService_UpdateFolder_CrossProjectParentRejected(t *testing.T) {
	service, repo, _ := newFolderService()
	ctx := context.Background()
	seedFolderChain(repo)

	repo.folders["other-root"] = &secondary.FolderRecord{ID: "other-root", ProjectID: "proj-2", Name: "Other"}

	parent := "other-root"
	_, err := service.UpdateFolder(ctx, "leaf", primary.UpdateFolderRequest{ParentID: &parent})
	if err == nil {
		t.Fatal("expected error for cross-project reparent")
	}
	if !strings.Contains(err.Error(), "different project") {
		t.Errorf("expected cross-project message, got: %v", err)
	}
	if repo.folders["leaf"].ParentID != "mid" {
		t.Error("expected leaf to stay where it was")
	}
}

func TestFolderService_UpdateFolder_SelfParentRejected(t *testing.T) {
	service, repo, _ := newFolderService()
	ctx := context.Background()
	seedFolderChain(repo)

	parent := "mid"
	_, err := service.UpdateFolder(ctx, "mid", primary.UpdateFolderRequest{ParentID: &parent})
	if err == nil {
		t.Fatal("expected error for self-parenting")
	}
	if !strings.Contains(err.Error(), "own parent") {
		t.Errorf("expected self-parent message, got: %v", err)
	}
}

func TestFolderService_UpdateFolder_CycleRejected(t *testing.T) {
	service, repo, _ := newFolderService()
	ctx := context.Background()
	seedFolderChain(repo)

	// Moving root under leaf would close the loop root->mid->leaf->root.
	parent := "leaf"
	_, err := service.UpdateFolder(ctx, "root", primary.UpdateFolderRequest{ParentID: &parent})
	if err == nil {
		t.Fatal("expected error for cycle-creating move")
	}
	if !strings.Contains(err.Error(), "cycle") {
		t.Errorf("expected cycle message, got: %v", err)
	}
	if repo.folders["root"].ParentID != "" {
		t.Error("expected root to stay where it was")
	}
}

func TestFolderService_UpdateFolder_MoveToRoot(t *testing.T) {
	service, repo, _ := newFolderService()
	ctx := context.Background()
	seedFolderChain(repo)

	parent := ""
	updated, err := service.UpdateFolder(ctx, "leaf", primary.UpdateFolderRequest{ParentID: &parent})
	if err != nil {
		t.Fatalf("UpdateFolder failed: %v", err)
	}
	if updated.ParentID != "" {
		t.Errorf("expected root placement, got parent '%s'", updated.ParentID)
	}
}

func TestFolderService_UpdateFolder_ValidReparent(t *testing.T) {
	service, repo, _ := newFolderService()
	ctx := context.Background()
	seedFolderChain(repo)

	parent := "root"
	updated, err := service.UpdateFolder(ctx, "leaf", primary.UpdateFolderRequest{ParentID: &parent})
	if err != nil {
		t.Fatalf("UpdateFolder failed: %v", err)
	}
	if updated.ParentID != "root" {
		t.Errorf("expected parent 'root', got '%s'", updated.ParentID)
	}
}

func TestFolderService_MoveItem_InvalidKind(t *testing.T) {
	service, _, _ := newFolderService()
	ctx := context.Background()

	err := service.MoveItem(ctx, primary.MoveItemRequest{
		Kind:   "note",
		ItemID: "item-1",
	})
	if err == nil {
		t.Fatal("expected error for invalid kind")
	}
	if !strings.Contains(err.Error(), "invalid item kind") {
		t.Errorf("expected invalid-kind message, got: %v", err)
	}
}

func TestFolderService_MoveItem(t *testing.T) {
	service, folderRepo, itemRepo := newFolderService()
	ctx := context.Background()

	folderRepo.folders["folder-1"] = &secondary.FolderRecord{ID: "folder-1", ProjectID: "proj-1"}
	itemRepo.items["doc-1"] = &secondary.ItemSearchRecord{ID: "doc-1", Kind: "context_doc"}

	err := service.MoveItem(ctx, primary.MoveItemRequest{
		Kind:     "context_doc",
		ItemID:   "doc-1",
		FolderID: "folder-1",
	})
	if err != nil {
		t.Fatalf("MoveItem failed: %v", err)
	}
	if itemRepo.items["doc-1"].FolderID != "folder-1" {
		t.Error("expected item filed in folder")
	}

	// Unfiling needs no folder lookup
	err = service.MoveItem(ctx, primary.MoveItemRequest{
		Kind:   "context_doc",
		ItemID: "doc-1",
	})
	if err != nil {
		t.Fatalf("MoveItem failed: %v", err)
	}
	if itemRepo.items["doc-1"].FolderID != "" {
		t.Error("expected item unfiled")
	}
}
