package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/riverphoenix/ai-pm-ide/internal/core/folder"
	"github.com/riverphoenix/ai-pm-ide/internal/core/item"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// FolderServiceImpl implements the FolderService interface.
type FolderServiceImpl struct {
	folderRepo secondary.FolderRepository
	itemRepo   secondary.ItemRepository
}

// NewFolderService creates a new FolderService with injected dependencies.
func NewFolderService(folderRepo secondary.FolderRepository, itemRepo secondary.ItemRepository) *FolderServiceImpl {
	return &FolderServiceImpl{
		folderRepo: folderRepo,
		itemRepo:   itemRepo,
	}
}

// CreateFolder creates a folder, optionally nested under a parent.
func (s *FolderServiceImpl) CreateFolder(ctx context.Context, req primary.CreateFolderRequest) (*primary.Folder, error) {
	if req.ParentID != "" {
		parent, err := s.folderRepo.GetByID(ctx, req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.ProjectID != req.ProjectID {
			return nil, fmt.Errorf("parent folder %s belongs to a different project", parent.ID)
		}
	}

	record := &secondary.FolderRecord{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		ParentID:  req.ParentID,
		Name:      req.Name,
		Color:     req.Color,
	}
	if err := s.folderRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	created, err := s.folderRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created folder: %w", err)
	}
	return recordToFolder(created), nil
}

// GetFolder retrieves a folder by ID.
func (s *FolderServiceImpl) GetFolder(ctx context.Context, folderID string) (*primary.Folder, error) {
	record, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	return recordToFolder(record), nil
}

// ListFolders retrieves a project's folders ordered by sort order.
func (s *FolderServiceImpl) ListFolders(ctx context.Context, projectID string) ([]*primary.Folder, error) {
	records, err := s.folderRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}

	folders := make([]*primary.Folder, len(records))
	for i, r := range records {
		folders[i] = recordToFolder(r)
	}
	return folders, nil
}

// UpdateFolder applies a partial update. Reparenting keeps the tree scoped
// to one project and walks the proposed parent's ancestor chain, rejecting
// moves that would cut a cycle into it.
func (s *FolderServiceImpl) UpdateFolder(ctx context.Context, folderID string, req primary.UpdateFolderRequest) (*primary.Folder, error) {
	if req.ParentID != nil && *req.ParentID != "" {
		current, err := s.folderRepo.GetByID(ctx, folderID)
		if err != nil {
			return nil, err
		}
		parent, err := s.folderRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.ProjectID != current.ProjectID {
			return nil, fmt.Errorf("parent folder %s belongs to a different project", parent.ID)
		}

		ancestors, err := s.folderRepo.Ancestors(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to check parent: %w", err)
		}

		if err := folder.CanReparentFolder(folder.ReparentContext{
			FolderID:        folderID,
			NewParentID:     *req.ParentID,
			ParentAncestors: ancestors,
		}).Error(); err != nil {
			return nil, err
		}
	}

	err := s.folderRepo.Update(ctx, folderID, secondary.FolderUpdate{
		Name:      req.Name,
		Color:     req.Color,
		SortOrder: req.SortOrder,
		ParentID:  req.ParentID,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated folder: %w", err)
	}
	return recordToFolder(updated), nil
}

// DeleteFolder removes a folder, unfiling its items first.
func (s *FolderServiceImpl) DeleteFolder(ctx context.Context, folderID string) error {
	return s.folderRepo.Delete(ctx, folderID)
}

// MoveItem files an item into a folder; an empty folderID unfiles it.
func (s *FolderServiceImpl) MoveItem(ctx context.Context, req primary.MoveItemRequest) error {
	kind, err := item.ParseKind(req.Kind)
	if err != nil {
		return err
	}

	if req.FolderID != "" {
		if _, err := s.folderRepo.GetByID(ctx, req.FolderID); err != nil {
			return err
		}
	}

	return s.itemRepo.MoveToFolder(ctx, string(kind), req.ItemID, req.FolderID)
}

func recordToFolder(r *secondary.FolderRecord) *primary.Folder {
	return &primary.Folder{
		ID:        r.ID,
		ProjectID: r.ProjectID,
		ParentID:  r.ParentID,
		Name:      r.Name,
		Color:     r.Color,
		SortOrder: r.SortOrder,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Ensure FolderServiceImpl implements the interface.
var _ primary.FolderService = (*FolderServiceImpl)(nil)
