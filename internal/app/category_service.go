// Package app contains the service implementations behind the primary
// ports. Services orchestrate repositories and the pure guards in
// internal/core; they hold no SQL and no presentation logic.
package app

import (
	"context"
	"fmt"

	"github.com/riverphoenix/ai-pm-ide/internal/core/catalog"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// CategoryServiceImpl implements the CategoryService interface.
type CategoryServiceImpl struct {
	categoryRepo secondary.CategoryRepository
}

// NewCategoryService creates a new CategoryService with injected dependencies.
func NewCategoryService(categoryRepo secondary.CategoryRepository) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

// CreateCategory creates a custom category with a slug derived from its name.
func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, req primary.CreateCategoryRequest) (*primary.Category, error) {
	slug := catalog.Slugify(req.Name)

	exists := false
	if slug != "" {
		var err error
		exists, err = s.categoryRepo.Exists(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check category id: %w", err)
		}
	}

	if err := catalog.CanCreateEntry(catalog.CreateEntryContext{
		Kind:       "category",
		Slug:       slug,
		SlugExists: exists,
	}).Error(); err != nil {
		return nil, err
	}

	maxSort, err := s.categoryRepo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sort order: %w", err)
	}

	record := &secondary.CategoryRecord{
		ID:          slug,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		IsBuiltin:   false,
		SortOrder:   maxSort + 1,
	}
	if err := s.categoryRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	created, err := s.categoryRepo.GetByID(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created category: %w", err)
	}
	return recordToCategory(created), nil
}

// GetCategory retrieves a category by ID.
func (s *CategoryServiceImpl) GetCategory(ctx context.Context, categoryID string) (*primary.Category, error) {
	record, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return recordToCategory(record), nil
}

// ListCategories retrieves all categories ordered by sort order.
func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]*primary.Category, error) {
	records, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*primary.Category, len(records))
	for i, r := range records {
		categories[i] = recordToCategory(r)
	}
	return categories, nil
}

// UpdateCategory applies a partial update. The id stays fixed even when the
// name changes; builtin rows keep their builtin flag.
func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, categoryID string, req primary.UpdateCategoryRequest) (*primary.Category, error) {
	err := s.categoryRepo.Update(ctx, categoryID, secondary.CategoryUpdate{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated category: %w", err)
	}
	return recordToCategory(updated), nil
}

// DeleteCategory deletes a custom, empty category.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, categoryID string) error {
	record, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return err
	}

	count, err := s.categoryRepo.CountDefinitions(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to count definitions: %w", err)
	}

	if err := catalog.CanDeleteCategory(catalog.DeleteCategoryContext{
		ID:              categoryID,
		IsBuiltin:       record.IsBuiltin,
		DefinitionCount: count,
	}).Error(); err != nil {
		return err
	}

	return s.categoryRepo.Delete(ctx, categoryID)
}

// SearchCategories finds categories by name or description substring.
func (s *CategoryServiceImpl) SearchCategories(ctx context.Context, term string) ([]*primary.Category, error) {
	records, err := s.categoryRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search categories: %w", err)
	}

	categories := make([]*primary.Category, len(records))
	for i, r := range records {
		categories[i] = recordToCategory(r)
	}
	return categories, nil
}

func recordToCategory(r *secondary.CategoryRecord) *primary.Category {
	return &primary.Category{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Icon:        r.Icon,
		IsBuiltin:   r.IsBuiltin,
		SortOrder:   r.SortOrder,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Ensure CategoryServiceImpl implements the interface.
var _ primary.CategoryService = (*CategoryServiceImpl)(nil)
