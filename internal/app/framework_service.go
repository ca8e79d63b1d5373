package app

import (
	"context"
	"fmt"

	"github.com/riverphoenix/ai-pm-ide/internal/core/catalog"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
	"github.com/riverphoenix/ai-pm-ide/internal/seeddata"
)

// FrameworkServiceImpl implements the FrameworkService interface.
type FrameworkServiceImpl struct {
	frameworkRepo secondary.FrameworkRepository
	categoryRepo  secondary.CategoryRepository
}

// NewFrameworkService creates a new FrameworkService with injected
// dependencies.
func NewFrameworkService(frameworkRepo secondary.FrameworkRepository, categoryRepo secondary.CategoryRepository) *FrameworkServiceImpl {
	return &FrameworkServiceImpl{
		frameworkRepo: frameworkRepo,
		categoryRepo:  categoryRepo,
	}
}

// CreateFramework creates a custom definition with a slug derived from its
// name.
func (s *FrameworkServiceImpl) CreateFramework(ctx context.Context, req primary.CreateFrameworkRequest) (*primary.Framework, error) {
	categoryExists, err := s.categoryRepo.Exists(ctx, req.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if !categoryExists {
		return nil, fmt.Errorf("category %s not found", req.Category)
	}

	slug := catalog.SlugifyFramework(req.Name)

	exists := false
	if slug != "" {
		exists, err = s.frameworkRepo.Exists(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check framework id: %w", err)
		}
	}

	if err := catalog.CanCreateEntry(catalog.CreateEntryContext{
		Kind:       "framework",
		Slug:       slug,
		SlugExists: exists,
	}).Error(); err != nil {
		return nil, err
	}

	maxSort, err := s.frameworkRepo.MaxSortOrder(ctx, req.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to get sort order: %w", err)
	}

	record := &secondary.FrameworkRecord{
		ID:               slug,
		Category:         req.Category,
		Name:             req.Name,
		Description:      req.Description,
		Icon:             req.Icon,
		SystemPrompt:     req.SystemPrompt,
		GuidingQuestions: req.GuidingQuestions,
		ExampleOutput:    req.ExampleOutput,
		IsBuiltin:        false,
		SortOrder:        maxSort + 1,
	}
	if err := s.frameworkRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create framework: %w", err)
	}

	created, err := s.frameworkRepo.GetByID(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created framework: %w", err)
	}
	return recordToFramework(created), nil
}

// GetFramework retrieves a definition by ID.
func (s *FrameworkServiceImpl) GetFramework(ctx context.Context, frameworkID string) (*primary.Framework, error) {
	record, err := s.frameworkRepo.GetByID(ctx, frameworkID)
	if err != nil {
		return nil, err
	}
	return recordToFramework(record), nil
}

// ListFrameworks retrieves definitions, optionally scoped to a category.
func (s *FrameworkServiceImpl) ListFrameworks(ctx context.Context, categoryID string) ([]*primary.Framework, error) {
	records, err := s.frameworkRepo.List(ctx, secondary.FrameworkFilters{Category: categoryID})
	if err != nil {
		return nil, fmt.Errorf("failed to list frameworks: %w", err)
	}

	frameworks := make([]*primary.Framework, len(records))
	for i, r := range records {
		frameworks[i] = recordToFramework(r)
	}
	return frameworks, nil
}

// UpdateFramework applies a partial update. The id never changes; overriding
// a builtin's content keeps its builtin flag so reset stays available.
func (s *FrameworkServiceImpl) UpdateFramework(ctx context.Context, frameworkID string, req primary.UpdateFrameworkRequest) (*primary.Framework, error) {
	if req.Category != nil {
		categoryExists, err := s.categoryRepo.Exists(ctx, *req.Category)
		if err != nil {
			return nil, fmt.Errorf("failed to check category: %w", err)
		}
		if !categoryExists {
			return nil, fmt.Errorf("category %s not found", *req.Category)
		}
	}

	err := s.frameworkRepo.Update(ctx, frameworkID, secondary.FrameworkUpdate{
		Category:           req.Category,
		Name:               req.Name,
		Description:        req.Description,
		Icon:               req.Icon,
		SystemPrompt:       req.SystemPrompt,
		GuidingQuestions:   req.GuidingQuestions,
		ExampleOutput:      req.ExampleOutput,
		SupportsVisuals:    req.SupportsVisuals,
		VisualInstructions: req.VisualInstructions,
		SortOrder:          req.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.frameworkRepo.GetByID(ctx, frameworkID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated framework: %w", err)
	}
	return recordToFramework(updated), nil
}

// DeleteFramework deletes a custom definition.
func (s *FrameworkServiceImpl) DeleteFramework(ctx context.Context, frameworkID string) error {
	record, err := s.frameworkRepo.GetByID(ctx, frameworkID)
	if err != nil {
		return err
	}

	if err := catalog.CanDeleteEntry(catalog.DeleteEntryContext{
		Kind:      "framework",
		ID:        frameworkID,
		IsBuiltin: record.IsBuiltin,
	}).Error(); err != nil {
		return err
	}

	return s.frameworkRepo.Delete(ctx, frameworkID)
}

// ResetFramework restores a builtin definition's content fields from the
// bundled seed.
func (s *FrameworkServiceImpl) ResetFramework(ctx context.Context, frameworkID string) (*primary.Framework, error) {
	record, err := s.frameworkRepo.GetByID(ctx, frameworkID)
	if err != nil {
		return nil, err
	}

	seed, err := seeddata.FrameworkByID(frameworkID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bundled seed: %w", err)
	}

	if err := catalog.CanResetDefinition(catalog.ResetDefinitionContext{
		ID:        frameworkID,
		IsBuiltin: record.IsBuiltin,
		SeedFound: seed != nil,
	}).Error(); err != nil {
		return nil, err
	}

	err = s.frameworkRepo.ResetContent(ctx, frameworkID, secondary.FrameworkSeedContent{
		SystemPrompt:       seed.SystemPrompt,
		GuidingQuestions:   seed.GuidingQuestions,
		ExampleOutput:      seed.ExampleOutput,
		VisualInstructions: seed.VisualInstructions,
	})
	if err != nil {
		return nil, err
	}

	reset, err := s.frameworkRepo.GetByID(ctx, frameworkID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reset framework: %w", err)
	}
	return recordToFramework(reset), nil
}

// DuplicateFramework copies a definition into a custom one named newName,
// slotted directly after the source. The copy is never builtin, even when
// the source is.
func (s *FrameworkServiceImpl) DuplicateFramework(ctx context.Context, frameworkID, newName string) (*primary.Framework, error) {
	source, err := s.frameworkRepo.GetByID(ctx, frameworkID)
	if err != nil {
		return nil, err
	}

	slug := catalog.SlugifyFramework(newName)

	exists := false
	if slug != "" {
		exists, err = s.frameworkRepo.Exists(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check framework id: %w", err)
		}
	}

	if err := catalog.CanCreateEntry(catalog.CreateEntryContext{
		Kind:       "framework",
		Slug:       slug,
		SlugExists: exists,
	}).Error(); err != nil {
		return nil, err
	}

	record := &secondary.FrameworkRecord{
		ID:                 slug,
		Category:           source.Category,
		Name:               newName,
		Description:        source.Description,
		Icon:               source.Icon,
		SystemPrompt:       source.SystemPrompt,
		GuidingQuestions:   source.GuidingQuestions,
		ExampleOutput:      source.ExampleOutput,
		SupportsVisuals:    source.SupportsVisuals,
		VisualInstructions: source.VisualInstructions,
		IsBuiltin:          false,
		SortOrder:          source.SortOrder + 1,
	}
	if err := s.frameworkRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to duplicate framework: %w", err)
	}

	created, err := s.frameworkRepo.GetByID(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch duplicated framework: %w", err)
	}
	return recordToFramework(created), nil
}

// SearchFrameworks finds definitions by name or description substring.
func (s *FrameworkServiceImpl) SearchFrameworks(ctx context.Context, term string) ([]*primary.Framework, error) {
	records, err := s.frameworkRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search frameworks: %w", err)
	}

	frameworks := make([]*primary.Framework, len(records))
	for i, r := range records {
		frameworks[i] = recordToFramework(r)
	}
	return frameworks, nil
}

func recordToFramework(r *secondary.FrameworkRecord) *primary.Framework {
	return &primary.Framework{
		ID:                 r.ID,
		Category:           r.Category,
		Name:               r.Name,
		Description:        r.Description,
		Icon:               r.Icon,
		SystemPrompt:       r.SystemPrompt,
		GuidingQuestions:   r.GuidingQuestions,
		ExampleOutput:      r.ExampleOutput,
		SupportsVisuals:    r.SupportsVisuals,
		VisualInstructions: r.VisualInstructions,
		IsBuiltin:          r.IsBuiltin,
		SortOrder:          r.SortOrder,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// Ensure FrameworkServiceImpl implements the interface.
var _ primary.FrameworkService = (*FrameworkServiceImpl)(nil)
