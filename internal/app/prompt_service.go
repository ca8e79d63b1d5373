package app

import (
	"context"
	"fmt"

	"github.com/riverphoenix/ai-pm-ide/internal/core/catalog"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// PromptServiceImpl implements the PromptService interface.
type PromptServiceImpl struct {
	promptRepo    secondary.PromptRepository
	frameworkRepo secondary.FrameworkRepository
}

// NewPromptService creates a new PromptService with injected dependencies.
func NewPromptService(promptRepo secondary.PromptRepository, frameworkRepo secondary.FrameworkRepository) *PromptServiceImpl {
	return &PromptServiceImpl{
		promptRepo:    promptRepo,
		frameworkRepo: frameworkRepo,
	}
}

// CreatePrompt creates a custom prompt with a slug derived from its name.
func (s *PromptServiceImpl) CreatePrompt(ctx context.Context, req primary.CreatePromptRequest) (*primary.Prompt, error) {
	if req.FrameworkID != "" {
		frameworkExists, err := s.frameworkRepo.Exists(ctx, req.FrameworkID)
		if err != nil {
			return nil, fmt.Errorf("failed to check framework: %w", err)
		}
		if !frameworkExists {
			return nil, fmt.Errorf("framework %s not found", req.FrameworkID)
		}
	}

	slug := catalog.Slugify(req.Name)

	exists := false
	if slug != "" {
		var err error
		exists, err = s.promptRepo.Exists(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check prompt id: %w", err)
		}
	}

	if err := catalog.CanCreateEntry(catalog.CreateEntryContext{
		Kind:       "prompt",
		Slug:       slug,
		SlugExists: exists,
	}).Error(); err != nil {
		return nil, err
	}

	maxSort, err := s.promptRepo.MaxSortOrder(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get sort order: %w", err)
	}

	record := &secondary.PromptRecord{
		ID:          slug,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PromptText:  req.PromptText,
		Variables:   req.Variables,
		FrameworkID: req.FrameworkID,
		IsBuiltin:   false,
		SortOrder:   maxSort + 1,
	}
	if err := s.promptRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}

	created, err := s.promptRepo.GetByID(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created prompt: %w", err)
	}
	return recordToPrompt(created), nil
}

// GetPrompt retrieves a prompt by ID.
func (s *PromptServiceImpl) GetPrompt(ctx context.Context, promptID string) (*primary.Prompt, error) {
	record, err := s.promptRepo.GetByID(ctx, promptID)
	if err != nil {
		return nil, err
	}
	return recordToPrompt(record), nil
}

// ListPrompts retrieves prompts, most used first, optionally filtered.
func (s *PromptServiceImpl) ListPrompts(ctx context.Context, filters primary.PromptListFilters) ([]*primary.Prompt, error) {
	records, err := s.promptRepo.List(ctx, secondary.PromptFilters{
		Category:    filters.Category,
		FrameworkID: filters.FrameworkID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}

	prompts := make([]*primary.Prompt, len(records))
	for i, r := range records {
		prompts[i] = recordToPrompt(r)
	}
	return prompts, nil
}

// UpdatePrompt applies a partial update.
func (s *PromptServiceImpl) UpdatePrompt(ctx context.Context, promptID string, req primary.UpdatePromptRequest) (*primary.Prompt, error) {
	if req.FrameworkID != nil && *req.FrameworkID != "" {
		frameworkExists, err := s.frameworkRepo.Exists(ctx, *req.FrameworkID)
		if err != nil {
			return nil, fmt.Errorf("failed to check framework: %w", err)
		}
		if !frameworkExists {
			return nil, fmt.Errorf("framework %s not found", *req.FrameworkID)
		}
	}

	err := s.promptRepo.Update(ctx, promptID, secondary.PromptUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PromptText:  req.PromptText,
		Variables:   req.Variables,
		FrameworkID: req.FrameworkID,
		IsFavorite:  req.IsFavorite,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.promptRepo.GetByID(ctx, promptID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated prompt: %w", err)
	}
	return recordToPrompt(updated), nil
}

// DeletePrompt deletes a custom prompt.
func (s *PromptServiceImpl) DeletePrompt(ctx context.Context, promptID string) error {
	record, err := s.promptRepo.GetByID(ctx, promptID)
	if err != nil {
		return err
	}

	if err := catalog.CanDeleteEntry(catalog.DeleteEntryContext{
		Kind:      "prompt",
		ID:        promptID,
		IsBuiltin: record.IsBuiltin,
	}).Error(); err != nil {
		return err
	}

	return s.promptRepo.Delete(ctx, promptID)
}

// UsePrompt bumps a prompt's usage counter and returns it.
func (s *PromptServiceImpl) UsePrompt(ctx context.Context, promptID string) (*primary.Prompt, error) {
	if err := s.promptRepo.IncrementUsage(ctx, promptID); err != nil {
		return nil, err
	}

	record, err := s.promptRepo.GetByID(ctx, promptID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prompt: %w", err)
	}
	return recordToPrompt(record), nil
}

// DuplicatePrompt copies a prompt into a custom one named newName, slotted
// directly after the source. The copy is never builtin, even when the source
// is, and starts with a fresh usage count.
func (s *PromptServiceImpl) DuplicatePrompt(ctx context.Context, promptID, newName string) (*primary.Prompt, error) {
	source, err := s.promptRepo.GetByID(ctx, promptID)
	if err != nil {
		return nil, err
	}

	slug := catalog.Slugify(newName)

	exists := false
	if slug != "" {
		exists, err = s.promptRepo.Exists(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check prompt id: %w", err)
		}
	}

	if err := catalog.CanCreateEntry(catalog.CreateEntryContext{
		Kind:       "prompt",
		Slug:       slug,
		SlugExists: exists,
	}).Error(); err != nil {
		return nil, err
	}

	record := &secondary.PromptRecord{
		ID:          slug,
		Name:        newName,
		Description: source.Description,
		Category:    source.Category,
		PromptText:  source.PromptText,
		Variables:   source.Variables,
		FrameworkID: source.FrameworkID,
		IsBuiltin:   false,
		SortOrder:   source.SortOrder + 1,
	}
	if err := s.promptRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to duplicate prompt: %w", err)
	}

	created, err := s.promptRepo.GetByID(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch duplicated prompt: %w", err)
	}
	return recordToPrompt(created), nil
}

// SearchPrompts finds prompts by name, description, or body substring.
func (s *PromptServiceImpl) SearchPrompts(ctx context.Context, term string) ([]*primary.Prompt, error) {
	records, err := s.promptRepo.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search prompts: %w", err)
	}

	prompts := make([]*primary.Prompt, len(records))
	for i, r := range records {
		prompts[i] = recordToPrompt(r)
	}
	return prompts, nil
}

func recordToPrompt(r *secondary.PromptRecord) *primary.Prompt {
	return &primary.Prompt{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		PromptText:  r.PromptText,
		Variables:   r.Variables,
		FrameworkID: r.FrameworkID,
		IsBuiltin:   r.IsBuiltin,
		IsFavorite:  r.IsFavorite,
		UsageCount:  r.UsageCount,
		SortOrder:   r.SortOrder,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Ensure PromptServiceImpl implements the interface.
var _ primary.PromptService = (*PromptServiceImpl)(nil)
