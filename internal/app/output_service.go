package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// OutputServiceImpl implements the OutputService interface.
type OutputServiceImpl struct {
	outputRepo    secondary.FrameworkOutputRepository
	frameworkRepo secondary.FrameworkRepository
}

// NewOutputService creates a new OutputService with injected dependencies.
func NewOutputService(outputRepo secondary.FrameworkOutputRepository, frameworkRepo secondary.FrameworkRepository) *OutputServiceImpl {
	return &OutputServiceImpl{
		outputRepo:    outputRepo,
		frameworkRepo: frameworkRepo,
	}
}

// CreateOutput stores a generated framework output. The referenced
// definition's category is denormalized onto the row so outputs keep their
// grouping even if the definition later changes or disappears.
func (s *OutputServiceImpl) CreateOutput(ctx context.Context, req primary.CreateOutputRequest) (*primary.Output, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("output name must not be empty")
	}
	if req.FrameworkID == "" {
		return nil, fmt.Errorf("output framework must not be empty")
	}

	category := req.Category
	if category == "" {
		framework, err := s.frameworkRepo.GetByID(ctx, req.FrameworkID)
		if err == nil {
			category = framework.Category
		}
	}

	format := req.Format
	if format == "" {
		format = "markdown"
	}

	record := &secondary.FrameworkOutputRecord{
		ID:               uuid.NewString(),
		ProjectID:        req.ProjectID,
		Name:             req.Name,
		FrameworkID:      req.FrameworkID,
		Category:         category,
		UserPrompt:       req.UserPrompt,
		ContextDocIDs:    req.ContextDocIDs,
		GeneratedContent: req.GeneratedContent,
		Format:           format,
		FolderID:         req.FolderID,
		Tags:             req.Tags,
	}
	if err := s.outputRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create output: %w", err)
	}

	created, err := s.outputRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created output: %w", err)
	}
	return recordToOutput(created), nil
}

// GetOutput retrieves an output by ID.
func (s *OutputServiceImpl) GetOutput(ctx context.Context, outputID string) (*primary.Output, error) {
	record, err := s.outputRepo.GetByID(ctx, outputID)
	if err != nil {
		return nil, err
	}
	return recordToOutput(record), nil
}

// ListOutputs retrieves outputs matching the filters, newest first.
func (s *OutputServiceImpl) ListOutputs(ctx context.Context, filters primary.OutputListFilters) ([]*primary.Output, error) {
	records, err := s.outputRepo.List(ctx, secondary.OutputFilters{
		ProjectID:   filters.ProjectID,
		FrameworkID: filters.FrameworkID,
		Category:    filters.Category,
		FolderID:    filters.FolderID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list outputs: %w", err)
	}

	outputs := make([]*primary.Output, len(records))
	for i, r := range records {
		outputs[i] = recordToOutput(r)
	}
	return outputs, nil
}

// UpdateOutput applies a partial update.
func (s *OutputServiceImpl) UpdateOutput(ctx context.Context, outputID string, req primary.UpdateOutputRequest) (*primary.Output, error) {
	err := s.outputRepo.Update(ctx, outputID, secondary.OutputUpdate{
		Name:             req.Name,
		GeneratedContent: req.GeneratedContent,
		Format:           req.Format,
		Tags:             req.Tags,
		SortOrder:        req.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.outputRepo.GetByID(ctx, outputID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated output: %w", err)
	}
	return recordToOutput(updated), nil
}

// DeleteOutput removes an output.
func (s *OutputServiceImpl) DeleteOutput(ctx context.Context, outputID string) error {
	return s.outputRepo.Delete(ctx, outputID)
}

func recordToOutput(r *secondary.FrameworkOutputRecord) *primary.Output {
	return &primary.Output{
		ID:               r.ID,
		ProjectID:        r.ProjectID,
		Name:             r.Name,
		FrameworkID:      r.FrameworkID,
		Category:         r.Category,
		UserPrompt:       r.UserPrompt,
		ContextDocIDs:    r.ContextDocIDs,
		GeneratedContent: r.GeneratedContent,
		Format:           r.Format,
		FolderID:         r.FolderID,
		Tags:             r.Tags,
		IsFavorite:       r.IsFavorite,
		SortOrder:        r.SortOrder,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// Ensure OutputServiceImpl implements the interface.
var _ primary.OutputService = (*OutputServiceImpl)(nil)
