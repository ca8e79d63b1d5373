package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// UsageServiceImpl implements the UsageService interface.
type UsageServiceImpl struct {
	usageRepo secondary.TokenUsageRepository
}

// NewUsageService creates a new UsageService with injected dependencies.
func NewUsageService(usageRepo secondary.TokenUsageRepository) *UsageServiceImpl {
	return &UsageServiceImpl{
		usageRepo: usageRepo,
	}
}

// RecordUsage persists a usage entry. Project and conversation references
// are optional; dangling references are stored as given.
func (s *UsageServiceImpl) RecordUsage(ctx context.Context, req primary.RecordUsageRequest) (*primary.Usage, error) {
	if req.Model == "" {
		return nil, fmt.Errorf("usage model must not be empty")
	}
	if req.InputTokens < 0 || req.OutputTokens < 0 {
		return nil, fmt.Errorf("token counts must not be negative")
	}

	record := &secondary.TokenUsageRecord{
		ID:             uuid.NewString(),
		ProjectID:      req.ProjectID,
		ConversationID: req.ConversationID,
		Model:          req.Model,
		InputTokens:    req.InputTokens,
		OutputTokens:   req.OutputTokens,
		Cost:           req.Cost,
	}
	if err := s.usageRepo.Record(ctx, record); err != nil {
		return nil, err
	}

	return &primary.Usage{
		ID:             record.ID,
		ProjectID:      record.ProjectID,
		ConversationID: record.ConversationID,
		Model:          record.Model,
		InputTokens:    record.InputTokens,
		OutputTokens:   record.OutputTokens,
		Cost:           record.Cost,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ListUsage retrieves usage entries, optionally bounded by RFC3339
// timestamps. Empty bounds mean unbounded.
func (s *UsageServiceImpl) ListUsage(ctx context.Context, from, to string) ([]*primary.Usage, error) {
	var (
		records []*secondary.TokenUsageRecord
		err     error
	)
	if from == "" && to == "" {
		records, err = s.usageRepo.List(ctx)
	} else {
		if from == "" {
			from = "0001-01-01T00:00:00Z"
		}
		if to == "" {
			to = "9999-12-31T23:59:59Z"
		}
		records, err = s.usageRepo.ListByDateRange(ctx, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list usage: %w", err)
	}

	usage := make([]*primary.Usage, len(records))
	for i, r := range records {
		usage[i] = &primary.Usage{
			ID:             r.ID,
			ProjectID:      r.ProjectID,
			ConversationID: r.ConversationID,
			Model:          r.Model,
			InputTokens:    r.InputTokens,
			OutputTokens:   r.OutputTokens,
			Cost:           r.Cost,
			CreatedAt:      r.CreatedAt,
		}
	}
	return usage, nil
}

// Ensure UsageServiceImpl implements the interface.
var _ primary.UsageService = (*UsageServiceImpl)(nil)
