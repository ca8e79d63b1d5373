package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// validRoles are the transcript roles the schema accepts.
var validRoles = map[string]bool{
	"user":      true,
	"assistant": true,
	"system":    true,
}

// ConversationServiceImpl implements the ConversationService interface.
type ConversationServiceImpl struct {
	conversationRepo secondary.ConversationRepository
	messageRepo      secondary.MessageRepository
}

// NewConversationService creates a new ConversationService with injected
// dependencies.
func NewConversationService(conversationRepo secondary.ConversationRepository, messageRepo secondary.MessageRepository) *ConversationServiceImpl {
	return &ConversationServiceImpl{
		conversationRepo: conversationRepo,
		messageRepo:      messageRepo,
	}
}

// CreateConversation opens a transcript container under a project.
func (s *ConversationServiceImpl) CreateConversation(ctx context.Context, req primary.CreateConversationRequest) (*primary.Conversation, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("conversation title must not be empty")
	}

	record := &secondary.ConversationRecord{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Title:     req.Title,
	}
	if err := s.conversationRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	created, err := s.conversationRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created conversation: %w", err)
	}
	return recordToConversation(created), nil
}

// GetConversation retrieves a conversation by ID.
func (s *ConversationServiceImpl) GetConversation(ctx context.Context, conversationID string) (*primary.Conversation, error) {
	record, err := s.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	return recordToConversation(record), nil
}

// ListConversations retrieves a project's conversations, most recently
// updated first.
func (s *ConversationServiceImpl) ListConversations(ctx context.Context, projectID string) ([]*primary.Conversation, error) {
	records, err := s.conversationRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	conversations := make([]*primary.Conversation, len(records))
	for i, r := range records {
		conversations[i] = recordToConversation(r)
	}
	return conversations, nil
}

// AppendMessage records a message and refreshes the conversation's
// denormalized counters.
func (s *ConversationServiceImpl) AppendMessage(ctx context.Context, req primary.AppendMessageRequest) (*primary.Message, error) {
	if !validRoles[req.Role] {
		return nil, fmt.Errorf("invalid message role '%s' (expected user, assistant, or system)", req.Role)
	}

	conversation, err := s.conversationRepo.GetByID(ctx, req.ConversationID)
	if err != nil {
		return nil, err
	}

	record := &secondary.MessageRecord{
		ID:             uuid.NewString(),
		ConversationID: req.ConversationID,
		Role:           req.Role,
		Content:        req.Content,
	}
	if err := s.messageRepo.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}

	err = s.conversationRepo.UpdateStats(ctx, req.ConversationID,
		conversation.MessageCount+1, conversation.TokenCount+req.TokenCount)
	if err != nil {
		return nil, fmt.Errorf("failed to update conversation stats: %w", err)
	}

	messages, err := s.messageRepo.ListByConversation(ctx, req.ConversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appended message: %w", err)
	}
	for _, m := range messages {
		if m.ID == record.ID {
			return recordToMessage(m), nil
		}
	}
	return nil, fmt.Errorf("message %s not found after append", record.ID)
}

// ListMessages retrieves a conversation's transcript in order.
func (s *ConversationServiceImpl) ListMessages(ctx context.Context, conversationID string) ([]*primary.Message, error) {
	records, err := s.messageRepo.ListByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*primary.Message, len(records))
	for i, r := range records {
		messages[i] = recordToMessage(r)
	}
	return messages, nil
}

// DeleteConversation removes a conversation and its messages.
func (s *ConversationServiceImpl) DeleteConversation(ctx context.Context, conversationID string) error {
	return s.conversationRepo.Delete(ctx, conversationID)
}

func recordToConversation(r *secondary.ConversationRecord) *primary.Conversation {
	return &primary.Conversation{
		ID:           r.ID,
		ProjectID:    r.ProjectID,
		Title:        r.Title,
		MessageCount: r.MessageCount,
		TokenCount:   r.TokenCount,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func recordToMessage(r *secondary.MessageRecord) *primary.Message {
	return &primary.Message{
		ID:             r.ID,
		ConversationID: r.ConversationID,
		Role:           r.Role,
		Content:        r.Content,
		CreatedAt:      r.CreatedAt,
	}
}

// Ensure ConversationServiceImpl implements the interface.
var _ primary.ConversationService = (*ConversationServiceImpl)(nil)
