package secondary

import "context"

// ConversationRepository defines the secondary port for conversation
// persistence.
type ConversationRepository interface {
	// Create persists a new conversation.
	Create(ctx context.Context, conversation *ConversationRecord) error

	// GetByID retrieves a conversation by its ID.
	GetByID(ctx context.Context, id string) (*ConversationRecord, error)

	// ListByProject retrieves a project's conversations ordered by
	// updated_at descending.
	ListByProject(ctx context.Context, projectID string) ([]*ConversationRecord, error)

	// UpdateStats updates the denormalized message and token counters.
	UpdateStats(ctx context.Context, id string, messageCount, tokenCount int) error

	// Delete removes a conversation; its messages cascade.
	Delete(ctx context.Context, id string) error
}

// ConversationRecord represents a conversation as stored in persistence.
type ConversationRecord struct {
	ID           string
	ProjectID    string
	Title        string
	MessageCount int
	TokenCount   int
	CreatedAt    string
	UpdatedAt    string
}

// MessageRepository defines the secondary port for transcript messages.
type MessageRepository interface {
	// Append persists a new message.
	Append(ctx context.Context, message *MessageRecord) error

	// ListByConversation retrieves a conversation's messages in insertion
	// order.
	ListByConversation(ctx context.Context, conversationID string) ([]*MessageRecord, error)
}

// MessageRecord represents a transcript message as stored in persistence.
type MessageRecord struct {
	ID             string
	ConversationID string
	Role           string // user, assistant, or system
	Content        string
	CreatedAt      string
}

// TokenUsageRepository defines the secondary port for the token-usage
// ledger. Callers record counts and costs after the fact; the store never
// talks to a model provider.
type TokenUsageRepository interface {
	// Record persists a usage entry.
	Record(ctx context.Context, usage *TokenUsageRecord) error

	// List retrieves all usage entries ordered by created_at descending.
	List(ctx context.Context) ([]*TokenUsageRecord, error)

	// ListByDateRange retrieves usage entries between two RFC3339
	// timestamps (inclusive), ordered by created_at descending.
	ListByDateRange(ctx context.Context, from, to string) ([]*TokenUsageRecord, error)
}

// TokenUsageRecord represents a token-usage entry as stored in persistence.
type TokenUsageRecord struct {
	ID             string
	ProjectID      string // Empty string means null
	ConversationID string // Empty string means null
	Model          string
	InputTokens    int
	OutputTokens   int
	Cost           float64
	CreatedAt      string
}
