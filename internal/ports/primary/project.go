package primary

import "context"

// ProjectService defines the primary port for project operations.
type ProjectService interface {
	// CreateProject creates a new project.
	CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error)

	// GetProject retrieves a project by ID.
	GetProject(ctx context.Context, projectID string) (*Project, error)

	// ListProjects retrieves all projects, most recently updated first.
	ListProjects(ctx context.Context) ([]*Project, error)

	// UpdateProject applies a partial update.
	UpdateProject(ctx context.Context, projectID string, req UpdateProjectRequest) (*Project, error)

	// DeleteProject removes a project and everything it owns.
	DeleteProject(ctx context.Context, projectID string) error
}

// CreateProjectRequest contains parameters for creating a project.
type CreateProjectRequest struct {
	Name        string
	Description string
}

// UpdateProjectRequest contains the partial-update fields for a project.
// Nil pointers leave the stored value unchanged.
type UpdateProjectRequest struct {
	Name        *string
	Description *string
}

// Project represents a project at the port boundary.
type Project struct {
	ID          string
	Name        string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// ConversationService defines the primary port for the conversation ledger.
type ConversationService interface {
	// CreateConversation opens a transcript container under a project.
	CreateConversation(ctx context.Context, req CreateConversationRequest) (*Conversation, error)

	// GetConversation retrieves a conversation by ID.
	GetConversation(ctx context.Context, conversationID string) (*Conversation, error)

	// ListConversations retrieves a project's conversations, most recently
	// updated first.
	ListConversations(ctx context.Context, projectID string) ([]*Conversation, error)

	// AppendMessage records a message and refreshes the conversation's
	// denormalized counters.
	AppendMessage(ctx context.Context, req AppendMessageRequest) (*Message, error)

	// ListMessages retrieves a conversation's transcript in order.
	ListMessages(ctx context.Context, conversationID string) ([]*Message, error)

	// DeleteConversation removes a conversation and its messages.
	DeleteConversation(ctx context.Context, conversationID string) error
}

// CreateConversationRequest contains parameters for opening a conversation.
type CreateConversationRequest struct {
	ProjectID string
	Title     string
}

// AppendMessageRequest contains parameters for recording a message.
// TokenCount is the caller-supplied cost of this message; the store never
// talks to a model provider.
type AppendMessageRequest struct {
	ConversationID string
	Role           string // user, assistant, or system
	Content        string
	TokenCount     int
}

// Conversation represents a conversation at the port boundary.
type Conversation struct {
	ID           string
	ProjectID    string
	Title        string
	MessageCount int
	TokenCount   int
	CreatedAt    string
	UpdatedAt    string
}

// Message represents a transcript message at the port boundary.
type Message struct {
	ID             string
	ConversationID string
	Role           string
	Content        string
	CreatedAt      string
}

// UsageService defines the primary port for the token-usage ledger.
type UsageService interface {
	// RecordUsage persists a usage entry.
	RecordUsage(ctx context.Context, req RecordUsageRequest) (*Usage, error)

	// ListUsage retrieves usage entries, optionally bounded by RFC3339
	// timestamps. Empty bounds mean unbounded.
	ListUsage(ctx context.Context, from, to string) ([]*Usage, error)
}

// RecordUsageRequest contains parameters for recording token usage.
type RecordUsageRequest struct {
	ProjectID      string
	ConversationID string
	Model          string
	InputTokens    int
	OutputTokens   int
	Cost           float64
}

// Usage represents a token-usage entry at the port boundary.
type Usage struct {
	ID             string
	ProjectID      string
	ConversationID string
	Model          string
	InputTokens    int
	OutputTokens   int
	Cost           float64
	CreatedAt      string
}
