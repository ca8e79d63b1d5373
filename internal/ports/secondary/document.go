package secondary

import "context"

// ContextDocumentRepository defines the secondary port for context document
// persistence.
type ContextDocumentRepository interface {
	// Create persists a new context document.
	Create(ctx context.Context, doc *ContextDocumentRecord) error

	// GetByID retrieves a context document by its ID.
	GetByID(ctx context.Context, id string) (*ContextDocumentRecord, error)

	// List retrieves documents matching the given filters, ordered by
	// sort_order, name.
	List(ctx context.Context, filters DocumentFilters) ([]*ContextDocumentRecord, error)

	// Update applies a partial update; nil fields keep previous values.
	// size_bytes is fixed at creation and never recomputed.
	Update(ctx context.Context, id string, upd DocumentUpdate) error

	// Delete removes a context document from persistence.
	Delete(ctx context.Context, id string) error
}

// ContextDocumentRecord represents a context document as stored in
// persistence.
type ContextDocumentRecord struct {
	ID         string
	ProjectID  string
	Name       string
	DocType    string
	Content    string
	URL        string // Empty string means null
	IsGlobal   bool
	SizeBytes  int64 // byte length of content at creation
	FolderID   string
	Tags       []string // JSON-encoded in storage
	IsFavorite bool
	SortOrder  int
	CreatedAt  string
	UpdatedAt  string
}

// DocumentUpdate contains the partial-update fields for a context document.
// Nil pointers leave the stored value unchanged.
type DocumentUpdate struct {
	Name      *string
	DocType   *string
	Content   *string
	URL       *string
	IsGlobal  *bool
	Tags      *[]string
	SortOrder *int
}

// DocumentFilters contains filter options for querying context documents.
type DocumentFilters struct {
	ProjectID  string
	FolderID   string
	DocType    string
	GlobalOnly bool
}

// FrameworkOutputRepository defines the secondary port for framework output
// persistence.
type FrameworkOutputRepository interface {
	// Create persists a new framework output.
	Create(ctx context.Context, output *FrameworkOutputRecord) error

	// GetByID retrieves a framework output by its ID.
	GetByID(ctx context.Context, id string) (*FrameworkOutputRecord, error)

	// List retrieves outputs matching the given filters, ordered by
	// created_at descending.
	List(ctx context.Context, filters OutputFilters) ([]*FrameworkOutputRecord, error)

	// Update applies a partial update; nil fields keep previous values.
	Update(ctx context.Context, id string, upd OutputUpdate) error

	// Delete removes a framework output from persistence.
	Delete(ctx context.Context, id string) error
}

// FrameworkOutputRecord represents a framework output as stored in
// persistence. ContextDocIDs reference context documents by id but are not
// enforced as foreign keys.
type FrameworkOutputRecord struct {
	ID               string
	ProjectID        string
	Name             string
	FrameworkID      string
	Category         string
	UserPrompt       string
	ContextDocIDs    []string // JSON-encoded in storage
	GeneratedContent string
	Format           string
	FolderID         string
	Tags             []string // JSON-encoded in storage
	IsFavorite       bool
	SortOrder        int
	CreatedAt        string
	UpdatedAt        string
}

// OutputUpdate contains the partial-update fields for a framework output.
// Nil pointers leave the stored value unchanged.
type OutputUpdate struct {
	Name             *string
	GeneratedContent *string
	Format           *string
	Tags             *[]string
	SortOrder        *int
}

// OutputFilters contains filter options for querying framework outputs.
type OutputFilters struct {
	ProjectID   string
	FrameworkID string
	Category    string
	FolderID    string
}
