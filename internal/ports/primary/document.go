package primary

import "context"

// DocumentService defines the primary port for context document operations.
type DocumentService interface {
	// CreateDocument creates a context document; size_bytes is fixed from
	// the content at creation.
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (*Document, error)

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, documentID string) (*Document, error)

	// ListDocuments retrieves documents matching the filters.
	ListDocuments(ctx context.Context, filters DocumentListFilters) ([]*Document, error)

	// UpdateDocument applies a partial update; size_bytes never changes.
	UpdateDocument(ctx context.Context, documentID string, req UpdateDocumentRequest) (*Document, error)

	// DeleteDocument removes a document.
	DeleteDocument(ctx context.Context, documentID string) error
}

// CreateDocumentRequest contains parameters for creating a context document.
type CreateDocumentRequest struct {
	ProjectID string
	Name      string
	DocType   string
	Content   string
	URL       string
	IsGlobal  bool
	FolderID  string
	Tags      []string
}

// UpdateDocumentRequest contains the partial-update fields for a document.
// Nil pointers leave the stored value unchanged.
type UpdateDocumentRequest struct {
	Name      *string
	DocType   *string
	Content   *string
	URL       *string
	IsGlobal  *bool
	Tags      *[]string
	SortOrder *int
}

// DocumentListFilters contains filter options for listing documents.
type DocumentListFilters struct {
	ProjectID  string
	FolderID   string
	DocType    string
	GlobalOnly bool
}

// Document represents a context document at the port boundary.
type Document struct {
	ID         string
	ProjectID  string
	Name       string
	DocType    string
	Content    string
	URL        string
	IsGlobal   bool
	SizeBytes  int64
	FolderID   string
	Tags       []string
	IsFavorite bool
	SortOrder  int
	CreatedAt  string
	UpdatedAt  string
}

// OutputService defines the primary port for framework output operations.
type OutputService interface {
	// CreateOutput stores a generated framework output.
	CreateOutput(ctx context.Context, req CreateOutputRequest) (*Output, error)

	// GetOutput retrieves an output by ID.
	GetOutput(ctx context.Context, outputID string) (*Output, error)

	// ListOutputs retrieves outputs matching the filters, newest first.
	ListOutputs(ctx context.Context, filters OutputListFilters) ([]*Output, error)

	// UpdateOutput applies a partial update.
	UpdateOutput(ctx context.Context, outputID string, req UpdateOutputRequest) (*Output, error)

	// DeleteOutput removes an output.
	DeleteOutput(ctx context.Context, outputID string) error
}

// CreateOutputRequest contains parameters for storing a framework output.
// ContextDocIDs are kept as references only, not enforced as foreign keys.
type CreateOutputRequest struct {
	ProjectID        string
	Name             string
	FrameworkID      string
	Category         string
	UserPrompt       string
	ContextDocIDs    []string
	GeneratedContent string
	Format           string
	FolderID         string
	Tags             []string
}

// UpdateOutputRequest contains the partial-update fields for an output.
// Nil pointers leave the stored value unchanged.
type UpdateOutputRequest struct {
	Name             *string
	GeneratedContent *string
	Format           *string
	Tags             *[]string
	SortOrder        *int
}

// OutputListFilters contains filter options for listing outputs.
type OutputListFilters struct {
	ProjectID   string
	FrameworkID string
	Category    string
	FolderID    string
}

// Output represents a framework output at the port boundary.
type Output struct {
	ID               string
	ProjectID        string
	Name             string
	FrameworkID      string
	Category         string
	UserPrompt       string
	ContextDocIDs    []string
	GeneratedContent string
	Format           string
	FolderID         string
	Tags             []string
	IsFavorite       bool
	SortOrder        int
	CreatedAt        string
	UpdatedAt        string
}
