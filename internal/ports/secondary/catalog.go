// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// CategoryRepository defines the secondary port for framework category
// persistence.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *CategoryRecord) error

	// GetByID retrieves a category by its ID.
	GetByID(ctx context.Context, id string) (*CategoryRecord, error)

	// List retrieves all categories ordered by sort_order, name.
	List(ctx context.Context) ([]*CategoryRecord, error)

	// Update applies a partial update; nil fields keep previous values.
	Update(ctx context.Context, id string, upd CategoryUpdate) error

	// Delete removes a category from persistence.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a category with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)

	// MaxSortOrder returns the highest sort_order, or -1 when empty.
	MaxSortOrder(ctx context.Context) (int, error)

	// CountDefinitions returns the number of framework definitions
	// attached to a category.
	CountDefinitions(ctx context.Context, categoryID string) (int, error)

	// Search retrieves categories whose name or description contains the
	// term (case-insensitive), ordered by sort_order.
	Search(ctx context.Context, term string) ([]*CategoryRecord, error)
}

// CategoryRecord represents a framework category as stored in persistence.
type CategoryRecord struct {
	ID          string
	Name        string
	Description string // Empty string means null
	Icon        string // Empty string means null
	IsBuiltin   bool
	SortOrder   int
	CreatedAt   string
	UpdatedAt   string
}

// CategoryUpdate contains the partial-update fields for a category.
// Nil pointers leave the stored value unchanged.
type CategoryUpdate struct {
	Name        *string
	Description *string
	Icon        *string
	SortOrder   *int
}

// FrameworkRepository defines the secondary port for framework definition
// persistence.
type FrameworkRepository interface {
	// Create persists a new framework definition.
	Create(ctx context.Context, framework *FrameworkRecord) error

	// GetByID retrieves a framework definition by its ID.
	GetByID(ctx context.Context, id string) (*FrameworkRecord, error)

	// List retrieves definitions matching the given filters, ordered by
	// sort_order.
	List(ctx context.Context, filters FrameworkFilters) ([]*FrameworkRecord, error)

	// Update applies a partial update; nil fields keep previous values.
	Update(ctx context.Context, id string, upd FrameworkUpdate) error

	// Delete removes a framework definition from persistence.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a definition with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)

	// MaxSortOrder returns the highest sort_order within a category, or
	// -1 when the category holds no definitions.
	MaxSortOrder(ctx context.Context, category string) (int, error)

	// ResetContent overwrites only the seed-owned content fields.
	ResetContent(ctx context.Context, id string, content FrameworkSeedContent) error

	// Search retrieves definitions whose name or description contains the
	// term (case-insensitive), ordered by sort_order.
	Search(ctx context.Context, term string) ([]*FrameworkRecord, error)
}

// FrameworkRecord represents a framework definition as stored in persistence.
type FrameworkRecord struct {
	ID                 string
	Category           string
	Name               string
	Description        string
	Icon               string
	ExampleOutput      string
	SystemPrompt       string
	GuidingQuestions   []string // JSON-encoded in storage
	SupportsVisuals    bool
	VisualInstructions string // Empty string means null
	IsBuiltin          bool
	SortOrder          int
	CreatedAt          string
	UpdatedAt          string
}

// FrameworkUpdate contains the partial-update fields for a framework
// definition. Nil pointers leave the stored value unchanged.
type FrameworkUpdate struct {
	Category           *string
	Name               *string
	Description        *string
	Icon               *string
	ExampleOutput      *string
	SystemPrompt       *string
	GuidingQuestions   *[]string
	SupportsVisuals    *bool
	VisualInstructions *string
	SortOrder          *int
}

// FrameworkSeedContent holds the content fields restored by a reset. The
// structural fields (category, name, icon, sort_order) are never touched.
type FrameworkSeedContent struct {
	SystemPrompt       string
	GuidingQuestions   []string
	ExampleOutput      string
	VisualInstructions string
}

// FrameworkFilters contains filter options for querying framework
// definitions.
type FrameworkFilters struct {
	Category string
}

// PromptRepository defines the secondary port for saved prompt persistence.
type PromptRepository interface {
	// Create persists a new saved prompt.
	Create(ctx context.Context, prompt *PromptRecord) error

	// GetByID retrieves a saved prompt by its ID.
	GetByID(ctx context.Context, id string) (*PromptRecord, error)

	// List retrieves prompts matching the given filters, ordered by
	// usage_count descending then name.
	List(ctx context.Context, filters PromptFilters) ([]*PromptRecord, error)

	// Update applies a partial update; nil fields keep previous values.
	Update(ctx context.Context, id string, upd PromptUpdate) error

	// Delete removes a saved prompt from persistence.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a prompt with the given id exists.
	Exists(ctx context.Context, id string) (bool, error)

	// MaxSortOrder returns the highest sort_order, or -1 when empty.
	MaxSortOrder(ctx context.Context) (int, error)

	// IncrementUsage bumps the usage counter by one.
	IncrementUsage(ctx context.Context, id string) error

	// Search retrieves prompts whose name, description, or prompt text
	// contains the term (case-insensitive), ordered by usage_count
	// descending then name.
	Search(ctx context.Context, term string) ([]*PromptRecord, error)
}

// PromptRecord represents a saved prompt as stored in persistence.
type PromptRecord struct {
	ID          string
	Name        string
	Description string
	Category    string
	PromptText  string
	Variables   []string // JSON-encoded in storage
	FrameworkID string   // Empty string means null
	IsBuiltin   bool
	IsFavorite  bool
	UsageCount  int
	SortOrder   int
	CreatedAt   string
	UpdatedAt   string
}

// PromptUpdate contains the partial-update fields for a saved prompt.
// Nil pointers leave the stored value unchanged.
type PromptUpdate struct {
	Name        *string
	Description *string
	Category    *string
	PromptText  *string
	Variables   *[]string
	FrameworkID *string // Pointer to empty string clears the link
	IsFavorite  *bool
	SortOrder   *int
}

// PromptFilters contains filter options for querying saved prompts.
type PromptFilters struct {
	Category    string
	FrameworkID string
}
