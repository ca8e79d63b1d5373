// Package primary defines the service interfaces and boundary types the CLI
// drives. Request structs carry caller input; entity structs are the
// presentation-ready shapes services return.
package primary

import "context"

// CategoryService defines the primary port for framework category operations.
type CategoryService interface {
	// CreateCategory creates a custom category with a slug derived from
	// its name.
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)

	// GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, categoryID string) (*Category, error)

	// ListCategories retrieves all categories ordered by sort order.
	ListCategories(ctx context.Context) ([]*Category, error)

	// UpdateCategory applies a partial update.
	UpdateCategory(ctx context.Context, categoryID string, req UpdateCategoryRequest) (*Category, error)

	// DeleteCategory deletes a custom, empty category. Builtin categories
	// and categories still holding definitions are protected.
	DeleteCategory(ctx context.Context, categoryID string) error

	// SearchCategories finds categories by name or description substring.
	SearchCategories(ctx context.Context, term string) ([]*Category, error)
}

// CreateCategoryRequest contains parameters for creating a category.
type CreateCategoryRequest struct {
	Name        string
	Description string
	Icon        string
}

// UpdateCategoryRequest contains the partial-update fields for a category.
// Nil pointers leave the stored value unchanged.
type UpdateCategoryRequest struct {
	Name        *string
	Description *string
	Icon        *string
	SortOrder   *int
}

// Category represents a framework category at the port boundary.
type Category struct {
	ID          string
	Name        string
	Description string
	Icon        string
	IsBuiltin   bool
	SortOrder   int
	CreatedAt   string
	UpdatedAt   string
}

// FrameworkService defines the primary port for framework definition
// operations.
type FrameworkService interface {
	// CreateFramework creates a custom definition with a slug derived from
	// its name (parentheses stripped).
	CreateFramework(ctx context.Context, req CreateFrameworkRequest) (*Framework, error)

	// GetFramework retrieves a definition by ID.
	GetFramework(ctx context.Context, frameworkID string) (*Framework, error)

	// ListFrameworks retrieves definitions, optionally scoped to a category.
	ListFrameworks(ctx context.Context, categoryID string) ([]*Framework, error)

	// UpdateFramework applies a partial update.
	UpdateFramework(ctx context.Context, frameworkID string, req UpdateFrameworkRequest) (*Framework, error)

	// DeleteFramework deletes a custom definition. Builtins are protected.
	DeleteFramework(ctx context.Context, frameworkID string) error

	// ResetFramework restores a builtin definition's content fields from
	// the bundled seed.
	ResetFramework(ctx context.Context, frameworkID string) (*Framework, error)

	// DuplicateFramework copies a definition into a custom one named
	// newName, slotted directly after the source.
	DuplicateFramework(ctx context.Context, frameworkID, newName string) (*Framework, error)

	// SearchFrameworks finds definitions by name or description substring.
	SearchFrameworks(ctx context.Context, term string) ([]*Framework, error)
}

// CreateFrameworkRequest contains parameters for creating a definition.
type CreateFrameworkRequest struct {
	Category         string
	Name             string
	Description      string
	Icon             string
	SystemPrompt     string
	GuidingQuestions []string
	ExampleOutput    string
}

// UpdateFrameworkRequest contains the partial-update fields for a definition.
// Nil pointers leave the stored value unchanged.
type UpdateFrameworkRequest struct {
	Category           *string
	Name               *string
	Description        *string
	Icon               *string
	SystemPrompt       *string
	GuidingQuestions   *[]string
	ExampleOutput      *string
	SupportsVisuals    *bool
	VisualInstructions *string
	SortOrder          *int
}

// Framework represents a framework definition at the port boundary.
type Framework struct {
	ID                 string
	Category           string
	Name               string
	Description        string
	Icon               string
	SystemPrompt       string
	GuidingQuestions   []string
	ExampleOutput      string
	SupportsVisuals    bool
	VisualInstructions string
	IsBuiltin          bool
	SortOrder          int
	CreatedAt          string
	UpdatedAt          string
}

// PromptService defines the primary port for saved prompt operations.
type PromptService interface {
	// CreatePrompt creates a custom prompt with a slug derived from its
	// name.
	CreatePrompt(ctx context.Context, req CreatePromptRequest) (*Prompt, error)

	// GetPrompt retrieves a prompt by ID.
	GetPrompt(ctx context.Context, promptID string) (*Prompt, error)

	// ListPrompts retrieves prompts, most used first, optionally filtered.
	ListPrompts(ctx context.Context, filters PromptListFilters) ([]*Prompt, error)

	// UpdatePrompt applies a partial update.
	UpdatePrompt(ctx context.Context, promptID string, req UpdatePromptRequest) (*Prompt, error)

	// DeletePrompt deletes a custom prompt. Builtins are protected.
	DeletePrompt(ctx context.Context, promptID string) error

	// UsePrompt bumps a prompt's usage counter and returns its text.
	UsePrompt(ctx context.Context, promptID string) (*Prompt, error)

	// DuplicatePrompt copies a prompt into a custom one named newName,
	// slotted directly after the source.
	DuplicatePrompt(ctx context.Context, promptID, newName string) (*Prompt, error)

	// SearchPrompts finds prompts by name, description, or body substring.
	SearchPrompts(ctx context.Context, term string) ([]*Prompt, error)
}

// CreatePromptRequest contains parameters for creating a saved prompt.
type CreatePromptRequest struct {
	Name        string
	Description string
	Category    string
	PromptText  string
	Variables   []string
	FrameworkID string
}

// UpdatePromptRequest contains the partial-update fields for a saved prompt.
// Nil pointers leave the stored value unchanged.
type UpdatePromptRequest struct {
	Name        *string
	Description *string
	Category    *string
	PromptText  *string
	Variables   *[]string
	FrameworkID *string
	IsFavorite  *bool
	SortOrder   *int
}

// PromptListFilters contains filter options for listing saved prompts.
type PromptListFilters struct {
	Category    string
	FrameworkID string
}

// Prompt represents a saved prompt at the port boundary.
type Prompt struct {
	ID          string
	Name        string
	Description string
	Category    string
	PromptText  string
	Variables   []string
	FrameworkID string
	IsBuiltin   bool
	IsFavorite  bool
	UsageCount  int
	SortOrder   int
	CreatedAt   string
	UpdatedAt   string
}
