package secondary

import "context"

// ProjectRepository defines the secondary port for project persistence.
type ProjectRepository interface {
	// Create persists a new project.
	Create(ctx context.Context, project *ProjectRecord) error

	// GetByID retrieves a project by its ID.
	GetByID(ctx context.Context, id string) (*ProjectRecord, error)

	// List retrieves all projects ordered by updated_at descending.
	List(ctx context.Context) ([]*ProjectRecord, error)

	// Update applies a partial update; nil fields keep previous values.
	Update(ctx context.Context, id string, upd ProjectUpdate) error

	// Delete removes a project; project-owned rows cascade.
	Delete(ctx context.Context, id string) error
}

// ProjectRecord represents a project as stored in persistence.
type ProjectRecord struct {
	ID          string
	Name        string
	Description string // Empty string means null
	CreatedAt   string
	UpdatedAt   string
}

// ProjectUpdate contains the partial-update fields for a project.
// Nil pointers leave the stored value unchanged.
type ProjectUpdate struct {
	Name        *string
	Description *string
}
