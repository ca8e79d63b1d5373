package secondary

import "context"

// FolderRepository defines the secondary port for folder tree persistence.
type FolderRepository interface {
	// Create persists a new folder.
	Create(ctx context.Context, folder *FolderRecord) error

	// GetByID retrieves a folder by its ID.
	GetByID(ctx context.Context, id string) (*FolderRecord, error)

	// ListByProject retrieves a project's folders ordered by sort_order,
	// name.
	ListByProject(ctx context.Context, projectID string) ([]*FolderRecord, error)

	// Update applies a partial update; nil fields keep previous values.
	// A non-nil ParentID pointing at an empty string moves the folder to
	// the root.
	Update(ctx context.Context, id string, upd FolderUpdate) error

	// Ancestors returns the ancestor chain of a folder, starting at the
	// folder itself and walking parent links up to the root.
	Ancestors(ctx context.Context, id string) ([]string, error)

	// Delete detaches every context document and framework output filed
	// in the folder (folder_id set to NULL), then removes the folder.
	// Both steps run in one transaction. Descendant folders cascade-delete
	// through the schema's referential actions, which also detach their
	// items.
	Delete(ctx context.Context, id string) error
}

// FolderRecord represents a folder as stored in persistence.
type FolderRecord struct {
	ID        string
	ProjectID string
	ParentID  string // Empty string means root
	Name      string
	Color     string // Empty string means null
	SortOrder int
	CreatedAt string
	UpdatedAt string
}

// FolderUpdate contains the partial-update fields for a folder.
// Nil pointers leave the stored value unchanged.
type FolderUpdate struct {
	Name      *string
	Color     *string
	SortOrder *int
	ParentID  *string // nil = leave, "" = move to root, id = reparent
}
