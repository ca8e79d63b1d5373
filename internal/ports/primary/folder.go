package primary

import "context"

// FolderService defines the primary port for folder tree operations.
type FolderService interface {
	// CreateFolder creates a folder, optionally nested under a parent.
	CreateFolder(ctx context.Context, req CreateFolderRequest) (*Folder, error)

	// GetFolder retrieves a folder by ID.
	GetFolder(ctx context.Context, folderID string) (*Folder, error)

	// ListFolders retrieves a project's folders ordered by sort order.
	ListFolders(ctx context.Context, projectID string) ([]*Folder, error)

	// UpdateFolder applies a partial update. Parent reassignment is
	// tri-state: nil leaves it, empty string moves to root, an id
	// reparents (rejected when it would create a cycle).
	UpdateFolder(ctx context.Context, folderID string, req UpdateFolderRequest) (*Folder, error)

	// DeleteFolder removes a folder, unfiling its items first. Descendant
	// folders go with it; their items survive unfiled.
	DeleteFolder(ctx context.Context, folderID string) error

	// MoveItem files an item into a folder; an empty folderID unfiles it.
	MoveItem(ctx context.Context, req MoveItemRequest) error
}

// CreateFolderRequest contains parameters for creating a folder.
type CreateFolderRequest struct {
	ProjectID string
	Name      string
	ParentID  string // empty means root
	Color     string
}

// UpdateFolderRequest contains the partial-update fields for a folder.
// Nil pointers leave the stored value unchanged.
type UpdateFolderRequest struct {
	Name      *string
	Color     *string
	SortOrder *int
	ParentID  *string // nil: leave; "": move to root; id: reparent
}

// MoveItemRequest identifies an item and its destination folder.
type MoveItemRequest struct {
	Kind     string // "context_doc" or "framework_output"
	ItemID   string
	FolderID string // empty unfiles the item
}

// Folder represents a folder at the port boundary.
type Folder struct {
	ID        string
	ProjectID string
	ParentID  string
	Name      string
	Color     string
	SortOrder int
	CreatedAt string
	UpdatedAt string
}
