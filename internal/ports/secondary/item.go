package secondary

import "context"

// ItemRepository defines the secondary port for the cross-table tagged-item
// index over context documents and framework outputs.
type ItemRepository interface {
	// Search unions both item kinds into one result shape, matching the
	// term against name or tags (case-insensitive substring), ordered by
	// name.
	Search(ctx context.Context, projectID, term string) ([]*ItemSearchRecord, error)

	// ToggleFavorite sets the favorite flag on the underlying table for
	// the given kind ("context_doc" or "framework_output").
	ToggleFavorite(ctx context.Context, kind, id string, value bool) error

	// MoveToFolder reassigns a single item to a folder; an empty folderID
	// clears the assignment.
	MoveToFolder(ctx context.Context, kind, id, folderID string) error
}

// ItemSearchRecord is the unioned result shape for foldered items. Fields
// not applicable to a kind are empty.
type ItemSearchRecord struct {
	ID         string
	Name       string
	Kind       string // "context_doc" or "framework_output"
	FolderID   string // Empty string means unfiled
	Category   string // framework outputs only
	DocType    string // context documents only
	IsFavorite bool
	CreatedAt  string
}
