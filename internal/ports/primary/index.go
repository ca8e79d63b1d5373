package primary

import "context"

// ItemService defines the primary port for the cross-kind item index.
type ItemService interface {
	// SearchItems unions context documents and framework outputs matching
	// the term by name or tag, ordered by name.
	SearchItems(ctx context.Context, projectID, term string) ([]*Item, error)

	// ToggleFavorite sets an item's favorite flag.
	ToggleFavorite(ctx context.Context, req ToggleFavoriteRequest) error
}

// ToggleFavoriteRequest identifies an item and the flag value to set.
type ToggleFavoriteRequest struct {
	Kind   string // "context_doc" or "framework_output"
	ItemID string
	Value  bool
}

// Item is the unioned search result shape. Category applies only to
// framework outputs, DocType only to context documents.
type Item struct {
	ID         string
	Name       string
	Kind       string
	FolderID   string
	Category   string
	DocType    string
	IsFavorite bool
	CreatedAt  string
}
