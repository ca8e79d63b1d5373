package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/riverphoenix/ai-pm-ide/internal/core/item"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// ItemRepository implements secondary.ItemRepository with SQLite. It is the
// one adapter that spans two tables: context_documents and framework_outputs
// share the foldered-item columns the index operates on.
type ItemRepository struct {
	db *sql.DB
}

// NewItemRepository creates a new SQLite tagged-item index repository.
func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Search unions both item kinds into one result shape. The term matches
// name or the JSON-encoded tags column as a substring; tag matching is
// deliberately textual, the same contract the list columns carry elsewhere.
func (r *ItemRepository) Search(ctx context.Context, projectID, term string) ([]*secondary.ItemSearchRecord, error) {
	pattern := likePattern(term)
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, ? AS kind, folder_id, '' AS category, doc_type, is_favorite, created_at
		 FROM context_documents
		 WHERE project_id = ? AND (name LIKE ? OR tags LIKE ?)
		 UNION ALL
		 SELECT id, name, ? AS kind, folder_id, COALESCE(category, '') AS category, '' AS doc_type, is_favorite, created_at
		 FROM framework_outputs
		 WHERE project_id = ? AND (name LIKE ? OR tags LIKE ?)
		 ORDER BY name ASC`,
		string(item.KindContextDoc), projectID, pattern, pattern,
		string(item.KindFrameworkOutput), projectID, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	defer rows.Close()

	var items []*secondary.ItemSearchRecord
	for rows.Next() {
		var (
			folderID  sql.NullString
			createdAt time.Time
		)
		record := &secondary.ItemSearchRecord{}
		err := rows.Scan(&record.ID, &record.Name, &record.Kind, &folderID,
			&record.Category, &record.DocType, &record.IsFavorite, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		record.FolderID = folderID.String
		record.CreatedAt = fmtTime(createdAt)
		items = append(items, record)
	}
	return items, rows.Err()
}

// ToggleFavorite sets the favorite flag on the table backing the given kind.
func (r *ItemRepository) ToggleFavorite(ctx context.Context, kind, id string, value bool) error {
	table, err := tableForKind(kind)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE "+table+" SET is_favorite = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		value, id,
	)
	if err != nil {
		return fmt.Errorf("failed to toggle favorite: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("item %s not found", id)
	}
	return nil
}

// MoveToFolder reassigns an item to a folder; an empty folderID unfiles it.
func (r *ItemRepository) MoveToFolder(ctx context.Context, kind, id, folderID string) error {
	table, err := tableForKind(kind)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE "+table+" SET folder_id = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		nullStr(folderID), id,
	)
	if err != nil {
		return fmt.Errorf("failed to move item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("item %s not found", id)
	}
	return nil
}

// tableForKind maps an item kind to its backing table. The kind is always a
// trusted constant by the time it reaches SQL; ParseKind rejects anything
// else at the service boundary.
func tableForKind(kind string) (string, error) {
	parsed, err := item.ParseKind(kind)
	if err != nil {
		return "", err
	}
	switch parsed {
	case item.KindContextDoc:
		return "context_documents", nil
	default:
		return "framework_outputs", nil
	}
}

// Ensure ItemRepository implements the interface.
var _ secondary.ItemRepository = (*ItemRepository)(nil)
