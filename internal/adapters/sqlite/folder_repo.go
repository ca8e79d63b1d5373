package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// FolderRepository implements secondary.FolderRepository with SQLite.
type FolderRepository struct {
	db *sql.DB
}

// NewFolderRepository creates a new SQLite folder repository.
func NewFolderRepository(db *sql.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

const folderColumns = "id, project_id, parent_id, name, color, sort_order, created_at, updated_at"

// Create persists a new folder.
func (r *FolderRepository) Create(ctx context.Context, folder *secondary.FolderRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO folders (id, project_id, parent_id, name, color, sort_order) VALUES (?, ?, ?, ?, ?, ?)",
		folder.ID, folder.ProjectID, nullStr(folder.ParentID), folder.Name,
		nullStr(folder.Color), folder.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to create folder: %w", err)
	}
	return nil
}

// GetByID retrieves a folder by its ID.
func (r *FolderRepository) GetByID(ctx context.Context, id string) (*secondary.FolderRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+folderColumns+" FROM folders WHERE id = ?", id,
	)

	record, err := scanFolder(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("folder %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}
	return record, nil
}

// ListByProject retrieves a project's folders ordered by sort_order, name.
func (r *FolderRepository) ListByProject(ctx context.Context, projectID string) ([]*secondary.FolderRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+folderColumns+" FROM folders WHERE project_id = ? ORDER BY sort_order ASC, name ASC",
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	defer rows.Close()

	var folders []*secondary.FolderRecord
	for rows.Next() {
		record, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		folders = append(folders, record)
	}
	return folders, rows.Err()
}

// Update applies a partial update; nil fields keep previous values. A
// non-nil ParentID pointing at an empty string moves the folder to the root.
func (r *FolderRepository) Update(ctx context.Context, id string, upd secondary.FolderUpdate) error {
	q := builder.Update("folders").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.Color != nil {
		q = q.Set("color", nullStr(*upd.Color))
	}
	if upd.SortOrder != nil {
		q = q.Set("sort_order", *upd.SortOrder)
	}
	if upd.ParentID != nil {
		q = q.Set("parent_id", nullStr(*upd.ParentID))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build folder update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update folder: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("folder %s not found", id)
	}
	return nil
}

// Ancestors returns the ancestor chain of a folder, starting at the folder
// itself and walking parent links up to the root.
func (r *FolderRepository) Ancestors(ctx context.Context, id string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`WITH RECURSIVE chain(id, parent_id) AS (
			SELECT id, parent_id FROM folders WHERE id = ?
			UNION ALL
			SELECT f.id, f.parent_id FROM folders f
			JOIN chain c ON f.id = c.parent_id
		)
		SELECT id FROM chain`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to walk folder ancestors: %w", err)
	}
	defer rows.Close()

	var chain []string
	for rows.Next() {
		var ancestorID string
		if err := rows.Scan(&ancestorID); err != nil {
			return nil, fmt.Errorf("failed to scan ancestor: %w", err)
		}
		chain = append(chain, ancestorID)
	}
	return chain, rows.Err()
}

// Delete detaches every item filed in the folder, then removes the folder.
// Both steps run in one transaction so a crash can never leave items
// pointing at a missing folder. Descendant folders cascade-delete through
// the parent_id referential action; their items detach via the folder_id
// ON DELETE SET NULL action.
func (r *FolderRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin folder delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"UPDATE context_documents SET folder_id = NULL WHERE folder_id = ?", id,
	); err != nil {
		return fmt.Errorf("failed to detach context documents: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE framework_outputs SET folder_id = NULL WHERE folder_id = ?", id,
	); err != nil {
		return fmt.Errorf("failed to detach framework outputs: %w", err)
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM folders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("folder %s not found", id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit folder delete: %w", err)
	}
	return nil
}

func scanFolder(row rowScanner) (*secondary.FolderRecord, error) {
	var (
		parentID, color      sql.NullString
		createdAt, updatedAt time.Time
	)

	record := &secondary.FolderRecord{}
	err := row.Scan(&record.ID, &record.ProjectID, &parentID, &record.Name,
		&color, &record.SortOrder, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.ParentID = parentID.String
	record.Color = color.String
	record.CreatedAt = fmtTime(createdAt)
	record.UpdatedAt = fmtTime(updatedAt)
	return record, nil
}

// Ensure FolderRepository implements the interface.
var _ secondary.FolderRepository = (*FolderRepository)(nil)
