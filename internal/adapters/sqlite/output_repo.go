package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// FrameworkOutputRepository implements secondary.FrameworkOutputRepository
// with SQLite.
type FrameworkOutputRepository struct {
	db *sql.DB
}

// NewFrameworkOutputRepository creates a new SQLite framework output
// repository.
func NewFrameworkOutputRepository(db *sql.DB) *FrameworkOutputRepository {
	return &FrameworkOutputRepository{db: db}
}

const outputColumns = `id, project_id, name, framework_id, category, user_prompt,
	context_doc_ids, generated_content, format, folder_id, tags, is_favorite,
	sort_order, created_at, updated_at`

// Create persists a new framework output.
func (r *FrameworkOutputRepository) Create(ctx context.Context, output *secondary.FrameworkOutputRecord) error {
	docIDs, err := encodeList(output.ContextDocIDs)
	if err != nil {
		return err
	}
	tags, err := encodeList(output.Tags)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO framework_outputs
			(id, project_id, name, framework_id, category, user_prompt,
			 context_doc_ids, generated_content, format, folder_id, tags,
			 is_favorite, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		output.ID, output.ProjectID, output.Name, output.FrameworkID,
		nullStr(output.Category), nullStr(output.UserPrompt), docIDs,
		nullStr(output.GeneratedContent), output.Format,
		nullStr(output.FolderID), tags, output.IsFavorite, output.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	return nil
}

// GetByID retrieves a framework output by its ID.
func (r *FrameworkOutputRepository) GetByID(ctx context.Context, id string) (*secondary.FrameworkOutputRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+outputColumns+" FROM framework_outputs WHERE id = ?", id,
	)

	record, err := scanOutput(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("output %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get output: %w", err)
	}
	return record, nil
}

// List retrieves outputs matching the given filters, newest first.
func (r *FrameworkOutputRepository) List(ctx context.Context, filters secondary.OutputFilters) ([]*secondary.FrameworkOutputRecord, error) {
	q := builder.
		Select(outputColumns).
		From("framework_outputs").
		OrderBy("created_at DESC")

	if filters.ProjectID != "" {
		q = q.Where(sq.Eq{"project_id": filters.ProjectID})
	}
	if filters.FrameworkID != "" {
		q = q.Where(sq.Eq{"framework_id": filters.FrameworkID})
	}
	if filters.Category != "" {
		q = q.Where(sq.Eq{"category": filters.Category})
	}
	if filters.FolderID != "" {
		q = q.Where(sq.Eq{"folder_id": filters.FolderID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build output query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query outputs: %w", err)
	}
	defer rows.Close()

	var outputs []*secondary.FrameworkOutputRecord
	for rows.Next() {
		record, err := scanOutput(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan output: %w", err)
		}
		outputs = append(outputs, record)
	}
	return outputs, rows.Err()
}

// Update applies a partial update; nil fields keep previous values.
func (r *FrameworkOutputRepository) Update(ctx context.Context, id string, upd secondary.OutputUpdate) error {
	q := builder.Update("framework_outputs").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.GeneratedContent != nil {
		q = q.Set("generated_content", nullStr(*upd.GeneratedContent))
	}
	if upd.Format != nil {
		q = q.Set("format", *upd.Format)
	}
	if upd.Tags != nil {
		tags, err := encodeList(*upd.Tags)
		if err != nil {
			return err
		}
		q = q.Set("tags", tags)
	}
	if upd.SortOrder != nil {
		q = q.Set("sort_order", *upd.SortOrder)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build output update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update output: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("output %s not found", id)
	}
	return nil
}

// Delete removes a framework output from persistence.
func (r *FrameworkOutputRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM framework_outputs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete output: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("output %s not found", id)
	}
	return nil
}

func scanOutput(row rowScanner) (*secondary.FrameworkOutputRecord, error) {
	var (
		category, userPrompt, generated, folderID sql.NullString
		docIDsRaw, tagsRaw                        string
		createdAt, updatedAt                      time.Time
	)

	record := &secondary.FrameworkOutputRecord{}
	err := row.Scan(&record.ID, &record.ProjectID, &record.Name, &record.FrameworkID,
		&category, &userPrompt, &docIDsRaw, &generated, &record.Format,
		&folderID, &tagsRaw, &record.IsFavorite, &record.SortOrder,
		&createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	docIDs, err := decodeList(docIDsRaw)
	if err != nil {
		return nil, err
	}
	tags, err := decodeList(tagsRaw)
	if err != nil {
		return nil, err
	}

	record.Category = category.String
	record.UserPrompt = userPrompt.String
	record.ContextDocIDs = docIDs
	record.GeneratedContent = generated.String
	record.FolderID = folderID.String
	record.Tags = tags
	record.CreatedAt = fmtTime(createdAt)
	record.UpdatedAt = fmtTime(updatedAt)
	return record, nil
}

// Ensure FrameworkOutputRepository implements the interface.
var _ secondary.FrameworkOutputRepository = (*FrameworkOutputRepository)(nil)
