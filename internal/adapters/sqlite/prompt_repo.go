package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// PromptRepository implements secondary.PromptRepository with SQLite.
type PromptRepository struct {
	db *sql.DB
}

// NewPromptRepository creates a new SQLite saved prompt repository.
func NewPromptRepository(db *sql.DB) *PromptRepository {
	return &PromptRepository{db: db}
}

const promptColumns = `id, name, description, category, prompt_text, variables,
	framework_id, is_builtin, is_favorite, usage_count, sort_order, created_at, updated_at`

// Create persists a new saved prompt.
func (r *PromptRepository) Create(ctx context.Context, prompt *secondary.PromptRecord) error {
	variables, err := encodeList(prompt.Variables)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO saved_prompts
			(id, name, description, category, prompt_text, variables, framework_id,
			 is_builtin, is_favorite, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		prompt.ID, prompt.Name, nullStr(prompt.Description), nullStr(prompt.Category),
		prompt.PromptText, variables, nullStr(prompt.FrameworkID),
		prompt.IsBuiltin, prompt.IsFavorite, prompt.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to create prompt: %w", err)
	}
	return nil
}

// GetByID retrieves a saved prompt by its ID.
func (r *PromptRepository) GetByID(ctx context.Context, id string) (*secondary.PromptRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+promptColumns+" FROM saved_prompts WHERE id = ?", id,
	)

	record, err := scanPrompt(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("prompt %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}
	return record, nil
}

// List retrieves prompts matching the given filters, ordered by usage_count
// descending then name.
func (r *PromptRepository) List(ctx context.Context, filters secondary.PromptFilters) ([]*secondary.PromptRecord, error) {
	q := builder.
		Select(promptColumns).
		From("saved_prompts").
		OrderBy("usage_count DESC", "name ASC")

	if filters.Category != "" {
		q = q.Where(sq.Eq{"category": filters.Category})
	}
	if filters.FrameworkID != "" {
		q = q.Where(sq.Eq{"framework_id": filters.FrameworkID})
	}

	return r.query(ctx, q)
}

// Update applies a partial update; nil fields keep previous values.
func (r *PromptRepository) Update(ctx context.Context, id string, upd secondary.PromptUpdate) error {
	q := builder.Update("saved_prompts").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		q = q.Set("description", nullStr(*upd.Description))
	}
	if upd.Category != nil {
		q = q.Set("category", nullStr(*upd.Category))
	}
	if upd.PromptText != nil {
		q = q.Set("prompt_text", *upd.PromptText)
	}
	if upd.Variables != nil {
		variables, err := encodeList(*upd.Variables)
		if err != nil {
			return err
		}
		q = q.Set("variables", variables)
	}
	if upd.FrameworkID != nil {
		q = q.Set("framework_id", nullStr(*upd.FrameworkID))
	}
	if upd.IsFavorite != nil {
		q = q.Set("is_favorite", *upd.IsFavorite)
	}
	if upd.SortOrder != nil {
		q = q.Set("sort_order", *upd.SortOrder)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build prompt update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update prompt: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("prompt %s not found", id)
	}
	return nil
}

// Delete removes a saved prompt from persistence.
func (r *PromptRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM saved_prompts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete prompt: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("prompt %s not found", id)
	}
	return nil
}

// Exists reports whether a prompt with the given id exists.
func (r *PromptRepository) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM saved_prompts WHERE id = ?", id,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check prompt existence: %w", err)
	}
	return true, nil
}

// MaxSortOrder returns the highest sort_order, or -1 when empty.
func (r *PromptRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(sort_order), -1) FROM saved_prompts",
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max sort order: %w", err)
	}
	return max, nil
}

// IncrementUsage bumps the usage counter by one.
func (r *PromptRepository) IncrementUsage(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE saved_prompts SET usage_count = usage_count + 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to increment prompt usage: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("prompt %s not found", id)
	}
	return nil
}

// Search retrieves prompts matching the term over name, description, and
// prompt text, ordered by usage_count descending then name.
func (r *PromptRepository) Search(ctx context.Context, term string) ([]*secondary.PromptRecord, error) {
	pattern := likePattern(term)
	return r.query(ctx, builder.
		Select(promptColumns).
		From("saved_prompts").
		Where(sq.Or{
			sq.Like{"name": pattern},
			sq.Like{"description": pattern},
			sq.Like{"prompt_text": pattern},
		}).
		OrderBy("usage_count DESC", "name ASC"))
}

func (r *PromptRepository) query(ctx context.Context, q sq.SelectBuilder) ([]*secondary.PromptRecord, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query prompts: %w", err)
	}
	defer rows.Close()

	var prompts []*secondary.PromptRecord
	for rows.Next() {
		record, err := scanPrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prompt: %w", err)
		}
		prompts = append(prompts, record)
	}
	return prompts, rows.Err()
}

func scanPrompt(row rowScanner) (*secondary.PromptRecord, error) {
	var (
		desc, category, frameworkID sql.NullString
		variablesRaw                string
		createdAt, updatedAt        time.Time
	)

	record := &secondary.PromptRecord{}
	err := row.Scan(&record.ID, &record.Name, &desc, &category, &record.PromptText,
		&variablesRaw, &frameworkID, &record.IsBuiltin, &record.IsFavorite,
		&record.UsageCount, &record.SortOrder, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	variables, err := decodeList(variablesRaw)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.Category = category.String
	record.Variables = variables
	record.FrameworkID = frameworkID.String
	record.CreatedAt = fmtTime(createdAt)
	record.UpdatedAt = fmtTime(updatedAt)
	return record, nil
}

// Ensure PromptRepository implements the interface.
var _ secondary.PromptRepository = (*PromptRepository)(nil)
