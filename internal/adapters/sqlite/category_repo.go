package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// CategoryRepository implements secondary.CategoryRepository with SQLite.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new SQLite category repository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

const categoryColumns = "id, name, description, icon, is_builtin, sort_order, created_at, updated_at"

// Create persists a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *secondary.CategoryRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO framework_categories (id, name, description, icon, is_builtin, sort_order) VALUES (?, ?, ?, ?, ?, ?)",
		category.ID, category.Name, nullStr(category.Description), nullStr(category.Icon),
		category.IsBuiltin, category.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetByID retrieves a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*secondary.CategoryRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+categoryColumns+" FROM framework_categories WHERE id = ?", id,
	)

	record, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return record, nil
}

// List retrieves all categories ordered by sort_order, name.
func (r *CategoryRepository) List(ctx context.Context) ([]*secondary.CategoryRecord, error) {
	return r.query(ctx, builder.
		Select(categoryColumns).
		From("framework_categories").
		OrderBy("sort_order ASC", "name ASC"))
}

// Update applies a partial update; nil fields keep previous values.
func (r *CategoryRepository) Update(ctx context.Context, id string, upd secondary.CategoryUpdate) error {
	q := builder.Update("framework_categories").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		q = q.Set("description", nullStr(*upd.Description))
	}
	if upd.Icon != nil {
		q = q.Set("icon", nullStr(*upd.Icon))
	}
	if upd.SortOrder != nil {
		q = q.Set("sort_order", *upd.SortOrder)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build category update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("category %s not found", id)
	}
	return nil
}

// Delete removes a category from persistence.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM framework_categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("category %s not found", id)
	}
	return nil
}

// Exists reports whether a category with the given id exists.
func (r *CategoryRepository) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM framework_categories WHERE id = ?", id,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return true, nil
}

// MaxSortOrder returns the highest sort_order, or -1 when empty.
func (r *CategoryRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(sort_order), -1) FROM framework_categories",
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max sort order: %w", err)
	}
	return max, nil
}

// CountDefinitions returns the number of framework definitions attached to
// a category.
func (r *CategoryRepository) CountDefinitions(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM framework_defs WHERE category = ?", categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count definitions: %w", err)
	}
	return count, nil
}

// Search retrieves categories matching the term, ordered by sort_order.
func (r *CategoryRepository) Search(ctx context.Context, term string) ([]*secondary.CategoryRecord, error) {
	pattern := likePattern(term)
	return r.query(ctx, builder.
		Select(categoryColumns).
		From("framework_categories").
		Where(sq.Or{sq.Like{"name": pattern}, sq.Like{"description": pattern}}).
		OrderBy("sort_order ASC", "name ASC"))
}

func (r *CategoryRepository) query(ctx context.Context, q sq.SelectBuilder) ([]*secondary.CategoryRecord, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build category query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []*secondary.CategoryRecord
	for rows.Next() {
		record, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, record)
	}
	return categories, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*secondary.CategoryRecord, error) {
	var (
		desc, icon           sql.NullString
		createdAt, updatedAt time.Time
	)

	record := &secondary.CategoryRecord{}
	err := row.Scan(&record.ID, &record.Name, &desc, &icon,
		&record.IsBuiltin, &record.SortOrder, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.Icon = icon.String
	record.CreatedAt = fmtTime(createdAt)
	record.UpdatedAt = fmtTime(updatedAt)
	return record, nil
}

// Ensure CategoryRepository implements the interface.
var _ secondary.CategoryRepository = (*CategoryRepository)(nil)
