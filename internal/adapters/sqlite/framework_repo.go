package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// FrameworkRepository implements secondary.FrameworkRepository with SQLite.
type FrameworkRepository struct {
	db *sql.DB
}

// NewFrameworkRepository creates a new SQLite framework definition repository.
func NewFrameworkRepository(db *sql.DB) *FrameworkRepository {
	return &FrameworkRepository{db: db}
}

const frameworkColumns = `id, category, name, description, icon, example_output,
	system_prompt, guiding_questions, supports_visuals, visual_instructions,
	is_builtin, sort_order, created_at, updated_at`

// Create persists a new framework definition.
func (r *FrameworkRepository) Create(ctx context.Context, framework *secondary.FrameworkRecord) error {
	questions, err := encodeList(framework.GuidingQuestions)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO framework_defs
			(id, category, name, description, icon, example_output, system_prompt,
			 guiding_questions, supports_visuals, visual_instructions, is_builtin, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		framework.ID, framework.Category, framework.Name,
		nullStr(framework.Description), nullStr(framework.Icon),
		nullStr(framework.ExampleOutput), nullStr(framework.SystemPrompt),
		questions, framework.SupportsVisuals, nullStr(framework.VisualInstructions),
		framework.IsBuiltin, framework.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to create framework: %w", err)
	}
	return nil
}

// GetByID retrieves a framework definition by its ID.
func (r *FrameworkRepository) GetByID(ctx context.Context, id string) (*secondary.FrameworkRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+frameworkColumns+" FROM framework_defs WHERE id = ?", id,
	)

	record, err := scanFramework(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("framework %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get framework: %w", err)
	}
	return record, nil
}

// List retrieves definitions matching the given filters, ordered by
// sort_order.
func (r *FrameworkRepository) List(ctx context.Context, filters secondary.FrameworkFilters) ([]*secondary.FrameworkRecord, error) {
	q := builder.
		Select(frameworkColumns).
		From("framework_defs").
		OrderBy("sort_order ASC", "name ASC")

	if filters.Category != "" {
		q = q.Where(sq.Eq{"category": filters.Category})
	}

	return r.query(ctx, q)
}

// Update applies a partial update; nil fields keep previous values.
func (r *FrameworkRepository) Update(ctx context.Context, id string, upd secondary.FrameworkUpdate) error {
	q := builder.Update("framework_defs").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if upd.Category != nil {
		q = q.Set("category", *upd.Category)
	}
	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		q = q.Set("description", nullStr(*upd.Description))
	}
	if upd.Icon != nil {
		q = q.Set("icon", nullStr(*upd.Icon))
	}
	if upd.ExampleOutput != nil {
		q = q.Set("example_output", nullStr(*upd.ExampleOutput))
	}
	if upd.SystemPrompt != nil {
		q = q.Set("system_prompt", nullStr(*upd.SystemPrompt))
	}
	if upd.GuidingQuestions != nil {
		questions, err := encodeList(*upd.GuidingQuestions)
		if err != nil {
			return err
		}
		q = q.Set("guiding_questions", questions)
	}
	if upd.SupportsVisuals != nil {
		q = q.Set("supports_visuals", *upd.SupportsVisuals)
	}
	if upd.VisualInstructions != nil {
		q = q.Set("visual_instructions", nullStr(*upd.VisualInstructions))
	}
	if upd.SortOrder != nil {
		q = q.Set("sort_order", *upd.SortOrder)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build framework update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update framework: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("framework %s not found", id)
	}
	return nil
}

// Delete removes a framework definition from persistence.
func (r *FrameworkRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM framework_defs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete framework: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("framework %s not found", id)
	}
	return nil
}

// Exists reports whether a definition with the given id exists.
func (r *FrameworkRepository) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM framework_defs WHERE id = ?", id,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check framework existence: %w", err)
	}
	return true, nil
}

// MaxSortOrder returns the highest sort_order within a category, or -1 when
// the category holds no definitions.
func (r *FrameworkRepository) MaxSortOrder(ctx context.Context, category string) (int, error) {
	var max int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(sort_order), -1) FROM framework_defs WHERE category = ?",
		category,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("failed to get max sort order: %w", err)
	}
	return max, nil
}

// ResetContent overwrites only the seed-owned content fields; category,
// name, icon, and sort_order stay as the user last set them.
func (r *FrameworkRepository) ResetContent(ctx context.Context, id string, content secondary.FrameworkSeedContent) error {
	questions, err := encodeList(content.GuidingQuestions)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE framework_defs
		 SET system_prompt = ?, guiding_questions = ?, example_output = ?,
		     visual_instructions = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		nullStr(content.SystemPrompt), questions, nullStr(content.ExampleOutput),
		nullStr(content.VisualInstructions), id,
	)
	if err != nil {
		return fmt.Errorf("failed to reset framework: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("framework %s not found", id)
	}
	return nil
}

// Search retrieves definitions matching the term, ordered by sort_order.
func (r *FrameworkRepository) Search(ctx context.Context, term string) ([]*secondary.FrameworkRecord, error) {
	pattern := likePattern(term)
	return r.query(ctx, builder.
		Select(frameworkColumns).
		From("framework_defs").
		Where(sq.Or{sq.Like{"name": pattern}, sq.Like{"description": pattern}}).
		OrderBy("sort_order ASC", "name ASC"))
}

func (r *FrameworkRepository) query(ctx context.Context, q sq.SelectBuilder) ([]*secondary.FrameworkRecord, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build framework query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query frameworks: %w", err)
	}
	defer rows.Close()

	var frameworks []*secondary.FrameworkRecord
	for rows.Next() {
		record, err := scanFramework(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan framework: %w", err)
		}
		frameworks = append(frameworks, record)
	}
	return frameworks, rows.Err()
}

func scanFramework(row rowScanner) (*secondary.FrameworkRecord, error) {
	var (
		desc, icon, example, prompt, visual sql.NullString
		questionsRaw                        string
		createdAt, updatedAt                time.Time
	)

	record := &secondary.FrameworkRecord{}
	err := row.Scan(&record.ID, &record.Category, &record.Name, &desc, &icon,
		&example, &prompt, &questionsRaw, &record.SupportsVisuals, &visual,
		&record.IsBuiltin, &record.SortOrder, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	questions, err := decodeList(questionsRaw)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.Icon = icon.String
	record.ExampleOutput = example.String
	record.SystemPrompt = prompt.String
	record.GuidingQuestions = questions
	record.VisualInstructions = visual.String
	record.CreatedAt = fmtTime(createdAt)
	record.UpdatedAt = fmtTime(updatedAt)
	return record, nil
}

// Ensure FrameworkRepository implements the interface.
var _ secondary.FrameworkRepository = (*FrameworkRepository)(nil)
