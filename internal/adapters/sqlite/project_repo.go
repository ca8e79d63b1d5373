package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// ProjectRepository implements secondary.ProjectRepository with SQLite.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new SQLite project repository.
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = "id, name, description, created_at, updated_at"

// Create persists a new project.
func (r *ProjectRepository) Create(ctx context.Context, project *secondary.ProjectRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO projects (id, name, description) VALUES (?, ?, ?)",
		project.ID, project.Name, nullStr(project.Description),
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// GetByID retrieves a project by its ID.
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*secondary.ProjectRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM projects WHERE id = ?", id,
	)

	record, err := scanProject(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("project %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return record, nil
}

// List retrieves all projects, most recently updated first.
func (r *ProjectRepository) List(ctx context.Context) ([]*secondary.ProjectRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+projectColumns+" FROM projects ORDER BY updated_at DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*secondary.ProjectRecord
	for rows.Next() {
		record, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, record)
	}
	return projects, rows.Err()
}

// Update applies a partial update; nil fields keep previous values.
func (r *ProjectRepository) Update(ctx context.Context, id string, upd secondary.ProjectUpdate) error {
	q := builder.Update("projects").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.Description != nil {
		q = q.Set("description", nullStr(*upd.Description))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build project update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("project %s not found", id)
	}
	return nil
}

// Delete removes a project; conversations, folders, items, and usage rows
// cascade at the schema level.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("project %s not found", id)
	}
	return nil
}

func scanProject(row rowScanner) (*secondary.ProjectRecord, error) {
	var (
		desc                 sql.NullString
		createdAt, updatedAt time.Time
	)

	record := &secondary.ProjectRecord{}
	err := row.Scan(&record.ID, &record.Name, &desc, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.CreatedAt = fmtTime(createdAt)
	record.UpdatedAt = fmtTime(updatedAt)
	return record, nil
}

// Ensure ProjectRepository implements the interface.
var _ secondary.ProjectRepository = (*ProjectRepository)(nil)
