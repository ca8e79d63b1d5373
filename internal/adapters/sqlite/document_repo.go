package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// ContextDocumentRepository implements secondary.ContextDocumentRepository
// with SQLite.
type ContextDocumentRepository struct {
	db *sql.DB
}

// NewContextDocumentRepository creates a new SQLite context document
// repository.
func NewContextDocumentRepository(db *sql.DB) *ContextDocumentRepository {
	return &ContextDocumentRepository{db: db}
}

const documentColumns = `id, project_id, name, doc_type, content, url, is_global,
	size_bytes, folder_id, tags, is_favorite, sort_order, created_at, updated_at`

// Create persists a new context document.
func (r *ContextDocumentRepository) Create(ctx context.Context, doc *secondary.ContextDocumentRecord) error {
	tags, err := encodeList(doc.Tags)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO context_documents
			(id, project_id, name, doc_type, content, url, is_global, size_bytes,
			 folder_id, tags, is_favorite, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.ProjectID, doc.Name, doc.DocType, doc.Content,
		nullStr(doc.URL), doc.IsGlobal, doc.SizeBytes,
		nullStr(doc.FolderID), tags, doc.IsFavorite, doc.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// GetByID retrieves a context document by its ID.
func (r *ContextDocumentRepository) GetByID(ctx context.Context, id string) (*secondary.ContextDocumentRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+documentColumns+" FROM context_documents WHERE id = ?", id,
	)

	record, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("document %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return record, nil
}

// List retrieves documents matching the given filters, ordered by sort_order,
// name.
func (r *ContextDocumentRepository) List(ctx context.Context, filters secondary.DocumentFilters) ([]*secondary.ContextDocumentRecord, error) {
	q := builder.
		Select(documentColumns).
		From("context_documents").
		OrderBy("sort_order ASC", "name ASC")

	if filters.ProjectID != "" {
		q = q.Where(sq.Eq{"project_id": filters.ProjectID})
	}
	if filters.FolderID != "" {
		q = q.Where(sq.Eq{"folder_id": filters.FolderID})
	}
	if filters.DocType != "" {
		q = q.Where(sq.Eq{"doc_type": filters.DocType})
	}
	if filters.GlobalOnly {
		q = q.Where(sq.Eq{"is_global": true})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build document query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []*secondary.ContextDocumentRecord
	for rows.Next() {
		record, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, record)
	}
	return docs, rows.Err()
}

// Update applies a partial update; nil fields keep previous values.
// size_bytes is fixed at creation and never recomputed here.
func (r *ContextDocumentRepository) Update(ctx context.Context, id string, upd secondary.DocumentUpdate) error {
	q := builder.Update("context_documents").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id})

	if upd.Name != nil {
		q = q.Set("name", *upd.Name)
	}
	if upd.DocType != nil {
		q = q.Set("doc_type", *upd.DocType)
	}
	if upd.Content != nil {
		q = q.Set("content", *upd.Content)
	}
	if upd.URL != nil {
		q = q.Set("url", nullStr(*upd.URL))
	}
	if upd.IsGlobal != nil {
		q = q.Set("is_global", *upd.IsGlobal)
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
		return fmt.Errorf("failed to build document update: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("document %s not found", id)
	}
	return nil
}

// Delete removes a context document from persistence.
func (r *ContextDocumentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM context_documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("document %s not found", id)
	}
	return nil
}

func scanDocument(row rowScanner) (*secondary.ContextDocumentRecord, error) {
	var (
		content, url, folderID sql.NullString
		tagsRaw                string
		createdAt, updatedAt   time.Time
	)

	record := &secondary.ContextDocumentRecord{}
	err := row.Scan(&record.ID, &record.ProjectID, &record.Name, &record.DocType,
		&content, &url, &record.IsGlobal, &record.SizeBytes, &folderID,
		&tagsRaw, &record.IsFavorite, &record.SortOrder, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	tags, err := decodeList(tagsRaw)
	if err != nil {
		return nil, err
	}

	record.Content = content.String
	record.URL = url.String
	record.FolderID = folderID.String
	record.Tags = tags
	record.CreatedAt = fmtTime(createdAt)
	record.UpdatedAt = fmtTime(updatedAt)
	return record, nil
}

// Ensure ContextDocumentRepository implements the interface.
var _ secondary.ContextDocumentRepository = (*ContextDocumentRepository)(nil)
