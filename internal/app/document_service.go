package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// DocumentServiceImpl implements the DocumentService interface.
type DocumentServiceImpl struct {
	documentRepo secondary.ContextDocumentRepository
}

// NewDocumentService creates a new DocumentService with injected
// dependencies.
func NewDocumentService(documentRepo secondary.ContextDocumentRepository) *DocumentServiceImpl {
	return &DocumentServiceImpl{
		documentRepo: documentRepo,
	}
}

// CreateDocument creates a context document. size_bytes captures the byte
// length of the content at creation and is never recomputed afterwards.
func (s *DocumentServiceImpl) CreateDocument(ctx context.Context, req primary.CreateDocumentRequest) (*primary.Document, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("document name must not be empty")
	}
	if req.DocType == "" {
		return nil, fmt.Errorf("document type must not be empty")
	}

	record := &secondary.ContextDocumentRecord{
		ID:        uuid.NewString(),
		ProjectID: req.ProjectID,
		Name:      req.Name,
		DocType:   req.DocType,
		Content:   req.Content,
		URL:       req.URL,
		IsGlobal:  req.IsGlobal,
		SizeBytes: int64(len(req.Content)),
		FolderID:  req.FolderID,
		Tags:      req.Tags,
	}
	if err := s.documentRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	created, err := s.documentRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created document: %w", err)
	}
	return recordToDocument(created), nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentServiceImpl) GetDocument(ctx context.Context, documentID string) (*primary.Document, error) {
	record, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return recordToDocument(record), nil
}

// ListDocuments retrieves documents matching the filters.
func (s *DocumentServiceImpl) ListDocuments(ctx context.Context, filters primary.DocumentListFilters) ([]*primary.Document, error) {
	records, err := s.documentRepo.List(ctx, secondary.DocumentFilters{
		ProjectID:  filters.ProjectID,
		FolderID:   filters.FolderID,
		DocType:    filters.DocType,
		GlobalOnly: filters.GlobalOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	docs := make([]*primary.Document, len(records))
	for i, r := range records {
		docs[i] = recordToDocument(r)
	}
	return docs, nil
}

// UpdateDocument applies a partial update; size_bytes never changes.
func (s *DocumentServiceImpl) UpdateDocument(ctx context.Context, documentID string, req primary.UpdateDocumentRequest) (*primary.Document, error) {
	err := s.documentRepo.Update(ctx, documentID, secondary.DocumentUpdate{
		Name:      req.Name,
		DocType:   req.DocType,
		Content:   req.Content,
		URL:       req.URL,
		IsGlobal:  req.IsGlobal,
		Tags:      req.Tags,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.documentRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated document: %w", err)
	}
	return recordToDocument(updated), nil
}

// DeleteDocument removes a document.
func (s *DocumentServiceImpl) DeleteDocument(ctx context.Context, documentID string) error {
	return s.documentRepo.Delete(ctx, documentID)
}

func recordToDocument(r *secondary.ContextDocumentRecord) *primary.Document {
	return &primary.Document{
		ID:         r.ID,
		ProjectID:  r.ProjectID,
		Name:       r.Name,
		DocType:    r.DocType,
		Content:    r.Content,
		URL:        r.URL,
		IsGlobal:   r.IsGlobal,
		SizeBytes:  r.SizeBytes,
		FolderID:   r.FolderID,
		Tags:       r.Tags,
		IsFavorite: r.IsFavorite,
		SortOrder:  r.SortOrder,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

// Ensure DocumentServiceImpl implements the interface.
var _ primary.DocumentService = (*DocumentServiceImpl)(nil)
