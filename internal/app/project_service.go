package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/riverphoenix/ai-pm-ide/internal/ports/primary"
	"github.com/riverphoenix/ai-pm-ide/internal/ports/secondary"
)

// ProjectServiceImpl implements the ProjectService interface.
type ProjectServiceImpl struct {
	projectRepo secondary.ProjectRepository
}

// NewProjectService creates a new ProjectService with injected dependencies.
func NewProjectService(projectRepo secondary.ProjectRepository) *ProjectServiceImpl {
	return &ProjectServiceImpl{
		projectRepo: projectRepo,
	}
}

// CreateProject creates a new project.
func (s *ProjectServiceImpl) CreateProject(ctx context.Context, req primary.CreateProjectRequest) (*primary.Project, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("project name must not be empty")
	}

	record := &secondary.ProjectRecord{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.projectRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	created, err := s.projectRepo.GetByID(ctx, record.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created project: %w", err)
	}
	return recordToProject(created), nil
}

// GetProject retrieves a project by ID.
func (s *ProjectServiceImpl) GetProject(ctx context.Context, projectID string) (*primary.Project, error) {
	record, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return recordToProject(record), nil
}

// ListProjects retrieves all projects, most recently updated first.
func (s *ProjectServiceImpl) ListProjects(ctx context.Context) ([]*primary.Project, error) {
	records, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*primary.Project, len(records))
	for i, r := range records {
		projects[i] = recordToProject(r)
	}
	return projects, nil
}

// UpdateProject applies a partial update.
func (s *ProjectServiceImpl) UpdateProject(ctx context.Context, projectID string, req primary.UpdateProjectRequest) (*primary.Project, error) {
	err := s.projectRepo.Update(ctx, projectID, secondary.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated project: %w", err)
	}
	return recordToProject(updated), nil
}

// DeleteProject removes a project and everything it owns.
func (s *ProjectServiceImpl) DeleteProject(ctx context.Context, projectID string) error {
	return s.projectRepo.Delete(ctx, projectID)
}

func recordToProject(r *secondary.ProjectRecord) *primary.Project {
	return &primary.Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// Ensure ProjectServiceImpl implements the interface.
var _ primary.ProjectService = (*ProjectServiceImpl)(nil)
