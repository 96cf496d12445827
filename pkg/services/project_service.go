package services

import (
	"context"
	"fmt"
	"time"

	"github.com/agentd-io/agentd/ent"
	"github.com/agentd-io/agentd/ent/project"
	"github.com/google/uuid"
)

// ProjectService manages projects — the container the execution bridge
// scaffolds around trigger-initiated runs.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// CreateProject creates a new project
func (s *ProjectService) CreateProject(httpCtx context.Context, name, accountID string) (*ent.Project, error) {
	if name == "" {
		return nil, NewValidationError("name", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Project.Create().
		SetID(uuid.New().String()).
		SetName(name)
	if accountID != "" {
		builder.SetAccountID(accountID)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.IDEQ(projectID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

// SetSandbox records the provisioned sandbox details on a project
func (s *ProjectService) SetSandbox(httpCtx context.Context, projectID string, sandbox map[string]any) (*ent.Project, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := s.client.Project.UpdateOneID(projectID).
		SetSandbox(sandbox).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set project sandbox: %w", err)
	}

	return p, nil
}
