// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// NewProjectInput contains the parameters for creating a project.
type NewProjectInput struct {
	Name  string
	Color string
}

// NewProjectOutput contains the result of creating a project.
type NewProjectOutput struct {
	ProjectID string
}

// NewProject is the use case for creating a time-tracking project.
type NewProject struct {
	repo   domain.TimeRepository
	clock  domain.Clock
	idgen  domain.IDGenerator
	logger domain.Logger
}

// NewNewProject creates a new NewProject use case.
func NewNewProject(repo domain.TimeRepository, clock domain.Clock, idgen domain.IDGenerator, logger domain.Logger) *NewProject {
	return &NewProject{repo: repo, clock: clock, idgen: idgen, logger: logger}
}

// Execute creates a project with the given input.
func (uc *NewProject) Execute(_ context.Context, in NewProjectInput) (*NewProjectOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	project := &domain.Project{
		ID:        uc.idgen.NewID(),
		Name:      in.Name,
		Color:     in.Color,
		CreatedAt: uc.clock.Now(),
	}
	if err := uc.repo.SaveProject(project); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("tracking", fmt.Sprintf("project created: %q", in.Name))
	}
	return &NewProjectOutput{ProjectID: project.ID}, nil
}
