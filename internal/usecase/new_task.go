package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// NewTaskInput contains the parameters for creating a task.
type NewTaskInput struct {
	Name      string
	ProjectID string
	Color     string
}

// NewTaskOutput contains the result of creating a task.
type NewTaskOutput struct {
	TaskID string
}

// NewTask is the use case for creating a task under a project.
type NewTask struct {
	repo   domain.TimeRepository
	clock  domain.Clock
	idgen  domain.IDGenerator
	logger domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(repo domain.TimeRepository, clock domain.Clock, idgen domain.IDGenerator, logger domain.Logger) *NewTask {
	return &NewTask{repo: repo, clock: clock, idgen: idgen, logger: logger}
}

// Execute creates a task with the given input.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	project, err := uc.repo.GetProject(in.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	task := &domain.Task{
		ID:        uc.idgen.NewID(),
		Name:      in.Name,
		ProjectID: in.ProjectID,
		Color:     in.Color,
		CreatedAt: uc.clock.Now(),
	}
	if err := uc.repo.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("tracking", fmt.Sprintf("task created: %q in %q", in.Name, project.Name))
	}
	return &NewTaskOutput{TaskID: task.ID}, nil
}

// DeleteTaskInput identifies the task to delete.
type DeleteTaskInput struct {
	TaskID string
}

// DeleteTask is the use case for deleting a task and its entries.
type DeleteTask struct {
	repo   domain.TimeRepository
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(repo domain.TimeRepository, logger domain.Logger) *DeleteTask {
	return &DeleteTask{repo: repo, logger: logger}
}

// Execute deletes the task, cascading to its time entries.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) error {
	task, err := uc.repo.GetTask(in.TaskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return domain.ErrTaskNotFound
	}

	if err := deleteTaskCascade(uc.repo, in.TaskID); err != nil {
		return err
	}
	if uc.logger != nil {
		uc.logger.Info("tracking", fmt.Sprintf("task deleted: %q", task.Name))
	}
	return nil
}
