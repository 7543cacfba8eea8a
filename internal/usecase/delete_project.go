package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// DeleteProjectInput identifies the project to delete.
type DeleteProjectInput struct {
	ProjectID string
}

// DeleteProject is the use case for deleting a project. The delete
// cascades to the project's tasks and their time entries; a timer
// attached to a cascaded task is reset.
type DeleteProject struct {
	repo   domain.TimeRepository
	logger domain.Logger
}

// NewDeleteProject creates a new DeleteProject use case.
func NewDeleteProject(repo domain.TimeRepository, logger domain.Logger) *DeleteProject {
	return &DeleteProject{repo: repo, logger: logger}
}

// Execute deletes the project and everything under it.
func (uc *DeleteProject) Execute(_ context.Context, in DeleteProjectInput) error {
	project, err := uc.repo.GetProject(in.ProjectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}
	if project == nil {
		return domain.ErrProjectNotFound
	}

	tasks, err := uc.repo.Tasks()
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}
	for _, task := range tasks {
		if task.ProjectID != in.ProjectID {
			continue
		}
		if err := deleteTaskCascade(uc.repo, task.ID); err != nil {
			return err
		}
	}

	if err := uc.repo.DeleteProject(in.ProjectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("tracking", fmt.Sprintf("project deleted: %q", project.Name))
	}
	return nil
}

// deleteTaskCascade removes a task, its time entries, and resets the
// timer when it references the task.
func deleteTaskCascade(repo domain.TimeRepository, taskID string) error {
	entries, err := repo.Entries()
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	for _, e := range entries {
		if e.TaskID != taskID {
			continue
		}
		if err := repo.DeleteEntry(e.ID); err != nil {
			return fmt.Errorf("delete entry: %w", err)
		}
	}

	timer, err := repo.TimerState()
	if err != nil {
		return fmt.Errorf("load timer state: %w", err)
	}
	if timer.TaskID == taskID {
		if err := repo.SaveTimerState(domain.IdleTimer()); err != nil {
			return fmt.Errorf("reset timer state: %w", err)
		}
	}

	if err := repo.DeleteTask(taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
