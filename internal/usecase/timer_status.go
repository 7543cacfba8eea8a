package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// TimerStatusOutput is the reconciled view of the timer.
type TimerStatusOutput struct {
	Task           *domain.Task // nil when idle or dangling
	Project        *domain.Project
	Phase          domain.TimerPhase
	Elapsed        string // zero-padded HH:MM:SS
	ElapsedSeconds int
}

// TimerStatus is the use case for reading the current timer state.
// After an app restart it reconciles the elapsed time so the interval
// the process was away is masked.
type TimerStatus struct {
	repo  domain.TimeRepository
	clock domain.Clock
}

// NewTimerStatus creates a new TimerStatus use case.
func NewTimerStatus(repo domain.TimeRepository, clock domain.Clock) *TimerStatus {
	return &TimerStatus{repo: repo, clock: clock}
}

// Execute returns the reconciled timer status. The reconciled state is
// persisted back so subsequent reads keep a stable baseline.
func (uc *TimerStatus) Execute(_ context.Context) (*TimerStatusOutput, error) {
	timer, err := uc.repo.TimerState()
	if err != nil {
		return nil, fmt.Errorf("load timer state: %w", err)
	}

	now := uc.clock.Now()
	reconciled := timer.Reconcile(now)
	if reconciled != timer {
		if err := uc.repo.SaveTimerState(reconciled); err != nil {
			return nil, fmt.Errorf("save timer state: %w", err)
		}
	}

	out := &TimerStatusOutput{
		Phase:          reconciled.Phase,
		ElapsedSeconds: reconciled.Elapsed(now),
	}
	out.Elapsed = domain.FormatElapsed(out.ElapsedSeconds)

	if reconciled.TaskID != "" {
		// A dangling task reference reads as no current task.
		task, err := uc.repo.GetTask(reconciled.TaskID)
		if err != nil {
			return nil, fmt.Errorf("get task: %w", err)
		}
		out.Task = task
		if task != nil {
			project, err := uc.repo.GetProject(task.ProjectID)
			if err != nil {
				return nil, fmt.Errorf("get project: %w", err)
			}
			out.Project = project
		}
	}
	return out, nil
}
