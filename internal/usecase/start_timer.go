package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/domain"
)

// StartTimerInput contains the parameters for starting the timer.
// StartedAt backdates the entry ("I started earlier"): the entry keeps
// the caller's start time while the first period begins now, and
// ElapsedSeconds seeds the display with the backdated duration.
type StartTimerInput struct {
	StartedAt      *time.Time
	TaskID         string
	ElapsedSeconds int
}

// StartTimerOutput contains the result of starting the timer.
type StartTimerOutput struct {
	EntryID string
}

// StartTimer is the use case for starting the global timer on a task.
type StartTimer struct {
	repo   domain.TimeRepository
	clock  domain.Clock
	idgen  domain.IDGenerator
	logger domain.Logger
}

// NewStartTimer creates a new StartTimer use case.
func NewStartTimer(repo domain.TimeRepository, clock domain.Clock, idgen domain.IDGenerator, logger domain.Logger) *StartTimer {
	return &StartTimer{repo: repo, clock: clock, idgen: idgen, logger: logger}
}

// Execute starts the timer. Returns domain.ErrTimerRunning when a
// timer is already active.
func (uc *StartTimer) Execute(_ context.Context, in StartTimerInput) (*StartTimerOutput, error) {
	task, err := uc.repo.GetTask(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	timer, err := uc.repo.TimerState()
	if err != nil {
		return nil, fmt.Errorf("load timer state: %w", err)
	}

	now := uc.clock.Now()
	entryStart := now
	elapsed := 0
	if in.StartedAt != nil {
		entryStart = *in.StartedAt
		elapsed = in.ElapsedSeconds
	}

	entry := &domain.TimeEntry{
		ID:        uc.idgen.NewID(),
		TaskID:    in.TaskID,
		StartTime: entryStart,
		IsRunning: true,
	}
	if err := entry.OpenPeriod(now); err != nil {
		return nil, err
	}

	next, err := timer.Start(in.TaskID, entry.ID, now, elapsed)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.SaveEntry(entry); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}
	if err := uc.repo.SaveTimerState(next); err != nil {
		return nil, fmt.Errorf("save timer state: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("timer", fmt.Sprintf("started on task %q", task.Name))
	}
	return &StartTimerOutput{EntryID: entry.ID}, nil
}
