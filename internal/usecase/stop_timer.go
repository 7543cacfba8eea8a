package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// StopTimerOutput reports the finalized entry.
type StopTimerOutput struct {
	EntryID         string
	DurationSeconds int
}

// StopTimer is the use case for stopping the timer and finalizing the
// active entry.
type StopTimer struct {
	repo   domain.TimeRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewStopTimer creates a new StopTimer use case.
func NewStopTimer(repo domain.TimeRepository, clock domain.Clock, logger domain.Logger) *StopTimer {
	return &StopTimer{repo: repo, clock: clock, logger: logger}
}

// Execute stops the timer from either the running or the paused state.
// The entry's duration is fixed to the sum of its period lengths.
// Returns domain.ErrTimerIdle when no timer is active.
func (uc *StopTimer) Execute(_ context.Context) (*StopTimerOutput, error) {
	timer, err := uc.repo.TimerState()
	if err != nil {
		return nil, fmt.Errorf("load timer state: %w", err)
	}

	next, err := timer.Stop()
	if err != nil {
		return nil, err
	}

	entry, err := uc.repo.GetEntry(timer.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	if entry == nil {
		return nil, domain.ErrNoActiveEntry
	}

	now := uc.clock.Now()
	entry.Finalize(now)

	if err := uc.repo.SaveEntry(entry); err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}
	if err := uc.repo.SaveTimerState(next); err != nil {
		return nil, fmt.Errorf("save timer state: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("timer", fmt.Sprintf("stopped after %s", domain.FormatElapsed(*entry.DurationSeconds)))
	}
	return &StopTimerOutput{EntryID: entry.ID, DurationSeconds: *entry.DurationSeconds}, nil
}
