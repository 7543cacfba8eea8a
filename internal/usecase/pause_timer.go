package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// PauseTimer is the use case for pausing the running timer.
type PauseTimer struct {
	repo   domain.TimeRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewPauseTimer creates a new PauseTimer use case.
func NewPauseTimer(repo domain.TimeRepository, clock domain.Clock, logger domain.Logger) *PauseTimer {
	return &PauseTimer{repo: repo, clock: clock, logger: logger}
}

// Execute pauses the timer: closes the active entry's open period and
// freezes the elapsed display. Returns domain.ErrTimerNotRunning when
// the timer is not running.
func (uc *PauseTimer) Execute(_ context.Context) error {
	timer, err := uc.repo.TimerState()
	if err != nil {
		return fmt.Errorf("load timer state: %w", err)
	}

	now := uc.clock.Now()
	next, err := timer.Pause(now)
	if err != nil {
		return err
	}

	entry, err := uc.repo.GetEntry(timer.EntryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry == nil {
		return domain.ErrNoActiveEntry
	}
	if err := entry.ClosePeriod(now); err != nil {
		return err
	}
	entry.IsRunning = false
	entry.IsPaused = true

	if err := uc.repo.SaveEntry(entry); err != nil {
		return fmt.Errorf("save entry: %w", err)
	}
	if err := uc.repo.SaveTimerState(next); err != nil {
		return fmt.Errorf("save timer state: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("timer", "paused")
	}
	return nil
}
