package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// ResumeTimer is the use case for resuming a paused timer.
type ResumeTimer struct {
	repo   domain.TimeRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewResumeTimer creates a new ResumeTimer use case.
func NewResumeTimer(repo domain.TimeRepository, clock domain.Clock, logger domain.Logger) *ResumeTimer {
	return &ResumeTimer{repo: repo, clock: clock, logger: logger}
}

// Execute resumes the timer: opens a new period on the active entry.
// Returns domain.ErrTimerNotPaused when the timer is not paused.
func (uc *ResumeTimer) Execute(_ context.Context) error {
	timer, err := uc.repo.TimerState()
	if err != nil {
		return fmt.Errorf("load timer state: %w", err)
	}

	now := uc.clock.Now()
	next, err := timer.Resume(now)
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
	if err := entry.OpenPeriod(now); err != nil {
		return err
	}
	entry.IsRunning = true
	entry.IsPaused = false

	if err := uc.repo.SaveEntry(entry); err != nil {
		return fmt.Errorf("save entry: %w", err)
	}
	if err := uc.repo.SaveTimerState(next); err != nil {
		return fmt.Errorf("save timer state: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("timer", "resumed")
	}
	return nil
}
