package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/domain"
)

// UpdateTimeEntryInput is a partial update: nil fields keep their
// current value.
type UpdateTimeEntryInput struct {
	Start    *time.Time
	End      *time.Time
	Duration *int
	TaskID   *string
	EntryID  string
}

// UpdateTimeEntry is the use case for editing a stored entry. When the
// entry carries periods its duration is re-derived from them, so a
// partial update cannot desynchronize the duration invariant.
type UpdateTimeEntry struct {
	repo   domain.TimeRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewUpdateTimeEntry creates a new UpdateTimeEntry use case.
func NewUpdateTimeEntry(repo domain.TimeRepository, clock domain.Clock, logger domain.Logger) *UpdateTimeEntry {
	return &UpdateTimeEntry{repo: repo, clock: clock, logger: logger}
}

// Execute applies the partial update.
func (uc *UpdateTimeEntry) Execute(_ context.Context, in UpdateTimeEntryInput) error {
	entry, err := uc.repo.GetEntry(in.EntryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry == nil {
		return domain.ErrEntryNotFound
	}

	if in.TaskID != nil {
		task, err := uc.repo.GetTask(*in.TaskID)
		if err != nil {
			return fmt.Errorf("get task: %w", err)
		}
		if task == nil {
			return domain.ErrTaskNotFound
		}
		entry.TaskID = *in.TaskID
	}
	if in.Start != nil {
		entry.StartTime = *in.Start
	}
	if in.End != nil {
		end := *in.End
		entry.EndTime = &end
	}
	if in.Duration != nil {
		entry.DurationSeconds = in.Duration
	}
	if entry.EndTime != nil && entry.EndTime.Before(entry.StartTime) {
		return domain.ErrInvalidInterval
	}

	// Periods stay authoritative for the duration.
	if len(entry.Periods) > 0 && !entry.IsRunning {
		d := entry.PeriodSeconds(uc.clock.Now())
		entry.DurationSeconds = &d
	}

	if err := uc.repo.SaveEntry(entry); err != nil {
		return fmt.Errorf("save entry: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("tracking", fmt.Sprintf("entry %s updated", in.EntryID))
	}
	return nil
}

// DeleteTimeEntryInput identifies the entry to delete.
type DeleteTimeEntryInput struct {
	EntryID string
}

// DeleteTimeEntry is the use case for deleting a time entry.
type DeleteTimeEntry struct {
	repo   domain.TimeRepository
	logger domain.Logger
}

// NewDeleteTimeEntry creates a new DeleteTimeEntry use case.
func NewDeleteTimeEntry(repo domain.TimeRepository, logger domain.Logger) *DeleteTimeEntry {
	return &DeleteTimeEntry{repo: repo, logger: logger}
}

// Execute deletes the entry. Deleting the active entry resets the timer.
func (uc *DeleteTimeEntry) Execute(_ context.Context, in DeleteTimeEntryInput) error {
	entry, err := uc.repo.GetEntry(in.EntryID)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry == nil {
		return domain.ErrEntryNotFound
	}

	timer, err := uc.repo.TimerState()
	if err != nil {
		return fmt.Errorf("load timer state: %w", err)
	}
	if timer.EntryID == in.EntryID {
		if err := uc.repo.SaveTimerState(domain.IdleTimer()); err != nil {
			return fmt.Errorf("reset timer state: %w", err)
		}
	}

	if err := uc.repo.DeleteEntry(in.EntryID); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("tracking", fmt.Sprintf("entry %s deleted", in.EntryID))
	}
	return nil
}
