package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/domain"
)

// AddTimeEntryInput describes a manual or backfilled entry. A nil End
// stores an open entry. Duration only applies to open entries; closed
// intervals get their durations recomputed per day segment.
type AddTimeEntryInput struct {
	End      *time.Time
	Duration *int
	TaskID   string
	Start    time.Time
}

// AddTimeEntryOutput lists the ids of the stored entries: one id, or
// one per calendar day when the interval crossed midnight.
type AddTimeEntryOutput struct {
	EntryIDs []string
}

// AddTimeEntry is the use case for recording a manual time entry.
// Intervals crossing a local calendar-day boundary are split into one
// entry per day so per-day aggregation needs no spanning logic.
type AddTimeEntry struct {
	repo   domain.TimeRepository
	idgen  domain.IDGenerator
	logger domain.Logger
}

// NewAddTimeEntry creates a new AddTimeEntry use case.
func NewAddTimeEntry(repo domain.TimeRepository, idgen domain.IDGenerator, logger domain.Logger) *AddTimeEntry {
	return &AddTimeEntry{repo: repo, idgen: idgen, logger: logger}
}

// Execute stores the entry (or its per-day segments).
func (uc *AddTimeEntry) Execute(_ context.Context, in AddTimeEntryInput) (*AddTimeEntryOutput, error) {
	task, err := uc.repo.GetTask(in.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	var entries []*domain.TimeEntry
	if in.End == nil {
		entries = []*domain.TimeEntry{{
			ID:              uc.idgen.NewID(),
			TaskID:          in.TaskID,
			StartTime:       in.Start,
			DurationSeconds: in.Duration,
		}}
	} else {
		entries, err = domain.SplitByDay(uc.idgen, in.TaskID, in.Start, *in.End)
		if err != nil {
			return nil, err
		}
	}

	out := &AddTimeEntryOutput{}
	for _, e := range entries {
		if err := uc.repo.SaveEntry(e); err != nil {
			return nil, fmt.Errorf("save entry: %w", err)
		}
		out.EntryIDs = append(out.EntryIDs, e.ID)
	}

	if uc.logger != nil {
		uc.logger.Info("tracking", fmt.Sprintf("manual entry added for %q (%d segment(s))", task.Name, len(entries)))
	}
	return out, nil
}
