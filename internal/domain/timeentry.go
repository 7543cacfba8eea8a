package domain

import (
	"fmt"
	"time"
)

// Period is one contiguous running interval within a TimeEntry,
// bounded by pause/resume actions. End is nil while the period is open.
type Period struct {
	Start time.Time  `json:"startTime"`
	End   *time.Time `json:"endTime,omitempty"`
}

// TimeEntry records time spent on a task. An entry with a nil EndTime
// and IsRunning=true is the currently active timer; at most one such
// entry exists system-wide.
type TimeEntry struct {
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationSeconds *int       `json:"duration,omitempty"`
	ID              string     `json:"id"`
	TaskID          string     `json:"taskId"`
	Periods         []Period   `json:"periods,omitempty"`
	IsRunning       bool       `json:"isRunning,omitempty"`
	IsPaused        bool       `json:"isPaused,omitempty"`
}

// OpenPeriod appends a new open period starting at now.
// Returns ErrPeriodOpen if the last period is still open.
func (e *TimeEntry) OpenPeriod(now time.Time) error {
	if n := len(e.Periods); n > 0 && e.Periods[n-1].End == nil {
		return ErrPeriodOpen
	}
	e.Periods = append(e.Periods, Period{Start: now})
	return nil
}

// ClosePeriod closes the currently open period at now.
// Returns ErrNoOpenPeriod if no period is open.
func (e *TimeEntry) ClosePeriod(now time.Time) error {
	n := len(e.Periods)
	if n == 0 || e.Periods[n-1].End != nil {
		return ErrNoOpenPeriod
	}
	end := now
	e.Periods[n-1].End = &end
	return nil
}

// PeriodSeconds sums the entry's period lengths in whole seconds,
// truncated toward zero. Open periods are measured against now as a
// safety net.
func (e *TimeEntry) PeriodSeconds(now time.Time) int {
	total := 0
	for _, p := range e.Periods {
		end := now
		if p.End != nil {
			end = *p.End
		}
		if end.After(p.Start) {
			total += int(end.Sub(p.Start).Seconds())
		}
	}
	return total
}

// Finalize stops the entry: closes any open period, fixes the duration
// to the sum of period lengths, sets the end time, and clears the
// running/paused flags.
func (e *TimeEntry) Finalize(now time.Time) {
	if n := len(e.Periods); n > 0 && e.Periods[n-1].End == nil {
		end := now
		e.Periods[n-1].End = &end
	}
	d := e.PeriodSeconds(now)
	e.DurationSeconds = &d
	end := now
	e.EndTime = &end
	e.IsRunning = false
	e.IsPaused = false
}

// Seconds returns the entry's tracked seconds for aggregation:
// the finalized duration if fixed, otherwise the period sum, otherwise
// the start/end interval (now for open entries).
func (e *TimeEntry) Seconds(now time.Time) int {
	if e.DurationSeconds != nil {
		return *e.DurationSeconds
	}
	if len(e.Periods) > 0 {
		return e.PeriodSeconds(now)
	}
	end := now
	if e.EndTime != nil {
		end = *e.EndTime
	}
	if !end.After(e.StartTime) {
		return 0
	}
	return int(end.Sub(e.StartTime).Seconds())
}

// sameDay reports whether a and b fall on the same calendar day in
// their own locations.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// nextMidnight returns 00:00:00.000 of the day after t, in t's location.
func nextMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
}

// SplitByDay builds the time entries for a manual interval. An interval
// contained in one calendar day yields a single entry. An interval
// crossing midnight yields one entry per day: every non-final segment
// ends one millisecond before the next midnight but is counted up to
// the boundary, so segment durations sum to the full interval. Each
// entry gets a distinct id from idgen.
func SplitByDay(idgen IDGenerator, taskID string, start, end time.Time) ([]*TimeEntry, error) {
	if end.Before(start) {
		return nil, ErrInvalidInterval
	}

	var entries []*TimeEntry
	segStart := start
	for !sameDay(segStart, end) {
		boundary := nextMidnight(segStart)
		segEnd := boundary.Add(-time.Millisecond)
		// Count the full span to the boundary, not to the clipped end,
		// so the per-day durations add up to the original interval.
		dur := int(boundary.Sub(segStart).Seconds())
		entries = append(entries, &TimeEntry{
			ID:              idgen.NewID(),
			TaskID:          taskID,
			StartTime:       segStart,
			EndTime:         &segEnd,
			DurationSeconds: &dur,
		})
		segStart = boundary
	}

	finalEnd := end
	dur := int(finalEnd.Sub(segStart).Seconds())
	entries = append(entries, &TimeEntry{
		ID:              idgen.NewID(),
		TaskID:          taskID,
		StartTime:       segStart,
		EndTime:         &finalEnd,
		DurationSeconds: &dur,
	})
	return entries, nil
}

// FormatElapsed renders a second count as zero-padded HH:MM:SS.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
