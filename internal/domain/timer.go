package domain

import "time"

// TimerPhase is the lifecycle state of the singleton timer.
type TimerPhase string

const (
	TimerIdle    TimerPhase = "idle"    // No active entry
	TimerRunning TimerPhase = "running" // Accumulating time
	TimerPaused  TimerPhase = "paused"  // Active entry, clock stopped
)

// TimerState is the persisted singleton describing the active timer.
// While running, TaskID, EntryID, and StartTime are all set and EntryID
// references a TimeEntry with IsRunning=true. Transitions return a new
// state; illegal transitions return typed errors instead of silently
// doing nothing.
type TimerState struct {
	StartTime      time.Time  `json:"startTime,omitzero"`
	TaskID         string     `json:"currentTaskId,omitempty"`
	EntryID        string     `json:"currentTimeEntryId,omitempty"`
	Phase          TimerPhase `json:"phase"`
	ElapsedSeconds int        `json:"elapsedSeconds"`
}

// IdleTimer returns the reset timer state.
func IdleTimer() TimerState {
	return TimerState{Phase: TimerIdle}
}

// IsRunning reports whether the timer is currently accumulating time.
func (s TimerState) IsRunning() bool {
	return s.Phase == TimerRunning
}

// Start transitions Idle -> Running for the given task and entry.
// elapsedSeconds seeds the display for backdated starts.
func (s TimerState) Start(taskID, entryID string, now time.Time, elapsedSeconds int) (TimerState, error) {
	if s.Phase != TimerIdle {
		return s, ErrTimerRunning
	}
	return TimerState{
		Phase:          TimerRunning,
		TaskID:         taskID,
		EntryID:        entryID,
		StartTime:      now,
		ElapsedSeconds: elapsedSeconds,
	}, nil
}

// Pause transitions Running -> Paused, folding the running interval
// into ElapsedSeconds and clearing StartTime.
func (s TimerState) Pause(now time.Time) (TimerState, error) {
	if s.Phase != TimerRunning {
		return s, ErrTimerNotRunning
	}
	s.ElapsedSeconds += runningSeconds(s.StartTime, now)
	s.StartTime = time.Time{}
	s.Phase = TimerPaused
	return s, nil
}

// Resume transitions Paused -> Running.
func (s TimerState) Resume(now time.Time) (TimerState, error) {
	if s.Phase != TimerPaused {
		return s, ErrTimerNotPaused
	}
	s.StartTime = now
	s.Phase = TimerRunning
	return s, nil
}

// Stop transitions Running or Paused -> Idle.
func (s TimerState) Stop() (TimerState, error) {
	if s.Phase == TimerIdle {
		return s, ErrTimerIdle
	}
	return IdleTimer(), nil
}

// Reconcile folds the interval the process was away into
// ElapsedSeconds. Called once after loading a persisted state so the
// display masks the app's inactive interval. Idle and paused states
// are returned unchanged.
func (s TimerState) Reconcile(now time.Time) TimerState {
	if s.Phase != TimerRunning {
		return s
	}
	s.ElapsedSeconds += runningSeconds(s.StartTime, now)
	s.StartTime = now
	return s
}

// Elapsed returns the displayable elapsed seconds as of now.
func (s TimerState) Elapsed(now time.Time) int {
	if s.Phase != TimerRunning {
		return s.ElapsedSeconds
	}
	return s.ElapsedSeconds + runningSeconds(s.StartTime, now)
}

func runningSeconds(start, now time.Time) int {
	if start.IsZero() || !now.After(start) {
		return 0
	}
	return int(now.Sub(start).Seconds())
}
