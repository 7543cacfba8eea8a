package domain

import "errors"

// Domain errors.
var (
	ErrTimerRunning     = errors.New("a timer is already running")
	ErrTimerNotRunning  = errors.New("no timer is running")
	ErrTimerNotPaused   = errors.New("timer is not paused")
	ErrTimerIdle        = errors.New("timer is idle")
	ErrNoActiveEntry    = errors.New("no active time entry")
	ErrNoOpenPeriod     = errors.New("time entry has no open period")
	ErrPeriodOpen       = errors.New("time entry already has an open period")
	ErrProjectNotFound  = errors.New("project not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrGoalNotFound     = errors.New("goal not found")
	ErrAreaNotFound     = errors.New("self-care area not found")
	ErrListNotFound     = errors.New("list not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrReservedCategory = errors.New("category is reserved")
	ErrBadOrdering      = errors.New("ordering must list every id exactly once")
	ErrEmptyName        = errors.New("name cannot be empty")
	ErrInvalidDate      = errors.New("invalid date (want YYYY-MM-DD)")
	ErrInvalidInterval  = errors.New("end time is before start time")
	ErrNotInitialized   = errors.New("daybook not initialized (run 'daybook init' first)")
	ErrInvalidBackup    = errors.New("backup document failed validation")
)
