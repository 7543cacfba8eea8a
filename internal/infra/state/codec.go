package state

import (
	"fmt"
	"strconv"
	"time"

	"github.com/daybook-app/daybook/internal/domain"
)

// timeLayout is the on-disk timestamp format (ISO 8601 with sub-second
// precision preserved).
const timeLayout = time.RFC3339Nano

// ProjectRecord is the wire form of a domain.Project.
type ProjectRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedAt string `json:"createdAt"`
}

// TaskRecord is the wire form of a domain.Task.
type TaskRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"projectId"`
	Color     string `json:"color,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// PeriodRecord is the wire form of a domain.Period.
type PeriodRecord struct {
	StartTime string  `json:"startTime"`
	EndTime   *string `json:"endTime,omitempty"`
}

// EntryRecord is the wire form of a domain.TimeEntry.
type EntryRecord struct {
	ID        string         `json:"id"`
	TaskID    string         `json:"taskId"`
	StartTime string         `json:"startTime"`
	EndTime   *string        `json:"endTime,omitempty"`
	Duration  *int           `json:"duration,omitempty"`
	IsRunning bool           `json:"isRunning,omitempty"`
	IsPaused  bool           `json:"isPaused,omitempty"`
	Periods   []PeriodRecord `json:"periods,omitempty"`
}

// TimerRecord is the wire form of the singleton domain.TimerState.
type TimerRecord struct {
	Phase          string  `json:"phase"`
	TaskID         string  `json:"currentTaskId,omitempty"`
	EntryID        string  `json:"currentTimeEntryId,omitempty"`
	StartTime      *string `json:"startTime,omitempty"`
	ElapsedSeconds int     `json:"elapsedSeconds"`
}

// SettingsRecord is the wire form of domain.GoalSettings. Weekly
// targets are stored as strings to keep the backup file contract.
type SettingsRecord struct {
	DailyPointGoal     int               `json:"dailyPointGoal"`
	WeeklyGoals        map[string]string `json:"weeklyGoals"`
	LastCompletionDate string            `json:"lastCompletionDate,omitempty"`
	Streak             int               `json:"streak"`
}

func encodeTime(t time.Time) string {
	return t.Format(timeLayout)
}

func decodeTime(field, s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("field %s: bad timestamp %q: %w", field, s, err)
	}
	return t, nil
}

func encodeTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := encodeTime(*t)
	return &s
}

func decodeTimePtr(field string, s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := decodeTime(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// EncodeProject converts a project to its wire form.
func EncodeProject(p *domain.Project) ProjectRecord {
	return ProjectRecord{ID: p.ID, Name: p.Name, Color: p.Color, CreatedAt: encodeTime(p.CreatedAt)}
}

// DecodeProject converts a wire record back to a project.
func DecodeProject(r ProjectRecord) (*domain.Project, error) {
	created, err := decodeTime("project.createdAt", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Project{ID: r.ID, Name: r.Name, Color: r.Color, CreatedAt: created}, nil
}

// EncodeTask converts a task to its wire form.
func EncodeTask(t *domain.Task) TaskRecord {
	return TaskRecord{ID: t.ID, Name: t.Name, ProjectID: t.ProjectID, Color: t.Color, CreatedAt: encodeTime(t.CreatedAt)}
}

// DecodeTask converts a wire record back to a task.
func DecodeTask(r TaskRecord) (*domain.Task, error) {
	created, err := decodeTime("task.createdAt", r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.Task{ID: r.ID, Name: r.Name, ProjectID: r.ProjectID, Color: r.Color, CreatedAt: created}, nil
}

// EncodeEntry converts a time entry to its wire form.
func EncodeEntry(e *domain.TimeEntry) EntryRecord {
	rec := EntryRecord{
		ID:        e.ID,
		TaskID:    e.TaskID,
		StartTime: encodeTime(e.StartTime),
		EndTime:   encodeTimePtr(e.EndTime),
		Duration:  e.DurationSeconds,
		IsRunning: e.IsRunning,
		IsPaused:  e.IsPaused,
	}
	for _, p := range e.Periods {
		rec.Periods = append(rec.Periods, PeriodRecord{
			StartTime: encodeTime(p.Start),
			EndTime:   encodeTimePtr(p.End),
		})
	}
	return rec
}

// DecodeEntry converts a wire record back to a time entry.
func DecodeEntry(r EntryRecord) (*domain.TimeEntry, error) {
	start, err := decodeTime("entry.startTime", r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := decodeTimePtr("entry.endTime", r.EndTime)
	if err != nil {
		return nil, err
	}
	entry := &domain.TimeEntry{
		ID:              r.ID,
		TaskID:          r.TaskID,
		StartTime:       start,
		EndTime:         end,
		DurationSeconds: r.Duration,
		IsRunning:       r.IsRunning,
		IsPaused:        r.IsPaused,
	}
	for i, p := range r.Periods {
		ps, err := decodeTime(fmt.Sprintf("entry.periods[%d].startTime", i), p.StartTime)
		if err != nil {
			return nil, err
		}
		pe, err := decodeTimePtr(fmt.Sprintf("entry.periods[%d].endTime", i), p.EndTime)
		if err != nil {
			return nil, err
		}
		entry.Periods = append(entry.Periods, domain.Period{Start: ps, End: pe})
	}
	return entry, nil
}

// EncodeTimer converts the timer state to its wire form.
func EncodeTimer(s domain.TimerState) TimerRecord {
	rec := TimerRecord{
		Phase:          string(s.Phase),
		TaskID:         s.TaskID,
		EntryID:        s.EntryID,
		ElapsedSeconds: s.ElapsedSeconds,
	}
	if !s.StartTime.IsZero() {
		start := encodeTime(s.StartTime)
		rec.StartTime = &start
	}
	return rec
}

// DecodeTimer converts a wire record back to the timer state. An
// unknown phase resets to idle rather than keeping a state the engine
// cannot act on.
func DecodeTimer(r TimerRecord) (domain.TimerState, error) {
	phase := domain.TimerPhase(r.Phase)
	switch phase {
	case domain.TimerIdle, domain.TimerRunning, domain.TimerPaused:
	default:
		return domain.IdleTimer(), nil
	}
	s := domain.TimerState{
		Phase:          phase,
		TaskID:         r.TaskID,
		EntryID:        r.EntryID,
		ElapsedSeconds: r.ElapsedSeconds,
	}
	if r.StartTime != nil {
		start, err := decodeTime("timer.startTime", *r.StartTime)
		if err != nil {
			return domain.IdleTimer(), err
		}
		s.StartTime = start
	}
	return s, nil
}

// ValidateGoal rejects goals carrying malformed completion dates.
func ValidateGoal(g *domain.Goal) error {
	seen := make(map[string]bool, len(g.CompletedDates))
	for _, d := range g.CompletedDates {
		if !domain.ValidDay(d) {
			return fmt.Errorf("goal %s: bad completion date %q: %w", g.ID, d, domain.ErrInvalidDate)
		}
		if seen[d] {
			return fmt.Errorf("goal %s: duplicate completion date %q", g.ID, d)
		}
		seen[d] = true
	}
	return nil
}

// EncodeSettings converts goal settings to their wire form.
func EncodeSettings(s *domain.GoalSettings) SettingsRecord {
	rec := SettingsRecord{
		DailyPointGoal:     s.DailyPointGoal,
		WeeklyGoals:        make(map[string]string, len(s.WeeklyGoals)),
		LastCompletionDate: s.LastCompletionDate,
		Streak:             s.Streak,
	}
	for areaID, target := range s.WeeklyGoals {
		rec.WeeklyGoals[areaID] = strconv.Itoa(target)
	}
	return rec
}

// DecodeSettings converts a wire record back to goal settings.
// Unparseable weekly targets count as no target.
func DecodeSettings(r SettingsRecord) *domain.GoalSettings {
	s := &domain.GoalSettings{
		DailyPointGoal:     r.DailyPointGoal,
		WeeklyGoals:        make(map[string]int, len(r.WeeklyGoals)),
		LastCompletionDate: r.LastCompletionDate,
		Streak:             r.Streak,
	}
	for areaID, target := range r.WeeklyGoals {
		if n, err := strconv.Atoi(target); err == nil {
			s.WeeklyGoals[areaID] = n
		}
	}
	return s
}
