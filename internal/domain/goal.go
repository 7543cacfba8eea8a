package domain

import (
	"slices"
	"time"
)

// DayFormat is the calendar-day layout used for goal completion dates.
const DayFormat = "2006-01-02"

// streakLookbackDays bounds the backward walk in Streak so corrupted
// completion data (e.g. future dates) cannot loop forever.
const streakLookbackDays = 730

// Goal is a repeatable or one-time objective worth a number of points.
// RepetitionDays holds weekdays 0=Sunday..6=Saturday; empty means a
// one-time goal. CompletedDates holds distinct YYYY-MM-DD strings.
type Goal struct {
	ID             string   `json:"id"`
	Description    string   `json:"description"`
	AreaID         string   `json:"areaId"`
	Icon           string   `json:"icon"`
	Color          string   `json:"color,omitempty"`
	RepetitionDays []int    `json:"repetitionDays"`
	CompletedDates []string `json:"completedDates"`
	Points         int      `json:"points"`
}

// IsOneTime reports whether the goal has no repetition schedule.
func (g *Goal) IsOneTime() bool {
	return len(g.RepetitionDays) == 0
}

// CompletedOn reports whether the goal was completed on the given day.
func (g *Goal) CompletedOn(day string) bool {
	return slices.Contains(g.CompletedDates, day)
}

// Complete marks the goal completed on the given day. Idempotent:
// returns false without mutating when the day is already recorded.
func (g *Goal) Complete(day string) (bool, error) {
	if !ValidDay(day) {
		return false, ErrInvalidDate
	}
	if g.CompletedOn(day) {
		return false, nil
	}
	g.CompletedDates = append(g.CompletedDates, day)
	return true, nil
}

// Uncomplete removes the completion for the given day.
// Returns false when the day was not recorded.
func (g *Goal) Uncomplete(day string) bool {
	i := slices.Index(g.CompletedDates, day)
	if i < 0 {
		return false
	}
	g.CompletedDates = slices.Delete(g.CompletedDates, i, i+1)
	return true
}

// ValidDay reports whether s is a well-formed YYYY-MM-DD calendar day.
func ValidDay(s string) bool {
	_, err := time.Parse(DayFormat, s)
	return err == nil
}

// PointsOnDate sums the points of every goal completed on the given day.
func PointsOnDate(goals []*Goal, day string) int {
	total := 0
	for _, g := range goals {
		if g.CompletedOn(day) {
			total += g.Points
		}
	}
	return total
}

// Streak counts the consecutive calendar days, walking backward from
// today inclusive, whose completed-goal points meet dailyGoal. The walk
// stops at the first failing day and is capped at two years.
func Streak(goals []*Goal, dailyGoal int, today time.Time) int {
	if dailyGoal <= 0 {
		return 0
	}
	count := 0
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for count < streakLookbackDays {
		if PointsOnDate(goals, day.Format(DayFormat)) < dailyGoal {
			break
		}
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

// WeekWindow returns the current week's bounds: Monday 00:00:00 through
// Sunday 23:59:59, in today's location. Sunday counts as day 7 when
// computing the Monday offset.
func WeekWindow(today time.Time) (time.Time, time.Time) {
	weekday := int(today.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := time.Date(today.Year(), today.Month(), today.Day()-(weekday-1), 0, 0, 0, 0, today.Location())
	sunday := monday.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return monday, sunday
}

// WeeklyAreaPoints sums points for every (goal, date) pair where the
// goal belongs to the area and the completion date falls inside the
// [weekStart, weekEnd] window.
func WeeklyAreaPoints(goals []*Goal, areaID string, weekStart, weekEnd time.Time) int {
	total := 0
	for _, g := range goals {
		if g.AreaID != areaID {
			continue
		}
		for _, day := range g.CompletedDates {
			d, err := time.ParseInLocation(DayFormat, day, weekStart.Location())
			if err != nil {
				continue
			}
			if !d.Before(weekStart) && !d.After(weekEnd) {
				total += g.Points
			}
		}
	}
	return total
}
