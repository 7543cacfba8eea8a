package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// AreaProgress is one area's weekly score against its target.
type AreaProgress struct {
	AreaID   string
	AreaName string
	Points   int
	Target   int // 0 = no target set
}

// GoalProgressOutput summarizes today's points, the current streak, and
// per-area weekly progress for the Monday-to-Sunday week containing
// today.
type GoalProgressOutput struct {
	Areas       []AreaProgress
	TodayPoints int
	DailyGoal   int
	Streak      int
}

// GoalProgress is the use case for the goals dashboard numbers.
type GoalProgress struct {
	repo  domain.GoalRepository
	clock domain.Clock
}

// NewGoalProgress creates a new GoalProgress use case.
func NewGoalProgress(repo domain.GoalRepository, clock domain.Clock) *GoalProgress {
	return &GoalProgress{repo: repo, clock: clock}
}

// Execute computes the progress summary.
func (uc *GoalProgress) Execute(_ context.Context) (*GoalProgressOutput, error) {
	goals, err := uc.repo.Goals()
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	areas, err := uc.repo.Areas()
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	settings, err := uc.repo.Settings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	now := uc.clock.Now()
	weekStart, weekEnd := domain.WeekWindow(now)

	out := &GoalProgressOutput{
		TodayPoints: domain.PointsOnDate(goals, now.Format(domain.DayFormat)),
		DailyGoal:   settings.DailyPointGoal,
		Streak:      domain.Streak(goals, settings.DailyPointGoal, now),
	}
	for _, a := range areas {
		out.Areas = append(out.Areas, AreaProgress{
			AreaID:   a.ID,
			AreaName: a.Name,
			Points:   domain.WeeklyAreaPoints(goals, a.ID, weekStart, weekEnd),
			Target:   settings.WeeklyGoals[a.ID],
		})
	}
	return out, nil
}
