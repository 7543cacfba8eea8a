package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// DeleteAreaInput identifies the area to delete.
type DeleteAreaInput struct {
	AreaID string
}

// DeleteArea is the use case for deleting a self-care area. Every goal
// referencing the area is deleted first, and the streak cache is
// refreshed only after both collections are updated.
type DeleteArea struct {
	repo   domain.GoalRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewDeleteArea creates a new DeleteArea use case.
func NewDeleteArea(repo domain.GoalRepository, clock domain.Clock, logger domain.Logger) *DeleteArea {
	return &DeleteArea{repo: repo, clock: clock, logger: logger}
}

// Execute deletes the area, cascading to its goals.
func (uc *DeleteArea) Execute(_ context.Context, in DeleteAreaInput) error {
	area, err := uc.repo.GetArea(in.AreaID)
	if err != nil {
		return fmt.Errorf("get area: %w", err)
	}
	if area == nil {
		return domain.ErrAreaNotFound
	}

	goals, err := uc.repo.Goals()
	if err != nil {
		return fmt.Errorf("list goals: %w", err)
	}
	deleted := 0
	for _, g := range goals {
		if g.AreaID != in.AreaID {
			continue
		}
		if err := uc.repo.DeleteGoal(g.ID); err != nil {
			return fmt.Errorf("delete goal: %w", err)
		}
		deleted++
	}

	if err := uc.repo.DeleteArea(in.AreaID); err != nil {
		return fmt.Errorf("delete area: %w", err)
	}

	settings, err := uc.repo.Settings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	delete(settings.WeeklyGoals, in.AreaID)
	if err := refreshStreak(uc.repo, settings, uc.clock); err != nil {
		return err
	}

	if uc.logger != nil {
		uc.logger.Info("goals", fmt.Sprintf("area %q deleted with %d goal(s)", area.Name, deleted))
	}
	return nil
}

// refreshStreak recomputes the cached streak from the goal collection
// and persists the settings.
func refreshStreak(repo domain.GoalRepository, settings *domain.GoalSettings, clock domain.Clock) error {
	goals, err := repo.Goals()
	if err != nil {
		return fmt.Errorf("list goals: %w", err)
	}
	settings.Streak = domain.Streak(goals, settings.DailyPointGoal, clock.Now())
	if err := repo.SaveSettings(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
