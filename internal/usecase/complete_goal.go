package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// CompleteGoalInput marks a goal done for a day. An empty Date means
// today.
type CompleteGoalInput struct {
	GoalID string
	Date   string // YYYY-MM-DD
}

// CompleteGoalOutput reports the updated streak.
type CompleteGoalOutput struct {
	Added  bool // false when the date was already recorded
	Streak int
}

// CompleteGoal is the use case for recording a goal completion.
// Completing an already-completed date is a no-op.
type CompleteGoal struct {
	repo   domain.GoalRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewCompleteGoal creates a new CompleteGoal use case.
func NewCompleteGoal(repo domain.GoalRepository, clock domain.Clock, logger domain.Logger) *CompleteGoal {
	return &CompleteGoal{repo: repo, clock: clock, logger: logger}
}

// Execute records the completion and refreshes the streak cache.
func (uc *CompleteGoal) Execute(_ context.Context, in CompleteGoalInput) (*CompleteGoalOutput, error) {
	goal, err := uc.repo.GetGoal(in.GoalID)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	if goal == nil {
		return nil, domain.ErrGoalNotFound
	}

	date := in.Date
	if date == "" {
		date = uc.clock.Now().Format(domain.DayFormat)
	}
	added, err := goal.Complete(date)
	if err != nil {
		return nil, err
	}
	if added {
		if err := uc.repo.SaveGoal(goal); err != nil {
			return nil, fmt.Errorf("save goal: %w", err)
		}
	}

	settings, err := uc.repo.Settings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	settings.LastCompletionDate = date
	if err := refreshStreak(uc.repo, settings, uc.clock); err != nil {
		return nil, err
	}

	if uc.logger != nil && added {
		uc.logger.Info("goals", fmt.Sprintf("goal %q completed on %s", goal.Description, date))
	}
	return &CompleteGoalOutput{Added: added, Streak: settings.Streak}, nil
}

// UncompleteGoalInput removes a completion for a day.
type UncompleteGoalInput struct {
	GoalID string
	Date   string // YYYY-MM-DD, empty means today
}

// UncompleteGoal is the use case for undoing a goal completion.
type UncompleteGoal struct {
	repo   domain.GoalRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewUncompleteGoal creates a new UncompleteGoal use case.
func NewUncompleteGoal(repo domain.GoalRepository, clock domain.Clock, logger domain.Logger) *UncompleteGoal {
	return &UncompleteGoal{repo: repo, clock: clock, logger: logger}
}

// Execute removes the completion and refreshes the streak cache.
func (uc *UncompleteGoal) Execute(_ context.Context, in UncompleteGoalInput) error {
	goal, err := uc.repo.GetGoal(in.GoalID)
	if err != nil {
		return fmt.Errorf("get goal: %w", err)
	}
	if goal == nil {
		return domain.ErrGoalNotFound
	}

	date := in.Date
	if date == "" {
		date = uc.clock.Now().Format(domain.DayFormat)
	}
	if goal.Uncomplete(date) {
		if err := uc.repo.SaveGoal(goal); err != nil {
			return fmt.Errorf("save goal: %w", err)
		}
	}

	settings, err := uc.repo.Settings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := refreshStreak(uc.repo, settings, uc.clock); err != nil {
		return err
	}

	if uc.logger != nil {
		uc.logger.Info("goals", fmt.Sprintf("goal %q uncompleted on %s", goal.Description, date))
	}
	return nil
}
