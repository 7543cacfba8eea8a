package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/daybook-app/daybook/internal/domain"
)

// AddGoalInput contains the parameters for creating a goal.
// RepetitionDays holds weekdays 0=Sunday..6=Saturday; empty means a
// one-time goal.
type AddGoalInput struct {
	Description    string
	AreaID         string
	Icon           string
	Color          string
	RepetitionDays []int
	Points         int
}

// AddGoalOutput contains the result of creating a goal.
type AddGoalOutput struct {
	GoalID string
}

// AddGoal is the use case for creating a goal inside an area.
type AddGoal struct {
	repo   domain.GoalRepository
	idgen  domain.IDGenerator
	logger domain.Logger
}

// NewAddGoal creates a new AddGoal use case.
func NewAddGoal(repo domain.GoalRepository, idgen domain.IDGenerator, logger domain.Logger) *AddGoal {
	return &AddGoal{repo: repo, idgen: idgen, logger: logger}
}

// Execute creates the goal.
func (uc *AddGoal) Execute(_ context.Context, in AddGoalInput) (*AddGoalOutput, error) {
	if in.Description == "" {
		return nil, domain.ErrEmptyName
	}
	area, err := uc.repo.GetArea(in.AreaID)
	if err != nil {
		return nil, fmt.Errorf("get area: %w", err)
	}
	if area == nil {
		return nil, domain.ErrAreaNotFound
	}
	for _, d := range in.RepetitionDays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("repetition day %d out of range 0..6", d)
		}
	}

	goal := &domain.Goal{
		ID:             uc.idgen.NewID(),
		Description:    in.Description,
		AreaID:         in.AreaID,
		Icon:           in.Icon,
		Color:          in.Color,
		RepetitionDays: slices.Clone(in.RepetitionDays),
		Points:         in.Points,
	}
	if err := uc.repo.SaveGoal(goal); err != nil {
		return nil, fmt.Errorf("save goal: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("goals", fmt.Sprintf("goal created: %q in %q", in.Description, area.Name))
	}
	return &AddGoalOutput{GoalID: goal.ID}, nil
}

// UpdateGoalInput is a partial goal update: nil fields keep their
// current value.
type UpdateGoalInput struct {
	Description    *string
	AreaID         *string
	Icon           *string
	Color          *string
	Points         *int
	RepetitionDays *[]int
	GoalID         string
}

// UpdateGoal is the use case for editing a goal.
type UpdateGoal struct {
	repo   domain.GoalRepository
	logger domain.Logger
}

// NewUpdateGoal creates a new UpdateGoal use case.
func NewUpdateGoal(repo domain.GoalRepository, logger domain.Logger) *UpdateGoal {
	return &UpdateGoal{repo: repo, logger: logger}
}

// Execute applies the partial update.
func (uc *UpdateGoal) Execute(_ context.Context, in UpdateGoalInput) error {
	goal, err := uc.repo.GetGoal(in.GoalID)
	if err != nil {
		return fmt.Errorf("get goal: %w", err)
	}
	if goal == nil {
		return domain.ErrGoalNotFound
	}

	if in.AreaID != nil {
		area, err := uc.repo.GetArea(*in.AreaID)
		if err != nil {
			return fmt.Errorf("get area: %w", err)
		}
		if area == nil {
			return domain.ErrAreaNotFound
		}
		goal.AreaID = *in.AreaID
	}
	if in.Description != nil {
		if *in.Description == "" {
			return domain.ErrEmptyName
		}
		goal.Description = *in.Description
	}
	if in.Icon != nil {
		goal.Icon = *in.Icon
	}
	if in.Color != nil {
		goal.Color = *in.Color
	}
	if in.Points != nil {
		goal.Points = *in.Points
	}
	if in.RepetitionDays != nil {
		goal.RepetitionDays = slices.Clone(*in.RepetitionDays)
	}

	if err := uc.repo.SaveGoal(goal); err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("goals", fmt.Sprintf("goal %s updated", in.GoalID))
	}
	return nil
}

// DeleteGoalInput identifies the goal to delete.
type DeleteGoalInput struct {
	GoalID string
}

// DeleteGoal is the use case for deleting a goal.
type DeleteGoal struct {
	repo   domain.GoalRepository
	clock  domain.Clock
	logger domain.Logger
}

// NewDeleteGoal creates a new DeleteGoal use case.
func NewDeleteGoal(repo domain.GoalRepository, clock domain.Clock, logger domain.Logger) *DeleteGoal {
	return &DeleteGoal{repo: repo, clock: clock, logger: logger}
}

// Execute deletes the goal and refreshes the streak cache.
func (uc *DeleteGoal) Execute(_ context.Context, in DeleteGoalInput) error {
	goal, err := uc.repo.GetGoal(in.GoalID)
	if err != nil {
		return fmt.Errorf("get goal: %w", err)
	}
	if goal == nil {
		return domain.ErrGoalNotFound
	}

	if err := uc.repo.DeleteGoal(in.GoalID); err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}

	settings, err := uc.repo.Settings()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if err := refreshStreak(uc.repo, settings, uc.clock); err != nil {
		return err
	}

	if uc.logger != nil {
		uc.logger.Info("goals", fmt.Sprintf("goal deleted: %q", goal.Description))
	}
	return nil
}
