package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// NewAreaInput contains the parameters for creating a self-care area.
type NewAreaInput struct {
	Name         string
	Icon         string
	Color        string
	WeeklyTarget int // 0 = no weekly target
}

// NewAreaOutput contains the result of creating an area.
type NewAreaOutput struct {
	AreaID string
}

// NewArea is the use case for creating a self-care area.
type NewArea struct {
	repo   domain.GoalRepository
	idgen  domain.IDGenerator
	logger domain.Logger
}

// NewNewArea creates a new NewArea use case.
func NewNewArea(repo domain.GoalRepository, idgen domain.IDGenerator, logger domain.Logger) *NewArea {
	return &NewArea{repo: repo, idgen: idgen, logger: logger}
}

// Execute creates the area and records its weekly target when set.
func (uc *NewArea) Execute(_ context.Context, in NewAreaInput) (*NewAreaOutput, error) {
	if in.Name == "" {
		return nil, domain.ErrEmptyName
	}

	area := &domain.SelfCareArea{
		ID:    uc.idgen.NewID(),
		Name:  in.Name,
		Icon:  in.Icon,
		Color: in.Color,
	}
	if err := uc.repo.SaveArea(area); err != nil {
		return nil, fmt.Errorf("save area: %w", err)
	}

	if in.WeeklyTarget > 0 {
		settings, err := uc.repo.Settings()
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		settings.WeeklyGoals[area.ID] = in.WeeklyTarget
		if err := uc.repo.SaveSettings(settings); err != nil {
			return nil, fmt.Errorf("save settings: %w", err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("goals", fmt.Sprintf("area created: %q", in.Name))
	}
	return &NewAreaOutput{AreaID: area.ID}, nil
}
