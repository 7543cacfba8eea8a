package usecase

import (
	"context"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// SeedGoal is one goal definition inside a seed file.
type SeedGoal struct {
	Description    string `yaml:"description"`
	Icon           string `yaml:"icon"`
	Color          string `yaml:"color"`
	RepetitionDays []int  `yaml:"repetitionDays"`
	Points         int    `yaml:"points"`
}

// SeedArea is one area definition inside a seed file, with the goals
// it contains.
type SeedArea struct {
	Name         string     `yaml:"name"`
	Icon         string     `yaml:"icon"`
	Color        string     `yaml:"color"`
	WeeklyTarget int        `yaml:"weeklyTarget"`
	Goals        []SeedGoal `yaml:"goals"`
}

// SeedGoalsInput is a parsed seed file.
type SeedGoalsInput struct {
	Areas []SeedArea
}

// SeedGoalsOutput reports what was created.
type SeedGoalsOutput struct {
	AreasCreated int
	GoalsCreated int
}

// SeedGoals is the use case for bootstrapping areas and goals from a
// seed file. Areas whose name already exists are skipped entirely so
// re-running a seed cannot duplicate data.
type SeedGoals struct {
	repo   domain.GoalRepository
	idgen  domain.IDGenerator
	logger domain.Logger
}

// NewSeedGoals creates a new SeedGoals use case.
func NewSeedGoals(repo domain.GoalRepository, idgen domain.IDGenerator, logger domain.Logger) *SeedGoals {
	return &SeedGoals{repo: repo, idgen: idgen, logger: logger}
}

// Execute creates the areas and goals.
func (uc *SeedGoals) Execute(_ context.Context, in SeedGoalsInput) (*SeedGoalsOutput, error) {
	existing, err := uc.repo.Areas()
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	byName := make(map[string]bool, len(existing))
	for _, a := range existing {
		byName[a.Name] = true
	}

	settings, err := uc.repo.Settings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	out := &SeedGoalsOutput{}
	settingsDirty := false
	for _, sa := range in.Areas {
		if sa.Name == "" {
			return nil, domain.ErrEmptyName
		}
		if byName[sa.Name] {
			continue
		}
		area := &domain.SelfCareArea{
			ID:    uc.idgen.NewID(),
			Name:  sa.Name,
			Icon:  sa.Icon,
			Color: sa.Color,
		}
		if err := uc.repo.SaveArea(area); err != nil {
			return nil, fmt.Errorf("save area: %w", err)
		}
		out.AreasCreated++
		if sa.WeeklyTarget > 0 {
			settings.WeeklyGoals[area.ID] = sa.WeeklyTarget
			settingsDirty = true
		}

		for _, sg := range sa.Goals {
			if sg.Description == "" {
				return nil, domain.ErrEmptyName
			}
			for _, d := range sg.RepetitionDays {
				if d < 0 || d > 6 {
					return nil, fmt.Errorf("repetition day %d out of range 0..6", d)
				}
			}
			goal := &domain.Goal{
				ID:             uc.idgen.NewID(),
				Description:    sg.Description,
				AreaID:         area.ID,
				Icon:           sg.Icon,
				Color:          sg.Color,
				RepetitionDays: sg.RepetitionDays,
				Points:         sg.Points,
			}
			if err := uc.repo.SaveGoal(goal); err != nil {
				return nil, fmt.Errorf("save goal: %w", err)
			}
			out.GoalsCreated++
		}
	}

	if settingsDirty {
		if err := uc.repo.SaveSettings(settings); err != nil {
			return nil, fmt.Errorf("save settings: %w", err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("goals", fmt.Sprintf("seeded %d area(s), %d goal(s)", out.AreasCreated, out.GoalsCreated))
	}
	return out, nil
}
