package state

import (
	"encoding/json"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// GoalStore implements domain.GoalRepository over a key-value backend.
type GoalStore struct {
	kv domain.KeyValue
}

// NewGoalStore creates a GoalStore on the given backend.
func NewGoalStore(kv domain.KeyValue) *GoalStore {
	return &GoalStore{kv: kv}
}

// Goals returns every stored goal. Goals with malformed completion
// dates fail the load.
func (s *GoalStore) Goals() ([]*domain.Goal, error) {
	goals, err := loadSlice[*domain.Goal](s.kv, KeyGoals)
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		if err := ValidateGoal(g); err != nil {
			return nil, fmt.Errorf("%s: %w", KeyGoals, err)
		}
	}
	return goals, nil
}

// GetGoal returns the goal with the given id, or nil.
func (s *GoalStore) GetGoal(id string) (*domain.Goal, error) {
	goals, err := s.Goals()
	if err != nil {
		return nil, err
	}
	for _, g := range goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

// SaveGoal inserts or replaces a goal.
func (s *GoalStore) SaveGoal(g *domain.Goal) error {
	if err := ValidateGoal(g); err != nil {
		return err
	}
	goals, err := s.Goals()
	if err != nil {
		return err
	}
	goals = upsert(goals, g, func(x *domain.Goal) string { return x.ID })
	return saveSlice(s.kv, KeyGoals, goals)
}

// DeleteGoal removes a goal.
func (s *GoalStore) DeleteGoal(id string) error {
	goals, err := s.Goals()
	if err != nil {
		return err
	}
	goals = remove(goals, id, func(x *domain.Goal) string { return x.ID })
	return saveSlice(s.kv, KeyGoals, goals)
}

// Areas returns every stored self-care area.
func (s *GoalStore) Areas() ([]*domain.SelfCareArea, error) {
	return loadSlice[*domain.SelfCareArea](s.kv, KeyAreas)
}

// GetArea returns the area with the given id, or nil.
func (s *GoalStore) GetArea(id string) (*domain.SelfCareArea, error) {
	areas, err := s.Areas()
	if err != nil {
		return nil, err
	}
	for _, a := range areas {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

// SaveArea inserts or replaces an area.
func (s *GoalStore) SaveArea(a *domain.SelfCareArea) error {
	areas, err := s.Areas()
	if err != nil {
		return err
	}
	areas = upsert(areas, a, func(x *domain.SelfCareArea) string { return x.ID })
	return saveSlice(s.kv, KeyAreas, areas)
}

// DeleteArea removes an area. Goal cascades are orchestrated by the
// caller so both collections are updated before any recalculation.
func (s *GoalStore) DeleteArea(id string) error {
	areas, err := s.Areas()
	if err != nil {
		return err
	}
	areas = remove(areas, id, func(x *domain.SelfCareArea) string { return x.ID })
	return saveSlice(s.kv, KeyAreas, areas)
}

// Settings returns the stored goal settings, defaults when absent.
func (s *GoalStore) Settings() (*domain.GoalSettings, error) {
	raw, err := s.kv.Get(KeyGoalSettings)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return domain.DefaultGoalSettings(), nil
	}
	var rec SettingsRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("parse %s: %w", KeyGoalSettings, err)
	}
	return DecodeSettings(rec), nil
}

// SaveSettings persists the goal settings.
func (s *GoalStore) SaveSettings(settings *domain.GoalSettings) error {
	raw, err := json.Marshal(EncodeSettings(settings))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", KeyGoalSettings, err)
	}
	return s.kv.Set(KeyGoalSettings, raw)
}

// Ensure GoalStore implements the port.
var _ domain.GoalRepository = (*GoalStore)(nil)
