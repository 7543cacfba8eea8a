package usecase

import (
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/domain"
)

// mockClock returns a fixed time, advanced explicitly by tests.
type mockClock struct {
	now time.Time
}

func (c *mockClock) Now() time.Time { return c.now }

func (c *mockClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// seqIDGen yields id-1, id-2, ... so tests can predict ids.
type seqIDGen struct {
	n int
}

func (g *seqIDGen) NewID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// memTimeRepo is an in-memory TimeRepository.
type memTimeRepo struct {
	projects map[string]*domain.Project
	tasks    map[string]*domain.Task
	entries  map[string]*domain.TimeEntry
	timer    domain.TimerState
}

func newMemTimeRepo() *memTimeRepo {
	return &memTimeRepo{
		projects: map[string]*domain.Project{},
		tasks:    map[string]*domain.Task{},
		entries:  map[string]*domain.TimeEntry{},
		timer:    domain.IdleTimer(),
	}
}

func (r *memTimeRepo) Projects() ([]*domain.Project, error) {
	var out []*domain.Project
	for _, p := range r.projects {
		out = append(out, p)
	}
	return out, nil
}
func (r *memTimeRepo) GetProject(id string) (*domain.Project, error) { return r.projects[id], nil }
func (r *memTimeRepo) SaveProject(p *domain.Project) error           { r.projects[p.ID] = p; return nil }
func (r *memTimeRepo) DeleteProject(id string) error                 { delete(r.projects, id); return nil }

func (r *memTimeRepo) Tasks() ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		out = append(out, t)
	}
	return out, nil
}
func (r *memTimeRepo) GetTask(id string) (*domain.Task, error) { return r.tasks[id], nil }
func (r *memTimeRepo) SaveTask(t *domain.Task) error           { r.tasks[t.ID] = t; return nil }
func (r *memTimeRepo) DeleteTask(id string) error              { delete(r.tasks, id); return nil }

func (r *memTimeRepo) Entries() ([]*domain.TimeEntry, error) {
	var out []*domain.TimeEntry
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out, nil
}
func (r *memTimeRepo) GetEntry(id string) (*domain.TimeEntry, error) { return r.entries[id], nil }
func (r *memTimeRepo) SaveEntry(e *domain.TimeEntry) error           { r.entries[e.ID] = e; return nil }
func (r *memTimeRepo) DeleteEntry(id string) error                   { delete(r.entries, id); return nil }

func (r *memTimeRepo) TimerState() (domain.TimerState, error)  { return r.timer, nil }
func (r *memTimeRepo) SaveTimerState(s domain.TimerState) error { r.timer = s; return nil }

// memGoalRepo is an in-memory GoalRepository.
type memGoalRepo struct {
	goals    map[string]*domain.Goal
	areas    map[string]*domain.SelfCareArea
	settings *domain.GoalSettings
}

func newMemGoalRepo() *memGoalRepo {
	return &memGoalRepo{
		goals:    map[string]*domain.Goal{},
		areas:    map[string]*domain.SelfCareArea{},
		settings: domain.DefaultGoalSettings(),
	}
}

func (r *memGoalRepo) Goals() ([]*domain.Goal, error) {
	var out []*domain.Goal
	for _, g := range r.goals {
		out = append(out, g)
	}
	return out, nil
}
func (r *memGoalRepo) GetGoal(id string) (*domain.Goal, error) { return r.goals[id], nil }
func (r *memGoalRepo) SaveGoal(g *domain.Goal) error           { r.goals[g.ID] = g; return nil }
func (r *memGoalRepo) DeleteGoal(id string) error              { delete(r.goals, id); return nil }

func (r *memGoalRepo) Areas() ([]*domain.SelfCareArea, error) {
	var out []*domain.SelfCareArea
	for _, a := range r.areas {
		out = append(out, a)
	}
	return out, nil
}
func (r *memGoalRepo) GetArea(id string) (*domain.SelfCareArea, error) { return r.areas[id], nil }
func (r *memGoalRepo) SaveArea(a *domain.SelfCareArea) error           { r.areas[a.ID] = a; return nil }
func (r *memGoalRepo) DeleteArea(id string) error                      { delete(r.areas, id); return nil }

func (r *memGoalRepo) Settings() (*domain.GoalSettings, error)  { return r.settings, nil }
func (r *memGoalRepo) SaveSettings(s *domain.GoalSettings) error { r.settings = s; return nil }

// memListerRepo is an in-memory ListerRepository.
type memListerRepo struct {
	state *domain.ListerState
}

func newMemListerRepo() *memListerRepo {
	return &memListerRepo{state: domain.NewListerState()}
}

func (r *memListerRepo) State() (*domain.ListerState, error)  { return r.state, nil }
func (r *memListerRepo) SaveState(s *domain.ListerState) error { r.state = s; return nil }

// memReminderRepo is an in-memory ReminderRepository.
type memReminderRepo struct {
	reminder *domain.WeightReminder
}

func (r *memReminderRepo) Reminder() (*domain.WeightReminder, error) {
	if r.reminder == nil {
		return &domain.WeightReminder{}, nil
	}
	return r.reminder, nil
}
func (r *memReminderRepo) SaveReminder(rem *domain.WeightReminder) error {
	r.reminder = rem
	return nil
}

// mockNotifier records deliveries.
type mockNotifier struct {
	available bool
	titles    []string
}

func (n *mockNotifier) Available() bool { return n.available }
func (n *mockNotifier) Notify(title, _ string) error {
	n.titles = append(n.titles, title)
	return nil
}
