package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/usecase"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

type fakeRepo struct {
	tasks    []*domain.Task
	projects []*domain.Project
	entries  map[string]*domain.TimeEntry
	timer    domain.TimerState
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{entries: map[string]*domain.TimeEntry{}, timer: domain.IdleTimer()}
}

func (r *fakeRepo) Projects() ([]*domain.Project, error) { return r.projects, nil }
func (r *fakeRepo) GetProject(id string) (*domain.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeRepo) SaveProject(p *domain.Project) error { r.projects = append(r.projects, p); return nil }
func (r *fakeRepo) DeleteProject(string) error          { return nil }

func (r *fakeRepo) Tasks() ([]*domain.Task, error) { return r.tasks, nil }
func (r *fakeRepo) GetTask(id string) (*domain.Task, error) {
	for _, t := range r.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}
func (r *fakeRepo) SaveTask(t *domain.Task) error { r.tasks = append(r.tasks, t); return nil }
func (r *fakeRepo) DeleteTask(string) error       { return nil }

func (r *fakeRepo) Entries() ([]*domain.TimeEntry, error) { return nil, nil }
func (r *fakeRepo) GetEntry(id string) (*domain.TimeEntry, error) {
	return r.entries[id], nil
}
func (r *fakeRepo) SaveEntry(e *domain.TimeEntry) error { r.entries[e.ID] = e; return nil }
func (r *fakeRepo) DeleteEntry(string) error            { return nil }

func (r *fakeRepo) TimerState() (domain.TimerState, error)   { return r.timer, nil }
func (r *fakeRepo) SaveTimerState(s domain.TimerState) error { r.timer = s; return nil }

type countingIDGen struct{ n int }

func (g *countingIDGen) NewID() string {
	g.n++
	return string(rune('a' + g.n))
}

func newTestModel(t *testing.T) (Model, *fakeRepo, *fakeClock) {
	t.Helper()
	repo := newFakeRepo()
	repo.projects = []*domain.Project{{ID: "p1", Name: "Work"}}
	repo.tasks = []*domain.Task{
		{ID: "t1", Name: "Coding", ProjectID: "p1"},
		{ID: "t2", Name: "Review", ProjectID: "p1"},
	}
	clock := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	deps := Deps{
		Repo:   repo,
		Status: usecase.NewTimerStatus(repo, clock),
		Start:  usecase.NewStartTimer(repo, clock, &countingIDGen{}, nil),
		Pause:  usecase.NewPauseTimer(repo, clock, nil),
		Resume: usecase.NewResumeTimer(repo, clock, nil),
		Stop:   usecase.NewStopTimer(repo, clock, nil),
	}
	return NewModel(deps), repo, clock
}

func drain(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModel_Update_Navigation(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = drain(t, m, m.loadTasks())
	require.Len(t, m.rows, 2)

	m = drain(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	// Clamped at the end.
	m = drain(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.cursor)
	m = drain(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.cursor)
}

func TestModel_Update_StartSelectedTask(t *testing.T) {
	m, repo, _ := newTestModel(t)
	m = drain(t, m, m.loadTasks())

	cmd := m.startTimer(m.selectedTask().ID)
	msg := cmd()
	m = drain(t, m, msg)

	assert.Equal(t, domain.TimerRunning, repo.timer.Phase)
	assert.Equal(t, "t1", repo.timer.TaskID)
	require.NotNil(t, m.status)
	assert.Equal(t, domain.TimerRunning, m.status.Phase)
	assert.True(t, m.ticking)
}

func TestModel_Update_TickStopsWhenIdle(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = drain(t, m, m.loadStatus())
	require.NotNil(t, m.status)
	assert.Equal(t, domain.TimerIdle, m.status.Phase)

	m = drain(t, m, tickMsg(time.Now()))
	assert.False(t, m.ticking)
}

func TestModel_View_ShowsElapsed(t *testing.T) {
	m, _, clock := newTestModel(t)
	m = drain(t, m, m.loadTasks())

	msg := m.startTimer("t1")()
	m = drain(t, m, msg)

	clock.now = clock.now.Add(90 * time.Second)
	m = drain(t, m, m.loadStatus())

	view := m.View()
	assert.Contains(t, view, "00:01:30")
	assert.Contains(t, view, "Work / Coding")
}
