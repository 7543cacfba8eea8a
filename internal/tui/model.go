// Package tui implements the interactive timer dashboard.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/usecase"
)

// Deps bundles the collaborators the dashboard needs.
type Deps struct {
	Repo   domain.TimeRepository
	Status *usecase.TimerStatus
	Start  *usecase.StartTimer
	Pause  *usecase.PauseTimer
	Resume *usecase.ResumeTimer
	Stop   *usecase.StopTimer
}

// taskRow is one selectable line in the task list.
type taskRow struct {
	task    *domain.Task
	project *domain.Project
}

// Model is the bubbletea model for the timer dashboard.
type Model struct {
	deps     Deps
	keys     KeyMap
	rows     []taskRow
	status   *usecase.TimerStatusOutput
	err      error
	cursor   int
	width    int
	showHelp bool
	ticking  bool
}

// NewModel creates the dashboard model.
func NewModel(deps Deps) Model {
	return Model{deps: deps, keys: DefaultKeyMap()}
}

// Init loads tasks and the current timer state.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadTasks, m.loadStatus)
}

// Messages.

type tickMsg time.Time

type tasksLoadedMsg struct {
	rows []taskRow
}

type statusLoadedMsg struct {
	status *usecase.TimerStatusOutput
}

type errMsg struct {
	err error
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) loadTasks() tea.Msg {
	tasks, err := m.deps.Repo.Tasks()
	if err != nil {
		return errMsg{err}
	}
	projects, err := m.deps.Repo.Projects()
	if err != nil {
		return errMsg{err}
	}
	byID := make(map[string]*domain.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}
	rows := make([]taskRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, taskRow{task: t, project: byID[t.ProjectID]})
	}
	return tasksLoadedMsg{rows: rows}
}

func (m Model) loadStatus() tea.Msg {
	out, err := m.deps.Status.Execute(context.Background())
	if err != nil {
		return errMsg{err}
	}
	return statusLoadedMsg{status: out}
}

func (m Model) selectedTask() *domain.Task {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return nil
	}
	return m.rows[m.cursor].task
}
