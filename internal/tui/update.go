package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/usecase"
)

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tasksLoadedMsg:
		m.rows = msg.rows
		if m.cursor >= len(m.rows) {
			m.cursor = max(0, len(m.rows)-1)
		}
		return m, nil

	case statusLoadedMsg:
		m.status = msg.status
		m.err = nil
		// Keep exactly one tick loop alive while the timer is active.
		if msg.status.Phase == domain.TimerRunning && !m.ticking {
			m.ticking = true
			return m, tick()
		}
		return m, nil

	case tickMsg:
		if m.status == nil || m.status.Phase != domain.TimerRunning {
			m.ticking = false
			return m, nil
		}
		return m, tea.Batch(m.loadStatus, tick())

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.loadTasks, m.loadStatus)

	case key.Matches(msg, m.keys.Start):
		task := m.selectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.startTimer(task.ID)

	case key.Matches(msg, m.keys.Pause):
		return m, m.togglePause()

	case key.Matches(msg, m.keys.Stop):
		return m, m.stopTimer()
	}
	return m, nil
}

func (m Model) startTimer(taskID string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.deps.Start.Execute(context.Background(), usecase.StartTimerInput{TaskID: taskID})
		if err != nil {
			return errMsg{err}
		}
		return m.loadStatus()
	}
}

func (m Model) togglePause() tea.Cmd {
	return func() tea.Msg {
		if m.status == nil {
			return nil
		}
		var err error
		switch m.status.Phase {
		case domain.TimerRunning:
			err = m.deps.Pause.Execute(context.Background())
		case domain.TimerPaused:
			err = m.deps.Resume.Execute(context.Background())
		default:
			return nil
		}
		if err != nil {
			return errMsg{err}
		}
		return m.loadStatus()
	}
}

func (m Model) stopTimer() tea.Cmd {
	return func() tea.Msg {
		if _, err := m.deps.Stop.Execute(context.Background()); err != nil {
			return errMsg{err}
		}
		return m.loadStatus()
	}
}
