package tui

import (
	"fmt"
	"strings"

	"github.com/daybook-app/daybook/internal/domain"
)

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("daybook"))
	b.WriteString("\n\n")
	b.WriteString(m.timerLine())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(mutedStyle.Render("no tasks yet — create one with `daybook task new`"))
		b.WriteString("\n")
	}
	for i, row := range m.rows {
		line := row.task.Name
		if row.project != nil {
			line = fmt.Sprintf("%s / %s", row.project.Name, row.task.Name)
		}
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	b.WriteString("\n")
	return b.String()
}

func (m Model) timerLine() string {
	if m.status == nil {
		return mutedStyle.Render("loading...")
	}
	switch m.status.Phase {
	case domain.TimerRunning:
		return fmt.Sprintf("%s  %s", elapsedStyle.Render(m.status.Elapsed), m.currentTaskLabel())
	case domain.TimerPaused:
		return fmt.Sprintf("%s  %s %s", pausedStyle.Render(m.status.Elapsed), m.currentTaskLabel(), mutedStyle.Render("(paused)"))
	default:
		return mutedStyle.Render("timer idle")
	}
}

func (m Model) currentTaskLabel() string {
	if m.status.Task == nil {
		return mutedStyle.Render("(unknown task)")
	}
	if m.status.Project != nil {
		return fmt.Sprintf("%s / %s", m.status.Project.Name, m.status.Task.Name)
	}
	return m.status.Task.Name
}

func (m Model) helpLine() string {
	if m.showHelp {
		var groups []string
		for _, group := range m.keys.FullHelp() {
			var parts []string
			for _, binding := range group {
				parts = append(parts, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
			}
			groups = append(groups, strings.Join(parts, " · "))
		}
		return mutedStyle.Render(strings.Join(groups, "\n"))
	}
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
	}
	return mutedStyle.Render(strings.Join(parts, " · "))
}
