// Package cli provides the command-line interface for daybook.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/tui"
)

// Command group IDs.
const (
	groupTracking = "tracking"
	groupGoals    = "goals"
	groupLister   = "lister"
	groupData     = "data"
)

// NewRootCommand creates the root command for daybook.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "daybook",
		Short: "Personal time tracking, goals, and shopping lists",
		Long: `daybook tracks your working time per project and task, keeps
daily goals with streaks and weekly area targets, and manages
shopping lists. Run without arguments to open the timer dashboard.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || c.Config == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchDashboard(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTracking, Title: "Time tracking:"},
		&cobra.Group{ID: groupGoals, Title: "Goals:"},
		&cobra.Group{ID: groupLister, Title: "Shopping lists:"},
		&cobra.Group{ID: groupData, Title: "Data:"},
	)

	root.AddCommand(
		newInitCommand(c),
		newProjectCommand(c),
		newTaskCommand(c),
		newTimerCommand(c),
		newEntryCommand(c),
		newReportCommand(c),
		newAreaCommand(c),
		newGoalCommand(c),
		newListCommand(c),
		newExportCommand(c),
		newImportCommand(c),
		newRemindCommand(c),
		newTUICommand(c),
	)
	return root
}

// launchDashboardFunc allows tests to stub the TUI launch.
var launchDashboardFunc = func(c *app.Container) error {
	model := tui.NewModel(tui.Deps{
		Repo:   c.Times,
		Status: c.TimerStatusUseCase(),
		Start:  c.StartTimerUseCase(),
		Pause:  c.PauseTimerUseCase(),
		Resume: c.ResumeTimerUseCase(),
		Stop:   c.StopTimerUseCase(),
	})
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

func launchDashboard(c *app.Container) error {
	return launchDashboardFunc(c)
}

// newTUICommand creates the tui command (same as running daybook bare).
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Short:   "Open the timer dashboard",
		GroupID: groupTracking,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchDashboard(c)
		},
	}
}
