package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/usecase"
)

// newTimerCommand creates the timer command and its subcommands.
func newTimerCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "timer",
		Short:   "Control the global timer",
		GroupID: groupTracking,
	}
	cmd.AddCommand(
		newTimerStartCommand(c),
		newTimerPauseCommand(c),
		newTimerResumeCommand(c),
		newTimerStopCommand(c),
		newTimerStatusCommand(c),
	)
	return cmd
}

func newTimerStartCommand(c *app.Container) *cobra.Command {
	var startedAt string
	cmd := &cobra.Command{
		Use:   "start <task-id>",
		Short: "Start the timer on a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.StartTimerInput{TaskID: args[0]}
			if startedAt != "" {
				t, err := parseTimeFlag(startedAt)
				if err != nil {
					return err
				}
				in.StartedAt = &t
				in.ElapsedSeconds = int(time.Since(t).Seconds())
			}
			out, err := c.StartTimerUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Timer started (entry %s)\n", out.EntryID)
			return nil
		},
	}
	cmd.Flags().StringVar(&startedAt, "at", "", "backdated start time (e.g. 2026-03-10T09:00)")
	return cmd
}

func newTimerPauseCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the running timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.PauseTimerUseCase().Execute(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Timer paused.")
			return nil
		},
	}
}

func newTimerResumeCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume the paused timer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.ResumeTimerUseCase().Execute(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Timer resumed.")
			return nil
		},
	}
}

func newTimerStopCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the timer and finalize the entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.StopTimerUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stopped after %s\n", domain.FormatElapsed(out.DurationSeconds))
			return nil
		},
	}
}

func newTimerStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current timer state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.TimerStatusUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			switch out.Phase {
			case domain.TimerIdle:
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Timer idle.")
			case domain.TimerPaused:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (paused)\n", out.Elapsed, taskLabel(out))
			default:
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", out.Elapsed, taskLabel(out))
			}
			return nil
		},
	}
}

func taskLabel(out *usecase.TimerStatusOutput) string {
	if out.Task == nil {
		return "(unknown task)"
	}
	if out.Project != nil {
		return fmt.Sprintf("%s / %s", out.Project.Name, out.Task.Name)
	}
	return out.Task.Name
}

// parseTimeFlag accepts the formats users actually type.
func parseTimeFlag(s string) (time.Time, error) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"15:04",
	} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			if layout == "15:04" {
				now := time.Now()
				t = time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)
			}
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}
