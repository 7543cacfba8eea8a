package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/usecase"
)

// newRemindCommand creates the remind command and its subcommands.
func newRemindCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remind",
		Short:   "Manage the daily weigh-in reminder",
		GroupID: groupData,
	}
	cmd.AddCommand(
		newRemindSetCommand(c),
		newRemindFireCommand(c),
		newRemindShowCommand(c),
	)
	return cmd
}

func newRemindSetCommand(c *app.Container) *cobra.Command {
	var at string
	var off bool
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Schedule or disable the reminder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.SetReminderInput{}
			if !off {
				if at == "" {
					return fmt.Errorf("either --at or --off is required")
				}
				var hour, minute int
				if _, err := fmt.Sscanf(at, "%d:%d", &hour, &minute); err != nil {
					return fmt.Errorf("unrecognized time %q (want HH:MM)", at)
				}
				in = usecase.SetReminderInput{Enabled: true, Hour: hour, Minute: minute}
			}
			if err := c.SetReminderUseCase().Execute(cmd.Context(), in); err != nil {
				return err
			}
			if off {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Reminder disabled.")
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reminder set for %02d:%02d\n", in.Hour, in.Minute)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "reminder time (HH:MM)")
	cmd.Flags().BoolVar(&off, "off", false, "disable the reminder")
	return cmd
}

// newRemindFireCommand delivers the notification now. Meant to be run
// from a cron entry or systemd timer at the scheduled time.
func newRemindFireCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "fire",
		Short: "Deliver the reminder notification now",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sent, err := c.FireReminderUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if !sent {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Reminder not sent (disabled or no notifier).")
			}
			return nil
		},
	}
}

func newRemindShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the reminder schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := c.Reminders.Reminder()
			if err != nil {
				return err
			}
			if !r.Enabled {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Reminder disabled.")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reminder at %02d:%02d\n", r.Hour, r.Minute)
			return nil
		},
	}
}
