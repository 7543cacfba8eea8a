package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/usecase"
)

// newEntryCommand creates the entry command and its subcommands.
func newEntryCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entry",
		Short:   "Manage time entries",
		GroupID: groupTracking,
	}
	cmd.AddCommand(
		newEntryAddCommand(c),
		newEntryUpdateCommand(c),
		newEntryDeleteCommand(c),
	)
	return cmd
}

func newEntryAddCommand(c *app.Container) *cobra.Command {
	var taskID, from, to string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a manual time entry",
		Long: `Record a manual time entry for a task. An entry crossing
midnight is split into one entry per calendar day.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := parseTimeFlag(from)
			if err != nil {
				return err
			}
			in := usecase.AddTimeEntryInput{TaskID: taskID, Start: start}
			if to != "" {
				end, err := parseTimeFlag(to)
				if err != nil {
					return err
				}
				in.End = &end
			}
			out, err := c.AddTimeEntryUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added entry %s\n", strings.Join(out.EntryIDs, ", "))
			return nil
		},
	}
	cmd.Flags().StringVarP(&taskID, "task", "t", "", "task id (required)")
	cmd.Flags().StringVar(&from, "from", "", "start time (required)")
	cmd.Flags().StringVar(&to, "to", "", "end time")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("from")
	return cmd
}

func newEntryUpdateCommand(c *app.Container) *cobra.Command {
	var taskID, from, to string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.UpdateTimeEntryInput{EntryID: args[0]}
			if taskID != "" {
				in.TaskID = &taskID
			}
			if from != "" {
				start, err := parseTimeFlag(from)
				if err != nil {
					return err
				}
				in.Start = &start
			}
			if to != "" {
				end, err := parseTimeFlag(to)
				if err != nil {
					return err
				}
				in.End = &end
			}
			if err := c.UpdateTimeEntryUseCase().Execute(cmd.Context(), in); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&taskID, "task", "t", "", "move to another task")
	cmd.Flags().StringVar(&from, "from", "", "new start time")
	cmd.Flags().StringVar(&to, "to", "", "new end time")
	return cmd
}

func newEntryDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a time entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.DeleteTimeEntryUseCase().Execute(cmd.Context(), usecase.DeleteTimeEntryInput{EntryID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", args[0])
			return nil
		},
	}
}
