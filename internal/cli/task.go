package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/usecase"
)

// newTaskCommand creates the task command and its subcommands.
func newTaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Short:   "Manage tasks",
		GroupID: groupTracking,
	}
	cmd.AddCommand(
		newTaskNewCommand(c),
		newTaskListCommand(c),
		newTaskDeleteCommand(c),
	)
	return cmd
}

func newTaskNewCommand(c *app.Container) *cobra.Command {
	var projectID, color string
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a task under a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NewTaskUseCase().Execute(cmd.Context(), usecase.NewTaskInput{
				Name:      args[0],
				ProjectID: projectID,
				Color:     color,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s (%s)\n", args[0], out.TaskID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&projectID, "project", "p", "", "project id (required)")
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}

func newTaskListCommand(c *app.Container) *cobra.Command {
	var projectID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := c.Times.Tasks()
			if err != nil {
				return err
			}
			shown := 0
			for _, t := range tasks {
				if projectID != "" && t.ProjectID != projectID {
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", t.ID, t.Name)
				shown++
			}
			if shown == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&projectID, "project", "p", "", "filter by project id")
	return cmd
}

func newTaskDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task and its time entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
			return nil
		},
	}
}
