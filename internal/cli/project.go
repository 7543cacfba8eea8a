package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/usecase"
)

// newProjectCommand creates the project command and its subcommands.
func newProjectCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Short:   "Manage time-tracking projects",
		GroupID: groupTracking,
	}
	cmd.AddCommand(
		newProjectNewCommand(c),
		newProjectListCommand(c),
		newProjectDeleteCommand(c),
	)
	return cmd
}

func newProjectNewCommand(c *app.Container) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NewProjectUseCase().Execute(cmd.Context(), usecase.NewProjectInput{
				Name:  args[0],
				Color: color,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created project %s (%s)\n", args[0], out.ProjectID)
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	return cmd
}

func newProjectListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, _ []string) error {
			projects, err := c.Times.Projects()
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No projects.")
				return nil
			}
			for _, p := range projects {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", p.ID, p.Name)
			}
			return nil
		},
	}
}

func newProjectDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project and all of its tasks and entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.DeleteProjectUseCase().Execute(cmd.Context(), usecase.DeleteProjectInput{ProjectID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted project %s\n", args[0])
			return nil
		},
	}
}
