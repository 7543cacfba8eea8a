package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/usecase"
)

// newAreaCommand creates the area command and its subcommands.
func newAreaCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "area",
		Short:   "Manage self-care areas",
		GroupID: groupGoals,
	}
	cmd.AddCommand(
		newAreaNewCommand(c),
		newAreaListCommand(c),
		newAreaDeleteCommand(c),
	)
	return cmd
}

func newAreaNewCommand(c *app.Container) *cobra.Command {
	var icon, color string
	var weeklyTarget int
	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a self-care area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.NewAreaUseCase().Execute(cmd.Context(), usecase.NewAreaInput{
				Name:         args[0],
				Icon:         icon,
				Color:        color,
				WeeklyTarget: weeklyTarget,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created area %s (%s)\n", args[0], out.AreaID)
			return nil
		},
	}
	cmd.Flags().StringVar(&icon, "icon", "", "icon name")
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	cmd.Flags().IntVar(&weeklyTarget, "weekly-target", 0, "weekly point target")
	return cmd
}

func newAreaListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List areas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			areas, err := c.Goals.Areas()
			if err != nil {
				return err
			}
			if len(areas) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No areas.")
				return nil
			}
			for _, a := range areas {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.ID, a.Name)
			}
			return nil
		},
	}
}

func newAreaDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an area and every goal in it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.DeleteAreaUseCase().Execute(cmd.Context(), usecase.DeleteAreaInput{AreaID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted area %s\n", args[0])
			return nil
		},
	}
}
