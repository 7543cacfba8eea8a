package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/usecase"
)

// newGoalCommand creates the goal command and its subcommands.
func newGoalCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "goal",
		Short:   "Manage daily goals and streaks",
		GroupID: groupGoals,
	}
	cmd.AddCommand(
		newGoalAddCommand(c),
		newGoalListCommand(c),
		newGoalDoneCommand(c),
		newGoalUndoCommand(c),
		newGoalDeleteCommand(c),
		newGoalProgressCommand(c),
		newGoalSeedCommand(c),
	)
	return cmd
}

func newGoalAddCommand(c *app.Container) *cobra.Command {
	var areaID, icon, color string
	var points int
	var days []int
	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Create a goal inside an area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.AddGoalUseCase().Execute(cmd.Context(), usecase.AddGoalInput{
				Description:    args[0],
				AreaID:         areaID,
				Icon:           icon,
				Color:          color,
				RepetitionDays: days,
				Points:         points,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created goal %s (%s)\n", args[0], out.GoalID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&areaID, "area", "a", "", "area id (required)")
	cmd.Flags().StringVar(&icon, "icon", "", "icon name")
	cmd.Flags().StringVar(&color, "color", "", "display color (hex)")
	cmd.Flags().IntVar(&points, "points", 1, "points per completion")
	cmd.Flags().IntSliceVar(&days, "days", nil, "repetition weekdays, 0=Sunday..6=Saturday")
	_ = cmd.MarkFlagRequired("area")
	return cmd
}

func newGoalListCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			goals, err := c.Goals.Goals()
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No goals.")
				return nil
			}
			for _, g := range goals {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%dpt\n", g.ID, g.Description, g.Points)
			}
			return nil
		},
	}
}

func newGoalDoneCommand(c *app.Container) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a goal completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.CompleteGoalUseCase().Execute(cmd.Context(), usecase.CompleteGoalInput{
				GoalID: args[0],
				Date:   date,
			})
			if err != nil {
				return err
			}
			if !out.Added {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Already completed.")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Done. Streak: %d day(s)\n", out.Streak)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "completion day (YYYY-MM-DD, default today)")
	return cmd
}

func newGoalUndoCommand(c *app.Container) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Remove a goal completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.UncompleteGoalUseCase().Execute(cmd.Context(), usecase.UncompleteGoalInput{
				GoalID: args[0],
				Date:   date,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Undone.")
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "completion day (YYYY-MM-DD, default today)")
	return cmd
}

func newGoalDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.DeleteGoalUseCase().Execute(cmd.Context(), usecase.DeleteGoalInput{GoalID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted goal %s\n", args[0])
			return nil
		},
	}
}

func newGoalProgressCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show today's points, streak, and weekly area progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.GoalProgressUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Today: %d/%d points\n", out.TodayPoints, out.DailyGoal)
			_, _ = fmt.Fprintf(w, "Streak: %d day(s)\n", out.Streak)
			if len(out.Areas) > 0 {
				_, _ = fmt.Fprintln(w, "\nThis week:")
				for _, a := range out.Areas {
					if a.Target > 0 {
						_, _ = fmt.Fprintf(w, "  %-20s %d/%d\n", a.AreaName, a.Points, a.Target)
					} else {
						_, _ = fmt.Fprintf(w, "  %-20s %d\n", a.AreaName, a.Points)
					}
				}
			}
			return nil
		},
	}
}

func newGoalSeedCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file>",
		Short: "Create areas and goals from a YAML seed file",
		Long: `Create areas and goals from a YAML seed file. Areas whose name
already exists are skipped, so re-running a seed is safe.

Example seed file:

    areas:
      - name: Health
        weeklyTarget: 20
        goals:
          - description: Run 5k
            points: 5
            repetitionDays: [1, 3, 5]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read seed file: %w", err)
			}
			var in usecase.SeedGoalsInput
			if err := yaml.Unmarshal(data, &in); err != nil {
				return fmt.Errorf("parse seed file: %w", err)
			}
			out, err := c.SeedGoalsUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d area(s), %d goal(s)\n", out.AreasCreated, out.GoalsCreated)
			return nil
		},
	}
}
