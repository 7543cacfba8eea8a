package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/daybook-app/daybook/internal/app"
	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/usecase"
)

// newReportCommand creates the report command.
func newReportCommand(c *app.Container) *cobra.Command {
	var from, to string
	var week, today bool
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Aggregate tracked time by task and project",
		GroupID: groupTracking,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, end, err := reportRange(c.Clock.Now(), from, to, today, week)
			if err != nil {
				return err
			}
			report, err := c.BuildReportUseCase().Execute(cmd.Context(), usecase.BuildReportInput{From: start, To: end})
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "range start (e.g. 2026-03-01)")
	cmd.Flags().StringVar(&to, "to", "", "range end")
	cmd.Flags().BoolVar(&today, "today", false, "report on today")
	cmd.Flags().BoolVar(&week, "week", false, "report on the current week (Mon-Sun)")
	return cmd
}

func reportRange(now time.Time, from, to string, today, week bool) (time.Time, time.Time, error) {
	switch {
	case today:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1).Add(-time.Second), nil
	case week:
		start, end := domain.WeekWindow(now)
		return start, end, nil
	case from != "":
		start, err := parseDayFlag(from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end := now
		if to != "" {
			day, err := parseDayFlag(to)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			end = day.AddDate(0, 0, 1).Add(-time.Second)
		}
		return start, end, nil
	default:
		// Default to today.
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1).Add(-time.Second), nil
	}
}

func parseDayFlag(s string) (time.Time, error) {
	t, err := time.ParseInLocation(domain.DayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD)", s)
	}
	return t, nil
}

func printReport(cmd *cobra.Command, report *domain.Report) {
	out := cmd.OutOrStdout()
	if report.TotalSeconds == 0 {
		_, _ = fmt.Fprintln(out, "No tracked time in range.")
		return
	}
	_, _ = fmt.Fprintf(out, "Total: %s\n\n", domain.FormatElapsed(report.TotalSeconds))
	_, _ = fmt.Fprintln(out, "By project:")
	for _, row := range report.ByProject {
		_, _ = fmt.Fprintf(out, "  %-24s %s  %5.1f%%\n", row.Name, domain.FormatElapsed(row.Seconds), row.Percentage)
	}
	_, _ = fmt.Fprintln(out, "\nBy task:")
	for _, row := range report.ByTask {
		_, _ = fmt.Fprintf(out, "  %-24s %s  %5.1f%%\n", row.Name, domain.FormatElapsed(row.Seconds), row.Percentage)
	}
}
