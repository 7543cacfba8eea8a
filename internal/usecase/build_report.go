package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/domain"
)

// BuildReportInput is the date range to aggregate.
type BuildReportInput struct {
	From time.Time
	To   time.Time
}

// BuildReport is the use case for aggregating tracked time by task and
// project over a date range.
type BuildReport struct {
	repo  domain.TimeRepository
	clock domain.Clock
}

// NewBuildReport creates a new BuildReport use case.
func NewBuildReport(repo domain.TimeRepository, clock domain.Clock) *BuildReport {
	return &BuildReport{repo: repo, clock: clock}
}

// Execute builds the report.
func (uc *BuildReport) Execute(_ context.Context, in BuildReportInput) (*domain.Report, error) {
	if in.To.Before(in.From) {
		return nil, domain.ErrInvalidInterval
	}

	entries, err := uc.repo.Entries()
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	tasks, err := uc.repo.Tasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	projects, err := uc.repo.Projects()
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	rng := domain.ReportRange{Start: in.From, End: in.To}
	return domain.BuildReport(entries, tasks, projects, rng, uc.clock.Now()), nil
}
