package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func secsPtr(s int) *int { return &s }

func TestReportRange_Includes(t *testing.T) {
	rng := ReportRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC),
	}
	inRange := time.Date(2024, 3, 3, 10, 0, 0, 0, time.UTC)
	before := rng.Start.Add(-48 * time.Hour)
	after := rng.End.Add(48 * time.Hour)

	tests := []struct {
		entry *TimeEntry
		name  string
		want  bool
	}{
		{name: "starts in range", want: true, entry: &TimeEntry{StartTime: inRange, EndTime: &after}},
		{name: "ends in range", want: true, entry: &TimeEntry{StartTime: before, EndTime: &inRange}},
		{name: "spans range", want: true, entry: &TimeEntry{StartTime: before, EndTime: &after}},
		{name: "active started in range", want: true, entry: &TimeEntry{StartTime: inRange, IsRunning: true}},
		{name: "entirely before", want: false, entry: &TimeEntry{StartTime: before, EndTime: &before}},
		{name: "entirely after", want: false, entry: &TimeEntry{StartTime: after, EndTime: &after}},
		{name: "active started before", want: false, entry: &TimeEntry{StartTime: before, IsRunning: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rng.Includes(tt.entry))
		})
	}
}

func TestBuildReport_Percentages(t *testing.T) {
	now := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	rng := ReportRange{
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 7, 23, 59, 59, 0, time.UTC),
	}
	projects := []*Project{{ID: "p1", Name: "Client"}}
	tasks := []*Task{
		{ID: "t1", Name: "Design", ProjectID: "p1"},
		{ID: "t2", Name: "Build", ProjectID: "p1"},
	}
	start := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	entries := []*TimeEntry{
		{ID: "e1", TaskID: "t1", StartTime: start, DurationSeconds: secsPtr(7 * 3600)},
		{ID: "e2", TaskID: "t2", StartTime: start, DurationSeconds: secsPtr(3 * 3600)},
	}

	report := BuildReport(entries, tasks, projects, rng, now)

	assert.Equal(t, 10*3600, report.TotalSeconds)
	assert.InDelta(t, 10.0, report.TotalHours, 1e-9)

	require.Len(t, report.ByTask, 2)
	assert.InDelta(t, 70.0, report.ByTask[0].Percentage, 1e-9)
	assert.InDelta(t, 30.0, report.ByTask[1].Percentage, 1e-9)
	assert.InDelta(t, 100.0, report.ByTask[0].Percentage+report.ByTask[1].Percentage, 1e-9)
	assert.Equal(t, "Design", report.ByTask[0].Name)

	require.Len(t, report.ByProject, 1)
	assert.Equal(t, "Client", report.ByProject[0].Name)
	assert.InDelta(t, 100.0, report.ByProject[0].Percentage, 1e-9)
}

func TestBuildReport_Empty(t *testing.T) {
	now := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)
	rng := ReportRange{Start: now.AddDate(0, 0, -7), End: now}

	report := BuildReport(nil, nil, nil, rng, now)
	assert.Equal(t, 0, report.TotalSeconds)
	assert.Zero(t, report.TotalHours)
	assert.Empty(t, report.ByTask)
	assert.Empty(t, report.ByProject)
}

func TestBuildReport_ActiveEntryMeasuredToNow(t *testing.T) {
	start := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	now := start.Add(30 * time.Minute)
	rng := ReportRange{Start: start.AddDate(0, 0, -1), End: start.AddDate(0, 0, 1)}

	entry := &TimeEntry{
		ID: "e1", TaskID: "t1", StartTime: start, IsRunning: true,
		Periods: []Period{{Start: start}},
	}
	report := BuildReport([]*TimeEntry{entry}, nil, nil, rng, now)
	assert.Equal(t, 1800, report.TotalSeconds)
}
