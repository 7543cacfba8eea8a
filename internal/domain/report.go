package domain

import "time"

// ReportRange is a closed time interval for report aggregation.
type ReportRange struct {
	Start time.Time
	End   time.Time
}

// Includes reports whether an entry belongs to the range: its start
// falls in range, its end falls in range, it spans the entire range,
// or it is currently active and started in range.
func (r ReportRange) Includes(e *TimeEntry) bool {
	if within(e.StartTime, r) {
		return true
	}
	if e.EndTime != nil && within(*e.EndTime, r) {
		return true
	}
	if e.EndTime != nil && e.StartTime.Before(r.Start) && e.EndTime.After(r.End) {
		return true
	}
	return e.IsRunning && within(e.StartTime, r)
}

func within(t time.Time, r ReportRange) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ReportTotal aggregates tracked time for one task or project.
type ReportTotal struct {
	ID         string
	Name       string
	Seconds    int
	Hours      float64
	Percentage float64
}

// Report is the aggregated view of a date range.
type Report struct {
	ByTask       []ReportTotal
	ByProject    []ReportTotal
	TotalSeconds int
	TotalHours   float64
}

// BuildReport groups the entries in range by task and by project.
// Percentages are shares of the total hours, 0 when the total is 0.
// Active entries are measured up to now.
func BuildReport(entries []*TimeEntry, tasks []*Task, projects []*Project, rng ReportRange, now time.Time) *Report {
	taskByID := make(map[string]*Task, len(tasks))
	for _, t := range tasks {
		taskByID[t.ID] = t
	}
	projectByID := make(map[string]*Project, len(projects))
	for _, p := range projects {
		projectByID[p.ID] = p
	}

	taskSeconds := make(map[string]int)
	projectSeconds := make(map[string]int)
	var taskOrder, projectOrder []string
	total := 0

	for _, e := range entries {
		if !rng.Includes(e) {
			continue
		}
		secs := e.Seconds(now)
		total += secs

		if _, seen := taskSeconds[e.TaskID]; !seen {
			taskOrder = append(taskOrder, e.TaskID)
		}
		taskSeconds[e.TaskID] += secs

		projectID := ""
		if t, ok := taskByID[e.TaskID]; ok {
			projectID = t.ProjectID
		}
		if _, seen := projectSeconds[projectID]; !seen {
			projectOrder = append(projectOrder, projectID)
		}
		projectSeconds[projectID] += secs
	}

	report := &Report{
		TotalSeconds: total,
		TotalHours:   float64(total) / 3600,
	}
	for _, id := range taskOrder {
		name := id
		if t, ok := taskByID[id]; ok {
			name = t.Name
		}
		report.ByTask = append(report.ByTask, newTotal(id, name, taskSeconds[id], report.TotalHours))
	}
	for _, id := range projectOrder {
		name := id
		if p, ok := projectByID[id]; ok {
			name = p.Name
		}
		report.ByProject = append(report.ByProject, newTotal(id, name, projectSeconds[id], report.TotalHours))
	}
	return report
}

func newTotal(id, name string, seconds int, totalHours float64) ReportTotal {
	hours := float64(seconds) / 3600
	pct := 0.0
	if totalHours > 0 {
		pct = hours / totalHours * 100
	}
	return ReportTotal{ID: id, Name: name, Seconds: seconds, Hours: hours, Percentage: pct}
}
