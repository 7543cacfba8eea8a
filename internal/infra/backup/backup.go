// Package backup implements the export/import document: a single JSON
// file carrying every persisted slice under fixed field names. Import
// validates the whole document before touching the store, so a bad
// backup never leaves partial state behind.
package backup

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/infra/state"
)

// Version is the current backup document version.
const Version = 1

// Document is the backup file layout. Slices the app does not model in
// depth (org, weight, calorie) travel as raw JSON so a round trip
// preserves them byte for byte.
type Document struct {
	Version         int             `json:"version"`
	Projects        json.RawMessage `json:"projects,omitempty"`
	Tasks           json.RawMessage `json:"tasks,omitempty"`
	TimeEntries     json.RawMessage `json:"timeEntries,omitempty"`
	TimerState      json.RawMessage `json:"timerState,omitempty"`
	OrgTasks        json.RawMessage `json:"orgTasks,omitempty"`
	OrgLists        json.RawMessage `json:"orgLists,omitempty"`
	Lister          json.RawMessage `json:"lister,omitempty"`
	Goals           json.RawMessage `json:"goals,omitempty"`
	GoalsSettings   json.RawMessage `json:"goalsSettings,omitempty"`
	GoalsAreas      json.RawMessage `json:"goalsAreas,omitempty"`
	WeightEntries   json.RawMessage `json:"weightEntries,omitempty"`
	WeightReminder  json.RawMessage `json:"weightReminder,omitempty"`
	CalorieMeals    json.RawMessage `json:"calorieMeals,omitempty"`
	CalorieSettings json.RawMessage `json:"calorieSettings,omitempty"`
}

// fields maps document fields to their storage keys.
func (d *Document) fields() []struct {
	key string
	raw *json.RawMessage
} {
	return []struct {
		key string
		raw *json.RawMessage
	}{
		{state.KeyProjects, &d.Projects},
		{state.KeyTasks, &d.Tasks},
		{state.KeyEntries, &d.TimeEntries},
		{state.KeyTimerState, &d.TimerState},
		{state.KeyOrgTasks, &d.OrgTasks},
		{state.KeyOrgLists, &d.OrgLists},
		{state.KeyLister, &d.Lister},
		{state.KeyGoals, &d.Goals},
		{state.KeyGoalSettings, &d.GoalsSettings},
		{state.KeyAreas, &d.GoalsAreas},
		{state.KeyWeightEntries, &d.WeightEntries},
		{state.KeyWeightReminder, &d.WeightReminder},
		{state.KeyCalorieMeals, &d.CalorieMeals},
		{state.KeyCalorieSettings, &d.CalorieSettings},
	}
}

// Export reads every persisted slice into a backup document. Absent
// keys are omitted from the document.
func Export(kv domain.KeyValue) (*Document, error) {
	doc := &Document{Version: Version}
	for _, f := range doc.fields() {
		raw, err := kv.Get(f.key)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.key, err)
		}
		if raw != nil {
			*f.raw = json.RawMessage(raw)
		}
	}
	return doc, nil
}

// Import validates the document and replaces the store contents with
// it. Nothing is written unless the whole document validates; keys
// absent from the document are removed so the store mirrors the backup.
func Import(kv domain.KeyValue, doc *Document) error {
	if err := Validate(doc); err != nil {
		return err
	}
	for _, f := range doc.fields() {
		if *f.raw == nil {
			if err := kv.Remove(f.key); err != nil {
				return fmt.Errorf("remove %s: %w", f.key, err)
			}
			continue
		}
		if err := kv.Set(f.key, []byte(*f.raw)); err != nil {
			return fmt.Errorf("write %s: %w", f.key, err)
		}
	}
	return nil
}

// Validate checks the document for structural problems: unsupported
// version, malformed records, duplicate ids, and references to entities
// the document does not contain. Every problem is fatal, and the whole
// document is checked so the returned error lists all of them at once.
func Validate(doc *Document) error {
	if doc.Version != Version {
		return fmt.Errorf("%w: unsupported version %d", domain.ErrInvalidBackup, doc.Version)
	}

	v := &validation{}

	projects, projectsOK := decodeSlice[state.ProjectRecord](doc.Projects, "projects", v)
	var projectIDs map[string]bool
	if projectsOK {
		projectIDs = collectIDs("projects", projects, func(r state.ProjectRecord) string { return r.ID }, v)
		for _, r := range projects {
			if _, err := state.DecodeProject(r); err != nil {
				v.addf("%v", err)
			}
		}
	}

	tasks, tasksOK := decodeSlice[state.TaskRecord](doc.Tasks, "tasks", v)
	var taskIDs map[string]bool
	if tasksOK {
		taskIDs = collectIDs("tasks", tasks, func(r state.TaskRecord) string { return r.ID }, v)
		for _, r := range tasks {
			if _, err := state.DecodeTask(r); err != nil {
				v.addf("%v", err)
			}
			// Referential checks only make sense against a parseable
			// referent slice; a parse failure there is already reported.
			if projectsOK && !projectIDs[r.ProjectID] {
				v.addf("task %s references missing project %s", r.ID, r.ProjectID)
			}
		}
	}

	entries, entriesOK := decodeSlice[state.EntryRecord](doc.TimeEntries, "timeEntries", v)
	if entriesOK {
		collectIDs("timeEntries", entries, func(r state.EntryRecord) string { return r.ID }, v)
		for _, r := range entries {
			if _, err := state.DecodeEntry(r); err != nil {
				v.addf("%v", err)
			}
			if tasksOK && !taskIDs[r.TaskID] {
				v.addf("entry %s references missing task %s", r.ID, r.TaskID)
			}
		}
	}

	if doc.TimerState != nil {
		var rec state.TimerRecord
		if err := json.Unmarshal(doc.TimerState, &rec); err != nil {
			v.addf("parse timerState: %v", err)
		} else if _, err := state.DecodeTimer(rec); err != nil {
			v.addf("%v", err)
		}
	}

	areas, areasOK := decodeSlice[domain.SelfCareArea](doc.GoalsAreas, "goalsAreas", v)
	var areaIDs map[string]bool
	if areasOK {
		areaIDs = collectIDs("goalsAreas", areas, func(a domain.SelfCareArea) string { return a.ID }, v)
	}

	goals, goalsOK := decodeSlice[domain.Goal](doc.Goals, "goals", v)
	if goalsOK {
		collectIDs("goals", goals, func(g domain.Goal) string { return g.ID }, v)
		for i := range goals {
			g := goals[i]
			if err := state.ValidateGoal(&g); err != nil {
				v.addf("%v", err)
			}
			if areasOK && g.AreaID != "" && !areaIDs[g.AreaID] {
				v.addf("goal %s references missing area %s", g.ID, g.AreaID)
			}
		}
	}

	if doc.GoalsSettings != nil {
		var rec state.SettingsRecord
		if err := json.Unmarshal(doc.GoalsSettings, &rec); err != nil {
			v.addf("parse goalsSettings: %v", err)
		}
	}

	if doc.Lister != nil {
		var ls domain.ListerState
		if err := json.Unmarshal(doc.Lister, &ls); err != nil {
			v.addf("parse lister: %v", err)
		}
	}

	// Passthrough slices only need to be well-formed JSON.
	for _, f := range []struct {
		field string
		raw   json.RawMessage
	}{
		{"orgTasks", doc.OrgTasks},
		{"orgLists", doc.OrgLists},
		{"weightEntries", doc.WeightEntries},
		{"weightReminder", doc.WeightReminder},
		{"calorieMeals", doc.CalorieMeals},
		{"calorieSettings", doc.CalorieSettings},
	} {
		if f.raw != nil && !json.Valid(f.raw) {
			v.addf("field %s is not valid JSON", f.field)
		}
	}

	return v.err()
}

// validation accumulates problems so a single Validate pass reports
// everything wrong with the document.
type validation struct {
	problems []string
}

func (v *validation) addf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validation) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidBackup, strings.Join(v.problems, "; "))
}

// decodeSlice reports whether the slice parsed; callers skip id and
// reference checks for a slice that did not.
func decodeSlice[T any](raw json.RawMessage, field string, v *validation) ([]T, bool) {
	if raw == nil {
		return nil, true
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		v.addf("parse %s: %v", field, err)
		return nil, false
	}
	return out, true
}

// collectIDs records empty and duplicate ids as problems. Duplicates
// stay in the returned set so references to them still resolve.
func collectIDs[T any](field string, recs []T, id func(T) string, v *validation) map[string]bool {
	ids := make(map[string]bool, len(recs))
	for _, r := range recs {
		val := id(r)
		if val == "" {
			v.addf("%s record with empty id", field)
			continue
		}
		if ids[val] {
			v.addf("duplicate id %s in %s", val, field)
			continue
		}
		ids[val] = true
	}
	return ids
}
