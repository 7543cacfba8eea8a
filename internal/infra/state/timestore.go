package state

import (
	"encoding/json"
	"fmt"

	"github.com/daybook-app/daybook/internal/domain"
)

// TimeStore implements domain.TimeRepository over a key-value backend.
// Each slice is read, mutated in memory, and written back whole; the
// backend's Set is the atomicity boundary.
type TimeStore struct {
	kv domain.KeyValue
}

// NewTimeStore creates a TimeStore on the given backend.
func NewTimeStore(kv domain.KeyValue) *TimeStore {
	return &TimeStore{kv: kv}
}

func loadSlice[R any](kv domain.KeyValue, key string) ([]R, error) {
	raw, err := kv.Get(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var records []R
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", key, err)
	}
	return records, nil
}

func saveSlice[R any](kv domain.KeyValue, key string, records []R) error {
	if records == nil {
		records = []R{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return kv.Set(key, raw)
}

// Projects returns every stored project.
func (s *TimeStore) Projects() ([]*domain.Project, error) {
	records, err := loadSlice[ProjectRecord](s.kv, KeyProjects)
	if err != nil {
		return nil, err
	}
	projects := make([]*domain.Project, 0, len(records))
	for _, r := range records {
		p, err := DecodeProject(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", KeyProjects, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

// GetProject returns the project with the given id, or nil.
func (s *TimeStore) GetProject(id string) (*domain.Project, error) {
	projects, err := s.Projects()
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// SaveProject inserts or replaces a project.
func (s *TimeStore) SaveProject(p *domain.Project) error {
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	projects = upsert(projects, p, func(x *domain.Project) string { return x.ID })
	return s.writeProjects(projects)
}

// DeleteProject removes a project. Cascades are orchestrated by the
// caller.
func (s *TimeStore) DeleteProject(id string) error {
	projects, err := s.Projects()
	if err != nil {
		return err
	}
	projects = remove(projects, id, func(x *domain.Project) string { return x.ID })
	return s.writeProjects(projects)
}

func (s *TimeStore) writeProjects(projects []*domain.Project) error {
	records := make([]ProjectRecord, 0, len(projects))
	for _, p := range projects {
		records = append(records, EncodeProject(p))
	}
	return saveSlice(s.kv, KeyProjects, records)
}

// Tasks returns every stored task.
func (s *TimeStore) Tasks() ([]*domain.Task, error) {
	records, err := loadSlice[TaskRecord](s.kv, KeyTasks)
	if err != nil {
		return nil, err
	}
	tasks := make([]*domain.Task, 0, len(records))
	for _, r := range records {
		t, err := DecodeTask(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", KeyTasks, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// GetTask returns the task with the given id, or nil.
func (s *TimeStore) GetTask(id string) (*domain.Task, error) {
	tasks, err := s.Tasks()
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

// SaveTask inserts or replaces a task.
func (s *TimeStore) SaveTask(t *domain.Task) error {
	tasks, err := s.Tasks()
	if err != nil {
		return err
	}
	tasks = upsert(tasks, t, func(x *domain.Task) string { return x.ID })
	return s.writeTasks(tasks)
}

// DeleteTask removes a task.
func (s *TimeStore) DeleteTask(id string) error {
	tasks, err := s.Tasks()
	if err != nil {
		return err
	}
	tasks = remove(tasks, id, func(x *domain.Task) string { return x.ID })
	return s.writeTasks(tasks)
}

func (s *TimeStore) writeTasks(tasks []*domain.Task) error {
	records := make([]TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, EncodeTask(t))
	}
	return saveSlice(s.kv, KeyTasks, records)
}

// Entries returns every stored time entry.
func (s *TimeStore) Entries() ([]*domain.TimeEntry, error) {
	records, err := loadSlice[EntryRecord](s.kv, KeyEntries)
	if err != nil {
		return nil, err
	}
	entries := make([]*domain.TimeEntry, 0, len(records))
	for _, r := range records {
		e, err := DecodeEntry(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", KeyEntries, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// GetEntry returns the entry with the given id, or nil.
func (s *TimeStore) GetEntry(id string) (*domain.TimeEntry, error) {
	entries, err := s.Entries()
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, nil
}

// SaveEntry inserts or replaces a time entry.
func (s *TimeStore) SaveEntry(e *domain.TimeEntry) error {
	entries, err := s.Entries()
	if err != nil {
		return err
	}
	entries = upsert(entries, e, func(x *domain.TimeEntry) string { return x.ID })
	return s.writeEntries(entries)
}

// DeleteEntry removes a time entry.
func (s *TimeStore) DeleteEntry(id string) error {
	entries, err := s.Entries()
	if err != nil {
		return err
	}
	entries = remove(entries, id, func(x *domain.TimeEntry) string { return x.ID })
	return s.writeEntries(entries)
}

func (s *TimeStore) writeEntries(entries []*domain.TimeEntry) error {
	records := make([]EntryRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, EncodeEntry(e))
	}
	return saveSlice(s.kv, KeyEntries, records)
}

// TimerState returns the persisted timer state, idle when absent.
func (s *TimeStore) TimerState() (domain.TimerState, error) {
	raw, err := s.kv.Get(KeyTimerState)
	if err != nil {
		return domain.IdleTimer(), err
	}
	if raw == nil {
		return domain.IdleTimer(), nil
	}
	var rec TimerRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.IdleTimer(), fmt.Errorf("parse %s: %w", KeyTimerState, err)
	}
	return DecodeTimer(rec)
}

// SaveTimerState persists the singleton timer state.
func (s *TimeStore) SaveTimerState(ts domain.TimerState) error {
	raw, err := json.Marshal(EncodeTimer(ts))
	if err != nil {
		return fmt.Errorf("marshal %s: %w", KeyTimerState, err)
	}
	return s.kv.Set(KeyTimerState, raw)
}

func upsert[T any](items []*T, item *T, id func(*T) string) []*T {
	for i, existing := range items {
		if id(existing) == id(item) {
			items[i] = item
			return items
		}
	}
	return append(items, item)
}

func remove[T any](items []*T, target string, id func(*T) string) []*T {
	out := items[:0]
	for _, item := range items {
		if id(item) != target {
			out = append(out, item)
		}
	}
	return out
}

// Ensure TimeStore implements the port.
var _ domain.TimeRepository = (*TimeStore)(nil)
