package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/infra/state"
)

// memoryKV is an in-memory KeyValue for tests.
type memoryKV struct {
	data map[string][]byte
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string][]byte{}}
}

func (m *memoryKV) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}
func (m *memoryKV) Set(key string, value []byte) error { m.data[key] = value; return nil }
func (m *memoryKV) Remove(key string) error            { delete(m.data, key); return nil }
func (m *memoryKV) Keys() ([]string, error) {
	var keys []string
	for k := range m.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func validDocument(t *testing.T) *Document {
	t.Helper()
	doc := &Document{Version: Version}
	doc.Projects = mustJSON(t, []state.ProjectRecord{
		{ID: "p1", Name: "Work", CreatedAt: "2026-03-01T09:00:00Z"},
	})
	doc.Tasks = mustJSON(t, []state.TaskRecord{
		{ID: "t1", Name: "Coding", ProjectID: "p1", CreatedAt: "2026-03-01T09:05:00Z"},
	})
	doc.TimeEntries = mustJSON(t, []state.EntryRecord{
		{ID: "e1", TaskID: "t1", StartTime: "2026-03-02T10:00:00Z"},
	})
	doc.GoalsAreas = mustJSON(t, []domain.SelfCareArea{{ID: "a1", Name: "Health"}})
	doc.Goals = mustJSON(t, []domain.Goal{
		{ID: "g1", Description: "Run", AreaID: "a1", Points: 5, CompletedDates: []string{"2026-03-02"}},
	})
	doc.WeightEntries = json.RawMessage(`[{"date":"2026-03-02","kg":72.5}]`)
	return doc
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestExport_ReadsAllKeys(t *testing.T) {
	kv := newMemoryKV()
	require.NoError(t, kv.Set(state.KeyProjects, []byte(`[{"id":"p1","name":"Work","color":"","createdAt":"2026-03-01T09:00:00Z"}]`)))
	require.NoError(t, kv.Set(state.KeyCalorieMeals, []byte(`[{"name":"lunch","kcal":600}]`)))

	doc, err := Export(kv)
	require.NoError(t, err)

	assert.Equal(t, Version, doc.Version)
	assert.NotNil(t, doc.Projects)
	assert.JSONEq(t, `[{"name":"lunch","kcal":600}]`, string(doc.CalorieMeals))
	assert.Nil(t, doc.Tasks)
}

func TestImport_RoundTrip(t *testing.T) {
	doc := validDocument(t)
	kv := newMemoryKV()
	// A key absent from the document gets removed on import.
	require.NoError(t, kv.Set(state.KeyLister, []byte(`{"lists":[],"lastId":9}`)))

	require.NoError(t, Import(kv, doc))

	stored, err := kv.Get(state.KeyProjects)
	require.NoError(t, err)
	assert.JSONEq(t, string(doc.Projects), string(stored))

	gone, err := kv.Get(state.KeyLister)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestValidate_UnsupportedVersion(t *testing.T) {
	doc := validDocument(t)
	doc.Version = 99
	assert.ErrorIs(t, Validate(doc), domain.ErrInvalidBackup)
}

func TestValidate_DuplicateIDs(t *testing.T) {
	doc := validDocument(t)
	doc.Projects = mustJSON(t, []state.ProjectRecord{
		{ID: "p1", Name: "Work", CreatedAt: "2026-03-01T09:00:00Z"},
		{ID: "p1", Name: "Again", CreatedAt: "2026-03-01T09:00:00Z"},
	})
	assert.ErrorIs(t, Validate(doc), domain.ErrInvalidBackup)
}

func TestValidate_OrphanTask(t *testing.T) {
	doc := validDocument(t)
	doc.Tasks = mustJSON(t, []state.TaskRecord{
		{ID: "t1", Name: "Coding", ProjectID: "missing", CreatedAt: "2026-03-01T09:05:00Z"},
	})
	assert.ErrorIs(t, Validate(doc), domain.ErrInvalidBackup)
}

func TestValidate_OrphanEntry(t *testing.T) {
	doc := validDocument(t)
	doc.TimeEntries = mustJSON(t, []state.EntryRecord{
		{ID: "e1", TaskID: "missing", StartTime: "2026-03-02T10:00:00Z"},
	})
	assert.ErrorIs(t, Validate(doc), domain.ErrInvalidBackup)
}

func TestValidate_MalformedTimestamp(t *testing.T) {
	doc := validDocument(t)
	doc.TimeEntries = mustJSON(t, []state.EntryRecord{
		{ID: "e1", TaskID: "t1", StartTime: "yesterday"},
	})
	assert.ErrorIs(t, Validate(doc), domain.ErrInvalidBackup)
}

func TestValidate_BadGoalDate(t *testing.T) {
	doc := validDocument(t)
	doc.Goals = mustJSON(t, []domain.Goal{
		{ID: "g1", Description: "Run", AreaID: "a1", CompletedDates: []string{"03/02/2026"}},
	})
	assert.ErrorIs(t, Validate(doc), domain.ErrInvalidBackup)
}

func TestValidate_OrphanGoalArea(t *testing.T) {
	doc := validDocument(t)
	doc.Goals = mustJSON(t, []domain.Goal{
		{ID: "g1", Description: "Run", AreaID: "missing"},
	})
	assert.ErrorIs(t, Validate(doc), domain.ErrInvalidBackup)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	doc := validDocument(t)
	doc.Projects = mustJSON(t, []state.ProjectRecord{
		{ID: "p1", Name: "Work", CreatedAt: "2026-03-01T09:00:00Z"},
		{ID: "p1", Name: "Again", CreatedAt: "2026-03-01T09:00:00Z"},
	})
	doc.Tasks = mustJSON(t, []state.TaskRecord{
		{ID: "t1", Name: "Coding", ProjectID: "missing", CreatedAt: "2026-03-01T09:05:00Z"},
	})
	doc.Goals = mustJSON(t, []domain.Goal{
		{ID: "g1", Description: "Run", AreaID: "a1", CompletedDates: []string{"03/02/2026"}},
	})

	err := Validate(doc)
	require.ErrorIs(t, err, domain.ErrInvalidBackup)
	assert.Contains(t, err.Error(), "duplicate id p1 in projects")
	assert.Contains(t, err.Error(), "task t1 references missing project missing")
	assert.Contains(t, err.Error(), "03/02/2026")
}

func TestValidate_UnparsableSliceSkipsReferenceChecks(t *testing.T) {
	doc := validDocument(t)
	doc.Projects = json.RawMessage(`{"not":"an array"}`)

	err := Validate(doc)
	require.ErrorIs(t, err, domain.ErrInvalidBackup)
	assert.Contains(t, err.Error(), "parse projects")
	// Tasks cannot be checked against projects that did not parse; no
	// spurious orphan problem is reported.
	assert.NotContains(t, err.Error(), "missing project")
}

func TestImport_AbortsWithoutPartialWrite(t *testing.T) {
	doc := validDocument(t)
	doc.Goals = mustJSON(t, []domain.Goal{{ID: "g1", Description: "Run", AreaID: "missing"}})

	kv := newMemoryKV()
	err := Import(kv, doc)
	require.ErrorIs(t, err, domain.ErrInvalidBackup)
	assert.Empty(t, kv.data)
}

func TestSnapshotter_Save(t *testing.T) {
	s := NewSnapshotter(t.TempDir())
	doc := validDocument(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	hash, err := s.Save(doc, now)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	// Identical content commits nothing.
	again, err := s.Save(doc, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, again)

	doc.WeightEntries = json.RawMessage(`[]`)
	third, err := s.Save(doc, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.NotEmpty(t, third)
	assert.NotEqual(t, hash, third)
}
