package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "daybook.json"))
}

func TestFileStore_GetMissingKey(t *testing.T) {
	s := newTestFileStore(t)

	value, err := s.Get("timeTracking_projects")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	s := newTestFileStore(t)

	require.NoError(t, s.Set("goals", []byte(`[{"id":"g1"}]`)))

	value, err := s.Get("goals")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"g1"}]`, string(value))

	// A second instance on the same path sees the write.
	other := NewFileStore(s.path)
	value, err = other.Get("goals")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"g1"}]`, string(value))
}

func TestFileStore_SetRejectsInvalidJSON(t *testing.T) {
	s := newTestFileStore(t)
	assert.Error(t, s.Set("goals", []byte("{not json")))
}

func TestFileStore_Remove(t *testing.T) {
	s := newTestFileStore(t)
	require.NoError(t, s.Set("goals", []byte(`[]`)))

	require.NoError(t, s.Remove("goals"))
	value, err := s.Get("goals")
	require.NoError(t, err)
	assert.Nil(t, value)

	// Removing an absent key is not an error.
	require.NoError(t, s.Remove("goals"))
}

func TestFileStore_Keys(t *testing.T) {
	s := newTestFileStore(t)
	require.NoError(t, s.Set("lister_state_v1", []byte(`{}`)))
	require.NoError(t, s.Set("goals", []byte(`[]`)))

	keys, err := s.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"goals", "lister_state_v1"}, keys)
}

func TestFileStore_Initialize(t *testing.T) {
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "nested", "daybook.json"))

	assert.False(t, s.IsInitialized())
	require.NoError(t, s.Initialize())
	assert.True(t, s.IsInitialized())

	// Initialize again keeps existing data.
	require.NoError(t, s.Set("goals", []byte(`[]`)))
	require.NoError(t, s.Initialize())
	value, err := s.Get("goals")
	require.NoError(t, err)
	assert.NotNil(t, value)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "daybook.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0o600))

	s := NewFileStore(path)
	_, err := s.Get("goals")
	assert.Error(t, err)
}
