package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerState_Start(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	s, err := IdleTimer().Start("task-1", "entry-1", now, 0)
	require.NoError(t, err)
	assert.Equal(t, TimerRunning, s.Phase)
	assert.Equal(t, "task-1", s.TaskID)
	assert.Equal(t, "entry-1", s.EntryID)
	assert.Equal(t, now, s.StartTime)
	assert.Equal(t, 0, s.ElapsedSeconds)
}

func TestTimerState_Start_AlreadyActive(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s, err := IdleTimer().Start("task-1", "entry-1", now, 0)
	require.NoError(t, err)

	_, err = s.Start("task-2", "entry-2", now, 0)
	assert.ErrorIs(t, err, ErrTimerRunning)

	paused, err := s.Pause(now.Add(time.Minute))
	require.NoError(t, err)
	_, err = paused.Start("task-2", "entry-2", now, 0)
	assert.ErrorIs(t, err, ErrTimerRunning)
}

func TestTimerState_Start_Backdated(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	s, err := IdleTimer().Start("task-1", "entry-1", now, 600)
	require.NoError(t, err)
	assert.Equal(t, 600, s.ElapsedSeconds)
	assert.Equal(t, 630, s.Elapsed(now.Add(30*time.Second)))
}

func TestTimerState_PauseResume(t *testing.T) {
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s, err := IdleTimer().Start("task-1", "entry-1", start, 0)
	require.NoError(t, err)

	s, err = s.Pause(start.Add(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, TimerPaused, s.Phase)
	assert.True(t, s.StartTime.IsZero())
	assert.Equal(t, 90, s.ElapsedSeconds)

	// Elapsed stays frozen while paused.
	assert.Equal(t, 90, s.Elapsed(start.Add(10*time.Minute)))

	resumeAt := start.Add(5 * time.Minute)
	s, err = s.Resume(resumeAt)
	require.NoError(t, err)
	assert.Equal(t, TimerRunning, s.Phase)
	assert.Equal(t, resumeAt, s.StartTime)
	assert.Equal(t, 100, s.Elapsed(resumeAt.Add(10*time.Second)))
}

func TestTimerState_InvalidTransitions(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	_, err := IdleTimer().Pause(now)
	assert.ErrorIs(t, err, ErrTimerNotRunning)

	_, err = IdleTimer().Resume(now)
	assert.ErrorIs(t, err, ErrTimerNotPaused)

	_, err = IdleTimer().Stop()
	assert.ErrorIs(t, err, ErrTimerIdle)

	running, err := IdleTimer().Start("task-1", "entry-1", now, 0)
	require.NoError(t, err)
	_, err = running.Resume(now)
	assert.ErrorIs(t, err, ErrTimerNotPaused)
}

func TestTimerState_Stop(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s, err := IdleTimer().Start("task-1", "entry-1", now, 0)
	require.NoError(t, err)

	s, err = s.Stop()
	require.NoError(t, err)
	assert.Equal(t, TimerIdle, s.Phase)
	assert.Empty(t, s.TaskID)
	assert.Empty(t, s.EntryID)
	assert.Equal(t, 0, s.ElapsedSeconds)
}

func TestTimerState_Reconcile_AfterReload(t *testing.T) {
	// Persisted 30s ago with 10s already accumulated; the process was
	// away and reloads 5 simulated seconds later.
	persistedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := TimerState{
		Phase:          TimerRunning,
		TaskID:         "task-1",
		EntryID:        "entry-1",
		StartTime:      persistedAt,
		ElapsedSeconds: 10,
	}

	now := persistedAt.Add(35 * time.Second)
	s = s.Reconcile(now)
	assert.Equal(t, 45, s.ElapsedSeconds)
	assert.Equal(t, now, s.StartTime)

	// Idle and paused states are untouched.
	idle := IdleTimer().Reconcile(now)
	assert.Equal(t, IdleTimer(), idle)
}
