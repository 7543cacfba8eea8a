package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/domain"
)

func seedTask(t *testing.T, repo *memTimeRepo) *domain.Task {
	t.Helper()
	project := &domain.Project{ID: "p1", Name: "Work"}
	task := &domain.Task{ID: "t1", Name: "Coding", ProjectID: "p1"}
	require.NoError(t, repo.SaveProject(project))
	require.NoError(t, repo.SaveTask(task))
	return task
}

func TestStartTimer_Execute_CreatesRunningEntry(t *testing.T) {
	repo := newMemTimeRepo()
	seedTask(t, repo)
	clock := &mockClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	uc := NewStartTimer(repo, clock, &seqIDGen{}, nil)

	out, err := uc.Execute(context.Background(), StartTimerInput{TaskID: "t1"})
	require.NoError(t, err)

	entry := repo.entries[out.EntryID]
	require.NotNil(t, entry)
	assert.True(t, entry.IsRunning)
	assert.Equal(t, clock.now, entry.StartTime)
	require.Len(t, entry.Periods, 1)
	assert.Nil(t, entry.Periods[0].End)

	assert.Equal(t, domain.TimerRunning, repo.timer.Phase)
	assert.Equal(t, "t1", repo.timer.TaskID)
	assert.Equal(t, out.EntryID, repo.timer.EntryID)
}

func TestStartTimer_Execute_RejectsSecondStart(t *testing.T) {
	repo := newMemTimeRepo()
	seedTask(t, repo)
	clock := &mockClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	uc := NewStartTimer(repo, clock, &seqIDGen{}, nil)

	_, err := uc.Execute(context.Background(), StartTimerInput{TaskID: "t1"})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), StartTimerInput{TaskID: "t1"})
	assert.ErrorIs(t, err, domain.ErrTimerRunning)
}

func TestStartTimer_Execute_BackdatedStart(t *testing.T) {
	repo := newMemTimeRepo()
	seedTask(t, repo)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := &mockClock{now: now}
	uc := NewStartTimer(repo, clock, &seqIDGen{}, nil)

	earlier := now.Add(-30 * time.Minute)
	out, err := uc.Execute(context.Background(), StartTimerInput{
		TaskID:         "t1",
		StartedAt:      &earlier,
		ElapsedSeconds: 1800,
	})
	require.NoError(t, err)

	entry := repo.entries[out.EntryID]
	assert.Equal(t, earlier, entry.StartTime)
	// The period opens now; only the display is backdated.
	assert.Equal(t, now, entry.Periods[0].Start)
	assert.Equal(t, 1800, repo.timer.ElapsedSeconds)
}

func TestStartTimer_Execute_UnknownTask(t *testing.T) {
	repo := newMemTimeRepo()
	clock := &mockClock{now: time.Now()}
	uc := NewStartTimer(repo, clock, &seqIDGen{}, nil)

	_, err := uc.Execute(context.Background(), StartTimerInput{TaskID: "nope"})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestPauseResumeStop_Execute_FullCycle(t *testing.T) {
	repo := newMemTimeRepo()
	seedTask(t, repo)
	clock := &mockClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	start := NewStartTimer(repo, clock, &seqIDGen{}, nil)
	pause := NewPauseTimer(repo, clock, nil)
	resume := NewResumeTimer(repo, clock, nil)
	stop := NewStopTimer(repo, clock, nil)

	out, err := start.Execute(context.Background(), StartTimerInput{TaskID: "t1"})
	require.NoError(t, err)

	clock.advance(10 * time.Minute)
	require.NoError(t, pause.Execute(context.Background()))

	entry := repo.entries[out.EntryID]
	assert.False(t, entry.IsRunning)
	assert.True(t, entry.IsPaused)
	require.Len(t, entry.Periods, 1)
	require.NotNil(t, entry.Periods[0].End)
	assert.Equal(t, domain.TimerPaused, repo.timer.Phase)
	assert.Equal(t, 600, repo.timer.ElapsedSeconds)

	// The pause gap does not count.
	clock.advance(time.Hour)
	require.NoError(t, resume.Execute(context.Background()))
	assert.True(t, repo.entries[out.EntryID].IsRunning)
	require.Len(t, repo.entries[out.EntryID].Periods, 2)

	clock.advance(5 * time.Minute)
	stopped, err := stop.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, out.EntryID, stopped.EntryID)
	assert.Equal(t, 900, stopped.DurationSeconds)

	entry = repo.entries[out.EntryID]
	assert.False(t, entry.IsRunning)
	assert.False(t, entry.IsPaused)
	require.NotNil(t, entry.EndTime)
	require.NotNil(t, entry.DurationSeconds)
	assert.Equal(t, 900, *entry.DurationSeconds)
	assert.Equal(t, domain.TimerIdle, repo.timer.Phase)
}

func TestPauseTimer_Execute_NotRunning(t *testing.T) {
	repo := newMemTimeRepo()
	clock := &mockClock{now: time.Now()}
	err := NewPauseTimer(repo, clock, nil).Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrTimerNotRunning)
}

func TestResumeTimer_Execute_NotPaused(t *testing.T) {
	repo := newMemTimeRepo()
	clock := &mockClock{now: time.Now()}
	err := NewResumeTimer(repo, clock, nil).Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrTimerNotPaused)
}

func TestStopTimer_Execute_Idle(t *testing.T) {
	repo := newMemTimeRepo()
	clock := &mockClock{now: time.Now()}
	_, err := NewStopTimer(repo, clock, nil).Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrTimerIdle)
}

func TestTimerStatus_Execute_ReconcilesAfterRestart(t *testing.T) {
	repo := newMemTimeRepo()
	seedTask(t, repo)
	clock := &mockClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	start := NewStartTimer(repo, clock, &seqIDGen{}, nil)
	_, err := start.Execute(context.Background(), StartTimerInput{TaskID: "t1"})
	require.NoError(t, err)

	// Simulate the app coming back an hour later.
	clock.advance(time.Hour)
	out, err := NewTimerStatus(repo, clock).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.TimerRunning, out.Phase)
	assert.Equal(t, 3600, out.ElapsedSeconds)
	assert.Equal(t, "01:00:00", out.Elapsed)
	require.NotNil(t, out.Task)
	assert.Equal(t, "Coding", out.Task.Name)
	require.NotNil(t, out.Project)
	assert.Equal(t, "Work", out.Project.Name)

	// The reconciled baseline was persisted.
	assert.Equal(t, clock.now, repo.timer.StartTime)
	assert.Equal(t, 3600, repo.timer.ElapsedSeconds)
}

func TestTimerStatus_Execute_DanglingTask(t *testing.T) {
	repo := newMemTimeRepo()
	seedTask(t, repo)
	clock := &mockClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	_, err := NewStartTimer(repo, clock, &seqIDGen{}, nil).Execute(context.Background(), StartTimerInput{TaskID: "t1"})
	require.NoError(t, err)
	delete(repo.tasks, "t1")

	out, err := NewTimerStatus(repo, clock).Execute(context.Background())
	require.NoError(t, err)
	assert.Nil(t, out.Task)
	assert.Nil(t, out.Project)
}

func TestDeleteTimeEntry_Execute_ResetsActiveTimer(t *testing.T) {
	repo := newMemTimeRepo()
	seedTask(t, repo)
	clock := &mockClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	out, err := NewStartTimer(repo, clock, &seqIDGen{}, nil).Execute(context.Background(), StartTimerInput{TaskID: "t1"})
	require.NoError(t, err)

	err = NewDeleteTimeEntry(repo, nil).Execute(context.Background(), DeleteTimeEntryInput{EntryID: out.EntryID})
	require.NoError(t, err)
	assert.Empty(t, repo.entries)
	assert.Equal(t, domain.TimerIdle, repo.timer.Phase)
}

func TestDeleteProject_Execute_Cascades(t *testing.T) {
	repo := newMemTimeRepo()
	seedTask(t, repo)
	clock := &mockClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}

	_, err := NewStartTimer(repo, clock, &seqIDGen{}, nil).Execute(context.Background(), StartTimerInput{TaskID: "t1"})
	require.NoError(t, err)

	err = NewDeleteProject(repo, nil).Execute(context.Background(), DeleteProjectInput{ProjectID: "p1"})
	require.NoError(t, err)

	assert.Empty(t, repo.projects)
	assert.Empty(t, repo.tasks)
	assert.Empty(t, repo.entries)
	assert.Equal(t, domain.TimerIdle, repo.timer.Phase)
}
