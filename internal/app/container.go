// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/daybook-app/daybook/internal/domain"
	"github.com/daybook-app/daybook/internal/infra/backup"
	"github.com/daybook-app/daybook/internal/infra/config"
	"github.com/daybook-app/daybook/internal/infra/kv"
	"github.com/daybook-app/daybook/internal/infra/logging"
	"github.com/daybook-app/daybook/internal/infra/notify"
	"github.com/daybook-app/daybook/internal/infra/state"
	"github.com/daybook-app/daybook/internal/usecase"
)

// Store file names inside the data directory.
const (
	fileStoreName   = "daybook.json"
	sqliteStoreName = "daybook.db"
	snapshotDirName = "snapshots"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for
// use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	KV        domain.KeyValue
	Times     domain.TimeRepository
	Goals     domain.GoalRepository
	Lister    domain.ListerRepository
	Reminders domain.ReminderRepository
	Notifier  domain.Notifier
	Clock     domain.Clock
	IDGen     domain.IDGenerator

	Logger *logging.Logger

	// Configuration
	Config *domain.Config
}

// New creates a new Container from the configuration found in dir.
func New(dir string) (*Container, error) {
	loader := config.NewLoader(dir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		KV:        store,
		Times:     state.NewTimeStore(store),
		Goals:     state.NewGoalStore(store),
		Lister:    state.NewListerStore(store),
		Reminders: state.NewReminderStore(store),
		Notifier:  notify.New(cfg.Notify.Command, cfg.Notify.Enabled),
		Clock:     domain.RealClock{},
		IDGen:     domain.UUIDGenerator{},
		Logger:    logger,
		Config:    cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, store domain.KeyValue, clock domain.Clock, idgen domain.IDGenerator) *Container {
	return &Container{
		KV:        store,
		Times:     state.NewTimeStore(store),
		Goals:     state.NewGoalStore(store),
		Lister:    state.NewListerStore(store),
		Reminders: state.NewReminderStore(store),
		Clock:     clock,
		IDGen:     idgen,
		Config:    cfg,
	}
}

// openStore picks the key-value backend from the configuration.
// Default is the single-file JSON store; sqlite is opt-in.
func openStore(cfg *domain.Config) (domain.KeyValue, error) {
	switch cfg.Store.Backend {
	case domain.StoreSQLite:
		path := cfg.Store.Path
		if path == "" {
			path = filepath.Join(cfg.DataDir, sqliteStoreName)
		}
		store, err := kv.NewSQLiteStore(path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, nil
	case domain.StoreFile, "":
		path := cfg.Store.Path
		if path == "" {
			path = filepath.Join(cfg.DataDir, fileStoreName)
		}
		return kv.NewFileStore(path), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// SnapshotDir returns the backup snapshot repository path.
func (c *Container) SnapshotDir() string {
	return filepath.Join(c.Config.DataDir, snapshotDirName)
}

// Snapshotter returns the backup snapshotter.
func (c *Container) Snapshotter() *backup.Snapshotter {
	return backup.NewSnapshotter(c.SnapshotDir())
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.Logger != nil {
		_ = c.Logger.Close()
	}
	if closer, ok := c.KV.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// logger returns the domain logger, nil when logging is disabled.
func (c *Container) logger() domain.Logger {
	if c.Logger == nil {
		return nil
	}
	return c.Logger
}

// UseCase factory methods

// NewProjectUseCase returns a new NewProject use case.
func (c *Container) NewProjectUseCase() *usecase.NewProject {
	return usecase.NewNewProject(c.Times, c.Clock, c.IDGen, c.logger())
}

// DeleteProjectUseCase returns a new DeleteProject use case.
func (c *Container) DeleteProjectUseCase() *usecase.DeleteProject {
	return usecase.NewDeleteProject(c.Times, c.logger())
}

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Times, c.Clock, c.IDGen, c.logger())
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Times, c.logger())
}

// StartTimerUseCase returns a new StartTimer use case.
func (c *Container) StartTimerUseCase() *usecase.StartTimer {
	return usecase.NewStartTimer(c.Times, c.Clock, c.IDGen, c.logger())
}

// PauseTimerUseCase returns a new PauseTimer use case.
func (c *Container) PauseTimerUseCase() *usecase.PauseTimer {
	return usecase.NewPauseTimer(c.Times, c.Clock, c.logger())
}

// ResumeTimerUseCase returns a new ResumeTimer use case.
func (c *Container) ResumeTimerUseCase() *usecase.ResumeTimer {
	return usecase.NewResumeTimer(c.Times, c.Clock, c.logger())
}

// StopTimerUseCase returns a new StopTimer use case.
func (c *Container) StopTimerUseCase() *usecase.StopTimer {
	return usecase.NewStopTimer(c.Times, c.Clock, c.logger())
}

// TimerStatusUseCase returns a new TimerStatus use case.
func (c *Container) TimerStatusUseCase() *usecase.TimerStatus {
	return usecase.NewTimerStatus(c.Times, c.Clock)
}

// AddTimeEntryUseCase returns a new AddTimeEntry use case.
func (c *Container) AddTimeEntryUseCase() *usecase.AddTimeEntry {
	return usecase.NewAddTimeEntry(c.Times, c.IDGen, c.logger())
}

// UpdateTimeEntryUseCase returns a new UpdateTimeEntry use case.
func (c *Container) UpdateTimeEntryUseCase() *usecase.UpdateTimeEntry {
	return usecase.NewUpdateTimeEntry(c.Times, c.Clock, c.logger())
}

// DeleteTimeEntryUseCase returns a new DeleteTimeEntry use case.
func (c *Container) DeleteTimeEntryUseCase() *usecase.DeleteTimeEntry {
	return usecase.NewDeleteTimeEntry(c.Times, c.logger())
}

// BuildReportUseCase returns a new BuildReport use case.
func (c *Container) BuildReportUseCase() *usecase.BuildReport {
	return usecase.NewBuildReport(c.Times, c.Clock)
}

// NewAreaUseCase returns a new NewArea use case.
func (c *Container) NewAreaUseCase() *usecase.NewArea {
	return usecase.NewNewArea(c.Goals, c.IDGen, c.logger())
}

// DeleteAreaUseCase returns a new DeleteArea use case.
func (c *Container) DeleteAreaUseCase() *usecase.DeleteArea {
	return usecase.NewDeleteArea(c.Goals, c.Clock, c.logger())
}

// AddGoalUseCase returns a new AddGoal use case.
func (c *Container) AddGoalUseCase() *usecase.AddGoal {
	return usecase.NewAddGoal(c.Goals, c.IDGen, c.logger())
}

// UpdateGoalUseCase returns a new UpdateGoal use case.
func (c *Container) UpdateGoalUseCase() *usecase.UpdateGoal {
	return usecase.NewUpdateGoal(c.Goals, c.logger())
}

// DeleteGoalUseCase returns a new DeleteGoal use case.
func (c *Container) DeleteGoalUseCase() *usecase.DeleteGoal {
	return usecase.NewDeleteGoal(c.Goals, c.Clock, c.logger())
}

// CompleteGoalUseCase returns a new CompleteGoal use case.
func (c *Container) CompleteGoalUseCase() *usecase.CompleteGoal {
	return usecase.NewCompleteGoal(c.Goals, c.Clock, c.logger())
}

// UncompleteGoalUseCase returns a new UncompleteGoal use case.
func (c *Container) UncompleteGoalUseCase() *usecase.UncompleteGoal {
	return usecase.NewUncompleteGoal(c.Goals, c.Clock, c.logger())
}

// GoalProgressUseCase returns a new GoalProgress use case.
func (c *Container) GoalProgressUseCase() *usecase.GoalProgress {
	return usecase.NewGoalProgress(c.Goals, c.Clock)
}

// SeedGoalsUseCase returns a new SeedGoals use case.
func (c *Container) SeedGoalsUseCase() *usecase.SeedGoals {
	return usecase.NewSeedGoals(c.Goals, c.IDGen, c.logger())
}

// CreateListUseCase returns a new CreateList use case.
func (c *Container) CreateListUseCase() *usecase.CreateList {
	return usecase.NewCreateList(c.Lister, c.logger())
}

// DeleteListUseCase returns a new DeleteList use case.
func (c *Container) DeleteListUseCase() *usecase.DeleteList {
	return usecase.NewDeleteList(c.Lister, c.logger())
}

// SelectListUseCase returns a new SelectList use case.
func (c *Container) SelectListUseCase() *usecase.SelectList {
	return usecase.NewSelectList(c.Lister)
}

// AddCategoryUseCase returns a new AddCategory use case.
func (c *Container) AddCategoryUseCase() *usecase.AddCategory {
	return usecase.NewAddCategory(c.Lister, c.logger())
}

// RenameCategoryUseCase returns a new RenameCategory use case.
func (c *Container) RenameCategoryUseCase() *usecase.RenameCategory {
	return usecase.NewRenameCategory(c.Lister)
}

// DeleteCategoryUseCase returns a new DeleteCategory use case.
func (c *Container) DeleteCategoryUseCase() *usecase.DeleteCategory {
	return usecase.NewDeleteCategory(c.Lister, c.logger())
}

// ReorderCategoriesUseCase returns a new ReorderCategories use case.
func (c *Container) ReorderCategoriesUseCase() *usecase.ReorderCategories {
	return usecase.NewReorderCategories(c.Lister)
}

// AddItemUseCase returns a new AddItem use case.
func (c *Container) AddItemUseCase() *usecase.AddItem {
	return usecase.NewAddItem(c.Lister, c.logger())
}

// DeleteItemUseCase returns a new DeleteItem use case.
func (c *Container) DeleteItemUseCase() *usecase.DeleteItem {
	return usecase.NewDeleteItem(c.Lister)
}

// ToggleItemInCartUseCase returns a new ToggleItemInCart use case.
func (c *Container) ToggleItemInCartUseCase() *usecase.ToggleItemInCart {
	return usecase.NewToggleItemInCart(c.Lister)
}

// MoveItemUseCase returns a new MoveItem use case.
func (c *Container) MoveItemUseCase() *usecase.MoveItem {
	return usecase.NewMoveItem(c.Lister)
}

// ReorderItemsUseCase returns a new ReorderItems use case.
func (c *Container) ReorderItemsUseCase() *usecase.ReorderItems {
	return usecase.NewReorderItems(c.Lister)
}

// SetReminderUseCase returns a new SetReminder use case.
func (c *Container) SetReminderUseCase() *usecase.SetReminder {
	return usecase.NewSetReminder(c.Reminders, c.logger())
}

// FireReminderUseCase returns a new FireReminder use case.
func (c *Container) FireReminderUseCase() *usecase.FireReminder {
	return usecase.NewFireReminder(c.Reminders, c.Notifier, c.logger())
}
