package domain

import (
	"time"

	"github.com/google/uuid"
)

// KeyValue is the persistence collaborator: an addressable store of
// JSON-serialized slices keyed by fixed strings (one key per domain
// slice). Implementations must treat Set as an atomic replace of the
// whole value.
type KeyValue interface {
	// Get returns the stored value, or (nil, nil) when the key is absent.
	Get(key string) ([]byte, error)

	// Set replaces the value for key.
	Set(key string, value []byte) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error

	// Keys lists every stored key.
	Keys() ([]string, error)
}

// TimeRepository manages time-tracking persistence.
// Get methods return (nil, nil) when the entity does not exist.
type TimeRepository interface {
	Projects() ([]*Project, error)
	GetProject(id string) (*Project, error)
	SaveProject(p *Project) error
	DeleteProject(id string) error

	Tasks() ([]*Task, error)
	GetTask(id string) (*Task, error)
	SaveTask(t *Task) error
	DeleteTask(id string) error

	Entries() ([]*TimeEntry, error)
	GetEntry(id string) (*TimeEntry, error)
	SaveEntry(e *TimeEntry) error
	DeleteEntry(id string) error

	TimerState() (TimerState, error)
	SaveTimerState(s TimerState) error
}

// GoalRepository manages goals, self-care areas, and goal settings.
// Get methods return (nil, nil) when the entity does not exist.
type GoalRepository interface {
	Goals() ([]*Goal, error)
	GetGoal(id string) (*Goal, error)
	SaveGoal(g *Goal) error
	DeleteGoal(id string) error

	Areas() ([]*SelfCareArea, error)
	GetArea(id string) (*SelfCareArea, error)
	SaveArea(a *SelfCareArea) error
	DeleteArea(id string) error

	Settings() (*GoalSettings, error)
	SaveSettings(s *GoalSettings) error
}

// ListerRepository manages the shopping-list state blob.
type ListerRepository interface {
	State() (*ListerState, error)
	SaveState(s *ListerState) error
}

// ReminderRepository manages the weight reminder schedule.
type ReminderRepository interface {
	Reminder() (*WeightReminder, error)
	SaveReminder(r *WeightReminder) error
}

// Notifier delivers a desktop notification to the user.
type Notifier interface {
	// Available reports whether notifications can be delivered on this host.
	Available() bool

	// Notify sends a notification with the given title and body.
	Notify(title, body string) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// IDGenerator produces unique entity identifiers.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator implements IDGenerator using random UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// Logger records application events by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
