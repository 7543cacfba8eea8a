package domain

// ConfigFileName is the configuration file name looked up in the
// global config directory and the current directory.
const ConfigFileName = "daybook.toml"

// Store backends.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// StoreConfig selects and locates the key-value backend.
type StoreConfig struct {
	Backend string // "file" or "sqlite"
	Path    string // override for the store file, empty = default under the data dir
}

// LogConfig configures logging.
type LogConfig struct {
	Level string // debug, info, warn, error
}

// NotifyConfig configures desktop notifications.
type NotifyConfig struct {
	Command string // notifier binary, e.g. notify-send
	Enabled bool
}

// SnapshotConfig configures backup snapshots.
type SnapshotConfig struct {
	// Enabled keeps a local git history of exported backups.
	Enabled bool
}

// Config is the merged application configuration.
type Config struct {
	DataDir  string
	Store    StoreConfig
	Log      LogConfig
	Notify   NotifyConfig
	Snapshot SnapshotConfig
	Warnings []string
}

// NewDefaultConfig returns the configuration used when no config file
// exists.
func NewDefaultConfig() *Config {
	return &Config{
		Store:  StoreConfig{Backend: StoreFile},
		Log:    LogConfig{Level: "info"},
		Notify: NotifyConfig{Command: "notify-send", Enabled: true},
	}
}

// ConfigLoader loads the application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (local + global).
	Load() (*Config, error)
}
