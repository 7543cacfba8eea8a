// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/daybook-app/daybook/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	localDir      string // directory searched for a local config file
	globalConfDir string // global config directory (e.g. ~/.config/daybook)
}

// NewLoader creates a new Loader.
func NewLoader(localDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global
// config directory. This is useful for testing.
func NewLoaderWithGlobalDir(localDir, globalConfDir string) *Loader {
	return &Loader{
		localDir:      localDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "daybook")
}

// DefaultDataDir returns the default data directory
// (e.g. ~/.local/share/daybook).
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "daybook")
}

// fileConfig is one parsed config file. Optional booleans are pointers
// so an explicit false survives the merge.
type fileConfig struct {
	dataDir         string
	storeBackend    string
	storePath       string
	logLevel        string
	notifyCommand   string
	notifyEnabled   *bool
	snapshotEnabled *bool
	warnings        []string
}

// Load returns the merged configuration.
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.loadFile(filepath.Join(l.localDir, domain.ConfigFileName))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg := domain.NewDefaultConfig()
	cfg.DataDir = DefaultDataDir()

	// Merge: default <- global <- local (later takes precedence)
	for _, fc := range []*fileConfig{global, local} {
		if fc == nil {
			continue
		}
		applyFileConfig(cfg, fc)
	}
	return cfg, nil
}

func applyFileConfig(cfg *domain.Config, fc *fileConfig) {
	if fc.dataDir != "" {
		cfg.DataDir = fc.dataDir
	}
	if fc.storeBackend != "" {
		cfg.Store.Backend = fc.storeBackend
	}
	if fc.storePath != "" {
		cfg.Store.Path = fc.storePath
	}
	if fc.logLevel != "" {
		cfg.Log.Level = fc.logLevel
	}
	if fc.notifyCommand != "" {
		cfg.Notify.Command = fc.notifyCommand
	}
	if fc.notifyEnabled != nil {
		cfg.Notify.Enabled = *fc.notifyEnabled
	}
	if fc.snapshotEnabled != nil {
		cfg.Snapshot.Enabled = *fc.snapshotEnabled
	}
	cfg.Warnings = append(cfg.Warnings, fc.warnings...)
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return parseRawConfig(raw), nil
}

// parseRawConfig converts the raw map to a fileConfig and collects
// warnings for unknown keys.
func parseRawConfig(raw map[string]any) *fileConfig {
	res := &fileConfig{}
	var warnings []string

	for section, value := range raw {
		switch section {
		case "data_dir":
			if s, ok := value.(string); ok {
				res.dataDir = s
			}
		case "store":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "backend":
						if s, ok := v.(string); ok {
							res.storeBackend = s
						}
					case "path":
						if s, ok := v.(string); ok {
							res.storePath = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
					}
				}
			}
		case "log":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "level":
						if s, ok := v.(string); ok {
							res.logLevel = s
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
					}
				}
			}
		case "notify":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "command":
						if s, ok := v.(string); ok {
							res.notifyCommand = s
						}
					case "enabled":
						if b, ok := v.(bool); ok {
							enabled := b
							res.notifyEnabled = &enabled
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [notify]: %s", k))
					}
				}
			}
		case "snapshot":
			if m, ok := value.(map[string]any); ok {
				for k, v := range m {
					switch k {
					case "enabled":
						if b, ok := v.(bool); ok {
							enabled := b
							res.snapshotEnabled = &enabled
						}
					default:
						warnings = append(warnings, fmt.Sprintf("unknown key in [snapshot]: %s", k))
					}
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.warnings = warnings
	return res
}
