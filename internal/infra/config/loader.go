// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/amanKp27/toDoList/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
	dataHome      string // XDG data home used to derive the default data dir
	overridePath  string // File passed with --config, merged over the global file
}

// NewLoader creates a new Loader.
// overridePath may be empty.
func NewLoader(overridePath string) *Loader {
	return &Loader{
		globalConfDir: DefaultGlobalConfigDir(),
		dataHome:      defaultDataHome(),
		overridePath:  overridePath,
	}
}

// NewLoaderWithDirs creates a new Loader with custom global config and data homes.
// This is useful for testing.
func NewLoaderWithDirs(globalConfDir, dataHome, overridePath string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
		dataHome:      dataHome,
		overridePath:  overridePath,
	}
}

// DefaultGlobalConfigDir returns the default global config directory.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return dataHome
}

// DataDir returns the data directory used when [storage] dir is unset.
func (l *Loader) DataDir() string {
	if l.dataHome == "" {
		return ""
	}
	return domain.DataDir(l.dataHome)
}

// Load returns the merged configuration.
// Merge order: defaults <- global file <- override file.
// A missing global file is fine; a missing override file is an error.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	global, err := l.loadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if global != nil {
		cfg = mergeConfigs(cfg, global)
	}

	if l.overridePath != "" {
		override, err := loadFile(l.overridePath)
		if err != nil {
			return nil, err
		}
		cfg = mergeConfigs(cfg, override)
	}

	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = l.DataDir()
	}
	if cfg.Storage.GitRepo == "" && cfg.Storage.Dir != "" {
		cfg.Storage.GitRepo = domain.GitStorePath(cfg.Storage.Dir)
	}

	if err := cfg.ValidateBackend(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadGlobal returns only the global configuration layer.
func (l *Loader) loadGlobal() (*fileConfig, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// fileConfig is one parsed config file. Nil fields were not set in the file.
type fileConfig struct {
	backend      *string
	dir          *string
	key          *string
	gitRepo      *string
	gitNamespace *string
	encryptKey   *string
	logLevel     *string
	altScreen    *bool
	warnings     []string
}

// loadFile loads a configuration layer from a file.
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRaw(raw), nil
}

// convertRaw converts the raw map to a config layer and collects warnings.
func convertRaw(raw map[string]any) *fileConfig {
	res := &fileConfig{}
	var warnings []string

	str := func(section, key string, v any) *string {
		s, ok := v.(string)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("invalid value in [%s]: %s must be a string", section, key))
			return nil
		}
		return &s
	}

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}
		switch section {
		case "storage":
			for k, v := range m {
				switch k {
				case "backend":
					res.backend = str(section, k, v)
				case "dir":
					res.dir = str(section, k, v)
				case "key":
					res.key = str(section, k, v)
				case "git_repo":
					res.gitRepo = str(section, k, v)
				case "git_namespace":
					res.gitNamespace = str(section, k, v)
				case "encryption_key":
					res.encryptKey = str(section, k, v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [storage]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.logLevel = str(section, k, v)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "ui":
			for k, v := range m {
				switch k {
				case "alt_screen":
					if b, ok := v.(bool); ok {
						res.altScreen = &b
					} else {
						warnings = append(warnings, "invalid value in [ui]: alt_screen must be a boolean")
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [ui]: %s", k))
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

// mergeConfigs applies override on top of base and returns the result.
// Empty strings in override do not clear a base value.
func mergeConfigs(base *domain.Config, override *fileConfig) *domain.Config {
	result := &domain.Config{
		Storage:  base.Storage,
		Log:      base.Log,
		UI:       base.UI,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.warnings...)

	setString := func(dst *string, src *string) {
		if src != nil && *src != "" {
			*dst = *src
		}
	}
	setString(&result.Storage.Backend, override.backend)
	setString(&result.Storage.Dir, override.dir)
	setString(&result.Storage.Key, override.key)
	setString(&result.Storage.GitRepo, override.gitRepo)
	setString(&result.Storage.GitNamespace, override.gitNamespace)
	setString(&result.Storage.EncryptionKey, override.encryptKey)
	setString(&result.Log.Level, override.logLevel)
	if override.altScreen != nil {
		result.UI.AltScreen = *override.altScreen
	}

	return result
}
