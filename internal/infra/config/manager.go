package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/amanKp27/toDoList/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
	overridePath  string // File passed with --config, if any
	dataDir       string // Default data dir shown in the rendered template
}

// NewManager creates a new Manager.
func NewManager(overridePath, dataDir string) *Manager {
	return &Manager{
		globalConfDir: DefaultGlobalConfigDir(),
		overridePath:  overridePath,
		dataDir:       dataDir,
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(globalConfDir, overridePath, dataDir string) *Manager {
	return &Manager{
		globalConfDir: globalConfDir,
		overridePath:  overridePath,
		dataDir:       dataDir,
	}
}

// GlobalConfigInfo returns information about the global config file.
func (m *Manager) GlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// OverrideConfigInfo returns information about the --config file.
func (m *Manager) OverrideConfigInfo() domain.ConfigInfo {
	if m.overridePath == "" {
		return domain.ConfigInfo{}
	}
	return getConfigInfo(m.overridePath)
}

// getConfigInfo reads a config file and returns its info.
func getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig creates the global config file from the default template.
// Returns the path written.
func (m *Manager) InitGlobalConfig(cfg *domain.Config) (string, error) {
	if m.globalConfDir == "" {
		return "", errors.New("global config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return path, domain.ErrConfigExists
	}

	content := domain.RenderConfigTemplate(cfg, m.dataDir)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", err
	}
	return path, nil
}
