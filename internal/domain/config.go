package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Storage backends.
const (
	BackendFile   = "file"
	BackendGit    = "git"
	BackendMemory = "memory"
)

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Storage  StorageConfig `toml:"storage"`
	Log      LogConfig     `toml:"log"`
	UI       UIConfig      `toml:"ui"`
}

// StorageConfig holds settings from the [storage] section.
type StorageConfig struct {
	Backend      string `toml:"backend,omitempty"`       // "file" (default), "git" or "memory"
	Dir          string `toml:"dir,omitempty"`           // Data directory (default: XDG data home)
	Key          string `toml:"key,omitempty"`           // Slot key (default: "todos")
	GitRepo      string `toml:"git_repo,omitempty"`      // Repository of the git backend (default: <dir>/git)
	GitNamespace string `toml:"git_namespace,omitempty"` // Ref namespace of the git backend (default: "todo")

	// Hex AES-256 key; when set the stored list is encrypted. Never printed.
	EncryptionKey string `toml:"-"`
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn, error
}

// UIConfig holds settings from the [ui] section.
type UIConfig struct {
	AltScreen bool `toml:"alt_screen"`
}

// NewDefaultConfig returns the configuration used when no file sets a value.
func NewDefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:      BackendFile,
			Key:          DefaultSlotKey,
			GitNamespace: AppName,
		},
		Log: LogConfig{Level: "info"},
		UI:  UIConfig{AltScreen: true},
	}
}

// ValidateBackend returns ErrUnknownBackend unless the backend is supported.
func (c *Config) ValidateBackend() error {
	switch c.Storage.Backend {
	case BackendFile, BackendGit, BackendMemory:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
}

type templateData struct {
	*Config
	DataDir string
}

// RenderConfigTemplate renders the commented config file for cfg.
func RenderConfigTemplate(cfg *Config, dataDir string) string {
	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Config: cfg, DataDir: dataDir}); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
