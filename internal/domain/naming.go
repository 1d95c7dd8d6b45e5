package domain

import (
	"path/filepath"
	"strings"
)

// AppName is the directory name used under XDG config and data homes.
const AppName = "todo"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// DefaultSlotKey is the storage key the task list lives under.
const DefaultSlotKey = "todos"

// GlobalConfigDir returns the config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// DataDir returns the data directory under dataHome.
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppName)
}

// SlotFilePath returns the file backing key in a file slot rooted at dir.
// Path separators in key are flattened so a key can never escape dir.
func SlotFilePath(dir, key string) string {
	safe := strings.NewReplacer("/", "_", "\\", "_", "..", "_").Replace(key)
	return filepath.Join(dir, safe+".json")
}

// LogPath returns the path of the log file inside dataDir.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "todo.log")
}

// GitStorePath returns the default repository path of the git slot.
func GitStorePath(dataDir string) string {
	return filepath.Join(dataDir, "git")
}
