package domain

import "time"

// Slot is a durable string-keyed storage slot.
// It holds opaque bytes; serialization is the caller's concern.
type Slot interface {
	// Read returns the value stored under key.
	// Returns ErrSlotEmpty if nothing has been written yet.
	Read(key string) ([]byte, error)

	// Write replaces the value stored under key.
	Write(key string, data []byte) error
}

// Logger records diagnostics away from the user-facing surface.
type Logger interface {
	Debug(category, msg string, keyvals ...any)
	Info(category, msg string, keyvals ...any)
	Warn(category, msg string, keyvals ...any)
	Error(category, msg string, keyvals ...any)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, string, ...any) {}
func (NopLogger) Info(string, string, ...any)  {}
func (NopLogger) Warn(string, string, ...any)  {}
func (NopLogger) Error(string, string, ...any) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults + global + override).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GlobalConfigInfo returns information about the global config file.
	GlobalConfigInfo() ConfigInfo

	// OverrideConfigInfo returns information about the --config file, if any.
	OverrideConfigInfo() ConfigInfo

	// InitGlobalConfig writes the default template to the global config path.
	InitGlobalConfig(cfg *Config) (string, error)
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
