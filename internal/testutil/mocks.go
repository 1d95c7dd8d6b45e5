// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/amanKp27/toDoList/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockSlot is a test double for domain.Slot.
// Fields are ordered to minimize memory padding.
type MockSlot struct {
	ReadErr  error
	WriteErr error
	Data     map[string][]byte
	Writes   int // Number of Write calls, successful or not
	mu       sync.Mutex
}

// NewMockSlot creates a new MockSlot with an initialized map.
func NewMockSlot() *MockSlot {
	return &MockSlot{
		Data: make(map[string][]byte),
	}
}

// Read returns the stored value or ReadErr.
func (m *MockSlot) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.Data[key]
	if !ok {
		return nil, domain.ErrSlotEmpty
	}
	return append([]byte(nil), data...), nil
}

// Write stores the value unless WriteErr is set.
func (m *MockSlot) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Writes++
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Data[key] = append([]byte(nil), data...)
	return nil
}

// Get returns the stored value as a string, or "" if absent.
func (m *MockSlot) Get(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.Data[key])
}

// LogEntry is a single recorded log call.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	KeyVals  []any
}

// String renders the entry for assertion messages.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s %v", e.Level, e.Category, e.Msg, e.KeyVals)
}

// MockLogger is a test double for domain.Logger that records every call.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level, category, msg string, keyvals []any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg, KeyVals: keyvals})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string, keyvals ...any) {
	m.record("debug", category, msg, keyvals)
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string, keyvals ...any) {
	m.record("info", category, msg, keyvals)
}

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string, keyvals ...any) {
	m.record("warn", category, msg, keyvals)
}

// Error records an error entry.
func (m *MockLogger) Error(category, msg string, keyvals ...any) {
	m.record("error", category, msg, keyvals)
}

// ByLevel returns the recorded entries with the given level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr        error
	InitCfg        *domain.Config // Config passed to the last InitGlobalConfig call
	GlobalInfo     domain.ConfigInfo
	OverrideInfo   domain.ConfigInfo
	InitPath       string
	InitGlobalCall bool
}

// GlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// OverrideConfigInfo returns the configured override info.
func (m *MockConfigManager) OverrideConfigInfo() domain.ConfigInfo {
	return m.OverrideInfo
}

// InitGlobalConfig records the call and returns InitPath or InitErr.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) (string, error) {
	m.InitGlobalCall = true
	m.InitCfg = cfg
	if m.InitErr != nil {
		return "", m.InitErr
	}
	return m.InitPath, nil
}

// Ensure interfaces are implemented.
var (
	_ domain.Clock         = (*MockClock)(nil)
	_ domain.Slot          = (*MockSlot)(nil)
	_ domain.Logger        = (*MockLogger)(nil)
	_ domain.ConfigManager = (*MockConfigManager)(nil)
)
