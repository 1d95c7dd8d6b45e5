package domain

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "todos", cfg.Storage.Key)
	assert.Equal(t, "todo", cfg.Storage.GitNamespace)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.UI.AltScreen)
}

func TestConfig_ValidateBackend(t *testing.T) {
	for _, backend := range []string{BackendFile, BackendGit, BackendMemory} {
		cfg := NewDefaultConfig()
		cfg.Storage.Backend = backend
		assert.NoError(t, cfg.ValidateBackend(), backend)
	}

	cfg := NewDefaultConfig()
	cfg.Storage.Backend = "sqlite"
	assert.ErrorIs(t, cfg.ValidateBackend(), ErrUnknownBackend)
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	content := RenderConfigTemplate(NewDefaultConfig(), "/data/todo")

	assert.Contains(t, content, `backend = "file"`)
	assert.Contains(t, content, `# dir = "/data/todo"`)

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, "file", parsed.Storage.Backend)
	assert.Equal(t, "todos", parsed.Storage.Key)
	assert.Equal(t, "info", parsed.Log.Level)
	assert.True(t, parsed.UI.AltScreen)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/home/u/.config/todo", GlobalConfigDir("/home/u/.config"))
	assert.Equal(t, "/d/todo", DataDir("/d"))
	assert.Equal(t, "/d/todos.json", SlotFilePath("/d", "todos"))
	assert.Equal(t, "/d/__etc_passwd.json", SlotFilePath("/d", "../etc/passwd"))
	assert.Equal(t, "/d/logs/todo.log", LogPath("/d"))
	assert.Equal(t, "/d/git", GitStorePath("/d"))
}
