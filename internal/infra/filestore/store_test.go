package filestore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ReadMissing(t *testing.T) {
	store := New(t.TempDir())

	_, err := store.Read("todos")
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}

func TestStore_WriteThenRead(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, store.Write("todos", []byte(`[{"id":1}]`)))

	got, err := store.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(got))

	// The value sits in a plain JSON file named after the key.
	content, err := os.ReadFile(filepath.Join(dir, "todos.json"))
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, string(content))
}

func TestStore_WriteReplaces(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Write("todos", []byte("first")))
	require.NoError(t, store.Write("todos", []byte("second")))

	got, err := store.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestStore_KeysAreIndependent(t *testing.T) {
	store := New(t.TempDir())

	require.NoError(t, store.Write("a", []byte("A")))
	require.NoError(t, store.Write("b", []byte("B")))

	a, err := store.Read("a")
	require.NoError(t, err)
	b, err := store.Read("b")
	require.NoError(t, err)
	assert.Equal(t, "A", string(a))
	assert.Equal(t, "B", string(b))
}

func TestStore_CreatesDirectoryOnWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := New(dir)

	require.NoError(t, store.Write("todos", []byte("[]")))

	_, err := os.Stat(filepath.Join(dir, "todos.json"))
	assert.NoError(t, err)
}

func TestStore_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	require.NoError(t, store.Write("todos", []byte("[]")))

	_, err := os.Stat(filepath.Join(dir, "todos.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestStore_WriteFailsOnReadOnlyDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	dir := t.TempDir()
	store := New(dir)
	require.NoError(t, store.Write("todos", []byte("[]")))
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o700) })

	err := store.Write("todos", []byte("[1]"))
	assert.Error(t, err)
}
