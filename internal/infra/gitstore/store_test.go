package gitstore

import (
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanKp27/toDoList/internal/domain"
)

func setupTestRepo(t *testing.T) *git.Repository {
	t.Helper()

	repo, err := git.PlainInit(t.TempDir(), false)
	require.NoError(t, err)
	return repo
}

func TestStore_ReadMissing(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "todo-test")

	_, err := store.Read("todos")
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}

func TestStore_WriteThenRead(t *testing.T) {
	repo := setupTestRepo(t)
	store := NewWithRepo(repo, "todo-test")

	payload := []byte(`[{"id":1,"text":"a","date":"2024-01-01","completed":false}]`)
	require.NoError(t, store.Write("todos", payload))

	got, err := store.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	// The value is addressable as a plain ref.
	ref, err := repo.Reference(plumbing.ReferenceName("refs/todo-test/todos"), true)
	require.NoError(t, err)
	assert.False(t, ref.Hash().IsZero())
}

func TestStore_WriteReplaces(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "todo-test")

	require.NoError(t, store.Write("todos", []byte("first")))
	require.NoError(t, store.Write("todos", []byte("second")))

	got, err := store.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestStore_NamespacesAreIsolated(t *testing.T) {
	repo := setupTestRepo(t)
	a := NewWithRepo(repo, "alice")
	b := NewWithRepo(repo, "bob")

	require.NoError(t, a.Write("todos", []byte("A")))

	_, err := b.Read("todos")
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}

func TestStore_LargeValue(t *testing.T) {
	store := NewWithRepo(setupTestRepo(t), "todo-test")

	payload := make([]byte, 256*1024)
	for i := range payload {
		payload[i] = byte('a' + i%26)
	}
	require.NoError(t, store.Write("todos", payload))

	got, err := store.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestNew_InitializesBareRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "git")

	store, err := New(path, "todo")
	require.NoError(t, err)
	require.NoError(t, store.Write("todos", []byte("[]")))

	// Reopening sees the same data.
	reopened, err := New(path, "todo")
	require.NoError(t, err)
	got, err := reopened.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}
