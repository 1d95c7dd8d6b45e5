package memstore

import (
	"testing"

	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := New()

	_, err := s.Read("todos")
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)

	buf := []byte("[]")
	require.NoError(t, s.Write("todos", buf))
	buf[0] = 'X' // caller mutation must not leak into the slot

	got, err := s.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}
