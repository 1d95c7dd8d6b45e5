package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/amanKp27/toDoList/internal/app"
	"github.com/amanKp27/toDoList/internal/testutil"
)

var testNow = time.Date(2024, 1, 3, 9, 30, 0, 0, time.Local)

type testEnv struct {
	container *app.Container
	slot      *testutil.MockSlot
	clock     *testutil.MockClock
	model     *Model
}

// newTestEnv builds a model over an in-memory slot, sized and loaded.
func newTestEnv(t *testing.T, seed ...string) *testEnv {
	t.Helper()

	slot := testutil.NewMockSlot()
	clock := &testutil.MockClock{NowTime: testNow}
	c := app.NewWithDeps(nil, slot, clock, nil, nil)
	for _, text := range seed {
		_, ok := c.Store.Add(text, c.Store.Today())
		require.True(t, ok)
		clock.Advance(time.Second)
	}

	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	drain(t, m, m.Init())

	return &testEnv{container: c, slot: slot, clock: clock, model: m}
}

// drain runs cmd and feeds the resulting messages back into m.
// Only commands producing TUI messages may be drained.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(Msg); !ok {
			t.Fatalf("unexpected message %T", msg)
		}
		_, cmd = m.Update(msg)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(keyRunes(string(r)))
	}
}
