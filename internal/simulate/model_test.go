package simulate

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/webshell/internal/loop"
	"github.com/jmylchreest/webshell/internal/menu"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestModel_ActivateCloseItem(t *testing.T) {
	m := New("Discord", menu.PlatformLinux)

	// Linux: File/Close Window is the first entry.
	require.Equal(t, menu.RoleCustom, m.entries[0].item.Role)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, loop.StateIdle, m.State())
	assert.Equal(t, 1, m.Effects().Hidden())
	require.Len(t, m.Transitions(), 1)
	assert.Equal(t, loop.ActionHide, m.Transitions()[0].Action)
	assert.Contains(t, m.View(), "window minimized")
}

func TestModel_DarwinHidesApplication(t *testing.T) {
	m := New("Discord", menu.PlatformDarwin)

	// Move to the File submenu's Close Window item.
	for m.entries[m.cursor].item.Role != menu.RoleCustom {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, "File", m.entries[m.cursor].submenu)

	m = press(t, m, runes(" "))
	assert.Equal(t, 1, m.Effects().Hidden())
	assert.Contains(t, m.View(), "application hidden")
}

func TestModel_NativeItemIsIgnored(t *testing.T) {
	m := New("Discord", menu.PlatformLinux)

	// File/Quit is native.
	m = press(t, m, runes("j"))
	require.True(t, m.entries[m.cursor].item.Native())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, loop.StateIdle, m.State())
	assert.Zero(t, m.Effects().Hidden())
	assert.Equal(t, loop.ActionNone, m.Transitions()[0].Action)
}

func TestModel_CloseRequestTerminates(t *testing.T) {
	m := New("Discord", menu.PlatformWindows)

	m = press(t, m, runes("o"), runes("u"), runes("c"))
	assert.Equal(t, loop.StateTerminating, m.State())
	assert.True(t, m.Effects().Exited())

	// Terminating absorbs everything.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("c"))
	assert.Zero(t, m.Effects().Hidden())

	trs := m.Transitions()
	require.Len(t, trs, 5)
	assert.Equal(t, loop.ActionNone, trs[0].Action)
	assert.Equal(t, loop.ActionNone, trs[1].Action)
	assert.Equal(t, loop.ActionExit, trs[2].Action)
	assert.Equal(t, loop.ActionNone, trs[3].Action)
	assert.Equal(t, loop.ActionNone, trs[4].Action)
	assert.Contains(t, m.View(), "state: terminating")
}

func TestModel_CursorBounds(t *testing.T) {
	m := New("Discord", menu.PlatformLinux)

	m = press(t, m, runes("k"))
	assert.Equal(t, 0, m.cursor)

	for range 20 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(m.entries)-1, m.cursor)
}

func TestModel_EntriesSkipSeparators(t *testing.T) {
	m := New("Discord", menu.PlatformDarwin)
	for _, e := range m.entries {
		assert.False(t, e.item.IsSeparator())
	}
}

func TestModel_Quit(t *testing.T) {
	m := New("Discord", menu.PlatformLinux)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	m := New("Discord", menu.PlatformLinux)
	assert.NotContains(t, m.View(), "unknown menu id")

	m = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "unknown menu id")
}

func TestModel_CopyLog(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	m := New("Discord", menu.PlatformLinux)
	m = press(t, m, runes("y"))
	assert.Equal(t, "nothing to copy", m.status)
	assert.Empty(t, copied)

	m = press(t, m, runes("o"), runes("y"))
	assert.Equal(t, "copied 1 events", m.status)
	assert.Equal(t, "other idle -> idle [none]\n", copied)
	assert.Equal(t, m.Log(), copied)
}

func TestModel_EventAge(t *testing.T) {
	start := time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)
	now := start

	m := New("Discord", menu.PlatformLinux)
	m.rec.now = func() time.Time { return now }

	m = press(t, m, runes("o"))
	require.Len(t, m.rec.at, 1)
	assert.Equal(t, start, m.rec.at[0])

	now = start.Add(3 * time.Hour)
	assert.Equal(t, "3 hours ago", m.rec.age(0))
	assert.Contains(t, m.View(), "3 hours ago")
}
