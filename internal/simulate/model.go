// Package simulate provides a terminal simulator for the shell's event loop.
// It builds the menu for any platform and feeds menu activations, close
// requests and other events through the real state machine, showing the
// resulting transitions without opening a window.
package simulate

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/webshell/internal/loop"
	"github.com/jmylchreest/webshell/internal/menu"
)

// historyLimit is the number of transitions shown.
const historyLimit = 10

// entry is one selectable menu item.
type entry struct {
	submenu string
	item    menu.Item
}

// recorder collects transitions from the loop observer.
type recorder struct {
	transitions []loop.Transition
	notes       []string
	at          []time.Time
	now         func() time.Time
}

// age returns how long ago transition i happened, e.g. "2 minutes ago".
func (r *recorder) age(i int) string {
	return humanize.RelTime(r.at[i], r.now(), "ago", "from now")
}

// Model is the simulator's bubbletea model.
type Model struct {
	platform menu.Platform
	entries  []entry
	cursor   int
	unknown  menu.ID

	loop    *loop.Loop
	effects *Effects
	rec     *recorder

	keys     KeyMap
	help     help.Model
	showHelp bool
	status   string
	width    int
}

// New creates a simulator for platform p.
func New(appName string, p menu.Platform) Model {
	bar, ids := menu.Build(appName, p)
	effects := NewEffects(menu.CapabilitiesFor(p))
	rec := &recorder{now: time.Now}

	l := loop.New(loop.NewMachine(ids), effects, loop.WithObserver(func(tr loop.Transition) {
		rec.transitions = append(rec.transitions, tr)
		note := ""
		if tr.Action != loop.ActionNone {
			note = effects.lastMsg
		}
		rec.notes = append(rec.notes, note)
		rec.at = append(rec.at, rec.now())
	}))

	var entries []entry
	var maxID menu.ID
	for _, sub := range bar.Submenus {
		for _, item := range sub.Items {
			if item.IsSeparator() {
				continue
			}
			entries = append(entries, entry{submenu: sub.Title, item: item})
			maxID = max(maxID, item.ID)
		}
	}

	return Model{
		platform: p,
		entries:  entries,
		unknown:  maxID + 1000,
		loop:     l,
		effects:  effects,
		rec:      rec,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Copy):
		m.status = m.copyLog()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Activate):
		m.activate()
	case key.Matches(msg, m.keys.Close):
		m.loop.Dispatch(loop.CloseRequested())
	case key.Matches(msg, m.keys.Other):
		m.loop.Dispatch(loop.Other())
	case key.Matches(msg, m.keys.UnknownID):
		m.loop.Dispatch(loop.MenuActivated(m.unknown))
	}
	return m, nil
}

// activate dispatches the selected item. Native items never reach the
// loop as menu events; the platform layer handles them itself.
func (m Model) activate() {
	if len(m.entries) == 0 {
		return
	}
	item := m.entries[m.cursor].item
	if item.Native() {
		m.loop.Dispatch(loop.Other())
		return
	}
	m.loop.Dispatch(loop.MenuActivated(item.ID))
}

// State returns the loop state.
func (m Model) State() loop.State {
	return m.loop.State()
}

// Transitions returns every dispatched transition in order.
func (m Model) Transitions() []loop.Transition {
	return m.rec.transitions
}

// Effects returns the simulated effects.
func (m Model) Effects() *Effects {
	return m.effects
}

// View implements tea.Model.
func (m Model) View() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12"))
	dimStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8"))
	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))
	stateStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))
	if m.loop.State() == loop.StateTerminating {
		stateStyle = stateStyle.Foreground(lipgloss.Color("9"))
	}

	var sb strings.Builder

	sb.WriteString(headerStyle.Render(fmt.Sprintf("webshell simulator (%s)", m.platform)))
	sb.WriteString("  ")
	sb.WriteString(stateStyle.Render("state: " + m.loop.State().String()))
	sb.WriteString("\n\n")

	for i, e := range m.entries {
		cursor := "  "
		label := fmt.Sprintf("%-8s %s", e.submenu, e.item.Label)
		if e.item.Accelerator != nil {
			label += "  " + e.item.Accelerator.Display(m.platform)
		}
		if !e.item.Native() {
			label += dimStyle.Render(fmt.Sprintf("  #%d", e.item.ID))
		}
		if i == m.cursor {
			cursor = "> "
			label = selectedStyle.Render(label)
		}
		sb.WriteString(cursor + label + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(headerStyle.Render("events"))
	sb.WriteString("\n")

	transitions := m.rec.transitions
	start := max(0, len(transitions)-historyLimit)
	if len(transitions) == 0 {
		sb.WriteString(dimStyle.Render("  none yet") + "\n")
	}
	for i := start; i < len(transitions); i++ {
		tr := transitions[i]
		line := fmt.Sprintf("  %-20s %s -> %s  [%s]", tr.Event.String(), tr.From, tr.To, tr.Action)
		if note := m.rec.notes[i]; note != "" {
			line += dimStyle.Render("  " + note)
		}
		line += dimStyle.Render("  " + m.rec.age(i))
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(dimStyle.Render(m.status) + "\n")
	}
	if m.showHelp {
		sb.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	sb.WriteString("\n")

	return sb.String()
}

// Run starts the simulator in the terminal.
func Run(appName string, p menu.Platform) error {
	_, err := tea.NewProgram(New(appName, p)).Run()
	return err
}
