package simulate

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the simulator.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Events
	Activate  key.Binding
	Close     key.Binding
	Other     key.Binding
	UnknownID key.Binding

	// Global
	Copy key.Binding
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Close, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Activate},
		{k.Close, k.Other, k.UnknownID},
		{k.Copy, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate item"),
		),
		Close: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close request"),
		),
		Other: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "other event"),
		),
		UnknownID: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unknown menu id"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy event log"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}
