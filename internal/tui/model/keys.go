package model

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines every binding of the shell. The lateral keys mirror
// the swipe gesture exactly.
type KeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Back      key.Binding
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	Play      key.Binding
	Settings  key.Binding
	Theme     key.Binding
	Export    key.Binding
	Reset     key.Binding
	DemoModal key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the shipped bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "previous tab"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "next tab"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "esc"),
			key.WithHelp("esc", "back / close"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle / select"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "move up / place left"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "move down / place right"),
		),
		Play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Export: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy config"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset defaults"),
		),
		DemoModal: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "demo modal"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Back, k.Settings, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Back, k.Play, k.Settings},
		{k.Up, k.Down, k.Toggle, k.MoveUp, k.MoveDown},
		{k.Theme, k.Export, k.Reset, k.DemoModal},
		{k.Help, k.Quit},
	}
}
