package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Taken   key.Binding
	Missed  key.Binding
	Capture key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous slot"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next slot"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "options"),
		),
		Taken: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "mark taken"),
		),
		Missed: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mark missed"),
		),
		Capture: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "capture prescription"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
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

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Taken, k.Missed, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Toggle},
		{k.Taken, k.Missed, k.Capture},
		{k.Reload, k.Help, k.Quit},
	}
}
