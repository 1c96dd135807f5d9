package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit key.Binding
	Back key.Binding

	// History
	Up   key.Binding
	Down key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Up:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous command")),
	Down: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next command")),
}
