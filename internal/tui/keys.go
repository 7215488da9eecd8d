package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the wam TUI.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	SwitchTab key.Binding

	// Search.
	SearchActivate key.Binding
	SearchClear    key.Binding
	SearchAccept   key.Binding

	// Board.
	ToggleView     key.Binding
	Complete       key.Binding
	Unallocate     key.Binding
	UnallocateCase key.Binding

	// Roster.
	Expand          key.Binding
	Allocate        key.Binding
	AllocateCase    key.Binding
	AllocateRelated key.Binding

	NewDoable key.Binding
	Refresh   key.Binding
	Quit      key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	SwitchTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "users/board"),
	),
	SearchActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear search"),
	),
	SearchAccept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "done"),
	),
	ToggleView: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "single/case view"),
	),
	Complete: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "complete"),
	),
	Unallocate: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "unallocate"),
	),
	UnallocateCase: key.NewBinding(
		key.WithKeys("U"),
		key.WithHelp("U", "unallocate case"),
	),
	Expand: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter", "expand"),
	),
	Allocate: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "allocate doable"),
	),
	AllocateCase: key.NewBinding(
		key.WithKeys("A"),
		key.WithHelp("A", "allocate case"),
	),
	AllocateRelated: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "related doables"),
	),
	NewDoable: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new doable"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// helpLine renders "key desc · key desc" for the given bindings.
func helpLine(bindings ...key.Binding) string {
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += " · "
		}
		h := b.Help()
		line += h.Key + " " + h.Desc
	}
	return line
}
