// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// LineKeyMap defines the keybindings of the single-row prompt.
type LineKeyMap struct {
	// Cursor movement
	Left      key.Binding
	Right     key.Binding
	WordLeft  key.Binding
	WordRight key.Binding
	Home      key.Binding
	End       key.Binding

	// Editing
	Backspace   key.Binding
	Delete      key.Binding
	KillToEnd   key.Binding
	KillToStart key.Binding

	// Search
	FindNext key.Binding
	FindPrev key.Binding

	// General
	Submit key.Binding
	Quit   key.Binding
}

// Line holds the active prompt bindings.
var Line = DefaultLineKeyMap()

// DefaultLineKeyMap returns the default prompt keybindings.
func DefaultLineKeyMap() LineKeyMap {
	return LineKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		// Option+arrow on macOS arrives as alt+b / alt+f
		WordLeft: key.NewBinding(
			key.WithKeys("alt+left", "alt+b", "ctrl+b"),
			key.WithHelp("alt+←", "word left"),
		),
		WordRight: key.NewBinding(
			key.WithKeys("alt+right", "alt+f", "ctrl+f"),
			key.WithHelp("alt+→", "word right"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
			key.WithHelp("ctrl+a", "start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
			key.WithHelp("ctrl+e", "end"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("bksp", "delete left"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
			key.WithHelp("del", "delete"),
		),
		KillToEnd: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "kill to end"),
		),
		KillToStart: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "kill to start"),
		),
		FindNext: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "find next"),
		),
		FindPrev: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "find prev"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the prompt's help line.
func (k LineKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FindNext, k.FindPrev, k.KillToEnd, k.Submit, k.Quit}
}

// FullHelp returns every binding grouped by purpose.
func (k LineKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.WordLeft, k.WordRight, k.Home, k.End},
		{k.Backspace, k.Delete, k.KillToEnd, k.KillToStart},
		{k.FindNext, k.FindPrev},
		{k.Submit, k.Quit},
	}
}
