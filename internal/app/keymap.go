package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines global and pane-specific bindings.
type KeyMap struct {
	Quit        key.Binding
	ToggleFocus key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Top         key.Binding
	Bottom      key.Binding
	SyncScroll  key.Binding
	Filter      key.Binding
	Copy        key.Binding
	Help        key.Binding
}

func defaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ToggleFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "scroll up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/down", "scroll down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("ctrl+u", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("ctrl+d", "page down")),
		Top:         key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),
		SyncScroll:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sync old/new scrolling")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter sections")),
		Copy:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy sections as HTML")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k KeyMap) all() []key.Binding {
	return []key.Binding{
		k.ToggleFocus, k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom,
		k.SyncScroll, k.Filter, k.Copy, k.Help, k.Quit,
	}
}
