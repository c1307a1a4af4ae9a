package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Insert   key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll back")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll forward")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page back")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page forward")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Next:     key.NewBinding(key.WithKeys("n", "tab"), key.WithHelp("n", "next item")),
		Prev:     key.NewBinding(key.WithKeys("p", "shift+tab"), key.WithHelp("p", "prev item")),
		Grow:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "grow item")),
		Shrink:   key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "shrink item")),
		Insert:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert after")),
		Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove item")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Next, k.Grow, k.Shrink, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp, k.Top, k.Bottom},
		{k.Next, k.Prev, k.Grow, k.Shrink},
		{k.Insert, k.Delete, k.Help, k.Quit},
	}
}
