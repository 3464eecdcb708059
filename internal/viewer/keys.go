package viewer

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit        key.Binding
	Focus       key.Binding
	Left        key.Binding
	Right       key.Binding
	Up          key.Binding
	Down        key.Binding
	SelectLeft  key.Binding
	SelectRight key.Binding
	SelectUp    key.Binding
	SelectDown  key.Binding
	ClearSel    key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	NextMode    key.Binding
	PrevMode    key.Binding
	Endian      key.Binding
	Reset       key.Binding
}

var Keys = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Focus: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "switch pane"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	SelectLeft: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("shift+←→↑↓", "select"),
	),
	SelectRight: key.NewBinding(
		key.WithKeys("shift+right", "L"),
	),
	SelectUp: key.NewBinding(
		key.WithKeys("shift+up", "K"),
	),
	SelectDown: key.NewBinding(
		key.WithKeys("shift+down", "J"),
	),
	ClearSel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup/pgdn", "scroll"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
	),
	NextMode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m/M", "data type"),
	),
	PrevMode: key.NewBinding(
		key.WithKeys("M"),
	),
	Endian: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "endianness"),
	),
	Reset: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "original index"),
	),
}

// ShortHelp lists the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Focus, k.SelectLeft, k.ClearSel, k.PageUp, k.NextMode, k.Endian, k.Reset}
}
