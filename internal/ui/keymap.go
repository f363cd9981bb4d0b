package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the app-level navigation bindings. Page views and the
// contact modal handle their own keys on top of these.
type keyMap struct {
	NextPage key.Binding
	PrevPage key.Binding
	Home     key.Binding
	About    key.Binding
	Resume   key.Binding
	Contact  key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextPage: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev page"),
		),
		Home: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "home"),
		),
		About: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "about"),
		),
		Resume: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "resume"),
		),
		Contact: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "contact"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevPage, k.NextPage, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.About, k.Resume, k.Contact},
		{k.PrevPage, k.NextPage, k.Quit},
	}
}
