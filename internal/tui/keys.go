package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab       key.Binding
	PrevTab       key.Binding
	Dashboard     key.Binding
	Insights      key.Binding
	Support       key.Binding
	Compare       key.Binding
	NextField     key.Binding
	PrevField     key.Binding
	Submit        key.Binding
	Increment     key.Binding
	Decrement     key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
	ToggleSources key.Binding
	Refresh       key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab:       key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "next tab")),
		PrevTab:       key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "prev tab")),
		Dashboard:     key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "dashboard")),
		Insights:      key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "insights")),
		Support:       key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "support & roi")),
		Compare:       key.NewBinding(key.WithKeys("f4"), key.WithHelp("f4", "compare")),
		NextField:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Submit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run / pick")),
		Increment:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "year + / prev sample")),
		Decrement:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "year - / next sample")),
		ScrollUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		ScrollDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		ToggleSources: key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "toggle sources")),
		Refresh:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "check backend")),
		Help:          key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "quick start")),
		Quit:          key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.NextField, k.Submit, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Dashboard, k.Insights, k.Support, k.Compare},
		{k.NextField, k.PrevField, k.Submit, k.Increment, k.Decrement},
		{k.ScrollUp, k.ScrollDown, k.ToggleSources, k.Refresh, k.Help, k.Quit},
	}
}
