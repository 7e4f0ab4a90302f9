package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up            key.Binding
	down          key.Binding
	enter         key.Binding
	esc           key.Binding
	tab           key.Binding
	save          key.Binding
	quit          key.Binding
	forceQuit     key.Binding
	baseURL       key.Binding
	search        key.Binding
	sortField     key.Binding
	sortDirection key.Binding
	reload        key.Binding
	newPost       key.Binding
	edit          key.Binding
	delete        key.Binding
	copy          key.Binding
	buildInfo     key.Binding
}

var keys = keyMap{
	up:            key.NewBinding(key.WithKeys("up", "k")),
	down:          key.NewBinding(key.WithKeys("down", "j")),
	enter:         key.NewBinding(key.WithKeys("enter")),
	esc:           key.NewBinding(key.WithKeys("esc")),
	tab:           key.NewBinding(key.WithKeys("tab", "shift+tab")),
	save:          key.NewBinding(key.WithKeys("ctrl+s")),
	quit:          key.NewBinding(key.WithKeys("q")),
	forceQuit:     key.NewBinding(key.WithKeys("ctrl+c")),
	baseURL:       key.NewBinding(key.WithKeys("b")),
	search:        key.NewBinding(key.WithKeys("/")),
	sortField:     key.NewBinding(key.WithKeys("o")),
	sortDirection: key.NewBinding(key.WithKeys("O")),
	reload:        key.NewBinding(key.WithKeys("r")),
	newPost:       key.NewBinding(key.WithKeys("n")),
	edit:          key.NewBinding(key.WithKeys("e")),
	delete:        key.NewBinding(key.WithKeys("d")),
	copy:          key.NewBinding(key.WithKeys("c")),
	buildInfo:     key.NewBinding(key.WithKeys("v")),
}
