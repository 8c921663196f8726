package cli

import "github.com/charmbracelet/bubbles/key"

// appKeyMap lists the shortcuts appModel handles itself. Views reuse the
// bindings for their status bar hints so the help text stays in one place.
type appKeyMap struct {
	ForceQuit  key.Binding
	Quit       key.Binding
	New        key.Binding
	Results    key.Binding
	Advice     key.Binding
	History    key.Binding
	About      key.Binding
	ExportCSV  key.Binding
	ExportXLSX key.Binding
	Back       key.Binding
	Scroll     key.Binding
}

var appKeys = appKeyMap{
	ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	New:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new analysis")),
	Results:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "results")),
	Advice:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "advice")),
	History:    key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
	About:      key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "about")),
	ExportCSV:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
	ExportXLSX: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export xlsx")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	// Display only; scrolling is done by scrollPane.
	Scroll: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
}

// hint renders a binding as "key: description".
func hint(b key.Binding) string {
	return b.Help().Key + ": " + b.Help().Desc
}
