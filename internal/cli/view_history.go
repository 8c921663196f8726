package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// historyLoadedMsg signals that the session history has been loaded.
type historyLoadedMsg struct {
	entries []*domain.HistoryEntry
	err     error
}

// historyView shows the session history table and the BMI trend chart.
type historyView struct {
	state   *SharedState
	pane    scrollPane
	entries []*domain.HistoryEntry
	loading bool
	err     error
}

func newHistoryView(state *SharedState) *historyView {
	return &historyView{state: state, pane: newScrollPane(state), loading: true}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{appKeys.ExportCSV, appKeys.ExportXLSX, appKeys.Scroll}
}

func (v *historyView) Init() tea.Cmd {
	return v.loadData()
}

func (v *historyView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		entries, err := app.History.List(context.Background())
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.entries = msg.entries
		v.render()
		return v, nil
	case refreshViewMsg:
		return v, v.loadData()
	}
	return v, v.pane.update(v.state, msg)
}

func (v *historyView) render() {
	if v.err != nil {
		v.pane.setContent("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()))
		return
	}
	v.pane.setContent("\n" + formatter.FormatHistory(v.entries, time.Now()))
}

func (v *historyView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading history...")
	}
	return v.pane.view(v.state)
}
