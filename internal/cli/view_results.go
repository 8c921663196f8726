package cli

import (
	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// resultsView shows the metrics card and BMI gauge of the latest submission.
type resultsView struct {
	state *SharedState
	pane  scrollPane
}

func newResultsView(state *SharedState) *resultsView {
	return &resultsView{state: state, pane: newScrollPane(state)}
}

func (v *resultsView) ID() ViewID    { return ViewResults }
func (v *resultsView) Title() string { return "Results" }

func (v *resultsView) ShortHelp() []key.Binding {
	return []key.Binding{appKeys.Advice, appKeys.History, appKeys.New}
}

func (v *resultsView) Init() tea.Cmd {
	v.render()
	return nil
}

func (v *resultsView) render() {
	if !v.state.HasResult() {
		v.pane.setContent(formatter.FormatSubmitPrompt())
		return
	}
	v.pane.setContent("\n" + formatter.FormatResult(
		v.state.LastSubmission.Profile.Name,
		v.state.LastResult.Metrics,
	))
}

func (v *resultsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(refreshViewMsg); ok {
		v.render()
		return v, nil
	}
	return v, v.pane.update(v.state, msg)
}

func (v *resultsView) View() string {
	return v.pane.view(v.state)
}
