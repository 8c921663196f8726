package cli

import (
	"context"

	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// adviceView shows the recommendations for the latest submission. They
// are regenerated from the stored answers on every load.
type adviceView struct {
	state *SharedState
	pane  scrollPane
}

func newAdviceView(state *SharedState) *adviceView {
	return &adviceView{state: state, pane: newScrollPane(state)}
}

func (v *adviceView) ID() ViewID    { return ViewAdvice }
func (v *adviceView) Title() string { return "Recommendations" }

func (v *adviceView) ShortHelp() []key.Binding {
	return []key.Binding{appKeys.Results, appKeys.History, appKeys.New}
}

func (v *adviceView) Init() tea.Cmd {
	v.render()
	return nil
}

func (v *adviceView) render() {
	if !v.state.HasResult() {
		v.pane.setContent(formatter.FormatSubmitPrompt())
		return
	}
	set := v.state.App.Analysis.Recommend(context.Background(),
		v.state.LastResult.Metrics.Category,
		v.state.LastSubmission.Lifestyle,
	)
	v.pane.setContent("\n" + formatter.FormatRecommendations(set))
}

func (v *adviceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(refreshViewMsg); ok {
		v.render()
		return v, nil
	}
	return v, v.pane.update(v.state, msg)
}

func (v *adviceView) View() string {
	return v.pane.view(v.state)
}
