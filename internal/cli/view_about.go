package cli

import (
	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// aboutView explains BMI, BMR and the category bands.
type aboutView struct {
	state *SharedState
	pane  scrollPane
}

func newAboutView(state *SharedState) *aboutView {
	return &aboutView{state: state, pane: newScrollPane(state)}
}

func (v *aboutView) ID() ViewID    { return ViewAbout }
func (v *aboutView) Title() string { return "About BMI" }

func (v *aboutView) ShortHelp() []key.Binding {
	return []key.Binding{appKeys.Scroll}
}

func (v *aboutView) Init() tea.Cmd {
	v.pane.setContent("\n" + formatter.FormatExplanations(v.state.Width))
	return nil
}

func (v *aboutView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		v.pane.content = "\n" + formatter.FormatExplanations(v.state.Width)
	}
	return v, v.pane.update(v.state, msg)
}

func (v *aboutView) View() string {
	return v.pane.view(v.state)
}
