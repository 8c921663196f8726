package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// homeLoadedMsg signals that the home view's history count has been loaded.
type homeLoadedMsg struct {
	entries int
	err     error
}

// homeView is the landing screen: a short introduction, the latest result
// and the size of the session history.
type homeView struct {
	state   *SharedState
	entries int
	loading bool
	err     error
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state, loading: true}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "Home" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{appKeys.New, appKeys.Results, appKeys.Advice, appKeys.History, appKeys.About, appKeys.Quit}
}

func (v *homeView) Init() tea.Cmd {
	return v.loadData()
}

func (v *homeView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		n, err := app.History.Count(context.Background())
		return homeLoadedMsg{entries: n, err: err}
	}
}

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		v.loading = false
		v.err = msg.err
		v.entries = msg.entries
	case refreshViewMsg:
		return v, v.loadData()
	}
	return v, nil
}

func (v *homeView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + formatter.StyleHeader.Render("BMI & BMR Analyser") + "\n")
	b.WriteString("  " + formatter.Dim("Body mass index, basal metabolic rate and lifestyle advice.") + "\n\n")

	if v.state.HasResult() {
		res := v.state.LastResult
		b.WriteString(fmt.Sprintf("  %s %s  %s %s  %s\n",
			formatter.Dim("Latest:"),
			formatter.Bold(v.state.LastSubmission.Profile.Name),
			formatter.Dim("BMI"),
			formatter.CategoryStyle(res.Metrics.Category).Bold(true).Render(formatter.FormatBMI(res.Metrics.BMI)),
			formatter.CategoryBadge(res.Metrics.Category),
		))
		b.WriteString(fmt.Sprintf("  %s %s\n\n", formatter.Dim("BMR"), formatter.FormatKcal(res.Metrics.BMR)))
	} else {
		b.WriteString("  " + formatter.StyleBlue.Render("Press 'n' to fill in the input form.") + "\n\n")
	}

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("Loading...") + "\n")
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n")
	case v.entries == 1:
		b.WriteString("  " + formatter.Dim("1 analysis in this session.") + "\n")
	default:
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d analyses in this session.", v.entries)) + "\n")
	}
	return b.String()
}
