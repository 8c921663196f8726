package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// cmdOutputMsg carries text output from an action to be displayed
// transiently in the content area.
type cmdOutputMsg struct {
	output string
}

// formClosedMsg removes the input form from the stack and then runs then.
// It is sent on cancel as well as on completion.
type formClosedMsg struct {
	then tea.Cmd
}

// analysisDoneMsg carries an accepted submission back to the appModel,
// which records it in the shared state and opens the results view.
type analysisDoneMsg struct {
	submission domain.Submission
	result     *service.AnalysisResult
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// quitMsg signals the app to quit.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// outputCmd returns a tea.Cmd that sends a cmdOutputMsg.
func outputCmd(s string) tea.Cmd {
	if s == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s} }
}

func closeForm(then tea.Cmd) tea.Cmd {
	return func() tea.Msg { return formClosedMsg{then: then} }
}

func refreshViews() tea.Msg { return refreshViewMsg{} }

// errorOutput formats err for the content area. Validation errors list
// every rejected field.
func errorOutput(err error) string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return "\n  " + formatter.StyleRed.Render("Error: ") + err.Error() + "\n"
	}

	headline := "Invalid submission"
	if errors.Is(err, domain.ErrIncompleteSubmission) {
		headline = "Please complete all fields"
	}
	var b strings.Builder
	b.WriteString("\n  " + formatter.StyleRed.Render("Error: ") + headline + "\n")
	for _, f := range verr.Fields {
		b.WriteString("  " + formatter.Dim("• ") + formatter.Bold(f.Field) + " " + f.Message + "\n")
	}
	return b.String()
}
