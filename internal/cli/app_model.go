package cli

import (
	"strings"

	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI. It owns the view stack,
// the global shortcuts and the notice pane that shows action output.
type appModel struct {
	state    *SharedState
	stack    []View
	quitting bool

	// notice replaces the active view until a key other than a scroll key
	// is pressed. Empty when nothing is shown.
	notice     scrollPane
	noticeText string
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state:  state,
		stack:  []View{newHomeView(state)},
		notice: newScrollPane(state),
	}
}

// ── view stack ───────────────────────────────────────────────────────────────

func (m *appModel) top() View {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// forward hands msg to the top view.
func (m *appModel) forward(msg tea.Msg) tea.Cmd {
	v := m.top()
	if v == nil {
		return nil
	}
	updated, cmd := v.Update(msg)
	m.stack[len(m.stack)-1] = updated.(View)
	return cmd
}

// broadcast hands msg to every view, including the ones below the top.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.stack))
	for i, v := range m.stack {
		updated, cmd := v.Update(msg)
		m.stack[i] = updated.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *appModel) push(v View) tea.Cmd {
	m.dismiss()
	m.stack = append(m.stack, v)
	return v.Init()
}

// pop closes the top view. Home is never popped.
func (m *appModel) pop() {
	m.dismiss()
	if len(m.stack) > 1 {
		m.stack = m.stack[:len(m.stack)-1]
	}
}

// open shows one of the tab views. Tabs opened from home are pushed;
// switching between tabs replaces the top so the stack stays shallow.
func (m *appModel) open(id ViewID) tea.Cmd {
	var v View
	switch id {
	case ViewResults:
		v = newResultsView(m.state)
	case ViewAdvice:
		v = newAdviceView(m.state)
	case ViewHistory:
		v = newHistoryView(m.state)
	case ViewAbout:
		v = newAboutView(m.state)
	default:
		return nil
	}
	if len(m.stack) == 1 {
		return m.push(v)
	}
	m.dismiss()
	m.stack[len(m.stack)-1] = v
	return v.Init()
}

func (m *appModel) showNotice(s string) {
	m.noticeText = s
	m.notice.show(m.state, s)
}

func (m *appModel) dismiss()          { m.noticeText = "" }
func (m *appModel) noticeShown() bool { return m.noticeText != "" }

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.top(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width, m.state.Height = msg.Width, msg.Height
		m.notice.update(m.state, msg)
		return m, m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.noticeShown() {
			return m, m.notice.update(m.state, msg)
		}

	case pushViewMsg:
		return m, m.push(msg.view)

	case refreshViewMsg:
		return m, m.broadcast(msg)

	case cmdOutputMsg:
		m.showNotice(msg.output)
		return m, nil

	case formClosedMsg:
		m.pop()
		return m, tea.Batch(msg.then, refreshViews)

	case analysisDoneMsg:
		m.state.SetResult(msg.submission, msg.result)
		return m, tea.Batch(m.open(ViewResults), refreshViews)

	case quitMsg:
		return m.quit()
	}

	return m, m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, appKeys.ForceQuit) {
		return m.quit()
	}

	// A notice keeps the scroll keys. Any other key dismisses it; esc stops
	// there, the rest are handled as usual.
	if m.noticeShown() {
		if isScrollKey(msg) {
			return m, m.notice.update(m.state, msg)
		}
		m.dismiss()
		if key.Matches(msg, appKeys.Back) {
			return m, nil
		}
	}

	// The input form takes every key so letters reach its text fields.
	if viewCapturesInput(m.top()) {
		return m, m.forward(msg)
	}

	switch {
	case key.Matches(msg, appKeys.Quit):
		return m.quit()
	case key.Matches(msg, appKeys.New):
		return m, m.push(newInputFormView(m.state))
	case key.Matches(msg, appKeys.Results):
		return m, m.open(ViewResults)
	case key.Matches(msg, appKeys.Advice):
		return m, m.open(ViewAdvice)
	case key.Matches(msg, appKeys.History):
		return m, m.open(ViewHistory)
	case key.Matches(msg, appKeys.About):
		return m, m.open(ViewAbout)
	case key.Matches(msg, appKeys.ExportCSV):
		return m, exportHistoryCmd(m.state, exportCSV)
	case key.Matches(msg, appKeys.ExportXLSX):
		return m, exportHistoryCmd(m.state, exportXLSX)
	case key.Matches(msg, appKeys.Back):
		m.pop()
		return m, nil
	}

	return m, m.forward(msg)
}

// viewCapturesInput reports whether v wants every key, bypassing the
// global shortcuts.
func viewCapturesInput(v View) bool {
	return v != nil && v.ID() == ViewForm
}

// ── rendering ────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.noticeShown() {
		body = m.notice.view(m.state)
	} else if v := m.top(); v != nil {
		body = v.View()
	}
	screen := m.renderHeader() + "\n" + body + "\n" + m.renderStatusBar()

	// Fill the terminal so the alt-screen renderer overwrites stale lines.
	if lines := strings.Count(screen, "\n") + 1; lines < m.state.Height {
		screen += strings.Repeat("\n", m.state.Height-lines)
	}
	return screen
}

// renderHeader shows the app name, a breadcrumb of the stack and the
// category of the latest result.
func (m *appModel) renderHeader() string {
	var b strings.Builder
	b.WriteString(formatter.StylePurple.Render("vitalis"))
	for _, v := range m.stack {
		if t := v.Title(); t != "" {
			b.WriteString(" " + formatter.Dim("› "+t))
		}
	}
	if m.state.HasResult() {
		b.WriteString("  " + formatter.CategoryBadge(m.state.LastResult.Metrics.Category))
	}
	b.WriteString("\n" + rule(m.state.Width))
	return b.String()
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if m.noticeShown() {
		if m.notice.overflows() {
			hints = append(hints, m.notice.position(), "↑↓ pgup/pgdn: scroll")
		}
		hints = append(hints, "esc: dismiss")
	} else if v := m.top(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, hint(b))
		}
		if len(m.stack) > 1 && !viewCapturesInput(v) {
			hints = append(hints, hint(appKeys.Back))
		}
	}
	return rule(m.state.Width) + "\n" + formatter.Dim(strings.Join(hints, "  "))
}

func rule(width int) string {
	return formatter.Dim(strings.Repeat("─", max(width, 20)))
}
