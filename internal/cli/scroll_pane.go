package cli

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// scrollKeys only binds arrows, pages and half pages. Letters stay free
// for the global shortcuts.
var scrollKeys = viewport.KeyMap{
	PageDown:     key.NewBinding(key.WithKeys("pgdown")),
	PageUp:       key.NewBinding(key.WithKeys("pgup")),
	HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	Up:           key.NewBinding(key.WithKeys("up")),
	Down:         key.NewBinding(key.WithKeys("down")),
}

func isScrollKey(msg tea.KeyMsg) bool {
	k := scrollKeys
	return key.Matches(msg, k.Up, k.Down, k.PageUp, k.PageDown, k.HalfPageUp, k.HalfPageDown)
}

// scrollPane is the scrollable content area shared by the read-only views
// and the transient notice shown after actions.
type scrollPane struct {
	vp      viewport.Model
	content string
}

func newScrollPane(state *SharedState) scrollPane {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.KeyMap = scrollKeys
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return scrollPane{vp: vp}
}

func (p *scrollPane) setContent(s string) {
	p.content = s
	p.vp.SetContent(s)
}

// show replaces the content, fits the pane to the terminal and scrolls to
// the top.
func (p *scrollPane) show(state *SharedState, s string) {
	p.fit(state)
	p.setContent(s)
	p.vp.GotoTop()
}

func (p *scrollPane) fit(state *SharedState) {
	p.vp.Width = max(state.Width, 20)
	p.vp.Height = state.ContentHeight()
}

// update resizes on window changes and scrolls on arrow/page keys and the
// mouse wheel.
func (p *scrollPane) update(state *SharedState, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		p.fit(state)
		p.vp.SetContent(p.content)
		return nil
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

func (p *scrollPane) view(state *SharedState) string {
	if state.Height == 0 {
		return p.content
	}
	return p.vp.View()
}

func (p *scrollPane) overflows() bool {
	return p.vp.TotalLineCount() > p.vp.Height
}

// position is the scroll indicator for the status bar.
func (p *scrollPane) position() string {
	switch {
	case p.vp.AtTop():
		return "[TOP]"
	case p.vp.AtBottom():
		return "[END]"
	}
	return fmt.Sprintf("[%d%%]", int(p.vp.ScrollPercent()*100))
}
