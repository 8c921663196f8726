// Package teatest drives bubbletea models synchronously in tests.
//
// A Driver stands in for tea.Program: every message goes straight to
// Update and the returned commands are executed and fed back until the
// model settles. Commands that block, such as cursor blinks, are abandoned
// after a timeout.
package teatest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxSteps bounds how many messages a single Send may produce, so a model
// that keeps scheduling itself fails loudly instead of hanging.
const MaxSteps = 500

// DefaultCmdTimeout covers store reads, export writes and message
// factories; cursor blink commands block for about half a second and are
// dropped.
const DefaultCmdTimeout = 150 * time.Millisecond

// Driver feeds messages to a tea.Model and settles its commands.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has been observed. Later input is
	// ignored, as it would be by a stopped program.
	Quitting bool

	timeout time.Duration
	steps   int
}

// Option configures a Driver.
type Option func(*Driver)

// WithSize delivers an initial WindowSizeMsg.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout changes how long a command may block before it is dropped.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.timeout = timeout }
}

// New wraps model. Call DrainInit to run the model's Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, timeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and settles everything it schedules.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.settle(d.Model.Init())
}

// Send delivers msg and settles the resulting commands.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.settle(cmd)
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── keyboard ─────────────────────────────────────────────────────────────────

// Press sends a key of the given type, e.g. tea.KeyEnter.
func (d *Driver) Press(k tea.KeyType) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: k})
}

// PressKey sends a single character.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEnter()    { d.T.Helper(); d.Press(tea.KeyEnter) }
func (d *Driver) PressEsc()      { d.T.Helper(); d.Press(tea.KeyEsc) }
func (d *Driver) PressCtrlC()    { d.T.Helper(); d.Press(tea.KeyCtrlC) }
func (d *Driver) PressUp()       { d.T.Helper(); d.Press(tea.KeyUp) }
func (d *Driver) PressDown()     { d.T.Helper(); d.Press(tea.KeyDown) }
func (d *Driver) PressTab()      { d.T.Helper(); d.Press(tea.KeyTab) }
func (d *Driver) PressShiftTab() { d.T.Helper(); d.Press(tea.KeyShiftTab) }

// Type sends s one key per character.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// Paste sends s as a single key event, the way a terminal delivers pasted
// text. Text inputs insert it in one step.
func (d *Driver) Paste(s string) {
	d.T.Helper()
	if s == "" {
		return
	}
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

// Resize delivers a WindowSizeMsg.
func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// ── huh forms ────────────────────────────────────────────────────────────────

// FieldInput is one answer for a focused huh field: either replacement text
// for an input or a number of downward moves in a select. Every answer is
// confirmed with enter, which moves the form to its next field or page.
type FieldInput struct {
	Text  *string
	Moves int
}

// Text replaces the contents of an input field.
func Text(s string) FieldInput { return FieldInput{Text: &s} }

// Choose moves a select's cursor down n options before confirming.
func Choose(n int) FieldInput { return FieldInput{Moves: n} }

// Keep confirms the field as it is.
func Keep() FieldInput { return FieldInput{} }

// Answer fills the focused field and confirms it.
func (d *Driver) Answer(in FieldInput) {
	d.T.Helper()
	if in.Text != nil {
		d.Press(tea.KeyEnd)
		d.Press(tea.KeyCtrlU)
		d.Paste(*in.Text)
	}
	for i := 0; i < in.Moves; i++ {
		d.PressDown()
	}
	d.PressEnter()
}

// FillForm answers consecutive fields in form order.
func (d *Driver) FillForm(inputs ...FieldInput) {
	d.T.Helper()
	for _, in := range inputs {
		if d.Quitting {
			return
		}
		d.Answer(in)
	}
}

// ── settling ─────────────────────────────────────────────────────────────────

// settle runs cmd and everything it leads to, depth first, in the order the
// commands were returned.
func (d *Driver) settle(cmd tea.Cmd) {
	d.T.Helper()
	d.steps = 0
	d.run(cmd)
}

func (d *Driver) run(cmd tea.Cmd) {
	d.T.Helper()
	if cmd == nil || d.Quitting {
		return
	}
	if d.steps >= MaxSteps {
		d.T.Fatalf("teatest: model still busy after %d messages", MaxSteps)
		return
	}
	d.steps++

	msg, ok := d.exec(cmd)
	if !ok || msg == nil || isBlink(msg) {
		return
	}

	if cmds, ok := subCommands(msg); ok {
		for _, c := range cmds {
			d.run(c)
		}
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	if _, quit := msg.(tea.QuitMsg); quit {
		d.Quitting = true
		return
	}
	d.run(next)
}

// exec runs cmd, giving up after the driver's timeout.
func (d *Driver) exec(cmd tea.Cmd) (tea.Msg, bool) {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg, true
	case <-time.After(d.timeout):
		return nil, false
	}
}

var cmdSliceType = reflect.TypeOf([]tea.Cmd(nil))

// subCommands unpacks tea.Batch and tea.Sequence results. Sequence uses an
// unexported slice type, so it is recognised by shape.
func subCommands(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Slice && v.Type().ConvertibleTo(cmdSliceType) {
		return v.Convert(cmdSliceType).Interface().([]tea.Cmd), true
	}
	return nil, false
}

// isBlink reports cursor blink messages from bubbles/cursor, which only
// schedule further blinks.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
