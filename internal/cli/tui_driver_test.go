package cli

import (
	"slices"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/alexanderramin/vitalis/internal/teatest"
)

// TestDriver wraps teatest.Driver with vitalis-specific inspection methods.
// It sees appModel internals (view stack, shared state, notice) and knows
// the layout of the input form.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init()
// (which loads home data synchronously via in-memory SQLite).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	d := teatest.New(t, newAppModel(app), teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	if v := m.top(); v != nil {
		return v.ID()
	}
	return ViewID(-1)
}

// ActiveTitle returns the breadcrumb segment of the top view.
func (d *TestDriver) ActiveTitle() string {
	m := d.appModel()
	if v := m.top(); v != nil {
		return v.Title()
	}
	return ""
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().stack)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.stack))
	for i, v := range m.stack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the notice currently shown, if any.
func (d *TestDriver) LastOutput() string {
	return d.appModel().noticeText
}

// Submit runs the form submission path with the given fields, as if the
// input form had been completed.
func (d *TestDriver) Submit(f *inputFormFields) {
	d.T.Helper()
	d.Send(runAnalysis(d.State().App, f))
}

// CompleteForm opens the input form and answers all three pages with sub,
// keystroke by keystroke.
func (d *TestDriver) CompleteForm(sub domain.Submission) {
	d.T.Helper()
	d.PressKey('n')
	require.Equal(d.T, ViewForm, d.ActiveViewID())
	d.FillForm(formAnswers(defaultInputFields(d.State().LastSubmission), fieldsFromSubmission(sub))...)
}

// formAnswers turns a form showing from into one holding to, in field order.
func formAnswers(from, to *inputFormFields) []teatest.FieldInput {
	return []teatest.FieldInput{
		// Personal Data
		teatest.Text(to.name),
		teatest.Text(to.age),
		choose(genderOptions(), from.gender, to.gender),
		teatest.Text(to.height),
		teatest.Text(to.weight),
		choose(answerOptions(), from.familyHistory, to.familyHistory),
		// Eating Habits
		choose(answerOptions(), from.highCalorie, to.highCalorie),
		choose(vegetableOptions(), from.vegetables, to.vegetables),
		choose(mealOptions(), from.meals, to.meals),
		choose(frequencyOptions(), from.snacking, to.snacking),
		teatest.Text(to.water),
		choose(frequencyOptions(), from.alcohol, to.alcohol),
		// Lifestyle
		choose(answerOptions(), from.smoking, to.smoking),
		choose(answerOptions(), from.monitoring, to.monitoring),
		choose(activityOptions(), from.activity, to.activity),
		teatest.Text(to.screenTime),
		choose(transportOptions(), from.transport, to.transport),
	}
}

// choose counts the downward moves from one option to another. Selects
// wrap around at the bottom.
func choose[T comparable](opts []huh.Option[T], from, to T) teatest.FieldInput {
	index := func(v T) int {
		return max(slices.IndexFunc(opts, func(o huh.Option[T]) bool { return o.Value == v }), 0)
	}
	return teatest.Choose((index(to) - index(from) + len(opts)) % len(opts))
}
