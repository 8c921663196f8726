package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// inputFormFields holds the form-bound values of the input form. Numbers
// are kept as text until submission.
type inputFormFields struct {
	name          string
	age           string
	gender        domain.Gender
	height        string
	weight        string
	familyHistory domain.Answer

	highCalorie domain.Answer
	vegetables  domain.VegetableFrequency
	meals       domain.MealCount
	snacking    domain.SnackFrequency
	water       string
	alcohol     domain.SnackFrequency

	smoking    domain.Answer
	monitoring domain.Answer
	activity   domain.ActivityLevel
	screenTime string
	transport  domain.Transport
}

// defaultInputFields seeds the form. Selects start on their first option;
// a previous submission pre-fills every field.
func defaultInputFields(prev *domain.Submission) *inputFormFields {
	if prev != nil {
		return fieldsFromSubmission(*prev)
	}
	return &inputFormFields{
		gender:        domain.GenderMale,
		familyHistory: domain.AnswerNo,
		highCalorie:   domain.AnswerNo,
		vegetables:    domain.VegetablesRarely,
		meals:         3,
		snacking:      domain.FrequencySometimes,
		alcohol:       domain.FrequencyNever,
		smoking:       domain.AnswerNo,
		monitoring:    domain.AnswerNo,
		activity:      domain.ActivitySometimes,
		transport:     domain.TransportPublic,
	}
}

func fieldsFromSubmission(s domain.Submission) *inputFormFields {
	fmtF := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return &inputFormFields{
		name:          s.Profile.Name,
		age:           strconv.Itoa(s.Person.Age),
		gender:        s.Person.Gender,
		height:        fmtF(s.Person.HeightM),
		weight:        fmtF(s.Person.WeightKg),
		familyHistory: s.Profile.FamilyHistory,
		highCalorie:   s.Lifestyle.HighCalorieFood,
		vegetables:    s.Lifestyle.VegetableFrequency,
		meals:         s.Lifestyle.MainMeals,
		snacking:      s.Lifestyle.Snacking,
		water:         fmtF(s.Lifestyle.WaterLiters),
		alcohol:       s.Profile.Alcohol,
		smoking:       s.Lifestyle.Smoking,
		monitoring:    s.Profile.CalorieMonitoring,
		activity:      s.Lifestyle.Activity,
		screenTime:    fmtF(s.Lifestyle.ScreenTimeHours),
		transport:     s.Profile.Transport,
	}
}

// submission converts the form values into a domain submission. Range and
// presence checks are left to Submission.Validate.
func (f *inputFormFields) submission() domain.Submission {
	return domain.Submission{
		Profile: domain.Profile{
			Name:              strings.TrimSpace(f.name),
			FamilyHistory:     f.familyHistory,
			Alcohol:           f.alcohol,
			CalorieMonitoring: f.monitoring,
			Transport:         f.transport,
		},
		Person: domain.PersonRecord{
			WeightKg: parseFloat(f.weight),
			HeightM:  parseFloat(f.height),
			Age:      parseInt(f.age),
			Gender:   f.gender,
		},
		Lifestyle: domain.LifestyleAnswers{
			HighCalorieFood:    f.highCalorie,
			VegetableFrequency: f.vegetables,
			MainMeals:          f.meals,
			Snacking:           f.snacking,
			Activity:           f.activity,
			ScreenTimeHours:    parseFloat(f.screenTime),
			WaterLiters:        parseFloat(f.water),
			Smoking:            f.smoking,
		},
	}
}

// runAnalysis submits the form values. Accepted submissions come back as an
// analysisDoneMsg; rejected ones as error output.
func runAnalysis(app *App, f *inputFormFields) tea.Msg {
	sub := f.submission()
	res, err := app.Analysis.Analyze(context.Background(), sub)
	if err != nil {
		return cmdOutputMsg{output: errorOutput(err)}
	}
	return analysisDoneMsg{submission: sub, result: res}
}

// buildInputForm lays the questionnaire out in three pages: personal data,
// eating habits and lifestyle.
func buildInputForm(f *inputFormFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&f.name).
				Validate(validateRequired("Name")),
			huh.NewInput().
				Key("age").
				Title("Age").
				Description("15 to 100 years").
				Placeholder("25").
				Value(&f.age).
				Validate(validateIntRange(domain.MinAge, domain.MaxAge)),
			huh.NewSelect[domain.Gender]().
				Key("gender").
				Title("Gender").
				Options(genderOptions()...).
				Value(&f.gender),
			huh.NewInput().
				Key("height").
				Title("Height (m)").
				Description("1.0 to 2.5 meters").
				Placeholder("1.70").
				Value(&f.height).
				Validate(validateFloatRange(domain.MinHeightM, domain.MaxHeightM)),
			huh.NewInput().
				Key("weight").
				Title("Weight (kg)").
				Description("5 to 300 kilograms").
				Placeholder("65").
				Value(&f.weight).
				Validate(validateFloatRange(domain.MinWeightKg, domain.MaxWeightKg)),
			huh.NewSelect[domain.Answer]().
				Key("family_history").
				Title("Family history of obesity?").
				Options(answerOptions()...).
				Value(&f.familyHistory),
		).Title("Personal Data"),
		huh.NewGroup(
			huh.NewSelect[domain.Answer]().
				Key("favc").
				Title("Do you often eat high-calorie food?").
				Options(answerOptions()...).
				Value(&f.highCalorie),
			huh.NewSelect[domain.VegetableFrequency]().
				Key("fcvc").
				Title("How often do you eat vegetables?").
				Options(vegetableOptions()...).
				Value(&f.vegetables),
			huh.NewSelect[domain.MealCount]().
				Key("ncp").
				Title("Main meals per day").
				Options(mealOptions()...).
				Value(&f.meals),
			huh.NewSelect[domain.SnackFrequency]().
				Key("caec").
				Title("Do you eat between meals?").
				Options(frequencyOptions()...).
				Value(&f.snacking),
			huh.NewInput().
				Key("ch2o").
				Title("Water per day (liters)").
				Description("1 to 10 liters").
				Placeholder("2").
				Value(&f.water).
				Validate(validateFloatRange(domain.MinWaterL, domain.MaxWaterL)),
			huh.NewSelect[domain.SnackFrequency]().
				Key("calc").
				Title("How often do you drink alcohol?").
				Options(frequencyOptions()...).
				Value(&f.alcohol),
		).Title("Eating Habits"),
		huh.NewGroup(
			huh.NewSelect[domain.Answer]().
				Key("smoke").
				Title("Do you smoke?").
				Options(answerOptions()...).
				Value(&f.smoking),
			huh.NewSelect[domain.Answer]().
				Key("scc").
				Title("Do you monitor your calorie intake?").
				Options(answerOptions()...).
				Value(&f.monitoring),
			huh.NewSelect[domain.ActivityLevel]().
				Key("faf").
				Title("How often do you exercise?").
				Options(activityOptions()...).
				Value(&f.activity),
			huh.NewInput().
				Key("tue").
				Title("Screen time per day (hours)").
				Description("0 to 24 hours").
				Placeholder("4").
				Value(&f.screenTime).
				Validate(validateFloatRange(domain.MinScreenTime, domain.MaxScreenTime)),
			huh.NewSelect[domain.Transport]().
				Key("mtrans").
				Title("Usual mode of transport").
				Options(transportOptions()...).
				Value(&f.transport),
		).Title("Lifestyle"),
	).WithTheme(formTheme()).WithShowHelp(false)
}

// formPages names the questionnaire pages and the keys of their fields,
// in form order.
var formPages = []struct {
	title string
	keys  []string
}{
	{"Personal Data", []string{"name", "age", "gender", "height", "weight", "family_history"}},
	{"Eating Habits", []string{"favc", "fcvc", "ncp", "caec", "ch2o", "calc"}},
	{"Lifestyle", []string{"smoke", "scc", "faf", "tue", "mtrans"}},
}

// inputFormView hosts the questionnaire on the view stack. Esc abandons it;
// confirming the last field submits the answers for analysis.
type inputFormView struct {
	state  *SharedState
	fields *inputFormFields
	form   *huh.Form
}

// newInputFormView opens the form, pre-filled from the last accepted
// submission when there is one.
func newInputFormView(state *SharedState) *inputFormView {
	fields := defaultInputFields(state.LastSubmission)
	form := buildInputForm(fields)
	if state.Height > 0 {
		form = form.WithHeight(state.ContentHeight())
	}
	return &inputFormView{state: state, fields: fields, form: form}
}

func (v *inputFormView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *inputFormView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		return v, closeForm(outputCmd(formatter.Dim("\n  Cancelled.")))
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State != huh.StateCompleted {
		return v, cmd
	}

	app, fields := v.state.App, v.fields
	return v, closeForm(tea.Batch(cmd, func() tea.Msg { return runAnalysis(app, fields) }))
}

func (v *inputFormView) View() string {
	return v.form.View()
}

// page is the index in formPages of the focused field's page.
func (v *inputFormView) page() int {
	field := v.form.GetFocusedField()
	if field == nil {
		return 0
	}
	for i, p := range formPages {
		if slices.Contains(p.keys, field.GetKey()) {
			return i
		}
	}
	return 0
}

func (v *inputFormView) ID() ViewID { return ViewForm }

func (v *inputFormView) Title() string {
	i := v.page()
	return fmt.Sprintf("Input Form · %s (%d/%d)", formPages[i].title, i+1, len(formPages))
}

func (v *inputFormView) ShortHelp() []key.Binding {
	next := "next"
	if v.page() == len(formPages)-1 {
		next = "next / submit"
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", next)),
		key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
