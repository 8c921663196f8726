package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexanderramin/vitalis/internal/domain"
)

// GaugeWidth is the default gauge width, one cell per BMI unit.
const GaugeWidth = 45

const (
	bmiExplanation = "Body Mass Index (BMI) compares weight with height: weight in " +
		"kilograms divided by the square of height in meters. It indicates " +
		"whether body weight is insufficient, normal or excessive."
	bmrExplanation = "Basal Metabolic Rate (BMR) is the energy your body needs at rest " +
		"to keep vital functions running, such as breathing and temperature " +
		"control. It depends on age, gender, weight and height."
)

var categoryNotes = map[domain.Category]string{
	domain.CategoryInsufficient:  "Below normal weight, with some health risks",
	domain.CategoryNormal:        "Ideal weight, a healthy balance",
	domain.CategoryOverweightI:   "Early-stage excess weight",
	domain.CategoryOverweightII:  "Obesity class I, risk of metabolic disease",
	domain.CategoryOverweightIII: "Obesity class II, serious health risk",
	domain.CategoryOverweightIV:  "Obesity class III, very serious health risk",
}

// FormatResult renders the metrics card for one analysis followed by the
// BMI gauge. The card border takes the category color.
func FormatResult(name string, m domain.MetricsResult) string {
	style := CategoryStyle(m.Category)
	lines := []string{
		Dim(padRight("Name", 10)) + Bold(name),
		Dim(padRight("BMI", 10)) + style.Bold(true).Render(FormatBMI(m.BMI)),
		Dim(padRight("Category", 10)) + CategoryBadge(m.Category),
		Dim(padRight("BMR", 10)) + StyleFg.Render(FormatKcal(m.BMR)),
	}

	var b strings.Builder
	b.WriteString(RenderBox("Analysis Result", strings.Join(lines, "\n"), CategoryColor(m.Category)))
	b.WriteString("\n\n")
	b.WriteString(Header("BMI Scale") + "\n")
	b.WriteString(RenderGauge(m.BMI, GaugeWidth))
	b.WriteString("\n")
	return b.String()
}

// CategoryRange describes a category's BMI band, e.g. "18.5 - 24.9".
func CategoryRange(c domain.Category) string {
	lo, hi := c.LowerBound(), c.UpperBound()
	switch {
	case lo == 0:
		return fmt.Sprintf("< %.1f", hi)
	case math.IsInf(hi, 1):
		return fmt.Sprintf("≥ %g", lo)
	default:
		return fmt.Sprintf("%.1f - %.1f", lo, hi-0.1)
	}
}

// FormatExplanations renders the BMI and BMR explainers and the category
// reference table.
func FormatExplanations(width int) string {
	wrap := func(s string) string {
		return StyleFg.Width(max(width-4, 40)).Render(s)
	}

	var b strings.Builder
	b.WriteString(Header("What is BMI?") + "\n")
	b.WriteString(wrap(bmiExplanation) + "\n\n")
	b.WriteString(Header("What is BMR?") + "\n")
	b.WriteString(wrap(bmrExplanation) + "\n\n")
	b.WriteString(Header("BMI Categories") + "\n")

	rows := make([][]string, 0, len(domain.Categories()))
	for _, c := range domain.Categories() {
		rows = append(rows, []string{
			CategoryStyle(c).Render(c.String()),
			CategoryRange(c),
			Dim(categoryNotes[c]),
		})
	}
	b.WriteString(RenderTable([]string{"Category", "BMI", "Notes"}, rows))
	return b.String()
}

// FormatSubmitPrompt is shown wherever a result is needed before the first
// submission.
func FormatSubmitPrompt() string {
	return "\n  " + StyleBlue.Render("No analysis yet.") + " " +
		Dim("Press 'n' to fill in the input form first.") + "\n"
}
