package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/vitalis/internal/cli/formatter"
	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formTheme styles the input form in the Gruvbox palette used by formatter.
func formTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.NoteTitle = lipgloss.NewStyle().Foreground(formatter.ColorPurple).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" *")
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// parseFloat reads a decimal number, accepting a comma as the decimal
// separator. Used after huh validation, so failures fall back to 0.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseInt reads an integer, returning 0 for anything else.
func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}

// validateRequired rejects blank text.
func validateRequired(title string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", title)
		}
		return nil
	}
}

// validateFloatRange accepts a decimal number within [lo, hi].
func validateFloatRange(lo, hi float64) func(string) error {
	return func(s string) error {
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
		if s == "" {
			return fmt.Errorf("enter a number")
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if !(v >= lo && v <= hi) {
			return fmt.Errorf("enter a value between %g and %g", lo, hi)
		}
		return nil
	}
}

// validateIntRange accepts a whole number within [lo, hi].
func validateIntRange(lo, hi int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if v < lo || v > hi {
			return fmt.Errorf("enter a value between %d and %d", lo, hi)
		}
		return nil
	}
}

// ── option sets ──────────────────────────────────────────────────────────────

func answerOptions() []huh.Option[domain.Answer] {
	return []huh.Option[domain.Answer]{
		huh.NewOption("Yes", domain.AnswerYes),
		huh.NewOption("No", domain.AnswerNo),
	}
}

func genderOptions() []huh.Option[domain.Gender] {
	return []huh.Option[domain.Gender]{
		huh.NewOption("Male", domain.GenderMale),
		huh.NewOption("Female", domain.GenderFemale),
	}
}

func frequencyOptions() []huh.Option[domain.SnackFrequency] {
	opts := make([]huh.Option[domain.SnackFrequency], len(domain.SnackFrequencies))
	for i, f := range domain.SnackFrequencies {
		opts[i] = huh.NewOption(string(f), f)
	}
	return opts
}

func vegetableOptions() []huh.Option[domain.VegetableFrequency] {
	return []huh.Option[domain.VegetableFrequency]{
		huh.NewOption("Never", domain.VegetablesNever),
		huh.NewOption("Rarely", domain.VegetablesRarely),
		huh.NewOption("Always", domain.VegetablesAlways),
	}
}

func mealOptions() []huh.Option[domain.MealCount] {
	var opts []huh.Option[domain.MealCount]
	for n := domain.MinMealCount; n <= domain.MaxMealCount; n++ {
		label := strconv.Itoa(int(n))
		if n == domain.MaxMealCount {
			label += " or more"
		}
		opts = append(opts, huh.NewOption(label, n))
	}
	return opts
}

func activityOptions() []huh.Option[domain.ActivityLevel] {
	return []huh.Option[domain.ActivityLevel]{
		huh.NewOption("Never", domain.ActivityRarely),
		huh.NewOption("Sometimes", domain.ActivitySometimes),
		huh.NewOption("Often", domain.ActivityOften),
	}
}

func transportOptions() []huh.Option[domain.Transport] {
	opts := make([]huh.Option[domain.Transport], len(domain.Transports))
	for i, t := range domain.Transports {
		opts[i] = huh.NewOption(t.Label(), t)
	}
	return opts
}
