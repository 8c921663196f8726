package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Input ranges enforced by the form collector before the engine runs.
const (
	MinAge        = 15
	MaxAge        = 100
	MinHeightM    = 1.0
	MaxHeightM    = 2.5
	MinWeightKg   = 5.0
	MaxWeightKg   = 300.0
	MinWaterL     = 1.0
	MaxWaterL     = 10.0
	MinScreenTime = 0.0
	MaxScreenTime = 24.0
)

var (
	ErrIncompleteSubmission = errors.New("please complete all fields")
	ErrOutOfRange           = errors.New("value out of range")
	ErrInvalidChoice        = errors.New("invalid choice")
)

// PersonRecord holds the anthropometric inputs of the metrics calculator.
type PersonRecord struct {
	WeightKg float64 `json:"weight_kg"`
	HeightM  float64 `json:"height_m"`
	Age      int     `json:"age"`
	Gender   Gender  `json:"gender"`
}

// LifestyleAnswers holds the questionnaire answers the recommendation
// generator reads.
type LifestyleAnswers struct {
	HighCalorieFood    Answer             `json:"favc"`
	VegetableFrequency VegetableFrequency `json:"fcvc"`
	MainMeals          MealCount          `json:"ncp"`
	Snacking           SnackFrequency     `json:"caec"`
	Activity           ActivityLevel      `json:"faf"`
	ScreenTimeHours    float64            `json:"tue"`
	WaterLiters        float64            `json:"ch2o"`
	Smoking            Answer             `json:"smoke"`
}

// Profile carries the form answers that are recorded but not scored.
type Profile struct {
	Name              string         `json:"name"`
	FamilyHistory     Answer         `json:"family_history"`
	Alcohol           SnackFrequency `json:"calc"`
	CalorieMonitoring Answer         `json:"scc"`
	Transport         Transport      `json:"mtrans"`
}

// Submission is one completed input form.
type Submission struct {
	Profile   Profile          `json:"profile"`
	Person    PersonRecord     `json:"person"`
	Lifestyle LifestyleAnswers `json:"lifestyle"`
}

// FieldError describes one rejected field. Err is one of the package
// sentinels so callers can branch with errors.Is.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every problem found in a submission.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Unwrap exposes the distinct sentinels so errors.Is matches any of them.
func (e *ValidationError) Unwrap() []error {
	seen := make(map[error]bool)
	var errs []error
	for _, f := range e.Fields {
		if f.Err != nil && !seen[f.Err] {
			seen[f.Err] = true
			errs = append(errs, f.Err)
		}
	}
	return errs
}

type fieldChecker struct {
	fields []FieldError
}

func (c *fieldChecker) missing(field string) {
	c.fields = append(c.fields, FieldError{Field: field, Message: "is required", Err: ErrIncompleteSubmission})
}

func (c *fieldChecker) choice(field string, value any) {
	c.fields = append(c.fields, FieldError{Field: field, Message: fmt.Sprintf("invalid value %v", value), Err: ErrInvalidChoice})
}

// rangeF rejects anything outside [lo, hi], NaN included.
func (c *fieldChecker) rangeF(field string, v, lo, hi float64) {
	if !(v >= lo && v <= hi) {
		c.fields = append(c.fields, FieldError{
			Field:   field,
			Message: fmt.Sprintf("must be between %g and %g", lo, hi),
			Err:     ErrOutOfRange,
		})
	}
}

func (c *fieldChecker) answer(field string, a Answer) {
	switch {
	case a == "":
		c.missing(field)
	case !a.Valid():
		c.choice(field, a)
	}
}

func (c *fieldChecker) frequency(field string, f SnackFrequency) {
	switch {
	case f == "":
		c.missing(field)
	case !f.Valid():
		c.choice(field, f)
	}
}

// Validate checks field presence and numeric ranges. It returns nil or a
// *ValidationError listing every problem in form order.
func (s Submission) Validate() error {
	var c fieldChecker

	if strings.TrimSpace(s.Profile.Name) == "" {
		c.missing("name")
	}
	c.rangeF("age", float64(s.Person.Age), MinAge, MaxAge)
	switch {
	case s.Person.Gender == "":
		c.missing("gender")
	case !s.Person.Gender.Valid():
		c.choice("gender", s.Person.Gender)
	}
	c.rangeF("height", s.Person.HeightM, MinHeightM, MaxHeightM)
	c.rangeF("weight", s.Person.WeightKg, MinWeightKg, MaxWeightKg)
	c.answer("family_history", s.Profile.FamilyHistory)

	l := s.Lifestyle
	c.answer("FAVC", l.HighCalorieFood)
	switch {
	case l.VegetableFrequency == 0:
		c.missing("FCVC")
	case !l.VegetableFrequency.Valid():
		c.choice("FCVC", int(l.VegetableFrequency))
	}
	switch {
	case l.MainMeals == 0:
		c.missing("NCP")
	case !l.MainMeals.Valid():
		c.choice("NCP", int(l.MainMeals))
	}
	c.frequency("CAEC", l.Snacking)
	c.answer("SMOKE", l.Smoking)
	c.rangeF("CH2O", l.WaterLiters, MinWaterL, MaxWaterL)
	switch {
	case l.Activity == 0:
		c.missing("FAF")
	case !l.Activity.Valid():
		c.choice("FAF", int(l.Activity))
	}
	c.rangeF("TUE", l.ScreenTimeHours, MinScreenTime, MaxScreenTime)

	c.frequency("CALC", s.Profile.Alcohol)
	c.answer("SCC", s.Profile.CalorieMonitoring)
	switch {
	case s.Profile.Transport == "":
		c.missing("MTRANS")
	case !s.Profile.Transport.Valid():
		c.choice("MTRANS", s.Profile.Transport)
	}

	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}
