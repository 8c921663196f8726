package testutil

import (
	"time"

	"github.com/alexanderramin/vitalis/internal/domain"
)

// FixedTime is the default clock reading used by fixtures.
var FixedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SteppingClock returns a clock starting at start that advances by step on
// every call.
func SteppingClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

type SubmissionOption func(*domain.Submission)

func WithName(name string) SubmissionOption {
	return func(s *domain.Submission) { s.Profile.Name = name }
}

func WithAge(age int) SubmissionOption {
	return func(s *domain.Submission) { s.Person.Age = age }
}

func WithGender(g domain.Gender) SubmissionOption {
	return func(s *domain.Submission) { s.Person.Gender = g }
}

func WithWeight(kg float64) SubmissionOption {
	return func(s *domain.Submission) { s.Person.WeightKg = kg }
}

func WithHeight(m float64) SubmissionOption {
	return func(s *domain.Submission) { s.Person.HeightM = m }
}

func WithActivity(a domain.ActivityLevel) SubmissionOption {
	return func(s *domain.Submission) { s.Lifestyle.Activity = a }
}

func WithScreenTime(hours float64) SubmissionOption {
	return func(s *domain.Submission) { s.Lifestyle.ScreenTimeHours = hours }
}

func WithWater(liters float64) SubmissionOption {
	return func(s *domain.Submission) { s.Lifestyle.WaterLiters = liters }
}

func WithSmoking(a domain.Answer) SubmissionOption {
	return func(s *domain.Submission) { s.Lifestyle.Smoking = a }
}

func WithHighCalorieFood(a domain.Answer) SubmissionOption {
	return func(s *domain.Submission) { s.Lifestyle.HighCalorieFood = a }
}

func WithVegetables(v domain.VegetableFrequency) SubmissionOption {
	return func(s *domain.Submission) { s.Lifestyle.VegetableFrequency = v }
}

func WithMeals(n domain.MealCount) SubmissionOption {
	return func(s *domain.Submission) { s.Lifestyle.MainMeals = n }
}

func WithSnacking(f domain.SnackFrequency) SubmissionOption {
	return func(s *domain.Submission) { s.Lifestyle.Snacking = f }
}

// NewTestSubmission returns a complete, valid submission for a healthy adult
// (BMI ~20.76, Normal Weight, no lifestyle warnings) with opts applied.
func NewTestSubmission(opts ...SubmissionOption) domain.Submission {
	s := domain.Submission{
		Profile: domain.Profile{
			Name:              "Alex",
			FamilyHistory:     domain.AnswerNo,
			Alcohol:           domain.FrequencyNever,
			CalorieMonitoring: domain.AnswerNo,
			Transport:         domain.TransportWalking,
		},
		Person: domain.PersonRecord{
			WeightKg: 60,
			HeightM:  1.70,
			Age:      25,
			Gender:   domain.GenderMale,
		},
		Lifestyle: domain.LifestyleAnswers{
			HighCalorieFood:    domain.AnswerNo,
			VegetableFrequency: domain.VegetablesAlways,
			MainMeals:          3,
			Snacking:           domain.FrequencySometimes,
			Activity:           domain.ActivitySometimes,
			ScreenTimeHours:    2,
			WaterLiters:        2,
			Smoking:            domain.AnswerNo,
		},
	}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// NewTestEntry builds an unsaved history entry for sub at ts using
// placeholder metrics. Use the engine when the metrics matter.
func NewTestEntry(ts time.Time, sub domain.Submission, bmi float64, c domain.Category) *domain.HistoryEntry {
	return domain.NewHistoryEntry(ts, sub, domain.MetricsResult{BMI: bmi, BMR: 1500, Category: c})
}
