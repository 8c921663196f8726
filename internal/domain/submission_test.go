package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() Submission {
	return Submission{
		Profile: Profile{
			Name:              "Ayu",
			FamilyHistory:     AnswerNo,
			Alcohol:           FrequencyNever,
			CalorieMonitoring: AnswerNo,
			Transport:         TransportWalking,
		},
		Person: PersonRecord{WeightKg: 60, HeightM: 1.70, Age: 25, Gender: GenderFemale},
		Lifestyle: LifestyleAnswers{
			HighCalorieFood:    AnswerNo,
			VegetableFrequency: VegetablesAlways,
			MainMeals:          3,
			Snacking:           FrequencySometimes,
			Activity:           ActivitySometimes,
			ScreenTimeHours:    2,
			WaterLiters:        2,
			Smoking:            AnswerNo,
		},
	}
}

func fieldNames(err error) []string {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	names := make([]string, len(verr.Fields))
	for i, f := range verr.Fields {
		names[i] = f.Field
	}
	return names
}

func TestSubmissionValidate_Valid(t *testing.T) {
	assert.NoError(t, validSubmission().Validate())
}

func TestSubmissionValidate_Empty(t *testing.T) {
	err := Submission{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteSubmission)
	assert.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, fieldNames(err), "name")
	assert.Contains(t, fieldNames(err), "MTRANS")
}

func TestSubmissionValidate_Ranges(t *testing.T) {
	cases := []struct {
		field string
		mut   func(s *Submission)
	}{
		{"age", func(s *Submission) { s.Person.Age = 14 }},
		{"age", func(s *Submission) { s.Person.Age = 101 }},
		{"height", func(s *Submission) { s.Person.HeightM = 0.99 }},
		{"height", func(s *Submission) { s.Person.HeightM = 2.51 }},
		{"weight", func(s *Submission) { s.Person.WeightKg = 4.9 }},
		{"weight", func(s *Submission) { s.Person.WeightKg = 300.1 }},
		{"CH2O", func(s *Submission) { s.Lifestyle.WaterLiters = 0.5 }},
		{"CH2O", func(s *Submission) { s.Lifestyle.WaterLiters = 10.5 }},
		{"TUE", func(s *Submission) { s.Lifestyle.ScreenTimeHours = -1 }},
		{"TUE", func(s *Submission) { s.Lifestyle.ScreenTimeHours = 24.5 }},
		{"height", func(s *Submission) { s.Person.HeightM = math.NaN() }},
		{"weight", func(s *Submission) { s.Person.WeightKg = math.Inf(1) }},
		{"CH2O", func(s *Submission) { s.Lifestyle.WaterLiters = math.NaN() }},
		{"TUE", func(s *Submission) { s.Lifestyle.ScreenTimeHours = math.NaN() }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			s := validSubmission()
			tc.mut(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.NotErrorIs(t, err, ErrIncompleteSubmission)
			assert.Equal(t, []string{tc.field}, fieldNames(err))
		})
	}
}

func TestSubmissionValidate_RangeEdgesAccepted(t *testing.T) {
	s := validSubmission()
	s.Person.Age = MinAge
	s.Person.HeightM = MaxHeightM
	s.Person.WeightKg = MinWeightKg
	s.Lifestyle.WaterLiters = MaxWaterL
	s.Lifestyle.ScreenTimeHours = MinScreenTime
	assert.NoError(t, s.Validate())
}

func TestSubmissionValidate_MissingChoice(t *testing.T) {
	s := validSubmission()
	s.Lifestyle.Activity = 0
	s.Lifestyle.Smoking = ""

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIncompleteSubmission)
	assert.Equal(t, []string{"SMOKE", "FAF"}, fieldNames(err))
	assert.Contains(t, err.Error(), "please complete all fields")
}

func TestSubmissionValidate_InvalidChoice(t *testing.T) {
	s := validSubmission()
	s.Person.Gender = "Other"
	s.Lifestyle.MainMeals = 7
	s.Lifestyle.Snacking = "Hourly"

	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidChoice)
	assert.Equal(t, []string{"gender", "NCP", "CAEC"}, fieldNames(err))
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, GenderMale, ParseGender(" male "))
	assert.Equal(t, GenderFemale, ParseGender("F"))
	assert.Equal(t, Gender(""), ParseGender("x"))

	assert.Equal(t, AnswerYes, ParseAnswer("Yes"))
	assert.Equal(t, AnswerNo, ParseAnswer("false"))
	assert.Equal(t, Answer(""), ParseAnswer("maybe"))

	assert.Equal(t, FrequencyOften, ParseSnackFrequency("often"))
	assert.Equal(t, SnackFrequency(""), ParseSnackFrequency("hourly"))

	assert.Equal(t, TransportPublic, ParseTransport("Public Transport"))
	assert.Equal(t, TransportPublic, ParseTransport("public_transport"))
	assert.Equal(t, TransportWalking, ParseTransport("WALKING"))
	assert.Equal(t, Transport(""), ParseTransport("teleport"))
}

func TestActivityLevel_OrDefault(t *testing.T) {
	assert.Equal(t, ActivityOften, ActivityOften.OrDefault())
	assert.Equal(t, DefaultActivityLevel, ActivityLevel(0).OrDefault())
	assert.Equal(t, DefaultActivityLevel, ActivityLevel(9).OrDefault())
}

func TestNewHistoryEntry_RoundsMetrics(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sub := validSubmission()
	e := NewHistoryEntry(ts, sub, MetricsResult{BMI: 20.761245, BMR: 1416.0149, Category: CategoryNormal})

	assert.Equal(t, ts, e.Timestamp)
	assert.Equal(t, "Ayu", e.Name)
	assert.Equal(t, 20.76, e.BMI)
	assert.Equal(t, 1416.01, e.BMR)
	assert.Equal(t, CategoryNormal, e.Category)
	assert.Equal(t, ActivitySometimes, e.Activity)
	assert.Equal(t, AnswerNo, e.Smoking)
	assert.Empty(t, e.ID)
	assert.Zero(t, e.Seq)
}
