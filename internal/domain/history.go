package domain

import (
	"math"
	"time"
)

// MetricsResult is the calculator output for one PersonRecord.
type MetricsResult struct {
	BMI      float64  `json:"bmi"`
	BMR      float64  `json:"bmr"`
	Category Category `json:"category"`
}

// Color returns the display token bound to the result's category.
func (m MetricsResult) Color() ColorToken {
	return m.Category.Color()
}

// RecommendationSet is the generator output: a target statement and three
// ordered advice lists.
type RecommendationSet struct {
	Target    string   `json:"target"`
	Diet      []string `json:"diet"`
	Exercise  []string `json:"exercise"`
	Lifestyle []string `json:"lifestyle"`
}

// HistoryEntry is one row of the session log. Entries are written once and
// never edited.
type HistoryEntry struct {
	ID        string    `json:"id"`
	Seq       int       `json:"seq"`
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`

	Age      int     `json:"age"`
	Gender   Gender  `json:"gender"`
	HeightM  float64 `json:"height_m"`
	WeightKg float64 `json:"weight_kg"`

	BMI      float64  `json:"bmi"`
	BMR      float64  `json:"bmr"`
	Category Category `json:"category"`

	Activity        ActivityLevel `json:"faf"`
	ScreenTimeHours float64       `json:"tue"`
	WaterLiters     float64       `json:"ch2o"`
	Smoking         Answer        `json:"smoke"`
}

// NewHistoryEntry builds the log row for a submission. BMI and BMR are
// stored rounded to two decimals. ID and Seq are assigned by the store.
func NewHistoryEntry(ts time.Time, sub Submission, m MetricsResult) *HistoryEntry {
	return &HistoryEntry{
		Timestamp:       ts,
		Name:            sub.Profile.Name,
		Age:             sub.Person.Age,
		Gender:          sub.Person.Gender,
		HeightM:         sub.Person.HeightM,
		WeightKg:        sub.Person.WeightKg,
		BMI:             Round2(m.BMI),
		BMR:             Round2(m.BMR),
		Category:        m.Category,
		Activity:        sub.Lifestyle.Activity,
		ScreenTimeHours: sub.Lifestyle.ScreenTimeHours,
		WaterLiters:     sub.Lifestyle.WaterLiters,
		Smoking:         sub.Lifestyle.Smoking,
	}
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
