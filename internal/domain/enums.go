package domain

import "strings"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ParseGender accepts the display spelling as well as common short forms.
// Unknown input yields the empty Gender.
func ParseGender(s string) Gender {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return GenderMale
	case "female", "f":
		return GenderFemale
	}
	return ""
}

// Answer is a yes/no questionnaire answer. The zero value means unanswered.
type Answer string

const (
	AnswerYes Answer = "yes"
	AnswerNo  Answer = "no"
)

func (a Answer) Valid() bool {
	return a == AnswerYes || a == AnswerNo
}

func ParseAnswer(s string) Answer {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true":
		return AnswerYes
	case "no", "n", "false":
		return AnswerNo
	}
	return ""
}

// SnackFrequency is the four-step frequency scale used for snacking (CAEC)
// and alcohol (CALC).
type SnackFrequency string

const (
	FrequencyNever     SnackFrequency = "Never"
	FrequencySometimes SnackFrequency = "Sometimes"
	FrequencyOften     SnackFrequency = "Often"
	FrequencyAlways    SnackFrequency = "Always"
)

// SnackFrequencies lists the scale in ascending order.
var SnackFrequencies = []SnackFrequency{FrequencyNever, FrequencySometimes, FrequencyOften, FrequencyAlways}

func (f SnackFrequency) Valid() bool {
	for _, v := range SnackFrequencies {
		if f == v {
			return true
		}
	}
	return false
}

// Frequent reports whether f is Often or Always.
func (f SnackFrequency) Frequent() bool {
	return f == FrequencyOften || f == FrequencyAlways
}

func ParseSnackFrequency(s string) SnackFrequency {
	s = strings.TrimSpace(s)
	for _, v := range SnackFrequencies {
		if strings.EqualFold(s, string(v)) {
			return v
		}
	}
	return ""
}

// VegetableFrequency is FCVC on a 1..3 scale. Zero means unanswered.
type VegetableFrequency int

const (
	VegetablesNever  VegetableFrequency = 1
	VegetablesRarely VegetableFrequency = 2
	VegetablesAlways VegetableFrequency = 3
)

func (v VegetableFrequency) Valid() bool {
	return v >= VegetablesNever && v <= VegetablesAlways
}

func (v VegetableFrequency) String() string {
	switch v {
	case VegetablesNever:
		return "Never"
	case VegetablesRarely:
		return "Rarely"
	case VegetablesAlways:
		return "Always"
	}
	return ""
}

// MealCount is NCP, the number of main meals per day (1..4). Zero means unanswered.
type MealCount int

const (
	MinMealCount MealCount = 1
	MaxMealCount MealCount = 4
)

func (m MealCount) Valid() bool {
	return m >= MinMealCount && m <= MaxMealCount
}

// ActivityLevel is FAF, physical-activity frequency on a 1..3 scale.
type ActivityLevel int

const (
	ActivityRarely    ActivityLevel = 1
	ActivitySometimes ActivityLevel = 2
	ActivityOften     ActivityLevel = 3
)

// DefaultActivityLevel is used wherever the activity answer is missing or
// outside the scale.
const DefaultActivityLevel = ActivityRarely

func (a ActivityLevel) Valid() bool {
	return a >= ActivityRarely && a <= ActivityOften
}

// OrDefault returns a, or DefaultActivityLevel when a is off the scale.
func (a ActivityLevel) OrDefault() ActivityLevel {
	if !a.Valid() {
		return DefaultActivityLevel
	}
	return a
}

func (a ActivityLevel) String() string {
	switch a {
	case ActivityRarely:
		return "Never"
	case ActivitySometimes:
		return "Sometimes"
	case ActivityOften:
		return "Often"
	}
	return ""
}

type Transport string

const (
	TransportCar       Transport = "car"
	TransportMotorbike Transport = "motorbike"
	TransportBicycle   Transport = "bicycle"
	TransportPublic    Transport = "public_transport"
	TransportWalking   Transport = "walking"
)

var Transports = []Transport{TransportCar, TransportMotorbike, TransportBicycle, TransportPublic, TransportWalking}

func (t Transport) Valid() bool {
	for _, v := range Transports {
		if t == v {
			return true
		}
	}
	return false
}

func (t Transport) Label() string {
	switch t {
	case TransportCar:
		return "Car"
	case TransportMotorbike:
		return "Motorbike"
	case TransportBicycle:
		return "Bicycle"
	case TransportPublic:
		return "Public Transport"
	case TransportWalking:
		return "Walking"
	}
	return string(t)
}

// ParseTransport accepts a stored value or display label, ignoring case,
// spaces and underscores.
func ParseTransport(s string) Transport {
	norm := func(v string) string {
		v = strings.ToLower(strings.TrimSpace(v))
		return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(v)
	}
	want := norm(s)
	for _, t := range Transports {
		if norm(string(t)) == want || norm(t.Label()) == want {
			return t
		}
	}
	return ""
}
