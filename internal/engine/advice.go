package engine

import "github.com/alexanderramin/vitalis/internal/domain"

// Thresholds read by the generator.
const (
	MinVegetableFrequency = domain.VegetablesRarely
	MaxScreenTimeHours    = 8.0
	MinWaterLiters        = 2.0
)

// Diet-risk factor phrases, in the order they are detected.
const (
	FactorHighCalorie = "You often eat high-calorie food"
	FactorVegetables  = "Low vegetable and fruit intake"
	FactorFewMeals    = "Too few main meals per day"
	FactorSnacking    = "Frequent snacking between meals"
)

const (
	CautionPrefix = "Caution: "
	FixPrefix     = "Focus on fixing: "

	ScreenTimeCaution = CautionPrefix + "high screen time"
)

type dietBlock struct {
	target string
	advice []string
	prefix string
}

var dietBlocks = map[domain.AdviceBlock]dietBlock{
	domain.AdviceGain: {
		target: "Gain 0.5-1 kg per week until BMI reaches at least 18.5",
		advice: []string{
			"Increase calorie intake by 500-1000 kcal above maintenance",
			"Eat plenty of protein (1.6-2.2 g per kg of body weight)",
			"Eat 5-6 times a day in moderate portions",
			"Focus on nutrient-dense, calorie-dense foods",
		},
		prefix: CautionPrefix,
	},
	domain.AdviceMaintain: {
		target: "Maintain your current weight within a 2 kg band",
		advice: []string{
			"Keep calorie intake at your maintenance level",
			"Eat 1.2-1.6 g of protein per kg of body weight",
			"Keep to 3 meals a day with 2 snacks",
			"Balance macronutrients (50% carbohydrate, 30% protein, 20% fat)",
		},
		prefix: CautionPrefix,
	},
	domain.AdviceLose: {
		target: "Lose 0.5-1 kg per week until BMI reaches 24.9",
		advice: []string{
			"Reduce calorie intake by 500-750 kcal below maintenance",
			"Increase protein (1.8-2.2 g per kg of ideal body weight)",
			"Limit simple carbohydrates and saturated fat",
			"Eat 3 times a day with controlled portions",
			"Prioritise vegetables and lean protein",
		},
		prefix: FixPrefix,
	},
}

var exerciseBlocks = map[domain.ActivityLevel][]string{
	domain.ActivityRarely: {
		"Start with a 30-minute walk every day",
		"Add strength training 2x a week",
		"Target: 150 minutes of moderate activity per week",
		"Focus on basic exercises such as squats, push-ups and planks",
	},
	domain.ActivitySometimes: {
		"Keep a 3-4x weekly exercise routine",
		"Combine cardio and strength training",
		"Target: 200 minutes of moderate activity per week",
		"Vary your workouts to avoid plateaus",
	},
	domain.ActivityOften: {
		"Continue your intensive exercise routine",
		"Focus on high-intensity interval training (HIIT)",
		"Target: 250-300 minutes of moderate activity per week",
		"Consider working with a personal trainer",
	},
}

const (
	HydrationAdvice = "Increase water intake to at least 2 L per day"
	SmokingAdvice   = "Consider a smoking cessation program"
)

var screenTimeAdvice = []string{
	"Reduce screen time and use the 20-20-20 rule for eye health",
	"Mind your posture when using devices",
}

// wellnessBlock replaces the lifestyle list only when no specific concern
// was found.
var wellnessBlock = []string{
	"Maintain your healthy habits",
	"Get 7-9 hours of quality sleep per day",
	"Manage stress with meditation or yoga",
	"Have regular health check-ups",
}

// WellnessBlock returns a copy of the general-wellness lifestyle advice.
func WellnessBlock() []string {
	return append([]string(nil), wellnessBlock...)
}

// ExerciseBlock returns a copy of the base exercise advice for level,
// falling back to the default level for anything off the scale.
func ExerciseBlock(level domain.ActivityLevel) []string {
	return append([]string(nil), exerciseBlocks[level.OrDefault()]...)
}
