package engine

import (
	"strings"

	"github.com/alexanderramin/vitalis/internal/domain"
)

// Generate builds the recommendation set for a category and the lifestyle
// answers of the same submission. The output depends only on its inputs and
// list order is stable.
func Generate(category domain.Category, answers domain.LifestyleAnswers) domain.RecommendationSet {
	target, diet := dietAdvice(category, DietRiskFactors(answers))
	return domain.RecommendationSet{
		Target:    target,
		Diet:      diet,
		Exercise:  exerciseAdvice(answers),
		Lifestyle: lifestyleAdvice(answers),
	}
}

// DietRiskFactors lists the eating habits worth flagging, in detection order.
func DietRiskFactors(a domain.LifestyleAnswers) []string {
	var factors []string
	if a.HighCalorieFood == domain.AnswerYes {
		factors = append(factors, FactorHighCalorie)
	}
	if a.VegetableFrequency < MinVegetableFrequency {
		factors = append(factors, FactorVegetables)
	}
	if a.MainMeals == 1 || a.MainMeals == 2 {
		factors = append(factors, FactorFewMeals)
	}
	if a.Snacking.Frequent() {
		factors = append(factors, FactorSnacking)
	}
	return factors
}

func dietAdvice(category domain.Category, factors []string) (string, []string) {
	block, ok := dietBlocks[category.Advice()]
	if !ok {
		// Anything that is not underweight or normal gets the weight-loss block.
		block = dietBlocks[domain.AdviceLose]
	}
	advice := append([]string(nil), block.advice...)
	if len(factors) > 0 {
		advice = append(advice, block.prefix+strings.Join(factors, ", "))
	}
	return block.target, advice
}

func exerciseAdvice(a domain.LifestyleAnswers) []string {
	advice := ExerciseBlock(a.Activity)
	if a.ScreenTimeHours > MaxScreenTimeHours {
		advice = append(advice, ScreenTimeCaution)
	}
	return advice
}

func lifestyleAdvice(a domain.LifestyleAnswers) []string {
	var advice []string
	if a.WaterLiters < MinWaterLiters {
		advice = append(advice, HydrationAdvice)
	}
	if a.Smoking == domain.AnswerYes {
		advice = append(advice, SmokingAdvice)
	}
	if a.ScreenTimeHours > MaxScreenTimeHours {
		advice = append(advice, screenTimeAdvice...)
	}
	if len(advice) == 0 {
		return WellnessBlock()
	}
	return advice
}
