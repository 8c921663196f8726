// Package engine computes body metrics and rule-based recommendations.
// Every function is pure: no I/O, no clock, no shared mutable state.
package engine

import "github.com/alexanderramin/vitalis/internal/domain"

// Harris-Benedict coefficients. Height enters the formula in centimeters.
const (
	maleBase   = 88.362
	maleWeight = 13.397
	maleHeight = 4.799
	maleAge    = 5.677

	femaleBase   = 447.593
	femaleWeight = 9.247
	femaleHeight = 3.098
	femaleAge    = 4.330
)

// Compute derives BMI, BMR and the weight category for p. It is total over
// positive weight and height; range checks belong to the caller.
func Compute(p domain.PersonRecord) domain.MetricsResult {
	bmi := BMI(p.WeightKg, p.HeightM)
	return domain.MetricsResult{
		BMI:      bmi,
		BMR:      BMR(p),
		Category: Classify(bmi),
	}
}

// BMI returns weight / height².
func BMI(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

// BMR returns the basal metabolic rate in kcal/day. Any gender other than
// Male uses the female coefficients.
func BMR(p domain.PersonRecord) float64 {
	heightCm := p.HeightM * 100
	age := float64(p.Age)
	if p.Gender == domain.GenderMale {
		return maleBase + maleWeight*p.WeightKg + maleHeight*heightCm - maleAge*age
	}
	return femaleBase + femaleWeight*p.WeightKg + femaleHeight*heightCm - femaleAge*age
}

// Classify maps a BMI onto the half-open category bands, scanning from the
// lowest band up. The first band whose upper edge exceeds bmi wins.
func Classify(bmi float64) domain.Category {
	for _, c := range domain.Categories() {
		if bmi < c.UpperBound() {
			return c
		}
	}
	return domain.CategoryOverweightIV
}
