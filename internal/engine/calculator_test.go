package engine

import (
	"testing"

	"github.com/alexanderramin/vitalis/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBMI_WeightOverHeightSquared(t *testing.T) {
	cases := []struct {
		weight, height float64
	}{
		{60, 1.70},
		{5, 1.0},
		{300, 2.5},
		{72.4, 1.83},
		{0.5, 0.3},
	}
	for _, tc := range cases {
		got := BMI(tc.weight, tc.height)
		want := tc.weight / (tc.height * tc.height)
		assert.InEpsilon(t, want, got, 1e-9)
	}
}

func TestBMR_MaleCoefficients(t *testing.T) {
	p := domain.PersonRecord{WeightKg: 60, HeightM: 1.70, Age: 25, Gender: domain.GenderMale}
	// 88.362 + 13.397*60 + 4.799*170 - 5.677*25
	assert.InDelta(t, 1566.087, BMR(p), 0.01)
}

func TestBMR_FemaleCoefficients(t *testing.T) {
	p := domain.PersonRecord{WeightKg: 60, HeightM: 1.70, Age: 25, Gender: domain.GenderFemale}
	// 447.593 + 9.247*60 + 3.098*170 - 4.330*25
	assert.InDelta(t, 1420.823, BMR(p), 0.01)
}

func TestBMR_NonMaleUsesFemaleFormula(t *testing.T) {
	female := domain.PersonRecord{WeightKg: 80, HeightM: 1.60, Age: 40, Gender: domain.GenderFemale}
	unknown := female
	unknown.Gender = ""
	assert.Equal(t, BMR(female), BMR(unknown))
}

func TestClassify_HalfOpenBoundaries(t *testing.T) {
	cases := []struct {
		bmi  float64
		want domain.Category
	}{
		{10, domain.CategoryInsufficient},
		{18.499, domain.CategoryInsufficient},
		{18.5, domain.CategoryNormal},
		{24.999, domain.CategoryNormal},
		{25.0, domain.CategoryOverweightI},
		{29.999, domain.CategoryOverweightI},
		{30.0, domain.CategoryOverweightII},
		{34.999, domain.CategoryOverweightII},
		{35.0, domain.CategoryOverweightIII},
		{39.999, domain.CategoryOverweightIII},
		{40.0, domain.CategoryOverweightIV},
		{75, domain.CategoryOverweightIV},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.bmi), "bmi=%v", tc.bmi)
	}
}

func TestCompute_AssemblesResult(t *testing.T) {
	p := domain.PersonRecord{WeightKg: 95, HeightM: 1.75, Age: 50, Gender: domain.GenderMale}
	got := Compute(p)

	assert.InEpsilon(t, 95/(1.75*1.75), got.BMI, 1e-9)
	assert.Equal(t, BMR(p), got.BMR)
	assert.Equal(t, domain.CategoryOverweightII, got.Category)
	assert.Equal(t, domain.ColorRed, got.Color())
}

func TestCompute_ColorFollowsCategory(t *testing.T) {
	cases := []struct {
		weight float64
		color  domain.ColorToken
	}{
		{50, domain.ColorRedLight}, // 17.3
		{65, domain.ColorGreen},    // 22.5
		{80, domain.ColorYellow},   // 27.7
		{120, domain.ColorRed},     // 41.5
	}
	for _, tc := range cases {
		got := Compute(domain.PersonRecord{WeightKg: tc.weight, HeightM: 1.70, Age: 30, Gender: domain.GenderFemale})
		assert.Equal(t, tc.color, got.Color(), "weight=%v", tc.weight)
	}
}
