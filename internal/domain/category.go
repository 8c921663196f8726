package domain

import (
	"fmt"
	"math"
)

// Category is the weight-status classification derived from BMI. Values are
// ordered from lowest to highest BMI band.
type Category int

const (
	CategoryInsufficient Category = iota
	CategoryNormal
	CategoryOverweightI
	CategoryOverweightII
	CategoryOverweightIII
	CategoryOverweightIV
)

// ColorToken is the display token bound to a category.
type ColorToken string

const (
	ColorRedLight ColorToken = "red-light"
	ColorGreen    ColorToken = "green"
	ColorYellow   ColorToken = "yellow"
	ColorRed      ColorToken = "red"
)

// AdviceBlock identifies which diet advice block a category receives.
// All overweight levels share the weight-loss block.
type AdviceBlock string

const (
	AdviceGain     AdviceBlock = "gain"
	AdviceMaintain AdviceBlock = "maintain"
	AdviceLose     AdviceBlock = "lose"
)

type categoryInfo struct {
	label  string
	color  ColorToken
	hex    string
	advice AdviceBlock
	upper  float64 // exclusive
}

// categoryTable is the single source for label, color, advice block and BMI
// band of every category. Bands are half-open: [previous upper, upper).
var categoryTable = [...]categoryInfo{
	CategoryInsufficient:  {"Insufficient Weight", ColorRedLight, "#ff6b6b", AdviceGain, 18.5},
	CategoryNormal:        {"Normal Weight", ColorGreen, "#51cf66", AdviceMaintain, 25},
	CategoryOverweightI:   {"Overweight Level I", ColorYellow, "#ffd43b", AdviceLose, 30},
	CategoryOverweightII:  {"Overweight Level II", ColorRed, "#fa5252", AdviceLose, 35},
	CategoryOverweightIII: {"Overweight Level III", ColorRed, "#fa5252", AdviceLose, 40},
	CategoryOverweightIV:  {"Overweight Level IV", ColorRed, "#fa5252", AdviceLose, math.Inf(1)},
}

// Categories returns every category in ascending BMI order.
func Categories() []Category {
	out := make([]Category, len(categoryTable))
	for i := range categoryTable {
		out[i] = Category(i)
	}
	return out
}

func (c Category) Valid() bool {
	return c >= CategoryInsufficient && c <= CategoryOverweightIV
}

func (c Category) info() categoryInfo {
	if !c.Valid() {
		return categoryInfo{}
	}
	return categoryTable[c]
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return c.info().label
}

func (c Category) Color() ColorToken   { return c.info().color }
func (c Category) Hex() string         { return c.info().hex }
func (c Category) Advice() AdviceBlock { return c.info().advice }

// LowerBound is the inclusive BMI lower edge of the category band.
func (c Category) LowerBound() float64 {
	if c <= CategoryInsufficient || !c.Valid() {
		return 0
	}
	return categoryTable[c-1].upper
}

// UpperBound is the exclusive BMI upper edge; +Inf for the last band.
func (c Category) UpperBound() float64 {
	return c.info().upper
}

// ParseCategory resolves a category from its display label.
func ParseCategory(label string) (Category, error) {
	for i, info := range categoryTable {
		if info.label == label {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", label)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	parsed, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
