package bmi

import (
	"fmt"
	"strings"
)

type Category int

const (
	Underweight Category = iota + 1
	NormalWeight
	Overweight
	Obese
)

// Classification thresholds. The upper two are intentionally 24.9 and 29.9,
// not the clinical 25.0 and 30.0.
const (
	normalFrom     = 18.5
	overweightFrom = 24.9
	obeseFrom      = 29.9
)

var underweightRecommendations = [5]string{
	"Increase calorie intake by 300-500 calories per day",
	"Consume protein-rich foods (eggs, chicken, fish, legumes)",
	"Add healthy fats (avocado, nuts, olive oil)",
	"Strength training to build muscle mass",
	"Eat smaller, more frequent meals",
}

var normalRecommendations = [5]string{
	"Maintain current balanced diet",
	"Exercise 3-5 times per week (cardio + strength)",
	"Drink at least 2 liters of water daily",
	"Get 7-9 hours of sleep per night",
	"Regular health check-ups",
}

var overweightRecommendations = [5]string{
	"Reduce daily calorie intake by 500 calories",
	"Increase physical activity to 60 minutes daily",
	"Limit processed foods and sugary drinks",
	"Increase fiber intake (vegetables, whole grains)",
	"Track your food intake in a diary",
}

var obeseRecommendations = [5]string{
	"Consult with healthcare professional",
	"Consider medical weight loss program",
	"Join support group or find accountability partner",
	"Start with low-impact exercises (walking, swimming)",
	"Focus on sustainable lifestyle changes, not quick fixes",
}

func (c Category) String() string {
	switch c {
	case Underweight:
		return "Underweight"
	case NormalWeight:
		return "Normal Weight"
	case Overweight:
		return "Overweight"
	case Obese:
		return "Obese"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	return c >= Underweight && c <= Obese
}

// Color is the display color token of the category.
func (c Category) Color() string {
	switch c {
	case Underweight:
		return "#3498db"
	case NormalWeight:
		return "#2ecc71"
	case Overweight:
		return "#f39c12"
	case Obese:
		return "#e74c3c"
	}
	return ""
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCategory accepts the display names ("Normal Weight") as well as the
// compact forms ("normal", "normalweight"), case-insensitively.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.Join(strings.Fields(s), ""))
	switch key {
	case "underweight":
		return Underweight, nil
	case "normalweight", "normal":
		return NormalWeight, nil
	case "overweight":
		return Overweight, nil
	case "obese":
		return Obese, nil
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Classify maps a BMI value to its category. First match wins, so each
// boundary belongs to the higher category. NaN falls through to Obese.
func Classify(bmi float64) Category {
	switch {
	case bmi < normalFrom:
		return Underweight
	case bmi < overweightFrom:
		return NormalWeight
	case bmi < obeseFrom:
		return Overweight
	default:
		return Obese
	}
}

// Recommendations returns a fresh copy of the fixed guidance list for c.
func Recommendations(c Category) []string {
	var list [5]string
	switch c {
	case Underweight:
		list = underweightRecommendations
	case NormalWeight:
		list = normalRecommendations
	case Overweight:
		list = overweightRecommendations
	case Obese:
		list = obeseRecommendations
	default:
		return nil
	}
	return list[:]
}

const veryHighRiskSuffix = " (Very High Risk - Immediate medical consultation recommended)"

// RiskNarrative returns the risk text for c. The very-high-risk clause is
// appended whenever bmi > 35, independently of the category.
func RiskNarrative(c Category, bmi float64) string {
	var text string
	switch c {
	case Underweight:
		text = "Increased risk of osteoporosis, anemia, and weakened immune system"
	case NormalWeight:
		text = "Lowest health risks. Maintain your healthy lifestyle!"
	case Overweight:
		text = "Moderate risk of heart disease, high blood pressure, and type 2 diabetes"
	case Obese:
		text = "High risk of cardiovascular diseases, stroke, diabetes, and certain cancers"
	default:
		text = "Risk assessment not available"
	}
	if bmi > 35 {
		text += veryHighRiskSuffix
	}
	return text
}
