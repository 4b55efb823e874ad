package bmi

import "math"

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// MaxHeightCm is the plausibility ceiling for height.
const MaxHeightCm = 300

type Measurement struct {
	WeightKg    float64 `json:"weight_kg"`
	HeightCm    float64 `json:"height_cm"`
	FatIndex    float64 `json:"fat_index"`
	MuscleIndex float64 `json:"muscle_index"`
	Gender      Gender  `json:"gender"`
	Age         float64 `json:"age,omitempty"`
}

type Result struct {
	Measurement     Measurement `json:"measurement"`
	BMI             float64     `json:"bmi"`
	Category        Category    `json:"category"`
	Color           string      `json:"color"`
	IdealWeightKg   float64     `json:"ideal_weight_kg"`
	BMR             *float64    `json:"bmr_kcal,omitempty"`
	Advisories      []string    `json:"advisories"`
	Recommendations []string    `json:"recommendations"`
	RiskNarrative   string      `json:"risk_narrative"`
}

// Validate turns raw input into a Measurement. Optional fields that fail to
// parse are treated as not provided.
func Validate(in Input) (Measurement, error) {
	weight, ok := in.Weight.Float()
	if !ok || weight <= 0 {
		return Measurement{}, &ValidationError{Field: "weight", Reason: "must be a positive number", Err: ErrInvalidMeasurement}
	}
	height, ok := in.Height.Float()
	if !ok || height <= 0 {
		return Measurement{}, &ValidationError{Field: "height", Reason: "must be a positive number", Err: ErrInvalidMeasurement}
	}
	if height > MaxHeightCm {
		return Measurement{}, &ValidationError{Field: "height", Reason: "seems unrealistic, expected centimeters", Err: ErrImplausibleHeight}
	}

	fat, _ := in.FatIndex.Float()
	muscle, _ := in.MuscleIndex.Float()
	age, _ := in.Age.Float()
	if age < 0 {
		age = 0
	}
	gender := Gender(in.Gender)
	if gender == "" {
		gender = Male
	}

	return Measurement{
		WeightKg:    weight,
		HeightCm:    height,
		FatIndex:    fat,
		MuscleIndex: muscle,
		Gender:      gender,
		Age:         age,
	}, nil
}

// ComputeBMI returns weight / height^2 with height converted to meters.
func ComputeBMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100.0
	return weightKg / (h * h)
}

// DeriveAdvisories evaluates each body-composition trigger independently.
func DeriveAdvisories(fatIndex, muscleIndex float64) []string {
	out := make([]string, 0, 3)
	if fatIndex > 30 {
		out = append(out, "High fat index detected - consider reducing body fat percentage")
	}
	if muscleIndex < 40 {
		out = append(out, "Low muscle index - include strength training in your routine")
	}
	if fatIndex < 15 && muscleIndex > 45 {
		out = append(out, "Excellent body composition! Maintain your current fitness routine")
	}
	return out
}

// IdealWeight uses the Devine-style formula. Anything other than exactly
// Male gets the female constant.
func IdealWeight(heightCm float64, gender Gender) float64 {
	if gender == Male {
		return 50 + 0.9*(heightCm-152)
	}
	return 45.5 + 0.9*(heightCm-152)
}

// BMR is the Mifflin-St Jeor basal metabolic rate in kcal/day.
func BMR(weightKg, heightCm, age float64, gender Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*age
	if gender == Male {
		return base + 5
	}
	return base - 161
}

// Calculate validates the input and builds the full report.
func Calculate(in Input) (Result, error) {
	m, err := Validate(in)
	if err != nil {
		return Result{}, err
	}
	return Evaluate(m)
}

// Evaluate builds the report for an already validated measurement.
func Evaluate(m Measurement) (Result, error) {
	bmi := ComputeBMI(m.WeightKg, m.HeightCm)
	ideal := IdealWeight(m.HeightCm, m.Gender)
	if !finite(bmi) || !finite(ideal) {
		return Result{}, ErrComputation
	}

	category := Classify(bmi)
	res := Result{
		Measurement:     m,
		BMI:             bmi,
		Category:        category,
		Color:           category.Color(),
		IdealWeightKg:   ideal,
		Advisories:      DeriveAdvisories(m.FatIndex, m.MuscleIndex),
		Recommendations: Recommendations(category),
		RiskNarrative:   RiskNarrative(category, bmi),
	}
	if m.Age > 0 {
		bmr := BMR(m.WeightKg, m.HeightCm, m.Age, m.Gender)
		if !finite(bmr) {
			return Result{}, ErrComputation
		}
		res.BMR = &bmr
	}
	return res, nil
}

// Round rounds v to the given number of decimal places for display.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
