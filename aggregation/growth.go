package aggregation

import (
	"math"

	"BabyNest/models"
)

const (
	BMIUnderweight = "Underweight"
	BMIHealthy     = "Healthy weight"
	BMIOverweight  = "Overweight"
	BMIObese       = "Obese"
)

// BMI takes weight in kilograms and height in centimetres. It reports false
// when height is not positive.
func BMI(weight, height float64) (float64, bool) {
	if height <= 0 || weight <= 0 {
		return 0, false
	}
	m := height / 100
	return round2(weight / (m * m)), true
}

// ClassifyBMI applies the product's fixed cut-offs.
func ClassifyBMI(bmi float64) string {
	switch {
	case bmi < 14:
		return BMIUnderweight
	case bmi <= 18:
		return BMIHealthy
	case bmi <= 20:
		return BMIOverweight
	default:
		return BMIObese
	}
}

type GrowthSummary struct {
	Latest    *models.GrowthEntry `json:"latest"`
	BMI       *float64            `json:"bmi"`
	BMIStatus *string             `json:"bmiStatus"`
}

// LatestGrowth picks the newest entry by creation time.
func LatestGrowth(entries []models.GrowthEntry) *models.GrowthEntry {
	var latest *models.GrowthEntry
	for i := range entries {
		if latest == nil || entries[i].CreatedAt.After(latest.CreatedAt) {
			latest = &entries[i]
		}
	}
	return latest
}

func SummarizeGrowth(latest *models.GrowthEntry) GrowthSummary {
	summary := GrowthSummary{Latest: latest}
	if latest == nil {
		return summary
	}
	if bmi, ok := BMI(latest.Weight, latest.Height); ok {
		status := ClassifyBMI(bmi)
		summary.BMI = &bmi
		summary.BMIStatus = &status
	}
	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
