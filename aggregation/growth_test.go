package aggregation

import (
	"testing"
	"time"

	"BabyNest/models"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBMI(t *testing.T) {
	cases := []struct {
		weight, height float64
		want           string
	}{
		{10, 100, BMIUnderweight},
		{16, 100, BMIHealthy},
		{19, 100, BMIOverweight},
		{25, 100, BMIObese},
		{14, 100, BMIHealthy},
		{18, 100, BMIHealthy},
		{20, 100, BMIOverweight},
	}
	for _, tc := range cases {
		bmi, ok := BMI(tc.weight, tc.height)
		assert.True(t, ok)
		assert.Equal(t, tc.want, ClassifyBMI(bmi), "weight=%v height=%v", tc.weight, tc.height)
	}
}

func TestBMIRoundsToTwoDecimals(t *testing.T) {
	bmi, ok := BMI(7.3, 65)
	assert.True(t, ok)
	assert.Equal(t, 17.28, bmi)
}

func TestBMIRejectsMissingHeight(t *testing.T) {
	_, ok := BMI(7, 0)
	assert.False(t, ok)
}

func TestSummarizeGrowthUsesNewestEntry(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.GrowthEntry{
		{ID: "old", Weight: 5, Height: 60, CreatedAt: now.AddDate(0, -1, 0)},
		{ID: "new", Weight: 6, Height: 62, CreatedAt: now},
	}

	summary := SummarizeGrowth(LatestGrowth(entries))

	assert.Equal(t, "new", summary.Latest.ID)
	assert.Equal(t, 15.61, *summary.BMI)
	assert.Equal(t, BMIHealthy, *summary.BMIStatus)
}

func TestSummarizeGrowthWithoutEntries(t *testing.T) {
	summary := SummarizeGrowth(LatestGrowth(nil))
	assert.Nil(t, summary.Latest)
	assert.Nil(t, summary.BMI)
}

func TestAgeAt(t *testing.T) {
	birthday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Age{Years: 0, Months: 0, Days: 0}, AgeAt(birthday, birthday))
	assert.Equal(t, Age{Years: 0, Months: 1, Days: 9}, AgeAt(birthday, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))
	// 2024 is a leap year, so the epoch-anchored reading lands on 2 January.
	assert.Equal(t, Age{Years: 1, Months: 0, Days: 1}, AgeAt(birthday, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Age{}, AgeAt(birthday, birthday.Add(-time.Hour)))
}

func TestAgeInDays(t *testing.T) {
	birthday := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 40, AgeInDays(birthday, time.Date(2024, 2, 10, 23, 0, 0, 0, time.UTC)))
}
