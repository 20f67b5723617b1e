package aggregation

import (
	"testing"
	"time"

	"BabyNest/models"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeVaccinations(t *testing.T) {
	catalog := []models.Vaccination{
		{ID: "v12", Name: "MMR", MonthOrder: models.VaccineMonth12},
		{ID: "vb", Name: "BCG", MonthOrder: models.VaccineAtBirth},
		{ID: "v2", Name: "DTaP", MonthOrder: models.VaccineMonth2},
		{ID: "v5", Name: "Booster", MonthOrder: models.VaccineYear5},
	}
	birth := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	twoMonths := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	progress := []models.VaccinationProgress{
		{VaccinationID: "vb", Status: models.VaccinationTaken, Date: &birth},
		{VaccinationID: "v2", Status: models.VaccinationTaken, Date: &twoMonths},
	}

	summary := SummarizeVaccinations(catalog, progress)

	assert.Equal(t, 4, summary.TotalVaccinations)
	assert.Equal(t, 2, summary.TakenVaccinations)
	assert.Equal(t, 2, summary.RemainingVaccinations)
	assert.Equal(t, "v12", summary.Next.ID)
	assert.Equal(t, "v2", summary.Last.ID)
}

func TestMergeVaccinationsDefaultsToPending(t *testing.T) {
	catalog := []models.Vaccination{
		{ID: "v5", MonthOrder: models.VaccineYear5},
		{ID: "v18", MonthOrder: models.VaccineMonth18},
	}

	views := MergeVaccinations(catalog, nil)

	assert.Equal(t, "v18", views[0].ID)
	assert.Equal(t, models.VaccinationPending, views[0].Status)
	assert.Equal(t, models.VaccinationPending, views[1].Status)
}
