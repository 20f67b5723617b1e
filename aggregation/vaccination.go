package aggregation

import (
	"sort"
	"time"

	"BabyNest/models"
)

type VaccinationView struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	MonthOrder  models.VaccinationMonth  `json:"monthOrder"`
	Status      models.VaccinationStatus `json:"status"`
	Date        *time.Time               `json:"date"`
	Time        *string                  `json:"time"`
	Note        *string                  `json:"note"`
	Image       *string                  `json:"image"`
}

type VaccinationSummary struct {
	Next                  *VaccinationView `json:"nextVaccination"`
	Last                  *VaccinationView `json:"lastVaccination"`
	TotalVaccinations     int              `json:"totalVaccinations"`
	TakenVaccinations     int              `json:"takenVaccinations"`
	RemainingVaccinations int              `json:"remainingVaccinations"`
}

// MergeVaccinations orders the catalog by age bucket and attaches the child's
// progress. Missing progress reads as PENDING.
func MergeVaccinations(catalog []models.Vaccination, progress []models.VaccinationProgress) []VaccinationView {
	byID := make(map[string]models.VaccinationProgress, len(progress))
	for _, p := range progress {
		byID[p.VaccinationID] = p
	}

	sorted := make([]models.Vaccination, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MonthOrder.Months() < sorted[j].MonthOrder.Months()
	})

	views := make([]VaccinationView, 0, len(sorted))
	for _, v := range sorted {
		view := VaccinationView{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			MonthOrder:  v.MonthOrder,
			Status:      models.VaccinationPending,
		}
		if p, ok := byID[v.ID]; ok {
			if p.Status != "" {
				view.Status = p.Status
			}
			view.Date = p.Date
			view.Time = p.Time
			view.Note = p.Note
			view.Image = p.Image
		}
		views = append(views, view)
	}
	return views
}

// SummarizeVaccinations picks the earliest pending bucket as next and the
// latest-dated TAKEN entry as last.
func SummarizeVaccinations(catalog []models.Vaccination, progress []models.VaccinationProgress) VaccinationSummary {
	views := MergeVaccinations(catalog, progress)
	summary := VaccinationSummary{TotalVaccinations: len(views)}

	for i := range views {
		v := views[i]
		if v.Status == models.VaccinationTaken {
			summary.TakenVaccinations++
			if summary.Last == nil || achievedAfter(v.Date, summary.Last.Date) {
				summary.Last = &v
			}
			continue
		}
		if summary.Next == nil {
			summary.Next = &v
		}
	}
	summary.RemainingVaccinations = summary.TotalVaccinations - summary.TakenVaccinations
	return summary
}
