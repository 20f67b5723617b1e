package aggregation

import (
	"sort"
	"time"

	"BabyNest/models"
)

type SubMilestoneView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IsCompleted bool       `json:"isCompleted"`
	AchievedAt  *time.Time `json:"achievedAt"`
	Note        *string    `json:"note"`
}

type MilestoneView struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Month         int                `json:"month"`
	SubMilestones []SubMilestoneView `json:"subMilestones"`
}

type MilestoneItem struct {
	SubMilestoneID string     `json:"subMilestoneId"`
	Title          string     `json:"title"`
	MilestoneTitle string     `json:"milestoneTitle"`
	Month          int        `json:"month"`
	AchievedAt     *time.Time `json:"achievedAt,omitempty"`
}

type MilestoneSummary struct {
	Next                *MilestoneItem `json:"nextMilestone"`
	Last                *MilestoneItem `json:"lastMilestone"`
	TotalMilestones     int            `json:"totalMilestones"`
	AchievedMilestones  int            `json:"achievedMilestones"`
	RemainingMilestones int            `json:"remainingMilestones"`
}

// MergeMilestones orders the catalog by month and attaches the child's progress.
func MergeMilestones(catalog []models.Milestone, progress []models.ChildMilestoneProgress) []MilestoneView {
	byID := indexMilestoneProgress(progress)
	sorted := sortedMilestones(catalog)

	views := make([]MilestoneView, 0, len(sorted))
	for _, m := range sorted {
		view := MilestoneView{ID: m.ID, Title: m.Title, Month: m.Month}
		view.SubMilestones = make([]SubMilestoneView, 0, len(m.SubMilestones))
		for _, sub := range m.SubMilestones {
			sv := SubMilestoneView{ID: sub.ID, Title: sub.Title, Description: sub.Description}
			if p, ok := byID[sub.ID]; ok && p.Achieved {
				sv.IsCompleted = true
				sv.AchievedAt = p.AchievedAt
				sv.Note = p.Note
			}
			view.SubMilestones = append(view.SubMilestones, sv)
		}
		views = append(views, view)
	}
	return views
}

// SummarizeMilestones finds the next unachieved sub-milestone by month, the
// most recently achieved one, and the counts.
func SummarizeMilestones(catalog []models.Milestone, progress []models.ChildMilestoneProgress) MilestoneSummary {
	byID := indexMilestoneProgress(progress)
	var summary MilestoneSummary

	for _, m := range sortedMilestones(catalog) {
		for _, sub := range m.SubMilestones {
			summary.TotalMilestones++
			p, ok := byID[sub.ID]
			if ok && p.Achieved {
				summary.AchievedMilestones++
				if summary.Last == nil || achievedAfter(p.AchievedAt, summary.Last.AchievedAt) {
					summary.Last = &MilestoneItem{
						SubMilestoneID: sub.ID,
						Title:          sub.Title,
						MilestoneTitle: m.Title,
						Month:          m.Month,
						AchievedAt:     p.AchievedAt,
					}
				}
				continue
			}
			if summary.Next == nil {
				summary.Next = &MilestoneItem{
					SubMilestoneID: sub.ID,
					Title:          sub.Title,
					MilestoneTitle: m.Title,
					Month:          m.Month,
				}
			}
		}
	}
	summary.RemainingMilestones = summary.TotalMilestones - summary.AchievedMilestones
	return summary
}

func indexMilestoneProgress(progress []models.ChildMilestoneProgress) map[string]models.ChildMilestoneProgress {
	byID := make(map[string]models.ChildMilestoneProgress, len(progress))
	for _, p := range progress {
		byID[p.SubMilestoneID] = p
	}
	return byID
}

func sortedMilestones(catalog []models.Milestone) []models.Milestone {
	sorted := make([]models.Milestone, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Month < sorted[j].Month })
	return sorted
}

// achievedAfter orders achievement timestamps descending with nil last.
func achievedAfter(a, b *time.Time) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return a.After(*b)
}
