package aggregation

import (
	"time"

	"BabyNest/models"
)

// ChildRecords is everything the child dashboard is computed from.
type ChildRecords struct {
	Growth            []models.GrowthEntry
	LatestTemperature *models.TemperatureReading
	LatestSleep       *models.BabySleep
	// Sleeps covers the last seven days only.
	Sleeps            []models.BabySleep
	Schedules         []models.FeedSchedule
	Milestones        []models.Milestone
	MilestoneProgress []models.ChildMilestoneProgress
	Vaccinations      []models.Vaccination
	VaccinationStatus []models.VaccinationProgress
}

type CurrentFeed struct {
	Title      string        `json:"title"`
	FeedPerDay int           `json:"feedPerDay"`
	Progress   *FeedProgress `json:"progress"`
}

type Dashboard struct {
	GrowthSummary              GrowthSummary              `json:"growthSummary"`
	LatestTemperature          *models.TemperatureReading `json:"latestTemperature"`
	LatestSleep                *models.BabySleep          `json:"latestSleep"`
	TodaySleep                 SleepSummary               `json:"todaySleep"`
	TotalSleepMinutesLast7Days int                        `json:"totalSleepMinutesLast7Days"`
	CurrentFeed                *CurrentFeed               `json:"currentFeed"`
	Milestones                 MilestoneSummary           `json:"milestones"`
	Vaccinations               VaccinationSummary         `json:"vaccinations"`
}

// BuildDashboard assembles every summary for one child at now.
func BuildDashboard(r ChildRecords, now time.Time) Dashboard {
	today := DayWindow(now)
	d := Dashboard{
		GrowthSummary:              SummarizeGrowth(LatestGrowth(r.Growth)),
		LatestTemperature:          r.LatestTemperature,
		LatestSleep:                r.LatestSleep,
		TodaySleep:                 SummarizeSleep(r.Sleeps, today),
		TotalSleepMinutesLast7Days: TotalSleepSince(r.Sleeps, now.AddDate(0, 0, -7)),
		Milestones:                 SummarizeMilestones(r.Milestones, r.MilestoneProgress),
		Vaccinations:               SummarizeVaccinations(r.Vaccinations, r.VaccinationStatus),
	}
	if active := ActiveSchedule(r.Schedules); active != nil {
		progress := ComputeFeedProgress(*active, today)
		d.CurrentFeed = &CurrentFeed{
			Title:      active.Title,
			FeedPerDay: len(active.FeedSlots),
			Progress:   &progress,
		}
	}
	return d
}
