package services

import (
	"context"

	"BabyNest/aggregation"
	"BabyNest/models"
	"BabyNest/repositories"

	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	ChildRepo    repositories.ChildRepository
	Activities   repositories.ActivityRepository
	Feeds        repositories.FeedRepository
	Milestones   repositories.MilestoneRepository
	Vaccinations repositories.VaccinationRepository
	Clock        Clock
}

func NewDashboardService(
	childRepo repositories.ChildRepository,
	activities repositories.ActivityRepository,
	feeds repositories.FeedRepository,
	milestones repositories.MilestoneRepository,
	vaccinations repositories.VaccinationRepository,
	clock Clock,
) *DashboardService {
	return &DashboardService{
		ChildRepo:    childRepo,
		Activities:   activities,
		Feeds:        feeds,
		Milestones:   milestones,
		Vaccinations: vaccinations,
		Clock:        clock,
	}
}

// Build loads the child's records concurrently and summarizes them.
func (s *DashboardService) Build(ctx context.Context, child models.Child) (aggregation.Dashboard, error) {
	now := s.Clock()
	var r aggregation.ChildRecords
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		r.Growth, err = s.ChildRepo.ListGrowth(gctx, child.ID)
		return err
	})
	g.Go(func() (err error) {
		r.LatestTemperature, err = s.Activities.LatestTemperature(gctx, child.ID)
		return err
	})
	g.Go(func() (err error) {
		r.LatestSleep, err = s.Activities.LatestSleep(gctx, child.ID)
		return err
	})
	g.Go(func() (err error) {
		r.Sleeps, err = s.Activities.SleepsSince(gctx, child.ID, now.AddDate(0, 0, -7))
		return err
	})
	g.Go(func() error {
		active, err := s.Feeds.ActiveSchedule(gctx, child.ID)
		if active != nil {
			r.Schedules = []models.FeedSchedule{*active}
		}
		return err
	})
	g.Go(func() (err error) {
		r.Milestones, err = s.Milestones.ListCatalog(gctx)
		return err
	})
	g.Go(func() (err error) {
		r.MilestoneProgress, err = s.Milestones.ListProgress(gctx, child.ID)
		return err
	})
	g.Go(func() (err error) {
		r.Vaccinations, err = s.Vaccinations.ListCatalog(gctx)
		return err
	})
	g.Go(func() (err error) {
		r.VaccinationStatus, err = s.Vaccinations.ListProgress(gctx, child.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return aggregation.Dashboard{}, err
	}
	return aggregation.BuildDashboard(r, now), nil
}
