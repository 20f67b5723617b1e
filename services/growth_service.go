package services

import (
	"context"
	"time"

	"BabyNest/aggregation"
	"BabyNest/models"
	"BabyNest/repositories"
)

type GrowthView struct {
	models.GrowthEntry
	Age *aggregation.Age `json:"age"`
	BMI *float64         `json:"bmi"`
}

type GrowthService struct {
	ChildRepo repositories.ChildRepository
}

func NewGrowthService(childRepo repositories.ChildRepository) *GrowthService {
	return &GrowthService{ChildRepo: childRepo}
}

// List returns the entries newest first with the child's age at each date.
func (s *GrowthService) List(ctx context.Context, child models.Child) ([]GrowthView, error) {
	entries, err := s.ChildRepo.ListGrowth(ctx, child.ID)
	if err != nil {
		return nil, err
	}
	views := make([]GrowthView, 0, len(entries))
	for _, e := range entries {
		view := GrowthView{GrowthEntry: e}
		if child.Birthday != nil {
			age := aggregation.AgeAt(*child.Birthday, e.Date)
			view.Age = &age
		}
		if bmi, ok := aggregation.BMI(e.Weight, e.Height); ok {
			view.BMI = &bmi
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *GrowthService) Add(ctx context.Context, child models.Child, weight, height float64, date time.Time) (models.GrowthEntry, error) {
	if weight <= 0 || height <= 0 {
		return models.GrowthEntry{}, Invalid("Weight and height must be positive")
	}
	entry := models.GrowthEntry{ChildID: child.ID, Weight: weight, Height: height, Date: date}
	if err := s.ChildRepo.AddGrowth(ctx, &entry); err != nil {
		return models.GrowthEntry{}, err
	}
	return entry, nil
}
