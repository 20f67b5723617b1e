package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"BabyNest/aggregation"
	"BabyNest/models"
	"BabyNest/repositories"

	"go.uber.org/zap"
)

type ChildInput struct {
	Name     string
	Avatar   *string
	Type     models.ChildType
	Birthday *time.Time
	Height   float64
	Weight   float64
}

type ChildUpdate struct {
	Name     *string
	Avatar   *string
	Type     *models.ChildType
	Birthday *time.Time
}

type ChildDetail struct {
	models.Child
	CurrentAge     *aggregation.Age `json:"currentAge"`
	AgeInDays      *int             `json:"ageInDays"`
	BMI            *float64         `json:"bmi"`
	BMIStatus      *string          `json:"bmiStatus"`
	LastGrowthDate *int             `json:"lastGrowthDate"`
}

type ChildService struct {
	ParentRepo repositories.ParentRepository
	ChildRepo  repositories.ChildRepository
	Relations  repositories.RelationRepository
	Tips       *TipService
	Clock      Clock
	log        *zap.Logger
}

func NewChildService(
	parentRepo repositories.ParentRepository,
	childRepo repositories.ChildRepository,
	relations repositories.RelationRepository,
	tips *TipService,
	clock Clock,
	log *zap.Logger,
) *ChildService {
	return &ChildService{ParentRepo: parentRepo, ChildRepo: childRepo, Relations: relations, Tips: tips, Clock: clock, log: log}
}

func (s *ChildService) Create(ctx context.Context, parentID string, in ChildInput) (models.Child, error) {
	child := models.Child{
		Name:     strings.TrimSpace(in.Name),
		Avatar:   in.Avatar,
		Type:     in.Type,
		Birthday: in.Birthday,
		Height:   in.Height,
		Weight:   in.Weight,
	}
	var initial *models.GrowthEntry
	if in.Height > 0 && in.Weight > 0 {
		initial = &models.GrowthEntry{Height: in.Height, Weight: in.Weight, Date: s.Clock()}
	}
	err := s.ChildRepo.CreateForParent(ctx, &child, parentID, initial)
	if errors.Is(err, repositories.ErrChildLimit) {
		return models.Child{}, Business("Oops! Not able to create more than 1 child")
	}
	if err != nil {
		return models.Child{}, notFoundOr(err, "Parent not found")
	}
	s.log.Info("child created", zap.String("parent", parentID), zap.String("child", child.ID))
	return child, nil
}

func (s *ChildService) List(ctx context.Context, parentID string) ([]models.Child, error) {
	return s.ChildRepo.ListForParent(ctx, parentID)
}

// Authorize loads the child behind a /parents/:parentId/childs/:childId route
// and checks the caller may act on it. Parents must own the route; relatives
// may only reach the child they were created for.
func (s *ChildService) Authorize(ctx context.Context, caller models.Owner, parentID, childID string) (models.Child, error) {
	switch caller.Role {
	case models.RoleParent:
		if caller.ID != parentID {
			return models.Child{}, Forbidden("You do not have access to this child")
		}
	case models.RoleRelative:
		relation, err := s.Relations.FindByID(ctx, caller.ID)
		if err != nil {
			return models.Child{}, notFoundOr(err, "Relative not found")
		}
		if relation.ChildID != childID || relation.ParentID != parentID {
			return models.Child{}, Forbidden("You do not have access to this child")
		}
	case models.RoleAdmin:
	default:
		return models.Child{}, Forbidden("You do not have access to this child")
	}

	child, err := s.ChildRepo.FindForParent(ctx, parentID, childID)
	if err != nil {
		return models.Child{}, notFoundOr(err, "Child not found")
	}
	return child, nil
}

func (s *ChildService) Detail(ctx context.Context, child models.Child) (ChildDetail, error) {
	now := s.Clock()
	detail := ChildDetail{Child: child}
	if child.Birthday != nil {
		age := aggregation.AgeAt(*child.Birthday, now)
		days := aggregation.AgeInDays(*child.Birthday, now)
		detail.CurrentAge = &age
		detail.AgeInDays = &days
	}

	latest, err := s.ChildRepo.LatestGrowth(ctx, child.ID)
	if err != nil {
		return ChildDetail{}, err
	}
	summary := aggregation.SummarizeGrowth(latest)
	detail.BMI = summary.BMI
	detail.BMIStatus = summary.BMIStatus
	if latest != nil {
		days := aggregation.DaysSince(latest.Date, now)
		detail.LastGrowthDate = &days
	}
	return detail, nil
}

func (s *ChildService) Update(ctx context.Context, child models.Child, in ChildUpdate) (models.Child, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		child.Name = strings.TrimSpace(*in.Name)
	}
	if in.Avatar != nil {
		child.Avatar = in.Avatar
	}
	if in.Type != nil {
		child.Type = *in.Type
	}
	if in.Birthday != nil {
		child.Birthday = in.Birthday
	}
	if err := s.ChildRepo.Save(ctx, &child); err != nil {
		return models.Child{}, err
	}
	return child, nil
}

func (s *ChildService) Delete(ctx context.Context, child models.Child) error {
	child.MarkDeleted(s.Clock())
	return s.ChildRepo.Save(ctx, &child)
}

func (s *ChildService) TipOfTheDay(ctx context.Context, child models.Child) (string, error) {
	if child.Birthday == nil {
		return "", Invalid("Child birthday is not set")
	}
	now := s.Clock()
	return s.Tips.TipFor(ctx, aggregation.AgeInDays(*child.Birthday, now), now), nil
}
