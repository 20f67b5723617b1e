package services

import (
	"context"
	"strings"
	"time"

	"BabyNest/aggregation"
	"BabyNest/models"
	"BabyNest/repositories"
)

type SubMilestoneInput struct {
	Title       string
	Description string
}

type MilestoneUpdate struct {
	Title *string
	Month *int
}

type SubMilestoneUpdate struct {
	Title       *string
	Description *string
}

type MilestoneService struct {
	Milestones repositories.MilestoneRepository
	Clock      Clock
}

func NewMilestoneService(milestones repositories.MilestoneRepository, clock Clock) *MilestoneService {
	return &MilestoneService{Milestones: milestones, Clock: clock}
}

func (s *MilestoneService) ListForChild(ctx context.Context, child models.Child) ([]aggregation.MilestoneView, error) {
	catalog, err := s.Milestones.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.Milestones.ListProgress(ctx, child.ID)
	if err != nil {
		return nil, err
	}
	return aggregation.MergeMilestones(catalog, progress), nil
}

// SetProgress upserts the child's state for one sub-milestone. Marking it
// unachieved clears the achieved time and note.
func (s *MilestoneService) SetProgress(ctx context.Context, child models.Child, subMilestoneID string, achieved bool, note *string) (models.ChildMilestoneProgress, error) {
	if _, err := s.Milestones.FindSubMilestone(ctx, subMilestoneID); err != nil {
		return models.ChildMilestoneProgress{}, notFoundOr(err, "Sub-milestone not found")
	}
	progress := models.ChildMilestoneProgress{
		ChildID:        child.ID,
		SubMilestoneID: subMilestoneID,
		Achieved:       achieved,
	}
	if achieved {
		now := s.Clock()
		progress.AchievedAt = &now
		progress.Note = note
	}
	if err := s.Milestones.UpsertProgress(ctx, &progress); err != nil {
		return models.ChildMilestoneProgress{}, err
	}
	return progress, nil
}

func (s *MilestoneService) Create(ctx context.Context, title string, month int, subs []SubMilestoneInput) (models.Milestone, error) {
	if month < 0 {
		return models.Milestone{}, Invalid("Month must not be negative")
	}
	milestone := models.Milestone{Title: strings.TrimSpace(title), Month: month}
	for _, sub := range subs {
		milestone.SubMilestones = append(milestone.SubMilestones, models.SubMilestone{
			Title:       strings.TrimSpace(sub.Title),
			Description: sub.Description,
		})
	}
	if err := s.Milestones.Create(ctx, &milestone); err != nil {
		return models.Milestone{}, err
	}
	return milestone, nil
}

func (s *MilestoneService) Update(ctx context.Context, milestoneID string, in MilestoneUpdate) (models.Milestone, error) {
	milestone, err := s.Milestones.FindByID(ctx, milestoneID)
	if err != nil {
		return models.Milestone{}, notFoundOr(err, "Milestone not found")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		milestone.Title = strings.TrimSpace(*in.Title)
	}
	if in.Month != nil {
		if *in.Month < 0 {
			return models.Milestone{}, Invalid("Month must not be negative")
		}
		milestone.Month = *in.Month
	}
	if err := s.Milestones.Save(ctx, &milestone); err != nil {
		return models.Milestone{}, err
	}
	return milestone, nil
}

func (s *MilestoneService) Delete(ctx context.Context, milestoneID string) error {
	return notFoundOr(s.Milestones.Delete(ctx, milestoneID), "Milestone not found")
}

func (s *MilestoneService) AddSub(ctx context.Context, milestoneID string, in SubMilestoneInput) (models.SubMilestone, error) {
	if strings.TrimSpace(in.Title) == "" {
		return models.SubMilestone{}, Invalid("Title is required")
	}
	if _, err := s.Milestones.FindByID(ctx, milestoneID); err != nil {
		return models.SubMilestone{}, notFoundOr(err, "Milestone not found")
	}
	sub := models.SubMilestone{
		MilestoneID: milestoneID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
	}
	if err := s.Milestones.CreateSubMilestone(ctx, &sub); err != nil {
		return models.SubMilestone{}, err
	}
	return sub, nil
}

func (s *MilestoneService) UpdateSub(ctx context.Context, subMilestoneID string, in SubMilestoneUpdate) (models.SubMilestone, error) {
	sub, err := s.Milestones.FindSubMilestone(ctx, subMilestoneID)
	if err != nil {
		return models.SubMilestone{}, notFoundOr(err, "Sub-milestone not found")
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		sub.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		sub.Description = *in.Description
	}
	if err := s.Milestones.SaveSubMilestone(ctx, &sub); err != nil {
		return models.SubMilestone{}, err
	}
	return sub, nil
}

func (s *MilestoneService) DeleteSub(ctx context.Context, subMilestoneID string) error {
	return notFoundOr(s.Milestones.DeleteSubMilestone(ctx, subMilestoneID), "Sub-milestone not found")
}

type VaccinationUpdate struct {
	Status models.VaccinationStatus
	Date   *time.Time
	Time   *string
	Note   *string
	Image  *string
}

type VaccinationEdit struct {
	Name        *string
	Description *string
	MonthOrder  *models.VaccinationMonth
}

type VaccinationService struct {
	Vaccinations repositories.VaccinationRepository
	Uploads      *UploadService
}

func NewVaccinationService(vaccinations repositories.VaccinationRepository, uploads *UploadService) *VaccinationService {
	return &VaccinationService{Vaccinations: vaccinations, Uploads: uploads}
}

func (s *VaccinationService) ListForChild(ctx context.Context, child models.Child) ([]aggregation.VaccinationView, error) {
	catalog, err := s.Vaccinations.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := s.Vaccinations.ListProgress(ctx, child.ID)
	if err != nil {
		return nil, err
	}
	return aggregation.MergeVaccinations(catalog, progress), nil
}

func (s *VaccinationService) Update(ctx context.Context, child models.Child, vaccinationID string, in VaccinationUpdate) (models.VaccinationProgress, error) {
	if _, err := s.Vaccinations.FindByID(ctx, vaccinationID); err != nil {
		return models.VaccinationProgress{}, notFoundOr(err, "Vaccination not found")
	}
	image, err := s.Uploads.UploadOptional(ctx, in.Image)
	if err != nil {
		return models.VaccinationProgress{}, err
	}
	progress := models.VaccinationProgress{
		ChildID:       child.ID,
		VaccinationID: vaccinationID,
		Status:        in.Status,
		Date:          in.Date,
		Time:          in.Time,
		Note:          in.Note,
		Image:         image,
	}
	if progress.Status == "" {
		progress.Status = models.VaccinationPending
	}
	if err := s.Vaccinations.UpsertProgress(ctx, &progress); err != nil {
		return models.VaccinationProgress{}, err
	}
	return progress, nil
}

func (s *VaccinationService) Create(ctx context.Context, name, description string, month models.VaccinationMonth) (models.Vaccination, error) {
	if !month.Valid() {
		return models.Vaccination{}, Invalid("Unknown vaccination month")
	}
	vaccination := models.Vaccination{Name: strings.TrimSpace(name), Description: description, MonthOrder: month}
	if err := s.Vaccinations.Create(ctx, &vaccination); err != nil {
		return models.Vaccination{}, err
	}
	return vaccination, nil
}

// Edit changes a catalog entry. Blank names are ignored.
func (s *VaccinationService) Edit(ctx context.Context, vaccinationID string, in VaccinationEdit) (models.Vaccination, error) {
	vaccination, err := s.Vaccinations.FindByID(ctx, vaccinationID)
	if err != nil {
		return models.Vaccination{}, notFoundOr(err, "Vaccination not found")
	}
	if in.MonthOrder != nil {
		if !in.MonthOrder.Valid() {
			return models.Vaccination{}, Invalid("Unknown vaccination month")
		}
		vaccination.MonthOrder = *in.MonthOrder
	}
	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		vaccination.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		vaccination.Description = *in.Description
	}
	if err := s.Vaccinations.Save(ctx, &vaccination); err != nil {
		return models.Vaccination{}, err
	}
	return vaccination, nil
}

func (s *VaccinationService) Delete(ctx context.Context, vaccinationID string) error {
	return notFoundOr(s.Vaccinations.Delete(ctx, vaccinationID), "Vaccination not found")
}
