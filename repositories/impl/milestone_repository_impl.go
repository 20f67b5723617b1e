package impl

import (
	"context"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MilestoneRepositoryImpl struct {
	DB *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) repositories.MilestoneRepository {
	return &MilestoneRepositoryImpl{DB: db}
}

func (r *MilestoneRepositoryImpl) ListCatalog(ctx context.Context) ([]models.Milestone, error) {
	var milestones []models.Milestone
	err := r.DB.WithContext(ctx).Preload("SubMilestones").Order("month ASC").Find(&milestones).Error
	return milestones, err
}

func (r *MilestoneRepositoryImpl) Create(ctx context.Context, milestone *models.Milestone) error {
	return r.DB.WithContext(ctx).Create(milestone).Error
}

func (r *MilestoneRepositoryImpl) FindByID(ctx context.Context, id string) (models.Milestone, error) {
	var milestone models.Milestone
	err := r.DB.WithContext(ctx).Preload("SubMilestones").Where("id = ?", id).First(&milestone).Error
	return milestone, err
}

func (r *MilestoneRepositoryImpl) Save(ctx context.Context, milestone *models.Milestone) error {
	return r.DB.WithContext(ctx).Omit("SubMilestones").Save(milestone).Error
}

func (r *MilestoneRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		subs := tx.Model(&models.SubMilestone{}).Select("id").Where("milestone_id = ?", id)
		if err := tx.Where("sub_milestone_id IN (?)", subs).Delete(&models.ChildMilestoneProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("milestone_id = ?", id).Delete(&models.SubMilestone{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Milestone{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *MilestoneRepositoryImpl) CreateSubMilestone(ctx context.Context, sub *models.SubMilestone) error {
	return r.DB.WithContext(ctx).Create(sub).Error
}

func (r *MilestoneRepositoryImpl) SaveSubMilestone(ctx context.Context, sub *models.SubMilestone) error {
	return r.DB.WithContext(ctx).Save(sub).Error
}

func (r *MilestoneRepositoryImpl) DeleteSubMilestone(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sub_milestone_id = ?", id).Delete(&models.ChildMilestoneProgress{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.SubMilestone{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *MilestoneRepositoryImpl) FindSubMilestone(ctx context.Context, id string) (models.SubMilestone, error) {
	var sub models.SubMilestone
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&sub).Error
	return sub, err
}

func (r *MilestoneRepositoryImpl) ListProgress(ctx context.Context, childID string) ([]models.ChildMilestoneProgress, error) {
	var progress []models.ChildMilestoneProgress
	err := r.DB.WithContext(ctx).Where("child_id = ?", childID).Find(&progress).Error
	return progress, err
}

func (r *MilestoneRepositoryImpl) UpsertProgress(ctx context.Context, progress *models.ChildMilestoneProgress) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "child_id"}, {Name: "sub_milestone_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"achieved", "achieved_at", "note", "updated_at"}),
	}).Create(progress).Error
}

func (r *MilestoneRepositoryImpl) CountSubMilestones(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.SubMilestone{}).Count(&count).Error
	return count, err
}

type VaccinationRepositoryImpl struct {
	DB *gorm.DB
}

func NewVaccinationRepository(db *gorm.DB) repositories.VaccinationRepository {
	return &VaccinationRepositoryImpl{DB: db}
}

func (r *VaccinationRepositoryImpl) ListCatalog(ctx context.Context) ([]models.Vaccination, error) {
	var vaccinations []models.Vaccination
	err := r.DB.WithContext(ctx).Order("name ASC").Find(&vaccinations).Error
	return vaccinations, err
}

func (r *VaccinationRepositoryImpl) Create(ctx context.Context, vaccination *models.Vaccination) error {
	return r.DB.WithContext(ctx).Create(vaccination).Error
}

func (r *VaccinationRepositoryImpl) FindByID(ctx context.Context, id string) (models.Vaccination, error) {
	var vaccination models.Vaccination
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&vaccination).Error
	return vaccination, err
}

func (r *VaccinationRepositoryImpl) Save(ctx context.Context, vaccination *models.Vaccination) error {
	return r.DB.WithContext(ctx).Save(vaccination).Error
}

func (r *VaccinationRepositoryImpl) Delete(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vaccination_id = ?", id).Delete(&models.VaccinationProgress{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&models.Vaccination{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *VaccinationRepositoryImpl) ListProgress(ctx context.Context, childID string) ([]models.VaccinationProgress, error) {
	var progress []models.VaccinationProgress
	err := r.DB.WithContext(ctx).Where("child_id = ?", childID).Find(&progress).Error
	return progress, err
}

func (r *VaccinationRepositoryImpl) UpsertProgress(ctx context.Context, progress *models.VaccinationProgress) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "child_id"}, {Name: "vaccination_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "date", "time", "note", "image", "updated_at"}),
	}).Create(progress).Error
}

func (r *VaccinationRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.Vaccination{}).Count(&count).Error
	return count, err
}
