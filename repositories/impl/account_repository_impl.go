package impl

import (
	"context"
	"fmt"

	"BabyNest/models"
	"BabyNest/repositories"

	"gorm.io/gorm"
)

var accountTables = map[models.OwnerRole]string{
	models.RoleParent:   "parents",
	models.RoleRelative: "child_relations",
	models.RoleSupplier: "suppliers",
	models.RoleArtist:   "artists",
	models.RoleAdmin:    "admins",
}

type AccountRepositoryImpl struct {
	DB *gorm.DB
}

func NewAccountRepository(db *gorm.DB) repositories.AccountRepository {
	return &AccountRepositoryImpl{DB: db}
}

func accountTable(role models.OwnerRole) (string, error) {
	table, ok := accountTables[role]
	if !ok {
		return "", fmt.Errorf("no account table for role %q", role)
	}
	return table, nil
}

func (r *AccountRepositoryImpl) find(ctx context.Context, role models.OwnerRole, column, value string) (models.Account, error) {
	table, err := accountTable(role)
	if err != nil {
		return models.Account{}, err
	}
	var account models.Account
	err = r.DB.WithContext(ctx).Table(table).
		Select("id, name, email, password, is_verified").
		Where(column+" = ? AND is_deleted = ?", value, false).
		Take(&account).Error
	if err != nil {
		return models.Account{}, err
	}
	account.Role = role
	return account, nil
}

func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, role models.OwnerRole, email string) (models.Account, error) {
	return r.find(ctx, role, "email", email)
}

func (r *AccountRepositoryImpl) FindByID(ctx context.Context, role models.OwnerRole, id string) (models.Account, error) {
	return r.find(ctx, role, "id", id)
}

func (r *AccountRepositoryImpl) SetDeviceToken(ctx context.Context, owner models.Owner, token string) error {
	if !owner.IsShopper() {
		return fmt.Errorf("device tokens are not stored for role %q", owner.Role)
	}
	table, _ := accountTable(owner.Role)
	return r.DB.WithContext(ctx).Table(table).Where("id = ?", owner.ID).Update("device_token", token).Error
}

func (r *AccountRepositoryImpl) DeviceToken(ctx context.Context, owner models.Owner) (string, error) {
	if !owner.IsShopper() {
		return "", nil
	}
	table, _ := accountTable(owner.Role)
	var row struct{ DeviceToken *string }
	err := r.DB.WithContext(ctx).Table(table).Select("device_token").Where("id = ?", owner.ID).Take(&row).Error
	if err != nil || row.DeviceToken == nil {
		return "", err
	}
	return *row.DeviceToken, nil
}

func (r *AccountRepositoryImpl) CreateOTP(ctx context.Context, otp *models.OTP) error {
	return r.DB.WithContext(ctx).Create(otp).Error
}

func (r *AccountRepositoryImpl) FindLatestOTP(ctx context.Context, role models.OwnerRole, accountID string, otpType models.OTPType) (models.OTP, error) {
	var otp models.OTP
	err := r.DB.WithContext(ctx).
		Where("role = ? AND account_id = ? AND type = ?", role, accountID, otpType).
		Order("created_at DESC").
		First(&otp).Error
	return otp, err
}

func (r *AccountRepositoryImpl) DeleteOTP(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.OTP{}).Error
}

func (r *AccountRepositoryImpl) DeleteOTPs(ctx context.Context, role models.OwnerRole, accountID string, otpType models.OTPType) error {
	return r.DB.WithContext(ctx).
		Where("role = ? AND account_id = ? AND type = ?", role, accountID, otpType).
		Delete(&models.OTP{}).Error
}

func (r *AccountRepositoryImpl) MarkOTPVerified(ctx context.Context, id string) error {
	return r.DB.WithContext(ctx).Model(&models.OTP{}).Where("id = ?", id).Update("verified", true).Error
}

func (r *AccountRepositoryImpl) ConfirmSignup(ctx context.Context, role models.OwnerRole, accountID string) error {
	table, err := accountTable(role)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table(table).Where("id = ?", accountID).Update("is_verified", true).Error; err != nil {
			return err
		}
		return tx.Where("role = ? AND account_id = ? AND type = ?", role, accountID, models.OTPSignup).
			Delete(&models.OTP{}).Error
	})
}

func (r *AccountRepositoryImpl) ResetPassword(ctx context.Context, role models.OwnerRole, accountID, passwordHash, otpID string) error {
	table, err := accountTable(role)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", otpID).Delete(&models.OTP{}).Error; err != nil {
			return err
		}
		return tx.Table(table).Where("id = ?", accountID).Update("password", passwordHash).Error
	})
}
