package repositories

import (
	"context"

	"BabyNest/models"
)

// AccountRepository reads and updates credentials for every role that can sign in.
type AccountRepository interface {
	FindByEmail(ctx context.Context, role models.OwnerRole, email string) (models.Account, error)
	FindByID(ctx context.Context, role models.OwnerRole, id string) (models.Account, error)
	SetDeviceToken(ctx context.Context, owner models.Owner, token string) error
	DeviceToken(ctx context.Context, owner models.Owner) (string, error)

	CreateOTP(ctx context.Context, otp *models.OTP) error
	FindLatestOTP(ctx context.Context, role models.OwnerRole, accountID string, otpType models.OTPType) (models.OTP, error)
	DeleteOTP(ctx context.Context, id string) error
	DeleteOTPs(ctx context.Context, role models.OwnerRole, accountID string, otpType models.OTPType) error
	MarkOTPVerified(ctx context.Context, id string) error

	// ConfirmSignup marks the account verified and drops its signup codes.
	ConfirmSignup(ctx context.Context, role models.OwnerRole, accountID string) error
	// ResetPassword stores the new hash and consumes the reset code.
	ResetPassword(ctx context.Context, role models.OwnerRole, accountID, passwordHash, otpID string) error
}
