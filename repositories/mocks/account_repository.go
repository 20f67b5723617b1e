package mocks

import (
	"context"

	"BabyNest/models"

	"github.com/stretchr/testify/mock"
)

type AccountRepository struct {
	mock.Mock
}

func (m *AccountRepository) FindByEmail(ctx context.Context, role models.OwnerRole, email string) (models.Account, error) {
	args := m.Called(role, email)
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *AccountRepository) FindByID(ctx context.Context, role models.OwnerRole, id string) (models.Account, error) {
	args := m.Called(role, id)
	return args.Get(0).(models.Account), args.Error(1)
}

func (m *AccountRepository) SetDeviceToken(ctx context.Context, owner models.Owner, token string) error {
	args := m.Called(owner, token)
	return args.Error(0)
}

func (m *AccountRepository) DeviceToken(ctx context.Context, owner models.Owner) (string, error) {
	args := m.Called(owner)
	return args.String(0), args.Error(1)
}

func (m *AccountRepository) CreateOTP(ctx context.Context, otp *models.OTP) error {
	args := m.Called(otp)
	return args.Error(0)
}

func (m *AccountRepository) FindLatestOTP(ctx context.Context, role models.OwnerRole, accountID string, otpType models.OTPType) (models.OTP, error) {
	args := m.Called(role, accountID, otpType)
	return args.Get(0).(models.OTP), args.Error(1)
}

func (m *AccountRepository) DeleteOTP(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *AccountRepository) DeleteOTPs(ctx context.Context, role models.OwnerRole, accountID string, otpType models.OTPType) error {
	args := m.Called(role, accountID, otpType)
	return args.Error(0)
}

func (m *AccountRepository) MarkOTPVerified(ctx context.Context, id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *AccountRepository) ConfirmSignup(ctx context.Context, role models.OwnerRole, accountID string) error {
	args := m.Called(role, accountID)
	return args.Error(0)
}

func (m *AccountRepository) ResetPassword(ctx context.Context, role models.OwnerRole, accountID, passwordHash, otpID string) error {
	args := m.Called(role, accountID, passwordHash, otpID)
	return args.Error(0)
}
