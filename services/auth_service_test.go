package services

import (
	"context"
	"testing"
	"time"

	"BabyNest/models"
	"BabyNest/repositories/mocks"
	"BabyNest/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type sentEmail struct {
	to   string
	tmpl EmailTemplate
	data map[string]string
}

type recordingSender struct {
	sent []sentEmail
}

func (r *recordingSender) Send(ctx context.Context, to string, tmpl EmailTemplate, data map[string]string) {
	r.sent = append(r.sent, sentEmail{to: to, tmpl: tmpl, data: data})
}

type noopMessages struct{}

func (noopMessages) CreateMessage(ctx context.Context, title, description string, owner models.Owner) (*models.Message, error) {
	return &models.Message{Title: title, Description: description}, nil
}

var authNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newAuthService(accounts *mocks.AccountRepository, parents *mocks.ParentRepository, email EmailSender) *AuthService {
	svc := NewAuthService(accounts, parents, NewTokenService("secret", time.Hour), email, noopMessages{}, nil, 5*time.Minute, zap.NewNop())
	svc.now = func() time.Time { return authNow }
	return svc
}

func hashed(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestSignupIssuesOTP(t *testing.T) {
	accounts := new(mocks.AccountRepository)
	parents := new(mocks.ParentRepository)
	email := &recordingSender{}
	svc := newAuthService(accounts, parents, email)

	parents.On("FindByEmail", "anna@example.com").Return(models.Parent{}, gorm.ErrRecordNotFound)
	parents.On("Create", mock.AnythingOfType("*models.Parent")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Parent).ID = "p-1"
	}).Return(nil)
	accounts.On("DeleteOTPs", models.RoleParent, "p-1", models.OTPSignup).Return(nil)
	accounts.On("CreateOTP", mock.MatchedBy(func(o *models.OTP) bool {
		return o.AccountID == "p-1" && o.ExpiresAt.Equal(authNow.Add(5*time.Minute))
	})).Return(nil)

	res, err := svc.Signup(context.Background(), SignupInput{Name: "Anna", Email: " Anna@Example.com ", Password: "pw123456", Type: models.ParentMother})
	require.NoError(t, err)
	assert.True(t, res.Created)
	require.Len(t, email.sent, 1)
	assert.Equal(t, EmailSignupOTP, email.sent[0].tmpl)
	assert.Len(t, email.sent[0].data["otp"], 6)
	accounts.AssertExpectations(t)
}

func TestSignupVerifiedEmailConflicts(t *testing.T) {
	parents := new(mocks.ParentRepository)
	svc := newAuthService(new(mocks.AccountRepository), parents, &recordingSender{})

	parents.On("FindByEmail", "anna@example.com").Return(models.Parent{ID: "p-1", IsVerified: true}, nil)

	_, err := svc.Signup(context.Background(), SignupInput{Email: "anna@example.com", Password: "pw"})
	assert.True(t, IsKind(err, response.KindConflict))
}

func TestVerifyOTPExpiredDeletesCode(t *testing.T) {
	accounts := new(mocks.AccountRepository)
	svc := newAuthService(accounts, new(mocks.ParentRepository), &recordingSender{})

	accounts.On("FindByEmail", models.RoleParent, "anna@example.com").Return(models.Account{ID: "p-1", Role: models.RoleParent}, nil)
	accounts.On("FindLatestOTP", models.RoleParent, "p-1", models.OTPSignup).
		Return(models.OTP{ID: "otp-1", Code: hashed(t, "234567"), ExpiresAt: authNow.Add(-time.Second)}, nil)
	accounts.On("DeleteOTP", "otp-1").Return(nil)

	_, err := svc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "anna@example.com", OTP: "234567", Type: models.OTPSignup, Role: models.RoleParent})
	require.Error(t, err)
	assert.Equal(t, "OTP has expired", err.Error())
	accounts.AssertExpectations(t)
}

func TestVerifyOTPMismatch(t *testing.T) {
	accounts := new(mocks.AccountRepository)
	svc := newAuthService(accounts, new(mocks.ParentRepository), &recordingSender{})

	accounts.On("FindByEmail", models.RoleParent, "anna@example.com").Return(models.Account{ID: "p-1", Role: models.RoleParent}, nil)
	accounts.On("FindLatestOTP", models.RoleParent, "p-1", models.OTPSignup).
		Return(models.OTP{ID: "otp-1", Code: hashed(t, "234567"), ExpiresAt: authNow.Add(time.Minute)}, nil)

	_, err := svc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "anna@example.com", OTP: "999999", Type: models.OTPSignup, Role: models.RoleParent})
	require.Error(t, err)
	assert.Equal(t, "Invalid OTP", err.Error())
	accounts.AssertNotCalled(t, "ConfirmSignup", mock.Anything, mock.Anything)
}

func TestVerifyOTPConfirmsSignup(t *testing.T) {
	accounts := new(mocks.AccountRepository)
	email := &recordingSender{}
	svc := newAuthService(accounts, new(mocks.ParentRepository), email)

	accounts.On("FindByEmail", models.RoleParent, "anna@example.com").Return(models.Account{ID: "p-1", Role: models.RoleParent, Email: "anna@example.com"}, nil)
	accounts.On("FindLatestOTP", models.RoleParent, "p-1", models.OTPSignup).
		Return(models.OTP{ID: "otp-1", Code: hashed(t, "234567"), ExpiresAt: authNow.Add(time.Minute)}, nil)
	accounts.On("ConfirmSignup", models.RoleParent, "p-1").Return(nil)

	msg, err := svc.VerifyOTP(context.Background(), VerifyOTPInput{Email: "anna@example.com", OTP: "234567", Type: models.OTPSignup, Role: models.RoleParent})
	require.NoError(t, err)
	assert.Equal(t, "Account verified successfully", msg)
	require.Len(t, email.sent, 1)
	assert.Equal(t, EmailVerifiedSuccess, email.sent[0].tmpl)
}

func TestLoginRequiresVerifiedParent(t *testing.T) {
	accounts := new(mocks.AccountRepository)
	svc := newAuthService(accounts, new(mocks.ParentRepository), &recordingSender{})

	accounts.On("FindByEmail", models.RoleParent, "anna@example.com").
		Return(models.Account{ID: "p-1", Role: models.RoleParent, Password: hashed(t, "pw123456")}, nil)

	_, err := svc.Login(context.Background(), "anna@example.com", "pw123456", models.RoleParent)
	assert.True(t, IsKind(err, response.KindValidation))
}

func TestLoginWrongPassword(t *testing.T) {
	accounts := new(mocks.AccountRepository)
	svc := newAuthService(accounts, new(mocks.ParentRepository), &recordingSender{})

	accounts.On("FindByEmail", models.RoleSupplier, "shop@example.com").
		Return(models.Account{ID: "s-1", Role: models.RoleSupplier, Password: hashed(t, "right")}, nil)

	_, err := svc.Login(context.Background(), "shop@example.com", "wrong", models.RoleSupplier)
	assert.True(t, IsKind(err, response.KindUnauthorized))
}

func TestLoginIssuesToken(t *testing.T) {
	accounts := new(mocks.AccountRepository)
	email := &recordingSender{}
	svc := newAuthService(accounts, new(mocks.ParentRepository), email)

	accounts.On("FindByEmail", models.RoleParent, "anna@example.com").
		Return(models.Account{ID: "p-1", Role: models.RoleParent, Email: "anna@example.com", Password: hashed(t, "pw123456"), IsVerified: true}, nil)

	res, err := svc.Login(context.Background(), "anna@example.com", "pw123456", models.RoleParent)
	require.NoError(t, err)
	assert.Empty(t, res.Account.Password)

	claims, err := svc.Tokens.Validate(res.Token)
	require.NoError(t, err)
	assert.Equal(t, models.ParentOwner("p-1"), claims.Owner())
	require.Len(t, email.sent, 1)
	assert.Equal(t, EmailNewLoginDetected, email.sent[0].tmpl)
}

func TestChangePasswordNeedsVerifiedOTP(t *testing.T) {
	accounts := new(mocks.AccountRepository)
	svc := newAuthService(accounts, new(mocks.ParentRepository), &recordingSender{})

	accounts.On("FindByEmail", models.RoleParent, "anna@example.com").Return(models.Account{ID: "p-1", Role: models.RoleParent}, nil)
	accounts.On("FindLatestOTP", models.RoleParent, "p-1", models.OTPPasswordReset).Return(models.OTP{ID: "otp-1"}, nil)

	err := svc.ChangePassword(context.Background(), "anna@example.com", "newpass", models.RoleParent)
	require.Error(t, err)
	assert.Equal(t, "Please verify OTP first", err.Error())
	accounts.AssertNotCalled(t, "ResetPassword", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
