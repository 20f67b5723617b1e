package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"BabyNest/models"
	"BabyNest/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MessageCreator stores an in-app message for an owner.
type MessageCreator interface {
	CreateMessage(ctx context.Context, title, description string, owner models.Owner) (*models.Message, error)
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Type     models.ParentType
}

type SignupResult struct {
	Parent  models.Parent
	Created bool
}

type VerifyOTPInput struct {
	Email string
	OTP   string
	Type  models.OTPType
	Role  models.OwnerRole
}

type LoginResult struct {
	Account models.Account `json:"user"`
	Token   string         `json:"token"`
}

type AuthService struct {
	Accounts repositories.AccountRepository
	Parents  repositories.ParentRepository
	Tokens   *TokenService
	Email    EmailSender
	Messages MessageCreator
	Google   IdentityVerifier
	OTPTTL   time.Duration
	log      *zap.Logger
	now      func() time.Time
}

func NewAuthService(
	accounts repositories.AccountRepository,
	parents repositories.ParentRepository,
	tokens *TokenService,
	email EmailSender,
	messages MessageCreator,
	google IdentityVerifier,
	otpTTL time.Duration,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		Accounts: accounts,
		Parents:  parents,
		Tokens:   tokens,
		Email:    email,
		Messages: messages,
		Google:   google,
		OTPTTL:   otpTTL,
		log:      log,
		now:      time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Signup(ctx context.Context, in SignupInput) (SignupResult, error) {
	email := normalizeEmail(in.Email)
	existing, err := s.Parents.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.IsVerified:
		return SignupResult{}, Conflict("Email already exists")
	case err == nil:
		if err := s.issueOTP(ctx, models.Account{ID: existing.ID, Role: models.RoleParent, Name: existing.Name, Email: existing.Email}, models.OTPSignup); err != nil {
			return SignupResult{}, err
		}
		return SignupResult{Parent: existing}, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return SignupResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return SignupResult{}, err
	}
	parent := models.Parent{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hash),
		Type:     in.Type,
	}
	if err := s.Parents.Create(ctx, &parent); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return SignupResult{}, Conflict("Email already exists")
		}
		return SignupResult{}, fmt.Errorf("create parent: %w", err)
	}
	account := models.Account{ID: parent.ID, Role: models.RoleParent, Name: parent.Name, Email: parent.Email}
	if err := s.issueOTP(ctx, account, models.OTPSignup); err != nil {
		return SignupResult{}, err
	}
	return SignupResult{Parent: parent, Created: true}, nil
}

// issueOTP replaces any pending code of the type and emails the new one.
func (s *AuthService) issueOTP(ctx context.Context, account models.Account, otpType models.OTPType) error {
	if err := s.Accounts.DeleteOTPs(ctx, account.Role, account.ID, otpType); err != nil {
		return err
	}
	code, err := GenerateOTP()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	otp := models.OTP{
		Role:      account.Role,
		AccountID: account.ID,
		Code:      string(hash),
		Type:      otpType,
		ExpiresAt: s.now().Add(s.OTPTTL),
	}
	if err := s.Accounts.CreateOTP(ctx, &otp); err != nil {
		return fmt.Errorf("create otp: %w", err)
	}

	tmpl := EmailSignupOTP
	if otpType == models.OTPPasswordReset {
		tmpl = EmailPasswordResetOTP
	}
	s.Email.Send(ctx, account.Email, tmpl, map[string]string{
		"name":      account.Name,
		"otp":       code,
		"expiresIn": s.OTPTTL.String(),
	})
	return nil
}

// SendSignupOTP issues a signup code for an account created outside Signup.
func (s *AuthService) SendSignupOTP(ctx context.Context, account models.Account) error {
	return s.issueOTP(ctx, account, models.OTPSignup)
}

func (s *AuthService) findAccount(ctx context.Context, role models.OwnerRole, email string) (models.Account, error) {
	account, err := s.Accounts.FindByEmail(ctx, role, normalizeEmail(email))
	if err != nil {
		return models.Account{}, notFoundOr(err, "User not found")
	}
	return account, nil
}

// VerifyOTP checks a code and applies its effect. It returns the success message.
func (s *AuthService) VerifyOTP(ctx context.Context, in VerifyOTPInput) (string, error) {
	account, err := s.findAccount(ctx, in.Role, in.Email)
	if err != nil {
		return "", err
	}
	otp, err := s.Accounts.FindLatestOTP(ctx, account.Role, account.ID, in.Type)
	if err != nil {
		return "", notFoundOr(err, "OTP not found or already used")
	}
	if otp.Expired(s.now()) {
		if err := s.Accounts.DeleteOTP(ctx, otp.ID); err != nil {
			return "", err
		}
		return "", Invalid("OTP has expired")
	}
	if bcrypt.CompareHashAndPassword([]byte(otp.Code), []byte(in.OTP)) != nil {
		return "", Invalid("Invalid OTP")
	}

	if in.Type == models.OTPPasswordReset {
		if err := s.Accounts.MarkOTPVerified(ctx, otp.ID); err != nil {
			return "", err
		}
		return "OTP verified successfully", nil
	}

	if account.IsVerified {
		if err := s.Accounts.DeleteOTPs(ctx, account.Role, account.ID, models.OTPSignup); err != nil {
			return "", err
		}
		return "Account already verified", nil
	}
	if err := s.Accounts.ConfirmSignup(ctx, account.Role, account.ID); err != nil {
		return "", err
	}
	s.Email.Send(ctx, account.Email, EmailVerifiedSuccess, map[string]string{"name": account.Name})
	return "Account verified successfully", nil
}

func (s *AuthService) ResendOTP(ctx context.Context, email string, otpType models.OTPType, role models.OwnerRole) error {
	account, err := s.findAccount(ctx, role, email)
	if err != nil {
		return err
	}
	if otpType == models.OTPSignup && account.IsVerified {
		return Invalid("Account already verified")
	}
	return s.issueOTP(ctx, account, otpType)
}

func (s *AuthService) Login(ctx context.Context, email, password string, role models.OwnerRole) (LoginResult, error) {
	account, err := s.Accounts.FindByEmail(ctx, role, normalizeEmail(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return LoginResult{}, Unauthorized("Invalid email or password")
	}
	if err != nil {
		return LoginResult{}, err
	}
	if account.Password == "" || bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return LoginResult{}, Unauthorized("Invalid email or password")
	}
	if role == models.RoleParent && !account.IsVerified {
		return LoginResult{}, Invalid("Please check your email and verify your account")
	}

	token, err := s.Tokens.Generate(account)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}

	now := s.now()
	s.Email.Send(ctx, account.Email, EmailNewLoginDetected, map[string]string{
		"name":   account.Name,
		"time":   now.Format(time.RFC1123),
		"device": "a new device",
	})
	if _, err := s.Messages.CreateMessage(ctx, "New Login Detected",
		fmt.Sprintf("A new login to your account was detected on %s.", now.Format("2006-01-02 15:04")),
		models.Owner{Role: account.Role, ID: account.ID}); err != nil {
		s.log.Warn("login message not stored", zap.String("account", account.ID), zap.Error(err))
	}

	account.Password = ""
	return LoginResult{Account: account, Token: token}, nil
}

// GoogleLogin signs a parent in with a Firebase ID token, creating the
// account on first use.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (LoginResult, error) {
	identity, err := s.Google.VerifyIDToken(ctx, idToken)
	if err != nil {
		return LoginResult{}, err
	}

	parent, err := s.Parents.FindByGoogleUID(ctx, identity.UID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		parent, err = s.linkGoogleParent(ctx, identity)
	}
	if err != nil {
		return LoginResult{}, err
	}

	account := models.Account{ID: parent.ID, Role: models.RoleParent, Name: parent.Name, Email: parent.Email, IsVerified: true}
	token, err := s.Tokens.Generate(account)
	if err != nil {
		return LoginResult{}, fmt.Errorf("sign token: %w", err)
	}
	return LoginResult{Account: account, Token: token}, nil
}

func (s *AuthService) linkGoogleParent(ctx context.Context, identity GoogleIdentity) (models.Parent, error) {
	uid := identity.UID
	parent, err := s.Parents.FindByEmail(ctx, normalizeEmail(identity.Email))
	if err == nil {
		parent.GoogleUID = &uid
		parent.IsVerified = true
		return parent, s.Parents.Save(ctx, &parent)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Parent{}, err
	}

	parent = models.Parent{
		Name:       identity.Name,
		Email:      normalizeEmail(identity.Email),
		Type:       models.ParentMother,
		IsVerified: true,
		GoogleUID:  &uid,
	}
	if identity.Picture != "" {
		parent.Avatar = &identity.Picture
	}
	if err := s.Parents.Create(ctx, &parent); err != nil {
		return models.Parent{}, fmt.Errorf("create parent: %w", err)
	}
	return parent, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string, role models.OwnerRole) error {
	account, err := s.findAccount(ctx, role, email)
	if err != nil {
		return err
	}
	return s.issueOTP(ctx, account, models.OTPPasswordReset)
}

func (s *AuthService) ChangePassword(ctx context.Context, email, password string, role models.OwnerRole) error {
	account, err := s.findAccount(ctx, role, email)
	if err != nil {
		return err
	}
	otp, err := s.Accounts.FindLatestOTP(ctx, account.Role, account.ID, models.OTPPasswordReset)
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !otp.Verified) {
		return Invalid("Please verify OTP first")
	}
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.Accounts.ResetPassword(ctx, account.Role, account.ID, string(hash), otp.ID); err != nil {
		return err
	}
	s.Email.Send(ctx, account.Email, EmailPasswordChanged, map[string]string{"name": account.Name})
	return nil
}
