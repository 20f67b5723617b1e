package models

import (
	"time"

	"gorm.io/gorm"
)

type AccountStatus string

const (
	StatusActive   AccountStatus = "ACTIVE"
	StatusInactive AccountStatus = "INACTIVE"
)

// Account is the credential view shared by every role that can log in.
type Account struct {
	ID         string
	Role       OwnerRole
	Name       string
	Email      string
	Password   string
	IsVerified bool
}

type Admin struct {
	ID         string `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex"`
	Password   string `json:"-"`
	IsVerified bool   `json:"isVerified" gorm:"default:true"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Admin) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}

// VendorProfile holds the onboarding details an admin records for suppliers and artists.
type VendorProfile struct {
	CNIC          string  `json:"cnic"`
	Country       string  `json:"country"`
	State         string  `json:"state"`
	City          string  `json:"city"`
	Subscription  *string `json:"subscription"`
	CategoryID    *string `json:"categoryId" gorm:"type:uuid"`
	SubCategoryID *string `json:"subCategoryId" gorm:"type:uuid"`
}

type Supplier struct {
	ID         string        `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string        `json:"name"`
	Email      string        `json:"email" gorm:"uniqueIndex:idx_suppliers_email,where:is_deleted = false"`
	Password   string        `json:"-"`
	Status     AccountStatus `json:"status" gorm:"default:ACTIVE"`
	IsVerified bool          `json:"isVerified"`
	VendorProfile
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Supplier) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

type Artist struct {
	ID         string        `json:"id" gorm:"type:uuid;primaryKey"`
	Name       string        `json:"name"`
	Email      string        `json:"email" gorm:"uniqueIndex:idx_artists_email,where:is_deleted = false"`
	Password   string        `json:"-"`
	Status     AccountStatus `json:"status" gorm:"default:ACTIVE"`
	IsVerified bool          `json:"isVerified"`
	VendorProfile
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Artist) BeforeCreate(tx *gorm.DB) error {
	assignID(&a.ID)
	return nil
}

type OTPType string

const (
	OTPSignup        OTPType = "SIGNUP"
	OTPPasswordReset OTPType = "PASSWORD_RESET"
)

// OTP is a hashed one-time code issued to any account role.
type OTP struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Role      OwnerRole `json:"role" gorm:"index:idx_otp_owner"`
	AccountID string    `json:"accountId" gorm:"type:uuid;index:idx_otp_owner"`
	Code      string    `json:"-"`
	Type      OTPType   `json:"type"`
	Verified  bool      `json:"verified" gorm:"default:false"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (o *OTP) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}

func (o OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
