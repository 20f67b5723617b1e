package models

import (
	"time"

	"gorm.io/gorm"
)

type VaccinationMonth string

const (
	VaccineAtBirth VaccinationMonth = "AT_BIRTH"
	VaccineMonth2  VaccinationMonth = "MONTH_2"
	VaccineMonth4  VaccinationMonth = "MONTH_4"
	VaccineMonth6  VaccinationMonth = "MONTH_6"
	VaccineMonth12 VaccinationMonth = "MONTH_12"
	VaccineMonth18 VaccinationMonth = "MONTH_18"
	VaccineYear5   VaccinationMonth = "YEAR_5"
)

var vaccinationMonthOrder = map[VaccinationMonth]int{
	VaccineAtBirth: 0,
	VaccineMonth2:  2,
	VaccineMonth4:  4,
	VaccineMonth6:  6,
	VaccineMonth12: 12,
	VaccineMonth18: 18,
	VaccineYear5:   60,
}

// Months returns the age in months of the bucket, or -1 for an unknown value.
func (v VaccinationMonth) Months() int {
	if m, ok := vaccinationMonthOrder[v]; ok {
		return m
	}
	return -1
}

func (v VaccinationMonth) Valid() bool {
	_, ok := vaccinationMonthOrder[v]
	return ok
}

type VaccinationStatus string

const (
	VaccinationPending VaccinationStatus = "PENDING"
	VaccinationTaken   VaccinationStatus = "TAKEN"
)

type Vaccination struct {
	ID          string           `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	MonthOrder  VaccinationMonth `json:"monthOrder"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (v *Vaccination) BeforeCreate(tx *gorm.DB) error {
	assignID(&v.ID)
	return nil
}

type VaccinationProgress struct {
	ID            string            `json:"id" gorm:"type:uuid;primaryKey"`
	ChildID       string            `json:"childId" gorm:"type:uuid;uniqueIndex:idx_child_vaccination"`
	VaccinationID string            `json:"vaccinationId" gorm:"type:uuid;uniqueIndex:idx_child_vaccination"`
	Status        VaccinationStatus `json:"status" gorm:"default:PENDING"`
	Date          *time.Time        `json:"date"`
	Time          *string           `json:"time"`
	Note          *string           `json:"note"`
	Image         *string           `json:"image"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

func (p *VaccinationProgress) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
