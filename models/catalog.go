package models

import (
	"time"

	"gorm.io/gorm"
)

type CategoryKind string

const (
	CategoryProduct CategoryKind = "PRODUCT"
	CategoryMusic   CategoryKind = "MUSIC"
)

type Category struct {
	ID            string        `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug" gorm:"uniqueIndex"`
	Status        AccountStatus `json:"status"`
	Kind          CategoryKind  `json:"kind" gorm:"default:PRODUCT;index"`
	AdminID       string        `json:"adminId" gorm:"type:uuid"`
	SubCategories []SubCategory `json:"subCategories,omitempty"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

type SubCategory struct {
	ID         string `json:"id" gorm:"type:uuid;primaryKey"`
	CategoryID string `json:"categoryId" gorm:"type:uuid;index"`
	Name       string `json:"name"`
	Slug       string `json:"slug" gorm:"uniqueIndex"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *SubCategory) BeforeCreate(tx *gorm.DB) error {
	assignID(&s.ID)
	return nil
}

type Product struct {
	ID            string   `json:"id" gorm:"type:uuid;primaryKey"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	SalePrice     float64  `json:"salePrice"`
	Quantity      int      `json:"quantity"`
	Images        []string `json:"images" gorm:"serializer:json"`
	CategoryID    string   `json:"categoryId" gorm:"type:uuid;index"`
	SubCategoryID *string  `json:"subCategoryId" gorm:"type:uuid;index"`
	SupplierID    string   `json:"supplierId" gorm:"type:uuid;index"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}

type MusicType string

const (
	MusicFree MusicType = "FREE"
	MusicPaid MusicType = "PAID"
)

type Music struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	MimeType      string    `json:"mimeType"`
	Size          int64     `json:"size"`
	Type          MusicType `json:"type"`
	Price         float64   `json:"price"`
	Thumbnail     *string   `json:"thumbnail"`
	CategoryID    string    `json:"categoryId" gorm:"type:uuid;index"`
	SubCategoryID *string   `json:"subCategoryId" gorm:"type:uuid;index"`
	ArtistID      string    `json:"artistId" gorm:"type:uuid;index"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Music) TableName() string { return "music" }

func (m *Music) BeforeCreate(tx *gorm.DB) error {
	assignID(&m.ID)
	return nil
}
