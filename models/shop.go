package models

import (
	"time"

	"gorm.io/gorm"
)

type Cart struct {
	ID        string `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerRefs `gorm:"embedded"`
	Items     []CartItem `json:"items"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

type CartItem struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	CartID    string    `json:"cartId" gorm:"type:uuid;uniqueIndex:idx_cart_product"`
	ProductID string    `json:"productId" gorm:"type:uuid;uniqueIndex:idx_cart_product"`
	Product   *Product  `json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&c.ID)
	return nil
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

type Order struct {
	ID              string `json:"id" gorm:"type:uuid;primaryKey"`
	TrackingNumber  string `json:"trackingNumber" gorm:"uniqueIndex"`
	OwnerRefs       `gorm:"embedded"`
	ShippingAddress string        `json:"shippingAddress"`
	TotalPrice      float64       `json:"totalPrice"`
	OrderStatus     OrderStatus   `json:"orderStatus" gorm:"index"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	OrderItems      []OrderItem   `json:"orderItems"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}

type OrderItem struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   string    `json:"orderId" gorm:"type:uuid;index"`
	ProductID string    `json:"productId" gorm:"type:uuid;index"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
}

func (o *OrderItem) BeforeCreate(tx *gorm.DB) error {
	assignID(&o.ID)
	return nil
}

type ProductFavorite struct {
	ID        string `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerRefs `gorm:"embedded"`
	ProductID string    `json:"productId" gorm:"type:uuid;index"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f *ProductFavorite) BeforeCreate(tx *gorm.DB) error {
	assignID(&f.ID)
	return nil
}

type MusicFavorite struct {
	ID        string `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerRefs `gorm:"embedded"`
	MusicID   string    `json:"musicId" gorm:"type:uuid;index"`
	Music     *Music    `json:"music,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f *MusicFavorite) BeforeCreate(tx *gorm.DB) error {
	assignID(&f.ID)
	return nil
}

type PurchasedMusic struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerRefs   `gorm:"embedded"`
	MusicID     string    `json:"musicId" gorm:"type:uuid;index"`
	Music       *Music    `json:"music,omitempty"`
	PurchasedAt time.Time `json:"purchasedAt"`
	SoftDelete
	CreatedAt time.Time `json:"createdAt"`
}

func (PurchasedMusic) TableName() string { return "purchased_music" }

func (p *PurchasedMusic) BeforeCreate(tx *gorm.DB) error {
	assignID(&p.ID)
	return nil
}
