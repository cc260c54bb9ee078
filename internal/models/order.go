package models

import (
	"time"

	"gorm.io/datatypes"
)

type Order struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	OrderNumber string `gorm:"size:50;uniqueIndex;not null" json:"orderNumber"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Subtotal    float64 `gorm:"type:numeric(10,2);not null" json:"subtotal"`
	ShippingFee float64 `gorm:"type:numeric(10,2);default:0" json:"shippingFee"`
	Tax         float64 `gorm:"type:numeric(10,2);default:0" json:"tax"`
	Total       float64 `gorm:"type:numeric(10,2);not null" json:"total"`
	Currency    string  `gorm:"size:3;default:'USD'" json:"currency"`

	PaymentMethod string `gorm:"size:20" json:"paymentMethod"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"paymentStatus"`

	ShippingAddress datatypes.JSON `json:"shippingAddress"`
	BillingAddress  datatypes.JSON `json:"billingAddress"`

	Notes          string `gorm:"type:text" json:"notes"`
	TrackingNumber string `gorm:"size:50" json:"trackingNumber"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderItem snapshots the product price at purchase time; later catalog
// changes never touch it.
type OrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OrderID   uint    `gorm:"index" json:"orderId"`
	ProductID uint    `json:"productId"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"type:numeric(10,2);not null" json:"unitPrice"`
	TotalPrice float64 `gorm:"type:numeric(10,2);not null" json:"totalPrice"`

	CreatedAt time.Time `json:"createdAt"`
}
