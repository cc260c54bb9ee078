package models

import (
	"time"

	"gorm.io/datatypes"
)

type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:150;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Category    string `gorm:"size:50;index;not null" json:"category"`
	Brand       string `gorm:"size:100" json:"brand"`

	Price         float64  `gorm:"type:numeric(10,2);not null" json:"price"`
	OriginalPrice *float64 `gorm:"type:numeric(10,2)" json:"originalPrice"`
	Currency      string   `gorm:"size:3;default:'USD'" json:"currency"`

	StockQuantity int `gorm:"default:0" json:"stockQuantity"`

	Images datatypes.JSON `json:"images"`
	Tags   datatypes.JSON `json:"tags"`

	IsActive      bool `gorm:"default:true" json:"isActive"`
	IsFeatured    bool `gorm:"default:false" json:"isFeatured"`
	IsRecommended bool `gorm:"default:false" json:"isRecommended"`

	Specifications datatypes.JSON `json:"specifications"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
