package models

import "time"

type ProductReview struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProductID uint    `gorm:"index" json:"productId"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	UserID uint `json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Rating  int    `gorm:"not null" json:"rating"` // 1..5
	Title   string `gorm:"size:150" json:"title"`
	Comment string `gorm:"type:text" json:"comment"`

	IsVerifiedPurchase bool `gorm:"default:false" json:"isVerifiedPurchase"`

	CreatedAt time.Time `json:"createdAt"`
}
