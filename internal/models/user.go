package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PhoneNumber string `gorm:"size:20;uniqueIndex;not null" json:"phoneNumber"`
	Email       string `gorm:"size:100;uniqueIndex" json:"email"`
	FirstName   string `gorm:"size:100" json:"firstName"`
	LastName    string `gorm:"size:100" json:"lastName"`

	ProfileImageURL string `gorm:"size:255" json:"profileImageUrl"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
