package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"userId"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	DentistID uint    `gorm:"index" json:"dentistId"`
	Dentist   Dentist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"dentist"`

	Date      string `gorm:"type:date;not null" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"startTime"`
	EndTime   string `gorm:"size:5;not null" json:"endTime"`

	ConsultationType string `gorm:"size:20;not null" json:"consultationType"` // video | clinic
	Reason           string `gorm:"type:text" json:"reason"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Price  int    `json:"price"` // cents

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
