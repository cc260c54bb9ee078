package models

import "time"

type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DentistID uint    `gorm:"index" json:"dentistId"`
	Dentist   Dentist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date      string `gorm:"type:date;not null" json:"date"`       // 2006-01-02
	StartTime string `gorm:"size:5;not null" json:"startTime"`     // 15:04
	EndTime   string `gorm:"size:5;not null" json:"endTime"`

	IsAvailable bool `gorm:"default:true" json:"isAvailable"`

	CreatedAt time.Time `json:"createdAt"`
}
