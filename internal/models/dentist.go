package models

import "time"

type Dentist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:100;not null" json:"specialty"`
	Education string `gorm:"size:255" json:"education"`
	Location  string `gorm:"size:255" json:"location"`
	Avatar    string `gorm:"size:255" json:"avatar"`

	// Denormalized aggregates, written at seed time and never recomputed.
	Rating      float64 `gorm:"type:numeric(2,1)" json:"rating"`
	ReviewCount int     `gorm:"default:0" json:"reviewCount"`

	PriceFrom    int  `json:"priceFrom"` // cents
	OffersVideo  bool `gorm:"default:true" json:"offersVideo"`
	OffersClinic bool `gorm:"default:true" json:"offersClinic"`

	Bio string `gorm:"type:text" json:"bio"`

	CreatedAt time.Time `json:"createdAt"`
}
