package models

import "time"

type Medicine struct {
	ID                   string  `gorm:"primaryKey;size:20" json:"id"`
	Name                 string  `gorm:"size:150;not null;uniqueIndex" json:"name"`
	Price                float64 `json:"price"`
	Company              string  `gorm:"size:150" json:"company"`
	Salt                 string  `gorm:"size:255" json:"salt"`
	PrescriptionRequired bool    `json:"prescription_required"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
