package models

import "time"

type Pharmacy struct {
	ID           string `gorm:"primaryKey;size:20" json:"id"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Address      string `gorm:"size:255" json:"address"`
	PhoneNo      string `gorm:"size:20" json:"phone_no"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the singular table the clinic has always used.
func (Pharmacy) TableName() string {
	return "pharmacy"
}
