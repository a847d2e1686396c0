package models

import "time"

// DayHours is one weekday's visiting window as stored, "HH:MM" strings.
type DayHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type Doctor struct {
	ID           string `gorm:"primaryKey;size:20" json:"id"`
	FirstName    string `gorm:"size:64;not null" json:"first_name"`
	LastName     string `gorm:"size:64;not null" json:"last_name"`
	DOB          string `gorm:"size:10" json:"dob"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Speciality   string `gorm:"size:100" json:"speciality"`

	// keyed by lowercase weekday name; a missing day means closed
	VisitingHours map[string]DayHours `gorm:"type:jsonb;serializer:json" json:"visiting_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d Doctor) FullName() string {
	return joinName(d.FirstName, d.LastName)
}
