package models

import (
	"strings"
	"time"
)

const (
	IDTypePassport      = "Passport"
	IDTypeDriverLicense = "Driver License"
	IDTypeNationalID    = "National ID"
)

var BloodGroups = []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}

type Patient struct {
	ID           string `gorm:"primaryKey;size:20" json:"id"`
	FirstName    string `gorm:"size:64;not null;index" json:"first_name"`
	LastName     string `gorm:"size:64;not null;index" json:"last_name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Age          int    `json:"age"`
	DOB          string `gorm:"size:10" json:"dob"`
	PhoneNo      string `gorm:"size:20;index" json:"phone_no"`
	BloodGroup   string `gorm:"size:3;index" json:"blood_grp"`
	IDType       string `gorm:"size:20" json:"id_type"`
	IDNumber     string `gorm:"size:50" json:"id_number"`
	// GPID is the doctor that registered the patient.
	GPID string `gorm:"size:20;index" json:"gp_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Patient) FullName() string {
	return joinName(p.FirstName, p.LastName)
}

func joinName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
