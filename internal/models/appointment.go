package models

import "time"

// Appointment is immutable once booked.
type Appointment struct {
	ID string `gorm:"primaryKey;size:20" json:"id"`

	DoctorID  string  `gorm:"size:20;not null;index:idx_appointments_doctor_date" json:"doctor_id"`
	Doctor    Doctor  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`
	PatientID string  `gorm:"size:20;not null;index" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Date      string `gorm:"size:10;not null;index:idx_appointments_doctor_date" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	// minute offsets backing the overlap constraint
	StartMinute int `gorm:"not null" json:"-"`
	EndMinute   int `gorm:"not null" json:"-"`

	Note string `gorm:"size:500" json:"note"`

	CreatedAt time.Time `json:"created_at"`
}
