package dto

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type OrderDTO struct {
	ID            string         `json:"id"`
	AppointmentID string         `json:"appointment_id"`
	PatientID     string         `json:"patient_id"`
	PatientName   string         `json:"patient_name"`
	DoctorID      string         `json:"doctor_id"`
	DoctorName    string         `json:"doctor_name"`
	PharmaID      string         `json:"pharma_id"`
	PharmaName    string         `json:"pharma_name"`
	MedID         string         `json:"med_id"`
	MedicineName  string         `json:"medicine_name"`
	Time          time.Time      `json:"time"`
	Quantity      int            `json:"quantity"`
	Price         float64        `json:"price"`
	Status        string         `json:"status"`
	Timings       models.Timings `json:"timings"`
}

func FromOrder(o models.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID,
		AppointmentID: o.AppointmentID,
		PatientID:     o.PatientID,
		PatientName:   o.Patient.FullName(),
		DoctorID:      o.DoctorID,
		DoctorName:    o.Doctor.FullName(),
		PharmaID:      o.PharmaID,
		PharmaName:    o.Pharma.Name,
		MedID:         o.MedID,
		MedicineName:  o.Medicine.Name,
		Time:          o.Time,
		Quantity:      o.Quantity,
		Price:         o.Price,
		Status:        o.Status,
		Timings:       o.Timings,
	}
}
