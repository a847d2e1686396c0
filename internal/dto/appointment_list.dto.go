package dto

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

type AppointmentListDTO struct {
	ID          string `json:"id"`
	DoctorID    string `json:"doctor_id"`
	DoctorName  string `json:"doctor_name,omitempty"`
	PatientID   string `json:"patient_id"`
	PatientName string `json:"patient_name,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Note        string `json:"note"`
}

// FromAppointment uses whichever of Doctor and Patient were loaded.
func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:          ap.ID,
		DoctorID:    ap.DoctorID,
		DoctorName:  ap.Doctor.FullName(),
		PatientID:   ap.PatientID,
		PatientName: ap.Patient.FullName(),
		Date:        ap.Date,
		StartTime:   ap.StartTime,
		EndTime:     ap.EndTime,
		Note:        ap.Note,
	}
}
