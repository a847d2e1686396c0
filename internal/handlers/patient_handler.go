package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type PatientHandler struct {
	availability *appointment.GetAvailability
	booking      *appointment.BookAppointment
	list         *appointment.ListPatientAppointments
	detail       *appointment.GetAppointmentData
	doctors      directory.Doctors
}

func NewPatientHandler(
	availability *appointment.GetAvailability,
	booking *appointment.BookAppointment,
	list *appointment.ListPatientAppointments,
	detail *appointment.GetAppointmentData,
	doctors directory.Doctors,
) *PatientHandler {
	return &PatientHandler{
		availability: availability,
		booking:      booking,
		list:         list,
		detail:       detail,
		doctors:      doctors,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AvailabilityRequest struct {
	DoctorID string `form:"doctor_id" json:"doctor_id" binding:"required"`
	Date     string `form:"date" json:"date" binding:"required"`
}

type CreateAppointmentRequest struct {
	DoctorID  string `json:"doctor_id" binding:"required"`
	PatientID string `json:"patient_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	Note      string `json:"note" binding:"max=500"`
}

type DoctorSummary struct {
	ID            string                     `json:"id"`
	Name          string                     `json:"name"`
	Speciality    string                     `json:"speciality"`
	VisitingHours map[string]models.DayHours `json:"visiting_hours"`
}

// ======================================================
// AVAILABILITY
// ======================================================

// CheckDoctorAvailability accepts the query string on GET and a JSON body on POST.
func (h *PatientHandler) CheckDoctorAvailability(c *gin.Context) {
	var req AvailabilityRequest

	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&req)
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		bindError(c, err)
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), req.DoctorID, req.Date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, "Available slots fetched", slots)
}

// ======================================================
// BOOKING
// ======================================================

func (h *PatientHandler) CreateNewAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	if !sameSubject(c, req.PatientID) {
		httperr.Forbidden(c, "patient_mismatch", "Cannot book an appointment for another patient")
		return
	}

	ap, err := h.booking.Execute(c.Request.Context(), appointment.BookAppointmentInput{
		DoctorID:  req.DoctorID,
		PatientID: req.PatientID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Note:      req.Note,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message":       "Appointment created successfully",
		"appointmentId": ap.ID,
	})
}

// ======================================================
// LISTINGS
// ======================================================

func (h *PatientHandler) ViewAppointments(c *gin.Context) {
	patientID := c.Query("patient_id")
	if patientID == "" {
		patientID = c.GetString(middleware.ContextUserID)
	}
	if patientID == "" {
		httperr.BadRequest(c, "patient_id_required", "patient_id is required")
		return
	}
	if !sameSubject(c, patientID) {
		httperr.Forbidden(c, "patient_mismatch", "Cannot view another patient's appointments")
		return
	}

	page, limit := pagination(c)

	items, total, err := h.list.Execute(c.Request.Context(), patientID, page, limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Page(c, "Appointments fetched", page, limit, total, items)
}

func (h *PatientHandler) ViewAppointmentData(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		httperr.BadRequest(c, "appointment_id_required", "Appointment ID is required")
		return
	}

	ap, err := h.detail.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if !sameSubject(c, ap.PatientID) {
		httperr.Forbidden(c, "patient_mismatch", "Cannot view another patient's appointments")
		return
	}

	httpresp.OK(c, "Appointment fetched", ap)
}

// sameSubject holds when the patient session acts on its own records.
func sameSubject(c *gin.Context, patientID string) bool {
	sub := c.GetString(middleware.ContextUserID)
	return sub != "" && sub == patientID
}

func (h *PatientHandler) GetDoctors(c *gin.Context) {
	docs, err := h.doctors.ListDoctors(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	out := make([]DoctorSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, DoctorSummary{
			ID:            d.ID,
			Name:          d.FullName(),
			Speciality:    d.Speciality,
			VisitingHours: d.VisitingHours,
		})
	}

	httpresp.OK(c, "Doctors fetched", out)
}
