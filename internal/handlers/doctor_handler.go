package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/usecase/patient"
)

// ======================================================
// HANDLER
// ======================================================

type DoctorHandler struct {
	register *patient.RegisterPatient
	day      *appointment.ListDoctorDay
	tz       string
}

func NewDoctorHandler(
	register *patient.RegisterPatient,
	day *appointment.ListDoctorDay,
	tz string,
) *DoctorHandler {
	return &DoctorHandler{register: register, day: day, tz: tz}
}

// ======================================================
// REQUESTS
// ======================================================

type AddPatientRequest struct {
	Email      string `json:"email" binding:"required,clinic_email"`
	Password   string `json:"password" binding:"required,password"`
	FirstName  string `json:"firstName" binding:"required,min=2,max=64"`
	LastName   string `json:"lastName" binding:"required,min=2,max=64"`
	Age        int    `json:"age" binding:"gte=0,lte=150"`
	DOB        string `json:"dob" binding:"omitempty,ymd"`
	PhoneNo    string `json:"phone_no" binding:"max=20"`
	BloodGroup string `json:"blood_grp" binding:"omitempty,blood_group"`
	IDType     string `json:"id_type" binding:"omitempty,oneof='Passport' 'Driver License' 'National ID'"`
	IDNumber   string `json:"id_number" binding:"max=50"`
}

// ======================================================
// PATIENTS
// ======================================================

func (h *DoctorHandler) AddNewPatient(c *gin.Context) {
	var req AddPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.register.Execute(c.Request.Context(), patient.RegisterPatientInput{
		DoctorID:   c.GetString(middleware.ContextUserID),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
		Age:        req.Age,
		DOB:        req.DOB,
		PhoneNo:    req.PhoneNo,
		BloodGroup: req.BloodGroup,
		IDType:     req.IDType,
		IDNumber:   req.IDNumber,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, "Patient added successfully!", p)
}

// ======================================================
// AGENDA
// ======================================================

// ViewAppointments lists the signed in doctor's day, today by default.
func (h *DoctorHandler) ViewAppointments(c *gin.Context) {
	doctorID := c.GetString(middleware.ContextUserID)
	if doctorID == "" {
		doctorID = c.Query("doctor_id")
	}
	if doctorID == "" {
		httperr.BadRequest(c, "doctor_id_required", "doctor_id is required")
		return
	}

	date := c.Query("date")
	if date == "" {
		date = timezone.Today(h.tz)
	}

	items, err := h.day.Execute(c.Request.Context(), doctorID, date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, "Appointments fetched", items)
}
