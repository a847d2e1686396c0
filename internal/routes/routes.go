package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	domainAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	domainMedicine "github.com/BruksfildServices01/clinic-scheduler/internal/domain/medicine"
	domainOrder "github.com/BruksfildServices01/clinic-scheduler/internal/domain/order"
	"github.com/BruksfildServices01/clinic-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucMedicine "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/medicine"
	ucOrder "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/order"
	ucPatient "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/patient"
	ucProfile "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/profile"
)

// Deps are the singletons the routes are built from.
type Deps struct {
	Config *config.Config
	Log    *zap.Logger

	Appointments domainAppointment.Repository
	Doctors      directory.Doctors
	Patients     directory.Patients
	Pharmacies   directory.Pharmacies
	Counter      directory.Counter
	Orders       domainOrder.Repository
	Medicines    domainMedicine.Repository

	Locker      domainAppointment.Locker
	Audit       *audit.Dispatcher
	AuditReader handlers.AuditReader
}

// GormDeps wires every store to postgres through gorm.
func GormDeps(
	db *gorm.DB,
	cfg *config.Config,
	log *zap.Logger,
	locker domainAppointment.Locker,
	dispatcher *audit.Dispatcher,
) Deps {
	dir := infraRepo.NewDirectoryGormRepository(db)

	return Deps{
		Config:       cfg,
		Log:          log,
		Appointments: infraRepo.NewAppointmentGormRepository(db),
		Doctors:      dir,
		Patients:     dir,
		Pharmacies:   dir,
		Counter:      infraRepo.NewCounterGormRepository(db),
		Orders:       infraRepo.NewOrderGormRepository(db),
		Medicines:    infraRepo.NewMedicineGormRepository(db),
		Locker:       locker,
		Audit:        dispatcher,
		AuditReader:  audit.New(db),
	}
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigin))
	r.Use(middleware.NewRateLimiter(cfg.RateLimitPerMin, d.Log).Middleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(d.Doctors, d.Appointments)
	bookingUC := ucAppointment.NewBookAppointment(
		d.Doctors,
		d.Patients,
		d.Appointments,
		d.Counter,
		d.Locker,
		d.Audit,
		d.Log,
	)
	listPatientAppointmentsUC := ucAppointment.NewListPatientAppointments(d.Appointments)
	appointmentDataUC := ucAppointment.NewGetAppointmentData(d.Appointments)
	doctorDayUC := ucAppointment.NewListDoctorDay(d.Appointments)

	registerPatientUC := ucPatient.NewRegisterPatient(d.Patients, d.Counter, d.Audit, d.Log)
	profileUC := ucProfile.NewGetProfile(d.Doctors, d.Patients, d.Pharmacies)

	searchMedicinesUC := ucMedicine.NewSearchMedicines(d.Medicines)
	createOrdersUC := ucOrder.NewCreateOrders(
		d.Patients,
		d.Doctors,
		d.Pharmacies,
		d.Medicines,
		d.Counter,
		d.Orders,
		d.Audit,
		d.Log,
		cfg.ClinicTimezone,
	)
	listOrdersUC := ucOrder.NewListOrders(d.Patients, d.Orders)

	// ======================================================
	// HANDLERS
	// ======================================================
	patientHandler := handlers.NewPatientHandler(
		availabilityUC,
		bookingUC,
		listPatientAppointmentsUC,
		appointmentDataUC,
		d.Doctors,
	)
	doctorHandler := handlers.NewDoctorHandler(registerPatientUC, doctorDayUC, cfg.ClinicTimezone)
	profileHandler := handlers.NewProfileHandler(profileUC)
	orderHandler := handlers.NewOrderHandler(searchMedicinesUC, createOrdersUC, listOrdersUC, d.Pharmacies)
	medicineHandler := handlers.NewMedicineHandler(searchMedicinesUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditReader, cfg.ClinicTimezone)

	patientAuth := middleware.SessionAuth(cfg, middleware.RolePatient)
	doctorAuth := middleware.SessionAuth(cfg, middleware.RoleDoctor)
	pharmaAuth := middleware.SessionAuth(cfg, middleware.RolePharma)

	// ======================================================
	// PATIENTS
	// ======================================================
	patients := r.Group("/patients")
	{
		patients.GET("/logout", middleware.Logout(cfg, middleware.RolePatient))

		patients.Use(patientAuth)
		patients.GET("/checkDoctorAvailability", patientHandler.CheckDoctorAvailability)
		patients.POST("/checkDoctorAvailability", patientHandler.CheckDoctorAvailability)
		patients.POST("/createNewAppointment", patientHandler.CreateNewAppointment)
		patients.GET("/viewAppointments", patientHandler.ViewAppointments)
		patients.GET("/viewAppointmentData", patientHandler.ViewAppointmentData)
		patients.GET("/getDoctors", patientHandler.GetDoctors)
		patients.GET("/getUserProfile/:id", profileHandler.GetUserProfile)
		patients.GET("/me", profileHandler.GetMe)
		patients.GET("/auditLogs", auditLogsHandler.List)
	}

	// ======================================================
	// DOCTORS
	// ======================================================
	doctors := r.Group("/doctors")
	{
		doctors.GET("/logout", middleware.Logout(cfg, middleware.RoleDoctor))

		doctors.Use(doctorAuth)
		doctors.POST("/addNewPatient", doctorHandler.AddNewPatient)
		doctors.GET("/viewAppointments", doctorHandler.ViewAppointments)
		doctors.GET("/me", profileHandler.GetMe)
		doctors.GET("/auditLogs", auditLogsHandler.List)
	}

	// ======================================================
	// PHARMACY
	// ======================================================
	pharmacy := r.Group("/pharmacy")
	{
		pharmacy.GET("/logout", middleware.Logout(cfg, middleware.RolePharma))

		pharmacy.Use(pharmaAuth)
		pharmacy.GET("/me", profileHandler.GetMe)
	}

	// ======================================================
	// ORDERS
	// ======================================================
	orders := r.Group("/orders")
	{
		orders.GET("/searchMedicines", doctorAuth, orderHandler.SearchMedicines)
		orders.GET("/getPharmacy", doctorAuth, orderHandler.GetPharmacy)
		orders.POST("/createNewOrder", doctorAuth, orderHandler.CreateNewOrder)
		// any signed in role may list orders, filtered by type
		orders.GET("/getOrders", anyRole(cfg), orderHandler.GetOrders)
	}

	// ======================================================
	// MEDICINES
	// ======================================================
	r.GET("/medicines/getMedsByName", medicineHandler.GetMedsByName)
}

// anyRole admits a request holding a session cookie for the listing type.
func anyRole(cfg *config.Config) gin.HandlerFunc {
	byRole := map[string]gin.HandlerFunc{
		middleware.RoleDoctor:  middleware.SessionAuth(cfg, middleware.RoleDoctor),
		middleware.RolePatient: middleware.SessionAuth(cfg, middleware.RolePatient),
		middleware.RolePharma:  middleware.SessionAuth(cfg, middleware.RolePharma),
	}
	return func(c *gin.Context) {
		role := c.Query("type")
		if role == "" {
			role = middleware.RoleDoctor
		}
		auth, ok := byRole[role]
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success":    false,
				"error_code": "invalid_type",
				"message":    "type must be doctor, patient or pharma",
			})
			return
		}
		auth(c)
	}
}
