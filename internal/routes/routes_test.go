package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/config"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/memstore"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
	if err := validators.RegisterWithGin(); err != nil {
		panic(err)
	}
}

type server struct {
	t      *testing.T
	engine *gin.Engine
	store  *memstore.Store
}

func newServer(t *testing.T) *server {
	t.Helper()

	s := memstore.New()
	s.Doctors["DOC-0001"] = models.Doctor{
		ID:         "DOC-0001",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Speciality: "Cardiology",
		VisitingHours: map[string]models.DayHours{
			"monday": {Start: "09:00", End: "10:30"},
		},
	}
	s.Patients["PAT-0001"] = models.Patient{ID: "PAT-0001", FirstName: "Alan", LastName: "Turing", Email: "alan@x.io"}
	s.Pharmacies["PHAR-0001"] = models.Pharmacy{ID: "PHAR-0001", Name: "Central"}
	s.Medicines["MED-0001"] = models.Medicine{ID: "MED-0001", Name: "Paracetamol", Price: 2}
	s.Counters["Patients"] = 1

	dispatcher := audit.NewDispatcher(s, zap.NewNop())
	t.Cleanup(dispatcher.Close)

	cfg := &config.Config{JWTSecret: secret, ClinicTimezone: "UTC"}
	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:       cfg,
		Log:          zap.NewNop(),
		Appointments: s,
		Doctors:      s,
		Patients:     s,
		Pharmacies:   s,
		Counter:      s,
		Orders:       s,
		Medicines:    s,
		Locker:       lock.NewMemoryLocker(),
		Audit:        dispatcher,
		AuditReader:  s,
	})

	return &server{t: t, engine: r, store: s}
}

func (s *server) cookie(role, id string) *http.Cookie {
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"_id": id,
		"exp": time.Now().Add(30 * time.Minute).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(s.t, err)
	return &http.Cookie{Name: "jwt_" + role, Value: tok}
}

func (s *server) do(method, path string, body any, cookie *http.Cookie) (*httptest.ResponseRecorder, map[string]any) {
	var rdr *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		rdr = bytes.NewReader(b)
	} else {
		rdr = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	out := map[string]any{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

// ======================================================
// AVAILABILITY + BOOKING
// ======================================================

func TestHealth(t *testing.T) {
	s := newServer(t)
	w, body := s.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestCheckDoctorAvailability(t *testing.T) {
	s := newServer(t)
	patient := s.cookie("patient", "PAT-0001")

	w, body := s.do(http.MethodGet, "/patients/checkDoctorAvailability?doctor_id=DOC-0001&date=2025-01-06", nil, patient)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{"09:00", "09:30", "10:00"}, body["data"])

	w, body = s.do(http.MethodPost, "/patients/checkDoctorAvailability",
		map[string]string{"doctor_id": "DOC-0001", "date": "2025-01-06"}, patient)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], 3)

	w, _ = s.do(http.MethodGet, "/patients/checkDoctorAvailability?doctor_id=DOC-0001&date=2025-01-06", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body = s.do(http.MethodGet, "/patients/checkDoctorAvailability?doctor_id=DOC-0001", nil, patient)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", body["error_code"])

	w, body = s.do(http.MethodGet, "/patients/checkDoctorAvailability?doctor_id=DOC-0404&date=2025-01-06", nil, patient)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "doctor_not_found", body["error_code"])

	w, body = s.do(http.MethodGet, "/patients/checkDoctorAvailability?doctor_id=DOC-0001&date=2025-01-07", nil, patient)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "no_working_hours", body["error_code"])
}

func TestCreateNewAppointment(t *testing.T) {
	s := newServer(t)
	patient := s.cookie("patient", "PAT-0001")

	req := map[string]string{
		"doctor_id":  "DOC-0001",
		"patient_id": "PAT-0001",
		"date":       "2025-01-06",
		"start_time": "09:30",
		"note":       "checkup",
	}

	w, body := s.do(http.MethodPost, "/patients/createNewAppointment", req, patient)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "APT-0001", body["appointmentId"])

	w, body = s.do(http.MethodPost, "/patients/createNewAppointment", req, patient)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "slot_unavailable", body["error_code"])

	_, body = s.do(http.MethodGet, "/patients/checkDoctorAvailability?doctor_id=DOC-0001&date=2025-01-06", nil, patient)
	assert.Equal(t, []any{"09:00", "10:00"}, body["data"])

	req["start_time"] = "10:15"
	w, body = s.do(http.MethodPost, "/patients/createNewAppointment", req, patient)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "outside_working_hours", body["error_code"])

	req["start_time"] = "10:00"
	req["patient_id"] = "PAT-0002"
	w, body = s.do(http.MethodPost, "/patients/createNewAppointment", req, patient)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "patient_mismatch", body["error_code"])

	w, body = s.do(http.MethodPost, "/patients/createNewAppointment", req, s.cookie("patient", "PAT-0002"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "patient_not_found", body["error_code"])

	delete(req, "start_time")
	w, _ = s.do(http.MethodPost, "/patients/createNewAppointment", req, patient)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStoreFailureIs500(t *testing.T) {
	s := newServer(t)
	s.store.Err = errors.New("connection refused")

	w, body := s.do(http.MethodGet, "/patients/checkDoctorAvailability?doctor_id=DOC-0001&date=2025-01-06", nil, s.cookie("patient", "PAT-0001"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "store_unavailable", body["error_code"])
}

// ======================================================
// LISTINGS / PROFILE
// ======================================================

func TestAppointmentListings(t *testing.T) {
	s := newServer(t)
	patient := s.cookie("patient", "PAT-0001")

	for _, start := range []string{"09:00", "10:00"} {
		w, _ := s.do(http.MethodPost, "/patients/createNewAppointment", map[string]string{
			"doctor_id": "DOC-0001", "patient_id": "PAT-0001", "date": "2025-01-06", "start_time": start,
		}, patient)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, body := s.do(http.MethodGet, "/patients/viewAppointments?limit=1&currentPageNo=2", nil, patient)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, body["total"])
	assert.EqualValues(t, 2, body["currentPageNo"])
	require.Len(t, body["data"], 1)

	w, body = s.do(http.MethodGet, "/patients/viewAppointmentData?id=APT-0001", nil, patient)
	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Ada Lovelace", data["doctor_name"])

	w, _ = s.do(http.MethodGet, "/patients/viewAppointmentData?id=APT-0404", nil, patient)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// another patient's records stay private
	s.store.Patients["PAT-0002"] = models.Patient{ID: "PAT-0002", FirstName: "Grace", LastName: "Hopper"}
	s.store.Appointments["APT-0900"] = models.Appointment{
		ID: "APT-0900", DoctorID: "DOC-0001", PatientID: "PAT-0002",
		Date: "2025-01-07", StartTime: "09:00", EndTime: "09:30", StartMinute: 540, EndMinute: 570,
		Note: "private diagnosis",
	}

	w, body = s.do(http.MethodGet, "/patients/viewAppointments?patient_id=PAT-0002", nil, patient)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "patient_mismatch", body["error_code"])

	w, body = s.do(http.MethodGet, "/patients/viewAppointmentData?id=APT-0900", nil, patient)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "private diagnosis")

	w, _ = s.do(http.MethodGet, "/patients/viewAppointmentData?id=APT-0900", nil, s.cookie("patient", "PAT-0002"))
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = s.do(http.MethodGet, "/doctors/viewAppointments?date=2025-01-06", nil, s.cookie("doctor", "DOC-0001"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], 2)
}

func TestDirectoryAndProfile(t *testing.T) {
	s := newServer(t)
	patient := s.cookie("patient", "PAT-0001")

	w, body := s.do(http.MethodGet, "/patients/getDoctors", nil, patient)
	require.Equal(t, http.StatusOK, w.Code)
	docs := body["data"].([]any)
	require.Len(t, docs, 1)
	assert.Equal(t, "Ada Lovelace", docs[0].(map[string]any)["name"])

	w, body = s.do(http.MethodGet, "/patients/getUserProfile/DOC-0001", nil, patient)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, body["data"], "password_hash")

	w, _ = s.do(http.MethodGet, "/patients/getUserProfile/XYZ-1", nil, patient)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = s.do(http.MethodGet, "/patients/me", nil, patient)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "PAT-0001", body["data"].(map[string]any)["id"])
}

// ======================================================
// DOCTORS
// ======================================================

func TestAddNewPatient(t *testing.T) {
	s := newServer(t)
	doctor := s.cookie("doctor", "DOC-0001")

	req := map[string]any{
		"email":     "grace@x.io",
		"password":  "cobol60",
		"firstName": "Grace",
		"lastName":  "Hopper",
		"age":       85,
		"blood_grp": "A+",
	}

	w, body := s.do(http.MethodPost, "/doctors/addNewPatient", req, doctor)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data := body["data"].(map[string]any)
	assert.Equal(t, "PAT-0002", data["id"])
	assert.Equal(t, "DOC-0001", data["gp_id"])
	assert.NotContains(t, data, "password_hash")

	w, body = s.do(http.MethodPost, "/doctors/addNewPatient", req, doctor)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "patient_exists", body["error_code"])

	req["email"] = "other@x.io"
	req["password"] = "nodigits"
	w, body = s.do(http.MethodPost, "/doctors/addNewPatient", req, doctor)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["message"], "digit")

	w, _ = s.do(http.MethodPost, "/doctors/addNewPatient", req, s.cookie("patient", "PAT-0001"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// ======================================================
// ORDERS / MEDICINES
// ======================================================

func TestOrders(t *testing.T) {
	s := newServer(t)
	doctor := s.cookie("doctor", "DOC-0001")

	w, body := s.do(http.MethodGet, "/orders/searchMedicines?name=para", nil, doctor)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], 1)

	w, body = s.do(http.MethodGet, "/orders/getPharmacy", nil, doctor)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Central", body["data"].([]any)[0].(map[string]any)["name"])

	order := map[string]any{
		"appointment_id": "APT-0001",
		"patient_id":     "PAT-0001",
		"doctor_id":      "DOC-0001",
		"pharma_id":      "PHAR-0001",
		"medicines": []map[string]any{
			{"med_id": "MED-0001", "quantity": 2, "price": 2, "timings": map[string]bool{"after_dinner_med": true}},
		},
	}
	w, body = s.do(http.MethodPost, "/orders/createNewOrder", order, doctor)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, []any{"ORD-0001"}, body["order_ids"])

	order["pharma_id"] = "PHAR-0404"
	w, body = s.do(http.MethodPost, "/orders/createNewOrder", order, doctor)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Pharmacy with id 'PHAR-0404' does not exist", body["message"])

	order["pharma_id"] = "PHAR-0001"
	order["medicines"] = []map[string]any{{"med_id": "MED-9999", "quantity": 1, "price": 1}}
	w, body = s.do(http.MethodPost, "/orders/createNewOrder", order, doctor)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "reference_not_found", body["error_code"])
	assert.Equal(t, "Medicine with id 'MED-9999' does not exist", body["message"])

	order["medicines"] = []map[string]any{}
	w, _ = s.do(http.MethodPost, "/orders/createNewOrder", order, doctor)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, body = s.do(http.MethodGet, "/orders/getOrders?type=doctor&doctor_id=DOC-0001", nil, doctor)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["totalOrders"])
	first := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Paracetamol", first["medicine_name"])
	assert.Equal(t, "Created", first["status"])

	w, _ = s.do(http.MethodGet, "/orders/getOrders?type=doctor", nil, doctor)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = s.do(http.MethodGet, "/orders/getOrders?type=pharma&pharma_id=PHAR-0001", nil, doctor)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, body = s.do(http.MethodGet, "/orders/getOrders?type=pharma&pharma_id=PHAR-0001&patientSearch=tur", nil, s.cookie("pharma", "PHAR-0001"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["totalOrders"])
}

func TestGetMedsByName(t *testing.T) {
	s := newServer(t)

	w, body := s.do(http.MethodGet, "/medicines/getMedsByName?name=Parac", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	med := body["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "MED-0001", med["id"])
	assert.NotContains(t, med, "salt")

	w, body = s.do(http.MethodGet, "/medicines/getMedsByName?name=Pa", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "search_term_too_short", body["error_code"])
}

func TestAuditLogs(t *testing.T) {
	s := newServer(t)
	s.store.Events = append(s.store.Events,
		audit.Event{ActorID: "DOC-0001", Action: audit.ActionPatientCreated, Entity: "patient"},
		audit.Event{ActorID: "DOC-0002", Action: audit.ActionPatientCreated, Entity: "patient"},
	)

	w, body := s.do(http.MethodGet, "/doctors/auditLogs", nil, s.cookie("doctor", "DOC-0001"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total"])

	w, _ = s.do(http.MethodGet, "/doctors/auditLogs?from=yesterday", nil, s.cookie("doctor", "DOC-0001"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
