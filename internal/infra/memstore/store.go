// Package memstore keeps every clinic store in process memory. Tests use it
// in place of the gorm repositories.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/order"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Store struct {
	mu sync.Mutex

	Doctors      map[string]models.Doctor
	Patients     map[string]models.Patient
	Pharmacies   map[string]models.Pharmacy
	Medicines    map[string]models.Medicine
	Appointments map[string]models.Appointment
	Orders       map[string]models.Order
	Counters     map[string]int64
	Events       []audit.Event

	// Err, when set, is returned by every call as a store failure.
	Err error
}

func New() *Store {
	return &Store{
		Doctors:      map[string]models.Doctor{},
		Patients:     map[string]models.Patient{},
		Pharmacies:   map[string]models.Pharmacy{},
		Medicines:    map[string]models.Medicine{},
		Appointments: map[string]models.Appointment{},
		Orders:       map[string]models.Order{},
		Counters:     map[string]int64{},
	}
}

func (s *Store) fail(op string) error {
	if s.Err != nil {
		return httperr.Transient(op, s.Err)
	}
	return nil
}

// --------------------------------------------------
// Directory
// --------------------------------------------------

func (s *Store) GetDoctor(_ context.Context, id string) (*models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("get doctor"); err != nil {
		return nil, err
	}
	d, ok := s.Doctors[id]
	if !ok {
		return nil, directory.ErrDoctorNotFound
	}
	return &d, nil
}

func (s *Store) ListDoctors(_ context.Context) ([]models.Doctor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("list doctors"); err != nil {
		return nil, err
	}
	out := make([]models.Doctor, 0, len(s.Doctors))
	for _, d := range s.Doctors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetPatient(_ context.Context, id string) (*models.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("get patient"); err != nil {
		return nil, err
	}
	p, ok := s.Patients[id]
	if !ok {
		return nil, directory.ErrPatientNotFound
	}
	return &p, nil
}

func (s *Store) PatientEmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("check patient email"); err != nil {
		return false, err
	}
	for _, p := range s.Patients {
		if strings.EqualFold(p.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) CreatePatient(_ context.Context, p *models.Patient) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("create patient"); err != nil {
		return err
	}
	s.Patients[p.ID] = *p
	return nil
}

func (s *Store) SearchPatientIDs(_ context.Context, term string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("search patients"); err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	out := []string{}
	for id, p := range s.Patients {
		if strings.Contains(strings.ToLower(p.FirstName), term) ||
			strings.Contains(strings.ToLower(p.LastName), term) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *Store) GetPharmacy(_ context.Context, id string) (*models.Pharmacy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("get pharmacy"); err != nil {
		return nil, err
	}
	ph, ok := s.Pharmacies[id]
	if !ok {
		return nil, directory.ErrPharmacyNotFound
	}
	return &ph, nil
}

func (s *Store) ListPharmacies(_ context.Context) ([]models.Pharmacy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("list pharmacies"); err != nil {
		return nil, err
	}
	out := make([]models.Pharmacy, 0, len(s.Pharmacies))
	for _, ph := range s.Pharmacies {
		out = append(out, ph)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) Next(_ context.Context, name string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("next counter"); err != nil {
		return 0, err
	}
	s.Counters[name]++
	return s.Counters[name], nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (s *Store) ListBookedIntervals(_ context.Context, doctorID, date string) ([]schedule.Interval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("list booked intervals"); err != nil {
		return nil, err
	}
	out := []schedule.Interval{}
	for _, ap := range s.Appointments {
		if ap.DoctorID == doctorID && ap.Date == date {
			out = append(out, domain.IntervalOf(ap))
		}
	}
	return out, nil
}

// InsertAppointment rejects overlaps the way the database constraint does.
func (s *Store) InsertAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("insert appointment"); err != nil {
		return err
	}
	candidate := domain.IntervalOf(*ap)
	for _, other := range s.Appointments {
		if other.DoctorID == ap.DoctorID && other.Date == ap.Date &&
			schedule.Overlaps(candidate, domain.IntervalOf(other)) {
			return domain.ErrSlotUnavailable
		}
	}
	s.Appointments[ap.ID] = *ap
	return nil
}

func (s *Store) withPeople(ap models.Appointment) models.Appointment {
	ap.Doctor = s.Doctors[ap.DoctorID]
	ap.Patient = s.Patients[ap.PatientID]
	return ap
}

func (s *Store) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("get appointment"); err != nil {
		return nil, err
	}
	ap, ok := s.Appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	ap = s.withPeople(ap)
	return &ap, nil
}

func (s *Store) ListAppointmentsForPatient(
	_ context.Context,
	patientID string,
	limit int,
	offset int,
) ([]models.Appointment, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("list patient appointments"); err != nil {
		return nil, 0, err
	}
	all := []models.Appointment{}
	for _, ap := range s.Appointments {
		if ap.PatientID == patientID {
			all = append(all, s.withPeople(ap))
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Date != all[j].Date {
			return all[i].Date > all[j].Date
		}
		return all[i].StartMinute > all[j].StartMinute
	})
	return page(all, limit, offset), int64(len(all)), nil
}

func (s *Store) ListAppointmentsForDoctor(_ context.Context, doctorID, date string) ([]models.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("list doctor appointments"); err != nil {
		return nil, err
	}
	out := []models.Appointment{}
	for _, ap := range s.Appointments {
		if ap.DoctorID == doctorID && ap.Date == date {
			out = append(out, s.withPeople(ap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartMinute < out[j].StartMinute })
	return out, nil
}

// --------------------------------------------------
// Orders
// --------------------------------------------------

func (s *Store) CreateOrders(_ context.Context, orders []models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("create orders"); err != nil {
		return err
	}
	// mirrors the foreign keys on the orders table; nothing is written on failure
	for _, o := range orders {
		if _, ok := s.Medicines[o.MedID]; !ok {
			return httperr.ErrValidation("reference_not_found", fmt.Sprintf("Medicine with id '%s' does not exist", o.MedID))
		}
		if _, ok := s.Patients[o.PatientID]; !ok {
			return httperr.ErrValidation("reference_not_found", fmt.Sprintf("Patient with id '%s' does not exist", o.PatientID))
		}
	}
	for _, o := range orders {
		s.Orders[o.ID] = o
	}
	return nil
}

func (s *Store) ListOrders(_ context.Context, f order.Filter, limit, offset int) ([]models.Order, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("list orders"); err != nil {
		return nil, 0, err
	}

	var allowed map[string]bool
	if f.PatientIDs != nil {
		allowed = map[string]bool{}
		for _, id := range f.PatientIDs {
			allowed[id] = true
		}
	}

	all := []models.Order{}
	for _, o := range s.Orders {
		if f.DoctorID != "" && o.DoctorID != f.DoctorID {
			continue
		}
		if f.PatientID != "" && o.PatientID != f.PatientID {
			continue
		}
		if f.PharmaID != "" && o.PharmaID != f.PharmaID {
			continue
		}
		if allowed != nil && !allowed[o.PatientID] {
			continue
		}
		o.Patient = s.Patients[o.PatientID]
		o.Doctor = s.Doctors[o.DoctorID]
		o.Pharma = s.Pharmacies[o.PharmaID]
		o.Medicine = s.Medicines[o.MedID]
		all = append(all, o)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Time.Equal(all[j].Time) {
			return all[i].Time.After(all[j].Time)
		}
		return all[i].ID > all[j].ID
	})
	return page(all, limit, offset), int64(len(all)), nil
}

// --------------------------------------------------
// Medicines
// --------------------------------------------------

func (s *Store) SearchMedicines(_ context.Context, term string, limit int) ([]models.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("search medicines"); err != nil {
		return nil, err
	}
	term = strings.ToLower(term)
	out := []models.Medicine{}
	for _, m := range s.Medicines {
		if strings.Contains(strings.ToLower(m.Name), term) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) FindMedicinesByName(_ context.Context, names []string) (map[string]models.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("find medicines"); err != nil {
		return nil, err
	}
	want := map[string]bool{}
	for _, n := range names {
		want[n] = true
	}
	out := map[string]models.Medicine{}
	for _, m := range s.Medicines {
		if want[m.Name] {
			out[m.Name] = m
		}
	}
	return out, nil
}

func (s *Store) FindMedicinesByID(_ context.Context, ids []string) (map[string]models.Medicine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("find medicines"); err != nil {
		return nil, err
	}
	out := map[string]models.Medicine{}
	for _, id := range ids {
		if m, ok := s.Medicines[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

func (s *Store) SaveMedicines(_ context.Context, meds []models.Medicine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("save medicines"); err != nil {
		return err
	}
	for _, m := range meds {
		s.Medicines[m.ID] = m
	}
	return nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

func (s *Store) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Events = append(s.Events, ev)
	return nil
}

// List mirrors the audit table, newest first. Time bounds are ignored.
func (s *Store) List(_ context.Context, q audit.Query) ([]models.AuditLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("list audit logs"); err != nil {
		return nil, 0, err
	}
	all := []models.AuditLog{}
	for i := len(s.Events) - 1; i >= 0; i-- {
		ev := s.Events[i]
		if q.ActorID != "" && ev.ActorID != q.ActorID {
			continue
		}
		if q.Action != "" && ev.Action != q.Action {
			continue
		}
		if q.Entity != "" && ev.Entity != q.Entity {
			continue
		}
		all = append(all, models.AuditLog{
			ID:       uint(i + 1),
			ActorID:  ev.ActorID,
			Action:   ev.Action,
			Entity:   ev.Entity,
			EntityID: ev.EntityID,
		})
	}
	return page(all, q.Limit, q.Offset), int64(len(all)), nil
}

// Actions returns the recorded audit actions in order.
func (s *Store) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.Events))
	for _, ev := range s.Events {
		out = append(out, ev.Action)
	}
	return out
}

func page[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return []T{}
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}
