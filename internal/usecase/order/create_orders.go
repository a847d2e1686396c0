package order

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/directory"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/ids"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/medicine"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/order"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type MedicineLine struct {
	MedID    string
	Quantity int
	Price    float64
	Timings  models.Timings
}

type CreateOrdersInput struct {
	AppointmentID string
	PatientID     string
	DoctorID      string
	PharmaID      string
	Medicines     []MedicineLine
}

type CreateOrders struct {
	patients   directory.Patients
	doctors    directory.Doctors
	pharmacies directory.Pharmacies
	medicines  medicine.Repository
	counter    directory.Counter
	repo       domain.Repository
	audit      *audit.Dispatcher
	log        *zap.Logger

	now func() time.Time
}

func NewCreateOrders(
	patients directory.Patients,
	doctors directory.Doctors,
	pharmacies directory.Pharmacies,
	medicines medicine.Repository,
	counter directory.Counter,
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
	tz string,
) *CreateOrders {
	return &CreateOrders{
		patients:   patients,
		doctors:    doctors,
		pharmacies: pharmacies,
		medicines:  medicines,
		counter:    counter,
		repo:       repo,
		audit:      audit,
		log:        log,
		now:        func() time.Time { return timezone.NowIn(tz) },
	}
}

// Execute writes one order per medicine line and returns their ids.
func (uc *CreateOrders) Execute(ctx context.Context, in CreateOrdersInput) ([]string, error) {
	if len(in.Medicines) == 0 {
		return nil, httperr.ErrValidation("medicines_required", "At least one medicine is required")
	}
	for _, m := range in.Medicines {
		if m.MedID == "" || m.Quantity <= 0 || m.Price < 0 {
			return nil, httperr.ErrValidation("invalid_medicine_line", "Each medicine needs med_id, a positive quantity and a price")
		}
	}

	// An order points at existing records; a missing one is bad input here.
	if _, err := uc.patients.GetPatient(ctx, in.PatientID); err != nil {
		return nil, missingAsInvalid(err, "Patient", in.PatientID)
	}
	if _, err := uc.doctors.GetDoctor(ctx, in.DoctorID); err != nil {
		return nil, missingAsInvalid(err, "Doctor", in.DoctorID)
	}
	if _, err := uc.pharmacies.GetPharmacy(ctx, in.PharmaID); err != nil {
		return nil, missingAsInvalid(err, "Pharmacy", in.PharmaID)
	}
	if err := uc.checkMedicines(ctx, in.Medicines); err != nil {
		return nil, err
	}

	now := uc.now()
	orders := make([]models.Order, 0, len(in.Medicines))
	orderIDs := make([]string, 0, len(in.Medicines))

	for _, m := range in.Medicines {
		n, err := uc.counter.Next(ctx, ids.CounterOrders)
		if err != nil {
			return nil, err
		}
		id := ids.Format(ids.PrefixOrder, n)

		orders = append(orders, models.Order{
			ID:            id,
			AppointmentID: in.AppointmentID,
			PatientID:     in.PatientID,
			DoctorID:      in.DoctorID,
			PharmaID:      in.PharmaID,
			MedID:         m.MedID,
			Time:          now,
			Quantity:      m.Quantity,
			Price:         m.Price,
			Status:        models.OrderStatusCreated,
			Timings:       m.Timings,
		})
		orderIDs = append(orderIDs, id)
	}

	if err := uc.repo.CreateOrders(ctx, orders); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  in.DoctorID,
		Action:   audit.ActionOrderCreated,
		Entity:   "order",
		EntityID: in.AppointmentID,
		Metadata: map[string]any{"order_ids": orderIDs},
	})
	uc.log.Info("orders created",
		zap.String("patient_id", in.PatientID),
		zap.Strings("order_ids", orderIDs),
	)

	return orderIDs, nil
}

// checkMedicines runs before any counter is drawn so a bad line burns no ids.
func (uc *CreateOrders) checkMedicines(ctx context.Context, lines []MedicineLine) error {
	seen := make(map[string]bool, len(lines))
	medIDs := make([]string, 0, len(lines))
	for _, m := range lines {
		if !seen[m.MedID] {
			seen[m.MedID] = true
			medIDs = append(medIDs, m.MedID)
		}
	}

	found, err := uc.medicines.FindMedicinesByID(ctx, medIDs)
	if err != nil {
		return err
	}
	for _, id := range medIDs {
		if _, ok := found[id]; !ok {
			return referenceNotFound("Medicine", id)
		}
	}
	return nil
}

func missingAsInvalid(err error, label, id string) error {
	if httperr.KindOf(err) != httperr.KindNotFound {
		return err
	}
	return referenceNotFound(label, id)
}

func referenceNotFound(label, id string) error {
	return httperr.ErrValidation(
		"reference_not_found",
		fmt.Sprintf("%s with id '%s' does not exist", label, id),
	)
}
