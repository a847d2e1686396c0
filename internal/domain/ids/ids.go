// Package ids mints and reads the human readable identifiers (APT-0001,
// ORD-0042, ...) the clinic uses instead of surrogate keys.
package ids

import (
	"fmt"
	"strconv"
	"strings"
)

// Counter names, one per table.
const (
	CounterDoctors      = "Doctors"
	CounterPatients     = "Patients"
	CounterPharmacy     = "Pharmacy"
	CounterMedicines    = "Medicines"
	CounterAppointments = "Appointments"
	CounterOrders       = "Orders"
)

const (
	PrefixDoctor      = "DOC"
	PrefixPatient     = "PAT"
	PrefixPharmacy    = "PHAR"
	PrefixMedicine    = "MED"
	PrefixAppointment = "APT"
	PrefixOrder       = "ORD"
)

// Counters lists every counter with the table whose ids it issues.
var Counters = map[string]string{
	CounterDoctors:      "doctors",
	CounterPatients:     "patients",
	CounterPharmacy:     "pharmacy",
	CounterMedicines:    "medicines",
	CounterAppointments: "appointments",
	CounterOrders:       "orders",
}

func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s-%04d", prefix, n)
}

// Numeric returns the trailing number of id, or 0 when there is none.
func Numeric(id string) int64 {
	end := len(id)
	start := end
	for start > 0 && id[start-1] >= '0' && id[start-1] <= '9' {
		start--
	}
	if start == end {
		return 0
	}
	n, err := strconv.ParseInt(id[start:end], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Kind is the entity an id prefix points at.
type Kind int

const (
	KindUnknown Kind = iota
	KindDoctor
	KindPatient
	KindPharmacy
)

func KindOf(id string) Kind {
	switch {
	case strings.HasPrefix(id, PrefixDoctor):
		return KindDoctor
	case strings.HasPrefix(id, PrefixPatient):
		return KindPatient
	case strings.HasPrefix(id, PrefixPharmacy):
		return KindPharmacy
	default:
		return KindUnknown
	}
}
