package models

import "time"

const (
	OrderStatusCreated    = "Created"
	OrderStatusDispatched = "Dispatched"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// Timings are the dosage flags printed on the prescription.
type Timings struct {
	BeforeMorningMed bool `json:"before_morning_med"`
	AfterMorningMed  bool `json:"after_morning_med"`
	BeforeEveningMed bool `json:"before_evening_med"`
	AfterEveningMed  bool `json:"after_evening_med"`
	BeforeDinnerMed  bool `json:"before_dinner_med"`
	AfterDinnerMed   bool `json:"after_dinner_med"`
}

type Order struct {
	ID            string `gorm:"primaryKey;size:20" json:"id"`
	AppointmentID string `gorm:"size:20;index" json:"appointment_id"`

	PatientID string   `gorm:"size:20;index" json:"patient_id"`
	Patient   Patient  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	DoctorID  string   `gorm:"size:20;index" json:"doctor_id"`
	Doctor    Doctor   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	PharmaID  string   `gorm:"size:20;index" json:"pharma_id"`
	Pharma    Pharmacy `gorm:"foreignKey:PharmaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	MedID     string   `gorm:"size:20" json:"med_id"`
	Medicine  Medicine `gorm:"foreignKey:MedID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Time     time.Time `json:"time"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Status   string    `gorm:"size:20;default:'Created'" json:"status"`
	Timings  Timings   `gorm:"type:jsonb;serializer:json" json:"timings"`

	CreatedAt time.Time `json:"created_at"`
}
