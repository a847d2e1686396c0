package models

// Counter holds the last issued number per entity ("Appointments", "Orders", ...).
type Counter struct {
	ID        string `gorm:"primaryKey;size:50"`
	LastValue int64  `gorm:"not null;default:0"`
}
