// internal/model/medication.go
package model

import "time"

// Shortage statuses synced from the national database.
const (
	MedicationAvailable = "AVAILABLE"
	MedicationTension   = "TENSION"
	MedicationRupture   = "RUPTURE"
)

type Medication struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CISCode   string    `db:"cis_code" json:"cis_code"`
	Status    string    `db:"status" json:"status"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
