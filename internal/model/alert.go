// internal/model/alert.go
package model

import "time"

// Alert subscribes a user to shortage-status changes of one medication.
// Unique per (user, medication); re-adding an inactive alert reactivates
// it instead of creating a second row.
type Alert struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	MedicationID int       `db:"medication_id" json:"medication_id"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
