// internal/model/reminder.go
package model

import "time"

// Reminder schedules a daily intake notification, optionally on behalf of
// a family member profile.
type Reminder struct {
	ID             int       `db:"id" json:"id"`
	UserID         int       `db:"user_id" json:"user_id"`
	FamilyMemberID *int      `db:"family_member_id" json:"family_member_id,omitempty"`
	MedicationID   int       `db:"medication_id" json:"medication_id"`
	TimeOfDay      string    `db:"time_of_day" json:"time_of_day"` // "HH:MM"
	Dosage         string    `db:"dosage" json:"dosage,omitempty"`
	Active         bool      `db:"active" json:"active"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
