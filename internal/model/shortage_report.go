// internal/model/shortage_report.go
package model

import "time"

// ShortageReport is a crowd-sourced "not in stock at my pharmacy" signal.
// One report per (medication, reporter IP) per 24h.
type ShortageReport struct {
	ID           int       `db:"id" json:"id"`
	MedicationID int       `db:"medication_id" json:"medication_id"`
	ReporterIP   string    `db:"reporter_ip" json:"-"`
	City         string    `db:"city" json:"city,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
