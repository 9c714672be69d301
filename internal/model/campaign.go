// internal/model/campaign.go
package model

import "time"

// Campaign modes. SEMI_AUTO drafts wait for human review before sending;
// AUTO drafts are generated pre-approved.
const (
	ModeAuto     = "AUTO"
	ModeSemiAuto = "SEMI_AUTO"
)

type Campaign struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Type      string    `db:"type" json:"type"` // contact type targeted: PHARMACY, LAB, PRESS
	Mode      string    `db:"mode" json:"mode"`
	Template  string    `db:"template" json:"template"`
	Subject   string    `db:"subject" json:"subject"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
