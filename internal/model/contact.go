// internal/model/contact.go
package model

// Contact types targeted by outreach campaigns.
const (
	ContactTypePharmacy = "PHARMACY"
	ContactTypeLab      = "LAB"
	ContactTypePress    = "PRESS"
)

type Contact struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
	Type  string `db:"type" json:"type"`
	City  string `db:"city" json:"city"`
}
