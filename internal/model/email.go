// internal/model/email.go
package model

import "time"

// EmailStatus is the lifecycle state of a per-contact draft.
type EmailStatus string

const (
	StatusDraft    EmailStatus = "DRAFT"
	StatusApproved EmailStatus = "APPROVED"
	StatusRejected EmailStatus = "REJECTED"
	StatusSent     EmailStatus = "SENT"
	StatusFailed   EmailStatus = "FAILED"
	StatusOpened   EmailStatus = "OPENED"
)

// transitions lists every legal source -> target pair. REJECTED is
// terminal. FAILED -> SENT covers provider retries.
var transitions = map[EmailStatus][]EmailStatus{
	StatusDraft:    {StatusApproved, StatusRejected},
	StatusApproved: {StatusSent, StatusFailed},
	StatusFailed:   {StatusSent, StatusFailed},
	StatusSent:     {StatusOpened},
}

// Transition validates a status change. Every handler and the worker go
// through this instead of writing statuses directly.
func Transition(from, to EmailStatus) error {
	for _, t := range transitions[from] {
		if t == to {
			return nil
		}
	}
	return &ErrInvalidTransition{From: from, To: to}
}

// Sendable reports whether an email may be handed to the provider.
func (s EmailStatus) Sendable() bool {
	return s == StatusApproved || s == StatusFailed
}

type Email struct {
	ID         int         `db:"id" json:"id"`
	CampaignID int         `db:"campaign_id" json:"campaign_id"`
	ContactID  int         `db:"contact_id" json:"contact_id"`
	Subject    string      `db:"subject" json:"subject"`
	Body       string      `db:"body" json:"body"`
	Status     EmailStatus `db:"status" json:"status"`
	TrackingID string      `db:"tracking_id" json:"tracking_id"`
	LastError  string      `db:"last_error" json:"last_error,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	SentAt     *time.Time  `db:"sent_at" json:"sent_at,omitempty"`
	OpenedAt   *time.Time  `db:"opened_at" json:"opened_at,omitempty"`
}
