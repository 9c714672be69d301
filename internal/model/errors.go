// internal/model/errors.go
package model

import (
	"errors"
	"fmt"
)

// Not-found sentinels. Ownership violations surface as these too, so a
// caller probing someone else's resource cannot tell it exists.
var (
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrEmailNotFound      = errors.New("email not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrMedicationNotFound = errors.New("medication not found")
	ErrAlertNotFound      = errors.New("alert not found")
	ErrUserNotFound       = errors.New("user not found")
)

// Conflict sentinels.
var (
	ErrAlertExists     = errors.New("alert already active for this medication")
	ErrDuplicateReport = errors.New("a report for this medication was already filed recently")
)

// ErrInvalidTransition rejects an illegal status change, e.g. sending an
// email that was never approved.
type ErrInvalidTransition struct {
	From EmailStatus
	To   EmailStatus
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid email status transition %s -> %s", e.From, e.To)
}
