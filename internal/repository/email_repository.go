// internal/repository/email_repository.go
package repository

import (
	"database/sql"
	"time"

	"github.com/alertemeds/alertemeds-backend/internal/model"
)

type EmailRepositoryInterface interface {
	CreateDraft(e *model.Email) error
	GetByID(id int) (*model.Email, error)
	ListByCampaign(campaignID int) ([]*model.Email, error)
	ListSendable(campaignID int) ([]*model.Email, error)
	ExistingContactIDs(campaignID int) (map[int]bool, error)
	UpdateReview(id int, status model.EmailStatus, subject, body string) error
	MarkSent(id int) error
	MarkFailed(id int, lastError string) error
	MarkOpened(trackingID string) (bool, error)
	StatsByCampaign(campaignID int) (map[string]int, error)
}

type EmailRepository struct {
	DB *sql.DB
}

const emailColumns = `id, campaign_id, contact_id, subject, body, status, tracking_id, last_error, created_at, sent_at, opened_at`

func scanEmail(row interface{ Scan(...interface{}) error }) (*model.Email, error) {
	var e model.Email
	err := row.Scan(
		&e.ID, &e.CampaignID, &e.ContactID, &e.Subject, &e.Body,
		&e.Status, &e.TrackingID, &e.LastError, &e.CreatedAt, &e.SentAt, &e.OpenedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmailRepository) CreateDraft(e *model.Email) error {
	e.CreatedAt = time.Now()
	query := `
        INSERT INTO emails (campaign_id, contact_id, subject, body, status, tracking_id, last_error, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, '', $7)
        RETURNING id
    `
	return r.DB.QueryRow(
		query,
		e.CampaignID, e.ContactID, e.Subject, e.Body, e.Status, e.TrackingID, e.CreatedAt,
	).Scan(&e.ID)
}

func (r *EmailRepository) GetByID(id int) (*model.Email, error) {
	query := `SELECT ` + emailColumns + ` FROM emails WHERE id=$1`
	e, err := scanEmail(r.DB.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrEmailNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *EmailRepository) ListByCampaign(campaignID int) ([]*model.Email, error) {
	query := `SELECT ` + emailColumns + ` FROM emails WHERE campaign_id=$1 ORDER BY id`
	return r.queryEmails(query, campaignID)
}

// ListSendable returns the emails a batch send may queue: approved drafts
// plus previously failed sends eligible for retry.
func (r *EmailRepository) ListSendable(campaignID int) ([]*model.Email, error) {
	query := `SELECT ` + emailColumns + ` FROM emails WHERE campaign_id=$1 AND status IN ('APPROVED', 'FAILED') ORDER BY id`
	return r.queryEmails(query, campaignID)
}

func (r *EmailRepository) queryEmails(query string, args ...interface{}) ([]*model.Email, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	emails := []*model.Email{}
	for rows.Next() {
		e, err := scanEmail(rows)
		if err != nil {
			return nil, err
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

// ExistingContactIDs returns the contacts that already hold an email row
// for the campaign. Generation uses it to stay idempotent.
func (r *EmailRepository) ExistingContactIDs(campaignID int) (map[int]bool, error) {
	rows, err := r.DB.Query(`SELECT contact_id FROM emails WHERE campaign_id=$1`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := map[int]bool{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func (r *EmailRepository) UpdateReview(id int, status model.EmailStatus, subject, body string) error {
	query := `
        UPDATE emails
        SET status=$1,
            subject=CASE WHEN $2 <> '' THEN $2 ELSE subject END,
            body=CASE WHEN $3 <> '' THEN $3 ELSE body END
        WHERE id=$4
    `
	_, err := r.DB.Exec(query, status, subject, body, id)
	return err
}

func (r *EmailRepository) MarkSent(id int) error {
	query := `UPDATE emails SET status='SENT', last_error='', sent_at=NOW() WHERE id=$1`
	_, err := r.DB.Exec(query, id)
	return err
}

func (r *EmailRepository) MarkFailed(id int, lastError string) error {
	query := `UPDATE emails SET status='FAILED', last_error=$1 WHERE id=$2`
	_, err := r.DB.Exec(query, lastError, id)
	return err
}

// MarkOpened flips a sent email to OPENED, first open wins: the opened_at
// guard makes repeat pixel fetches no-ops and never overwrites the
// timestamp. Returns whether a row actually changed.
func (r *EmailRepository) MarkOpened(trackingID string) (bool, error) {
	query := `
        UPDATE emails SET status='OPENED', opened_at=NOW()
        WHERE tracking_id=$1 AND status='SENT' AND opened_at IS NULL
    `
	res, err := r.DB.Exec(query, trackingID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *EmailRepository) StatsByCampaign(campaignID int) (map[string]int, error) {
	query := `SELECT status, COUNT(*) FROM emails WHERE campaign_id=$1 GROUP BY status`
	rows, err := r.DB.Query(query, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := map[string]int{
		"total":    0,
		"DRAFT":    0,
		"APPROVED": 0,
		"REJECTED": 0,
		"SENT":     0,
		"FAILED":   0,
		"OPENED":   0,
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		if _, ok := stats[status]; ok {
			stats[status] = count
		}
		stats["total"] += count
	}
	return stats, rows.Err()
}

var _ EmailRepositoryInterface = (*EmailRepository)(nil)
