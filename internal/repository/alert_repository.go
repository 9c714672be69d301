// internal/repository/alert_repository.go
package repository

import (
	"database/sql"
	"time"

	"github.com/alertemeds/alertemeds-backend/internal/model"
)

type AlertRepositoryInterface interface {
	Create(a *model.Alert) error
	GetByUserAndMedication(userID, medicationID int) (*model.Alert, error)
	ListByUser(userID int) ([]model.Alert, error)
	SetActive(id int, active bool) error
	DeactivateOwned(id, userID int) (bool, error)
}

type AlertRepository struct {
	DB *sql.DB
}

func (r *AlertRepository) Create(a *model.Alert) error {
	a.CreatedAt = time.Now()
	a.Active = true
	query := `
        INSERT INTO alerts (user_id, medication_id, active, created_at)
        VALUES ($1, $2, TRUE, $3)
        RETURNING id
    `
	return r.DB.QueryRow(query, a.UserID, a.MedicationID, a.CreatedAt).Scan(&a.ID)
}

func (r *AlertRepository) GetByUserAndMedication(userID, medicationID int) (*model.Alert, error) {
	query := `
        SELECT id, user_id, medication_id, active, created_at
        FROM alerts WHERE user_id=$1 AND medication_id=$2
    `
	var a model.Alert
	err := r.DB.QueryRow(query, userID, medicationID).Scan(&a.ID, &a.UserID, &a.MedicationID, &a.Active, &a.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *AlertRepository) ListByUser(userID int) ([]model.Alert, error) {
	query := `SELECT id, user_id, medication_id, active, created_at FROM alerts WHERE user_id=$1 ORDER BY id`
	rows, err := r.DB.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := []model.Alert{}
	for rows.Next() {
		var a model.Alert
		if err := rows.Scan(&a.ID, &a.UserID, &a.MedicationID, &a.Active, &a.CreatedAt); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *AlertRepository) SetActive(id int, active bool) error {
	_, err := r.DB.Exec(`UPDATE alerts SET active=$1 WHERE id=$2`, active, id)
	return err
}

// DeactivateOwned deactivates an alert only when the caller owns it. The
// ownership check lives in the WHERE clause so a mismatch is
// indistinguishable from a missing row.
func (r *AlertRepository) DeactivateOwned(id, userID int) (bool, error) {
	res, err := r.DB.Exec(`UPDATE alerts SET active=FALSE WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ AlertRepositoryInterface = (*AlertRepository)(nil)
