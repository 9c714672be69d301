// internal/repository/reminder_repository.go
package repository

import (
	"database/sql"
	"time"

	"github.com/alertemeds/alertemeds-backend/internal/model"
)

type ReminderRepositoryInterface interface {
	Create(rem *model.Reminder) error
	ListByUser(userID int) ([]model.Reminder, error)
	UpdateOwned(rem *model.Reminder) (bool, error)
	DeleteOwned(id, userID int) (bool, error)
	ListDue(timeOfDay string) ([]model.Reminder, error)
}

type ReminderRepository struct {
	DB *sql.DB
}

func (r *ReminderRepository) Create(rem *model.Reminder) error {
	rem.CreatedAt = time.Now()
	rem.Active = true
	query := `
        INSERT INTO reminders (user_id, family_member_id, medication_id, time_of_day, dosage, active, created_at)
        VALUES ($1, $2, $3, $4, $5, TRUE, $6)
        RETURNING id
    `
	return r.DB.QueryRow(
		query,
		rem.UserID, rem.FamilyMemberID, rem.MedicationID, rem.TimeOfDay, rem.Dosage, rem.CreatedAt,
	).Scan(&rem.ID)
}

func (r *ReminderRepository) ListByUser(userID int) ([]model.Reminder, error) {
	query := `
        SELECT id, user_id, family_member_id, medication_id, time_of_day, dosage, active, created_at
        FROM reminders WHERE user_id=$1 ORDER BY id
    `
	return r.queryReminders(query, userID)
}

func (r *ReminderRepository) UpdateOwned(rem *model.Reminder) (bool, error) {
	query := `
        UPDATE reminders
        SET family_member_id=$1, medication_id=$2, time_of_day=$3, dosage=$4, active=$5
        WHERE id=$6 AND user_id=$7
    `
	res, err := r.DB.Exec(query, rem.FamilyMemberID, rem.MedicationID, rem.TimeOfDay, rem.Dosage, rem.Active, rem.ID, rem.UserID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ReminderRepository) DeleteOwned(id, userID int) (bool, error) {
	res, err := r.DB.Exec(`DELETE FROM reminders WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListDue returns the active reminders scheduled at the given "HH:MM",
// for the cron dispatch job.
func (r *ReminderRepository) ListDue(timeOfDay string) ([]model.Reminder, error) {
	query := `
        SELECT id, user_id, family_member_id, medication_id, time_of_day, dosage, active, created_at
        FROM reminders WHERE active=TRUE AND time_of_day=$1 ORDER BY id
    `
	return r.queryReminders(query, timeOfDay)
}

func (r *ReminderRepository) queryReminders(query string, args ...interface{}) ([]model.Reminder, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reminders := []model.Reminder{}
	for rows.Next() {
		var rem model.Reminder
		if err := rows.Scan(
			&rem.ID, &rem.UserID, &rem.FamilyMemberID, &rem.MedicationID,
			&rem.TimeOfDay, &rem.Dosage, &rem.Active, &rem.CreatedAt,
		); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}

var _ ReminderRepositoryInterface = (*ReminderRepository)(nil)
