// internal/repository/medication_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/alertemeds/alertemeds-backend/internal/model"
)

type MedicationRepositoryInterface interface {
	GetByID(id int) (*model.Medication, error)
	List(offset, limit int, search string) ([]model.Medication, int, error)
	UpdateStatusByCIS(cisCode, status string) (bool, error)
}

type MedicationRepository struct {
	DB *sql.DB
}

func (r *MedicationRepository) GetByID(id int) (*model.Medication, error) {
	query := `SELECT id, name, cis_code, status, updated_at FROM medications WHERE id=$1`
	var m model.Medication
	if err := r.DB.QueryRow(query, id).Scan(&m.ID, &m.Name, &m.CISCode, &m.Status, &m.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrMedicationNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MedicationRepository) List(offset, limit int, search string) ([]model.Medication, int, error) {
	meds := []model.Medication{}
	query := `SELECT id, name, cis_code, status, updated_at FROM medications WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if search != "" {
		query += fmt.Sprintf(" AND name ILIKE $%d", argPos)
		args = append(args, "%"+search+"%")
		argPos++
	}

	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var m model.Medication
		if err := rows.Scan(&m.ID, &m.Name, &m.CISCode, &m.Status, &m.UpdatedAt); err != nil {
			return nil, 0, err
		}
		meds = append(meds, m)
	}

	countQuery := `SELECT COUNT(*) FROM medications WHERE 1=1`
	countArgs := []interface{}{}
	if search != "" {
		countQuery += " AND name ILIKE $1"
		countArgs = append(countArgs, "%"+search+"%")
	}

	var total int
	if err := r.DB.QueryRow(countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	return meds, total, nil
}

// UpdateStatusByCIS applies one row of the national sync feed. Returns
// whether a medication matched the CIS code.
func (r *MedicationRepository) UpdateStatusByCIS(cisCode, status string) (bool, error) {
	res, err := r.DB.Exec(`UPDATE medications SET status=$1, updated_at=NOW() WHERE cis_code=$2`, status, cisCode)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ MedicationRepositoryInterface = (*MedicationRepository)(nil)
