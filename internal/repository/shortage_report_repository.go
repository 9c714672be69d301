// internal/repository/shortage_report_repository.go
package repository

import (
	"database/sql"
	"time"

	"github.com/alertemeds/alertemeds-backend/internal/model"
)

type ShortageReportRepositoryInterface interface {
	Create(rep *model.ShortageReport) error
	RecentExists(medicationID int, reporterIP string, window time.Duration) (bool, error)
	CountRecentByMedication(medicationID int, window time.Duration) (int, error)
}

type ShortageReportRepository struct {
	DB *sql.DB
}

func (r *ShortageReportRepository) Create(rep *model.ShortageReport) error {
	rep.CreatedAt = time.Now()
	query := `
        INSERT INTO shortage_reports (medication_id, reporter_ip, city, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.DB.QueryRow(query, rep.MedicationID, rep.ReporterIP, rep.City, rep.CreatedAt).Scan(&rep.ID)
}

// RecentExists reports whether the same IP already filed a report for the
// medication within the window.
func (r *ShortageReportRepository) RecentExists(medicationID int, reporterIP string, window time.Duration) (bool, error) {
	query := `
        SELECT 1 FROM shortage_reports
        WHERE medication_id=$1 AND reporter_ip=$2 AND created_at > $3
        LIMIT 1
    `
	var tmp int
	err := r.DB.QueryRow(query, medicationID, reporterIP, time.Now().Add(-window)).Scan(&tmp)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ShortageReportRepository) CountRecentByMedication(medicationID int, window time.Duration) (int, error) {
	query := `SELECT COUNT(*) FROM shortage_reports WHERE medication_id=$1 AND created_at > $2`
	var count int
	if err := r.DB.QueryRow(query, medicationID, time.Now().Add(-window)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

var _ ShortageReportRepositoryInterface = (*ShortageReportRepository)(nil)
