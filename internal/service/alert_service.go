// internal/service/alert_service.go
package service

import (
	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

type AlertService struct {
	AlertRepo      repository.AlertRepositoryInterface
	MedicationRepo repository.MedicationRepositoryInterface
}

// AddAlert subscribes a user to a medication. An existing inactive alert
// is reactivated instead of duplicated; an active one is a conflict.
func (s *AlertService) AddAlert(userID, medicationID int) (*model.Alert, error) {
	if _, err := s.MedicationRepo.GetByID(medicationID); err != nil {
		return nil, err
	}

	existing, err := s.AlertRepo.GetByUserAndMedication(userID, medicationID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Active {
			return nil, model.ErrAlertExists
		}
		if err := s.AlertRepo.SetActive(existing.ID, true); err != nil {
			return nil, err
		}
		existing.Active = true
		return existing, nil
	}

	alert := &model.Alert{UserID: userID, MedicationID: medicationID}
	if err := s.AlertRepo.Create(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// RemoveAlert deactivates an owned alert. A missing row and someone
// else's row look identical to the caller.
func (s *AlertService) RemoveAlert(id, userID int) error {
	ok, err := s.AlertRepo.DeactivateOwned(id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrAlertNotFound
	}
	return nil
}

func (s *AlertService) ListAlerts(userID int) ([]model.Alert, error) {
	return s.AlertRepo.ListByUser(userID)
}
