// internal/service/reminder_service.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

// ReminderNotifier is the push/notification delivery collaborator.
type ReminderNotifier interface {
	Notify(ctx context.Context, userEmail, medicationName, dosage string) error
}

// ReminderService dispatches reminders due at the current minute.
// Triggered by the cron endpoint.
type ReminderService struct {
	ReminderRepo   repository.ReminderRepositoryInterface
	UserRepo       repository.UserRepositoryInterface
	MedicationRepo repository.MedicationRepositoryInterface
	Notifier       ReminderNotifier
	Logger         *zap.Logger
}

// DispatchDue sends every reminder scheduled for now. One failed
// notification never blocks the rest.
func (s *ReminderService) DispatchDue(ctx context.Context, now time.Time) (int, error) {
	due, err := s.ReminderRepo.ListDue(now.Format("15:04"))
	if err != nil {
		return 0, err
	}

	dispatched := 0
	for _, rem := range due {
		user, err := s.UserRepo.GetByID(rem.UserID)
		if err != nil || user == nil {
			s.Logger.Warn("reminder user lookup failed", zap.Int("reminder_id", rem.ID), zap.Error(err))
			continue
		}
		med, err := s.MedicationRepo.GetByID(rem.MedicationID)
		if err != nil {
			if err != model.ErrMedicationNotFound {
				s.Logger.Warn("reminder medication lookup failed", zap.Int("reminder_id", rem.ID), zap.Error(err))
			}
			continue
		}
		if err := s.Notifier.Notify(ctx, user.Email, med.Name, rem.Dosage); err != nil {
			s.Logger.Warn("reminder dispatch failed", zap.Int("reminder_id", rem.ID), zap.Error(err))
			continue
		}
		dispatched++
	}
	return dispatched, nil
}

// LogNotifier stands in when no push provider is configured.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) Notify(ctx context.Context, userEmail, medicationName, dosage string) error {
	n.Logger.Info("reminder notification",
		zap.String("user", userEmail), zap.String("medication", medicationName), zap.String("dosage", dosage))
	return nil
}
