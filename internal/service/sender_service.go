// internal/service/sender_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/mailer"
	"github.com/alertemeds/alertemeds-backend/internal/metrics"
	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

// SenderService processes queued send jobs in the worker binary.
type SenderService struct {
	EmailRepo   repository.EmailRepositoryInterface
	ContactRepo repository.ContactRepositoryInterface
	Mailer      mailer.Sender
	BaseURL     string
	Logger      *zap.Logger
}

// ProcessJob delivers one email. A nil return means the job is done (sent
// or permanently skippable); an error asks the worker to retry.
func (s *SenderService) ProcessJob(ctx context.Context, emailID int) error {
	email, err := s.EmailRepo.GetByID(emailID)
	if err != nil {
		if err == model.ErrEmailNotFound {
			s.Logger.Warn("queued email no longer exists", zap.Int("email_id", emailID))
			return nil
		}
		return err
	}

	// Only approved emails ever reach the provider. Drafts, rejected and
	// already-sent rows are dropped without retry.
	if !email.Status.Sendable() {
		s.Logger.Warn("skipping non-sendable email",
			zap.Int("email_id", emailID), zap.String("status", string(email.Status)))
		return nil
	}
	if err := model.Transition(email.Status, model.StatusSent); err != nil {
		return err
	}

	contact, err := s.ContactRepo.GetByID(email.ContactID)
	if err != nil {
		return err
	}
	if contact == nil {
		s.Logger.Warn("contact missing for email", zap.Int("email_id", emailID))
		return nil
	}

	body := email.Body + trackingPixel(s.BaseURL, email.TrackingID)
	if err := s.Mailer.Send(ctx, contact.Email, email.Subject, body); err != nil {
		metrics.EmailsFailed.Inc()
		if dberr := s.EmailRepo.MarkFailed(email.ID, err.Error()); dberr != nil {
			s.Logger.Error("failed to record send failure", zap.Int("email_id", emailID), zap.Error(dberr))
		}
		return err
	}

	if err := s.EmailRepo.MarkSent(email.ID); err != nil {
		return err
	}
	metrics.EmailsSent.Inc()
	s.Logger.Info("email sent", zap.Int("email_id", emailID), zap.Int("contact_id", contact.ID))
	return nil
}

func trackingPixel(baseURL, trackingID string) string {
	return fmt.Sprintf(`<img src="%s/track/%s" width="1" height="1" alt="">`, baseURL, trackingID)
}
