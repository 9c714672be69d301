// internal/service/campaign_service.go
package service

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/metrics"
	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/queue"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
	EmailRepo    repository.EmailRepositoryInterface
	ContactRepo  repository.ContactRepositoryInterface
	Queue        queue.Publisher
	Logger       *zap.Logger
}

// Review actions accepted by PATCH /admin/emails/{id}.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionEdit    = "edit"
)

// CreateCampaign applies the creation defaults: mode SEMI_AUTO, subject
// interpolating the lowercased target type.
func (s *CampaignService) CreateCampaign(name, campaignType, template, mode, subject string) (*model.Campaign, error) {
	if mode == "" {
		mode = model.ModeSemiAuto
	}
	if subject == "" {
		subject = "AlerteMedicaments — Partenariat " + strings.ToLower(campaignType)
	}
	c := &model.Campaign{
		Name:     name,
		Type:     campaignType,
		Mode:     mode,
		Template: template,
		Subject:  subject,
	}
	if err := s.CampaignRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// GenerateEmails drafts one email per targeted contact. Regeneration is
// idempotent: contacts already holding a row for the campaign are
// skipped, so re-invoking after a partial failure fills the gaps without
// duplicating drafts. AUTO campaigns create drafts pre-approved.
func (s *CampaignService) GenerateEmails(campaignID int) (int, error) {
	campaign, err := s.CampaignRepo.GetByID(campaignID)
	if err != nil {
		return 0, err
	}

	contacts, err := s.ContactRepo.ListByType(campaign.Type)
	if err != nil {
		return 0, err
	}
	existing, err := s.EmailRepo.ExistingContactIDs(campaignID)
	if err != nil {
		return 0, err
	}

	status := model.StatusDraft
	if campaign.Mode == model.ModeAuto {
		status = model.StatusApproved
	}

	created := 0
	for _, contact := range contacts {
		if existing[contact.ID] {
			continue
		}
		e := &model.Email{
			CampaignID: campaignID,
			ContactID:  contact.ID,
			Subject:    campaign.Subject,
			Body:       RenderTemplate(campaign.Template, contactData(contact)),
			Status:     status,
			TrackingID: uuid.New().String(),
		}
		if err := s.EmailRepo.CreateDraft(e); err != nil {
			// best effort, no rollback: the drafts already created stay
			return created, err
		}
		created++
	}
	return created, nil
}

// Review applies an approve/reject/edit action. Approve and edit may
// overwrite subject/body when supplied; reject never does. Edit keeps the
// current status.
func (s *CampaignService) Review(emailID int, action, subject, body string) (*model.Email, error) {
	email, err := s.EmailRepo.GetByID(emailID)
	if err != nil {
		return nil, err
	}

	target := email.Status
	switch action {
	case ActionApprove:
		target = model.StatusApproved
	case ActionReject:
		target = model.StatusRejected
		subject, body = "", ""
	case ActionEdit:
		// status unchanged, but only reviewable emails are editable
		if email.Status != model.StatusDraft && email.Status != model.StatusApproved {
			return nil, &model.ErrInvalidTransition{From: email.Status, To: email.Status}
		}
	}

	if action != ActionEdit {
		if err := model.Transition(email.Status, target); err != nil {
			return nil, err
		}
	}

	if err := s.EmailRepo.UpdateReview(emailID, target, subject, body); err != nil {
		return nil, err
	}

	email.Status = target
	if subject != "" {
		email.Subject = subject
	}
	if body != "" {
		email.Body = body
	}
	return email, nil
}

// Send queues either one email or the whole sendable batch for the
// campaign. A publish failure skips that email and the batch continues;
// the caller gets the number actually queued.
func (s *CampaignService) Send(campaignID int, emailID *int) (int, error) {
	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		return 0, err
	}

	if emailID != nil {
		email, err := s.EmailRepo.GetByID(*emailID)
		if err != nil {
			return 0, err
		}
		if email.CampaignID != campaignID {
			return 0, model.ErrEmailNotFound
		}
		if !email.Status.Sendable() {
			return 0, &model.ErrInvalidTransition{From: email.Status, To: model.StatusSent}
		}
		if err := s.Queue.Publish(queue.SendJob{EmailID: email.ID}); err != nil {
			return 0, err
		}
		return 1, nil
	}

	emails, err := s.EmailRepo.ListSendable(campaignID)
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, email := range emails {
		if err := s.Queue.Publish(queue.SendJob{EmailID: email.ID}); err != nil {
			s.Logger.Warn("failed to enqueue email", zap.Int("email_id", email.ID), zap.Error(err))
			continue
		}
		queued++
	}
	return queued, nil
}

// Stats aggregates email counts per status for a campaign.
func (s *CampaignService) Stats(campaignID int) (map[string]int, error) {
	if _, err := s.CampaignRepo.GetByID(campaignID); err != nil {
		return nil, err
	}
	return s.EmailRepo.StatsByCampaign(campaignID)
}

// TrackOpen records a first open. It runs detached from the pixel
// response; failures are logged and go nowhere else.
func (s *CampaignService) TrackOpen(trackingID string) {
	opened, err := s.EmailRepo.MarkOpened(trackingID)
	if err != nil {
		s.Logger.Warn("open tracking update failed", zap.String("tracking_id", trackingID), zap.Error(err))
		return
	}
	if opened {
		metrics.EmailsOpened.Inc()
	}
}
