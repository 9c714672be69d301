// internal/service/campaign_service_test.go
package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/queue"
	"github.com/alertemeds/alertemeds-backend/internal/service"
)

func TestCreateCampaignDefaults(t *testing.T) {
	svc := &service.CampaignService{
		CampaignRepo: &mockCampaignRepo{},
		Logger:       zap.NewNop(),
	}

	c, err := svc.CreateCampaign("Vague pharmacies Q3", "PHARMACY", "Bonjour {{name}}", "", "")
	require.NoError(t, err)

	assert.Equal(t, model.ModeSemiAuto, c.Mode)
	assert.Equal(t, "AlerteMedicaments — Partenariat pharmacy", c.Subject)
}

func TestCreateCampaignKeepsExplicitValues(t *testing.T) {
	svc := &service.CampaignService{
		CampaignRepo: &mockCampaignRepo{},
		Logger:       zap.NewNop(),
	}

	c, err := svc.CreateCampaign("Presse", "PRESS", "tpl", model.ModeAuto, "Communiqué")
	require.NoError(t, err)

	assert.Equal(t, model.ModeAuto, c.Mode)
	assert.Equal(t, "Communiqué", c.Subject)
}

func TestGenerateEmailsSkipsExistingContacts(t *testing.T) {
	contacts := []model.Contact{
		{ID: 1, Name: "Pharmacie A", Email: "a@ph.fr", Type: "PHARMACY", City: "Lyon"},
		{ID: 2, Name: "Pharmacie B", Email: "b@ph.fr", Type: "PHARMACY", City: "Paris"},
		{ID: 3, Name: "Pharmacie C", Email: "c@ph.fr", Type: "PHARMACY", City: "Nice"},
	}

	var created []*model.Email
	svc := &service.CampaignService{
		CampaignRepo: &mockCampaignRepo{
			GetByIDFn: func(id int) (*model.Campaign, error) {
				return &model.Campaign{ID: id, Type: "PHARMACY", Mode: model.ModeSemiAuto,
					Template: "Bonjour {{name}} ({{city}})", Subject: "Partenariat"}, nil
			},
		},
		EmailRepo: &mockEmailRepo{
			ExistingContactIDsFn: func(campaignID int) (map[int]bool, error) {
				return map[int]bool{2: true}, nil
			},
			CreateDraftFn: func(e *model.Email) error {
				e.ID = len(created) + 1
				created = append(created, e)
				return nil
			},
		},
		ContactRepo: &mockContactRepo{
			ListByTypeFn: func(contactType string) ([]model.Contact, error) {
				assert.Equal(t, "PHARMACY", contactType)
				return contacts, nil
			},
		},
		Logger: zap.NewNop(),
	}

	n, err := svc.GenerateEmails(7)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, created, 2)

	assert.Equal(t, model.StatusDraft, created[0].Status)
	assert.Equal(t, "Bonjour Pharmacie A (Lyon)", created[0].Body)
	assert.NotEmpty(t, created[0].TrackingID)
	assert.NotEqual(t, created[0].TrackingID, created[1].TrackingID)
	assert.Equal(t, 3, created[1].ContactID)
}

func TestGenerateEmailsAutoModePreApproves(t *testing.T) {
	var got model.EmailStatus
	svc := &service.CampaignService{
		CampaignRepo: &mockCampaignRepo{
			GetByIDFn: func(id int) (*model.Campaign, error) {
				return &model.Campaign{ID: id, Type: "LAB", Mode: model.ModeAuto, Template: "t"}, nil
			},
		},
		EmailRepo: &mockEmailRepo{
			CreateDraftFn: func(e *model.Email) error {
				got = e.Status
				return nil
			},
		},
		ContactRepo: &mockContactRepo{
			ListByTypeFn: func(contactType string) ([]model.Contact, error) {
				return []model.Contact{{ID: 1, Email: "x@lab.fr"}}, nil
			},
		},
		Logger: zap.NewNop(),
	}

	n, err := svc.GenerateEmails(1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, model.StatusApproved, got)
}

func TestGenerateEmailsPartialFailureReportsCreated(t *testing.T) {
	calls := 0
	svc := &service.CampaignService{
		CampaignRepo: &mockCampaignRepo{
			GetByIDFn: func(id int) (*model.Campaign, error) {
				return &model.Campaign{ID: id, Type: "PHARMACY", Template: "t"}, nil
			},
		},
		EmailRepo: &mockEmailRepo{
			CreateDraftFn: func(e *model.Email) error {
				calls++
				if calls == 2 {
					return errors.New("insert failed")
				}
				return nil
			},
		},
		ContactRepo: &mockContactRepo{
			ListByTypeFn: func(contactType string) ([]model.Contact, error) {
				return []model.Contact{{ID: 1}, {ID: 2}, {ID: 3}}, nil
			},
		},
		Logger: zap.NewNop(),
	}

	n, err := svc.GenerateEmails(1)
	require.Error(t, err)
	assert.Equal(t, 1, n)
}

func TestReviewApproveWithEdits(t *testing.T) {
	var savedStatus model.EmailStatus
	var savedSubject, savedBody string
	svc := &service.CampaignService{
		EmailRepo: &mockEmailRepo{
			GetByIDFn: func(id int) (*model.Email, error) {
				return &model.Email{ID: id, Status: model.StatusDraft, Subject: "old", Body: "old"}, nil
			},
			UpdateReviewFn: func(id int, status model.EmailStatus, subject, body string) error {
				savedStatus, savedSubject, savedBody = status, subject, body
				return nil
			},
		},
		Logger: zap.NewNop(),
	}

	email, err := svc.Review(5, service.ActionApprove, "nouveau sujet", "nouveau corps")
	require.NoError(t, err)

	assert.Equal(t, model.StatusApproved, savedStatus)
	assert.Equal(t, "nouveau sujet", savedSubject)
	assert.Equal(t, "nouveau corps", savedBody)
	assert.Equal(t, model.StatusApproved, email.Status)
	assert.Equal(t, "nouveau sujet", email.Subject)
}

func TestReviewRejectDiscardsEdits(t *testing.T) {
	var savedSubject, savedBody string
	svc := &service.CampaignService{
		EmailRepo: &mockEmailRepo{
			GetByIDFn: func(id int) (*model.Email, error) {
				return &model.Email{ID: id, Status: model.StatusDraft, Subject: "s", Body: "b"}, nil
			},
			UpdateReviewFn: func(id int, status model.EmailStatus, subject, body string) error {
				savedSubject, savedBody = subject, body
				return nil
			},
		},
		Logger: zap.NewNop(),
	}

	email, err := svc.Review(5, service.ActionReject, "ignored", "ignored")
	require.NoError(t, err)

	assert.Empty(t, savedSubject)
	assert.Empty(t, savedBody)
	assert.Equal(t, model.StatusRejected, email.Status)
	assert.Equal(t, "s", email.Subject)
}

func TestReviewRejectedEmailIsTerminal(t *testing.T) {
	svc := &service.CampaignService{
		EmailRepo: &mockEmailRepo{
			GetByIDFn: func(id int) (*model.Email, error) {
				return &model.Email{ID: id, Status: model.StatusRejected}, nil
			},
		},
		Logger: zap.NewNop(),
	}

	_, err := svc.Review(5, service.ActionApprove, "", "")
	var invalid *model.ErrInvalidTransition
	require.ErrorAs(t, err, &invalid)
}

func TestReviewEditSentEmailRejected(t *testing.T) {
	svc := &service.CampaignService{
		EmailRepo: &mockEmailRepo{
			GetByIDFn: func(id int) (*model.Email, error) {
				return &model.Email{ID: id, Status: model.StatusSent}, nil
			},
		},
		Logger: zap.NewNop(),
	}

	_, err := svc.Review(5, service.ActionEdit, "s", "b")
	var invalid *model.ErrInvalidTransition
	require.ErrorAs(t, err, &invalid)
}

func TestSendSingleEmail(t *testing.T) {
	q := &mockQueue{}
	svc := &service.CampaignService{
		CampaignRepo: &mockCampaignRepo{
			GetByIDFn: func(id int) (*model.Campaign, error) { return &model.Campaign{ID: id}, nil },
		},
		EmailRepo: &mockEmailRepo{
			GetByIDFn: func(id int) (*model.Email, error) {
				return &model.Email{ID: id, CampaignID: 1, Status: model.StatusApproved}, nil
			},
		},
		Queue:  q,
		Logger: zap.NewNop(),
	}

	emailID := 42
	n, err := svc.Send(1, &emailID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, q.published, 1)
	assert.Equal(t, queue.SendJob{EmailID: 42}, q.published[0])
}

func TestSendSingleEmailWrongCampaign(t *testing.T) {
	svc := &service.CampaignService{
		CampaignRepo: &mockCampaignRepo{
			GetByIDFn: func(id int) (*model.Campaign, error) { return &model.Campaign{ID: id}, nil },
		},
		EmailRepo: &mockEmailRepo{
			GetByIDFn: func(id int) (*model.Email, error) {
				return &model.Email{ID: id, CampaignID: 99, Status: model.StatusApproved}, nil
			},
		},
		Queue:  &mockQueue{},
		Logger: zap.NewNop(),
	}

	emailID := 42
	_, err := svc.Send(1, &emailID)
	assert.ErrorIs(t, err, model.ErrEmailNotFound)
}

func TestSendSingleDraftEmailRejected(t *testing.T) {
	svc := &service.CampaignService{
		CampaignRepo: &mockCampaignRepo{
			GetByIDFn: func(id int) (*model.Campaign, error) { return &model.Campaign{ID: id}, nil },
		},
		EmailRepo: &mockEmailRepo{
			GetByIDFn: func(id int) (*model.Email, error) {
				return &model.Email{ID: id, CampaignID: 1, Status: model.StatusDraft}, nil
			},
		},
		Queue:  &mockQueue{},
		Logger: zap.NewNop(),
	}

	emailID := 42
	_, err := svc.Send(1, &emailID)
	var invalid *model.ErrInvalidTransition
	require.ErrorAs(t, err, &invalid)
}

func TestSendBatchContinuesPastPublishFailure(t *testing.T) {
	q := &mockQueue{
		PublishFn: func(job queue.SendJob) error {
			if job.EmailID == 2 {
				return errors.New("broker down")
			}
			return nil
		},
	}
	svc := &service.CampaignService{
		CampaignRepo: &mockCampaignRepo{
			GetByIDFn: func(id int) (*model.Campaign, error) { return &model.Campaign{ID: id}, nil },
		},
		EmailRepo: &mockEmailRepo{
			ListSendableFn: func(campaignID int) ([]*model.Email, error) {
				return []*model.Email{
					{ID: 1, Status: model.StatusApproved},
					{ID: 2, Status: model.StatusApproved},
					{ID: 3, Status: model.StatusFailed},
				}, nil
			},
		},
		Queue:  q,
		Logger: zap.NewNop(),
	}

	n, err := svc.Send(1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSendUnknownCampaign(t *testing.T) {
	svc := &service.CampaignService{
		CampaignRepo: &mockCampaignRepo{
			GetByIDFn: func(id int) (*model.Campaign, error) { return nil, model.ErrCampaignNotFound },
		},
		Logger: zap.NewNop(),
	}

	_, err := svc.Send(1, nil)
	assert.ErrorIs(t, err, model.ErrCampaignNotFound)
}

func TestTrackOpenSwallowsErrors(t *testing.T) {
	svc := &service.CampaignService{
		EmailRepo: &mockEmailRepo{
			MarkOpenedFn: func(trackingID string) (bool, error) {
				return false, errors.New("db down")
			},
		},
		Logger: zap.NewNop(),
	}

	// must not panic or propagate anything
	svc.TrackOpen("some-id")
}
