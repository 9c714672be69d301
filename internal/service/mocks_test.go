// internal/service/mocks_test.go
package service_test

import (
	"context"
	"time"

	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/queue"
)

// Function-field mocks. A nil field means "not expected in this test".

type mockCampaignRepo struct {
	CreateFn        func(c *model.Campaign) error
	GetByIDFn       func(id int) (*model.Campaign, error)
	ListCampaignsFn func(offset, limit int, campaignType string) ([]*model.Campaign, int, error)
}

func (m *mockCampaignRepo) Create(c *model.Campaign) error {
	if m.CreateFn != nil {
		return m.CreateFn(c)
	}
	c.ID = 1
	c.CreatedAt = time.Now()
	return nil
}

func (m *mockCampaignRepo) GetByID(id int) (*model.Campaign, error) {
	return m.GetByIDFn(id)
}

func (m *mockCampaignRepo) ListCampaigns(offset, limit int, campaignType string) ([]*model.Campaign, int, error) {
	return m.ListCampaignsFn(offset, limit, campaignType)
}

type mockEmailRepo struct {
	CreateDraftFn        func(e *model.Email) error
	GetByIDFn            func(id int) (*model.Email, error)
	ListByCampaignFn     func(campaignID int) ([]*model.Email, error)
	ListSendableFn       func(campaignID int) ([]*model.Email, error)
	ExistingContactIDsFn func(campaignID int) (map[int]bool, error)
	UpdateReviewFn       func(id int, status model.EmailStatus, subject, body string) error
	MarkSentFn           func(id int) error
	MarkFailedFn         func(id int, lastError string) error
	MarkOpenedFn         func(trackingID string) (bool, error)
	StatsByCampaignFn    func(campaignID int) (map[string]int, error)
}

func (m *mockEmailRepo) CreateDraft(e *model.Email) error { return m.CreateDraftFn(e) }
func (m *mockEmailRepo) GetByID(id int) (*model.Email, error) {
	return m.GetByIDFn(id)
}
func (m *mockEmailRepo) ListByCampaign(campaignID int) ([]*model.Email, error) {
	return m.ListByCampaignFn(campaignID)
}
func (m *mockEmailRepo) ListSendable(campaignID int) ([]*model.Email, error) {
	return m.ListSendableFn(campaignID)
}
func (m *mockEmailRepo) ExistingContactIDs(campaignID int) (map[int]bool, error) {
	if m.ExistingContactIDsFn != nil {
		return m.ExistingContactIDsFn(campaignID)
	}
	return map[int]bool{}, nil
}
func (m *mockEmailRepo) UpdateReview(id int, status model.EmailStatus, subject, body string) error {
	return m.UpdateReviewFn(id, status, subject, body)
}
func (m *mockEmailRepo) MarkSent(id int) error { return m.MarkSentFn(id) }
func (m *mockEmailRepo) MarkFailed(id int, lastError string) error {
	return m.MarkFailedFn(id, lastError)
}
func (m *mockEmailRepo) MarkOpened(trackingID string) (bool, error) {
	return m.MarkOpenedFn(trackingID)
}
func (m *mockEmailRepo) StatsByCampaign(campaignID int) (map[string]int, error) {
	return m.StatsByCampaignFn(campaignID)
}

type mockContactRepo struct {
	GetByIDFn    func(id int) (*model.Contact, error)
	ListByTypeFn func(contactType string) ([]model.Contact, error)
}

func (m *mockContactRepo) GetByID(id int) (*model.Contact, error) {
	return m.GetByIDFn(id)
}
func (m *mockContactRepo) ListByType(contactType string) ([]model.Contact, error) {
	return m.ListByTypeFn(contactType)
}

type mockQueue struct {
	PublishFn func(job queue.SendJob) error
	published []queue.SendJob
}

func (m *mockQueue) Publish(job queue.SendJob) error {
	if m.PublishFn != nil {
		if err := m.PublishFn(job); err != nil {
			return err
		}
	}
	m.published = append(m.published, job)
	return nil
}

func (m *mockQueue) Close() error { return nil }

type mockMailer struct {
	SendFn func(ctx context.Context, to, subject, htmlBody string) error
	sent   []string
}

func (m *mockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if m.SendFn != nil {
		if err := m.SendFn(ctx, to, subject, htmlBody); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, to)
	return nil
}

type mockAlertRepo struct {
	CreateFn                 func(a *model.Alert) error
	GetByUserAndMedicationFn func(userID, medicationID int) (*model.Alert, error)
	ListByUserFn             func(userID int) ([]model.Alert, error)
	SetActiveFn              func(id int, active bool) error
	DeactivateOwnedFn        func(id, userID int) (bool, error)
}

func (m *mockAlertRepo) Create(a *model.Alert) error { return m.CreateFn(a) }
func (m *mockAlertRepo) GetByUserAndMedication(userID, medicationID int) (*model.Alert, error) {
	return m.GetByUserAndMedicationFn(userID, medicationID)
}
func (m *mockAlertRepo) ListByUser(userID int) ([]model.Alert, error) {
	return m.ListByUserFn(userID)
}
func (m *mockAlertRepo) SetActive(id int, active bool) error { return m.SetActiveFn(id, active) }
func (m *mockAlertRepo) DeactivateOwned(id, userID int) (bool, error) {
	return m.DeactivateOwnedFn(id, userID)
}

type mockMedicationRepo struct {
	GetByIDFn           func(id int) (*model.Medication, error)
	ListFn              func(offset, limit int, search string) ([]model.Medication, int, error)
	UpdateStatusByCISFn func(cisCode, status string) (bool, error)
}

func (m *mockMedicationRepo) GetByID(id int) (*model.Medication, error) {
	return m.GetByIDFn(id)
}
func (m *mockMedicationRepo) List(offset, limit int, search string) ([]model.Medication, int, error) {
	return m.ListFn(offset, limit, search)
}
func (m *mockMedicationRepo) UpdateStatusByCIS(cisCode, status string) (bool, error) {
	return m.UpdateStatusByCISFn(cisCode, status)
}

type mockUserRepo struct {
	CreateFn            func(u *model.User) error
	GetByEmailFn        func(email string) (*model.User, error)
	GetByIDFn           func(id int) (*model.User, error)
	EarliestUserEmailFn func() (string, error)
}

func (m *mockUserRepo) Create(u *model.User) error { return m.CreateFn(u) }
func (m *mockUserRepo) GetByEmail(email string) (*model.User, error) {
	return m.GetByEmailFn(email)
}
func (m *mockUserRepo) GetByID(id int) (*model.User, error) { return m.GetByIDFn(id) }
func (m *mockUserRepo) EarliestUserEmail() (string, error) {
	return m.EarliestUserEmailFn()
}

type mockReminderRepo struct {
	CreateFn      func(rem *model.Reminder) error
	ListByUserFn  func(userID int) ([]model.Reminder, error)
	UpdateOwnedFn func(rem *model.Reminder) (bool, error)
	DeleteOwnedFn func(id, userID int) (bool, error)
	ListDueFn     func(timeOfDay string) ([]model.Reminder, error)
}

func (m *mockReminderRepo) Create(rem *model.Reminder) error { return m.CreateFn(rem) }
func (m *mockReminderRepo) ListByUser(userID int) ([]model.Reminder, error) {
	return m.ListByUserFn(userID)
}
func (m *mockReminderRepo) UpdateOwned(rem *model.Reminder) (bool, error) {
	return m.UpdateOwnedFn(rem)
}
func (m *mockReminderRepo) DeleteOwned(id, userID int) (bool, error) {
	return m.DeleteOwnedFn(id, userID)
}
func (m *mockReminderRepo) ListDue(timeOfDay string) ([]model.Reminder, error) {
	return m.ListDueFn(timeOfDay)
}
