// internal/handler/reminder_handler_test.go
package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/auth"
	"github.com/alertemeds/alertemeds-backend/internal/handler"
	"github.com/alertemeds/alertemeds-backend/internal/model"
)

type memReminderRepo struct {
	reminders map[int]*model.Reminder
	nextID    int
}

func newMemReminderRepo() *memReminderRepo {
	return &memReminderRepo{reminders: map[int]*model.Reminder{}, nextID: 1}
}

func (m *memReminderRepo) Create(rem *model.Reminder) error {
	rem.ID = m.nextID
	m.nextID++
	rem.Active = true
	m.reminders[rem.ID] = rem
	return nil
}

func (m *memReminderRepo) ListByUser(userID int) ([]model.Reminder, error) {
	out := []model.Reminder{}
	for _, rem := range m.reminders {
		if rem.UserID == userID {
			out = append(out, *rem)
		}
	}
	return out, nil
}

func (m *memReminderRepo) UpdateOwned(rem *model.Reminder) (bool, error) {
	existing, ok := m.reminders[rem.ID]
	if !ok || existing.UserID != rem.UserID {
		return false, nil
	}
	m.reminders[rem.ID] = rem
	return true, nil
}

func (m *memReminderRepo) DeleteOwned(id, userID int) (bool, error) {
	existing, ok := m.reminders[id]
	if !ok || existing.UserID != userID {
		return false, nil
	}
	delete(m.reminders, id)
	return true, nil
}

func (m *memReminderRepo) ListDue(timeOfDay string) ([]model.Reminder, error) {
	return nil, nil
}

const testSecret = "reminder-test-secret"

func reminderRouter(repo *memReminderRepo) *chi.Mux {
	h := &handler.ReminderHandler{Repo: repo, Logger: zap.NewNop()}
	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSession(testSecret))
		r.Get("/reminders", h.List)
		r.Post("/reminders", h.Create)
		r.Put("/reminders/{id}", h.Update)
		r.Delete("/reminders/{id}", h.Delete)
	})
	return r
}

func authedRequest(t *testing.T, userID int, method, path string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	r := httptest.NewRequest(method, path, &buf)
	token, err := auth.GenerateToken(userID, "u@x.fr", testSecret)
	require.NoError(t, err)
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

func TestReminderCreateValidatesTimeOfDay(t *testing.T) {
	router := reminderRouter(newMemReminderRepo())

	for _, bad := range []string{"", "8:30", "24:00", "12:60", "morning", "08:30:00"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, authedRequest(t, 1, "POST", "/reminders", map[string]interface{}{
			"medication_id": 3, "time_of_day": bad,
		}))
		assert.Equal(t, http.StatusBadRequest, w.Code, "time_of_day %q should be rejected", bad)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, 1, "POST", "/reminders", map[string]interface{}{
		"medication_id": 3, "time_of_day": "08:30", "dosage": "1 comprimé",
	}))
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReminderOwnershipLooksLikeMissing(t *testing.T) {
	repo := newMemReminderRepo()
	router := reminderRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, 1, "POST", "/reminders", map[string]interface{}{
		"medication_id": 3, "time_of_day": "08:30",
	}))
	require.Equal(t, http.StatusCreated, w.Code)

	// another user updating or deleting it gets a plain 404
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, 2, "PUT", "/reminders/1", map[string]interface{}{
		"medication_id": 3, "time_of_day": "09:00",
	}))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, 2, "DELETE", "/reminders/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// the owner succeeds
	w = httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, 1, "DELETE", "/reminders/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReminderRequiresSession(t *testing.T) {
	router := reminderRouter(newMemReminderRepo())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/reminders", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReminderListScopedToUser(t *testing.T) {
	repo := newMemReminderRepo()
	repo.reminders[1] = &model.Reminder{ID: 1, UserID: 1, MedicationID: 3, TimeOfDay: "08:00"}
	repo.reminders[2] = &model.Reminder{ID: 2, UserID: 2, MedicationID: 3, TimeOfDay: "09:00"}
	repo.nextID = 3
	router := reminderRouter(repo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest(t, 1, "GET", "/reminders", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data []model.Reminder `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	require.Len(t, res.Data, 1)
	assert.Equal(t, 1, res.Data[0].UserID)
}
