// internal/handler/reminder_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/api"
	"github.com/alertemeds/alertemeds-backend/internal/auth"
	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

type ReminderHandler struct {
	Repo   repository.ReminderRepositoryInterface
	Logger *zap.Logger
}

var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

type reminderPayload struct {
	FamilyMemberID *int   `json:"family_member_id"`
	MedicationID   int    `json:"medication_id"`
	TimeOfDay      string `json:"time_of_day"`
	Dosage         string `json:"dosage"`
	Active         *bool  `json:"active"`
}

func (p reminderPayload) validate() string {
	if p.MedicationID == 0 {
		return "medication_id is required"
	}
	if !timeOfDayRe.MatchString(p.TimeOfDay) {
		return "time_of_day must be HH:MM"
	}
	return ""
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())
	reminders, err := h.Repo.ListByUser(session.UserID)
	if err != nil {
		h.internalError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]interface{}{"data": reminders})
}

func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())

	var body reminderPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := body.validate(); msg != "" {
		api.Error(w, http.StatusBadRequest, msg)
		return
	}

	rem := &model.Reminder{
		UserID:         session.UserID,
		FamilyMemberID: body.FamilyMemberID,
		MedicationID:   body.MedicationID,
		TimeOfDay:      body.TimeOfDay,
		Dosage:         body.Dosage,
	}
	if err := h.Repo.Create(rem); err != nil {
		h.internalError(w, err)
		return
	}
	api.JSON(w, http.StatusCreated, rem)
}

func (h *ReminderHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var body reminderPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if msg := body.validate(); msg != "" {
		api.Error(w, http.StatusBadRequest, msg)
		return
	}

	active := true
	if body.Active != nil {
		active = *body.Active
	}
	rem := &model.Reminder{
		ID:             id,
		UserID:         session.UserID,
		FamilyMemberID: body.FamilyMemberID,
		MedicationID:   body.MedicationID,
		TimeOfDay:      body.TimeOfDay,
		Dosage:         body.Dosage,
		Active:         active,
	}
	ok, err := h.Repo.UpdateOwned(rem)
	if err != nil {
		h.internalError(w, err)
		return
	}
	if !ok {
		api.Error(w, http.StatusNotFound, "Reminder not found")
		return
	}
	api.JSON(w, http.StatusOK, rem)
}

func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	ok, err := h.Repo.DeleteOwned(id, session.UserID)
	if err != nil {
		h.internalError(w, err)
		return
	}
	if !ok {
		api.Error(w, http.StatusNotFound, "Reminder not found")
		return
	}
	api.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *ReminderHandler) internalError(w http.ResponseWriter, err error) {
	h.Logger.Error("reminder request failed", zap.Error(err))
	api.Error(w, http.StatusInternalServerError, "Internal error")
}
