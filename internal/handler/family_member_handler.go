// internal/handler/family_member_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/api"
	"github.com/alertemeds/alertemeds-backend/internal/auth"
	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

type FamilyMemberHandler struct {
	Repo   repository.FamilyMemberRepositoryInterface
	Logger *zap.Logger
}

type familyMemberPayload struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"` // "2006-01-02"
	Notes     string `json:"notes"`
}

func (p familyMemberPayload) birthDate() (*time.Time, error) {
	if p.BirthDate == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", p.BirthDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *FamilyMemberHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())
	members, err := h.Repo.ListByUser(session.UserID)
	if err != nil {
		h.internalError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]interface{}{"data": members})
}

func (h *FamilyMemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())

	var body familyMemberPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		api.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	birthDate, err := body.birthDate()
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid birth_date")
		return
	}

	member := &model.FamilyMember{
		UserID:    session.UserID,
		Name:      body.Name,
		BirthDate: birthDate,
		Notes:     body.Notes,
	}
	if err := h.Repo.Create(member); err != nil {
		h.internalError(w, err)
		return
	}
	api.JSON(w, http.StatusCreated, member)
}

func (h *FamilyMemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var body familyMemberPayload
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		api.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	birthDate, err := body.birthDate()
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid birth_date")
		return
	}

	member := &model.FamilyMember{
		ID:        id,
		UserID:    session.UserID,
		Name:      body.Name,
		BirthDate: birthDate,
		Notes:     body.Notes,
	}
	ok, err := h.Repo.UpdateOwned(member)
	if err != nil {
		h.internalError(w, err)
		return
	}
	if !ok {
		api.Error(w, http.StatusNotFound, "Family member not found")
		return
	}
	api.JSON(w, http.StatusOK, member)
}

func (h *FamilyMemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
		api.Error(w, http.StatusNotFound, "Family member not found")
		return
	}
	api.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *FamilyMemberHandler) internalError(w http.ResponseWriter, err error) {
	h.Logger.Error("family member request failed", zap.Error(err))
	api.Error(w, http.StatusInternalServerError, "Internal error")
}
