// internal/handler/alert_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/api"
	"github.com/alertemeds/alertemeds-backend/internal/auth"
	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/service"
)

type AlertHandler struct {
	AlertService *service.AlertService
	Logger       *zap.Logger
}

func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())
	alerts, err := h.AlertService.ListAlerts(session.UserID)
	if err != nil {
		h.Logger.Error("alert list failed", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, "Internal error")
		return
	}
	api.JSON(w, http.StatusOK, map[string]interface{}{"data": alerts})
}

func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())

	var body struct {
		MedicationID int `json:"medication_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.MedicationID == 0 {
		api.Error(w, http.StatusBadRequest, "medication_id is required")
		return
	}

	alert, err := h.AlertService.AddAlert(session.UserID, body.MedicationID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrMedicationNotFound):
			api.Error(w, http.StatusNotFound, "Medication not found")
		case errors.Is(err, model.ErrAlertExists):
			api.Error(w, http.StatusBadRequest, "Alert already exists")
		default:
			h.Logger.Error("alert create failed", zap.Error(err))
			api.Error(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}
	api.JSON(w, http.StatusCreated, alert)
}

func (h *AlertHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid alert id")
		return
	}

	if err := h.AlertService.RemoveAlert(id, session.UserID); err != nil {
		if errors.Is(err, model.ErrAlertNotFound) {
			api.Error(w, http.StatusNotFound, "Alert not found")
			return
		}
		h.Logger.Error("alert delete failed", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, "Internal error")
		return
	}
	api.JSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
