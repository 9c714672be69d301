// internal/handler/report_handler.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/api"
	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/ratelimit"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

// duplicateWindow is how long one IP must wait before reporting the same
// medication again.
const duplicateWindow = 24 * time.Hour

type ReportHandler struct {
	ReportRepo     repository.ShortageReportRepositoryInterface
	MedicationRepo repository.MedicationRepositoryInterface
	Logger         *zap.Logger
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MedicationID int    `json:"medication_id"`
		City         string `json:"city"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.MedicationID == 0 {
		api.Error(w, http.StatusBadRequest, "medication_id is required")
		return
	}

	if _, err := h.MedicationRepo.GetByID(body.MedicationID); err != nil {
		if errors.Is(err, model.ErrMedicationNotFound) {
			api.Error(w, http.StatusNotFound, "Medication not found")
			return
		}
		h.internalError(w, err)
		return
	}

	ip := ratelimit.ClientIP(r)
	recent, err := h.ReportRepo.RecentExists(body.MedicationID, ip, duplicateWindow)
	if err != nil {
		h.internalError(w, err)
		return
	}
	if recent {
		api.Error(w, http.StatusTooManyRequests, "A report for this medication was already filed recently")
		return
	}

	report := &model.ShortageReport{
		MedicationID: body.MedicationID,
		ReporterIP:   ip,
		City:         body.City,
	}
	if err := h.ReportRepo.Create(report); err != nil {
		h.internalError(w, err)
		return
	}
	api.JSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) internalError(w http.ResponseWriter, err error) {
	h.Logger.Error("shortage report failed", zap.Error(err))
	api.Error(w, http.StatusInternalServerError, "Internal error")
}
