// internal/handler/medication_handler.go
package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/api"
	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

type MedicationHandler struct {
	MedicationRepo repository.MedicationRepositoryInterface
	ReportRepo     repository.ShortageReportRepositoryInterface
	Logger         *zap.Logger
}

func (h *MedicationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	meds, total, err := h.MedicationRepo.List((page-1)*pageSize, pageSize, r.URL.Query().Get("search"))
	if err != nil {
		h.Logger.Error("medication list failed", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, "Internal error")
		return
	}

	api.JSON(w, http.StatusOK, map[string]interface{}{
		"data": meds,
		"pagination": map[string]int{
			"page":        page,
			"page_size":   pageSize,
			"total_count": total,
			"total_pages": (total + pageSize - 1) / pageSize,
		},
	})
}

func (h *MedicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid medication id")
		return
	}

	med, err := h.MedicationRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, model.ErrMedicationNotFound) {
			api.Error(w, http.StatusNotFound, "Medication not found")
			return
		}
		h.Logger.Error("medication fetch failed", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, "Internal error")
		return
	}

	recentReports, err := h.ReportRepo.CountRecentByMedication(id, 24*time.Hour)
	if err != nil {
		h.Logger.Warn("report count failed", zap.Int("medication_id", id), zap.Error(err))
		recentReports = 0
	}

	api.JSON(w, http.StatusOK, map[string]interface{}{
		"medication":     med,
		"recent_reports": recentReports,
	})
}
