// internal/handler/cron_handler.go
package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/api"
	"github.com/alertemeds/alertemeds-backend/internal/service"
)

// CronHandler exposes the scheduler-triggered jobs. They run under their
// own deadline, well past what an interactive request gets.
type CronHandler struct {
	SyncService     *service.SyncService
	ReminderService *service.ReminderService
	MaxDuration     time.Duration
	Logger          *zap.Logger
}

func (h *CronHandler) SyncMedications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.MaxDuration)
	defer cancel()

	res, err := h.SyncService.Run(ctx)
	if err != nil {
		h.Logger.Error("medication sync failed", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	api.JSON(w, http.StatusOK, res)
}

func (h *CronHandler) DispatchReminders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.MaxDuration)
	defer cancel()

	dispatched, err := h.ReminderService.DispatchDue(ctx, time.Now())
	if err != nil {
		h.Logger.Error("reminder dispatch failed", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	api.JSON(w, http.StatusOK, map[string]int{"dispatched": dispatched})
}
