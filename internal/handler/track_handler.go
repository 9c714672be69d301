// internal/handler/track_handler.go
package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/service"
)

// pixelGIF is a transparent 1x1 GIF. The same bytes go out whether or not
// the tracking id matches anything, so the endpoint leaks nothing.
var pixelGIF, _ = base64.StdEncoding.DecodeString(
	"R0lGODlhAQABAIAAAAAAAP///yH5BAEAAAAALAAAAAABAAEAAAIBRAA7")

type TrackHandler struct {
	CampaignService *service.CampaignService
	Logger          *zap.Logger
}

// Open serves the pixel. The status update runs detached: the response
// must never wait on the database or reflect its outcome.
func (h *TrackHandler) Open(w http.ResponseWriter, r *http.Request) {
	trackingID := chi.URLParam(r, "trackingId")

	if trackingID != "" {
		go func() {
			defer func() {
				if rec := recover(); rec != nil {
					h.Logger.Error("open tracking panicked", zap.Any("panic", rec))
				}
			}()
			h.CampaignService.TrackOpen(trackingID)
		}()
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(pixelGIF)
}
