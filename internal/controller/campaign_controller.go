// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alertemeds/alertemeds-backend/internal/api"
	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/service"
)

// CampaignController is the admin outreach surface: campaign CRUD, draft
// generation, review, sending and stats.
type CampaignController struct {
	CampaignService *service.CampaignService
	Logger          *zap.Logger
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Template string `json:"template"`
		Mode     string `json:"mode"`
		Subject  string `json:"subject"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Name == "" || body.Type == "" || body.Template == "" {
		api.Error(w, http.StatusBadRequest, "name, type and template are required")
		return
	}
	if body.Mode != "" && body.Mode != model.ModeAuto && body.Mode != model.ModeSemiAuto {
		api.Error(w, http.StatusBadRequest, "Invalid mode")
		return
	}

	campaign, err := c.CampaignService.CreateCampaign(body.Name, body.Type, body.Template, body.Mode, body.Subject)
	if err != nil {
		c.writeError(w, err)
		return
	}
	api.JSON(w, http.StatusCreated, campaign)
}

func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
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

	campaigns, total, err := c.CampaignService.CampaignRepo.ListCampaigns(
		(page-1)*pageSize, pageSize, r.URL.Query().Get("type"))
	if err != nil {
		c.writeError(w, err)
		return
	}

	api.JSON(w, http.StatusOK, map[string]interface{}{
		"data": campaigns,
		"pagination": map[string]int{
			"page":        page,
			"page_size":   pageSize,
			"total_count": total,
			"total_pages": (total + pageSize - 1) / pageSize,
		},
	})
}

func (c *CampaignController) GetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	campaign, err := c.CampaignService.CampaignRepo.GetByID(id)
	if err != nil {
		c.writeError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, campaign)
}

func (c *CampaignController) ListEmails(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	if _, err := c.CampaignService.CampaignRepo.GetByID(id); err != nil {
		c.writeError(w, err)
		return
	}
	emails, err := c.CampaignService.EmailRepo.ListByCampaign(id)
	if err != nil {
		c.writeError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]interface{}{"data": emails})
}

func (c *CampaignController) GenerateEmails(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	created, err := c.CampaignService.GenerateEmails(id)
	if err != nil {
		c.writeError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]int{"created": created})
}

func (c *CampaignController) SendCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}

	var body struct {
		EmailID *int `json:"email_id"`
	}
	// empty body means "send the whole approved batch"
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	queued, err := c.CampaignService.Send(id, body.EmailID)
	if err != nil {
		c.writeError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]int{"queued": queued})
}

func (c *CampaignController) GetStats(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid campaign id")
		return
	}
	stats, err := c.CampaignService.Stats(id)
	if err != nil {
		c.writeError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]interface{}{"campaign_id": id, "stats": stats})
}

func (c *CampaignController) ReviewEmail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid email id")
		return
	}

	var body struct {
		Action  string `json:"action"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	switch body.Action {
	case service.ActionApprove, service.ActionReject, service.ActionEdit:
	default:
		api.Error(w, http.StatusBadRequest, "Invalid action")
		return
	}

	email, err := c.CampaignService.Review(id, body.Action, body.Subject, body.Body)
	if err != nil {
		c.writeError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, email)
}

func campaignID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// writeError maps service errors onto the response taxonomy. Unexpected
// errors stay generic for the client and detailed in the logs.
func (c *CampaignController) writeError(w http.ResponseWriter, err error) {
	var invalid *model.ErrInvalidTransition
	switch {
	case errors.Is(err, model.ErrCampaignNotFound):
		api.Error(w, http.StatusNotFound, "Campaign not found")
	case errors.Is(err, model.ErrEmailNotFound):
		api.Error(w, http.StatusNotFound, "Email not found")
	case errors.As(err, &invalid):
		api.Error(w, http.StatusBadRequest, invalid.Error())
	default:
		c.Logger.Error("campaign request failed", zap.Error(err))
		api.Error(w, http.StatusInternalServerError, err.Error())
	}
}
