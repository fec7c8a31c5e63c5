package campaigns

import (
	"brandia_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CampaignRoutesManager struct {
	logger          *gecho.Logger
	campaignService *services.CampaignService
}

func NewCampaignRoutesManager(
	logger *gecho.Logger,
	campaignService *services.CampaignService,
) *CampaignRoutesManager {
	return &CampaignRoutesManager{
		logger:          logger,
		campaignService: campaignService,
	}
}

func (crm *CampaignRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/campaigns/product/{id}", crm.GetActiveCampaignForProduct)
}
