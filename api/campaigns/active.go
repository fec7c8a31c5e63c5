package campaigns

import (
	"net/http"

	"brandia_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetActiveCampaignForProduct handles GET /campaigns/product/{id}. A hit
// counts one view on the matched campaign.
func (crm *CampaignRoutesManager) GetActiveCampaignForProduct(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	productId, err := uuid.Parse(idStr)
	if err != nil {
		crm.logger.Warn("Invalid product ID format", gecho.Field("id", idStr))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid product ID"),
			gecho.Send(),
		)
		return
	}

	campaign, err := crm.campaignService.GetActiveCampaignForProduct(r.Context(), productId)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch campaign", crm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"campaign": campaign}),
		gecho.Send(),
	)
}
