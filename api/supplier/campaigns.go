package supplier

import (
	"net/http"
	"strconv"
	"strings"

	"brandia_server/api/middleware"
	"brandia_server/handling"
	"brandia_server/lib"
	"brandia_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (srm *SupplierRoutesManager) supplierAndCampaignID(w http.ResponseWriter, r *http.Request) (supplierId, campaignId uuid.UUID, ok bool) {
	sup, found := middleware.GetSupplierFromContext(r.Context())
	if !found {
		gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
		return uuid.Nil, uuid.Nil, false
	}

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		srm.logger.Warn("Invalid campaign ID format", gecho.Field("id", idStr))
		gecho.BadRequest(w, gecho.WithMessage("Invalid campaign ID"), gecho.Send())
		return uuid.Nil, uuid.Nil, false
	}

	return sup.Id, id, true
}

func isCampaignInputError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "target products") || strings.HasPrefix(msg, "campaign end")
}

// GetCampaigns handles GET /supplier/campaigns
func (srm *SupplierRoutesManager) GetCampaigns(w http.ResponseWriter, r *http.Request) {
	sup, ok := middleware.GetSupplierFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))

	result, err := srm.campaignService.GetSupplierCampaigns(r.Context(), sup.Id, page, pageSize)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch campaigns", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"campaigns":  result.Data,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// GetCampaign handles GET /supplier/campaigns/{id}
func (srm *SupplierRoutesManager) GetCampaign(w http.ResponseWriter, r *http.Request) {
	supplierId, campaignId, ok := srm.supplierAndCampaignID(w, r)
	if !ok {
		return
	}

	campaign, err := srm.campaignService.GetSupplierCampaign(r.Context(), supplierId, campaignId)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch campaign", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"campaign": campaign}),
		gecho.Send(),
	)
}

// CreateCampaign handles POST /supplier/campaigns
func (srm *SupplierRoutesManager) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	sup, ok := middleware.GetSupplierFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateCampaignRequest](r)
	if err != nil {
		handling.HandleServiceError(err, "Invalid campaign body", srm.logger, w)
		return
	}

	campaign, err := srm.campaignService.CreateCampaign(r.Context(), sup.Id, body)
	if err != nil {
		if isCampaignInputError(err) {
			gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
			return
		}
		handling.HandleServiceError(err, "Failed to create campaign", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Campaign created"),
		gecho.WithData(map[string]any{"campaign": campaign}),
		gecho.Send(),
	)
}

// UpdateCampaign handles PATCH /supplier/campaigns/{id}
func (srm *SupplierRoutesManager) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	supplierId, campaignId, ok := srm.supplierAndCampaignID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateCampaignRequest](r)
	if err != nil {
		handling.HandleServiceError(err, "Invalid campaign body", srm.logger, w)
		return
	}

	campaign, err := srm.campaignService.UpdateCampaign(r.Context(), supplierId, campaignId, body)
	if err != nil {
		if isCampaignInputError(err) {
			gecho.BadRequest(w, gecho.WithMessage(err.Error()), gecho.Send())
			return
		}
		handling.HandleServiceError(err, "Failed to update campaign", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Campaign updated"),
		gecho.WithData(map[string]any{"campaign": campaign}),
		gecho.Send(),
	)
}

// DeleteCampaign handles DELETE /supplier/campaigns/{id}
func (srm *SupplierRoutesManager) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	supplierId, campaignId, ok := srm.supplierAndCampaignID(w, r)
	if !ok {
		return
	}

	if err := srm.campaignService.DeleteCampaign(r.Context(), supplierId, campaignId); err != nil {
		handling.HandleServiceError(err, "Failed to delete campaign", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Campaign deleted"),
		gecho.Send(),
	)
}
