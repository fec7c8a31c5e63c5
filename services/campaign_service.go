package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"brandia_server/database"
	"brandia_server/lib"
	"brandia_server/structs"
	"brandia_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CampaignService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCampaignService(logger *gecho.Logger, db *database.DB) *CampaignService {
	return &CampaignService{
		logger: logger,
		db:     db,
	}
}

// CampaignMatches reports whether a campaign applies to a product at the
// given moment. Active status, the schedule window (nil bounds are open
// ended) and the target list (nil targets everything) must all agree.
func CampaignMatches(campaign *tables.SupplierCampaign, productId uuid.UUID, now time.Time) bool {
	if campaign == nil || campaign.Status != tables.CampaignActive {
		return false
	}

	if campaign.StartsAt != nil && now.Before(*campaign.StartsAt) {
		return false
	}
	if campaign.EndsAt != nil && !now.Before(*campaign.EndsAt) {
		return false
	}

	if campaign.TargetProducts == nil {
		return true
	}

	return slices.Contains(campaign.TargetProducts, productId)
}

// GetSupplierCampaigns lists the supplier's own campaigns, newest first
func (cs *CampaignService) GetSupplierCampaigns(ctx context.Context, supplierId uuid.UUID, page, pageSize int) (*database.PaginationResult[tables.SupplierCampaign], error) {
	query := database.Query[tables.SupplierCampaign](cs.db).
		Where("supplier_id", supplierId).
		OrderBy("created_at", database.DESC)

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	return result, nil
}

// GetSupplierCampaign retrieves one campaign owned by the supplier
func (cs *CampaignService) GetSupplierCampaign(ctx context.Context, supplierId, campaignId uuid.UUID) (*tables.SupplierCampaign, error) {
	campaign, err := database.Query[tables.SupplierCampaign](cs.db).
		Where("id", campaignId).
		Where("supplier_id", supplierId).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if campaign == nil {
		return nil, lib.ErrNotFound
	}

	return campaign, nil
}

// CreateCampaign creates a campaign for the supplier. Target products must
// belong to the supplier; a schedule with both bounds must be ordered.
func (cs *CampaignService) CreateCampaign(ctx context.Context, supplierId uuid.UUID, req *structs.CreateCampaignRequest) (*tables.SupplierCampaign, error) {
	if err := validateSchedule(req.StartsAt, req.EndsAt); err != nil {
		return nil, err
	}

	if err := cs.validateTargetOwnership(ctx, supplierId, req.TargetProducts); err != nil {
		return nil, err
	}

	status := tables.CampaignDraft
	if req.Status != "" {
		status = tables.CampaignStatus(req.Status)
	}

	campaign := &tables.SupplierCampaign{
		Id:              uuid.New(),
		SupplierId:      supplierId,
		Name:            req.Name,
		BannerText:      req.BannerText,
		DiscountPercent: req.DiscountPercent,
		TargetProducts:  req.TargetProducts,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		Status:          status,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	created, err := database.Query[tables.SupplierCampaign](cs.db).Insert(ctx, campaign)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	cs.logger.Info("Campaign created",
		gecho.Field("campaign_id", created.Id),
		gecho.Field("supplier_id", supplierId))
	return created, nil
}

// UpdateCampaign applies a partial update to a campaign the supplier owns
func (cs *CampaignService) UpdateCampaign(ctx context.Context, supplierId, campaignId uuid.UUID, req *structs.UpdateCampaignRequest) (*tables.SupplierCampaign, error) {
	existing, err := cs.GetSupplierCampaign(ctx, supplierId, campaignId)
	if err != nil {
		return nil, err
	}

	startsAt := existing.StartsAt
	if req.StartsAt != nil {
		startsAt = req.StartsAt
	}
	endsAt := existing.EndsAt
	if req.EndsAt != nil {
		endsAt = req.EndsAt
	}
	if err := validateSchedule(startsAt, endsAt); err != nil {
		return nil, err
	}

	if req.TargetProducts != nil {
		if err := cs.validateTargetOwnership(ctx, supplierId, req.TargetProducts); err != nil {
			return nil, err
		}
	}

	updateData := map[string]any{"updated_at": time.Now()}
	if req.Name != nil {
		updateData["name"] = *req.Name
	}
	if req.BannerText != nil {
		updateData["banner_text"] = *req.BannerText
	}
	if req.DiscountPercent != nil {
		updateData["discount_percent"] = *req.DiscountPercent
	}
	if req.TargetProducts != nil {
		updateData["target_products"] = req.TargetProducts
	}
	if req.StartsAt != nil {
		updateData["starts_at"] = req.StartsAt
	}
	if req.EndsAt != nil {
		updateData["ends_at"] = req.EndsAt
	}
	if req.Status != nil {
		updateData["status"] = *req.Status
	}

	rows, err := database.Query[tables.SupplierCampaign](cs.db).
		Where("id", campaignId).
		Where("supplier_id", supplierId).
		Update(ctx, updateData)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	return cs.GetSupplierCampaign(ctx, supplierId, campaignId)
}

// DeleteCampaign removes a campaign the supplier owns
func (cs *CampaignService) DeleteCampaign(ctx context.Context, supplierId, campaignId uuid.UUID) error {
	rows, err := database.Query[tables.SupplierCampaign](cs.db).
		Where("id", campaignId).
		Where("supplier_id", supplierId).
		Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.logger.Info("Campaign deleted",
		gecho.Field("campaign_id", campaignId),
		gecho.Field("supplier_id", supplierId))
	return nil
}

// GetActiveCampaignForProduct returns the currently running campaign that
// covers a product, or not found when none applies. Each hit counts a view.
func (cs *CampaignService) GetActiveCampaignForProduct(ctx context.Context, productId uuid.UUID) (*tables.SupplierCampaign, error) {
	campaign, err := database.RawQueryOne[tables.SupplierCampaign](cs.db, ctx,
		`SELECT sc.* FROM supplier_campaigns sc
		 JOIN products p ON p.supplier_id = sc.supplier_id
		 WHERE p.id = ?
		   AND sc.status = 'active'
		   AND (sc.starts_at IS NULL OR sc.starts_at <= now())
		   AND (sc.ends_at IS NULL OR sc.ends_at > now())
		   AND (sc.target_products IS NULL OR ? = ANY(sc.target_products))
		 ORDER BY sc.created_at DESC
		 LIMIT 1`, productId, productId)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if campaign == nil {
		return nil, lib.ErrNotFound
	}

	// Count the impression without racing concurrent readers
	if _, err := database.RawExec(cs.db, ctx,
		`UPDATE supplier_campaigns SET views = views + 1 WHERE id = ?`, campaign.Id); err != nil {
		cs.logger.Warn("Failed to count campaign view",
			gecho.Field("campaign_id", campaign.Id),
			gecho.Field("error", err))
	}

	return campaign, nil
}

// validateTargetOwnership ensures every targeted product belongs to the
// supplier. A nil or empty target list is always valid.
func (cs *CampaignService) validateTargetOwnership(ctx context.Context, supplierId uuid.UUID, targets []uuid.UUID) error {
	if len(targets) == 0 {
		return nil
	}

	count, err := database.Query[tables.Product](cs.db).
		WhereIn("id", targets).
		Where("supplier_id", supplierId).
		Count(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if count != len(targets) {
		return fmt.Errorf("target products must belong to your catalog")
	}

	return nil
}

func validateSchedule(startsAt, endsAt *time.Time) error {
	if startsAt != nil && endsAt != nil && !endsAt.After(*startsAt) {
		return fmt.Errorf("campaign end must be after its start")
	}
	return nil
}
