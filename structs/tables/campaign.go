package tables

import (
	"time"

	"github.com/google/uuid"
)

type CampaignStatus string

const (
	CampaignDraft  CampaignStatus = "draft"
	CampaignActive CampaignStatus = "active"
	CampaignEnded  CampaignStatus = "ended"
)

// SupplierCampaign is a promotional unit targeting a set of the supplier's
// products. A nil target list means the campaign applies to all of them.
type SupplierCampaign struct {
	tableName       struct{}       `bun:"table:supplier_campaigns,alias:sc"`
	Id              uuid.UUID      `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	SupplierId      uuid.UUID      `bun:"supplier_id,notnull,type:uuid" json:"supplier_id"`
	Name            string         `bun:"name,notnull" json:"name"`
	BannerText      string         `bun:"banner_text" json:"banner_text,omitempty"`
	DiscountPercent int            `bun:"discount_percent,notnull,default:0" json:"discount_percent"`
	TargetProducts  []uuid.UUID    `bun:"target_products,array" json:"target_products,omitempty"`
	StartsAt        *time.Time     `bun:"starts_at,nullzero" json:"starts_at,omitempty"`
	EndsAt          *time.Time     `bun:"ends_at,nullzero" json:"ends_at,omitempty"`
	Status          CampaignStatus `bun:"status,notnull,default:'draft'" json:"status"`
	Views           int64          `bun:"views,notnull,default:0" json:"views"`
	CreatedAt       time.Time      `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt       time.Time      `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}
