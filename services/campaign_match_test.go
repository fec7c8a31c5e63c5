package services

import (
	"testing"
	"time"

	"brandia_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCampaignMatches(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	targeted := uuid.New()
	other := uuid.New()

	base := func() *tables.SupplierCampaign {
		return &tables.SupplierCampaign{
			Id:         uuid.New(),
			SupplierId: uuid.New(),
			Name:       "Summer promo",
			Status:     tables.CampaignActive,
		}
	}

	t.Run("nil campaign never matches", func(t *testing.T) {
		assert.False(t, CampaignMatches(nil, targeted, now))
	})

	t.Run("draft campaign never matches", func(t *testing.T) {
		c := base()
		c.Status = tables.CampaignDraft
		assert.True(t, CampaignMatches(base(), targeted, now))
		assert.False(t, CampaignMatches(c, targeted, now))
	})

	t.Run("ended campaign never matches", func(t *testing.T) {
		c := base()
		c.Status = tables.CampaignEnded
		assert.False(t, CampaignMatches(c, targeted, now))
	})

	t.Run("nil bounds are open ended", func(t *testing.T) {
		assert.True(t, CampaignMatches(base(), targeted, now))
	})

	t.Run("window contains now", func(t *testing.T) {
		c := base()
		c.StartsAt = &past
		c.EndsAt = &future
		assert.True(t, CampaignMatches(c, targeted, now))
	})

	t.Run("not yet started", func(t *testing.T) {
		c := base()
		c.StartsAt = &future
		assert.False(t, CampaignMatches(c, targeted, now))
	})

	t.Run("already ended", func(t *testing.T) {
		c := base()
		c.EndsAt = &past
		assert.False(t, CampaignMatches(c, targeted, now))
	})

	t.Run("end bound is exclusive", func(t *testing.T) {
		c := base()
		c.EndsAt = &now
		assert.False(t, CampaignMatches(c, targeted, now))
	})

	t.Run("start bound is inclusive", func(t *testing.T) {
		c := base()
		c.StartsAt = &now
		assert.True(t, CampaignMatches(c, targeted, now))
	})

	t.Run("nil target list covers every product", func(t *testing.T) {
		c := base()
		assert.True(t, CampaignMatches(c, other, now))
	})

	t.Run("target list containment", func(t *testing.T) {
		c := base()
		c.TargetProducts = []uuid.UUID{targeted}
		assert.True(t, CampaignMatches(c, targeted, now))
		assert.False(t, CampaignMatches(c, other, now))
	})

	t.Run("empty target list matches nothing", func(t *testing.T) {
		c := base()
		c.TargetProducts = []uuid.UUID{}
		assert.False(t, CampaignMatches(c, targeted, now))
	})

	t.Run("window and target must both hold", func(t *testing.T) {
		c := base()
		c.StartsAt = &future
		c.TargetProducts = []uuid.UUID{targeted}
		assert.False(t, CampaignMatches(c, targeted, now))
	})
}
