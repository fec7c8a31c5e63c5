package services

import (
	"testing"

	"brandia_server/lib"
	"brandia_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerItem(supplierId uuid.UUID, lineTotal uint64) *tables.OrderItem {
	supplierAmount, commissionAmount := lib.SplitAmount(lineTotal)
	return &tables.OrderItem{
		Id:               uuid.New(),
		SupplierId:       supplierId,
		LineTotal:        lineTotal,
		SupplierAmount:   supplierAmount,
		CommissionAmount: commissionAmount,
	}
}

func TestSumSupplierSharesMatchesItemSplits(t *testing.T) {
	supplierId := uuid.New()

	// Per-line splits floor the commission, so summing three 110-cent
	// lines gives a different supplier share than splitting 330 once.
	items := []*tables.OrderItem{
		ledgerItem(supplierId, 110),
		ledgerItem(supplierId, 110),
		ledgerItem(supplierId, 110),
	}

	shares := sumSupplierShares(items)
	require.Len(t, shares, 1)
	share := shares[supplierId]
	require.NotNil(t, share)

	var itemSupplierSum, itemCommissionSum uint64
	for _, item := range items {
		itemSupplierSum += item.SupplierAmount
		itemCommissionSum += item.CommissionAmount
	}

	assert.Equal(t, itemSupplierSum, share.supplierAmount)
	assert.Equal(t, itemCommissionSum, share.commissionAmount)
	assert.Equal(t, uint64(330), share.supplierAmount+share.commissionAmount)

	wholeSplit, _ := lib.SplitAmount(330)
	assert.NotEqual(t, wholeSplit, share.supplierAmount,
		"Re-splitting the supplier total would drift from the item snapshots")
}

func TestSumSupplierSharesGroupsBySupplier(t *testing.T) {
	first := uuid.New()
	second := uuid.New()

	items := []*tables.OrderItem{
		ledgerItem(first, 1000),
		ledgerItem(first, 2500),
		ledgerItem(second, 4200),
	}

	shares := sumSupplierShares(items)
	require.Len(t, shares, 2)

	assert.Equal(t, uint64(850+2125), shares[first].supplierAmount)
	assert.Equal(t, uint64(150+375), shares[first].commissionAmount)
	assert.Equal(t, uint64(3570), shares[second].supplierAmount)
	assert.Equal(t, uint64(630), shares[second].commissionAmount)
}
