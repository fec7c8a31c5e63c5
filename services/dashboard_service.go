package services

import (
	"context"
	"time"

	"brandia_server/database"
	"brandia_server/lib"
	"brandia_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type DashboardService struct {
	logger         *gecho.Logger
	db             *database.DB
	paymentService *PaymentService
}

func NewDashboardService(logger *gecho.Logger, db *database.DB, paymentService *PaymentService) *DashboardService {
	return &DashboardService{
		logger:         logger,
		db:             db,
		paymentService: paymentService,
	}
}

// DashboardStats is the supplier dashboard summary. Revenue figures are the
// supplier's share in cents, not gross order value.
type DashboardStats struct {
	TotalRevenue     uint64            `json:"total_revenue"`
	TotalItemsSold   int               `json:"total_items_sold"`
	PendingItems     int               `json:"pending_items"`
	ActiveProducts   int               `json:"active_products"`
	TotalProducts    int               `json:"total_products"`
	AvailableBalance uint64            `json:"available_balance"`
	TopProducts      []TopProductEntry `json:"top_products"`
	GeneratedAt      time.Time         `json:"generated_at"`
}

// TopProductEntry ranks a product by delivered units
type TopProductEntry struct {
	ProductId   uuid.UUID `bun:"product_id" json:"product_id"`
	ProductName string    `bun:"product_name" json:"product_name"`
	UnitsSold   int       `bun:"units_sold" json:"units_sold"`
	Revenue     uint64    `bun:"revenue" json:"revenue"`
}

type revenueRow struct {
	TotalRevenue   uint64 `bun:"total_revenue"`
	TotalItemsSold int    `bun:"total_items_sold"`
}

type productCountRow struct {
	ActiveProducts int `bun:"active_products"`
	TotalProducts  int `bun:"total_products"`
}

// GetSupplierStats assembles the dashboard summary from independent
// aggregates. A failure in any one of them fails the whole call; partial
// dashboards would be misleading.
func (ds *DashboardService) GetSupplierStats(ctx context.Context, supplierId uuid.UUID) (*DashboardStats, error) {
	stats := &DashboardStats{GeneratedAt: time.Now()}

	// Earned revenue counts items that were actually paid for and not
	// cancelled afterwards
	revenue, err := database.RawQueryOne[revenueRow](ds.db, ctx,
		`SELECT
			COALESCE(SUM(supplier_amount), 0) AS total_revenue,
			COALESCE(SUM(quantity), 0) AS total_items_sold
		 FROM order_items
		 WHERE supplier_id = ?
		   AND payment_status = 'paid'
		   AND fulfillment_status != 'cancelled'`, supplierId)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if revenue != nil {
		stats.TotalRevenue = revenue.TotalRevenue
		stats.TotalItemsSold = revenue.TotalItemsSold
	}

	pendingCount, err := database.Query[tables.OrderItem](ds.db).
		Where("supplier_id", supplierId).
		WhereRaw("fulfillment_status IN (?, ?)", tables.FulfillmentPending, tables.FulfillmentProcessing).
		Count(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	stats.PendingItems = pendingCount

	counts, err := database.RawQueryOne[productCountRow](ds.db, ctx,
		`SELECT
			COUNT(*) FILTER (WHERE is_active AND status = 'published') AS active_products,
			COUNT(*) AS total_products
		 FROM products
		 WHERE supplier_id = ?`, supplierId)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if counts != nil {
		stats.ActiveProducts = counts.ActiveProducts
		stats.TotalProducts = counts.TotalProducts
	}

	balance, err := ds.paymentService.GetSupplierBalance(ctx, supplierId)
	if err != nil {
		return nil, err
	}
	stats.AvailableBalance = balance.AvailableAmount

	topProducts, err := database.RawQuery[TopProductEntry](ds.db, ctx,
		`SELECT
			product_id,
			product_name,
			COALESCE(SUM(quantity), 0) AS units_sold,
			COALESCE(SUM(supplier_amount), 0) AS revenue
		 FROM order_items
		 WHERE supplier_id = ?
		   AND fulfillment_status = 'delivered'
		 GROUP BY product_id, product_name
		 ORDER BY units_sold DESC, revenue DESC
		 LIMIT 5`, supplierId)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	stats.TopProducts = topProducts

	return stats, nil
}
