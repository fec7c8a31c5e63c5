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

type PaymentService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewPaymentService(logger *gecho.Logger, db *database.DB) *PaymentService {
	return &PaymentService{
		logger: logger,
		db:     db,
	}
}

// SupplierBalance sums the supplier's ledger by status
type SupplierBalance struct {
	PendingAmount   uint64 `bun:"pending_amount" json:"pending_amount"`
	AvailableAmount uint64 `bun:"available_amount" json:"available_amount"`
	PaidOutAmount   uint64 `bun:"paid_out_amount" json:"paid_out_amount"`
}

// GetSupplierPayments lists the supplier's ledger rows, newest first, with
// an optional status filter
func (ps *PaymentService) GetSupplierPayments(ctx context.Context, supplierId uuid.UUID, status string, page, pageSize int) (*database.PaginationResult[tables.SupplierPayment], error) {
	query := database.Query[tables.SupplierPayment](ps.db).
		Where("supplier_id", supplierId).
		OrderBy("created_at", database.DESC)

	if status != "" {
		query = query.Where("status", status)
	}

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	return result, nil
}

// GetSupplierBalance aggregates the supplier's ledger into pending,
// available and paid out totals
func (ps *PaymentService) GetSupplierBalance(ctx context.Context, supplierId uuid.UUID) (*SupplierBalance, error) {
	balance, err := database.RawQueryOne[SupplierBalance](ps.db, ctx,
		`SELECT
			COALESCE(SUM(supplier_amount) FILTER (WHERE status = 'pending'), 0) AS pending_amount,
			COALESCE(SUM(supplier_amount) FILTER (WHERE status = 'available'), 0) AS available_amount,
			COALESCE(SUM(supplier_amount) FILTER (WHERE status = 'paid_out'), 0) AS paid_out_amount
		 FROM supplier_payments
		 WHERE supplier_id = ?`, supplierId)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if balance == nil {
		return &SupplierBalance{}, nil
	}

	return balance, nil
}

// MarkAvailable flips the supplier's pending ledger row for an order to
// available. Rows already past pending are left alone.
func (ps *PaymentService) MarkAvailable(ctx context.Context, supplierId, orderId uuid.UUID) error {
	rows, err := database.Query[tables.SupplierPayment](ps.db).
		Where("supplier_id", supplierId).
		Where("order_id", orderId).
		Where("status", tables.PaymentPending).
		Update(ctx, map[string]any{
			"status":     tables.PaymentAvailable,
			"updated_at": time.Now(),
		})
	if err != nil {
		return lib.MapDBError(err)
	}

	if rows > 0 {
		ps.logger.Info("Supplier payment released",
			gecho.Field("supplier_id", supplierId),
			gecho.Field("order_id", orderId))
	}

	return nil
}
