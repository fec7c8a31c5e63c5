package services

import (
	"context"
	"fmt"
	"runtime/debug"
	"slices"
	"time"

	"brandia_server/database"
	"brandia_server/lib"
	"brandia_server/structs"
	"brandia_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	db             *database.DB
	productService *ProductService
	emailService   *EmailService
	paymentService *PaymentService
}

func NewOrderService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	productService *ProductService,
	emailService *EmailService,
	paymentService *PaymentService,
) *OrderService {
	return &OrderService{
		logger:         logger,
		cfg:            cfg,
		db:             db,
		productService: productService,
		emailService:   emailService,
		paymentService: paymentService,
	}
}

// OrderListOptions contains filtering and pagination for order item listings
type OrderListOptions struct {
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	Status     string `json:"status,omitempty"`
	SearchTerm string `json:"search_term,omitempty"`
}

// supplierContact carries the address fields needed for order alert emails
type supplierContact struct {
	SupplierId  uuid.UUID `bun:"supplier_id"`
	Email       string    `bun:"email"`
	CompanyName string    `bun:"company_name"`
}

// buyerContact carries the buyer fields needed for shipping update emails
type buyerContact struct {
	Email       string `bun:"email"`
	FirstName   string `bun:"first_name"`
	OrderNumber string `bun:"order_number"`
}

// supplierShare accumulates a supplier's payable and commission cents
// across the order's items
type supplierShare struct {
	supplierAmount   uint64
	commissionAmount uint64
}

// sumSupplierShares totals the per-item splits per supplier. The ledger is
// built from these sums so it always matches the item snapshots cent for
// cent.
func sumSupplierShares(items []*tables.OrderItem) map[uuid.UUID]*supplierShare {
	shares := make(map[uuid.UUID]*supplierShare)
	for _, item := range items {
		share := shares[item.SupplierId]
		if share == nil {
			share = &supplierShare{}
			shares[item.SupplierId] = share
		}
		share.supplierAmount += item.SupplierAmount
		share.commissionAmount += item.CommissionAmount
	}
	return shares
}

// CreateOrderFromRequest places an order: validates the requested products,
// snapshots price and name, decrements stock, and writes the order, its
// items, and one supplier payment ledger row per involved supplier in a
// single transaction. Emails go out after commit and never fail the order.
func (os *OrderService) CreateOrderFromRequest(ctx context.Context, req *structs.OrderRequest, userId uuid.UUID, buyerEmail, buyerName string) (order *tables.Order, err error) {
	productIds := make([]uuid.UUID, 0, len(req.Items))
	quantities := make(map[uuid.UUID]int, len(req.Items))
	for _, item := range req.Items {
		if _, dup := quantities[item.ProductId]; dup {
			return nil, fmt.Errorf("duplicate product in order: %s", item.ProductId)
		}
		productIds = append(productIds, item.ProductId)
		quantities[item.ProductId] = item.Quantity
	}

	products, err := os.productService.GetProductsByIds(ctx, productIds)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*tables.Product, len(products))
	for i := range products {
		product := &products[i]
		if product.Status != tables.ProductPublished || !product.IsActive {
			return nil, fmt.Errorf("product %s is no longer available", product.Name)
		}
		if product.StockQuantity < quantities[product.Id] {
			return nil, fmt.Errorf("insufficient stock for product %s", product.Name)
		}
		productMap[product.Id] = product
	}

	for _, id := range productIds {
		if _, exists := productMap[id]; !exists {
			return nil, lib.ErrNotFound
		}
	}

	tx, err := os.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			os.logger.Error(fmt.Sprintf("panic recovered in CreateOrderFromRequest: %v", p),
				gecho.Field("stack_trace", string(debug.Stack())))
			tx.Rollback()
			err = fmt.Errorf("panic recovered: %v", p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	orderId := uuid.New()
	orderNumber := lib.GenerateOrderNumber()

	country := req.ShippingCountry
	if country == "" {
		country = "NL"
	}

	var totalAmount uint64
	for id, qty := range quantities {
		totalAmount += productMap[id].Price * uint64(qty)
	}

	order = &tables.Order{
		Id:                 orderId,
		OrderNumber:        orderNumber,
		UserId:             userId,
		TotalAmount:        totalAmount,
		ShippingName:       req.ShippingName,
		ShippingStreet:     req.ShippingStreet,
		ShippingCity:       req.ShippingCity,
		ShippingPostalCode: req.ShippingPostalCode,
		ShippingCountry:    country,
		PaymentStatus:      tables.PaymentStatusUnpaid,
		Status:             tables.OrderStatusPending,
		CreatedAt:          time.Now(),
		UpdatedAt:          time.Now(),
	}

	_, err = tx.NewInsert().Model(order).Exec(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	// Order items with immutable snapshots; per-supplier ledger totals
	// accumulate from the same split the items record
	orderItems := make([]*tables.OrderItem, 0, len(req.Items))
	for _, reqItem := range req.Items {
		product := productMap[reqItem.ProductId]
		lineTotal := product.Price * uint64(reqItem.Quantity)
		supplierAmount, commissionAmount := lib.SplitAmount(lineTotal)

		orderItems = append(orderItems, &tables.OrderItem{
			Id:                uuid.New(),
			OrderId:           orderId,
			ProductId:         product.Id,
			SupplierId:        product.SupplierId,
			Quantity:          reqItem.Quantity,
			UnitPrice:         product.Price,
			LineTotal:         lineTotal,
			ProductName:       product.Name,
			SupplierAmount:    supplierAmount,
			CommissionAmount:  commissionAmount,
			FulfillmentStatus: tables.FulfillmentPending,
			PaymentStatus:     tables.PaymentStatusUnpaid,
			CreatedAt:         time.Now(),
			UpdatedAt:         time.Now(),
		})
	}

	supplierShares := sumSupplierShares(orderItems)

	_, err = tx.NewInsert().Model(&orderItems).Exec(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	// Decrement stock inside the transaction; the guard keeps concurrent
	// orders from driving stock negative
	for id, qty := range quantities {
		res, stockErr := tx.NewUpdate().
			Model((*tables.Product)(nil)).
			Set("stock_quantity = stock_quantity - ?", qty).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", id).
			Where("stock_quantity >= ?", qty).
			Exec(ctx)
		if stockErr != nil {
			err = lib.MapDBError(stockErr)
			return nil, err
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			err = fmt.Errorf("insufficient stock for product %s", productMap[id].Name)
			return nil, err
		}
	}

	// One ledger row per supplier per order. The row carries the sum of the
	// item splits, never a fresh split of the supplier total: the floor in
	// SplitAmount rounds differently per granularity, and the ledger must
	// agree with the item snapshots to the cent.
	payments := make([]*tables.SupplierPayment, 0, len(supplierShares))
	for supplierId, share := range supplierShares {
		payments = append(payments, &tables.SupplierPayment{
			Id:               uuid.New(),
			SupplierId:       supplierId,
			OrderId:          orderId,
			SupplierAmount:   share.supplierAmount,
			CommissionAmount: share.commissionAmount,
			Status:           tables.PaymentPending,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		})
	}

	_, err = tx.NewInsert().Model(&payments).Exec(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	if err = tx.Commit(); err != nil {
		return nil, lib.MapDBError(err)
	}

	order.Items = make([]tables.OrderItem, len(orderItems))
	for i, item := range orderItems {
		order.Items[i] = *item
	}

	// Emails only after the order is durable
	go os.sendOrderEmails(buyerEmail, buyerName, order, orderItems)

	os.logger.Info("Order created",
		gecho.Field("order_id", orderId),
		gecho.Field("order_number", orderNumber),
		gecho.Field("total_amount", totalAmount),
		gecho.Field("supplier_count", len(supplierShares)))
	return order, nil
}

// sendOrderEmails delivers the buyer confirmation and one alert per
// involved supplier. Failures are logged; the order stands either way.
func (os *OrderService) sendOrderEmails(buyerEmail, buyerName string, order *tables.Order, items []*tables.OrderItem) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result := os.emailService.SendOrderConfirmationEmail(buyerEmail, buyerName, order, items)
	if !result.Success {
		os.logger.Error("Order confirmation email failed",
			gecho.Field("order_number", order.OrderNumber),
			gecho.Field("error", result.Error))
	}

	itemsBySupplier := make(map[uuid.UUID][]*tables.OrderItem)
	for _, item := range items {
		itemsBySupplier[item.SupplierId] = append(itemsBySupplier[item.SupplierId], item)
	}

	supplierIds := make([]uuid.UUID, 0, len(itemsBySupplier))
	for id := range itemsBySupplier {
		supplierIds = append(supplierIds, id)
	}

	contacts, err := database.RawQuery[supplierContact](os.db, ctx,
		`SELECT s.id AS supplier_id, u.email, s.company_name
		 FROM suppliers s
		 JOIN users u ON u.id = s.user_id
		 WHERE s.id IN (?)`, bun.In(supplierIds))
	if err != nil {
		os.logger.Error("Failed to load supplier contacts for order alerts",
			gecho.Field("order_number", order.OrderNumber),
			gecho.Field("error", err))
		return
	}

	for _, contact := range contacts {
		result := os.emailService.SendSupplierOrderAlertEmail(
			contact.Email, contact.CompanyName, order.OrderNumber, itemsBySupplier[contact.SupplierId])
		if !result.Success {
			os.logger.Error("Supplier order alert email failed",
				gecho.Field("order_number", order.OrderNumber),
				gecho.Field("supplier_id", contact.SupplierId),
				gecho.Field("error", result.Error))
		}
	}
}

// GetOrdersByUserId retrieves the buyer's own orders, newest first
func (os *OrderService) GetOrdersByUserId(ctx context.Context, userId uuid.UUID, page, pageSize int) (*database.PaginationResult[tables.Order], error) {
	query := database.Query[tables.Order](os.db).
		Where("user_id", userId).
		WhereNull("deleted_at").
		With("Items").
		OrderBy("created_at", database.DESC)

	result, err := database.Paginate(query, ctx, page, pageSize)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	return result, nil
}

// GetUserOrderById retrieves one of the buyer's own orders. Someone else's
// order id yields not found, same as a nonexistent one.
func (os *OrderService) GetUserOrderById(ctx context.Context, userId, orderId uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("id", orderId).
		Where("user_id", userId).
		WhereNull("deleted_at").
		With("Items").
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}

	return order, nil
}

// GetSupplierOrderItems lists the order items belonging to the supplier's
// products, with status filter and product name search
func (os *OrderService) GetSupplierOrderItems(ctx context.Context, supplierId uuid.UUID, opts *OrderListOptions) (*database.PaginationResult[tables.OrderItem], error) {
	if opts == nil {
		opts = &OrderListOptions{}
	}

	if opts.Status != "" && !isKnownFulfillmentStatus(tables.FulfillmentStatus(opts.Status)) {
		return nil, fmt.Errorf("invalid fulfillment status: %s", opts.Status)
	}

	query := database.Query[tables.OrderItem](os.db).
		Where("supplier_id", supplierId).
		OrderBy("created_at", database.DESC)

	if opts.Status != "" {
		query = query.Where("fulfillment_status", opts.Status)
	}

	if opts.SearchTerm != "" {
		query = query.WhereILike("product_name", "%"+opts.SearchTerm+"%")
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	return result, nil
}

// UpdateFulfillmentStatus moves an order item through the fulfillment state
// machine. The supplier scope is part of the lookup; a foreign item is not
// found. Shipping triggers the buyer update email; delivery of the
// supplier's last open item in the order releases their ledger row.
func (os *OrderService) UpdateFulfillmentStatus(ctx context.Context, supplierId, itemId uuid.UUID, req *structs.FulfillmentUpdateRequest) (*tables.OrderItem, error) {
	item, err := database.Query[tables.OrderItem](os.db).
		Where("id", itemId).
		Where("supplier_id", supplierId).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if item == nil {
		return nil, lib.ErrNotFound
	}

	newStatus := tables.FulfillmentStatus(req.Status)
	if !IsValidFulfillmentTransition(item.FulfillmentStatus, newStatus) {
		return nil, fmt.Errorf("invalid fulfillment transition from %s to %s", item.FulfillmentStatus, newStatus)
	}

	updateData := map[string]any{
		"fulfillment_status": newStatus,
		"updated_at":         time.Now(),
	}
	if req.TrackingNumber != "" {
		updateData["tracking_number"] = req.TrackingNumber
	}

	rows, err := database.Query[tables.OrderItem](os.db).
		Where("id", itemId).
		Where("supplier_id", supplierId).
		Update(ctx, updateData)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if rows == 0 {
		return nil, lib.ErrNotFound
	}

	item.FulfillmentStatus = newStatus
	if req.TrackingNumber != "" {
		item.TrackingNumber = req.TrackingNumber
	}

	switch newStatus {
	case tables.FulfillmentShipped:
		go os.sendShippingUpdate(item)
	case tables.FulfillmentDelivered:
		if err := os.releaseLedgerIfComplete(ctx, supplierId, item.OrderId); err != nil {
			os.logger.Error("Failed to release supplier ledger row",
				gecho.Field("error", err),
				gecho.Field("supplier_id", supplierId),
				gecho.Field("order_id", item.OrderId))
		}
	}

	os.logger.Info("Fulfillment status updated",
		gecho.Field("item_id", itemId),
		gecho.Field("supplier_id", supplierId),
		gecho.Field("status", newStatus))
	return item, nil
}

// releaseLedgerIfComplete flips the supplier's ledger row for an order to
// available once every one of their items in that order is delivered
func (os *OrderService) releaseLedgerIfComplete(ctx context.Context, supplierId, orderId uuid.UUID) error {
	open, err := database.Query[tables.OrderItem](os.db).
		Where("order_id", orderId).
		Where("supplier_id", supplierId).
		WhereRaw("fulfillment_status NOT IN (?, ?)", tables.FulfillmentDelivered, tables.FulfillmentCancelled).
		Count(ctx)
	if err != nil {
		return err
	}
	if open > 0 {
		return nil
	}

	return os.paymentService.MarkAvailable(ctx, supplierId, orderId)
}

func (os *OrderService) sendShippingUpdate(item *tables.OrderItem) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	contact, err := database.RawQueryOne[buyerContact](os.db, ctx,
		`SELECT u.email, u.first_name, o.order_number
		 FROM orders o
		 JOIN users u ON u.id = o.user_id
		 WHERE o.id = ?`, item.OrderId)
	if err != nil || contact == nil {
		os.logger.Error("Failed to load buyer contact for shipping update",
			gecho.Field("order_id", item.OrderId),
			gecho.Field("error", err))
		return
	}

	result := os.emailService.SendShippingUpdateEmail(contact.Email, contact.FirstName, contact.OrderNumber, item)
	if !result.Success {
		os.logger.Error("Shipping update email failed",
			gecho.Field("order_id", item.OrderId),
			gecho.Field("error", result.Error))
	}
}

// MarkOrderAsPaid marks an order and its items as paid
func (os *OrderService) MarkOrderAsPaid(ctx context.Context, orderId uuid.UUID, paymentIntentId string) error {
	order, err := database.Query[tables.Order](os.db).
		Where("id", orderId).
		WhereNull("deleted_at").
		First(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if order == nil {
		return lib.ErrNotFound
	}

	if !IsValidOrderStatusTransition(order.Status, tables.OrderStatusPaid) {
		return fmt.Errorf("invalid status transition from %s to %s", order.Status, tables.OrderStatusPaid)
	}

	return database.Transaction(os.db, ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*tables.Order)(nil)).
			Set("payment_status = ?", tables.PaymentStatusPaid).
			Set("status = ?", tables.OrderStatusPaid).
			Set("payment_intent_id = ?", paymentIntentId).
			Set("updated_at = ?", time.Now()).
			Where("id = ?", orderId).
			Exec(ctx)
		if err != nil {
			return lib.MapDBError(err)
		}

		_, err = tx.NewUpdate().
			Model((*tables.OrderItem)(nil)).
			Set("payment_status = ?", tables.PaymentStatusPaid).
			Set("updated_at = ?", time.Now()).
			Where("order_id = ?", orderId).
			Exec(ctx)
		if err != nil {
			return lib.MapDBError(err)
		}

		return nil
	})
}

// IsValidOrderStatusTransition validates order-level status moves
func IsValidOrderStatusTransition(current, next tables.OrderStatus) bool {
	transitions := map[tables.OrderStatus][]tables.OrderStatus{
		tables.OrderStatusPending: {
			tables.OrderStatusPaid,
			tables.OrderStatusCancelled,
		},
		tables.OrderStatusPaid: {
			tables.OrderStatusShipped,
			tables.OrderStatusCancelled,
			tables.OrderStatusRefunded,
		},
		tables.OrderStatusShipped: {
			tables.OrderStatusDelivered,
		},
		tables.OrderStatusDelivered: {
			tables.OrderStatusRefunded,
		},
		tables.OrderStatusCancelled: {},
		tables.OrderStatusRefunded:  {},
	}

	allowed, exists := transitions[current]
	if !exists {
		return false
	}

	return slices.Contains(allowed, next)
}

// IsValidFulfillmentTransition validates item-level fulfillment moves
func IsValidFulfillmentTransition(current, next tables.FulfillmentStatus) bool {
	transitions := map[tables.FulfillmentStatus][]tables.FulfillmentStatus{
		tables.FulfillmentPending: {
			tables.FulfillmentProcessing,
			tables.FulfillmentShipped,
			tables.FulfillmentCancelled,
		},
		tables.FulfillmentProcessing: {
			tables.FulfillmentShipped,
			tables.FulfillmentCancelled,
		},
		tables.FulfillmentShipped: {
			tables.FulfillmentDelivered,
		},
		tables.FulfillmentDelivered: {},
		tables.FulfillmentCancelled: {},
	}

	allowed, exists := transitions[current]
	if !exists {
		return false
	}

	return slices.Contains(allowed, next)
}

func isKnownFulfillmentStatus(s tables.FulfillmentStatus) bool {
	switch s {
	case tables.FulfillmentPending, tables.FulfillmentProcessing, tables.FulfillmentShipped,
		tables.FulfillmentDelivered, tables.FulfillmentCancelled:
		return true
	}
	return false
}
