package services

import (
	"context"
	"fmt"
	"time"

	"brandia_server/database"
	"brandia_server/lib"
	"brandia_server/structs"
	"brandia_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ProductListOptions contains filtering and pagination options for product queries
type ProductListOptions struct {
	// Pagination
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	// Filters
	SearchTerm string     `json:"search_term,omitempty"` // Search in name, description, brand
	CategoryId *uuid.UUID `json:"category_id,omitempty"`
	MinPrice   *uint64    `json:"min_price,omitempty"` // Minimum price in cents
	MaxPrice   *uint64    `json:"max_price,omitempty"` // Maximum price in cents
	Status     string     `json:"status,omitempty"`    // Supplier views only; public listings force published

	// Sorting
	SortBy        string `json:"sort_by"`        // created_at, price, name
	SortDirection string `json:"sort_direction"` // ASC or DESC

	// Performance
	Timeout time.Duration `json:"-"`
}

// ProductListResult wraps the product list response with metadata
type ProductListResult struct {
	Products   []tables.Product    `json:"products"`
	Pagination database.Pagination `json:"pagination"`
	QueryTime  time.Duration       `json:"query_time"`
}

// isUnfiltered reports whether the options carry nothing but pagination,
// which is the only shape worth caching
func (opts *ProductListOptions) isUnfiltered() bool {
	return opts.SearchTerm == "" &&
		opts.CategoryId == nil &&
		opts.MinPrice == nil &&
		opts.MaxPrice == nil &&
		opts.Status == ""
}

// GetPublishedProducts retrieves the public storefront listing: published,
// active products only, with search and filters
func (ps *ProductService) GetPublishedProducts(ctx context.Context, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	if err := ps.validateOptions(opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	// Clamp up front so cache keys line up with what gets stored
	opts.Page, opts.PageSize, _ = database.NormalizePage(opts.Page, opts.PageSize)

	// Unfiltered pages are served from cache when possible
	cacheable := opts.isUnfiltered()
	if cacheable {
		cached, err := ps.cacheService.GetPublishedProductsList(opts.Page, opts.PageSize)
		if err != nil {
			ps.logger.Warn("Failed to get published products from cache", gecho.Field("error", err))
		} else if cached != nil {
			return listResultFromCache(opts, cached, time.Since(startTime)), nil
		}
	}

	query := database.Query[tables.Product](ps.db).
		Where("status", tables.ProductPublished).
		Where("is_active", true)

	query = ps.applyFilters(query, opts)
	query = ps.applySorting(query, opts)

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		ps.logger.Error("Failed to fetch published products",
			gecho.Field("error", err),
			gecho.Field("page", opts.Page),
			gecho.Field("duration", time.Since(startTime)))
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	if cacheable {
		go func() {
			if err := ps.cacheService.SetPublishedProductsList(result.Pagination.Page, result.Pagination.PageSize, result.Data, result.Pagination.Total); err != nil {
				ps.logger.Warn("Failed to cache published products", gecho.Field("error", err))
			}
		}()
	}

	return &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
		QueryTime:  time.Since(startTime),
	}, nil
}

// listResultFromCache rebuilds a listing result from a cached page. The
// pagination total is the cached full count, not the page length.
func listResultFromCache(opts *ProductListOptions, cached *CachedProductPage, queryTime time.Duration) *ProductListResult {
	return &ProductListResult{
		Products: cached.Products,
		Pagination: database.Pagination{
			Page:     opts.Page,
			PageSize: opts.PageSize,
			Total:    cached.Total,
		},
		QueryTime: queryTime,
	}
}

// GetPublishedProductByID retrieves a single storefront product. Draft,
// archived, and deactivated products are invisible here.
func (ps *ProductService) GetPublishedProductByID(ctx context.Context, id uuid.UUID) (*tables.Product, error) {
	cached, err := ps.cacheService.GetProductByID(id.String())
	if err != nil {
		ps.logger.Warn("Failed to get product from cache", gecho.Field("error", err), gecho.Field("id", id))
	} else if cached != nil {
		return cached, nil
	}

	product, err := database.Query[tables.Product](ps.db).
		Where("id", id).
		Where("status", tables.ProductPublished).
		Where("is_active", true).
		With("Category").
		Timeout(5 * time.Second).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	go func() {
		if err := ps.cacheService.SetProductByID(product); err != nil {
			ps.logger.Warn("Failed to cache product", gecho.Field("error", err), gecho.Field("id", id))
		}
	}()

	return product, nil
}

// GetSupplierProducts lists a supplier's own catalog, drafts included
func (ps *ProductService) GetSupplierProducts(ctx context.Context, supplierID uuid.UUID, opts *ProductListOptions) (*ProductListResult, error) {
	startTime := time.Now()

	if opts == nil {
		opts = &ProductListOptions{}
	}
	ps.applyDefaultOptions(opts)

	if err := ps.validateOptions(opts); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	query := database.Query[tables.Product](ps.db).
		Where("supplier_id", supplierID)

	query = ps.applyFilters(query, opts)
	query = ps.applySorting(query, opts)

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch supplier products: %w", err)
	}

	return &ProductListResult{
		Products:   result.Data,
		Pagination: result.Pagination,
		QueryTime:  time.Since(startTime),
	}, nil
}

// GetSupplierProduct fetches one product scoped by owner. A product that
// exists but belongs to another supplier is reported as not found.
func (ps *ProductService) GetSupplierProduct(ctx context.Context, supplierID, productID uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Where("id", productID).
		Where("supplier_id", supplierID).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	return product, nil
}

// CreateProduct creates a product owned by the calling supplier
func (ps *ProductService) CreateProduct(ctx context.Context, supplierID uuid.UUID, req *structs.CreateProductRequest) (*tables.Product, error) {
	startTime := time.Now()

	status := tables.ProductStatus(req.Status)
	if status == "" {
		status = tables.ProductDraft
	}

	product := &tables.Product{
		Id:            uuid.New(),
		SupplierId:    supplierID,
		CategoryId:    req.CategoryId,
		Name:          req.Name,
		Brand:         req.Brand,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Status:        status,
		IsActive:      true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	product, err := database.Query[tables.Product](ps.db).Insert(ctx, product)
	if err != nil {
		ps.logger.Error("Failed to create product",
			gecho.Field("error", err),
			gecho.Field("supplier_id", supplierID),
			gecho.Field("duration", time.Since(startTime)))
		return nil, lib.MapDBError(err)
	}

	go ps.invalidateCaches(product.Id)

	ps.logger.Info("Product created",
		gecho.Field("id", product.Id),
		gecho.Field("supplier_id", supplierID))
	return product, nil
}

// UpdateProduct applies a partial update to a product the supplier owns.
// The supplier_id filter makes ownership part of the WHERE clause: zero
// rows affected means not found, whether the product is missing or foreign.
func (ps *ProductService) UpdateProduct(ctx context.Context, supplierID, productID uuid.UUID, req *structs.UpdateProductRequest) error {
	updateData := make(map[string]any)

	if req.Name != nil {
		updateData["name"] = *req.Name
	}
	if req.Brand != nil {
		updateData["brand"] = *req.Brand
	}
	if req.Description != nil {
		updateData["description"] = *req.Description
	}
	if req.Price != nil {
		updateData["price"] = *req.Price
	}
	if req.StockQuantity != nil {
		updateData["stock_quantity"] = *req.StockQuantity
	}
	if req.CategoryId != nil {
		updateData["category_id"] = *req.CategoryId
	}
	if req.Status != nil {
		updateData["status"] = *req.Status
	}
	if req.IsActive != nil {
		updateData["is_active"] = *req.IsActive
	}

	if len(updateData) == 0 {
		return nil
	}
	updateData["updated_at"] = time.Now()

	rows, err := database.Query[tables.Product](ps.db).
		Where("id", productID).
		Where("supplier_id", supplierID).
		Update(ctx, updateData)
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	go ps.invalidateCaches(productID)

	return nil
}

// DeleteProduct archives a product the supplier owns. Rows already
// referenced by order items must survive, so removal is an archive, not a
// hard delete.
func (ps *ProductService) DeleteProduct(ctx context.Context, supplierID, productID uuid.UUID) error {
	rows, err := database.Query[tables.Product](ps.db).
		Where("id", productID).
		Where("supplier_id", supplierID).
		Update(ctx, map[string]any{
			"status":     tables.ProductArchived,
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if err != nil {
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	go ps.invalidateCaches(productID)

	ps.logger.Info("Product archived",
		gecho.Field("id", productID),
		gecho.Field("supplier_id", supplierID))
	return nil
}

// GetProductsByIds fetches products by id for order validation
func (ps *ProductService) GetProductsByIds(ctx context.Context, ids []uuid.UUID) ([]tables.Product, error) {
	if len(ids) == 0 {
		return []tables.Product{}, nil
	}

	idIfaces := make([]any, len(ids))
	for i, id := range ids {
		idIfaces[i] = id
	}

	products, err := database.Query[tables.Product](ps.db).
		WhereIn("id", idIfaces).
		Timeout(10 * time.Second).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	return products, nil
}

func (ps *ProductService) invalidateCaches(productID uuid.UUID) {
	if err := ps.cacheService.InvalidateProductCaches(productID); err != nil {
		ps.logger.Warn("Failed to invalidate product caches",
			gecho.Field("error", err),
			gecho.Field("product_id", productID))
	}
}

// applyDefaultOptions sets default values for unspecified options
func (ps *ProductService) applyDefaultOptions(opts *ProductListOptions) {
	if opts.SortBy == "" {
		opts.SortBy = "created_at"
	}
	if opts.SortDirection == "" {
		opts.SortDirection = "DESC"
	}
}

// validateOptions validates the provided options
func (ps *ProductService) validateOptions(opts *ProductListOptions) error {
	validSortFields := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"price":      true,
		"name":       true,
	}
	if !validSortFields[opts.SortBy] {
		return fmt.Errorf("invalid sort field: %s", opts.SortBy)
	}

	if opts.SortDirection != "ASC" && opts.SortDirection != "DESC" {
		return fmt.Errorf("invalid sort direction: %s (must be ASC or DESC)", opts.SortDirection)
	}

	if opts.MinPrice != nil && opts.MaxPrice != nil && *opts.MinPrice > *opts.MaxPrice {
		return fmt.Errorf("min_price cannot be greater than max_price")
	}

	if opts.Status != "" {
		switch tables.ProductStatus(opts.Status) {
		case tables.ProductDraft, tables.ProductPublished, tables.ProductArchived:
		default:
			return fmt.Errorf("invalid product status: %s", opts.Status)
		}
	}

	return nil
}

// applyFilters applies all filter conditions to the query
func (ps *ProductService) applyFilters(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	if opts.CategoryId != nil {
		query = query.Where("category_id", *opts.CategoryId)
	}

	if opts.MinPrice != nil {
		query = query.WhereOp("price", ">=", *opts.MinPrice)
	}
	if opts.MaxPrice != nil {
		query = query.WhereOp("price", "<=", *opts.MaxPrice)
	}

	if opts.SearchTerm != "" {
		searchPattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw(
			"(name ILIKE ? OR description ILIKE ? OR brand ILIKE ?)",
			searchPattern, searchPattern, searchPattern,
		)
	}

	if opts.Status != "" {
		query = query.Where("status", opts.Status)
	}

	return query
}

// applySorting applies sorting to the query
func (ps *ProductService) applySorting(query *database.QueryBuilder[tables.Product], opts *ProductListOptions) *database.QueryBuilder[tables.Product] {
	var direction database.OrderDirection
	if opts.SortDirection == "ASC" {
		direction = database.ASC
	} else {
		direction = database.DESC
	}

	query = query.OrderBy(opts.SortBy, direction)

	// Secondary sort by ID for consistent ordering
	query = query.OrderBy("id", database.ASC)

	return query
}
