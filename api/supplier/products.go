package supplier

import (
	"net/http"

	"brandia_server/api/middleware"
	"brandia_server/handling"
	"brandia_server/lib"
	"brandia_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (srm *SupplierRoutesManager) supplierAndProductID(w http.ResponseWriter, r *http.Request) (supplierId, productId uuid.UUID, ok bool) {
	sup, found := middleware.GetSupplierFromContext(r.Context())
	if !found {
		gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
		return uuid.Nil, uuid.Nil, false
	}

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		srm.logger.Warn("Invalid product ID format", gecho.Field("id", idStr))
		gecho.BadRequest(w, gecho.WithMessage("Invalid product ID"), gecho.Send())
		return uuid.Nil, uuid.Nil, false
	}

	return sup.Id, id, true
}

// GetProducts handles GET /supplier/products, the caller's own catalog
// including drafts and archived entries
func (srm *SupplierRoutesManager) GetProducts(w http.ResponseWriter, r *http.Request) {
	sup, ok := middleware.GetSupplierFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
		return
	}

	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.Send(),
		)
		return
	}

	result, err := srm.productService.GetSupplierProducts(r.Context(), sup.Id, opts)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch products", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// GetProduct handles GET /supplier/products/{id}
func (srm *SupplierRoutesManager) GetProduct(w http.ResponseWriter, r *http.Request) {
	supplierId, productId, ok := srm.supplierAndProductID(w, r)
	if !ok {
		return
	}

	product, err := srm.productService.GetSupplierProduct(r.Context(), supplierId, productId)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch product", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}

// CreateProduct handles POST /supplier/products
func (srm *SupplierRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	sup, ok := middleware.GetSupplierFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("Supplier access required"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateProductRequest](r)
	if err != nil {
		handling.HandleServiceError(err, "Invalid product body", srm.logger, w)
		return
	}

	product, err := srm.productService.CreateProduct(r.Context(), sup.Id, body)
	if err != nil {
		handling.HandleServiceError(err, "Failed to create product", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}

// UpdateProduct handles PATCH /supplier/products/{id}
func (srm *SupplierRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	supplierId, productId, ok := srm.supplierAndProductID(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateProductRequest](r)
	if err != nil {
		handling.HandleServiceError(err, "Invalid product body", srm.logger, w)
		return
	}

	if err := srm.productService.UpdateProduct(r.Context(), supplierId, productId, body); err != nil {
		handling.HandleServiceError(err, "Failed to update product", srm.logger, w)
		return
	}

	product, err := srm.productService.GetSupplierProduct(r.Context(), supplierId, productId)
	if err != nil {
		handling.HandleServiceError(err, "Failed to fetch updated product", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(map[string]any{"product": product}),
		gecho.Send(),
	)
}

// DeleteProduct handles DELETE /supplier/products/{id}. Products referenced
// by order items are archived rather than removed.
func (srm *SupplierRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	supplierId, productId, ok := srm.supplierAndProductID(w, r)
	if !ok {
		return
	}

	if err := srm.productService.DeleteProduct(r.Context(), supplierId, productId); err != nil {
		handling.HandleServiceError(err, "Failed to delete product", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product archived"),
		gecho.Send(),
	)
}
