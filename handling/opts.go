package handling

import (
	"net/http"
	"strconv"
	"strings"

	"brandia_server/services"

	"github.com/google/uuid"
)

// ParseProductListOptions parses HTTP query parameters into ProductListOptions
func ParseProductListOptions(r *http.Request) (*services.ProductListOptions, error) {
	query := r.URL.Query()

	// Early return if no query params
	if len(query) == 0 {
		return &services.ProductListOptions{}, nil
	}

	opts := &services.ProductListOptions{}
	var err error
	var valInt int

	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	if category := query.Get("category_id"); category != "" {
		id, err := uuid.Parse(category)
		if err != nil {
			return nil, err
		}
		opts.CategoryId = &id
	}

	// Each bound gets its own variable; the pointers must not alias.
	if minPrice := query.Get("min_price"); minPrice != "" {
		min, err := strconv.ParseUint(minPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MinPrice = &min
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		max, err := strconv.ParseUint(maxPrice, 10, 64)
		if err != nil {
			return nil, err
		}
		opts.MaxPrice = &max
	}

	if status := query.Get("status"); status != "" {
		opts.Status = status
	}

	if sortBy := query.Get("sort_by"); sortBy != "" {
		opts.SortBy = sortBy
	}

	if sortDirection := query.Get("sort_direction"); sortDirection != "" {
		opts.SortDirection = strings.ToUpper(sortDirection)
	}

	return opts, nil
}

// ParseOrderListOptions parses HTTP query parameters into OrderListOptions
func ParseOrderListOptions(r *http.Request) (*services.OrderListOptions, error) {
	query := r.URL.Query()

	opts := &services.OrderListOptions{}
	var err error
	var valInt int

	if page := query.Get("page"); page != "" {
		if valInt, err = strconv.Atoi(page); err != nil {
			return nil, err
		}
		opts.Page = valInt
	}

	if pageSize := query.Get("page_size"); pageSize != "" {
		if valInt, err = strconv.Atoi(pageSize); err != nil {
			return nil, err
		}
		opts.PageSize = valInt
	}

	if status := query.Get("status"); status != "" {
		opts.Status = status
	}

	if searchTerm := query.Get("search"); searchTerm != "" {
		opts.SearchTerm = searchTerm
	}

	return opts, nil
}
