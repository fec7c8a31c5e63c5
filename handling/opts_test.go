package handling

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithQuery(query string) *http.Request {
	return httptest.NewRequest(http.MethodGet, "/products?"+query, nil)
}

func TestParseProductListOptionsEmpty(t *testing.T) {
	opts, err := ParseProductListOptions(httptest.NewRequest(http.MethodGet, "/products", nil))
	require.NoError(t, err)

	assert.Zero(t, opts.Page)
	assert.Zero(t, opts.PageSize)
	assert.Empty(t, opts.SearchTerm)
	assert.Nil(t, opts.CategoryId)
}

func TestParseProductListOptionsFull(t *testing.T) {
	categoryId := uuid.New()
	opts, err := ParseProductListOptions(requestWithQuery(
		"page=2&page_size=25&search=vase&category_id=" + categoryId.String() +
			"&min_price=1000&max_price=5000&status=published&sort_by=price&sort_direction=asc"))
	require.NoError(t, err)

	assert.Equal(t, 2, opts.Page)
	assert.Equal(t, 25, opts.PageSize)
	assert.Equal(t, "vase", opts.SearchTerm)
	require.NotNil(t, opts.CategoryId)
	assert.Equal(t, categoryId, *opts.CategoryId)
	require.NotNil(t, opts.MinPrice)
	assert.Equal(t, uint64(1000), *opts.MinPrice)
	require.NotNil(t, opts.MaxPrice)
	assert.Equal(t, uint64(5000), *opts.MaxPrice)
	assert.Equal(t, "published", opts.Status)
	assert.Equal(t, "price", opts.SortBy)
	assert.Equal(t, "ASC", opts.SortDirection, "Sort direction is normalized to upper case")
}

func TestParseProductListOptionsPriceBoundsIndependent(t *testing.T) {
	opts, err := ParseProductListOptions(requestWithQuery("min_price=1000&max_price=5000"))
	require.NoError(t, err)

	require.NotNil(t, opts.MinPrice)
	require.NotNil(t, opts.MaxPrice)
	assert.NotSame(t, opts.MinPrice, opts.MaxPrice, "Bounds must not share storage")
	assert.Equal(t, uint64(1000), *opts.MinPrice)
	assert.Equal(t, uint64(5000), *opts.MaxPrice)
}

func TestParseProductListOptionsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad page", "page=abc"},
		{"bad page size", "page_size=ten"},
		{"bad category id", "category_id=not-a-uuid"},
		{"bad min price", "min_price=-5"},
		{"bad max price", "max_price=expensive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProductListOptions(requestWithQuery(tt.query))
			assert.Error(t, err)
		})
	}
}

func TestParseOrderListOptions(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/supplier/orders?page=3&page_size=15&status=shipped&search=vase", nil)

	opts, err := ParseOrderListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, 3, opts.Page)
	assert.Equal(t, 15, opts.PageSize)
	assert.Equal(t, "shipped", opts.Status)
	assert.Equal(t, "vase", opts.SearchTerm)
}

func TestParseOrderListOptionsMalformedPage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/supplier/orders?page=first", nil)

	_, err := ParseOrderListOptions(r)
	assert.Error(t, err)
}
