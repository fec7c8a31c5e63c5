package services

import (
	"testing"
	"time"

	"brandia_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestListResultFromCacheKeepsFullCount(t *testing.T) {
	cached := &CachedProductPage{
		Products: []tables.Product{
			{Id: uuid.New(), Name: "Tulip vase"},
			{Id: uuid.New(), Name: "Dried bouquet"},
		},
		Total: 57,
	}
	opts := &ProductListOptions{Page: 2, PageSize: 10}

	result := listResultFromCache(opts, cached, 3*time.Millisecond)

	assert.Len(t, result.Products, 2)
	assert.Equal(t, 2, result.Pagination.Page)
	assert.Equal(t, 10, result.Pagination.PageSize)
	assert.Equal(t, 57, result.Pagination.Total, "A cache hit must report the same total as a database read")
	assert.Equal(t, 3*time.Millisecond, result.QueryTime)
}
