package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type builderRow struct {
	Id         uuid.UUID `bun:"id,pk"`
	SupplierId uuid.UUID `bun:"supplier_id"`
}

func TestQueryBuilderAccumulatesWheres(t *testing.T) {
	supplierId := uuid.New()
	rowId := uuid.New()

	q := Query[builderRow](nil).
		Where("id", rowId).
		Where("supplier_id", supplierId).
		WhereNull("deleted_at").
		WhereILike("name", "%vase%")

	require.Len(t, q.wheres, 4)

	assert.Equal(t, "id", q.wheres[0].Column)
	assert.Equal(t, "=", q.wheres[0].Operator)
	assert.Equal(t, rowId, q.wheres[0].Value)

	assert.Equal(t, "supplier_id", q.wheres[1].Column, "Ownership scoping travels as a bound condition")
	assert.Equal(t, supplierId, q.wheres[1].Value)

	assert.Equal(t, "IS NULL", q.wheres[2].Operator)
	assert.Nil(t, q.wheres[2].Value)

	assert.Equal(t, "ILIKE", q.wheres[3].Operator)
	assert.Equal(t, "%vase%", q.wheres[3].Value)
}

func TestQueryBuilderWhereInKeepsSlice(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	q := Query[builderRow](nil).WhereIn("id", ids)

	require.Len(t, q.wheres, 1)
	assert.Equal(t, "IN", q.wheres[0].Operator)
	assert.Equal(t, ids, q.wheres[0].Value, "Values stay bound, never rendered into SQL text")
}

func TestQueryBuilderWhereRaw(t *testing.T) {
	q := Query[builderRow](nil).
		WhereRaw("fulfillment_status NOT IN (?, ?)", "delivered", "cancelled")

	require.Len(t, q.wheres, 1)
	assert.True(t, q.wheres[0].IsRaw)
	assert.Equal(t, []any{"delivered", "cancelled"}, q.wheres[0].RawArgs)
}

func TestQueryBuilderOrderingAndPaging(t *testing.T) {
	q := Query[builderRow](nil).
		OrderBy("created_at", DESC).
		OrderBy("id", ASC).
		Limit(10).
		Offset(20).
		Timeout(5 * time.Second)

	require.Len(t, q.orders, 2)
	assert.Equal(t, "created_at", q.orders[0].Column)
	assert.Equal(t, "DESC", q.orders[0].Direction)
	assert.Equal(t, "ASC", q.orders[1].Direction)

	require.NotNil(t, q.limitVal)
	assert.Equal(t, 10, *q.limitVal)
	require.NotNil(t, q.offsetVal)
	assert.Equal(t, 20, *q.offsetVal)
	assert.Equal(t, 5*time.Second, q.timeout)
}

func TestQueryBuilderRelations(t *testing.T) {
	q := Query[builderRow](nil).With("Items").With("Category")

	assert.Equal(t, []string{"Items", "Category"}, q.relations)
}
