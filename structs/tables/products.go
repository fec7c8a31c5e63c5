package tables

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductDraft     ProductStatus = "draft"
	ProductPublished ProductStatus = "published"
	ProductArchived  ProductStatus = "archived"
)

type Category struct {
	tableName struct{}  `bun:"table:categories,alias:c"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name      string    `json:"name" bun:"name,notnull,unique"`
	Slug      string    `json:"slug" bun:"slug,notnull,unique"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
}

type Product struct {
	tableName     struct{}      `bun:"table:products,alias:p"`
	Id            uuid.UUID     `json:"id" bun:"id,pk,type:uuid"`
	SupplierId    uuid.UUID     `json:"supplier_id" bun:"supplier_id,notnull,type:uuid"`
	CategoryId    *uuid.UUID    `json:"category_id,omitempty" bun:"category_id,type:uuid"`
	Name          string        `json:"name" bun:"name,notnull"`
	Brand         string        `json:"brand,omitempty" bun:"brand"`
	Description   string        `json:"description" bun:"description,notnull"`
	Price         uint64        `json:"price" bun:"price,notnull"` // stored in cents
	StockQuantity int           `json:"stock_quantity" bun:"stock_quantity,notnull"`
	Status        ProductStatus `json:"status" bun:"status,notnull,default:'draft'"`
	IsActive      bool          `json:"is_active" bun:"is_active,notnull,default:true"`
	CreatedAt     time.Time     `json:"created_at" bun:"created_at,notnull,default:now()"`
	UpdatedAt     time.Time     `json:"updated_at" bun:"updated_at,notnull,default:now()"`

	Category *Category `json:"category,omitempty" bun:"rel:belongs-to,join:category_id=id"`
}
