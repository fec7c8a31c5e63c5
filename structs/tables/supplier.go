package tables

import (
	"time"

	"github.com/google/uuid"
)

type StripeAccountStatus string

const (
	StripeAccountNone     StripeAccountStatus = "none"
	StripeAccountPending  StripeAccountStatus = "pending"
	StripeAccountVerified StripeAccountStatus = "verified"
)

// Supplier is the 1:1 vendor extension of a user with role=supplier.
type Supplier struct {
	tableName           struct{}            `bun:"table:suppliers,alias:s"`
	Id                  uuid.UUID           `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserId              uuid.UUID           `json:"user_id" bun:"user_id,notnull,unique,type:uuid"`
	CompanyName         string              `json:"company_name" bun:"company_name,notnull"`
	ContactPhone        string              `json:"contact_phone,omitempty" bun:"contact_phone"`
	Address             string              `json:"address,omitempty" bun:"address"`
	TaxCode             string              `json:"tax_code,omitempty" bun:"tax_code"`
	StripeAccountId     string              `json:"stripe_account_id,omitempty" bun:"stripe_account_id"`
	StripeAccountStatus StripeAccountStatus `json:"stripe_account_status" bun:"stripe_account_status,notnull,default:'none'"`
	IsActive            bool                `json:"is_active" bun:"is_active,notnull,default:true"`
	CreatedAt           time.Time           `json:"created_at" bun:"created_at,notnull,default:now()"`
	UpdatedAt           time.Time           `json:"updated_at" bun:"updated_at,notnull,default:now()"`

	User *User `json:"user,omitempty" bun:"rel:belongs-to,join:user_id=id"`
}

type PaymentLedgerStatus string

const (
	PaymentPending   PaymentLedgerStatus = "pending"
	PaymentAvailable PaymentLedgerStatus = "available"
	PaymentPaidOut   PaymentLedgerStatus = "paid_out"
)

// SupplierPayment is one payable ledger row per supplier per order.
// Amounts are cents and immutable once written; only status moves.
type SupplierPayment struct {
	tableName        struct{}            `bun:"table:supplier_payments,alias:sp"`
	Id               uuid.UUID           `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	SupplierId       uuid.UUID           `json:"supplier_id" bun:"supplier_id,notnull,type:uuid"`
	OrderId          uuid.UUID           `json:"order_id" bun:"order_id,notnull,type:uuid"`
	SupplierAmount   uint64              `json:"supplier_amount" bun:"supplier_amount,notnull"`
	CommissionAmount uint64              `json:"commission_amount" bun:"commission_amount,notnull"`
	Status           PaymentLedgerStatus `json:"status" bun:"status,notnull,default:'pending'"`
	CreatedAt        time.Time           `json:"created_at" bun:"created_at,notnull,default:now()"`
	UpdatedAt        time.Time           `json:"updated_at" bun:"updated_at,notnull,default:now()"`
}
