package database

import (
	"context"
	"fmt"
)

// schemaStatements is the additive startup schema. Statements only create
// what is missing; existing tables and data are never altered destructively.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT 'client',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		email_verified BOOLEAN NOT NULL DEFAULT FALSE,
		last_login TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS suppliers (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL UNIQUE REFERENCES users(id),
		company_name TEXT NOT NULL,
		contact_phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		tax_code TEXT NOT NULL DEFAULT '',
		stripe_account_id TEXT NOT NULL DEFAULT '',
		stripe_account_status TEXT NOT NULL DEFAULT 'none',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS categories (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE
	)`,

	`CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		supplier_id UUID NOT NULL REFERENCES suppliers(id),
		category_id UUID REFERENCES categories(id),
		name TEXT NOT NULL,
		brand TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		price BIGINT NOT NULL,
		stock_quantity INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'draft',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_number TEXT NOT NULL UNIQUE,
		user_id UUID NOT NULL REFERENCES users(id),
		total_amount BIGINT NOT NULL,
		shipping_name TEXT NOT NULL DEFAULT '',
		shipping_street TEXT NOT NULL DEFAULT '',
		shipping_city TEXT NOT NULL DEFAULT '',
		shipping_postal_code TEXT NOT NULL DEFAULT '',
		shipping_country TEXT NOT NULL DEFAULT 'NL',
		payment_intent_id TEXT NOT NULL DEFAULT '',
		payment_status TEXT NOT NULL DEFAULT 'unpaid',
		status TEXT NOT NULL DEFAULT 'pending',
		deleted_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS order_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		order_id UUID NOT NULL REFERENCES orders(id),
		product_id UUID NOT NULL REFERENCES products(id),
		supplier_id UUID NOT NULL REFERENCES suppliers(id),
		quantity INTEGER NOT NULL,
		unit_price BIGINT NOT NULL,
		line_total BIGINT NOT NULL,
		product_name TEXT NOT NULL,
		supplier_amount BIGINT NOT NULL,
		commission_amount BIGINT NOT NULL,
		fulfillment_status TEXT NOT NULL DEFAULT 'pending',
		payment_status TEXT NOT NULL DEFAULT 'unpaid',
		tracking_number TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS supplier_payments (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		supplier_id UUID NOT NULL REFERENCES suppliers(id),
		order_id UUID NOT NULL REFERENCES orders(id),
		supplier_amount BIGINT NOT NULL,
		commission_amount BIGINT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS supplier_campaigns (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		supplier_id UUID NOT NULL REFERENCES suppliers(id),
		name TEXT NOT NULL,
		banner_text TEXT NOT NULL DEFAULT '',
		discount_percent INTEGER NOT NULL DEFAULT 0,
		target_products UUID[],
		starts_at TIMESTAMPTZ,
		ends_at TIMESTAMPTZ,
		status TEXT NOT NULL DEFAULT 'draft',
		views BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	// Columns added after the initial table definitions shipped
	`ALTER TABLE order_items ADD COLUMN IF NOT EXISTS tracking_number TEXT NOT NULL DEFAULT ''`,
	`ALTER TABLE suppliers ADD COLUMN IF NOT EXISTS stripe_account_status TEXT NOT NULL DEFAULT 'none'`,
	`ALTER TABLE products ADD COLUMN IF NOT EXISTS brand TEXT NOT NULL DEFAULT ''`,

	`CREATE INDEX IF NOT EXISTS idx_products_supplier ON products (supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_products_listing ON products (status, is_active)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items (order_id)`,
	`CREATE INDEX IF NOT EXISTS idx_order_items_supplier ON order_items (supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_supplier_payments_supplier ON supplier_payments (supplier_id)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_supplier ON supplier_campaigns (supplier_id)`,
}

// EnsureSchema applies the additive schema at startup
func EnsureSchema(ctx context.Context, db *DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement failed: %w", err)
		}
	}

	return nil
}
