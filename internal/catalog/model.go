package catalog

import "github.com/shopspring/decimal"

// Product is read-only for the storefront: the catalog is browsed and
// referenced by orders, never mutated here.
// swagger:model
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// NUMERIC in Postgres; decimal keeps prices exact
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image"`
	// informational only, never decremented by an order
	Stock int `json:"stock"`
}
