package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is immutable once created; there is no update path.
type Order struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	Total        decimal.Decimal `json:"total"` // NUMERIC in Postgres
	CreatedAt    time.Time       `json:"created_at"`
}

// Item is one order line. ProductID is a historical reference: the product
// may have left the catalog since, and Price is the unit price captured at
// order time, not the current catalog price.
type Item struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
