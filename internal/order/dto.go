package order

import "github.com/shopspring/decimal"

// CreateOrderItem payload for one line.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID int64 `json:"product_id" example:"3"`
	Quantity  int   `json:"quantity"   example:"2"`
	// unit price captured when the line entered the cart
	Price decimal.Decimal `json:"price" example:"29.99"`
}

// CreateOrderRequest payload for order creation.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	CustomerName string            `json:"customer_name" example:"Ada Lovelace"`
	Email        string            `json:"email"         example:"ada@example.com"`
	Address      string            `json:"address"       example:"12 Analytical Way"`
	Items        []CreateOrderItem `json:"items"`
	// total as the client computed it; verified server-side
	Total decimal.Decimal `json:"total" example:"59.98"`
}

// CreateOrderResponse confirmation payload.
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	OrderID int64  `json:"order_id"`
	Message string `json:"message"`
}

// OrderResponse is the header joined with all of its lines.
// swagger:model OrderResponse
type OrderResponse struct {
	Order
	Items []Item `json:"items"`
}
