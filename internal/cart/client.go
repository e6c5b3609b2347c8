package cart

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mcastro/storefront/internal/catalog"
	"github.com/mcastro/storefront/internal/order"
)

// ErrEmptyCart rejects checkout before validation and before any network
// round-trip; it is a distinct failure, not a field error.
var ErrEmptyCart = errors.New("cart is empty")

// Client talks to the storefront API on behalf of one session's cart.
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

func NewClient(baseURL string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (cl *Client) FetchProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/products/%d", cl.BaseURL, id), nil)
	res, err := cl.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, catalog.ErrNotFound
	}
	var p catalog.Product
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SubmitOrder posts the request and returns the generated order id. Any
// non-2xx response surfaces the server's error message verbatim; there is
// no automatic retry.
func (cl *Client) SubmitOrder(ctx context.Context, r order.CreateOrderRequest) (int64, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return 0, err
	}
	req, _ := http.NewRequestWithContext(ctx, http.MethodPost,
		cl.BaseURL+"/api/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	res, err := cl.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated && res.StatusCode != http.StatusOK {
		var e struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&e); err != nil || e.Error == "" {
			return 0, fmt.Errorf("submit order: %s", res.Status)
		}
		return 0, fmt.Errorf("submit order: %s", e.Error)
	}
	var out order.CreateOrderResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return 0, err
	}
	return out.OrderID, nil
}

// Checkout runs the whole submission flow: empty-cart check, field
// validation, then the network call. Field errors come back in the map and
// never reach the wire. The cart is cleared only after the server confirms;
// on any failure it is left as-is so the user can retry.
func (cl *Client) Checkout(ctx context.Context, c *Cart, form CheckoutForm) (int64, map[string]string, error) {
	if c.IsEmpty() {
		return 0, nil, ErrEmptyCart
	}
	if errs := form.Validate(); len(errs) > 0 {
		return 0, errs, nil
	}

	lines := c.Items()
	req := order.CreateOrderRequest{
		CustomerName: form.CustomerName,
		Email:        form.Email,
		Address:      form.Address,
		Items:        make([]order.CreateOrderItem, 0, len(lines)),
		Total:        c.Total(),
	}
	for _, l := range lines {
		req.Items = append(req.Items, order.CreateOrderItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}

	id, err := cl.SubmitOrder(ctx, req)
	if err != nil {
		return 0, nil, err
	}
	c.Clear()
	return id, nil, nil
}
