package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyOrder       = errors.New("order has no items")
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidLine      = errors.New("invalid line item")
	ErrTotalMismatch    = errors.New("total mismatch")
	ErrSubmissionFailed = errors.New("order_submission_failed")
)

// One cent absorbs presentation rounding on the client; anything bigger is
// a stale or tampered total.
var totalTolerance = decimal.New(1, -2)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// Submit turns a checkout request into a durable order. The total is
// recomputed from the submitted lines and checked against the client's
// figure before anything touches storage; the write itself is all-or-nothing
// (see SQLRepo.Create). A failed submission persists nothing, so the caller
// may retry with the same cart.
func (s *Service) Submit(ctx context.Context, req CreateOrderRequest) (*Order, []Item, error) {
	if len(req.Items) == 0 {
		return nil, nil, ErrEmptyOrder
	}
	name := strings.TrimSpace(req.CustomerName)
	email := strings.TrimSpace(req.Email)
	address := strings.TrimSpace(req.Address)
	if name == "" || email == "" || address == "" {
		return nil, nil, ErrMissingFields
	}

	total := decimal.Zero
	items := make([]Item, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 || it.Price.IsNegative() {
			return nil, nil, fmt.Errorf("%w: product %d", ErrInvalidLine, it.ProductID)
		}
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		items = append(items, Item{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	if total.Sub(req.Total).Abs().GreaterThan(totalTolerance) {
		return nil, nil, fmt.Errorf("%w: client sent %s, server computed %s",
			ErrTotalMismatch, req.Total.StringFixed(2), total.StringFixed(2))
	}

	o := &Order{
		CustomerName: name,
		Email:        email,
		Address:      address,
		Total:        total,
	}
	if err := s.repo.Create(ctx, o, items); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	return o, items, nil
}

// Get returns the header with all of its lines, or ErrNotFound. A returned
// header always carries its complete line set.
func (s *Service) Get(ctx context.Context, id int64) (*Order, []Item, error) {
	return s.repo.GetByID(ctx, id)
}
