package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcastro/storefront/internal/order"
)

// stubRepo implements order.Repository in memory. Create assigns ids the
// way the database would and stores header+items as one unit, or stores
// nothing when failing.
type stubRepo struct {
	failCreate bool
	nextID     int64
	lastOrder  *order.Order
	lastItems  []order.Item
}

func (s *stubRepo) Create(ctx context.Context, o *order.Order, items []order.Item) error {
	if s.failCreate {
		return errors.New("connection reset")
	}
	s.nextID++
	o.ID = s.nextID
	o.CreatedAt = time.Now().UTC()
	for i := range items {
		items[i].ID = int64(i + 1)
		items[i].OrderID = o.ID
	}
	cp := *o
	s.lastOrder = &cp
	s.lastItems = append([]order.Item(nil), items...)
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*order.Order, []order.Item, error) {
	if s.lastOrder == nil || s.lastOrder.ID != id {
		return nil, nil, order.ErrNotFound
	}
	return s.lastOrder, s.lastItems, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func validRequest() order.CreateOrderRequest {
	return order.CreateOrderRequest{
		CustomerName: "Ada Lovelace",
		Email:        "ada@example.com",
		Address:      "12 Analytical Way",
		Items: []order.CreateOrderItem{
			{ProductID: 1, Quantity: 2, Price: dec("10.00")},
			{ProductID: 2, Quantity: 1, Price: dec("5.00")},
		},
		Total: dec("25.00"),
	}
}

func TestSubmitHappyPath(t *testing.T) {
	repo := &stubRepo{}
	svc := order.NewService(repo)

	o, items, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.True(t, o.Total.Equal(dec("25.00")), "got %s", o.Total)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, o.ID, it.OrderID)
	}

	// retrievable afterwards, header always with its complete line set
	got, gotItems, err := svc.Get(context.Background(), o.ID)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(dec("25.00")))
	assert.Len(t, gotItems, 2)
}

func TestSubmitEmptyOrder(t *testing.T) {
	svc := order.NewService(&stubRepo{})
	req := validRequest()
	req.Items = nil

	_, _, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, order.ErrEmptyOrder)
}

func TestSubmitMissingFields(t *testing.T) {
	for _, mutate := range []func(*order.CreateOrderRequest){
		func(r *order.CreateOrderRequest) { r.CustomerName = "   " },
		func(r *order.CreateOrderRequest) { r.Email = "" },
		func(r *order.CreateOrderRequest) { r.Address = "" },
	} {
		repo := &stubRepo{}
		svc := order.NewService(repo)
		req := validRequest()
		mutate(&req)

		_, _, err := svc.Submit(context.Background(), req)
		assert.ErrorIs(t, err, order.ErrMissingFields)
		assert.Nil(t, repo.lastOrder, "validation failures must never touch storage")
	}
}

func TestSubmitInvalidLine(t *testing.T) {
	repo := &stubRepo{}
	svc := order.NewService(repo)
	req := validRequest()
	req.Items[0].Quantity = 0

	_, _, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, order.ErrInvalidLine)
	assert.Nil(t, repo.lastOrder)
}

func TestSubmitTotalMismatch(t *testing.T) {
	repo := &stubRepo{}
	svc := order.NewService(repo)
	req := validRequest()
	req.Total = dec("19.99") // tampered or stale client total

	_, _, err := svc.Submit(context.Background(), req)
	assert.ErrorIs(t, err, order.ErrTotalMismatch)
	assert.Nil(t, repo.lastOrder, "rejected totals must never touch storage")
}

func TestSubmitTotalWithinTolerance(t *testing.T) {
	svc := order.NewService(&stubRepo{})
	req := validRequest()
	req.Total = dec("25.01") // one cent of presentation rounding is fine

	o, _, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	// the server-computed total is what gets persisted
	assert.True(t, o.Total.Equal(dec("25.00")))
}

func TestSubmitStorageFailure(t *testing.T) {
	svc := order.NewService(&stubRepo{failCreate: true})

	_, _, err := svc.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, order.ErrSubmissionFailed)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestSubmitTrimsCustomerFields(t *testing.T) {
	svc := order.NewService(&stubRepo{})
	req := validRequest()
	req.CustomerName = "  Ada Lovelace  "

	o, _, err := svc.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", o.CustomerName)
}

func TestGetNotFound(t *testing.T) {
	svc := order.NewService(&stubRepo{})
	_, _, err := svc.Get(context.Background(), 404)
	assert.ErrorIs(t, err, order.ErrNotFound)
}
