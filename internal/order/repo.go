package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	Create(ctx context.Context, o *Order, items []Item) error
	GetByID(ctx context.Context, id int64) (*Order, []Item, error)
}

type SQLRepo struct{ db *sql.DB }

func NewSQLRepo(db *sql.DB) *SQLRepo { return &SQLRepo{db: db} }

// Create writes the header and every line in a single transaction. Either
// the order and all of its items become durable together, or the rollback
// leaves nothing behind; a header without lines is never observable.
func (r *SQLRepo) Create(ctx context.Context, o *Order, items []Item) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.QueryRowContext(ctx, `
    INSERT INTO orders (customer_name, email, address, total, created_at)
    VALUES ($1,$2,$3,$4,NOW())
    RETURNING id, created_at
  `, o.CustomerName, o.Email, o.Address, o.Total).Scan(&o.ID, &o.CreatedAt); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for i := range items {
		items[i].OrderID = o.ID
		if err := tx.QueryRowContext(ctx, `
      INSERT INTO order_items (order_id, product_id, quantity, price)
      VALUES ($1,$2,$3,$4)
      RETURNING id
    `, items[i].OrderID, items[i].ProductID, items[i].Quantity, items[i].Price).Scan(&items[i].ID); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit order: %w", err)
	}
	return nil
}

func (r *SQLRepo) GetByID(ctx context.Context, id int64) (*Order, []Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o Order
	if err := r.db.QueryRowContext(ctx, `
    SELECT id, customer_name, email, address, total, created_at
    FROM orders WHERE id=$1
  `, id).Scan(&o.ID, &o.CustomerName, &o.Email, &o.Address, &o.Total, &o.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, fmt.Errorf("select order: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
    SELECT id, order_id, product_id, quantity, price
    FROM order_items WHERE order_id=$1
    ORDER BY id
  `, id)
	if err != nil {
		return nil, nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.Price); err != nil {
			return nil, nil, err
		}
		items = append(items, it)
	}
	return &o, items, rows.Err()
}
