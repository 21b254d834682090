package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"crm-be/internal/db"
	"crm-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*Order, error)
	Create(ctx context.Context, o *Order) (*Order, error)
	Update(ctx context.Context, o *Order) (*Order, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Order, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*Order, error)
	ListBySellerAndStatus(ctx context.Context, sellerID string, status Status) ([]*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = "id, items, total, client_id, seller_id, status, created_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (*Order, error) {
	var (
		o     Order
		items []byte
	)
	err := row.Scan(&o.ID, &items, &o.Total, &o.ClientID, &o.SellerID, &o.Status, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) || db.IsInvalidID(err) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Order, error) {
	return scanOrder(db.Conn(ctx, r.db).QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
}

func (r *repository) Create(ctx context.Context, o *Order) (*Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}

	err = db.Conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO orders (items, total, client_id, seller_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, items, o.Total, o.ClientID, o.SellerID, o.Status).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert order",
			zap.String("client_id", o.ClientID),
			zap.Error(err),
		)
		return nil, err
	}
	return o, nil
}

func (r *repository) Update(ctx context.Context, o *Order) (*Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}

	return scanOrder(db.Conn(ctx, r.db).QueryRowContext(ctx, `
		UPDATE orders
		SET items = $1, total = $2, client_id = $3, seller_id = $4, status = $5
		WHERE id = $6
		RETURNING `+orderColumns,
		items, o.Total, o.ClientID, o.SellerID, o.Status, o.ID))
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if db.IsInvalidID(err) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]*Order, error) {
	return r.query(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at")
}

func (r *repository) ListBySeller(ctx context.Context, sellerID string) ([]*Order, error) {
	return r.query(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE seller_id = $1 ORDER BY created_at", sellerID)
}

func (r *repository) ListBySellerAndStatus(ctx context.Context, sellerID string, status Status) ([]*Order, error) {
	return r.query(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE seller_id = $1 AND status = $2 ORDER BY created_at",
		sellerID, status)
}

func (r *repository) query(ctx context.Context, q string, args ...any) ([]*Order, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
