package client

import (
	"context"
	"database/sql"
	"errors"

	"crm-be/internal/db"
	"crm-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*Client, error)
	FindByEmail(ctx context.Context, email string) (*Client, error)
	Create(ctx context.Context, c *Client) (*Client, error)
	Update(ctx context.Context, c *Client) (*Client, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Client, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*Client, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const clientColumns = "id, first_name, last_name, company, email, phone, seller_id, created_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(row scanner) (*Client, error) {
	var c Client
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Company, &c.Email, &c.Phone, &c.SellerID, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) || db.IsInvalidID(err) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Client, error) {
	return scanClient(db.Conn(ctx, r.db).QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE id = $1", id))
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Client, error) {
	return scanClient(db.Conn(ctx, r.db).QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE email = $1", email))
}

func (r *repository) Create(ctx context.Context, c *Client) (*Client, error) {
	err := db.Conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO clients (first_name, last_name, company, email, phone, seller_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, c.FirstName, c.LastName, c.Company, c.Email, c.Phone, c.SellerID).Scan(&c.ID, &c.CreatedAt)

	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrClientExists
		}
		logger.FromCtx(ctx).Error("db: failed to insert client",
			zap.String("email", c.Email),
			zap.Error(err),
		)
		return nil, err
	}
	return c, nil
}

// Update rewrites the contact fields. The owning seller is never changed here.
func (r *repository) Update(ctx context.Context, c *Client) (*Client, error) {
	updated, err := scanClient(db.Conn(ctx, r.db).QueryRowContext(ctx, `
		UPDATE clients
		SET first_name = $1, last_name = $2, company = $3, email = $4, phone = $5
		WHERE id = $6
		RETURNING `+clientColumns,
		c.FirstName, c.LastName, c.Company, c.Email, c.Phone, c.ID))
	if err != nil && db.IsUniqueViolation(err) {
		return nil, ErrClientExists
	}
	return updated, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, "DELETE FROM clients WHERE id = $1", id)
	switch {
	case db.IsInvalidID(err):
		return ErrClientNotFound
	case db.IsForeignKeyViolation(err):
		return ErrClientHasOrders
	case err != nil:
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]*Client, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx,
		"SELECT "+clientColumns+" FROM clients ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *repository) ListBySeller(ctx context.Context, sellerID string) ([]*Client, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE seller_id = $1 ORDER BY created_at", sellerID)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func collect(rows *sql.Rows) ([]*Client, error) {
	defer rows.Close()

	clients := []*Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
