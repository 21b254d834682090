package report

import (
	"context"
	"database/sql"

	"crm-be/internal/client"
	"crm-be/internal/db"
	"crm-be/internal/user"
)

type Repository interface {
	TopClients(ctx context.Context, limit int) ([]*TopClient, error)
	TopSellers(ctx context.Context, limit int) ([]*TopSeller, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Ranking is applied before the limit so the result is the true top N.
func (r *repository) TopClients(ctx context.Context, limit int) ([]*TopClient, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, `
		SELECT c.id, c.first_name, c.last_name, c.company, c.email, c.phone, c.seller_id, c.created_at,
		       SUM(o.total) AS total
		FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.status = 'COMPLETED'
		GROUP BY c.id
		ORDER BY total DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*TopClient{}
	for rows.Next() {
		var c client.Client
		var tc TopClient
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Company, &c.Email, &c.Phone,
			&c.SellerID, &c.CreatedAt, &tc.Total); err != nil {
			return nil, err
		}
		tc.Client = &c
		result = append(result, &tc)
	}
	return result, rows.Err()
}

func (r *repository) TopSellers(ctx context.Context, limit int) ([]*TopSeller, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, `
		SELECT u.id, u.first_name, u.last_name, u.email, u.created_at,
		       SUM(o.total) AS total
		FROM orders o
		JOIN users u ON u.id = o.seller_id
		WHERE o.status = 'COMPLETED'
		GROUP BY u.id
		ORDER BY total DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*TopSeller{}
	for rows.Next() {
		var u user.User
		var ts TopSeller
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt, &ts.Total); err != nil {
			return nil, err
		}
		ts.Seller = &u
		result = append(result, &ts)
	}
	return result, rows.Err()
}
