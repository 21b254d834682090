package product

import (
	"context"
	"database/sql"
	"errors"

	"crm-be/internal/db"
	"crm-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	Save(ctx context.Context, p *Product) error
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Product, error)
	Search(ctx context.Context, text string, limit int) ([]*Product, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = "id, name, stock, price, version, created_at"

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (*Product, error) {
	var p Product
	if err := row.Scan(&p.ID, &p.Name, &p.Stock, &p.Price, &p.Version, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*Product, error) {
	p, err := scanProduct(db.Conn(ctx, r.db).QueryRowContext(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) || db.IsInvalidID(err) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// Save writes p back only if nobody saved it since it was read (version
// compare-and-swap). On success p.Version holds the new version.
func (r *repository) Save(ctx context.Context, p *Product) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Save"),
		zap.String("product_id", p.ID),
	)

	err := db.Conn(ctx, r.db).QueryRowContext(ctx, `
		UPDATE products
		SET name = $1, stock = $2, price = $3, version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`, p.Name, p.Stock, p.Price, p.ID, p.Version).Scan(&p.Version)

	if errors.Is(err, sql.ErrNoRows) {
		log.Warn("stale product version", zap.Int("version", p.Version))
		return ErrStockConflict
	}
	if err != nil {
		log.Error("failed to save product", zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) Create(ctx context.Context, p *Product) (*Product, error) {
	err := db.Conn(ctx, r.db).QueryRowContext(ctx, `
		INSERT INTO products (name, stock, price)
		VALUES ($1, $2, $3)
		RETURNING id, version, created_at
	`, p.Name, p.Stock, p.Price).Scan(&p.ID, &p.Version, &p.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("db: failed to insert product", zap.String("name", p.Name), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *repository) Update(ctx context.Context, id string, input ProductInput) (*Product, error) {
	p, err := scanProduct(db.Conn(ctx, r.db).QueryRowContext(ctx, `
		UPDATE products
		SET name = $1, stock = $2, price = $3, version = version + 1
		WHERE id = $4
		RETURNING `+productColumns,
		input.Name, input.Stock, input.Price, id))
	if errors.Is(err, sql.ErrNoRows) || db.IsInvalidID(err) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if db.IsInvalidID(err) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) List(ctx context.Context) ([]*Product, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx,
		"SELECT "+productColumns+" FROM products ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

// Search runs a full-text match on the product name.
func (r *repository) Search(ctx context.Context, text string, limit int) ([]*Product, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE to_tsvector('simple', name) @@ plainto_tsquery('simple', $1)
		ORDER BY ts_rank(to_tsvector('simple', name), plainto_tsquery('simple', $1)) DESC
		LIMIT $2
	`, text, limit)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func collect(rows *sql.Rows) ([]*Product, error) {
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
