package product

import "time"

type Product struct {
	ID        string
	Name      string
	Stock     int
	Price     float64
	Version   int
	CreatedAt time.Time
}

// Deduct removes qty units from stock, refusing to go below zero.
func (p *Product) Deduct(qty int) error {
	if qty > p.Stock {
		return &InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Requested:   qty,
			Available:   p.Stock,
		}
	}
	p.Stock -= qty
	return nil
}

type ProductInput struct {
	Name  string
	Stock int
	Price float64
}

const searchLimit = 10
