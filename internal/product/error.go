package product

import (
	"fmt"

	"crm-be/internal/apperror"
)

var (
	ErrProductNotFound = apperror.New(apperror.ErrNotFound, "product not found")
	ErrStockConflict   = apperror.New(apperror.ErrConflict, "product stock changed concurrently")
	ErrEmptyName       = apperror.New(apperror.ErrInvalidInput, "product name cannot be empty")
	ErrNegativeStock   = apperror.New(apperror.ErrInvalidInput, "product stock cannot be negative")
	ErrNegativePrice   = apperror.New(apperror.ErrInvalidInput, "product price cannot be negative")
)

// InsufficientStockError names the product whose stock cannot cover a request.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("item %s exceeds the available quantity (requested %d, available %d)",
		e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return apperror.ErrInsufficientStock
}
