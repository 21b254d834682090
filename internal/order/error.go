package order

import "crm-be/internal/apperror"

var (
	ErrOrderNotFound = apperror.New(apperror.ErrNotFound, "order not found")
	ErrNoItems       = apperror.New(apperror.ErrInvalidInput, "an order needs at least one line item")
	ErrNegativeTotal = apperror.New(apperror.ErrInvalidInput, "order total cannot be negative")
	ErrInvalidStatus = apperror.New(apperror.ErrInvalidInput, "unknown order status")
)
