package client

import "crm-be/internal/apperror"

var (
	ErrClientNotFound  = apperror.New(apperror.ErrNotFound, "client does not exist")
	ErrClientExists    = apperror.New(apperror.ErrAlreadyExists, "client is already registered")
	ErrMissingFields   = apperror.New(apperror.ErrInvalidInput, "first name, last name and email are required")
	ErrClientHasOrders = apperror.New(apperror.ErrConflict, "client has orders and cannot be deleted")
)
