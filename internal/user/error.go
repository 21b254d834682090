package user

import "crm-be/internal/apperror"

var (
	ErrEmailExists       = apperror.New(apperror.ErrAlreadyExists, "user is already registered")
	ErrUserNotFound      = apperror.New(apperror.ErrNotFound, "user does not exist")
	ErrIncorrectPassword = apperror.New(apperror.ErrUnauthenticated, "incorrect password")
	ErrInvalidToken      = apperror.New(apperror.ErrUnauthenticated, "invalid token")
	ErrMissingSecret     = apperror.New(apperror.ErrUnauthenticated, "JWT_SECRET is not set")
)
